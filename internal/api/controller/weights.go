package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

type setWeightRequest struct {
	Value *int `json:"value" validate:"required"`
}

func (c *Controller) SetCategoryWeight(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	var req setWeightRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	h, err := s.SetCategoryWeight(ctx.Request().Context(), ctx.Param("category"), *req.Value)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, h)
}

func (c *Controller) SetSubcategoryWeight(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	var req setWeightRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	h, err := s.SetSubcategoryWeight(ctx.Request().Context(), ctx.Param("category"), ctx.Param("sub"), *req.Value)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, h)
}

type resetTemplateRequest struct {
	TemplateID string `json:"template_id" validate:"required"`
}

func (c *Controller) ResetTemplate(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	var req resetTemplateRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	h, err := s.ResetToTemplate(ctx.Request().Context(), req.TemplateID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, h)
}

func (c *Controller) GetRanking(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, s.Ranking())
}
