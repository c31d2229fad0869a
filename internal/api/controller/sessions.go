package controller

import (
	"net/http"

	"github.com/Ram-Pam-Pam/Projekt/internal/reference"
	"github.com/Ram-Pam-Pam/Projekt/internal/weights"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{
		"status":   "ok",
		"sessions": c.manager.Len(),
	})
}

func (c *Controller) ListTemplates(ctx echo.Context) error {
	type template struct {
		*weights.Template
		Hierarchy *weights.Hierarchy `json:"hierarchy"`
	}

	templates := c.manager.Catalog().Templates()
	resp := make([]template, 0, len(templates))
	for _, t := range templates {
		resp = append(resp, template{Template: t, Hierarchy: t.Hierarchy()})
	}

	return ctx.JSON(http.StatusOK, resp)
}

func (c *Controller) ListDistricts(ctx echo.Context) error {
	ds := c.manager.Dataset()
	return ctx.JSON(http.StatusOK, struct {
		Districts interface{}      `json:"districts"`
		Maxima    reference.Maxima `json:"maxima"`
	}{
		Districts: ds.Districts(),
		Maxima:    ds.Maxima(),
	})
}

type createSessionRequest struct {
	TemplateID string `json:"template_id"`
}

func (c *Controller) CreateSession(ctx echo.Context) error {
	var req createSessionRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	s, err := c.manager.Create(ctx.Request().Context(), req.TemplateID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusCreated, s.View())
}

func (c *Controller) GetSession(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, s.View())
}

func (c *Controller) DeleteSession(ctx echo.Context) error {
	if err := c.manager.Delete(ctx.Request().Context(), ctx.Param("id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
