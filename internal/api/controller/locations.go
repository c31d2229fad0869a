package controller

import (
	"net/http"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/labstack/echo/v4"
)

type submitLocationRequest struct {
	Lat          float64 `json:"lat" validate:"gte=-90,lte=90"`
	Lon          float64 `json:"lon" validate:"gte=-180,lte=180"`
	Name         string  `json:"name" validate:"max=200"`
	BusinessType string  `json:"business_type"`
}

func (c *Controller) SubmitLocation(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	var req submitLocationRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	id, err := s.Submit(ctx.Request().Context(), domain.Coords{Lon: req.Lon, Lat: req.Lat}, req.Name, req.BusinessType)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusAccepted, echo.Map{"id": id})
}

func (c *Controller) RemoveLocation(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	if err := s.Remove(ctx.Request().Context(), ctx.Param("location_id")); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

type selectRequest struct {
	Kind string `json:"kind" validate:"required"`
	ID   string `json:"id" validate:"required"`
}

func (c *Controller) Select(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	var req selectRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := s.Select(req.Kind, req.ID); err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, s.View())
}

func (c *Controller) ClearSelection(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	s.ClearSelection()
	return ctx.NoContent(http.StatusNoContent)
}
