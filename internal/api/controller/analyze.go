package controller

import (
	"net/http"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *AnalyzerController) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, echo.Map{"status": "ok"})
}

func (c *AnalyzerController) Analyze(ctx echo.Context) error {
	var req dto.AnalyzeRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	resp, err := c.service.Analyze(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, resp)
}
