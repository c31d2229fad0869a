package api

import (
	"strings"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/utils"
	"github.com/labstack/echo/v4"
)

// ServiceTokenMiddleware requires an HS256 Bearer token signed with secret.
func ServiceTokenMiddleware(secret string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			header := ctx.Request().Header.Get(constants.HeaderAuthorization)
			if !strings.HasPrefix(header, constants.BearerPrefix) {
				return constants.ErrUnauthorized
			}

			claims, err := utils.ParseServiceToken(secret, strings.TrimPrefix(header, constants.BearerPrefix))
			if err != nil {
				return err
			}

			req := ctx.Request()
			ctx.SetRequest(req.WithContext(logger.With(req.Context(), "caller", claims.Subject)))
			return next(ctx)
		}
	}
}

// RequestLogger attaches method and path to the request context logger.
func RequestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		req := ctx.Request()
		ctx.SetRequest(req.WithContext(logger.With(req.Context(), "method", req.Method, "path", ctx.Path())))
		return next(ctx)
	}
}
