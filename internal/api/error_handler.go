package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Ram-Pam-Pam/Projekt/internal/domain"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/constants"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError
	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := e.(*echo.HTTPError); ok {
			code = he.Code
			msg = fmt.Sprint(he.Message)
			break
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Path(), err.Error())
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
