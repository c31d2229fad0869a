package controller

import (
	"fmt"
	"net/http"

	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/bytedance/sonic"
	"github.com/labstack/echo/v4"
)

// StreamEvents sends the session view as a server-sent event on every change.
// The stream ends when the client goes away or the session is closed.
func (c *Controller) StreamEvents(ctx echo.Context) error {
	s, err := c.manager.Get(ctx.Param("id"))
	if err != nil {
		return err
	}

	views, unsubscribe := s.Subscribe()
	defer unsubscribe()

	w := ctx.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	reqCtx := ctx.Request().Context()
	for {
		select {
		case <-reqCtx.Done():
			return nil
		case v, ok := <-views:
			if !ok {
				_, _ = fmt.Fprint(w, "event: closed\ndata: {}\n\n")
				w.Flush()
				return nil
			}

			data, err := sonic.Marshal(v)
			if err != nil {
				logger.Errorf(reqCtx, "sonic.Marshal: %s", err.Error())
				return nil
			}
			if _, err := fmt.Fprintf(w, "id: %d\nevent: view\ndata: %s\n\n", v.Version, data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}
