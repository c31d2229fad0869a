package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/Ram-Pam-Pam/Projekt/internal/api/controller"
	"github.com/Ram-Pam-Pam/Projekt/internal/pkg/logger"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/analyzer"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type APIService struct {
	router  *echo.Echo
	manager *session.Manager
}

func newRouter(corsOrigins []string) *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true

	router.JSONSerializer = JSONSerializer{}
	router.Validator = NewValidator()
	router.Binder = NewBinder()
	router.HTTPErrorHandler = httpErrorHandler
	router.Use(middleware.Recover())
	router.Use(middleware.Logger())
	router.Use(RequestLogger)
	router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: corsOrigins,
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))
	return router
}

// serve blocks until the server stops. A graceful Shutdown is not an error.
func serve(router *echo.Echo, addr string) {
	logger.Infof(context.Background(), "listening on %s", addr)
	if err := router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Serve(addr string) {
	serve(svc.router, addr)
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *APIService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

// NewAPIService builds the session API under /api/v1.
func NewAPIService(manager *session.Manager, corsOrigins []string) (*APIService, error) {
	svc := &APIService{router: newRouter(corsOrigins), manager: manager}

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(manager)

	api.GET("/health", cntrl.Health)
	api.GET("/templates", cntrl.ListTemplates)
	api.GET("/districts", cntrl.ListDistricts)

	sessions := api.Group("/sessions")
	sessions.POST("", cntrl.CreateSession)
	sessions.GET("/:id", cntrl.GetSession)
	sessions.DELETE("/:id", cntrl.DeleteSession)
	sessions.GET("/:id/events", cntrl.StreamEvents)

	sessions.PUT("/:id/weights/:category", cntrl.SetCategoryWeight)
	sessions.PUT("/:id/weights/:category/:sub", cntrl.SetSubcategoryWeight)
	sessions.POST("/:id/template", cntrl.ResetTemplate)
	sessions.GET("/:id/ranking", cntrl.GetRanking)

	sessions.POST("/:id/locations", cntrl.SubmitLocation)
	sessions.DELETE("/:id/locations/:location_id", cntrl.RemoveLocation)

	sessions.PUT("/:id/selection", cntrl.Select)
	sessions.DELETE("/:id/selection", cntrl.ClearSelection)

	return svc, nil
}

type AnalyzerService struct {
	router *echo.Echo
}

func (svc *AnalyzerService) Serve(addr string) {
	serve(svc.router, addr)
}

func (svc *AnalyzerService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func (svc *AnalyzerService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	svc.router.ServeHTTP(w, r)
}

// NewAnalyzerService exposes the analysis service. When secret is set,
// /api/analyze requires a service token.
func NewAnalyzerService(service *analyzer.Service, secret string, corsOrigins []string) (*AnalyzerService, error) {
	svc := &AnalyzerService{router: newRouter(corsOrigins)}

	cntrl := controller.NewAnalyzerController(service)
	api := svc.router.Group("/api")
	api.GET("/health", cntrl.Health)

	var mw []echo.MiddlewareFunc
	if secret != "" {
		mw = append(mw, ServiceTokenMiddleware(secret))
	}
	api.POST("/analyze", cntrl.Analyze, mw...)

	return svc, nil
}
