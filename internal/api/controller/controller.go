package controller

import (
	"github.com/Ram-Pam-Pam/Projekt/internal/service/analyzer"
	"github.com/Ram-Pam-Pam/Projekt/internal/service/session"
)

type Controller struct {
	manager *session.Manager
}

func NewController(manager *session.Manager) *Controller {
	return &Controller{manager: manager}
}

type AnalyzerController struct {
	service *analyzer.Service
}

func NewAnalyzerController(service *analyzer.Service) *AnalyzerController {
	return &AnalyzerController{service: service}
}
