// Package server exposes the generators over HTTP.
package server

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/xugehan/english-related-generator/config"
	"github.com/xugehan/english-related-generator/history"
)

// Server wires configuration, persistence and the HTTP routes.
type Server struct {
	cfg   *config.Config
	store *history.Store
}

func New(cfg *config.Config, store *history.Store) *Server {
	return &Server{cfg: cfg, store: store}
}

// Echo builds the router with middleware and all routes registered.
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.CORS())

	api := e.Group("/api")
	api.GET("/template", s.handleTemplate)
	api.POST("/slips", s.handleSlips)
	api.POST("/slips/preview", s.handleSlipsPreview)
	api.POST("/worksheets", s.handleWorksheet)
	api.POST("/worksheets/preview", s.handleWorksheetPreview)
	api.POST("/issues", s.handleCreateIssue)
	api.GET("/issues", s.handleListIssues)

	// Admin operations are only reachable from the staff network.
	admin := api.Group("", RequireLocal())
	admin.PATCH("/issues/:id/status", s.handleUpdateIssueStatus)
	admin.GET("/history", s.handleHistory)

	return e
}

// Start runs the server on the configured port.
func (s *Server) Start() error {
	return s.Echo().Start(":" + s.cfg.ServerPort)
}
