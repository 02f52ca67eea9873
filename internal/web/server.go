package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/plantkeeper/plantkeeper/internal/client/api"
	"github.com/plantkeeper/plantkeeper/internal/client/config"
	"github.com/plantkeeper/plantkeeper/internal/client/views"
	"github.com/plantkeeper/plantkeeper/internal/common"
	"github.com/plantkeeper/plantkeeper/internal/logging"
)

// Server encapsulates the Echo instance, the backend client, and the
// long-lived view models shared across requests.
type Server struct {
	Echo   *echo.Echo
	Config *config.Config

	client api.Client
	log    logging.Logger
	now    func() time.Time

	guard     *views.SubmitGuard
	plants    *views.PlantCollection
	facts     *views.FactsCatalog
	suppliers *views.SupplierDirectory
}

// New wires a ready-to-start server. It fails only when the embedded
// templates do not parse.
func New(cfg *config.Config, client api.Client, log logging.Logger) (*Server, error) {
	guard := views.NewSubmitGuard()
	s := &Server{
		Echo:      echo.New(),
		Config:    cfg,
		client:    client,
		log:       log,
		now:       time.Now,
		guard:     guard,
		plants:    views.NewPlantCollection(client, guard, log),
		facts:     views.NewFactsCatalog(client, log),
		suppliers: views.NewSupplierDirectory(client, log),
	}

	s.Echo.HideBanner = true
	s.Echo.HidePort = true

	renderer, err := newTemplateRenderer(log)
	if err != nil {
		return nil, err
	}
	s.Echo.Renderer = renderer

	s.Echo.Use(middleware.Recover())
	s.Echo.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	s.Echo.Use(s.requestLogger)

	s.registerRoutes()
	return s, nil
}

func (s *Server) registerRoutes() {
	e := s.Echo

	e.GET("/", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/plants")
	})

	e.GET("/plants", s.handlePlantList)
	e.GET("/plants/new", s.handlePlantNew)
	e.POST("/plants", s.handlePlantCreate)
	e.GET("/plants/:id", s.handlePlantDetail)
	e.POST("/plants/:id/records", s.handleRecordCreate)
	e.POST("/plants/:id/tasks", s.handleTaskCreate)
	e.POST("/plants/:id/tasks/:taskId/status", s.handleTaskStatus)
	e.GET("/plants/:id/tasks", s.handleTaskBoard)
	e.GET("/plants/:id/tasks/:taskId/delete", s.handleTaskDeleteConfirm)
	e.POST("/plants/:id/tasks/:taskId/delete", s.handleTaskDelete)

	e.GET("/facts", s.handleFacts)
	e.GET("/suppliers", s.handleSuppliers)
	e.GET("/healthz", s.handleHealthz)
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := s.now()
		err := next(c)
		req := c.Request()
		s.log.Info(req.Context(), "request",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start),
			"request_id", c.Response().Header().Get(echo.HeaderXRequestID),
		)
		return err
	}
}

// Start blocks serving HTTP until the listener fails or Shutdown runs.
func (s *Server) Start() error {
	s.log.Info(context.Background(), "web server starting",
		"listen_addr", s.Config.ListenAddr, "api_base_url", s.Config.APIBaseURL)
	if err := s.Echo.Start(s.Config.ListenAddr); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("starting web server: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.Echo.Shutdown(ctx)
}

func (s *Server) handleHealthz(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// mutationError maps a failed mutation to the banner text shown after the
// redirect.
func mutationError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, common.ErrBusy):
		return "That submission is already in progress."
	case errors.Is(err, common.ErrValidation):
		return err.Error()
	case errors.Is(err, common.ErrNotFound):
		return "The plant no longer exists."
	default:
		return "The backend could not be reached. Please try again."
	}
}
