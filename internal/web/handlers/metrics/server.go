package metrics

import (
	"context"
	"net/http"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistindex/internal/config"
	"github.com/thomiceli/gistindex/internal/web/handlers/health"
)

type Server struct {
	echo *echo.Echo
}

func NewServer() *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e}

	initMetrics()

	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/healthcheck", health.Healthcheck)

	return s
}

func (s *Server) Start() {
	addr := config.MetricsAddress()
	log.Info().Msg("Starting metrics server on http://" + addr)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Error().Err(err).Msg("Failed to start metrics server")
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Stopping metrics server...")
	return s.echo.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
