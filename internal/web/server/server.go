package server

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistindex/internal/config"
	"github.com/thomiceli/gistindex/internal/gist"
)

type Server struct {
	echo *echo.Echo

	fetcher gist.Fetcher
}

func NewServer(fetcher gist.Fetcher) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{echo: e, fetcher: fetcher}

	s.useCustomContext()
	s.registerMiddlewares()
	s.echo.HTTPErrorHandler = s.errorHandler

	s.registerRoutes()

	return s
}

func (s *Server) Start() {
	addr := config.HttpAddress()

	log.Info().Msg("Listening on http://" + addr)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}
}

func (s *Server) Shutdown(ctx context.Context) error {
	log.Info().Msg("Stopping HTTP server...")
	return s.echo.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
