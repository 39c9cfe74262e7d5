package server

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistindex/internal/config"
	"github.com/thomiceli/gistindex/internal/web/context"
	"github.com/thomiceli/gistindex/internal/web/handlers/metrics"
)

func (s *Server) useCustomContext() {
	s.echo.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cc := context.NewContext(c, s.fetcher)
			return next(cc)
		}
	})
}

func (s *Server) registerMiddlewares() {
	s.echo.Pre(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI: true, LogStatus: true, LogMethod: true,
		LogValuesFunc: func(ctx echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().Str("uri", v.URI).Int("status", v.Status).Str("method", v.Method).
				Str("ip", ctx.RealIP()).TimeDiff("duration", time.Now(), v.StartTime).
				Msg("HTTP")
			return nil
		},
	}))

	if config.C.MetricsEnabled {
		s.echo.Use(metrics.Middleware())
	}
	s.echo.Use(middleware.Secure())
	s.echo.Use(contentType)
}

func (s *Server) errorHandler(err error, ctx echo.Context) {
	if ctx.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := err.Error()

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		code = httpErr.Code
		message = fmt.Sprint(httpErr.Message)
	} else {
		log.Error().Err(err).Msg("Unhandled error")
	}

	ctx.Response().Header().Set(echo.HeaderContentType, context.ContentType)

	// client errors carry no body
	if code < http.StatusInternalServerError {
		err = ctx.NoContent(code)
	} else {
		err = ctx.Blob(code, context.ContentType, []byte(message))
	}
	if err != nil {
		log.Error().Err(err).Msg("Cannot write error response")
	}
}

func contentType(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		ctx.Response().Header().Set(echo.HeaderContentType, context.ContentType)
		return next(ctx)
	}
}

// rootOnly answers 404 unless the path is exactly "/", so "//" or "/./"
// never reach the index.
func rootOnly(next Handler) Handler {
	return func(ctx *context.Context) error {
		if ctx.Request().URL.Path != "/" {
			return ctx.NotFound("Page not found")
		}
		return next(ctx)
	}
}

func noRouteFound(ctx *context.Context) error {
	return ctx.NotFound("Page not found")
}
