package server

import (
	"github.com/labstack/echo/v4"
	"github.com/thomiceli/gistindex/internal/web/context"
	"github.com/thomiceli/gistindex/internal/web/handlers/gist"
)

// Handler is an echo handler receiving the application context.
type Handler func(ctx *context.Context) error

// Middleware wraps a Handler of a single route.
type Middleware func(next Handler) Handler

func (s *Server) registerRoutes() {
	r := NewRouter(s.echo.Group(""))

	r.Any("/", gist.Index, rootOnly)
	r.Any("/*", noRouteFound)
}

// Router wraps echo.Group to provide custom Handler support
type Router struct {
	*echo.Group
}

func NewRouter(g *echo.Group) *Router {
	return &Router{Group: g}
}

func (r *Router) Any(path string, h Handler, m ...Middleware) {
	for i := len(m) - 1; i >= 0; i-- {
		h = m[i](h)
	}

	r.Group.Any(path, func(c echo.Context) error {
		return h(c.(*context.Context))
	})
}
