package context

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistindex/internal/gist"
	"github.com/thomiceli/gistindex/internal/render"
)

const ContentType = "text/html; charset=utf-8"

type Context struct {
	echo.Context

	Fetcher gist.Fetcher
}

func NewContext(c echo.Context, fetcher gist.Fetcher) *Context {
	return &Context{
		Context: c,
		Fetcher: fetcher,
	}
}

// ErrorRes hands the error to the server error handler, which writes code and
// message as a plain body.
func (ctx *Context) ErrorRes(code int, message string, err error) error {
	if code >= 500 {
		var skipLogger = log.With().CallerWithSkipFrameCount(3).Logger()
		skipLogger.Error().Err(err).Msg(message)
	}

	return &echo.HTTPError{Code: code, Message: message, Internal: err}
}

func (ctx *Context) Index(data render.IndexData) error {
	body, err := render.Index(data)
	if err != nil {
		return ctx.ErrorRes(http.StatusInternalServerError, "Cannot render page", err)
	}
	return ctx.Bytes(http.StatusOK, body)
}

func (ctx *Context) Bytes(code int, body []byte) error {
	return ctx.Blob(code, ContentType, body)
}

func (ctx *Context) NotFound(message string) error {
	return ctx.ErrorRes(http.StatusNotFound, message, nil)
}
