package health

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/thomiceli/gistindex/internal/config"
)

func Healthcheck(ctx echo.Context) error {
	return ctx.JSON(200, map[string]interface{}{
		"gistindex": "ok",
		"version":   config.GistindexVersion,
		"time":      time.Now().Format(time.RFC3339),
	})
}
