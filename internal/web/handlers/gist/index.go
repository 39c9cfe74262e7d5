package gist

import (
	"time"

	"github.com/thomiceli/gistindex/internal/config"
	"github.com/thomiceli/gistindex/internal/gist"
	"github.com/thomiceli/gistindex/internal/render"
	"github.com/thomiceli/gistindex/internal/web/context"
	"github.com/thomiceli/gistindex/internal/web/handlers"
	"github.com/thomiceli/gistindex/internal/web/handlers/metrics"
)

// Index renders the gists of the user given in the query string, or an empty
// table when there is none.
func Index(ctx *context.Context) error {
	var params handlers.IndexParams
	if err := handlers.DecodeParams(handlers.ParseQuery(ctx.QueryString()), &params); err != nil {
		return ctx.ErrorRes(400, "Invalid query parameters", err)
	}

	if params.User == "" {
		return ctx.Index(render.IndexData{})
	}

	start := time.Now()
	records, err := ctx.Fetcher.FetchGists(ctx.Request().Context(), params.User)
	metrics.ObserveFetch(err, time.Since(start))
	if err != nil {
		return ctx.ErrorRes(500, err.Error(), err)
	}

	return ctx.Index(render.IndexData{
		User:  params.User,
		Gists: gist.Convert(records, config.C.GithubGistUrl),
	})
}
