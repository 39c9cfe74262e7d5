package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/thomiceli/gistindex/internal/config"
	"github.com/thomiceli/gistindex/internal/github"
	"github.com/thomiceli/gistindex/internal/web/handlers/metrics"
	"github.com/thomiceli/gistindex/internal/web/server"
	"github.com/urfave/cli/v2"
	"go.uber.org/multierr"
)

const shutdownTimeout = 5 * time.Second

func newFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "host",
			Aliases: []string{"H"},
			Usage:   "Specify listening host",
			Value:   "0.0.0.0",
		},
		&cli.IntFlag{
			Name:    "port",
			Aliases: []string{"p"},
			Usage:   "Specify listening port",
			Value:   8080,
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "Path to a config file in YAML format",
		},
	}
}

func NewApp() *cli.App {
	app := cli.NewApp()
	app.Name = "gistindex"
	app.Usage = "Serve the public gists of a GitHub user as an HTML table."
	app.HelpName = "gistindex"
	app.Version = config.GistindexVersion
	app.HideHelpCommand = true

	app.Flags = newFlags()
	app.Action = Start
	app.OnUsageError = func(_ *cli.Context, err error, _ bool) error {
		return cli.Exit(err.Error(), 2)
	}

	cli.VersionPrinter = func(ctx *cli.Context) {
		_, _ = fmt.Fprintln(ctx.App.Writer, "gistindex "+ctx.App.Version)
	}

	return app
}

// App runs the application until SIGINT or SIGTERM.
func App() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return NewApp().RunContext(ctx, os.Args)
}

func Start(ctx *cli.Context) error {
	if err := Initialize(ctx); err != nil {
		return err
	}

	client := github.NewClient(config.C.GithubApiUrl, config.C.GithubFetchTimeout)
	client.UserAgent = "gistindex/" + config.GistindexVersion

	httpServer := server.NewServer(client)
	go httpServer.Start()

	var metricsServer *metrics.Server
	if config.C.MetricsEnabled {
		metricsServer = metrics.NewServer()
		go metricsServer.Start()
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	err := httpServer.Shutdown(shutdownCtx)
	if metricsServer != nil {
		err = multierr.Append(err, metricsServer.Shutdown(shutdownCtx))
	}
	return err
}

// Initialize loads the configuration, applies the command line overrides and
// sets up the logger.
func Initialize(ctx *cli.Context) error {
	if err := config.InitConfig(ctx.String("config"), ctx.App.Writer); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	if ctx.IsSet("host") {
		config.C.HttpHost = ctx.String("host")
	}
	if ctx.IsSet("port") {
		port := ctx.Int("port")
		if port <= 0 || port > 65535 {
			return cli.Exit(fmt.Sprintf("invalid port %d", port), 2)
		}
		config.C.HttpPort = strconv.Itoa(port)
	}

	config.InitLog()
	log.Debug().Str("version", config.GistindexVersion).Msg("Configuration loaded")

	return nil
}
