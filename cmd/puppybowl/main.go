package main

import (
	"fmt"
	"os"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cetteup/puppybowl/cmd/puppybowl/internal/config"
	"github.com/cetteup/puppybowl/cmd/puppybowl/internal/handler"
	"github.com/cetteup/puppybowl/cmd/puppybowl/internal/options"
	"github.com/cetteup/puppybowl/cmd/puppybowl/internal/view"
	"github.com/cetteup/puppybowl/internal/roster"
	"github.com/cetteup/puppybowl/internal/trace"
)

var (
	buildVersion = "development"
	buildCommit  = "uncommitted"
	buildTime    = "unknown"
)

func main() {
	version := fmt.Sprintf("puppybowl %s (%s) built at %s", buildVersion, buildCommit, buildTime)
	opts := options.Init()

	// Print version and exit
	if opts.Version {
		fmt.Println(version)
		os.Exit(0)
	}

	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stdout,
		NoColor:    !opts.ColorizeLogs,
		TimeFormat: time.RFC3339,
	})
	if opts.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	cfg, err := config.LoadConfig(opts.ConfigPath)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("config", opts.ConfigPath).
			Msg("Failed to read config file")
	}

	client := roster.NewClient(cfg.API.Roster()).WithModifier(
		roster.UserAgentModifier{UserAgent: cfg.API.UserAgent},
		roster.HeaderModifier{Header: cfg.API.Headers},
	)

	renderer, err := view.NewRenderer()
	if err != nil {
		log.Fatal().
			Err(err).
			Msg("Failed to parse templates")
	}

	h := handler.NewHandler(client)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Renderer = renderer
	e.Use(middleware.Recover())
	e.Use(middleware.TimeoutWithConfig(middleware.TimeoutConfig{
		// Leave room for the upstream request to time out first
		Timeout: cfg.API.Timeout + time.Second*5,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogError:     true,
		LogRemoteIP:  true,
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogUserAgent: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			log.Info().
				Err(v.Error).
				Str("remote", v.RemoteIP).
				Str("method", v.Method).
				Str("URI", v.URI).
				Int("status", v.Status).
				Str("latency", v.Latency.Truncate(time.Millisecond).String()).
				Str("agent", v.UserAgent).
				Msg("request")

			return nil
		},
	}))

	h.Register(e)

	log.Info().
		Str(trace.LogURL, cfg.API.URL).
		Str(trace.LogCohort, cfg.API.Cohort).
		Str("address", opts.ListenAddr).
		Msg("Serving roster")

	e.Logger.Fatal(e.Start(opts.ListenAddr))
}
