package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/cetteup/puppybowl/cmd/seeder/internal/options"
	"github.com/cetteup/puppybowl/cmd/seeder/internal/rosterfile"
	"github.com/cetteup/puppybowl/cmd/seeder/internal/seed"
	"github.com/cetteup/puppybowl/internal/roster"
	"github.com/cetteup/puppybowl/internal/trace"
)

var (
	buildVersion = "development"
	buildCommit  = "uncommitted"
	buildTime    = "unknown"
)

func main() {
	version := fmt.Sprintf("seeder %s (%s) built at %s", buildVersion, buildCommit, buildTime)
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

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client := roster.NewClient(roster.Config{
		BaseURL: opts.BaseURL,
		Cohort:  opts.Cohort,
		Timeout: opts.Timeout,
	})

	stats, err := load(ctx, client, opts.Source, opts.DryRun)
	if err != nil {
		log.Fatal().
			Err(err).
			Str("source", opts.Source).
			Msg("Failed to seed players")
	}

	log.Info().
		Str(trace.LogCohort, opts.Cohort).
		Int("processed", stats.Processed).
		Int("added", stats.Added).
		Int("skipped", stats.Skipped).
		Bool("dryRun", opts.DryRun).
		Msgf("Seeded %d players from %s", stats.Added, opts.Source)
}

func load(ctx context.Context, client *roster.Client, source string, dryRun bool) (seed.Stats, error) {
	seeder := seed.NewSeeder(client, dryRun)
	if err := seeder.Prepare(ctx); err != nil {
		return seed.Stats{}, err
	}

	err := rosterfile.LoadPlayersFromFile(ctx, source, seeder.Add)
	if err != nil {
		return seeder.Stats(), fmt.Errorf("failed to seed players from %s: %w", source, err)
	}

	return seeder.Stats(), nil
}
