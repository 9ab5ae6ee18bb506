package options

import (
	"flag"
	"time"

	"github.com/cetteup/puppybowl/internal/roster"
)

type Options struct {
	Version bool

	Debug        bool
	ColorizeLogs bool

	BaseURL string
	Cohort  string
	Timeout time.Duration

	Source string
	DryRun bool
}

func Init() *Options {
	opts := new(Options)
	flag.BoolVar(&opts.Version, "v", false, "prints the version")
	flag.BoolVar(&opts.Version, "version", false, "prints the version")
	flag.BoolVar(&opts.Debug, "debug", false, "enable debug logging")
	flag.BoolVar(&opts.ColorizeLogs, "colorize-logs", false, "colorize log messages")
	flag.StringVar(&opts.BaseURL, "api", roster.BaseURL, "players API base URL")
	flag.StringVar(&opts.Cohort, "cohort", "", "cohort to add players to")
	flag.DurationVar(&opts.Timeout, "timeout", roster.DefaultTimeout, "timeout for each API request")
	flag.StringVar(&opts.Source, "source", "roster.tsv", "path to tab separated roster file")
	flag.BoolVar(&opts.DryRun, "dry-run", false, "only log which players would be added")
	flag.Parse()
	return opts
}
