package seed

import (
	"context"
	"fmt"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/cetteup/puppybowl/cmd/seeder/internal/rosterfile"
	"github.com/cetteup/puppybowl/internal/domain/player"
	"github.com/cetteup/puppybowl/internal/trace"
)

type roster interface {
	List(ctx context.Context) ([]player.Player, error)
	Create(ctx context.Context, draft player.Draft) (player.Player, error)
}

type Stats struct {
	Processed int
	Added     int
	Skipped   int
}

// Seeder Adds players to the roster unless a player with the same name (ignoring case) is already on it
type Seeder struct {
	roster roster
	dryRun bool

	catalog map[string]int
	stats   Stats
}

func NewSeeder(roster roster, dryRun bool) *Seeder {
	return &Seeder{
		roster: roster,
		dryRun: dryRun,
	}
}

// Prepare Loads the current roster, must be called before Add
func (s *Seeder) Prepare(ctx context.Context) error {
	existing, err := s.roster.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list existing players: %w", err)
	}

	// Create map for consistently fast lookups
	s.catalog = make(map[string]int, len(existing))
	for _, p := range existing {
		s.catalog[normalizeName(p.Name)] = p.ID
	}

	return nil
}

func (s *Seeder) Add(ctx context.Context, e rosterfile.Entry) error {
	s.stats.Processed++

	if id, exists := s.catalog[normalizeName(e.Name)]; exists {
		s.stats.Skipped++
		log.Debug().
			Int(trace.LogPlayerID, id).
			Str(trace.LogPlayerName, e.Name).
			Msg("Player already on roster, skipping")
		return nil
	}

	if s.dryRun {
		s.stats.Added++
		s.catalog[normalizeName(e.Name)] = 0
		log.Info().
			Str(trace.LogPlayerName, e.Name).
			Msg("Would add new player")
		return nil
	}

	p, err := s.roster.Create(ctx, e.Draft())
	if err != nil {
		return fmt.Errorf("failed to add player %s: %w", e.Name, err)
	}

	s.stats.Added++
	s.catalog[normalizeName(p.Name)] = p.ID
	log.Debug().
		Int(trace.LogPlayerID, p.ID).
		Str(trace.LogPlayerName, p.Name).
		Msg("Added new player")

	return nil
}

func (s *Seeder) Stats() Stats {
	return s.stats
}

func normalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
