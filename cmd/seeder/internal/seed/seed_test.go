package seed_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetteup/puppybowl/cmd/seeder/internal/rosterfile"
	"github.com/cetteup/puppybowl/cmd/seeder/internal/seed"
	"github.com/cetteup/puppybowl/internal"
	"github.com/cetteup/puppybowl/internal/domain/player"
)

func TestSeeder_Add(t *testing.T) {
	tests := []struct {
		name       string
		existing   []player.Player
		entries    []rosterfile.Entry
		dryRun     bool
		wantDrafts []player.Draft
		wantStats  seed.Stats
	}{
		{
			name:     "adds players not yet on roster",
			existing: []player.Player{{ID: 1, Name: "Rex"}},
			entries: []rosterfile.Entry{
				{Name: "Fido", Breed: "Pug", ImageURL: "u2", TeamID: internal.ToPointer(3)},
			},
			wantDrafts: []player.Draft{
				{Name: "Fido", Breed: "Pug", ImageURL: "u2", TeamID: internal.ToPointer(3)},
			},
			wantStats: seed.Stats{Processed: 1, Added: 1},
		},
		{
			name:     "skips players on roster regardless of case",
			existing: []player.Player{{ID: 1, Name: "Rex"}},
			entries: []rosterfile.Entry{
				{Name: "REX", Breed: "Lab"},
				{Name: "Bella", Breed: "Beagle", Status: player.Field},
			},
			wantDrafts: []player.Draft{
				{Name: "Bella", Breed: "Beagle", Status: player.Field},
			},
			wantStats: seed.Stats{Processed: 2, Added: 1, Skipped: 1},
		},
		{
			name: "skips duplicates within the roster file",
			entries: []rosterfile.Entry{
				{Name: "Fido", Breed: "Pug"},
				{Name: "fido", Breed: "Pug"},
			},
			wantDrafts: []player.Draft{
				{Name: "Fido", Breed: "Pug"},
			},
			wantStats: seed.Stats{Processed: 2, Added: 1, Skipped: 1},
		},
		{
			name:   "does not create players in dry run",
			dryRun: true,
			entries: []rosterfile.Entry{
				{Name: "Fido", Breed: "Pug"},
				{Name: "Fido", Breed: "Pug"},
			},
			wantStats: seed.Stats{Processed: 2, Added: 1, Skipped: 1},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// GIVEN
			roster := &fakeRoster{players: tt.existing}
			seeder := seed.NewSeeder(roster, tt.dryRun)
			require.NoError(t, seeder.Prepare(context.Background()))

			// WHEN
			for _, e := range tt.entries {
				require.NoError(t, seeder.Add(context.Background(), e))
			}

			// THEN
			assert.Equal(t, tt.wantDrafts, roster.drafts)
			assert.Equal(t, tt.wantStats, seeder.Stats())
		})
	}
}

func TestSeeder_Prepare_ListFails(t *testing.T) {
	// GIVEN
	seeder := seed.NewSeeder(&fakeRoster{listErr: errors.New("connection refused")}, false)

	// WHEN
	err := seeder.Prepare(context.Background())

	// THEN
	assert.ErrorContains(t, err, "failed to list existing players: connection refused")
}

func TestSeeder_Add_CreateFails(t *testing.T) {
	// GIVEN
	seeder := seed.NewSeeder(&fakeRoster{createErr: errors.New("request failed with status code 400")}, false)
	require.NoError(t, seeder.Prepare(context.Background()))

	// WHEN
	err := seeder.Add(context.Background(), rosterfile.Entry{Name: "Fido", Breed: "Pug"})

	// THEN
	assert.ErrorContains(t, err, "failed to add player Fido")
	assert.Equal(t, seed.Stats{Processed: 1}, seeder.Stats())
}

type fakeRoster struct {
	players []player.Player
	drafts  []player.Draft

	listErr   error
	createErr error
}

func (r *fakeRoster) List(_ context.Context) ([]player.Player, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return r.players, nil
}

func (r *fakeRoster) Create(_ context.Context, draft player.Draft) (player.Player, error) {
	if r.createErr != nil {
		return player.Player{}, r.createErr
	}
	r.drafts = append(r.drafts, draft)
	p := player.Player{ID: len(r.players) + 100, Name: draft.Name, Breed: draft.Breed}
	r.players = append(r.players, p)
	return p, nil
}
