package rosterfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetteup/puppybowl/cmd/seeder/internal/rosterfile"
	"github.com/cetteup/puppybowl/internal"
	"github.com/cetteup/puppybowl/internal/domain/player"
)

func TestEntry_UnmarshalText(t *testing.T) {
	tests := []struct {
		name            string
		text            string
		want            rosterfile.Entry
		wantErrContains string
	}{
		{
			name: "parses required fields",
			text: "Rex\tLab\thttps://example.com/rex.png",
			want: rosterfile.Entry{Name: "Rex", Breed: "Lab", ImageURL: "https://example.com/rex.png"},
		},
		{
			name: "parses team id and status",
			text: "Fido\tPug\tu2\t3\tfield",
			want: rosterfile.Entry{Name: "Fido", Breed: "Pug", ImageURL: "u2", TeamID: internal.ToPointer(3), Status: player.Field},
		},
		{
			name: "allows empty image url and team id",
			text: "Bella\tBeagle\t\t\tbench",
			want: rosterfile.Entry{Name: "Bella", Breed: "Beagle", Status: player.Bench},
		},
		{
			name:            "fails for too few fields",
			text:            "Rex\tLab",
			wantErrContains: "expected 3 to 5 fields, got 2",
		},
		{
			name:            "fails for missing name",
			text:            "\tLab\tu",
			wantErrContains: "name and breed are required",
		},
		{
			name:            "fails for non-numeric team id",
			text:            "Rex\tLab\tu\tthree",
			wantErrContains: `invalid team id "three"`,
		},
		{
			name:            "fails for invalid status",
			text:            "Rex\tLab\tu\t1\tinjured",
			wantErrContains: "invalid status",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN
			var actual rosterfile.Entry
			err := actual.UnmarshalText([]byte(tt.text))

			// THEN
			if tt.wantErrContains != "" {
				assert.ErrorContains(t, err, tt.wantErrContains)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, actual)
			}
		})
	}
}

func TestLoadPlayersFromFile(t *testing.T) {
	// GIVEN
	name := filepath.Join(t.TempDir(), "roster.tsv")
	content := "# name\tbreed\timageURL\tteamID\tstatus\n" +
		"Rex\tLab\tu\t2\n" +
		"\n" +
		"Fido\tPug\tu2\t\tfield\r\n"
	require.NoError(t, os.WriteFile(name, []byte(content), 0o600))

	// WHEN
	var actual []rosterfile.Entry
	err := rosterfile.LoadPlayersFromFile(context.Background(), name, func(ctx context.Context, e rosterfile.Entry) error {
		actual = append(actual, e)
		return nil
	})

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []rosterfile.Entry{
		{Name: "Rex", Breed: "Lab", ImageURL: "u", TeamID: internal.ToPointer(2)},
		{Name: "Fido", Breed: "Pug", ImageURL: "u2", Status: player.Field},
	}, actual)
}

func TestLoadPlayersFromFile_InvalidLine(t *testing.T) {
	// GIVEN
	name := filepath.Join(t.TempDir(), "roster.tsv")
	require.NoError(t, os.WriteFile(name, []byte("Rex\tLab\tu\nBella\n"), 0o600))

	// WHEN
	err := rosterfile.LoadPlayersFromFile(context.Background(), name, func(ctx context.Context, e rosterfile.Entry) error {
		return nil
	})

	// THEN
	assert.ErrorContains(t, err, "line 2: invalid roster line")
}
