package sql

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cetteup/puppybowl/internal"
	"github.com/cetteup/puppybowl/internal/domain/player"
)

func TestSelectPlayers(t *testing.T) {
	// WHEN
	query, args, err := selectPlayers("puppies").Where("id = ?", 3).ToSql()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "SELECT id, name, breed, status, image_url, team_id, created_at, updated_at FROM players WHERE cohort = ? AND id = ?", query)
	assert.Equal(t, []interface{}{"puppies", 3}, args)
}

func TestInsertPlayer(t *testing.T) {
	now := time.Date(2026, 2, 17, 23, 0, 0, 0, time.UTC)
	tests := []struct {
		name     string
		draft    player.Draft
		wantArgs []interface{}
	}{
		{
			name:     "inserts player with team",
			draft:    player.Draft{Name: "Fido", Breed: "Pug", Status: player.Field, ImageURL: "u2", TeamID: internal.ToPointer(3)},
			wantArgs: []interface{}{"puppies", "Fido", "Pug", "Field", "u2", sql.NullInt64{Int64: 3, Valid: true}, now, now},
		},
		{
			name:     "benches player without status and stores null team",
			draft:    player.Draft{Name: "Rex", Breed: "Lab"},
			wantArgs: []interface{}{"puppies", "Rex", "Lab", "Bench", "", sql.NullInt64{}, now, now},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// WHEN
			query, args, err := insertPlayer("puppies", tt.draft, now).ToSql()

			// THEN
			require.NoError(t, err)
			assert.Equal(t, "INSERT INTO players (cohort,name,breed,status,image_url,team_id,created_at,updated_at) VALUES (?,?,?,?,?,?,?,?)", query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestDeletePlayer(t *testing.T) {
	// WHEN
	query, args, err := deletePlayer("puppies", 7).ToSql()

	// THEN
	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM players WHERE cohort = ? AND id = ?", query)
	assert.Equal(t, []interface{}{"puppies", 7}, args)
}
