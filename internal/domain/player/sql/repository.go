package sql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/cetteup/puppybowl/internal/domain/player"
)

const (
	playerTable = "players"

	columnID        = "id"
	columnCohort    = "cohort"
	columnName      = "name"
	columnBreed     = "breed"
	columnStatus    = "status"
	columnImageURL  = "image_url"
	columnTeamID    = "team_id"
	columnCreatedAt = "created_at"
	columnUpdatedAt = "updated_at"
)

var playerColumns = []string{
	columnID,
	columnName,
	columnBreed,
	columnStatus,
	columnImageURL,
	columnTeamID,
	columnCreatedAt,
	columnUpdatedAt,
}

var _ player.Repository = (*Repository)(nil)

type Repository struct {
	db *sql.DB

	now func() time.Time
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (r *Repository) FindAll(ctx context.Context, cohort string) ([]player.Player, error) {
	query := selectPlayers(cohort).OrderBy(columnID)

	rows, err := query.RunWith(r.db).QueryContext(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	players := make([]player.Player, 0)
	for rows.Next() {
		p, err2 := scanPlayer(rows)
		if err2 != nil {
			return nil, err2
		}
		players = append(players, p)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return players, nil
}

func (r *Repository) FindByID(ctx context.Context, cohort string, id int) (player.Player, error) {
	query := selectPlayers(cohort).
		Where(sq.Eq{columnID: id})

	p, err := scanPlayer(query.RunWith(r.db).QueryRowContext(ctx))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return player.Player{}, player.ErrPlayerNotFound
		}
		return player.Player{}, err
	}

	return p, nil
}

func (r *Repository) Insert(ctx context.Context, cohort string, draft player.Draft) (player.Player, error) {
	query := insertPlayer(cohort, draft, r.now())

	res, err := query.RunWith(r.db).ExecContext(ctx)
	if err != nil {
		return player.Player{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return player.Player{}, fmt.Errorf("failed to determine id of inserted player: %w", err)
	}

	return r.FindByID(ctx, cohort, int(id))
}

func (r *Repository) Delete(ctx context.Context, cohort string, id int) error {
	query := deletePlayer(cohort, id)

	res, err := query.RunWith(r.db).ExecContext(ctx)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}

	if affected == 0 {
		return player.ErrPlayerNotFound
	}

	return nil
}

func selectPlayers(cohort string) sq.SelectBuilder {
	return sq.
		Select(playerColumns...).
		From(playerTable).
		Where(sq.Eq{columnCohort: cohort})
}

func insertPlayer(cohort string, draft player.Draft, now time.Time) sq.InsertBuilder {
	var teamID sql.NullInt64
	if draft.TeamID != nil {
		teamID = sql.NullInt64{Int64: int64(*draft.TeamID), Valid: true}
	}

	return sq.
		Insert(playerTable).
		Columns(
			columnCohort,
			columnName,
			columnBreed,
			columnStatus,
			columnImageURL,
			columnTeamID,
			columnCreatedAt,
			columnUpdatedAt,
		).
		Values(
			cohort,
			draft.Name,
			draft.Breed,
			draft.Status.OrDefault().String(),
			draft.ImageURL,
			teamID,
			now,
			now,
		)
}

func deletePlayer(cohort string, id int) sq.DeleteBuilder {
	return sq.
		Delete(playerTable).
		Where(sq.Eq{columnCohort: cohort}).
		Where(sq.Eq{columnID: id})
}

func scanPlayer(row sq.RowScanner) (player.Player, error) {
	var p player.Player
	var status string
	var teamID sql.NullInt64
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Breed,
		&status,
		&p.ImageURL,
		&teamID,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		return player.Player{}, err
	}

	if err = p.Status.UnmarshalText([]byte(status)); err != nil {
		return player.Player{}, err
	}

	if teamID.Valid {
		id := int(teamID.Int64)
		p.TeamID = &id
	}

	return p, nil
}
