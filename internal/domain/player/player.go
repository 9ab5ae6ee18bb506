package player

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPlayerNotFound = errors.New("player not found")
)

type Player struct {
	ID        int
	Name      string
	Breed     string
	Status    Status
	ImageURL  string
	TeamID    *int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Draft A player that has not been created yet (the server assigns the ID)
type Draft struct {
	Name     string
	Breed    string
	Status   Status
	ImageURL string
	TeamID   *int
}

type Repository interface {
	FindAll(ctx context.Context, cohort string) ([]Player, error)
	FindByID(ctx context.Context, cohort string, id int) (Player, error)
	Insert(ctx context.Context, cohort string, draft Draft) (Player, error)
	Delete(ctx context.Context, cohort string, id int) error
}
