package roster

import (
	"time"

	"github.com/cetteup/puppybowl/internal/domain/player"
)

type envelope[T any] struct {
	Success *bool     `json:"success"`
	Error   *ErrorDTO `json:"error"`
	Data    *T        `json:"data"`
}

type ErrorDTO struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type PlayersData struct {
	Players []PlayerDTO `json:"players"`
}

type PlayerData struct {
	Player    *PlayerDTO `json:"player"`
	NewPlayer *PlayerDTO `json:"newPlayer"`
}

// PlayerDTO Incoming player shape, note the camel case imageUrl/teamId
type PlayerDTO struct {
	ID        int           `json:"id"`
	Name      string        `json:"name"`
	Breed     string        `json:"breed"`
	Status    player.Status `json:"status"`
	ImageURL  string        `json:"imageUrl"`
	TeamID    *int          `json:"teamId"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// CreatePlayerDTO Outgoing player shape, the API expects imageURL/teamID (upper case) here
type CreatePlayerDTO struct {
	Name     string        `json:"name"`
	Breed    string        `json:"breed"`
	ImageURL string        `json:"imageURL"`
	TeamID   *int          `json:"teamID"`
	Status   player.Status `json:"status,omitempty"`
}

func (d PlayerDTO) decode() player.Player {
	return player.Player{
		ID:        d.ID,
		Name:      d.Name,
		Breed:     d.Breed,
		Status:    d.Status,
		ImageURL:  d.ImageURL,
		TeamID:    d.TeamID,
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func encodeDraft(draft player.Draft) CreatePlayerDTO {
	return CreatePlayerDTO{
		Name:     draft.Name,
		Breed:    draft.Breed,
		ImageURL: draft.ImageURL,
		TeamID:   draft.TeamID,
		Status:   draft.Status,
	}
}
