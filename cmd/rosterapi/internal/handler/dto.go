package handler

import (
	"time"

	"github.com/cetteup/puppybowl/internal/domain/player"
)

type Envelope struct {
	Success bool      `json:"success"`
	Error   *ErrorDTO `json:"error"`
	Data    any       `json:"data"`
}

type ErrorDTO struct {
	Name    string `json:"name"`
	Message string `json:"message"`
}

type PlayerDTO struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Breed     string    `json:"breed"`
	Status    string    `json:"status"`
	ImageURL  string    `json:"imageUrl"`
	TeamID    *int      `json:"teamId"`
	Cohort    string    `json:"cohort"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreatePlayerDTO Clients send imageURL/teamID (as opposed to imageUrl/teamId in responses)
type CreatePlayerDTO struct {
	Cohort   string `param:"cohort" json:"-" validate:"required"`
	Name     string `json:"name" validate:"required"`
	Breed    string `json:"breed" validate:"required"`
	Status   string `json:"status" validate:"omitempty,oneof=bench field"`
	ImageURL string `json:"imageURL"`
	TeamID   *int   `json:"teamID" validate:"omitempty,gt=0"`
}

func EncodePlayer(p player.Player, cohort string) PlayerDTO {
	status, _ := p.Status.MarshalText()
	return PlayerDTO{
		ID:        p.ID,
		Name:      p.Name,
		Breed:     p.Breed,
		Status:    string(status),
		ImageURL:  p.ImageURL,
		TeamID:    p.TeamID,
		Cohort:    cohort,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (d CreatePlayerDTO) Decode() (player.Draft, error) {
	var status player.Status
	if err := status.UnmarshalText([]byte(d.Status)); err != nil {
		return player.Draft{}, err
	}

	return player.Draft{
		Name:     d.Name,
		Breed:    d.Breed,
		Status:   status,
		ImageURL: d.ImageURL,
		TeamID:   d.TeamID,
	}, nil
}

func ok(data any) Envelope {
	return Envelope{
		Success: true,
		Data:    data,
	}
}
