package handler

import (
	"strconv"

	"github.com/cetteup/puppybowl/internal"
	"github.com/cetteup/puppybowl/internal/domain/player"
)

// PlayerForm Values submitted through the new player form, all of which arrive as text
type PlayerForm struct {
	Name     string `form:"name" validate:"required"`
	Breed    string `form:"breed" validate:"required"`
	ImageURL string `form:"imageURL"`
	TeamID   string `form:"teamID" validate:"omitempty,numeric"`
	Status   string `form:"status" validate:"omitempty,oneof=bench field"`
}

func (f PlayerForm) Decode() (player.Draft, error) {
	draft := player.Draft{
		Name:     f.Name,
		Breed:    f.Breed,
		ImageURL: f.ImageURL,
	}

	if f.TeamID != "" {
		teamID, err := strconv.Atoi(f.TeamID)
		if err != nil {
			return player.Draft{}, err
		}
		draft.TeamID = internal.ToPointer(teamID)
	}

	if err := draft.Status.UnmarshalText([]byte(f.Status)); err != nil {
		return player.Draft{}, err
	}

	return draft, nil
}
