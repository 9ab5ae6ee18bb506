package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/cetteup/puppybowl/internal/domain/player"
)

type Handler struct {
	repository player.Repository
	validate   *validator.Validate
}

func NewHandler(repository player.Repository) *Handler {
	return &Handler{
		repository: repository,
		validate:   validator.New(),
	}
}

// Register Adds the players routes to a group whose prefix provides the :cohort param
func (h *Handler) Register(g *echo.Group) {
	g.GET("/players", h.HandleListPlayers)
	g.GET("/players/:id", h.HandleGetPlayer)
	g.POST("/players", h.HandleCreatePlayer)
	g.DELETE("/players/:id", h.HandleDeletePlayer)
}
