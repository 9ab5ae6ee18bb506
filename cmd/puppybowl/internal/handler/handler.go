package handler

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/cetteup/puppybowl/internal/domain/player"
)

type roster interface {
	List(ctx context.Context) ([]player.Player, error)
	Get(ctx context.Context, id int) (player.Player, error)
	Create(ctx context.Context, draft player.Draft) (player.Player, error)
	Delete(ctx context.Context, id int) error
}

// Handler Maps each roster page action onto exactly one roster operation, followed by a full re-render.
// Failures are logged but never shown, the page simply reflects whatever the API returned.
type Handler struct {
	roster   roster
	validate *validator.Validate
}

func NewHandler(roster roster) *Handler {
	return &Handler{
		roster:   roster,
		validate: validator.New(),
	}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.HandleGetRoster)
	e.GET("/players/:id", h.HandleGetPlayerDetails)
	e.POST("/players", h.HandleAddPlayer)
	e.POST("/players/:id/delete", h.HandleRemovePlayer)
}
