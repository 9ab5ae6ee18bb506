package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/cetteup/puppybowl/cmd/puppybowl/internal/view"
	"github.com/cetteup/puppybowl/internal/domain/player"
	"github.com/cetteup/puppybowl/internal/trace"
)

type playerParams struct {
	ID int `param:"id" validate:"gt=0"`
}

func (h *Handler) HandleGetRoster(c echo.Context) error {
	return h.render(c, nil)
}

func (h *Handler) HandleGetPlayerDetails(c echo.Context) error {
	params := playerParams{}
	if err := h.bind(c, &params); err != nil {
		log.Warn().
			Err(err).
			Str("URI", c.Request().RequestURI).
			Msg("Invalid player details request")
		return h.render(c, nil)
	}

	p, err := h.roster.Get(c.Request().Context(), params.ID)
	if err != nil {
		log.Error().
			Err(err).
			Int(trace.LogPlayerID, params.ID).
			Msg("Trouble fetching player")
		return h.render(c, nil)
	}

	log.Debug().
		Int(trace.LogPlayerID, p.ID).
		Str(trace.LogPlayerName, p.Name).
		Msg("Fetched player details")

	return h.render(c, &p)
}

func (h *Handler) HandleAddPlayer(c echo.Context) error {
	form := PlayerForm{}
	if err := h.bind(c, &form); err != nil {
		log.Warn().
			Err(err).
			Msg("Invalid new player form")
		return h.redirect(c)
	}

	draft, err := form.Decode()
	if err != nil {
		log.Warn().
			Err(err).
			Msg("Invalid new player form")
		return h.redirect(c)
	}

	p, err := h.roster.Create(c.Request().Context(), draft)
	if err != nil {
		log.Error().
			Err(err).
			Str(trace.LogPlayerName, draft.Name).
			Msg("Trouble adding player")
		return h.redirect(c)
	}

	log.Info().
		Int(trace.LogPlayerID, p.ID).
		Str(trace.LogPlayerName, p.Name).
		Msg("Added player to roster")

	return h.redirect(c)
}

func (h *Handler) HandleRemovePlayer(c echo.Context) error {
	params := playerParams{}
	if err := h.bind(c, &params); err != nil {
		log.Warn().
			Err(err).
			Str("URI", c.Request().RequestURI).
			Msg("Invalid remove player request")
		return h.redirect(c)
	}

	// Re-render regardless, the list will show whether the player is actually gone
	if err := h.roster.Delete(c.Request().Context(), params.ID); err != nil {
		log.Error().
			Err(err).
			Int(trace.LogPlayerID, params.ID).
			Msg("Trouble removing player from roster")
		return h.redirect(c)
	}

	log.Info().
		Int(trace.LogPlayerID, params.ID).
		Msg("Removed player from roster")

	return h.redirect(c)
}

func (h *Handler) render(c echo.Context, details *player.Player) error {
	players, err := h.roster.List(c.Request().Context())
	if err != nil {
		log.Error().
			Err(err).
			Msg("Trouble fetching players")
		players = nil
	}

	return c.Render(http.StatusOK, view.TemplateRoster, view.Page{
		Players: players,
		Details: details,
	})
}

// redirect Sends the browser back to the roster, which re-fetches the full list
func (h *Handler) redirect(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}

func (h *Handler) bind(c echo.Context, params any) error {
	if err := c.Bind(params); err != nil {
		return fmt.Errorf("failed to bind request parameters: %w", err)
	}

	if err := h.validate.StructCtx(c.Request().Context(), params); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	return nil
}
