package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"

	"github.com/cetteup/puppybowl/internal/domain/player"
	"github.com/cetteup/puppybowl/internal/trace"
)

type cohortParams struct {
	Cohort string `param:"cohort" validate:"required"`
}

type playerParams struct {
	Cohort string `param:"cohort" validate:"required"`
	ID     int    `param:"id" validate:"gt=0"`
}

func (h *Handler) HandleListPlayers(c echo.Context) error {
	params := cohortParams{}
	if err := h.bind(c, &params); err != nil {
		return err
	}

	players, err := h.repository.FindAll(c.Request().Context(), params.Cohort)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(fmt.Errorf("failed to find players: %w", err))
	}

	dtos := make([]PlayerDTO, 0, len(players))
	for _, p := range players {
		dtos = append(dtos, EncodePlayer(p, params.Cohort))
	}

	return c.JSON(http.StatusOK, ok(map[string][]PlayerDTO{"players": dtos}))
}

func (h *Handler) HandleGetPlayer(c echo.Context) error {
	params := playerParams{}
	if err := h.bind(c, &params); err != nil {
		return err
	}

	p, err := h.repository.FindByID(c.Request().Context(), params.Cohort, params.ID)
	if err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("No player found with id %d", params.ID))
		}
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(fmt.Errorf("failed to find player: %w", err))
	}

	return c.JSON(http.StatusOK, ok(map[string]PlayerDTO{"player": EncodePlayer(p, params.Cohort)}))
}

func (h *Handler) HandleCreatePlayer(c echo.Context) error {
	dto := CreatePlayerDTO{}
	if err := h.bind(c, &dto); err != nil {
		return err
	}

	draft, err := dto.Decode()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	p, err := h.repository.Insert(c.Request().Context(), dto.Cohort, draft)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(fmt.Errorf("failed to insert player: %w", err))
	}

	log.Info().
		Int(trace.LogPlayerID, p.ID).
		Str(trace.LogPlayerName, p.Name).
		Str(trace.LogCohort, dto.Cohort).
		Msg("Added new player")

	return c.JSON(http.StatusOK, ok(map[string]PlayerDTO{"newPlayer": EncodePlayer(p, dto.Cohort)}))
}

func (h *Handler) HandleDeletePlayer(c echo.Context) error {
	params := playerParams{}
	if err := h.bind(c, &params); err != nil {
		return err
	}

	if err := h.repository.Delete(c.Request().Context(), params.Cohort, params.ID); err != nil {
		if errors.Is(err, player.ErrPlayerNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("No player found with id %d", params.ID))
		}
		return echo.NewHTTPError(http.StatusInternalServerError).SetInternal(fmt.Errorf("failed to delete player: %w", err))
	}

	log.Info().
		Int(trace.LogPlayerID, params.ID).
		Str(trace.LogCohort, params.Cohort).
		Msg("Removed player")

	return c.JSON(http.StatusOK, ok(nil))
}

func (h *Handler) bind(c echo.Context, params any) error {
	if err := c.Bind(params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest).SetInternal(fmt.Errorf("failed to bind request parameters: %w", err))
	}

	if err := h.validate.StructCtx(c.Request().Context(), params); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid parameters").SetInternal(fmt.Errorf("invalid parameters: %w", err))
	}

	return nil
}
