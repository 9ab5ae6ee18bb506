package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// HandleError Renders any error as a failed response envelope, mirroring the shape of successful responses
func HandleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	code := http.StatusInternalServerError
	message := http.StatusText(code)
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		message = http.StatusText(code)
		if m, ok := he.Message.(string); ok && m != "" {
			message = m
		}
		if he.Internal != nil {
			err = he.Internal
		}
	}

	event := log.Debug()
	if code >= http.StatusInternalServerError {
		event = log.Error()
	}
	event.
		Err(err).
		Int("code", code).
		Str("URI", c.Request().RequestURI).
		Msg("Request failed")

	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, Envelope{
			Success: false,
			Error: &ErrorDTO{
				Name:    fmt.Sprintf("%d %s", code, http.StatusText(code)),
				Message: message,
			},
		})
	}
	if err != nil {
		log.Error().
			Err(err).
			Msg("Failed to write error response")
	}
}
