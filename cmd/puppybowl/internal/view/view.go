package view

import (
	"embed"
	"html/template"
	"io"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/cetteup/puppybowl/internal/domain/player"
)

const (
	TemplateRoster = "roster"
)

//go:embed templates/*.html
var templates embed.FS

// Page Everything shown on the roster page, rebuilt from scratch for every response
type Page struct {
	Players []player.Player
	// Details Player to show in the details panel, if any
	Details *player.Player
}

type Renderer struct {
	templates *template.Template
}

func NewRenderer() (*Renderer, error) {
	t, err := template.New("").
		Funcs(template.FuncMap{
			"teamID": formatTeamID,
		}).
		ParseFS(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	return &Renderer{
		templates: t,
	}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func formatTeamID(teamID *int) string {
	if teamID == nil {
		return "-"
	}
	return strconv.Itoa(*teamID)
}
