package views

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/lipgloss"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width         int
	Height        int
	Title         string
	Panes         [2]PaneView
	ViewportRows  int
	StatusMessage string
	ShowHelp      bool
	HelpModel     help.Model
	Keys          help.KeyMap
}

// Renderer handles all view rendering
type Renderer struct {
	styles     *Styles
	paneRender *PaneRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:     styles,
		paneRender: NewPaneRenderer(styles),
	}
}

// Styles returns the renderer styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Render produces the complete view
func (r *Renderer) Render(state ViewState) string {
	content := &strings.Builder{}

	title := state.Title
	if title == "" {
		title = "transferlist"
	}
	content.WriteString(r.styles.Title.Render(title))
	content.WriteString("\n")

	// Use a default width if state.Width is not set
	termWidth := state.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	paneWidth := (termWidth - 4) / 2 // main container padding

	left := r.paneRender.Render(state.Panes[0], paneWidth, state.ViewportRows)
	right := r.paneRender.Render(state.Panes[1], paneWidth, state.ViewportRows)
	content.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, right))
	content.WriteString("\n")

	if state.StatusMessage != "" {
		content.WriteString(r.styles.Status.Render(state.StatusMessage))
		content.WriteString("\n")
	}

	if state.Keys != nil {
		hm := state.HelpModel
		hm.ShowAll = state.ShowHelp
		content.WriteString(hm.View(state.Keys))
	} else {
		content.WriteString(r.styles.Help.Render("Press ? for help"))
	}

	return r.styles.Main.Render(content.String())
}
