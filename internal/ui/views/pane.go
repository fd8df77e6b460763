package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"transferlist/internal/domain"
	"transferlist/internal/logic"
	"transferlist/internal/widget"
)

// PaneView contains what is needed to draw one list
type PaneView struct {
	Side               domain.Side
	Title              string
	SearchInput        string // rendered search box
	Searching          bool
	View               widget.View
	Selection          logic.Selection
	Cursor             int
	Offset             int
	Active             bool
	TransferEnabled    bool
	TransferAllEnabled bool
	ShowTransferAll    bool
}

// PaneRenderer draws a single checklist with its search box and buttons
type PaneRenderer struct {
	styles *Styles
}

// NewPaneRenderer creates a new pane renderer
func NewPaneRenderer(styles *Styles) *PaneRenderer {
	return &PaneRenderer{styles: styles}
}

// Render draws a pane width columns wide showing at most rows items
func (r *PaneRenderer) Render(p PaneView, width, rows int) string {
	inner := width - 4 // content width inside border and padding
	if inner < 10 {
		inner = 10
	}

	var b strings.Builder
	if p.Title != "" {
		b.WriteString(r.styles.PaneTitle.Render(ansi.Truncate(p.Title, inner, "…")))
		b.WriteString("\n")
	}

	searchStyle := r.styles.Search
	if p.Searching {
		searchStyle = r.styles.SearchActive
	}
	b.WriteString(searchStyle.Render("/ " + p.SearchInput))
	b.WriteString("\n")
	b.WriteString(r.renderButtons(p))
	b.WriteString("\n")
	b.WriteString(r.renderItems(p, inner, rows))

	style := r.styles.Pane
	if p.Active {
		style = r.styles.ActivePane
	}
	return style.Width(inner + 2).Render(b.String())
}

func (r *PaneRenderer) renderButtons(p PaneView) string {
	transfer, transferAll := "Transfer →", "Transfer all ⇉"
	if p.Side == domain.Right {
		transfer, transferAll = "← Transfer", "⇇ Transfer all"
	}

	buttons := []string{r.button("["+transfer+"]", p.TransferEnabled)}
	if p.ShowTransferAll {
		buttons = append(buttons, r.button("["+transferAll+"]", p.TransferAllEnabled))
	}
	return strings.Join(buttons, " ")
}

func (r *PaneRenderer) button(label string, enabled bool) string {
	if enabled {
		return r.styles.Button.Render(label)
	}
	return r.styles.ButtonDisabled.Render(label)
}

// renderItems draws a marker row, rows item rows and another marker row
func (r *PaneRenderer) renderItems(p PaneView, width, rows int) string {
	rendered := p.View.Rendered
	lines := make([]string, 0, rows+2)

	if len(rendered) == 0 {
		lines = append(lines, "", r.styles.Dim.Render(p.View.Empty))
		return strings.Join(padLines(lines, rows+2), "\n")
	}

	end := p.Offset + rows
	if end > len(rendered) {
		end = len(rendered)
	}

	above := ""
	if p.Offset > 0 {
		above = r.styles.Scroll.Render(fmt.Sprintf("↑ %d more", p.Offset))
	}
	lines = append(lines, above)

	for i := p.Offset; i < end; i++ {
		item := rendered[i]
		box := "[ ]"
		if p.Selection.Has(item.Value) {
			box = r.styles.Checked.Render("[x]")
		}
		label := ansi.Truncate(item.Label, width-4, "…")
		line := fmt.Sprintf("%s %s", box, label)
		if p.Active && i == p.Cursor {
			line = r.styles.Cursor.Render(lipgloss.PlaceHorizontal(width, lipgloss.Left, line))
		}
		lines = append(lines, line)
	}
	lines = padLines(lines, rows+1)

	below := ""
	if hidden := len(rendered) - end; hidden > 0 {
		below = r.styles.Scroll.Render(fmt.Sprintf("↓ %d more", hidden))
	}
	lines = append(lines, below)
	return strings.Join(lines, "\n")
}

func padLines(lines []string, n int) []string {
	for len(lines) < n {
		lines = append(lines, "")
	}
	return lines
}
