package ui

import (
	"transferlist/internal/domain"
	"transferlist/internal/eventbus"
)

// EventMsg wraps a domain event for the UI
type EventMsg struct {
	Event eventbus.DomainEvent
}

// searchDebounceMsg fires once typing in a search box has paused
type searchDebounceMsg struct {
	side domain.Side
	seq  int
}

// summaryPagerMsg contains the result of the summary pager
type summaryPagerMsg struct {
	err error
}

// copyValueMsg contains the result of copying the value to the clipboard
type copyValueMsg struct {
	count int
	err   error
}

// clearStatusMsg clears the status bar
type clearStatusMsg struct{}

// pauseRenderingMsg signals to pause Bubble Tea rendering
type pauseRenderingMsg struct{}

// resumeRenderingMsg signals to resume Bubble Tea rendering
type resumeRenderingMsg struct{}
