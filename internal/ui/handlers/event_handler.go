package handlers

import (
	"fmt"

	"transferlist/internal/domain"
	"transferlist/internal/eventbus"
	"transferlist/internal/ui/state"
)

// EventHandler handles domain events and updates state
type EventHandler struct {
	state  *state.AppState
	id     string
	titles [2]string
}

// NewEventHandler creates an event handler for one instance
func NewEventHandler(appState *state.AppState, id string, titles [2]string) *EventHandler {
	return &EventHandler{
		state:  appState,
		id:     id,
		titles: titles,
	}
}

// HandleEvent processes a domain event and reports whether the status bar changed
func (h *EventHandler) HandleEvent(event eventbus.DomainEvent) bool {
	switch e := event.(type) {
	case eventbus.ValueChangedEvent:
		if e.ID != h.id {
			return false
		}
		noun := "items"
		if len(e.Moved) == 1 {
			noun = "item"
		}
		h.state.StatusMessage = fmt.Sprintf("Moved %d %s to %s", len(e.Moved), noun, h.sideName(e.From.Other()))
		return true
	}
	return false
}

func (h *EventHandler) sideName(side domain.Side) string {
	if t := h.titles[side.Index()]; t != "" {
		return t
	}
	return side.String()
}
