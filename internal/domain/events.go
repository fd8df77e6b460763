package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventInstanceCreated EventType = "InstanceCreated"
	EventInstanceRemoved EventType = "InstanceRemoved"
	EventSearchChanged   EventType = "SearchChanged"
	EventValueChanged    EventType = "ValueChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// InstanceCreatedEvent is emitted when a widget instance is registered
type InstanceCreatedEvent struct {
	ID    string
	Value Value
}

func (e InstanceCreatedEvent) Type() EventType { return EventInstanceCreated }

// InstanceRemovedEvent is emitted when a widget instance is torn down
type InstanceRemovedEvent struct {
	ID string
}

func (e InstanceRemovedEvent) Type() EventType { return EventInstanceRemoved }

// SearchChangedEvent is emitted after a side's search text was applied
type SearchChangedEvent struct {
	ID      string
	Side    Side
	Text    string
	Matches int
}

func (e SearchChangedEvent) Type() EventType { return EventSearchChanged }

// ValueChangedEvent is emitted after a transfer moved at least one item
type ValueChangedEvent struct {
	ID    string
	From  Side
	Moved []string // values moved, in source order
	All   bool     // true for transfer-all
	Value Value    // snapshot after the move
}

func (e ValueChangedEvent) Type() EventType { return EventValueChanged }
