package domain

import "fmt"

// DuplicateValueError is returned when a value appears more than once across the
// two lists of a transfer list.
type DuplicateValueError struct {
	Value string
}

func (e DuplicateValueError) Error() string {
	return fmt.Sprintf("duplicate item value %q", e.Value)
}

// InvalidSideError reports a side that is neither "left" nor "right"
type InvalidSideError struct {
	Side string
}

func (e InvalidSideError) Error() string {
	return fmt.Sprintf("invalid side %q", e.Side)
}
