package domain

// Item is a single checklist entry. Items move between lists but are never mutated.
type Item struct {
	Value string `json:"value" toml:"value" yaml:"value"`
	Label string `json:"label" toml:"label" yaml:"label"`
}

// Side identifies one of the two lists of a transfer list
type Side int

const (
	Left Side = iota
	Right
)

// Sides lists both sides in render order
var Sides = [2]Side{Left, Right}

// String returns the wire name of the side
func (s Side) String() string {
	switch s {
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "invalid"
	}
}

// Valid reports whether s is Left or Right
func (s Side) Valid() bool {
	return s == Left || s == Right
}

// Other returns the opposite side
func (s Side) Other() Side {
	return Sides[1-s.Index()]
}

// Index returns the array index of the side. An out of range side is a
// programming error and panics with InvalidSideError.
func (s Side) Index() int {
	if !s.Valid() {
		panic(InvalidSideError{Side: s.String()})
	}
	return int(s)
}

// ParseSide converts "left"/"right" into a Side
func ParseSide(name string) (Side, error) {
	switch name {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	default:
		return Left, InvalidSideError{Side: name}
	}
}

// Value holds the two lists of a transfer list: index 0 is the left list,
// index 1 the right list.
type Value [2][]Item

// NewValue builds a Value from the left and right lists
func NewValue(left, right []Item) Value {
	return Value{left, right}
}

// Side returns the list for the given side
func (v Value) Side(s Side) []Item {
	return v[s.Index()]
}

// Clone returns a deep copy so callers can't alias the owner's slices
func (v Value) Clone() Value {
	var out Value
	for i := range v {
		out[i] = make([]Item, len(v[i]))
		copy(out[i], v[i])
	}
	return out
}

// Len returns the total number of items across both lists
func (v Value) Len() int {
	return len(v[0]) + len(v[1])
}

// Contains reports which side holds the given value
func (v Value) Contains(value string) (Side, bool) {
	for _, side := range Sides {
		for _, item := range v[side] {
			if item.Value == value {
				return side, true
			}
		}
	}
	return Left, false
}
