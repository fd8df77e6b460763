package logic

// Navigator moves a cursor over a list rendered in a fixed-height viewport
type Navigator struct {
	viewportHeight int
}

// NewNavigator creates a navigator for a viewport of the given height
func NewNavigator(viewportHeight int) *Navigator {
	if viewportHeight < 1 {
		viewportHeight = 1
	}
	return &Navigator{viewportHeight: viewportHeight}
}

// ViewportHeight returns the number of rows shown at once
func (n *Navigator) ViewportHeight() int {
	return n.viewportHeight
}

// Move applies a direction to the cursor and returns the new cursor and offset
func (n *Navigator) Move(direction string, cursor, offset, total int) (int, int) {
	switch direction {
	case "up":
		cursor--
	case "down":
		cursor++
	case "pageup":
		cursor -= n.viewportHeight
	case "pagedown":
		cursor += n.viewportHeight
	case "home":
		cursor = 0
	case "end":
		cursor = total - 1
	}
	return n.Clamp(cursor, offset, total)
}

// Clamp keeps the cursor inside the list and the viewport around the cursor
func (n *Navigator) Clamp(cursor, offset, total int) (int, int) {
	if total <= 0 {
		return 0, 0
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor >= total {
		cursor = total - 1
	}

	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+n.viewportHeight {
		offset = cursor - n.viewportHeight + 1
	}
	if maxOffset := total - n.viewportHeight; offset > maxOffset {
		offset = maxOffset
	}
	if offset < 0 {
		offset = 0
	}
	return cursor, offset
}
