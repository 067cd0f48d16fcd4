package logic

// Navigator handles cursor movement and viewport management for a list of
// fixed-height items
type Navigator struct {
	selectedIndex  int
	viewportOffset int // first visible item
	viewportHeight int // lines available, including scroll indicators
	itemHeight     int
	count          int
}

// NewNavigator creates a navigator for items itemHeight lines tall
func NewNavigator(itemHeight int) *Navigator {
	if itemHeight < 1 {
		itemHeight = 1
	}
	return &Navigator{itemHeight: itemHeight, viewportHeight: 20}
}

// SetCount updates the number of items, keeping the cursor in range
func (n *Navigator) SetCount(count int) {
	if count < 0 {
		count = 0
	}
	n.count = count
	n.clamp()
}

// SetHeight updates the number of lines the list may use
func (n *Navigator) SetHeight(lines int) {
	n.viewportHeight = lines
	n.clamp()
}

// SetItemHeight changes how many lines each item takes
func (n *Navigator) SetItemHeight(lines int) {
	if lines < 1 {
		lines = 1
	}
	n.itemHeight = lines
	n.clamp()
}

// Reset moves the cursor back to the first item
func (n *Navigator) Reset() {
	n.selectedIndex = 0
	n.viewportOffset = 0
}

// Move moves the cursor by delta items
func (n *Navigator) Move(delta int) {
	n.selectedIndex += delta
	n.clamp()
}

// PageUp moves the cursor up by one screen
func (n *Navigator) PageUp() {
	n.Move(-n.Visible())
}

// PageDown moves the cursor down by one screen
func (n *Navigator) PageDown() {
	n.Move(n.Visible())
}

// Home moves to the first item
func (n *Navigator) Home() {
	n.selectedIndex = 0
	n.clamp()
}

// End moves to the last item
func (n *Navigator) End() {
	n.selectedIndex = n.count - 1
	n.clamp()
}

// GetSelectedIndex returns the current selected index
func (n *Navigator) GetSelectedIndex() int {
	return n.selectedIndex
}

// GetViewportOffset returns the current viewport offset
func (n *Navigator) GetViewportOffset() int {
	return n.viewportOffset
}

// Visible returns how many items fit, two lines being kept for the scroll
// indicators
func (n *Navigator) Visible() int {
	v := (n.viewportHeight - 2) / n.itemHeight
	if v < 1 {
		return 1
	}
	return v
}

// Window returns the half-open range of visible items
func (n *Navigator) Window() (start, end int) {
	start = n.viewportOffset
	end = start + n.Visible()
	if end > n.count {
		end = n.count
	}
	return start, end
}

// clamp keeps the cursor inside the list and visible
func (n *Navigator) clamp() {
	if n.selectedIndex >= n.count {
		n.selectedIndex = n.count - 1
	}
	if n.selectedIndex < 0 {
		n.selectedIndex = 0
	}

	visible := n.Visible()
	if n.selectedIndex < n.viewportOffset {
		n.viewportOffset = n.selectedIndex
	}
	if n.selectedIndex >= n.viewportOffset+visible {
		n.viewportOffset = n.selectedIndex - visible + 1
	}

	// Don't leave empty space at the bottom
	if maxOffset := n.count - visible; n.viewportOffset > maxOffset {
		n.viewportOffset = maxOffset
	}
	if n.viewportOffset < 0 {
		n.viewportOffset = 0
	}
}
