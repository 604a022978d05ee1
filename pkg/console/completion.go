package console

// Completion tracks whether the completion popup is open and which candidate
// is selected. The selection is only meaningful while active.
type Completion struct {
	active   bool
	selected int
}

// Active reports whether the popup is open.
func (c Completion) Active() bool { return c.active }

// Selected returns the selected index and whether the popup is open.
func (c Completion) Selected() (int, bool) {
	if !c.active {
		return 0, false
	}
	return c.selected, true
}

// Activate opens the popup with the first candidate selected.
func (c *Completion) Activate() {
	c.active = true
	c.selected = 0
}

// Deactivate closes the popup.
func (c *Completion) Deactivate() {
	c.active = false
	c.selected = 0
}

// Next moves the selection forward, wrapping over n candidates.
func (c *Completion) Next(n int) {
	if !c.active || n <= 0 {
		return
	}
	c.selected = (c.selected + 1) % n
}

// Prev moves the selection backward, wrapping over n candidates.
func (c *Completion) Prev(n int) {
	if !c.active || n <= 0 {
		return
	}
	c.selected = (c.selected - 1 + n) % n
}
