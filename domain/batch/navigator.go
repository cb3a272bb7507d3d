package batch

// Navigator is a cursor over an ordered image list. Movement clamps at both
// ends; an empty navigator has no current item.
type Navigator struct {
	items []string
	pos   int
}

// NewNavigator starts at the first item.
func NewNavigator(items []string) *Navigator {
	return &Navigator{items: append([]string(nil), items...)}
}

// Len returns the number of items.
func (n *Navigator) Len() int { return len(n.items) }

// Index returns the cursor position, or -1 when empty.
func (n *Navigator) Index() int {
	if len(n.items) == 0 {
		return -1
	}
	return n.pos
}

// Current returns the item under the cursor.
func (n *Navigator) Current() (string, bool) {
	if len(n.items) == 0 {
		return "", false
	}
	return n.items[n.pos], true
}

// Next advances the cursor. It reports false at the last item.
func (n *Navigator) Next() bool {
	if n.pos+1 >= len(n.items) {
		return false
	}
	n.pos++
	return true
}

// Prev moves the cursor back. It reports false at the first item.
func (n *Navigator) Prev() bool {
	if n.pos == 0 || len(n.items) == 0 {
		return false
	}
	n.pos--
	return true
}

// Seek moves to i, clamped to the list.
func (n *Navigator) Seek(i int) {
	n.pos = max(0, min(i, len(n.items)-1))
}

// SeekPath moves to path if it is in the list.
func (n *Navigator) SeekPath(path string) bool {
	for i, it := range n.items {
		if it == path {
			n.pos = i
			return true
		}
	}
	return false
}

// Remove drops the current item. The cursor stays at the same position, so
// it lands on the following item, or on the new last item when the removed
// one was last.
func (n *Navigator) Remove() {
	if len(n.items) == 0 {
		return
	}
	n.items = append(n.items[:n.pos], n.items[n.pos+1:]...)
	if n.pos >= len(n.items) {
		n.pos = max(0, len(n.items)-1)
	}
}
