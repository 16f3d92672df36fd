// Package order implements the order lifecycle: merging customer
// selections into a pending order, validating lines against live stock
// with partial-acceptance semantics, and journaling the receipt for the
// single in-flight order.
package order

// Line is one (menu item, quantity) pairing within a customer's order.
// A rejected line keeps its slot but is reset to the zero sentinel.
type Line struct {
	MenuID   int
	Quantity int
}

// Invalid reports whether the line was rejected at validation time.
func (l Line) Invalid() bool {
	return l.MenuID == 0
}

// PendingOrder accumulates the customer's selections. Lines are kept in
// submission order with unique menu ids; selecting an item again adds to
// the existing line's quantity instead of duplicating it.
type PendingOrder struct {
	lines []Line
	index map[int]int // menu id -> position in lines
}

// NewPendingOrder creates an empty pending order.
func NewPendingOrder() *PendingOrder {
	return &PendingOrder{index: make(map[int]int)}
}

// Add records quantity of the given menu item, merging into an existing
// line when the item was selected before. Returns true when merged.
func (p *PendingOrder) Add(menuID, quantity int) bool {
	if i, ok := p.index[menuID]; ok {
		p.lines[i].Quantity += quantity
		return true
	}
	p.index[menuID] = len(p.lines)
	p.lines = append(p.lines, Line{MenuID: menuID, Quantity: quantity})
	return false
}

// Reduce takes quantity back off the line for menuID, used when an
// incremental selection is rejected after a merge. A line whose quantity
// reaches zero stays in place as an invalid sentinel.
func (p *PendingOrder) Reduce(menuID, quantity int) {
	i, ok := p.index[menuID]
	if !ok {
		return
	}
	p.lines[i].Quantity -= quantity
	if p.lines[i].Quantity <= 0 {
		delete(p.index, menuID)
		p.lines[i] = Line{}
	}
}

// Lines returns the lines in submission order, including invalid ones.
func (p *PendingOrder) Lines() []Line {
	return p.lines
}
