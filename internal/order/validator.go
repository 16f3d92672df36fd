package order

import (
	"fmt"

	"github.com/ninjafood/ordering/internal/menu"
)

// PopularityRecorder receives one record per accepted order line, at
// acceptance time. Satisfied by *stats.Ledger; narrow interface for
// testability.
type PopularityRecorder interface {
	RecordAcceptedLine(menuID, quantity int) error
}

// Result is the outcome of validating a single order line.
type Result struct {
	Accepted bool
	// RejectedMenuID identifies the offending item when the line was
	// rejected for insufficient stock, for user-facing messaging.
	RejectedMenuID int
	// Item is the menu snapshot at acceptance time, valid only when
	// Accepted. Receipt lines denormalize from it.
	Item menu.Item
}

// Validator partitions order lines into accepted and rejected against
// current stock. Lines are processed one at a time, immediately after
// entry; an accepted line's side effects (popularity record, stock
// deduction, table rewrite) land before the next line is considered, so
// partial progress survives an abandoned session.
type Validator struct {
	ledger     *menu.StockLedger
	popularity PopularityRecorder
}

// NewValidator creates a Validator committing stock through ledger and
// reporting accepted lines to popularity.
func NewValidator(ledger *menu.StockLedger, popularity PopularityRecorder) *Validator {
	return &Validator{ledger: ledger, popularity: popularity}
}

// AcceptLine validates one line against the given menu snapshot.
//
// If quantity exceeds the item's current stock the line is rejected:
// nothing is mutated and the offending menu id is reported back. The
// rest of the order is unaffected. Otherwise the line is accepted: the
// popularity record is appended, stock is deducted and the table
// persisted, and the updated snapshot is returned.
//
// An unknown menu id is an internal-consistency fault (the caller has
// already resolved the id against the menu) and aborts the order.
func (v *Validator) AcceptLine(items []menu.Item, menuID, quantity int) ([]menu.Item, Result, error) {
	item, ok := menu.FindByID(items, menuID)
	if !ok {
		return nil, Result{}, fmt.Errorf("validate order line for id %d: %w", menuID, menu.ErrItemNotFound)
	}

	if quantity > item.Stock {
		return items, Result{RejectedMenuID: menuID}, nil
	}

	if err := v.popularity.RecordAcceptedLine(menuID, quantity); err != nil {
		return nil, Result{}, fmt.Errorf("record accepted line: %w", err)
	}
	updated, err := v.ledger.Deduct(items, menuID, quantity)
	if err != nil {
		return nil, Result{}, err
	}
	return updated, Result{Accepted: true, Item: item}, nil
}
