package menu

import "fmt"

// StockLedger applies quantity deductions to menu items and commits the
// updated table through the Store.
type StockLedger struct {
	store *Store
}

// NewStockLedger creates a StockLedger committing through store.
func NewStockLedger(store *Store) *StockLedger {
	return &StockLedger{store: store}
}

// Deduct subtracts quantity from the stock of the item with the given id
// and persists the full table. The caller has already proven
// quantity <= stock; Deduct does not re-validate. An absent id is an
// internal-consistency fault and returns ErrItemNotFound.
func (l *StockLedger) Deduct(items []Item, menuID, quantity int) ([]Item, error) {
	for i := range items {
		if items[i].ID != menuID {
			continue
		}
		items[i].Stock -= quantity
		if err := l.store.Save(items); err != nil {
			return nil, fmt.Errorf("commit stock deduction: %w", err)
		}
		return items, nil
	}
	return nil, fmt.Errorf("deduct stock for id %d: %w", menuID, ErrItemNotFound)
}
