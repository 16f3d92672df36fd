// Package menu owns the on-disk menu table: the ordered list of sellable
// items with id, name, unit price, preparation time, and stock.
package menu

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// FileName is the menu table inside the data directory.
const FileName = "menu.txt"

// MaxNameLen is the longest item name the table accepts.
const MaxNameLen = 24

// Errors returned by the menu store.
var (
	ErrItemNotFound  = errors.New("menu item not found")
	ErrEmptyName     = errors.New("item name must not be empty")
	ErrNameTooLong   = errors.New("item name must be at most 24 characters")
	ErrDuplicateName = errors.New("item name already exists")
	ErrInvalidPrice  = errors.New("item price must be greater than zero")
	ErrSamePrice     = errors.New("new price must differ from the current price")
	ErrInvalidPrep   = errors.New("preparation time must be greater than zero")
	ErrInvalidStock  = errors.New("stock quantity must be greater than zero")
)

// Item is one row of the menu table. Ids form a dense 1..N sequence
// matching file order; stock never goes negative.
type Item struct {
	ID          int
	Name        string
	UnitPrice   decimal.Decimal
	PrepMinutes int
	Stock       int
}

// Store reads and writes the menu table. It is the sole owner of the
// on-disk representation; every mutation is a full-table rewrite.
type Store struct {
	path string
}

// NewStore creates a Store over the menu table in dir.
func NewStore(dir string) *Store {
	return &Store{path: filepath.Join(dir, FileName)}
}

// Load parses the menu table. A missing or empty file yields an empty
// slice, not an error.
func (s *Store) Load() ([]Item, error) {
	f, err := os.Open(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open menu: %w", err)
	}
	defer f.Close()

	var items []Item
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		item, err := parseItem(line)
		if err != nil {
			return nil, fmt.Errorf("parse menu line %q: %w", line, err)
		}
		items = append(items, item)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read menu: %w", err)
	}
	return items, nil
}

// Save rewrites the entire table from items in ascending id order, with
// prices fixed to 2 decimal digits. Not crash-atomic; exactly one writer
// is assumed.
func (s *Store) Save(items []Item) error {
	sorted := make([]Item, len(items))
	copy(sorted, items)
	for i := 1; i < len(sorted); i++ {
		for j := i; j > 0 && sorted[j].ID < sorted[j-1].ID; j-- {
			sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
		}
	}

	var b strings.Builder
	for _, item := range sorted {
		b.WriteString(formatItem(item))
	}
	if err := os.WriteFile(s.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write menu: %w", err)
	}
	return nil
}

// AddItem validates the fields, assigns the next sequential id, and
// appends the item to the table. Returns the stored item.
func (s *Store) AddItem(name string, price decimal.Decimal, prepMinutes, stock int) (Item, error) {
	items, err := s.Load()
	if err != nil {
		return Item{}, err
	}
	if err := Validate(items, name, price, prepMinutes, stock); err != nil {
		return Item{}, err
	}
	item := Item{
		ID:          NextID(items),
		Name:        name,
		UnitPrice:   price,
		PrepMinutes: prepMinutes,
		Stock:       stock,
	}
	if err := s.Save(append(items, item)); err != nil {
		return Item{}, err
	}
	return item, nil
}

// UpdatePrice sets a new price on the item with the given id. The new
// price must be positive and differ from the current one.
func (s *Store) UpdatePrice(id int, newPrice decimal.Decimal) (Item, error) {
	items, err := s.Load()
	if err != nil {
		return Item{}, err
	}
	for i := range items {
		if items[i].ID != id {
			continue
		}
		if newPrice.LessThanOrEqual(decimal.Zero) {
			return Item{}, ErrInvalidPrice
		}
		if newPrice.Equal(items[i].UnitPrice) {
			return Item{}, ErrSamePrice
		}
		items[i].UnitPrice = newPrice
		if err := s.Save(items); err != nil {
			return Item{}, err
		}
		return items[i], nil
	}
	return Item{}, fmt.Errorf("update price for id %d: %w", id, ErrItemNotFound)
}

// NextID returns the id for a newly created item: max existing id + 1,
// or 1 for an empty table.
func NextID(items []Item) int {
	next := 1
	for _, item := range items {
		if item.ID >= next {
			next = item.ID + 1
		}
	}
	return next
}

// FindByName returns the item with the exact, case-sensitive name.
func FindByName(items []Item, name string) (Item, bool) {
	for _, item := range items {
		if item.Name == name {
			return item, true
		}
	}
	return Item{}, false
}

// FindByID returns the item with the given id.
func FindByID(items []Item, id int) (Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return Item{}, false
}

// Validate checks a candidate item against the creation rules: name
// non-empty, at most MaxNameLen characters and unique; price, prep time
// and stock all positive.
func Validate(items []Item, name string, price decimal.Decimal, prepMinutes, stock int) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if len(name) > MaxNameLen {
		return ErrNameTooLong
	}
	if _, ok := FindByName(items, name); ok {
		return ErrDuplicateName
	}
	if price.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidPrice
	}
	if prepMinutes <= 0 {
		return ErrInvalidPrep
	}
	if stock <= 0 {
		return ErrInvalidStock
	}
	return nil
}

// parseItem reads one table row: id,name,unitPrice,prepMinutes,stock.
// The name is everything between the first field and the last three, so
// a name containing a comma still round-trips.
func parseItem(line string) (Item, error) {
	parts := strings.Split(line, ",")
	if len(parts) < 5 {
		return Item{}, fmt.Errorf("expected 5 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return Item{}, fmt.Errorf("invalid id: %w", err)
	}
	name := strings.Join(parts[1:len(parts)-3], ",")
	price, err := decimal.NewFromString(parts[len(parts)-3])
	if err != nil {
		return Item{}, fmt.Errorf("invalid price: %w", err)
	}
	prep, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return Item{}, fmt.Errorf("invalid preparation time: %w", err)
	}
	stock, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return Item{}, fmt.Errorf("invalid stock: %w", err)
	}
	return Item{
		ID:          id,
		Name:        name,
		UnitPrice:   price,
		PrepMinutes: prep,
		Stock:       stock,
	}, nil
}

func formatItem(item Item) string {
	return fmt.Sprintf("%d,%s,%s,%d,%d\n",
		item.ID, item.Name, item.UnitPrice.StringFixed(2), item.PrepMinutes, item.Stock)
}
