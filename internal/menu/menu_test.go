package menu

import (
	"errors"
	"os"
	"testing"

	"github.com/shopspring/decimal"
)

func price(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad price %q: %v", s, err)
	}
	return d
}

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(t.TempDir())
}

func TestLoadMissingFile(t *testing.T) {
	s := testStore(t)
	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty menu, got %d items", len(items))
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s := testStore(t)
	want := []Item{
		{ID: 1, Name: "Nasi Lemak", UnitPrice: price(t, "5.00"), PrepMinutes: 10, Stock: 3},
		{ID: 2, Name: "Mee Goreng", UnitPrice: price(t, "4.50"), PrepMinutes: 8, Stock: 12},
	}
	if err := s.Save(want); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("expected %d items, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i].ID != want[i].ID || got[i].Name != want[i].Name ||
			!got[i].UnitPrice.Equal(want[i].UnitPrice) ||
			got[i].PrepMinutes != want[i].PrepMinutes || got[i].Stock != want[i].Stock {
			t.Errorf("item %d: got %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSavePriceFixedTwoDecimals(t *testing.T) {
	s := testStore(t)
	items := []Item{{ID: 1, Name: "Teh Tarik", UnitPrice: price(t, "2.5"), PrepMinutes: 3, Stock: 20}}
	if err := s.Save(items); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		t.Fatalf("read menu file: %v", err)
	}
	if string(raw) != "1,Teh Tarik,2.50,3,20\n" {
		t.Fatalf("unexpected file content %q", raw)
	}
}

func TestSaveOrdersByID(t *testing.T) {
	s := testStore(t)
	items := []Item{
		{ID: 3, Name: "C", UnitPrice: price(t, "3.00"), PrepMinutes: 1, Stock: 1},
		{ID: 1, Name: "A", UnitPrice: price(t, "1.00"), PrepMinutes: 1, Stock: 1},
		{ID: 2, Name: "B", UnitPrice: price(t, "2.00"), PrepMinutes: 1, Stock: 1},
	}
	if err := s.Save(items); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for i, item := range got {
		if item.ID != i+1 {
			t.Fatalf("position %d holds id %d, want %d", i, item.ID, i+1)
		}
	}
}

func TestAddItemAssignsDenseSequentialIDs(t *testing.T) {
	s := testStore(t)
	names := []string{"Nasi Lemak", "Mee Goreng", "Roti Canai"}
	for i, name := range names {
		item, err := s.AddItem(name, price(t, "5.00"), 10, 5)
		if err != nil {
			t.Fatalf("AddItem %q: %v", name, err)
		}
		if item.ID != i+1 {
			t.Fatalf("item %q got id %d, want %d", name, item.ID, i+1)
		}
	}
}

func TestAddItemValidation(t *testing.T) {
	tests := []struct {
		name     string
		itemName string
		price    string
		prep     int
		stock    int
		wantErr  error
	}{
		{"empty name", "", "5.00", 10, 5, ErrEmptyName},
		{"blank name", "   ", "5.00", 10, 5, ErrEmptyName},
		{"name too long", "A very long dish name oh my", "5.00", 10, 5, ErrNameTooLong},
		{"duplicate name", "Nasi Lemak", "5.00", 10, 5, ErrDuplicateName},
		{"zero price", "Mee Goreng", "0", 10, 5, ErrInvalidPrice},
		{"negative price", "Mee Goreng", "-1.50", 10, 5, ErrInvalidPrice},
		{"zero prep time", "Mee Goreng", "5.00", 0, 5, ErrInvalidPrep},
		{"zero stock", "Mee Goreng", "5.00", 10, 0, ErrInvalidStock},
	}

	s := testStore(t)
	if _, err := s.AddItem("Nasi Lemak", price(t, "5.00"), 10, 3); err != nil {
		t.Fatalf("seed item: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := s.AddItem(tc.itemName, price(t, tc.price), tc.prep, tc.stock)
			if !errors.Is(err, tc.wantErr) {
				t.Fatalf("got %v, want %v", err, tc.wantErr)
			}
		})
	}
}

func TestUpdatePrice(t *testing.T) {
	s := testStore(t)
	if _, err := s.AddItem("Nasi Lemak", price(t, "5.00"), 10, 3); err != nil {
		t.Fatalf("seed item: %v", err)
	}

	updated, err := s.UpdatePrice(1, price(t, "6.50"))
	if err != nil {
		t.Fatalf("UpdatePrice: %v", err)
	}
	if !updated.UnitPrice.Equal(price(t, "6.50")) {
		t.Fatalf("got price %s, want 6.50", updated.UnitPrice)
	}

	items, err := s.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !items[0].UnitPrice.Equal(price(t, "6.50")) {
		t.Fatalf("persisted price %s, want 6.50", items[0].UnitPrice)
	}

	if _, err := s.UpdatePrice(1, price(t, "6.50")); !errors.Is(err, ErrSamePrice) {
		t.Fatalf("same price: got %v, want ErrSamePrice", err)
	}
	if _, err := s.UpdatePrice(1, price(t, "0")); !errors.Is(err, ErrInvalidPrice) {
		t.Fatalf("zero price: got %v, want ErrInvalidPrice", err)
	}
	if _, err := s.UpdatePrice(99, price(t, "1.00")); !errors.Is(err, ErrItemNotFound) {
		t.Fatalf("missing id: got %v, want ErrItemNotFound", err)
	}
}

func TestNextID(t *testing.T) {
	if got := NextID(nil); got != 1 {
		t.Fatalf("empty menu: got %d, want 1", got)
	}
	items := []Item{{ID: 1}, {ID: 2}, {ID: 7}}
	if got := NextID(items); got != 8 {
		t.Fatalf("got %d, want 8", got)
	}
}

func TestFindByNameCaseSensitive(t *testing.T) {
	items := []Item{{ID: 1, Name: "Nasi Lemak"}}
	if _, ok := FindByName(items, "Nasi Lemak"); !ok {
		t.Fatal("exact match not found")
	}
	if _, ok := FindByName(items, "nasi lemak"); ok {
		t.Fatal("case-insensitive match should not be found")
	}
}
