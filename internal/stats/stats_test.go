package stats

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
)

func amount(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestAggregateEmptyLedger(t *testing.T) {
	l := NewLedger(t.TempDir())
	if _, _, err := l.Aggregate(); !errors.Is(err, ErrNoSales) {
		t.Fatalf("got %v, want ErrNoSales", err)
	}
}

func TestAggregateSumsInRecordOrder(t *testing.T) {
	l := NewLedger(t.TempDir())
	for _, s := range []string{"9.00", "12.50", "4.25"} {
		if err := l.RecordPayment(amount(t, s)); err != nil {
			t.Fatalf("RecordPayment %s: %v", s, err)
		}
	}

	orders, revenue, err := l.Aggregate()
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	if orders != 3 {
		t.Fatalf("orders = %d, want 3", orders)
	}
	if want := amount(t, "25.75"); !revenue.Equal(want) {
		t.Fatalf("revenue = %s, want %s", revenue, want)
	}
}

func TestRecordPaymentFormat(t *testing.T) {
	dir := t.TempDir()
	l := NewLedger(dir)
	if err := l.RecordPayment(amount(t, "9")); err != nil {
		t.Fatalf("RecordPayment: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, SalesFileName))
	if err != nil {
		t.Fatalf("read sales file: %v", err)
	}
	if string(raw) != "9.00\n" {
		t.Fatalf("sales file content %q, want %q", raw, "9.00\n")
	}
}

func TestPopularityEmptyLedger(t *testing.T) {
	l := NewLedger(t.TempDir())
	if _, _, err := l.Popularity(); !errors.Is(err, ErrNoOrders) {
		t.Fatalf("got %v, want ErrNoOrders", err)
	}
}

func TestPopularityMergesPerMenuID(t *testing.T) {
	l := NewLedger(t.TempDir())
	records := [][2]int{{1, 2}, {2, 1}, {1, 3}, {2, 1}}
	for _, r := range records {
		if err := l.RecordAcceptedLine(r[0], r[1]); err != nil {
			t.Fatalf("RecordAcceptedLine %v: %v", r, err)
		}
	}

	id, qty, err := l.Popularity()
	if err != nil {
		t.Fatalf("Popularity: %v", err)
	}
	if id != 1 || qty != 5 {
		t.Fatalf("best = (%d, %d), want (1, 5)", id, qty)
	}
}

func TestPopularityTieBreaksFirstSeen(t *testing.T) {
	l := NewLedger(t.TempDir())
	records := [][2]int{{3, 2}, {1, 1}, {1, 1}}
	for _, r := range records {
		if err := l.RecordAcceptedLine(r[0], r[1]); err != nil {
			t.Fatalf("RecordAcceptedLine %v: %v", r, err)
		}
	}

	id, qty, err := l.Popularity()
	if err != nil {
		t.Fatalf("Popularity: %v", err)
	}
	if id != 3 || qty != 2 {
		t.Fatalf("best = (%d, %d), want first-seen id 3 with qty 2", id, qty)
	}
}

func TestRecordAcceptedLineFormat(t *testing.T) {
	dir := t.TempDir()
	l := NewLedger(dir)
	if err := l.RecordAcceptedLine(1, 2); err != nil {
		t.Fatalf("RecordAcceptedLine: %v", err)
	}
	if err := l.RecordAcceptedLine(1, 3); err != nil {
		t.Fatalf("RecordAcceptedLine: %v", err)
	}
	raw, err := os.ReadFile(filepath.Join(dir, PopularityFileName))
	if err != nil {
		t.Fatalf("read popularity file: %v", err)
	}
	if string(raw) != "1,2\n1,3\n" {
		t.Fatalf("popularity file content %q", raw)
	}
}
