// Package stats aggregates running sales and popularity statistics from
// the append-only ledgers replayed on every query.
package stats

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

// Ledger file names inside the data directory.
const (
	SalesFileName      = "total_sales.txt"
	PopularityFileName = "topdish.txt"
)

// Empty-ledger conditions. Both are informational states ("no data
// yet"), not failures; callers redirect rather than abort.
var (
	ErrNoSales  = errors.New("no sales recorded yet")
	ErrNoOrders = errors.New("no orders recorded yet")
)

// Ledger owns the append-only sales and popularity files. Sales records
// are written once per completed payment; popularity records once per
// accepted order line, at acceptance time — so abandoned orders still
// count toward popularity but never toward revenue.
type Ledger struct {
	salesPath      string
	popularityPath string
}

// NewLedger creates a Ledger over the stats files in dir.
func NewLedger(dir string) *Ledger {
	return &Ledger{
		salesPath:      filepath.Join(dir, SalesFileName),
		popularityPath: filepath.Join(dir, PopularityFileName),
	}
}

// RecordPayment appends one completed-payment total, after any discount
// has been applied.
func (l *Ledger) RecordPayment(total decimal.Decimal) error {
	return appendLine(l.salesPath, total.StringFixed(2))
}

// RecordAcceptedLine appends one popularity record for an accepted
// order line.
func (l *Ledger) RecordAcceptedLine(menuID, quantity int) error {
	return appendLine(l.popularityPath, fmt.Sprintf("%d,%d", menuID, quantity))
}

// Aggregate replays the sales ledger: revenue is the sum of all recorded
// totals in file order, and every paid checkout counts as one order
// regardless of line count. An empty ledger is ErrNoSales.
func (l *Ledger) Aggregate() (orders int, revenue decimal.Decimal, err error) {
	lines, err := readLines(l.salesPath)
	if err != nil {
		return 0, decimal.Zero, err
	}
	if len(lines) == 0 {
		return 0, decimal.Zero, ErrNoSales
	}

	revenue = decimal.Zero
	for _, line := range lines {
		total, err := decimal.NewFromString(line)
		if err != nil {
			return 0, decimal.Zero, fmt.Errorf("parse sales record %q: %w", line, err)
		}
		revenue = revenue.Add(total)
	}
	return len(lines), revenue, nil
}

// Popularity replays the popularity ledger, summing quantities per menu
// id, and returns the best-selling item. Ties break toward the id seen
// first in accumulation order. An empty ledger is ErrNoOrders.
func (l *Ledger) Popularity() (menuID, quantity int, err error) {
	ids, totals, err := l.replayPopularity()
	if err != nil {
		return 0, 0, err
	}
	if len(ids) == 0 {
		return 0, 0, ErrNoOrders
	}

	for _, id := range ids {
		if totals[id] > quantity {
			menuID = id
			quantity = totals[id]
		}
	}
	return menuID, quantity, nil
}

// replayPopularity folds the ledger into per-id totals, preserving
// first-encounter order of the ids.
func (l *Ledger) replayPopularity() ([]int, map[int]int, error) {
	lines, err := readLines(l.popularityPath)
	if err != nil {
		return nil, nil, err
	}

	var ids []int
	totals := make(map[int]int)
	for _, line := range lines {
		id, qty, err := parsePopularityRecord(line)
		if err != nil {
			return nil, nil, fmt.Errorf("parse popularity record %q: %w", line, err)
		}
		if _, seen := totals[id]; !seen {
			ids = append(ids, id)
		}
		totals[id] += qty
	}
	return ids, totals, nil
}

func parsePopularityRecord(line string) (int, int, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("expected 2 fields, got %d", len(parts))
	}
	id, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid menu id: %w", err)
	}
	qty, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid quantity: %w", err)
	}
	return id, qty, nil
}

func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("append to %s: %w", filepath.Base(path), err)
	}
	return nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("open %s: %w", filepath.Base(path), err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line != "" {
			lines = append(lines, line)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", filepath.Base(path), err)
	}
	return lines, nil
}
