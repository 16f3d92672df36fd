package order

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ReceiptFileName is the journal of the single in-flight order.
const ReceiptFileName = "receipt.txt"

// ReceiptLine is one accepted order line, denormalized from the menu at
// acceptance time rather than referencing it live.
type ReceiptLine struct {
	LineNo      int
	MenuID      int
	Name        string
	UnitPrice   decimal.Decimal
	PrepMinutes int
	Quantity    int
}

// ReceiptJournal is the durable record of one in-progress order. The
// journal holds at most one receipt: Begin truncates whatever a prior
// abandoned session left behind, and Clear removes the receipt once
// payment completes.
type ReceiptJournal struct {
	path string
}

// NewReceiptJournal creates a journal over the receipt file in dir.
func NewReceiptJournal(dir string) *ReceiptJournal {
	return &ReceiptJournal{path: filepath.Join(dir, ReceiptFileName)}
}

// Begin opens a fresh receipt stamped with ts, discarding any previous
// uncommitted receipt.
func (j *ReceiptJournal) Begin(ts time.Time) error {
	line := ts.Format(time.ANSIC) + "\n"
	if err := os.WriteFile(j.path, []byte(line), 0o644); err != nil {
		return fmt.Errorf("begin receipt: %w", err)
	}
	return nil
}

// AppendLine adds one accepted line to the open receipt.
func (j *ReceiptJournal) AppendLine(l ReceiptLine) error {
	f, err := os.OpenFile(j.path, os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open receipt: %w", err)
	}
	defer f.Close()

	record := fmt.Sprintf("%d,%d,%s,%s,%d,%d\n",
		l.LineNo, l.MenuID, l.Name, l.UnitPrice.StringFixed(2), l.PrepMinutes, l.Quantity)
	if _, err := f.WriteString(record); err != nil {
		return fmt.Errorf("append receipt line: %w", err)
	}
	return nil
}

// ReadAll returns the receipt timestamp (opaque text) and its lines.
// Used for display at checkout and by the sales and delivery flows.
func (j *ReceiptJournal) ReadAll() (string, []ReceiptLine, error) {
	f, err := os.Open(j.path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", nil, nil
		}
		return "", nil, fmt.Errorf("open receipt: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", nil, fmt.Errorf("read receipt: %w", err)
		}
		return "", nil, nil
	}
	timestamp := sc.Text()

	var lines []ReceiptLine
	for sc.Scan() {
		raw := sc.Text()
		if strings.TrimSpace(raw) == "" {
			continue
		}
		line, err := parseReceiptLine(raw)
		if err != nil {
			return "", nil, fmt.Errorf("parse receipt line %q: %w", raw, err)
		}
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return "", nil, fmt.Errorf("read receipt: %w", err)
	}
	return timestamp, lines, nil
}

// IsEmpty reports whether no receipt exists or it has zero lines. The
// payment flow treats this as "no pending order" and redirects to
// ordering instead of erroring.
func (j *ReceiptJournal) IsEmpty() bool {
	_, lines, err := j.ReadAll()
	if err != nil {
		return true
	}
	return len(lines) == 0
}

// Clear deletes the receipt after a successful payment. Clearing an
// already absent receipt is not an error.
func (j *ReceiptJournal) Clear() error {
	if err := os.Remove(j.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("clear receipt: %w", err)
	}
	return nil
}

// Total sums unit price times quantity over the lines.
func Total(lines []ReceiptLine) decimal.Decimal {
	total := decimal.Zero
	for _, l := range lines {
		total = total.Add(l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return total
}

// parseReceiptLine reads lineNo,menuId,name,unitPrice,prepMinutes,quantity.
// The name spans everything between the second field and the last three.
func parseReceiptLine(raw string) (ReceiptLine, error) {
	parts := strings.Split(raw, ",")
	if len(parts) < 6 {
		return ReceiptLine{}, fmt.Errorf("expected 6 fields, got %d", len(parts))
	}
	lineNo, err := strconv.Atoi(parts[0])
	if err != nil {
		return ReceiptLine{}, fmt.Errorf("invalid line number: %w", err)
	}
	menuID, err := strconv.Atoi(parts[1])
	if err != nil {
		return ReceiptLine{}, fmt.Errorf("invalid menu id: %w", err)
	}
	name := strings.Join(parts[2:len(parts)-3], ",")
	price, err := decimal.NewFromString(parts[len(parts)-3])
	if err != nil {
		return ReceiptLine{}, fmt.Errorf("invalid price: %w", err)
	}
	prep, err := strconv.Atoi(parts[len(parts)-2])
	if err != nil {
		return ReceiptLine{}, fmt.Errorf("invalid preparation time: %w", err)
	}
	qty, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return ReceiptLine{}, fmt.Errorf("invalid quantity: %w", err)
	}
	return ReceiptLine{
		LineNo:      lineNo,
		MenuID:      menuID,
		Name:        name,
		UnitPrice:   price,
		PrepMinutes: prep,
		Quantity:    qty,
	}, nil
}
