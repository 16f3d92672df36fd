// Package customer tracks returning customers by phone number and
// carries the newcomer discount policy the payment flow applies.
package customer

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
)

// RecordFileName is the loyalty registry inside the data directory.
const RecordFileName = "customer_record.txt"

// NewcomerDiscountPercent is taken off the total payment on a
// customer's first order.
const NewcomerDiscountPercent = 10

// LoyaltyIndex is the append-only registry of name,phone pairs.
// Presence of a phone number flags a returning customer. Records are
// never deduplicated or updated; returning customers gain another row
// on every order.
type LoyaltyIndex struct {
	path string
}

// NewLoyaltyIndex creates an index over the registry file in dir.
func NewLoyaltyIndex(dir string) *LoyaltyIndex {
	return &LoyaltyIndex{path: filepath.Join(dir, RecordFileName)}
}

// CheckAndRegister reports whether the phone number has never been seen
// before, then appends the name,phone pair unconditionally. A missing
// registry means every customer is a first-timer.
func (ix *LoyaltyIndex) CheckAndRegister(name, phone string) (firstTime bool, err error) {
	firstTime = true

	f, err := os.Open(ix.path)
	if err == nil {
		sc := bufio.NewScanner(f)
		for sc.Scan() {
			parts := strings.SplitN(sc.Text(), ",", 2)
			if len(parts) == 2 && parts[1] == phone {
				firstTime = false
				break
			}
		}
		scanErr := sc.Err()
		f.Close()
		if scanErr != nil {
			return false, fmt.Errorf("read customer records: %w", scanErr)
		}
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("open customer records: %w", err)
	}

	out, err := os.OpenFile(ix.path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return false, fmt.Errorf("open customer records: %w", err)
	}
	defer out.Close()

	if _, err := fmt.Fprintf(out, "%s,%s\n", name, phone); err != nil {
		return false, fmt.Errorf("append customer record: %w", err)
	}
	return firstTime, nil
}

// ApplyNewcomerDiscount returns the total after the first-order discount
// and the amount saved.
func ApplyNewcomerDiscount(total decimal.Decimal) (discounted, saved decimal.Decimal) {
	saved = total.Mul(decimal.NewFromInt(NewcomerDiscountPercent)).Div(decimal.NewFromInt(100))
	return total.Sub(saved), saved
}
