package stats

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/ninjafood/ordering/internal/menu"
)

// ExportXLSX writes the current statistics to a spreadsheet at path: a
// summary block with order count and revenue, followed by the per-dish
// quantity table with names resolved against the given menu snapshot.
// Requires at least one recorded order line (ErrNoOrders otherwise);
// with popularity data but no completed payment yet, the revenue cells
// are left as zero.
func (l *Ledger) ExportXLSX(path string, items []menu.Item) error {
	ids, totals, err := l.replayPopularity()
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return ErrNoOrders
	}

	orders, revenue, err := l.Aggregate()
	if err != nil && !errors.Is(err, ErrNoSales) {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Sheet1"
	if err := f.SetSheetName(sheet, "Stats"); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	cells := []struct {
		cell  string
		value interface{}
	}{
		{"A1", "Total orders"},
		{"B1", orders},
		{"A2", "Total sales"},
		{"B2", revenue.StringFixed(2)},
		{"A4", "Menu ID"},
		{"B4", "Item name"},
		{"C4", "Total quantity ordered"},
	}
	for _, c := range cells {
		if err := f.SetCellValue("Stats", c.cell, c.value); err != nil {
			return fmt.Errorf("set cell %s: %w", c.cell, err)
		}
	}

	row := 5
	for _, id := range ids {
		name := ""
		if item, ok := menu.FindByID(items, id); ok {
			name = item.Name
		}
		values := []struct {
			col   string
			value interface{}
		}{
			{"A", id},
			{"B", name},
			{"C", totals[id]},
		}
		for _, v := range values {
			cell := fmt.Sprintf("%s%d", v.col, row)
			if err := f.SetCellValue("Stats", cell, v.value); err != nil {
				return fmt.Errorf("set cell %s: %w", cell, err)
			}
		}
		row++
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save stats export: %w", err)
	}
	return nil
}
