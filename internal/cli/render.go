package cli

import (
	"fmt"

	"github.com/ninjafood/ordering/internal/menu"
	"github.com/ninjafood/ordering/internal/order"
)

// renderMenu prints the menu table. Returns the number of items so
// callers can tell an empty menu apart without reloading.
func (a *App) renderMenu(items []menu.Item) int {
	if len(items) == 0 {
		return 0
	}
	fmt.Fprintf(a.out, "\n/// There are currently %d item(s) on the menu.\n", len(items))
	fmt.Fprint(a.out, "\n============================================================================\n")
	fmt.Fprint(a.out, "=================================== MENU ===================================\n")
	fmt.Fprint(a.out, "============================================================================\n\n")
	fmt.Fprintf(a.out, "%-5s%-28s%-14s%-20s%s\n", "NO.", "ITEM NAME", "ITEM PRICE", "PREPARATION TIME", "STOCK")
	fmt.Fprint(a.out, "----------------------------------------------------------------------------\n")
	for _, item := range items {
		fmt.Fprintf(a.out, "%-5d%-28s$%-13s%-20s%d\n",
			item.ID, item.Name, item.UnitPrice.StringFixed(2),
			fmt.Sprintf("%d minutes", item.PrepMinutes), item.Stock)
	}
	return len(items)
}

// renderReceipt prints the receipt lines at checkout.
func (a *App) renderReceipt(lines []order.ReceiptLine) {
	fmt.Fprint(a.out, "\n=================================================================\n")
	fmt.Fprint(a.out, "============================ RECEIPT ============================\n")
	fmt.Fprint(a.out, "=================================================================\n\n")
	fmt.Fprintf(a.out, "%-5s%-28s%-14s%-10s%s\n", "NO.", "ITEM NAME", "ITEM PRICE", "QUANTITY", "PREPARATION TIME")
	fmt.Fprint(a.out, "-----------------------------------------------------------------\n")
	for _, l := range lines {
		fmt.Fprintf(a.out, "%-5d%-28s$%-13s%-10d%d minutes\n",
			l.LineNo, l.Name, l.UnitPrice.StringFixed(2), l.Quantity, l.PrepMinutes)
	}
}
