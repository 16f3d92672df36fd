package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ninjafood/ordering/internal/auth"
	"github.com/ninjafood/ordering/internal/customer"
	"github.com/ninjafood/ordering/internal/menu"
	"github.com/ninjafood/ordering/internal/order"
	"github.com/ninjafood/ordering/internal/stats"
)

func newTestApp(t *testing.T, dir, script string) (*App, *bytes.Buffer) {
	t.Helper()
	menuStore := menu.NewStore(dir)
	statsLedger := stats.NewLedger(dir)
	validator := order.NewValidator(menu.NewStockLedger(menuStore), statsLedger)

	var out bytes.Buffer
	app := New(strings.NewReader(script), &out, dir,
		menuStore, validator, order.NewReceiptJournal(dir),
		statsLedger, customer.NewLoyaltyIndex(dir), auth.NewCredentialStore(dir))
	return app, &out
}

// TestCustomerOrderAndPayment walks a full session: a rejected order
// attempt, the empty-receipt redirect out of the payment page, a
// successful re-order and a first-time payment with the newcomer
// discount applied.
func TestCustomerOrderAndPayment(t *testing.T) {
	dir := t.TempDir()
	seed := "1,Nasi Lemak,5.00,10,3\n"
	if err := os.WriteFile(filepath.Join(dir, menu.FileName), []byte(seed), 0o644); err != nil {
		t.Fatal(err)
	}

	script := strings.Join([]string{
		"Y",          // start the program
		"C",          // customer role
		"1",          // order online
		"1", "5",     // five Nasi Lemak, only three in stock
		"N",          // stop ordering
		"1",          // proceed to payment with nothing accepted
		"1", "2",     // re-order: two Nasi Lemak
		"N",          // stop ordering
		"1",          // proceed to payment
		"Alice",      // customer name
		"0123456789", // phone number
		"4",          // delivery zone Restu
		"10",         // pay $10 against the discounted $9.00
		"N",          // leave the program
	}, "\n") + "\n"

	app, out := newTestApp(t, dir, script)
	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{
		"Order of Nasi Lemak is rejected due to insufficient stock",
		"You have not made any orders yet!",
		"Newcomer Discount",
		"You save: $1.00",
		"TOTAL PAYMENT: $9.00",
		"DELIVERY AREA: Restu",
		"TOTAL DELIVERY TIME: 30 minutes",
		"CHANGE: $1.00",
	} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}

	raw, err := os.ReadFile(filepath.Join(dir, menu.FileName))
	if err != nil {
		t.Fatalf("read menu: %v", err)
	}
	if string(raw) != "1,Nasi Lemak,5.00,10,1\n" {
		t.Errorf("menu after payment %q, want stock deducted to 1", raw)
	}

	raw, err = os.ReadFile(filepath.Join(dir, stats.SalesFileName))
	if err != nil {
		t.Fatalf("read sales: %v", err)
	}
	if string(raw) != "9.00\n" {
		t.Errorf("sales ledger %q, want discounted total", raw)
	}

	raw, err = os.ReadFile(filepath.Join(dir, stats.PopularityFileName))
	if err != nil {
		t.Fatalf("read popularity: %v", err)
	}
	if string(raw) != "1,2\n" {
		t.Errorf("popularity ledger %q, want only the accepted line", raw)
	}

	if _, err := os.Stat(filepath.Join(dir, order.ReceiptFileName)); !os.IsNotExist(err) {
		t.Errorf("receipt not cleared after payment: %v", err)
	}

	raw, err = os.ReadFile(filepath.Join(dir, customer.RecordFileName))
	if err != nil {
		t.Fatalf("read customer records: %v", err)
	}
	if string(raw) != "Alice,0123456789\n" {
		t.Errorf("customer registry %q", raw)
	}
}

// TestOrderWithoutMenu redirects the customer back to the welcome
// screen when no menu has been created yet.
func TestOrderWithoutMenu(t *testing.T) {
	script := strings.Join([]string{
		"Y", "C", "1", // straight to ordering, no menu on disk
		"N", // decline the fresh welcome prompt
	}, "\n") + "\n"

	app, out := newTestApp(t, t.TempDir(), script)
	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(out.String(), "menu does not exist") {
		t.Error("missing-menu notice not shown")
	}
}

// TestManagerSignupAndMenuEdit covers the first-run manager path: no
// credentials yet forces sign-up, then one item is added to the menu.
func TestManagerSignupAndMenuEdit(t *testing.T) {
	dir := t.TempDir()
	script := strings.Join([]string{
		"Y", "M", // manager role, no credentials on disk yet
		"2",               // sign up
		"boss", "secret1", // new username and password
		"boss", "secret1", // login with the fresh credentials
		"1",               // create/edit menu
		"Teh Tarik", "2.50", "3", "20", // name, price, prep, stock
		"N", // stop adding items
		"N", // leave the manager menu
		"N", // leave the program
	}, "\n") + "\n"

	app, out := newTestApp(t, dir, script)
	if err := app.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw, err := os.ReadFile(filepath.Join(dir, menu.FileName))
	if err != nil {
		t.Fatalf("read menu: %v", err)
	}
	if string(raw) != "1,Teh Tarik,2.50,3,20\n" {
		t.Errorf("menu after edit %q", raw)
	}

	raw, err = os.ReadFile(filepath.Join(dir, auth.CredentialsFileName))
	if err != nil {
		t.Fatalf("read credentials: %v", err)
	}
	if !strings.HasPrefix(string(raw), "boss\t") {
		t.Errorf("credential record %q", raw)
	}
	if strings.Contains(string(raw), "secret1") {
		t.Error("password stored in plaintext")
	}
	for _, want := range []string{"Sign up successful", "Login successful", "Displaying updated menu"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("output missing %q", want)
		}
	}
}
