// Package cli drives the single-terminal ordering flow. Screens are an
// explicit finite state machine advanced by one dispatch loop; a screen
// never re-invokes another screen directly.
package cli

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ninjafood/ordering/internal/auth"
	"github.com/ninjafood/ordering/internal/customer"
	"github.com/ninjafood/ordering/internal/menu"
	"github.com/ninjafood/ordering/internal/order"
	"github.com/ninjafood/ordering/internal/stats"
)

type state int

const (
	stateWelcome state = iota
	stateRole
	stateManagerLogin
	stateManagerMenu
	stateMenuEdit
	statePriceUpdate
	stateStats
	stateManagerHelp
	stateCustomerMenu
	stateOrdering
	statePaying
	stateDone
)

// App holds the wired core components and the terminal streams.
type App struct {
	in  *bufio.Reader
	out io.Writer

	dataDir   string
	menu      *menu.Store
	validator *order.Validator
	receipts  *order.ReceiptJournal
	stats     *stats.Ledger
	loyalty   *customer.LoyaltyIndex
	creds     *auth.CredentialStore

	customerName string
}

// New wires an App over the given streams and stores.
func New(in io.Reader, out io.Writer, dataDir string,
	menuStore *menu.Store, validator *order.Validator, receipts *order.ReceiptJournal,
	statsLedger *stats.Ledger, loyalty *customer.LoyaltyIndex, creds *auth.CredentialStore) *App {
	return &App{
		in:        bufio.NewReader(in),
		out:       out,
		dataDir:   dataDir,
		menu:      menuStore,
		validator: validator,
		receipts:  receipts,
		stats:     statsLedger,
		loyalty:   loyalty,
		creds:     creds,
	}
}

// Run executes the dispatch loop until the user leaves or input ends.
func (a *App) Run() error {
	fmt.Fprint(a.out, "===================================================================\n")
	fmt.Fprint(a.out, "====================== Welcome to NinjaFood! ======================\n")
	fmt.Fprint(a.out, "===================================================================\n")

	st := stateWelcome
	for st != stateDone {
		next, err := a.step(st)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return err
		}
		st = next
	}

	fmt.Fprint(a.out, "\n====== Thank you for using NinjaFood's Food Ordering System program! ======\n")
	fmt.Fprint(a.out, "===================== Have a nice day and take care :) ====================\n")
	return nil
}

func (a *App) step(st state) (state, error) {
	switch st {
	case stateWelcome:
		return a.welcome()
	case stateRole:
		return a.selectRole()
	case stateManagerLogin:
		return a.managerLogin()
	case stateManagerMenu:
		return a.managerMenu()
	case stateMenuEdit:
		return a.menuEdit()
	case statePriceUpdate:
		return a.priceUpdate()
	case stateStats:
		return a.viewStats()
	case stateManagerHelp:
		return a.managerHelp()
	case stateCustomerMenu:
		return a.customerMenu()
	case stateOrdering:
		return a.orderOnline()
	case statePaying:
		return a.makePayment()
	default:
		return stateDone, fmt.Errorf("unknown state %d", st)
	}
}

func (a *App) welcome() (state, error) {
	yes, err := a.readYesNo("\n=> Would you like to start using this program? [Y/N] ")
	if err != nil {
		return stateDone, err
	}
	if !yes {
		return stateDone, nil
	}
	return stateRole, nil
}

func (a *App) selectRole() (state, error) {
	choice, err := a.readChoice("\n=> Please select your identity: \n[M] Restaurant Manager\n[C] Customer\n",
		"M", "m", "C", "c")
	if err != nil {
		return stateDone, err
	}
	if choice == "M" || choice == "m" {
		return stateManagerLogin, nil
	}
	return stateCustomerMenu, nil
}

// continueOr asks the continue question and routes back to next or to
// the welcome screen, which stands in for logging out.
func (a *App) continueOr(next state) (state, error) {
	yes, err := a.readYesNo("\n=> Do you wish to continue using this program? [Y/N] ")
	if err != nil {
		return stateDone, err
	}
	if yes {
		return next, nil
	}
	fmt.Fprint(a.out, "\n/// Redirecting to main page...\n")
	return stateWelcome, nil
}
