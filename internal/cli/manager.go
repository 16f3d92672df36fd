package cli

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/ninjafood/ordering/internal/auth"
	"github.com/ninjafood/ordering/internal/menu"
	"github.com/ninjafood/ordering/internal/stats"
)

func (a *App) managerLogin() (state, error) {
	fmt.Fprint(a.out, "\n**************************** LOGIN PAGE ****************************\n")
	choice, err := a.readChoice(
		"\n/// Welcome. You are accessing as RESTAURANT MANAGER.\n"+
			"=> Please select an option below to proceed:\n[1] Login\n[2] Sign up\n",
		"1", "2")
	if err != nil {
		return stateDone, err
	}

	if choice == "2" {
		if err := a.signup(); err != nil {
			return stateDone, err
		}
	}

	for {
		username, err := a.readLine("\n=> Enter username: ")
		if err != nil {
			return stateDone, err
		}
		password, err := a.readLine("=> Enter password: ")
		if err != nil {
			return stateDone, err
		}

		ok, err := a.creds.Verify(username, password)
		if errors.Is(err, auth.ErrNoCredentials) {
			fmt.Fprint(a.out, "\n/// No login credentials found. Please sign up first!\n")
			fmt.Fprint(a.out, "/// Redirecting to sign up page...\n")
			if err := a.signup(); err != nil {
				return stateDone, err
			}
			continue
		}
		if err != nil {
			return stateDone, err
		}
		if ok {
			fmt.Fprint(a.out, "\n/// Login successful! Welcome as RESTAURANT MANAGER.\n")
			log.WithField("username", username).Info("manager logged in")
			return stateManagerMenu, nil
		}
		fmt.Fprint(a.out, "\n/// Incorrect username or password.")
		fmt.Fprint(a.out, "\n/// Please ensure the username and password are entered correctly (case-sensitive).")
		fmt.Fprint(a.out, "\n/// Try again!\n")
	}
}

func (a *App) signup() error {
	fmt.Fprint(a.out, "\n*************************** SIGN UP PAGE ***************************\n")
	fmt.Fprint(a.out, "\n/// You are signing up as RESTAURANT MANAGER.\n")

	for {
		username, err := a.readLine("\n=> Enter new username: ")
		if err != nil {
			return err
		}
		password, err := a.readLine("=> Enter new password (min 6 characters): ")
		if err != nil {
			return err
		}

		switch err := a.creds.Register(username, password); {
		case errors.Is(err, auth.ErrUsernameTaken):
			fmt.Fprint(a.out, "\n/// This username already exists. Please try again!\n")
		case errors.Is(err, auth.ErrPasswordTooShort):
			fmt.Fprint(a.out, "\n/// Password must be at least 6 characters!\n")
		case err != nil:
			return err
		default:
			fmt.Fprint(a.out, "\n/// Sign up successful!\n/// Redirecting to login page...\n")
			log.WithField("username", username).Info("manager signed up")
			return nil
		}
	}
}

func (a *App) managerMenu() (state, error) {
	choice, err := a.readChoice(
		"\n=> Please select an action as RESTAURANT MANAGER: \n"+
			"[1] Create/update menu\n"+
			"[2] Update prices\n"+
			"[3] View stats (most popular dish, total number of customers, total sales, total number of orders)\n"+
			"\n/// Do you need help navigating the system? Select the option below! \n"+
			"[4] View Manager Help info\n",
		"1", "2", "3", "4")
	if err != nil {
		return stateDone, err
	}
	switch choice {
	case "1":
		return stateMenuEdit, nil
	case "2":
		return statePriceUpdate, nil
	case "3":
		return stateStats, nil
	default:
		return stateManagerHelp, nil
	}
}

func (a *App) menuEdit() (state, error) {
	fmt.Fprint(a.out, "\n*********************** CREATE/UPDATE MENU PAGE ***********************\n")
	fmt.Fprint(a.out, "\n/// You have selected the option to: Update/Create Menu\n")

	items, err := a.menu.Load()
	if err != nil {
		return stateDone, err
	}
	if a.renderMenu(items) == 0 {
		fmt.Fprint(a.out, "/// Menu does not exist. Creating menu...\n")
	}

	for {
		numbering := menu.NextID(items)

		name, err := a.readItemName(items, numbering)
		if err != nil {
			return stateDone, err
		}
		price, err := a.readItemPrice(fmt.Sprintf("=> Enter price of item #%d: $", numbering))
		if err != nil {
			return stateDone, err
		}
		prep, err := a.readItemCount(
			fmt.Sprintf("=> Enter preparation time of item #%d (in minutes): ", numbering),
			"/// Preparation time cannot be less than or equal to zero! Please try again.")
		if err != nil {
			return stateDone, err
		}
		stock, err := a.readItemCount(
			fmt.Sprintf("=> Enter stock quantity of item #%d : ", numbering),
			"/// Stock quantity cannot be less than or equal to zero! Please try again.")
		if err != nil {
			return stateDone, err
		}

		item, err := a.menu.AddItem(name, price, prep, stock)
		if err != nil {
			return stateDone, err
		}
		log.WithFields(log.Fields{"id": item.ID, "name": item.Name}).Info("menu item added")
		items = append(items, item)

		more, err := a.readYesNo("=> Do you wish to continue? [Y/N] ")
		if err != nil {
			return stateDone, err
		}
		if !more {
			break
		}
	}

	fmt.Fprint(a.out, "\n/// Displaying updated menu...\n")
	a.renderMenu(items)
	return a.continueOr(stateManagerMenu)
}

func (a *App) readItemName(items []menu.Item, numbering int) (string, error) {
	for {
		name, err := a.readLine(fmt.Sprintf("\n=> Enter name of item #%d: ", numbering))
		if err != nil {
			return "", err
		}
		switch {
		case name == "":
			fmt.Fprint(a.out, "/// Item name cannot be empty!\n")
		case len(name) > menu.MaxNameLen:
			fmt.Fprintf(a.out, "/// Item name cannot be more than %d characters! Please try again.\n", menu.MaxNameLen)
		default:
			if _, exists := menu.FindByName(items, name); exists {
				fmt.Fprint(a.out, "\n/// This item already exists in the menu!")
				fmt.Fprint(a.out, "\n/// Please consider the \"Update Prices\" option for this item instead.\n")
				continue
			}
			return name, nil
		}
	}
}

func (a *App) readItemPrice(prompt string) (decimal.Decimal, error) {
	for {
		price, err := a.readDecimal(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		if price.GreaterThan(decimal.Zero) {
			return price, nil
		}
		fmt.Fprint(a.out, "\n/// Item price cannot be equal to or less than zero! Please try again.\n")
	}
}

func (a *App) readItemCount(prompt, complaint string) (int, error) {
	for {
		n, err := a.readInt(prompt, -1<<31, 1<<31-1)
		if err != nil {
			return 0, err
		}
		if n > 0 {
			return n, nil
		}
		fmt.Fprintf(a.out, "\n%s\n", complaint)
	}
}

func (a *App) priceUpdate() (state, error) {
	fmt.Fprint(a.out, "\n**************************** UPDATE PRICES ****************************\n")
	fmt.Fprint(a.out, "\n/// You have selected the option to: Update Prices\n")

	items, err := a.menu.Load()
	if err != nil {
		return stateDone, err
	}
	if a.renderMenu(items) == 0 {
		fmt.Fprint(a.out, "/// Menu not found! Please create the menu first and try again.\n")
		fmt.Fprint(a.out, "/// Redirecting to Create/Update Menu...\n")
		return stateMenuEdit, nil
	}

	for {
		id, err := a.readInt("\n=> Please enter the index of the item to update the price: ", 1, len(items))
		if err != nil {
			return stateDone, err
		}
		item, _ := menu.FindByID(items, id)
		fmt.Fprintf(a.out, "\n/// Current price for %s: $%s\n", item.Name, item.UnitPrice.StringFixed(2))

		for {
			newPrice, err := a.readDecimal(fmt.Sprintf("=> Please enter the new price for %s: $", item.Name))
			if err != nil {
				return stateDone, err
			}
			updated, err := a.menu.UpdatePrice(id, newPrice)
			if errors.Is(err, menu.ErrSamePrice) {
				fmt.Fprint(a.out, "\n/// New price cannot be equal to the old price!\n")
				continue
			}
			if errors.Is(err, menu.ErrInvalidPrice) {
				fmt.Fprint(a.out, "\n/// New price cannot be less than or equal to zero!\n")
				continue
			}
			if err != nil {
				return stateDone, err
			}
			log.WithFields(log.Fields{
				"id":        updated.ID,
				"name":      updated.Name,
				"old_price": item.UnitPrice.StringFixed(2),
				"new_price": updated.UnitPrice.StringFixed(2),
			}).Info("price updated")
			break
		}

		items, err = a.menu.Load()
		if err != nil {
			return stateDone, err
		}
		fmt.Fprint(a.out, "\n/// Displaying updated menu...\n")
		a.renderMenu(items)

		more, err := a.readYesNo("\n=> Do you wish to continue updating prices? [Y/N] ")
		if err != nil {
			return stateDone, err
		}
		if !more {
			break
		}
	}
	return a.continueOr(stateManagerMenu)
}

func (a *App) viewStats() (state, error) {
	fmt.Fprint(a.out, "\n**************************** VIEW STATS ****************************\n")
	fmt.Fprint(a.out, "\n/// You have selected the option to: View Stats\n")

	topID, topQty, err := a.stats.Popularity()
	if errors.Is(err, stats.ErrNoOrders) {
		fmt.Fprint(a.out, "\n/// Stats not available. \n/// Reason: No orders have been made yet.\n")
		fmt.Fprint(a.out, "/// Please wait for a customer to order first, then try again!\n")
		return a.continueOr(stateManagerMenu)
	}
	if err != nil {
		return stateDone, err
	}

	items, err := a.menu.Load()
	if err != nil {
		return stateDone, err
	}
	if len(items) == 0 {
		fmt.Fprint(a.out, "/// Menu not found! Please create the menu first and try again.\n")
		fmt.Fprint(a.out, "/// Redirecting to Create/Update Menu...\n")
		return stateMenuEdit, nil
	}

	if item, ok := menu.FindByID(items, topID); ok {
		profit := item.UnitPrice.Mul(decimal.NewFromInt(int64(topQty)))
		fmt.Fprint(a.out, "\n1. MOST POPULAR DISH OF NINJAFOOD: \n")
		fmt.Fprintf(a.out, "===> %-20s$%-8s\tTotal orders: %d\tTotal profit: $%s\n",
			item.Name, item.UnitPrice.StringFixed(2), topQty, profit.StringFixed(2))
	}

	orders, revenue, err := a.stats.Aggregate()
	if err != nil && !errors.Is(err, stats.ErrNoSales) {
		return stateDone, err
	}
	fmt.Fprintf(a.out, "\n2. TOTAL ORDERS TODAY: %d", orders)
	fmt.Fprintf(a.out, "\n3. TOTAL SALES TODAY: $%s", revenue.StringFixed(2))
	fmt.Fprintf(a.out, "\n4. TOTAL NUMBER OF CUSTOMERS TODAY: %d\n", orders)

	export, err := a.readYesNo("\n=> Export stats to a spreadsheet? [Y/N] ")
	if err != nil {
		return stateDone, err
	}
	if export {
		path := filepath.Join(a.dataDir, "stats.xlsx")
		if err := a.stats.ExportXLSX(path, items); err != nil {
			return stateDone, err
		}
		fmt.Fprintf(a.out, "/// Stats exported to %s\n", path)
		log.WithField("path", path).Info("stats exported")
	}
	return a.continueOr(stateManagerMenu)
}

func (a *App) managerHelp() (state, error) {
	fmt.Fprint(a.out, "\n********************** MANAGER HELP INFO PAGE ***********************\n")
	fmt.Fprint(a.out, "\n/// You have selected the option to: View Manager Help Info\n")
	fmt.Fprint(a.out, "\nWelcome to the NinjaFood Ordering System!\n")
	fmt.Fprint(a.out, "This system enables Restaurant Managers to manage the restaurant's menu, view statistics, and perform other administrative tasks.\n")
	fmt.Fprint(a.out, "\n===> Options Specifications\n")
	fmt.Fprint(a.out, "\n[1] Create/Update Menu\n")
	fmt.Fprint(a.out, "\t This option allows the Restaurant Manager to create a new menu or update the existing one.\n")
	fmt.Fprint(a.out, "\t The menu includes the item name, price, preparation time, and stock quantity.\n")
	fmt.Fprint(a.out, "\n[2] Update Prices\n")
	fmt.Fprint(a.out, "\t This option allows the Restaurant Manager to modify the price of any menu item.\n")
	fmt.Fprint(a.out, "\n[3] View Stats\n")
	fmt.Fprint(a.out, "\t This option displays the most popular dish, total orders, total sales, and total customers for today.\n")
	fmt.Fprint(a.out, "=============================================================\n")
	return a.continueOr(stateManagerMenu)
}
