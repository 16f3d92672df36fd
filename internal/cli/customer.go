package cli

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/ninjafood/ordering/internal/customer"
	"github.com/ninjafood/ordering/internal/delivery"
	"github.com/ninjafood/ordering/internal/menu"
	"github.com/ninjafood/ordering/internal/order"
)

func (a *App) customerMenu() (state, error) {
	choice, err := a.readChoice(
		"\n=> Please select an action as CUSTOMER: \n[1] Order online\n[2] Make payment\n",
		"1", "2")
	if err != nil {
		return stateDone, err
	}
	if choice == "1" {
		return stateOrdering, nil
	}
	return statePaying, nil
}

func (a *App) orderOnline() (state, error) {
	fmt.Fprint(a.out, "\n**************************** ORDER PAGE ****************************\n")

	items, err := a.menu.Load()
	if err != nil {
		return stateDone, err
	}
	if len(items) == 0 {
		fmt.Fprint(a.out, "\n/// Sorry, menu does not exist. Please contact a RESTAURANT MANAGER for help to CREATE MENU.\n")
		return stateWelcome, nil
	}

	fmt.Fprint(a.out, "\n/// You are now ordering online as customer.\n")
	a.renderMenu(items)

	sessionID := uuid.New()
	sessionLog := log.WithField("session_id", sessionID)
	sessionLog.Info("order session started")

	pending := order.NewPendingOrder()
	snapshots := make(map[int]menu.Item)

	for {
		menuChoice, err := a.readInt(
			fmt.Sprintf("\n=> Please enter the index number of your choice of food (1 - %d): ", len(items)),
			1, len(items))
		if err != nil {
			return stateDone, err
		}
		quantity, err := a.readItemCount("=> Please enter the quantity: ",
			"/// Sorry, the quantity cannot be less than 1. Please try again!")
		if err != nil {
			return stateDone, err
		}

		if merged := pending.Add(menuChoice, quantity); merged {
			fmt.Fprint(a.out, "\n/// This item has been ordered before. Updating quantity...\n")
		}

		fmt.Fprint(a.out, "\n/// Processing order...\n")

		// Each entered line is validated on its own, immediately. An
		// accepted line's stock deduction and popularity record land
		// before the next line is read.
		updated, result, err := a.validator.AcceptLine(items, menuChoice, quantity)
		if err != nil {
			// Broken invariant between the menu table and the order;
			// abort loudly rather than continue on corrupt state.
			sessionLog.WithError(err).Error("order validation hit an internal-consistency fault")
			return stateDone, err
		}
		items = updated

		if result.Accepted {
			snapshots[menuChoice] = result.Item
			sessionLog.WithFields(log.Fields{
				"menu_id":  menuChoice,
				"quantity": quantity,
			}).Info("order line accepted")
		} else {
			pending.Reduce(menuChoice, quantity)
			if item, ok := menu.FindByID(items, result.RejectedMenuID); ok {
				fmt.Fprintf(a.out, "/// Apologies! Order of %s is rejected due to insufficient stock.\n", item.Name)
			}
			sessionLog.WithFields(log.Fields{
				"menu_id":  result.RejectedMenuID,
				"quantity": quantity,
			}).Info("order line rejected: insufficient stock")
		}

		more, err := a.readYesNo("\n=> Do you wish to continue ordering? [Y/N] ")
		if err != nil {
			return stateDone, err
		}
		if !more {
			break
		}
	}

	if err := a.receipts.Begin(time.Now()); err != nil {
		return stateDone, err
	}
	lineNo := 1
	for _, l := range pending.Lines() {
		if l.Invalid() {
			continue
		}
		snap := snapshots[l.MenuID]
		err := a.receipts.AppendLine(order.ReceiptLine{
			LineNo:      lineNo,
			MenuID:      snap.ID,
			Name:        snap.Name,
			UnitPrice:   snap.UnitPrice,
			PrepMinutes: snap.PrepMinutes,
			Quantity:    l.Quantity,
		})
		if err != nil {
			return stateDone, err
		}
		lineNo++
	}
	sessionLog.WithField("lines", lineNo-1).Info("receipt journaled")

	choice, err := a.readChoice(
		"\n/// Would you like to proceed to make payment?\n[1] Make payment\n[2] Re-order\n",
		"1", "2")
	if err != nil {
		return stateDone, err
	}
	if choice == "1" {
		fmt.Fprint(a.out, "\n/// Redirecting to Make Payment...\n")
		return statePaying, nil
	}
	fmt.Fprint(a.out, "\n/// Redirecting to Order Online again...\n")
	return stateOrdering, nil
}

func (a *App) makePayment() (state, error) {
	if a.receipts.IsEmpty() {
		fmt.Fprint(a.out, "\n/// You have not made any orders yet!\n")
		fmt.Fprint(a.out, "/// Redirecting to Order Online...\n")
		return stateOrdering, nil
	}

	firstTime, err := a.customerDetails()
	if err != nil {
		return stateDone, err
	}

	timestamp, lines, err := a.receipts.ReadAll()
	if err != nil {
		return stateDone, err
	}

	zone, err := a.readInt(
		"\n=> Please enter your delivery area (1 - 6): "+
			"\n[1] Cahaya Gemilang\n[2] Aman Damai\n[3] Indah Kembara\n[4] Restu\n[5] Saujana\n[6] Tekun\n",
		1, 6)
	if err != nil {
		return stateDone, err
	}
	eta, zoneName := delivery.Estimate(lines, zone)
	prepMinutes := delivery.PrepMinutes(lines)

	fmt.Fprint(a.out, "\n*************************** PAYMENT PAGE ***************************\n")
	fmt.Fprint(a.out, "\n/// You are now Making Payment.\n")
	a.renderReceipt(lines)

	totalPayment := order.Total(lines)
	if firstTime {
		discounted, saved := customer.ApplyNewcomerDiscount(totalPayment)
		fmt.Fprint(a.out, "\nCongratulations! As a first-time user, you are entitled to 10% Newcomer Discount :)\n")
		fmt.Fprintf(a.out, "You save: $%s\n", saved.StringFixed(2))
		totalPayment = discounted
	} else {
		fmt.Fprintf(a.out, "\nThanks for dining with us again, %s! :) \n", a.customerName)
	}

	fmt.Fprint(a.out, "\n==================== ORDER DETAILS ====================\n")
	fmt.Fprintf(a.out, "\nTOTAL PAYMENT: $%s", totalPayment.StringFixed(2))
	fmt.Fprintf(a.out, "\nFOOD PREPARATION TIME: %d minutes", prepMinutes)
	fmt.Fprintf(a.out, "\nDELIVERY AREA: %s", zoneName)
	fmt.Fprintf(a.out, "\nTOTAL DELIVERY TIME: %d minutes. \nThank you for your patience!", eta)
	fmt.Fprintf(a.out, "\n\nDATE & TIME OF ORDER: %s\n", timestamp)
	fmt.Fprint(a.out, "=================================================================\n")

	var userPayment decimal.Decimal
	for {
		userPayment, err = a.readDecimal("\n=> Please enter the amount to pay: $")
		if err != nil {
			return stateDone, err
		}
		if userPayment.GreaterThanOrEqual(totalPayment) {
			break
		}
		fmt.Fprint(a.out, "/// Insufficient payment! Please try again.\n")
	}

	fmt.Fprintf(a.out, "\n/// PAID AMOUNT: $%s", userPayment.StringFixed(2))
	if change := userPayment.Sub(totalPayment); change.GreaterThan(decimal.Zero) {
		fmt.Fprint(a.out, "\n/// Dispensing change...")
		fmt.Fprintf(a.out, "\n/// CHANGE: $%s", change.StringFixed(2))
	}
	fmt.Fprint(a.out, "\n/// Thank you for choosing NinjaFood! Enjoy your meal and see you again!\n")

	if err := a.stats.RecordPayment(totalPayment); err != nil {
		return stateDone, err
	}
	if err := a.receipts.Clear(); err != nil {
		return stateDone, err
	}
	log.WithFields(log.Fields{
		"total":      totalPayment.StringFixed(2),
		"first_time": firstTime,
		"zone":       zoneName,
	}).Info("payment recorded")
	return stateWelcome, nil
}

// customerDetails collects the delivery contact and reports first-order
// discount eligibility.
func (a *App) customerDetails() (bool, error) {
	fmt.Fprint(a.out, "\n********************** CUSTOMER DETAILS PAGE **********************\n")
	fmt.Fprint(a.out, "\n/// We require your details to ensure we deliver the correct order to the right person and address!\n")

	name, err := a.readLine("\n=> Please enter your details to proceed.\n\n=> Name: ")
	if err != nil {
		return false, err
	}
	a.customerName = name

	phone, err := a.readPhone("\n=> Phone number (eg 0123456789): ")
	if err != nil {
		return false, err
	}
	return a.loyalty.CheckAndRegister(name, phone)
}
