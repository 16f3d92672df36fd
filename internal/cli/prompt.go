package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// readLine prints the prompt and returns one trimmed input line.
func (a *App) readLine(prompt string) (string, error) {
	fmt.Fprint(a.out, prompt)
	line, err := a.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// readChoice loops until the input matches one of the valid options.
func (a *App) readChoice(prompt string, valid ...string) (string, error) {
	for {
		line, err := a.readLine(prompt)
		if err != nil {
			return "", err
		}
		for _, v := range valid {
			if line == v {
				return line, nil
			}
		}
		fmt.Fprint(a.out, "\n/// Sorry, that is not a valid selection. Please try again!\n")
	}
}

// readYesNo loops until the user answers Y or N, case-insensitively.
func (a *App) readYesNo(prompt string) (bool, error) {
	choice, err := a.readChoice(prompt, "Y", "y", "N", "n")
	if err != nil {
		return false, err
	}
	return choice == "Y" || choice == "y", nil
}

// readInt loops until the input parses as an integer in [min, max].
func (a *App) readInt(prompt string, min, max int) (int, error) {
	for {
		line, err := a.readLine(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < min || n > max {
			fmt.Fprint(a.out, "/// Sorry, that is not a valid selection. Please try again!\n")
			continue
		}
		return n, nil
	}
}

// readDecimal loops until the input parses as a decimal number.
func (a *App) readDecimal(prompt string) (decimal.Decimal, error) {
	for {
		line, err := a.readLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(line)
		if err != nil {
			fmt.Fprint(a.out, "/// Sorry, that is not a valid amount. Please try again!\n")
			continue
		}
		return d, nil
	}
}

// readPhone loops until the input is 10 or 11 characters long.
func (a *App) readPhone(prompt string) (string, error) {
	for {
		phone, err := a.readLine(prompt)
		if err != nil {
			return "", err
		}
		if len(phone) >= 10 && len(phone) <= 11 {
			return phone, nil
		}
		fmt.Fprint(a.out, "\nInvalid phone number! Please try again.\n")
	}
}
