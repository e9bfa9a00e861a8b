package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
	"unicode"

	"github.com/shopspring/decimal"

	"github.com/ekdi/banking/internal/account"
	"github.com/ekdi/banking/internal/ledger"
	"github.com/ekdi/banking/internal/transfer"
)

const (
	colorReset = "\033[0m"
	colorCyan  = "\033[36m"
	colorGreen = "\033[32m"
	colorBlue  = "\033[34m"
)

const banner = `  ___     _  __    ___      ___
 | __|   | |/ /   |   \    |_ _|
 | _|    | ' <    | |) |    | |
 |___|   |_|\_\   |___/    |___|

  ___     _     _  _   _  __  ___   _  _    ___   ___  __   __  ___   _____   ___   __  __
 | _ )   /_\   | \| | | |/ / |_ _| | \| |  / __| / __| \ \ / / / __| |_   _| | __| |  \/  |
 | _ \  / _ \  | .` + "`" + ` | | ' <   | |  | .` + "`" + ` | | (_ | \__ \  \ V /  \__ \   | |   | _|  | |\/| |
 |___/ /_/ \_\ |_|\_| |_|\_\ |___| |_|\_|  \___| |___/   |_|   |___/   |_|   |___| |_|  |_|`

// console is the presentation layer: menus, prompts and re-prompt
// loops. All business outcomes come from the services; the console only
// formats them. Input comes from an injected scanner, never a global.
type console struct {
	in        *bufio.Scanner
	accounts  *account.Service
	transfers *transfer.Service
}

func (c *console) run() {
	for {
		fmt.Println("\n Welcome to the")
		fmt.Println(banner)
		fmt.Println("=======================================")
		fmt.Println("             Start Menu              ")
		fmt.Println("=======================================")
		fmt.Println("1. Login")
		fmt.Println("2. Create Account")
		fmt.Println("3. Exit")
		fmt.Println("=======================================")

		switch c.promptChoice() {
		case 1:
			clearScreen()
			c.login()
		case 2:
			clearScreen()
			c.createAccount()
		case 3:
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Println("Invalid choice. Please try again.")
		}
	}
}

func (c *console) login() {
	username := strings.TrimSpace(c.promptLine("> Enter your username: "))
	password := strings.TrimSpace(c.promptLine("> Enter your password: "))
	clearScreen()

	rec, err := c.accounts.Authenticate(username, password)
	if err != nil {
		fmt.Println("Invalid username or password.")
		return
	}
	c.session(rec)
}

func (c *console) createAccount() {
	fmt.Println("=== Create Account ===")

	firstName := c.promptValidated("> Enter your first name: ", lettersOnly,
		"Error: First name should contain only letters.")
	lastName := c.promptValidated("> Enter your last name: ", lettersOnly,
		"Error: Last name should contain only letters.")
	// collected for the dialog flow; the ledger record has no column for it
	c.promptValidated("> Enter your date of birth in DD-MM-YYYY format: ", validDate,
		"Error: Invalid format. Use DD-MM-YYYY.")

	fmt.Println("--- Address Information ---")
	street := c.promptValidated("> Enter your street: ", noDelimiter,
		"Error: Street must not contain a comma.")
	city := c.promptValidated("> Enter your city: ", lettersOnly,
		"Error: City should contain only letters.")

	var username string
	for {
		username = c.promptLine("> Select a username: ")
		if c.accounts.Exists(username) {
			fmt.Println("Error: Username already exists.")
			continue
		}
		if !noDelimiter(username) || strings.TrimSpace(username) == "" {
			fmt.Println("Error: Invalid username.")
			continue
		}
		break
	}
	password := c.promptValidated("> Enter your password: ", noDelimiter,
		"Error: Password must not contain a comma.")

	_, err := c.accounts.Create(account.CreateAccountSchema{
		FirstName: firstName,
		LastName:  lastName,
		Address:   fmt.Sprintf("%s-%s", street, city),
		Username:  username,
		Password:  password,
	})
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	fmt.Println("Account created successfully")
}

func (c *console) session(rec ledger.Record) {
	for {
		fmt.Println("\n" + colorCyan + "============================")
		fmt.Println("     Banking System Menu     ")
		fmt.Println("============================" + colorReset)
		fmt.Println(colorGreen + "Welcome, " + rec.FirstName + colorReset)
		fmt.Println("1. Check Balance")
		fmt.Println("2. Deposit")
		fmt.Println("3. Withdraw")
		fmt.Println("4. Transfer")
		fmt.Println("5. Logout")
		fmt.Println("6. Exit")
		fmt.Println(colorCyan + "============================" + colorReset)

		switch c.promptChoice() {
		case 1:
			clearScreen()
			balance, err := c.transfers.BalanceOf(rec.Username)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			fmt.Println("Your current balance is: $" + balance.StringFixed(2))
		case 2:
			amount := c.promptAmount("deposit")
			newBalance, err := c.transfers.Deposit(rec.Username, amount)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			clearScreen()
			fmt.Println("Depositing amount: $" + amount.StringFixed(2))
			fmt.Println("New balance: $" + newBalance.StringFixed(2))
		case 3:
			amount := c.promptAmount("withdraw")
			newBalance, err := c.transfers.Withdraw(rec.Username, amount)
			if err != nil {
				fmt.Println("Error:", err)
				continue
			}
			clearScreen()
			fmt.Println("Withdrawing amount: $" + amount.StringFixed(2))
			fmt.Println("New balance: $" + newBalance.StringFixed(2))
		case 4:
			c.transferDialog(rec.IBAN)
		case 5:
			clearScreen()
			return
		case 6:
			fmt.Println("Goodbye!")
			os.Exit(0)
		default:
			fmt.Println("Invalid choice.")
		}
	}
}

func (c *console) transferDialog(senderIBAN string) {
	fmt.Println("=== Create Transaction ===")
	for {
		receiverIBAN := strings.TrimSpace(c.promptLine("> Enter the receiver's IBAN: "))
		amount := c.promptAmount("transfer")

		err := c.transfers.Transfer(senderIBAN, receiverIBAN, amount)
		switch {
		case err == nil:
			clearScreen()
			fmt.Println("You have transferred $" + amount.StringFixed(2) + " to " + receiverIBAN + ".")
			return
		case errors.Is(err, transfer.ErrUnknownIBAN):
			// re-prompt rather than abort
			fmt.Println("Error: IBAN does not exist.")
		default:
			fmt.Println("Error:", err)
			return
		}
	}
}

// promptLine reads one line of input after printing the prompt.
func (c *console) promptLine(prompt string) string {
	fmt.Print(prompt)
	if !c.in.Scan() {
		// stdin closed; nothing sensible left to do in a menu loop
		fmt.Println("\nGoodbye!")
		os.Exit(0)
	}
	return c.in.Text()
}

// promptChoice re-prompts until the user enters an integer.
func (c *console) promptChoice() int {
	for {
		input := strings.TrimSpace(c.promptLine(colorBlue + "> Enter your choice: " + colorReset))
		choice, err := strconv.Atoi(input)
		if err != nil {
			fmt.Println("Error: Please enter a number.")
			continue
		}
		return choice
	}
}

// promptAmount re-prompts until the user enters a positive number.
func (c *console) promptAmount(verb string) decimal.Decimal {
	for {
		input := strings.TrimSpace(c.promptLine("> Enter the amount to " + verb + ": "))
		amount, err := decimal.NewFromString(input)
		if err != nil {
			fmt.Println("Error: Invalid amount.")
			continue
		}
		if !amount.IsPositive() {
			fmt.Println("Error: Amount must be greater than zero.")
			continue
		}
		return amount
	}
}

// promptValidated re-prompts until valid returns true for the input.
func (c *console) promptValidated(prompt string, valid func(string) bool, errMsg string) string {
	for {
		input := strings.TrimSpace(c.promptLine(prompt))
		if valid(input) {
			return input
		}
		fmt.Println(errMsg)
	}
}

func lettersOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func validDate(s string) bool {
	_, err := time.Parse("02-01-2006", s)
	return err == nil
}

func noDelimiter(s string) bool {
	return !strings.Contains(s, ",")
}

func clearScreen() {
	// ANSI escape code to clear screen
	fmt.Print("\033[H\033[2J")
}
