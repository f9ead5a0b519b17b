// Package cli is the interactive console layer. It owns all prompting,
// parsing, retry looping and message rendering; the bank service only
// ever sees already-parsed primitives.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/Swetha233926/ConsoleBankingApplication/internal/bank"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/models"
	"github.com/shopspring/decimal"
)

const separator = "-----------------------------------------------------------"

type App struct {
	svc *bank.Service
	p   *Prompter
	out io.Writer

	// defaultRate is offered when the interest prompt is left empty.
	defaultRate decimal.Decimal
}

func NewApp(svc *bank.Service, in io.Reader, out io.Writer, defaultRate decimal.Decimal) *App {
	return &App{svc: svc, p: NewPrompter(in, out), out: out, defaultRate: defaultRate}
}

// Run drives the numbered menu until Exit is selected or input runs out.
func (a *App) Run() {
	for !a.p.EOF() {
		a.printMenu()
		option := a.p.Line("Select an option: ")
		fmt.Fprintln(a.out)

		switch option {
		case "1":
			a.register()
		case "2":
			a.login()
		case "3":
			a.openAccount()
		case "4":
			a.deposit()
		case "5":
			a.withdraw()
		case "6":
			a.generateStatement()
		case "7":
			a.checkBalance()
		case "8":
			a.calculateInterest()
		case "9":
			a.viewAllAccounts()
		case "10":
			fmt.Fprintln(a.out, "Exiting application.")
			return
		case "":
			if a.p.EOF() {
				return
			}
			fmt.Fprintln(a.out, "Invalid option.")
		default:
			fmt.Fprintln(a.out, "Invalid option.")
		}
		fmt.Fprintln(a.out, separator)
	}
}

func (a *App) printMenu() {
	fmt.Fprintln(a.out, "Welcome to Console Banking")
	fmt.Fprintln(a.out, "1. Register")
	fmt.Fprintln(a.out, "2. Login")
	fmt.Fprintln(a.out, "3. Open Account")
	fmt.Fprintln(a.out, "4. Deposit")
	fmt.Fprintln(a.out, "5. Withdraw")
	fmt.Fprintln(a.out, "6. Generate Statement")
	fmt.Fprintln(a.out, "7. Check Balance")
	fmt.Fprintln(a.out, "8. Calculate Interest")
	fmt.Fprintln(a.out, "9. View All Accounts")
	fmt.Fprintln(a.out, "10. Exit")
}

// register collects credentials and owns the strong-password retry loop:
// the service's predicate reports the unmet rules, the CLI re-prompts.
func (a *App) register() {
	username := a.p.Line("Enter Username: ")
	password := a.p.Line("Enter Password: ")
	for {
		err := a.svc.Register(username, password)
		var weak *bank.WeakPasswordError
		if errors.As(err, &weak) {
			for _, rule := range weak.Unmet {
				fmt.Fprintf(a.out, "Password must %s.\n", rule)
			}
			if a.p.EOF() {
				return
			}
			password = a.p.Line("Enter a strong password: ")
			continue
		}
		if err != nil {
			a.report(err)
			return
		}
		fmt.Fprintln(a.out, "Registration successful.")
		return
	}
}

func (a *App) login() {
	username := a.p.Line("Enter Username: ")
	password := a.p.Line("Enter Password: ")
	if err := a.svc.Login(username, password); err != nil {
		a.report(err)
		return
	}
	fmt.Fprintln(a.out, "Login successful.")
}

func (a *App) openAccount() {
	holderName := a.p.Line("Enter Account Holder Name: ")

	fmt.Fprintln(a.out, "Select Account Type:")
	for i, t := range models.AccountTypes {
		fmt.Fprintf(a.out, "%d. %s\n", i+1, t)
	}
	fmt.Fprintf(a.out, "%d. Other\n", len(models.AccountTypes)+1)

	choice, err := a.p.Int(fmt.Sprintf("Enter choice (1-%d): ", len(models.AccountTypes)+1))
	if err != nil {
		a.report(err)
		return
	}

	var accountType string
	switch {
	case choice >= 1 && choice <= len(models.AccountTypes):
		accountType = models.AccountTypes[choice-1]
	case choice == len(models.AccountTypes)+1:
		accountType = a.p.Line("Enter custom account type: ")
	default:
		fmt.Fprintln(a.out, "Invalid account type selected.")
		return
	}

	initialDeposit, err := a.p.Decimal("Enter Initial Deposit: ")
	if err != nil {
		a.report(err)
		return
	}

	acct, err := a.svc.OpenAccount(holderName, accountType, initialDeposit)
	if err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "Account created successfully. Account Number: %d\n", acct.Number)
}

func (a *App) deposit() {
	number, err := a.p.Int("Enter Account Number: ")
	if err != nil {
		a.report(err)
		return
	}
	amount, err := a.p.Decimal("Enter Deposit Amount: ")
	if err != nil {
		a.report(err)
		return
	}
	if _, err := a.svc.Deposit(number, amount); err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "Amount %s deposited successfully.\n", amount.StringFixed(2))
}

func (a *App) withdraw() {
	number, err := a.p.Int("Enter Account Number: ")
	if err != nil {
		a.report(err)
		return
	}
	amount, err := a.p.Decimal("Enter Withdrawal Amount: ")
	if err != nil {
		a.report(err)
		return
	}
	if _, err := a.svc.Withdraw(number, amount); err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "Amount %s withdrawn successfully.\n", amount.StringFixed(2))
}

func (a *App) generateStatement() {
	number, err := a.p.Int("Enter Account Number: ")
	if err != nil {
		a.report(err)
		return
	}
	txs, err := a.svc.GenerateStatement(number)
	if err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "Transaction history for Account %d\n", number)
	for _, t := range txs {
		fmt.Fprintf(a.out, "%s - %s: %s\n", t.Date.Format("2006-01-02 15:04:05"), t.Kind, t.Amount.StringFixed(2))
	}
}

func (a *App) checkBalance() {
	number, err := a.p.Int("Enter Account Number: ")
	if err != nil {
		a.report(err)
		return
	}
	balance, err := a.svc.CheckBalance(number)
	if err != nil {
		a.report(err)
		return
	}
	fmt.Fprintf(a.out, "Current Balance for Account %d: %s\n", number, balance.StringFixed(2))
}

func (a *App) calculateInterest() {
	raw := a.p.Line(fmt.Sprintf("Enter Interest Rate (as decimal, default %s): ", a.defaultRate))
	rate := a.defaultRate
	if raw != "" {
		parsed, err := decimal.NewFromString(raw)
		if err != nil {
			a.report(fmt.Errorf("%q is not a valid rate", raw))
			return
		}
		rate = parsed
	}
	credited, err := a.svc.CalculateInterest(rate)
	if err != nil {
		a.report(err)
		return
	}
	for _, acct := range credited {
		last := acct.Transactions[len(acct.Transactions)-1]
		fmt.Fprintf(a.out, "Interest of %s added to Savings account %d.\n", last.Amount.StringFixed(2), acct.Number)
	}
	fmt.Fprintln(a.out, "Interest calculated for all savings accounts.")
}

func (a *App) viewAllAccounts() {
	accounts, err := a.svc.ViewAllAccounts()
	if err != nil {
		a.report(err)
		return
	}
	if len(accounts) == 0 {
		fmt.Fprintln(a.out, "No accounts found for this user.")
		return
	}
	fmt.Fprintln(a.out, "All Accounts:")
	for _, acct := range accounts {
		fmt.Fprintf(a.out, "Account Number: %d, Holder Name: %s, Account Type: %s, Balance: %s\n",
			acct.Number, acct.HolderName, acct.Type, acct.Balance.StringFixed(2))
	}
}

// report renders service errors in the console's voice.
func (a *App) report(err error) {
	fmt.Fprintln(a.out, message(err))
}

func message(err error) string {
	switch {
	case errors.Is(err, bank.ErrNotLoggedIn):
		return "Please log in first."
	case errors.Is(err, bank.ErrUserExists):
		return "Username already exists."
	case errors.Is(err, bank.ErrInvalidCredentials):
		return "Invalid credentials."
	case errors.Is(err, bank.ErrAccountNotFound):
		return "Account not found."
	case errors.Is(err, bank.ErrInvalidAmount):
		return "Amount must be positive."
	case errors.Is(err, bank.ErrInsufficientFunds):
		return "Invalid amount or insufficient funds."
	case errors.Is(err, bank.ErrInvalidAccountType):
		return "Custom account type cannot be empty."
	}
	return "Error: " + err.Error()
}
