// Package bank implements the banking operations over the in-memory
// store: registration, login, account opening, deposits, withdrawals,
// interest accrual and statement queries. The service holds the single
// session; the CLI owns prompting, parsing and retry loops.
package bank

import (
	"strings"
	"time"

	"github.com/Swetha233926/ConsoleBankingApplication/internal/logger"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/models"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/store"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type Service struct {
	store    *store.Memory
	validate *validator.Validate

	// current is the session: nil means unauthenticated. It is
	// overwritten on every login attempt, successful or not, so a
	// failed attempt while logged in drops the existing session.
	current *models.User
}

func NewService(st *store.Memory) *Service {
	return &Service{store: st, validate: validator.New()}
}

type RegisterParams struct {
	Username string `validate:"required"`
}

type OpenAccountParams struct {
	HolderName string `validate:"required"`
}

// Register creates a new user. The username must be free (checked first)
// and the password must satisfy every strength rule; rule failures come
// back as a *WeakPasswordError so the caller can re-prompt.
func (s *Service) Register(username, password string) error {
	if err := s.checkParams(RegisterParams{Username: username}); err != nil {
		return err
	}
	if _, ok := s.store.FindUser(username); ok {
		return ErrUserExists
	}
	if unmet := CheckPassword(password); len(unmet) > 0 {
		return &WeakPasswordError{Unmet: unmet}
	}
	s.store.AddUser(&models.User{Username: username, Password: password})
	logger.Log.Info("user registered", zap.String("username", username))
	return nil
}

// Login matches username and password exactly (case-sensitive) and makes
// the matched user the session. The session is always overwritten with
// the lookup result, even on failure.
func (s *Service) Login(username, password string) error {
	u, ok := s.store.Authenticate(username, password)
	s.current = u
	if !ok {
		logger.Log.Info("login failed", zap.String("username", username))
		return ErrInvalidCredentials
	}
	logger.Log.Info("login successful", zap.String("username", username))
	return nil
}

// CurrentUsername returns the session user's name, or "" when nobody is
// logged in.
func (s *Service) CurrentUsername() string {
	if s.current == nil {
		return ""
	}
	return s.current.Username
}

// OpenAccount creates an account for the session user with a freshly
// allocated number and the initial deposit as its first transaction.
// Negative initial deposits are accepted as-is; see DESIGN.md.
func (s *Service) OpenAccount(holderName, accountType string, initialDeposit decimal.Decimal) (*models.Account, error) {
	u, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	if err := s.checkParams(OpenAccountParams{HolderName: holderName}); err != nil {
		return nil, err
	}
	if strings.TrimSpace(accountType) == "" {
		return nil, ErrInvalidAccountType
	}

	a := &models.Account{
		Number:     s.store.NextAccountNumber(),
		HolderName: holderName,
		Type:       accountType,
		Balance:    initialDeposit,
		OpenedAt:   time.Now(),
	}
	a.Transactions = append(a.Transactions, newTransaction(models.TxInitialDeposit, initialDeposit))
	u.Accounts = append(u.Accounts, a)

	logger.Log.Info("account opened",
		zap.Int("number", a.Number),
		zap.String("type", a.Type),
		zap.String("balance", a.Balance.String()))
	return copyAccount(a), nil
}

// Deposit credits amount to one of the session user's accounts. The
// amount must be strictly positive; there is no upper bound.
func (s *Service) Deposit(accountNumber int, amount decimal.Decimal) (*models.Account, error) {
	u, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	a, err := findAccount(u, accountNumber)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	a.Balance = a.Balance.Add(amount)
	a.Transactions = append(a.Transactions, newTransaction(models.TxDeposit, amount))
	return copyAccount(a), nil
}

// Withdraw debits amount from one of the session user's accounts.
// Succeeds only when 0 < amount <= balance; no overdraft, ever.
func (s *Service) Withdraw(accountNumber int, amount decimal.Decimal) (*models.Account, error) {
	u, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	a, err := findAccount(u, accountNumber)
	if err != nil {
		return nil, err
	}
	if amount.Sign() <= 0 {
		return nil, ErrInvalidAmount
	}
	if amount.GreaterThan(a.Balance) {
		return nil, ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	a.Transactions = append(a.Transactions, newTransaction(models.TxWithdrawal, amount))
	return copyAccount(a), nil
}

// CalculateInterest applies balance*rate to every account of the session
// user whose type equals "Savings" case-insensitively, and returns the
// credited accounts. Other accounts are skipped. The rate is a plain
// multiplier and is not bound-checked; a negative rate reduces balances.
func (s *Service) CalculateInterest(rate decimal.Decimal) ([]*models.Account, error) {
	u, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	var credited []*models.Account
	for _, a := range u.Accounts {
		if !strings.EqualFold(a.Type, models.TypeSavings) {
			continue
		}
		interest := a.Balance.Mul(rate)
		a.Balance = a.Balance.Add(interest)
		a.Transactions = append(a.Transactions, newTransaction(models.TxMonthlyInterest, interest))
		credited = append(credited, copyAccount(a))
	}
	logger.Log.Info("interest applied",
		zap.String("rate", rate.String()),
		zap.Int("accounts", len(credited)))
	return credited, nil
}

// GenerateStatement returns a copy of an account's transaction log.
func (s *Service) GenerateStatement(accountNumber int) ([]models.Transaction, error) {
	u, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	a, err := findAccount(u, accountNumber)
	if err != nil {
		return nil, err
	}
	out := make([]models.Transaction, len(a.Transactions))
	copy(out, a.Transactions)
	return out, nil
}

// CheckBalance returns an account's current balance.
func (s *Service) CheckBalance(accountNumber int) (decimal.Decimal, error) {
	u, err := s.requireSession()
	if err != nil {
		return decimal.Zero, err
	}
	a, err := findAccount(u, accountNumber)
	if err != nil {
		return decimal.Zero, err
	}
	return a.Balance, nil
}

// ViewAllAccounts lists every account the session user owns.
func (s *Service) ViewAllAccounts() ([]*models.Account, error) {
	u, err := s.requireSession()
	if err != nil {
		return nil, err
	}
	out := make([]*models.Account, 0, len(u.Accounts))
	for _, a := range u.Accounts {
		out = append(out, copyAccount(a))
	}
	return out, nil
}

func (s *Service) requireSession() (*models.User, error) {
	if s.current == nil {
		return nil, ErrNotLoggedIn
	}
	return s.current, nil
}

// findAccount scans the user's own accounts only; account numbers are
// never addressable across users and no global index exists.
func findAccount(u *models.User, number int) (*models.Account, error) {
	for _, a := range u.Accounts {
		if a.Number == number {
			return a, nil
		}
	}
	return nil, ErrAccountNotFound
}

func newTransaction(kind string, amount decimal.Decimal) models.Transaction {
	return models.Transaction{
		ID:     uuid.New(),
		Date:   time.Now(),
		Kind:   kind,
		Amount: amount,
	}
}

// copyAccount returns a detached copy so callers cannot mutate service
// state through returned values.
func copyAccount(a *models.Account) *models.Account {
	cp := *a
	cp.Transactions = make([]models.Transaction, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return &cp
}
