package seed

import (
	"time"

	"github.com/Swetha233926/ConsoleBankingApplication/internal/logger"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/models"
	"github.com/Swetha233926/ConsoleBankingApplication/internal/store"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	demoUsername = "demo"
	demoPassword = "Demo123!$"
	demoHolder   = "Demo User"
)

var demoAccounts = []struct {
	Type    string
	Balance string
}{
	{models.TypeSavings, "1000.00"},
	{models.TypeChecking, "500.00"},
}

// Run provisions a demo user with two funded accounts so an interactive
// session has something to poke at. It builds the records directly
// against the store, leaving the session untouched.
func Run(st *store.Memory) {
	user := &models.User{Username: demoUsername, Password: demoPassword}
	if !st.AddUser(user) {
		logger.Log.Info("demo user already present, skipping seed")
		return
	}

	for _, d := range demoAccounts {
		balance := decimal.RequireFromString(d.Balance)
		acct := &models.Account{
			Number:     st.NextAccountNumber(),
			HolderName: demoHolder,
			Type:       d.Type,
			Balance:    balance,
			OpenedAt:   time.Now(),
		}
		acct.Transactions = append(acct.Transactions, models.Transaction{
			ID:     uuid.New(),
			Date:   time.Now(),
			Kind:   models.TxInitialDeposit,
			Amount: balance,
		})
		user.Accounts = append(user.Accounts, acct)
	}

	logger.Log.Info("seeded demo user",
		zap.String("username", demoUsername),
		zap.Int("accounts", len(user.Accounts)))
}
