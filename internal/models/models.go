package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction kinds as they appear on statements.
const (
	TxInitialDeposit  = "Initial Deposit"
	TxDeposit         = "Deposit"
	TxWithdrawal      = "Withdrawal"
	TxMonthlyInterest = "Monthly Interest"
)

// The fixed account types offered at opening. A free-text custom type may
// be used instead of any of these.
const (
	TypeSavings      = "Savings"
	TypeChecking     = "Checking"
	TypeBusiness     = "Business"
	TypeStudent      = "Student"
	TypeJoint        = "Joint"
	TypeFixedDeposit = "Fixed Deposit"
)

var AccountTypes = []string{
	TypeSavings,
	TypeChecking,
	TypeBusiness,
	TypeStudent,
	TypeJoint,
	TypeFixedDeposit,
}

type User struct {
	Username string     `json:"username"`
	Password string     `json:"-"` // stored plain, compared exactly; known deficiency
	Accounts []*Account `json:"accounts"`
}

type Account struct {
	Number       int             `json:"number"`
	HolderName   string          `json:"holder_name"`
	Type         string          `json:"type"`
	Balance      decimal.Decimal `json:"balance"`
	OpenedAt     time.Time       `json:"opened_at"`
	Transactions []Transaction   `json:"transactions"`
}

// Transaction is immutable once appended to an account. Amounts are
// stored signed as computed: deposits and withdrawals are validated
// strictly positive before one is created, while initial deposits and
// interest carry whatever was applied (negative included).
type Transaction struct {
	ID     uuid.UUID       `json:"id"`
	Date   time.Time       `json:"date"`
	Kind   string          `json:"kind"`
	Amount decimal.Decimal `json:"amount"`
}

// Signed returns the amount with the sign it contributes to the balance.
func (t Transaction) Signed() decimal.Decimal {
	if t.Kind == TxWithdrawal {
		return t.Amount.Neg()
	}
	return t.Amount
}
