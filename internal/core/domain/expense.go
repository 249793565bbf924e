package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single spend record tied to one journey.
type Expense struct {
	ExpenseID int64           `json:"expenseId" db:"expense_id"`
	JourneyID int64           `json:"journeyId" db:"journey_id"` // FK -> journeys.journey_id (NON-NULL)
	Name      string          `json:"name" db:"name"`
	Amount    decimal.Decimal `json:"amount" db:"amount"`
	Date      time.Time       `json:"date" db:"expense_date"`
	AuditFields
}

// ApplyUpdate copies the mutable fields of other onto e. Identity and journey linkage are kept.
func (e *Expense) ApplyUpdate(other Expense) {
	e.Name = other.Name
	e.Amount = other.Amount
	e.Date = other.Date
}
