package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Journey is a budgeted travel period owned by a user.
type Journey struct {
	JourneyID int64     `json:"journeyId" db:"journey_id"`
	UserID    int64     `json:"-" db:"user_id"` // FK -> users.user_id (NON-NULL)
	Name      string    `json:"name" db:"name"`
	HomeCurr  string    `json:"homeCurr" db:"home_curr"`
	VacCurr   string    `json:"vacCurr" db:"vac_curr"`
	Budget    int       `json:"budget" db:"budget"`
	StartDate time.Time `json:"startDate" db:"start_date"`
	EndDate   time.Time `json:"endDate" db:"end_date"`
	AuditFields

	// Expenses is filled on read; the expenses table is the source of truth.
	Expenses []Expense `json:"expenses" db:"-"`
}

// IsOwnedBy reports whether userID owns the journey.
func (j *Journey) IsOwnedBy(userID int64) bool {
	return j.UserID == userID
}

// AddExpense links the expense to this journey and appends it to the loaded collection.
func (j *Journey) AddExpense(e *Expense) {
	e.JourneyID = j.JourneyID
	j.Expenses = append(j.Expenses, *e)
}

// RemoveExpense drops the expense with the given id from the loaded collection and
// clears the expense's journey reference. It reports whether the expense was present.
func (j *Journey) RemoveExpense(e *Expense) bool {
	for i := range j.Expenses {
		if j.Expenses[i].ExpenseID == e.ExpenseID {
			j.Expenses = append(j.Expenses[:i], j.Expenses[i+1:]...)
			e.JourneyID = 0
			return true
		}
	}
	return false
}

// ApplyUpdate copies the mutable fields of other onto j.
func (j *Journey) ApplyUpdate(other Journey) {
	j.Name = other.Name
	j.HomeCurr = other.HomeCurr
	j.VacCurr = other.VacCurr
	j.Budget = other.Budget
	j.StartDate = other.StartDate
	j.EndDate = other.EndDate
}

// TotalSpent sums the amounts of the loaded expenses.
func (j *Journey) TotalSpent() decimal.Decimal {
	total := decimal.Zero
	for _, e := range j.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// JourneySummary reports budget consumption for a journey.
type JourneySummary struct {
	JourneyID    int64
	Currency     string
	Budget       decimal.Decimal
	TotalSpent   decimal.Decimal
	Remaining    decimal.Decimal
	PercentUsed  decimal.Decimal
	ExpenseCount int
	OverBudget   bool
}

// Summarize computes the budget summary from the loaded expenses.
func (j *Journey) Summarize() JourneySummary {
	budget := decimal.NewFromInt(int64(j.Budget))
	spent := j.TotalSpent()
	percent := decimal.Zero
	if budget.IsPositive() {
		percent = spent.Div(budget).Mul(decimal.NewFromInt(100)).Round(2)
	}
	return JourneySummary{
		JourneyID:    j.JourneyID,
		Currency:     j.HomeCurr,
		Budget:       budget,
		TotalSpent:   spent,
		Remaining:    budget.Sub(spent),
		PercentUsed:  percent,
		ExpenseCount: len(j.Expenses),
		OverBudget:   spent.GreaterThan(budget),
	}
}
