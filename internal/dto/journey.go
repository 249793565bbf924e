package dto

import (
	"github.com/barrique/barrique_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// JourneyRequest is the body accepted for creating or updating a journey.
// EndDate must not precede StartDate; see the struct-level validator in handlers.
type JourneyRequest struct {
	Name      string `json:"name" binding:"required,max=255"`
	HomeCurr  string `json:"homeCurr" binding:"required,iso4217"`
	VacCurr   string `json:"vacCurr" binding:"required,iso4217"`
	Budget    int    `json:"budget" binding:"gte=0"`
	StartDate *Date  `json:"startDate" binding:"required"`
	EndDate   *Date  `json:"endDate" binding:"required"`
}

// ToDomain converts the request into an unsaved journey owned by nobody yet.
func (r JourneyRequest) ToDomain() domain.Journey {
	j := domain.Journey{
		Name:     r.Name,
		HomeCurr: r.HomeCurr,
		VacCurr:  r.VacCurr,
		Budget:   r.Budget,
	}
	if r.StartDate != nil {
		j.StartDate = r.StartDate.Time
	}
	if r.EndDate != nil {
		j.EndDate = r.EndDate.Time
	}
	return j
}

// JourneyResponse is the wire shape of a journey. Expenses are omitted in list views.
type JourneyResponse struct {
	JourneyID int64             `json:"journeyId"`
	Name      string            `json:"name"`
	HomeCurr  string            `json:"homeCurr"`
	VacCurr   string            `json:"vacCurr"`
	Budget    int               `json:"budget"`
	StartDate Date              `json:"startDate"`
	EndDate   Date              `json:"endDate"`
	Expenses  []ExpenseResponse `json:"expenses,omitempty"`
}

// ToJourneyResponse converts a domain.Journey to JourneyResponse DTO
func ToJourneyResponse(j *domain.Journey) JourneyResponse {
	res := JourneyResponse{
		JourneyID: j.JourneyID,
		Name:      j.Name,
		HomeCurr:  j.HomeCurr,
		VacCurr:   j.VacCurr,
		Budget:    j.Budget,
		StartDate: NewDate(j.StartDate),
		EndDate:   NewDate(j.EndDate),
	}
	if j.Expenses != nil {
		res.Expenses = ToListExpenseResponse(j.Expenses)
	}
	return res
}

// ToListJourneyResponse converts a slice of domain.Journey to a slice of JourneyResponse DTOs
func ToListJourneyResponse(journeys []domain.Journey) []JourneyResponse {
	res := make([]JourneyResponse, len(journeys))
	for i := range journeys {
		res[i] = ToJourneyResponse(&journeys[i])
	}
	return res
}

// JourneySummaryResponse reports budget consumption for a journey.
type JourneySummaryResponse struct {
	JourneyID    int64           `json:"journeyId"`
	Currency     string          `json:"currency"`
	Budget       decimal.Decimal `json:"budget"`
	TotalSpent   decimal.Decimal `json:"totalSpent"`
	Remaining    decimal.Decimal `json:"remaining"`
	PercentUsed  decimal.Decimal `json:"percentUsed"`
	ExpenseCount int             `json:"expenseCount"`
	OverBudget   bool            `json:"overBudget"`
}

// ToJourneySummaryResponse converts a domain.JourneySummary to its DTO
func ToJourneySummaryResponse(s domain.JourneySummary) JourneySummaryResponse {
	return JourneySummaryResponse{
		JourneyID:    s.JourneyID,
		Currency:     s.Currency,
		Budget:       s.Budget,
		TotalSpent:   s.TotalSpent,
		Remaining:    s.Remaining,
		PercentUsed:  s.PercentUsed,
		ExpenseCount: s.ExpenseCount,
		OverBudget:   s.OverBudget,
	}
}
