package dto_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/barrique/barrique_backend/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDate_JSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Time
		wantErr bool
	}{
		{name: "calendar date", input: `"2024-03-01"`, want: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)},
		{name: "leap day", input: `"2024-02-29"`, want: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)},
		{name: "null", input: `null`},
		{name: "timestamp rejected", input: `"2024-03-01T10:00:00Z"`, wantErr: true},
		{name: "day first rejected", input: `"01-03-2024"`, wantErr: true},
		{name: "unquoted rejected", input: `20240301`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d dto.Date
			err := json.Unmarshal([]byte(tt.input), &d)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(d.Time), "got %v", d.Time)
		})
	}
}

func TestDate_MarshalUsesCalendarFormat(t *testing.T) {
	d := dto.NewDate(time.Date(2024, 12, 31, 23, 59, 0, 0, time.UTC))

	out, err := json.Marshal(struct {
		Date dto.Date `json:"date"`
	}{Date: d})

	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-12-31"}`, string(out))
}

func TestExpenseRequest_ToDomain(t *testing.T) {
	body := `{"name":"Dinner","amount":"42.50","date":"2024-05-10"}`

	var req dto.ExpenseRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	e := req.ToDomain()

	assert.Equal(t, "Dinner", e.Name)
	assert.Equal(t, "42.5", e.Amount.String())
	assert.Equal(t, "2024-05-10", e.Date.Format(dto.DateLayout))
	assert.Zero(t, e.ExpenseID)
}

func TestCreateRecipeRequest_ToDomainLinksChildren(t *testing.T) {
	body := `{
		"title": "Pancakes",
		"servings": 4,
		"ingredients": [{"name": "flour", "quantity": "200", "unit": "g"}],
		"steps": [{"stepDescription": "mix", "stepNumber": 1}, {"stepDescription": "fry", "stepNumber": 2}],
		"tags": [{"name": "breakfast"}]
	}`

	var req dto.CreateRecipeRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	r := req.ToDomain()

	assert.Equal(t, "Pancakes", r.Title)
	assert.Equal(t, 4, r.Servings)
	require.Len(t, r.Ingredients, 1)
	assert.Equal(t, "flour", r.Ingredients[0].Name)
	require.Len(t, r.Steps, 2)
	assert.Equal(t, 2, r.Steps[1].StepNumber)
	require.Len(t, r.Tags, 1)
	assert.Empty(t, r.Tools)
	assert.Empty(t, r.NutritionalValues)
}
