package pgsql

import (
	"context"
	"fmt"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
)

type PgxJourneyRepository struct {
	BaseRepository
	expenseRepo *PgxExpenseRepository
}

// newPgxJourneyRepository creates a new repository for journey data. The expense repository
// is used to cascade deletes inside the journey's transaction.
func newPgxJourneyRepository(pool pgxPool, expenseRepo *PgxExpenseRepository) *PgxJourneyRepository {
	return &PgxJourneyRepository{
		BaseRepository: BaseRepository{Pool: pool},
		expenseRepo:    expenseRepo,
	}
}

// Ensure PgxJourneyRepository implements portsrepo.JourneyRepositoryFacade
var (
	_ portsrepo.JourneyRepositoryFacade = (*PgxJourneyRepository)(nil)
	_ portsrepo.TransactionManager      = (*PgxJourneyRepository)(nil)
)

var FULL_JOURNEY_SELECT_QUERY = `
SELECT
	j.journey_id, j.user_id, j.name, j.home_curr, j.vac_curr, j.budget,
	j.start_date, j.end_date, j.created_at, j.last_updated_at
FROM journeys j
`

func (r *PgxJourneyRepository) getJourneys(ctx context.Context, filterQuery string, args ...any) ([]domain.Journey, error) {
	rows, err := r.Pool.Query(ctx, FULL_JOURNEY_SELECT_QUERY+filterQuery, args...)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query journeys", err)
	}
	return collectAll[domain.Journey](rows, "journey")
}

func (r *PgxJourneyRepository) SaveJourney(ctx context.Context, journey domain.Journey) (*domain.Journey, error) {
	query := `
		INSERT INTO journeys (user_id, name, home_curr, vac_curr, budget, start_date, end_date, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING journey_id, user_id, name, home_curr, vac_curr, budget, start_date, end_date, created_at, last_updated_at;
	`
	rows, err := r.Pool.Query(ctx, query,
		journey.UserID,
		journey.Name,
		journey.HomeCurr,
		journey.VacCurr,
		journey.Budget,
		journey.StartDate,
		journey.EndDate,
	)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to save journey", err)
	}
	return collectOne[domain.Journey](rows, "journey")
}

func (r *PgxJourneyRepository) FindJourneyByID(ctx context.Context, journeyID int64) (*domain.Journey, error) {
	journeys, err := r.getJourneys(ctx, `WHERE j.journey_id = $1`, journeyID)
	if err != nil {
		return nil, err
	}
	if len(journeys) == 0 {
		return nil, apperrors.NewNotFoundError("journey not found")
	}
	return &journeys[0], nil
}

func (r *PgxJourneyRepository) ListJourneysByUserID(ctx context.Context, userID int64) ([]domain.Journey, error) {
	return r.getJourneys(ctx, `WHERE j.user_id = $1 ORDER BY j.start_date DESC, j.journey_id DESC;`, userID)
}

func (r *PgxJourneyRepository) UpdateJourney(ctx context.Context, journey domain.Journey) error {
	query := `
		UPDATE journeys
		SET name = $1, home_curr = $2, vac_curr = $3, budget = $4, start_date = $5, end_date = $6,
			last_updated_at = NOW()
		WHERE journey_id = $7;
	`
	result, err := r.Pool.Exec(ctx, query,
		journey.Name,
		journey.HomeCurr,
		journey.VacCurr,
		journey.Budget,
		journey.StartDate,
		journey.EndDate,
		journey.JourneyID,
	)
	if err != nil {
		return apperrors.NewAppError(500, fmt.Sprintf("failed to update journey %d", journey.JourneyID), err)
	}
	if result.RowsAffected() == 0 {
		return apperrors.NewNotFoundError("journey not found")
	}
	return nil
}

// DeleteJourney removes the journey's expenses and then the journey in one transaction.
func (r *PgxJourneyRepository) DeleteJourney(ctx context.Context, journeyID int64) error {
	return r.inTx(ctx, func(tx pgx.Tx) error {
		if err := r.expenseRepo.deleteExpensesByJourneyInTx(ctx, tx, journeyID); err != nil {
			return err
		}

		result, err := tx.Exec(ctx, `DELETE FROM journeys WHERE journey_id = $1`, journeyID)
		if err != nil {
			return apperrors.NewAppError(500, fmt.Sprintf("failed to delete journey %d", journeyID), err)
		}
		if result.RowsAffected() == 0 {
			return apperrors.NewNotFoundError("journey not found")
		}
		return nil
	})
}
