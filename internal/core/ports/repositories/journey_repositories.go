package repositories

import (
	"context"

	"github.com/barrique/barrique_backend/internal/core/domain"
)

// JourneyReader defines read operations for journey data
type JourneyReader interface {
	// FindJourneyByID retrieves a journey without its expenses.
	FindJourneyByID(ctx context.Context, journeyID int64) (*domain.Journey, error)

	// ListJourneysByUserID retrieves all journeys owned by a user, latest start date first.
	ListJourneysByUserID(ctx context.Context, userID int64) ([]domain.Journey, error)
}

// JourneyWriter defines write operations for journey data
type JourneyWriter interface {
	// SaveJourney persists a new journey and returns it with its generated ID.
	SaveJourney(ctx context.Context, journey domain.Journey) (*domain.Journey, error)

	// UpdateJourney updates the mutable fields of an existing journey.
	UpdateJourney(ctx context.Context, journey domain.Journey) error

	// DeleteJourney removes a journey and all of its expenses in one transaction.
	DeleteJourney(ctx context.Context, journeyID int64) error
}

// JourneyRepositoryFacade combines all journey-related repository interfaces
type JourneyRepositoryFacade interface {
	JourneyReader
	JourneyWriter
}
