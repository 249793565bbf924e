package services

import (
	"context"

	"github.com/barrique/barrique_backend/internal/core/domain"
	"github.com/barrique/barrique_backend/internal/dto"
)

// JourneyReaderSvc defines read operations for journey data
type JourneyReaderSvc interface {
	// GetJourneyByID retrieves a journey with its expenses loaded.
	GetJourneyByID(ctx context.Context, journeyID int64) (*domain.Journey, error)

	// ListJourneysByUser retrieves the journeys owned by a user.
	ListJourneysByUser(ctx context.Context, userID int64) ([]domain.Journey, error)

	// GetJourneySummary computes budget consumption for a journey.
	GetJourneySummary(ctx context.Context, journeyID int64) (*domain.JourneySummary, error)
}

// JourneyWriterSvc defines write operations for journey data
type JourneyWriterSvc interface {
	// CreateJourney persists a new journey owned by userID.
	CreateJourney(ctx context.Context, userID int64, req dto.JourneyRequest) (*domain.Journey, error)

	// UpdateJourney replaces the mutable fields of a journey.
	UpdateJourney(ctx context.Context, journeyID int64, req dto.JourneyRequest) (*domain.Journey, error)

	// DeleteJourney removes a journey and its expenses.
	DeleteJourney(ctx context.Context, journeyID int64) error
}

// JourneyAuthorizerSvc resolves a journey on behalf of a user.
type JourneyAuthorizerSvc interface {
	// AuthorizeJourney returns the journey if userID owns it. It returns an error matching
	// apperrors.ErrNotFound if the journey is absent and apperrors.ErrForbidden if it
	// belongs to someone else.
	AuthorizeJourney(ctx context.Context, journeyID int64, userID int64) (*domain.Journey, error)
}

// JourneySvcFacade combines all journey-related service interfaces
type JourneySvcFacade interface {
	JourneyReaderSvc
	JourneyWriterSvc
	JourneyAuthorizerSvc
}
