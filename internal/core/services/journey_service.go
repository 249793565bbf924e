package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/barrique/barrique_backend/internal/apperrors"
	"github.com/barrique/barrique_backend/internal/core/domain"
	portsrepo "github.com/barrique/barrique_backend/internal/core/ports/repositories"
	portssvc "github.com/barrique/barrique_backend/internal/core/ports/services"
	"github.com/barrique/barrique_backend/internal/dto"
)

type journeyService struct {
	BaseService
	journeyRepo portsrepo.JourneyRepositoryFacade
	expenseRepo portsrepo.ExpenseReader
}

// NewJourneyService creates a new journey service. The expense reader fills the journey's
// expense collection on read.
func NewJourneyService(journeyRepo portsrepo.JourneyRepositoryFacade, expenseRepo portsrepo.ExpenseReader) portssvc.JourneySvcFacade {
	return &journeyService{
		journeyRepo: journeyRepo,
		expenseRepo: expenseRepo,
	}
}

var _ portssvc.JourneySvcFacade = (*journeyService)(nil)

func (s *journeyService) CreateJourney(ctx context.Context, userID int64, req dto.JourneyRequest) (*domain.Journey, error) {
	journey := req.ToDomain()
	journey.UserID = userID

	saved, err := s.journeyRepo.SaveJourney(ctx, journey)
	if err != nil {
		s.LogError(ctx, err, "Failed to save journey", slog.Int64("user_id", userID))
		return nil, err
	}

	s.LogInfo(ctx, "Journey created", slog.Int64("journey_id", saved.JourneyID))
	return saved, nil
}

func (s *journeyService) GetJourneyByID(ctx context.Context, journeyID int64) (*domain.Journey, error) {
	journey, err := s.journeyRepo.FindJourneyByID(ctx, journeyID)
	if err != nil {
		return nil, err
	}
	if err := s.loadExpenses(ctx, journey); err != nil {
		return nil, err
	}
	return journey, nil
}

func (s *journeyService) loadExpenses(ctx context.Context, journey *domain.Journey) error {
	expenses, err := s.expenseRepo.ListExpensesByJourney(ctx, journey.JourneyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load journey expenses", slog.Int64("journey_id", journey.JourneyID))
		return err
	}
	journey.Expenses = expenses
	return nil
}

func (s *journeyService) ListJourneysByUser(ctx context.Context, userID int64) ([]domain.Journey, error) {
	journeys, err := s.journeyRepo.ListJourneysByUserID(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list journeys", slog.Int64("user_id", userID))
		return nil, err
	}
	return journeys, nil
}

func (s *journeyService) UpdateJourney(ctx context.Context, journeyID int64, req dto.JourneyRequest) (*domain.Journey, error) {
	journey, err := s.journeyRepo.FindJourneyByID(ctx, journeyID)
	if err != nil {
		return nil, err
	}
	journey.ApplyUpdate(req.ToDomain())

	if err := s.journeyRepo.UpdateJourney(ctx, *journey); err != nil {
		s.LogError(ctx, err, "Failed to update journey", slog.Int64("journey_id", journeyID))
		return nil, err
	}
	return journey, nil
}

func (s *journeyService) DeleteJourney(ctx context.Context, journeyID int64) error {
	if err := s.journeyRepo.DeleteJourney(ctx, journeyID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete journey", slog.Int64("journey_id", journeyID))
		}
		return err
	}
	s.LogInfo(ctx, "Journey deleted", slog.Int64("journey_id", journeyID))
	return nil
}

func (s *journeyService) GetJourneySummary(ctx context.Context, journeyID int64) (*domain.JourneySummary, error) {
	journey, err := s.GetJourneyByID(ctx, journeyID)
	if err != nil {
		return nil, err
	}
	summary := journey.Summarize()
	return &summary, nil
}

// AuthorizeJourney checks that userID owns the journey.
func (s *journeyService) AuthorizeJourney(ctx context.Context, journeyID int64, userID int64) (*domain.Journey, error) {
	journey, err := s.journeyRepo.FindJourneyByID(ctx, journeyID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogDebug(ctx, "Journey not found", slog.Int64("journey_id", journeyID))
			return nil, err
		}
		s.LogError(ctx, err, "Failed to load journey for authorization", slog.Int64("journey_id", journeyID))
		return nil, err
	}
	if !journey.IsOwnedBy(userID) {
		s.LogDebug(ctx, "User does not own journey",
			slog.Int64("journey_id", journeyID),
			slog.Int64("user_id", userID))
		return nil, apperrors.ErrForbidden
	}
	return journey, nil
}
