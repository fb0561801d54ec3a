package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"

	"github.com/google/uuid"
)

type matchUsecase struct {
	matchRepo domain.MatchRepository
}

func NewMatchUsecase(matchRepo domain.MatchRepository) domain.MatchUsecase {
	return &matchUsecase{matchRepo: matchRepo}
}

// CreateOrGetMatch is idempotent per (candidate, recruiter, offer). Concurrent callers
// race on the storage unique index; the loser re-reads and returns the winner's row.
func (u *matchUsecase) CreateOrGetMatch(ctx context.Context, candidateID, recruiterID, jobOfferID string) (*domain.Match, error) {
	if candidateID == "" || recruiterID == "" || jobOfferID == "" {
		return nil, apperror.Validation("candidate, recruiter and job offer are required")
	}
	if candidateID == recruiterID {
		return nil, apperror.Validation("A match needs two different users")
	}

	existing, err := u.matchRepo.FindByTriangle(ctx, candidateID, recruiterID, jobOfferID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.Internal(err)
	}

	now := time.Now()
	match := &domain.Match{
		ID:         uuid.NewString(),
		User1ID:    candidateID,
		User2ID:    recruiterID,
		JobOfferID: jobOfferID,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	err = u.matchRepo.Create(ctx, match)
	switch {
	case err == nil:
		return match, nil
	case errors.Is(err, domain.ErrConflict):
		winner, err := u.matchRepo.FindByTriangle(ctx, candidateID, recruiterID, jobOfferID)
		if err != nil {
			return nil, apperror.Internal(fmt.Errorf("re-read match after conflict: %w", err))
		}
		return winner, nil
	case errors.Is(err, domain.ErrReferenceMissing):
		return nil, apperror.Internal(fmt.Errorf("match references a missing user or job offer: %w", err))
	default:
		return nil, apperror.Internal(err)
	}
}

func (u *matchUsecase) ListMatches(ctx context.Context, userID string) ([]domain.MatchSummary, error) {
	summaries, err := u.matchRepo.ListActiveSummaries(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return summaries, nil
}

// GetMatch also returns inactive matches so participants keep their history.
func (u *matchUsecase) GetMatch(ctx context.Context, userID, matchID string) (*domain.Match, error) {
	return participantMatch(ctx, u.matchRepo, userID, matchID)
}

func (u *matchUsecase) Unmatch(ctx context.Context, userID, matchID string) (*domain.Match, error) {
	match, err := participantMatch(ctx, u.matchRepo, userID, matchID)
	if err != nil {
		return nil, err
	}
	if !match.Active {
		return match, nil
	}

	updated, err := u.matchRepo.Deactivate(ctx, matchID)
	if err != nil {
		return nil, storageErr(err, "Match not found")
	}
	return updated, nil
}

func participantMatch(ctx context.Context, repo domain.MatchRepository, userID, matchID string) (*domain.Match, error) {
	match, err := repo.GetByID(ctx, matchID)
	if err != nil {
		return nil, storageErr(err, "Match not found")
	}
	if !match.HasParticipant(userID) {
		return nil, apperror.Forbidden("You are not a participant of this match")
	}
	return match, nil
}
