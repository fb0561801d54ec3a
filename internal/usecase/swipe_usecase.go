package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"

	"github.com/google/uuid"
)

// PotentialLimit caps the swipe deck; there is no pagination beyond it.
const PotentialLimit = 50

type swipeUsecase struct {
	userRepo     domain.UserRepository
	jobOfferRepo domain.JobOfferRepository
	swipeRepo    domain.SwipeRepository
	detector     domain.MatchDetector
}

func NewSwipeUsecase(
	userRepo domain.UserRepository,
	jobOfferRepo domain.JobOfferRepository,
	swipeRepo domain.SwipeRepository,
	detector domain.MatchDetector,
) domain.SwipeUsecase {
	return &swipeUsecase{
		userRepo:     userRepo,
		jobOfferRepo: jobOfferRepo,
		swipeRepo:    swipeRepo,
		detector:     detector,
	}
}

func (u *swipeUsecase) RecordSwipe(ctx context.Context, swiperID string, target domain.SwipeTarget, liked bool) (*domain.SwipeResult, error) {
	if target == nil || strings.TrimSpace(target.ID()) == "" {
		return nil, apperror.Validation("Either jobOfferId or targetUserId is required")
	}

	swiper, err := u.userRepo.GetByID(ctx, swiperID)
	if err != nil {
		return nil, storageErr(err, "User not found")
	}
	if swiper.Role != domain.RoleForTarget(target) {
		if swiper.Role == domain.RoleCandidate {
			return nil, apperror.Validation("Candidates can only swipe on job offers")
		}
		return nil, apperror.Validation("Recruiters can only swipe on candidates")
	}

	if err := u.checkTarget(ctx, swiperID, target); err != nil {
		return nil, err
	}

	_, err = u.swipeRepo.FindByTarget(ctx, swiperID, target)
	switch {
	case err == nil:
		return nil, apperror.DuplicateSwipe("You have already swiped on this target")
	case !errors.Is(err, domain.ErrNotFound):
		return nil, apperror.Internal(err)
	}

	swipe := &domain.Swipe{
		ID:        uuid.NewString(),
		SwiperID:  swiperID,
		Target:    target,
		Liked:     liked,
		CreatedAt: time.Now(),
	}
	if err := u.swipeRepo.Create(ctx, swipe); err != nil {
		// a concurrent request for the same key won the insert
		if errors.Is(err, domain.ErrConflict) {
			return nil, apperror.DuplicateSwipe("You have already swiped on this target")
		}
		return nil, storageErr(err, "Swipe target not found")
	}

	result := &domain.SwipeResult{Swipe: swipe}
	if !liked {
		return result, nil
	}

	match, err := u.detector.DetectReciprocal(ctx, swiperID, target)
	if err != nil {
		return nil, err
	}
	result.Match = match
	return result, nil
}

func (u *swipeUsecase) checkTarget(ctx context.Context, swiperID string, target domain.SwipeTarget) error {
	switch t := target.(type) {
	case domain.OfferTarget:
		offer, err := u.jobOfferRepo.GetByID(ctx, t.JobOfferID)
		if err != nil {
			return storageErr(err, "Job offer not found")
		}
		if !offer.Active {
			return apperror.InvalidState("Job offer is no longer active")
		}
	case domain.CandidateTarget:
		if t.UserID == swiperID {
			return apperror.Validation("You cannot swipe on yourself")
		}
		user, err := u.userRepo.GetByID(ctx, t.UserID)
		if err != nil {
			return storageErr(err, "Candidate not found")
		}
		if user.Role != domain.RoleCandidate {
			return apperror.Validation("Target user is not a candidate")
		}
	}
	return nil
}

func (u *swipeUsecase) ListPotentialOffers(ctx context.Context, candidateID string) ([]domain.JobOfferCard, error) {
	if err := u.requireRole(ctx, candidateID, domain.RoleCandidate); err != nil {
		return nil, err
	}
	cards, err := u.jobOfferRepo.ListUnswipedActive(ctx, candidateID, PotentialLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return cards, nil
}

func (u *swipeUsecase) ListPotentialCandidates(ctx context.Context, recruiterID string) ([]domain.CandidateCard, error) {
	if err := u.requireRole(ctx, recruiterID, domain.RoleRecruiter); err != nil {
		return nil, err
	}
	cards, err := u.userRepo.ListUnswipedCandidates(ctx, recruiterID, PotentialLimit)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return cards, nil
}

func (u *swipeUsecase) requireRole(ctx context.Context, userID string, role domain.Role) error {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return storageErr(err, "User not found")
	}
	if user.Role != role {
		return apperror.Forbidden("This deck is not available for your account type")
	}
	return nil
}
