package usecase

import (
	"context"
	"errors"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"
)

type matchDetector struct {
	jobOfferRepo domain.JobOfferRepository
	swipeRepo    domain.SwipeRepository
	matches      domain.MatchUsecase
}

func NewMatchDetector(jobOfferRepo domain.JobOfferRepository, swipeRepo domain.SwipeRepository, matches domain.MatchUsecase) domain.MatchDetector {
	return &matchDetector{
		jobOfferRepo: jobOfferRepo,
		swipeRepo:    swipeRepo,
		matches:      matches,
	}
}

// DetectReciprocal is called after swiperID's LIKE on target has been stored.
// It returns nil when the other side has not liked back yet.
func (d *matchDetector) DetectReciprocal(ctx context.Context, swiperID string, target domain.SwipeTarget) (*domain.Match, error) {
	switch t := target.(type) {
	case domain.OfferTarget:
		return d.fromCandidate(ctx, swiperID, t.JobOfferID)
	case domain.CandidateTarget:
		return d.fromRecruiter(ctx, swiperID, t.UserID)
	}
	return nil, apperror.Validation("Unknown swipe target")
}

// Candidate liked an offer: the offer's recruiter must have liked the candidate.
func (d *matchDetector) fromCandidate(ctx context.Context, candidateID, jobOfferID string) (*domain.Match, error) {
	offer, err := d.jobOfferRepo.GetByID(ctx, jobOfferID)
	if err != nil {
		return nil, storageErr(err, "Job offer not found")
	}

	_, err = d.swipeRepo.FindLike(ctx, offer.RecruiterID, domain.CandidateTarget{UserID: candidateID})
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return d.matches.CreateOrGetMatch(ctx, candidateID, offer.RecruiterID, offer.ID)
}

// Recruiter liked a candidate: the candidate must have liked one of the recruiter's
// offers. With several, the earliest like decides the offer.
func (d *matchDetector) fromRecruiter(ctx context.Context, recruiterID, candidateID string) (*domain.Match, error) {
	offerIDs, err := d.jobOfferRepo.ListIDsByRecruiter(ctx, recruiterID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if len(offerIDs) == 0 {
		return nil, nil
	}

	like, err := d.swipeRepo.FindEarliestOfferLike(ctx, candidateID, offerIDs)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return d.matches.CreateOrGetMatch(ctx, candidateID, recruiterID, like.Target.ID())
}
