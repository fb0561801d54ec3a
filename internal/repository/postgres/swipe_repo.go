package postgres

import (
	"context"
	"fmt"

	"go-swipe-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type swipeRepo struct {
	db *pgxpool.Pool
}

func NewSwipeRepository(db *pgxpool.Pool) domain.SwipeRepository {
	return &swipeRepo{db: db}
}

const swipeColumns = `id, swiper_id, job_offer_id, target_user_id, liked, created_at`

// targetColumn names the column keyed by the target variant.
func targetColumn(t domain.SwipeTarget) (string, error) {
	switch t.(type) {
	case domain.OfferTarget:
		return "job_offer_id", nil
	case domain.CandidateTarget:
		return "target_user_id", nil
	}
	return "", fmt.Errorf("unknown swipe target %T", t)
}

func scanSwipe(row pgx.Row) (*domain.Swipe, error) {
	var s domain.Swipe
	var offerID, userID *string
	if err := row.Scan(&s.ID, &s.SwiperID, &offerID, &userID, &s.Liked, &s.CreatedAt); err != nil {
		return nil, err
	}
	switch {
	case offerID != nil:
		s.Target = domain.OfferTarget{JobOfferID: *offerID}
	case userID != nil:
		s.Target = domain.CandidateTarget{UserID: *userID}
	default:
		return nil, fmt.Errorf("swipe %s has no target", s.ID)
	}
	return &s, nil
}

func (r *swipeRepo) FindByTarget(ctx context.Context, swiperID string, target domain.SwipeTarget) (*domain.Swipe, error) {
	col, err := targetColumn(target)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + swipeColumns + ` FROM swipes WHERE swiper_id = $1 AND ` + col + ` = $2`
	s, err := scanSwipe(r.db.QueryRow(ctx, query, swiperID, target.ID()))
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func (r *swipeRepo) Create(ctx context.Context, swipe *domain.Swipe) error {
	var offerID, userID *string
	switch t := swipe.Target.(type) {
	case domain.OfferTarget:
		offerID = &t.JobOfferID
	case domain.CandidateTarget:
		userID = &t.UserID
	default:
		return fmt.Errorf("unknown swipe target %T", swipe.Target)
	}

	query := `INSERT INTO swipes (id, swiper_id, job_offer_id, target_user_id, liked, created_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query, swipe.ID, swipe.SwiperID, offerID, userID, swipe.Liked, swipe.CreatedAt)
	return translate(err)
}

func (r *swipeRepo) FindLike(ctx context.Context, swiperID string, target domain.SwipeTarget) (*domain.Swipe, error) {
	col, err := targetColumn(target)
	if err != nil {
		return nil, err
	}
	query := `SELECT ` + swipeColumns + ` FROM swipes WHERE swiper_id = $1 AND ` + col + ` = $2 AND liked`
	s, err := scanSwipe(r.db.QueryRow(ctx, query, swiperID, target.ID()))
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}

func (r *swipeRepo) FindEarliestOfferLike(ctx context.Context, candidateID string, offerIDs []string) (*domain.Swipe, error) {
	if len(offerIDs) == 0 {
		return nil, domain.ErrNotFound
	}
	query := `SELECT ` + swipeColumns + ` FROM swipes
              WHERE swiper_id = $1 AND liked AND job_offer_id::text = ANY($2::text[])
              ORDER BY created_at ASC, id ASC
              LIMIT 1`
	s, err := scanSwipe(r.db.QueryRow(ctx, query, candidateID, offerIDs))
	if err != nil {
		return nil, translate(err)
	}
	return s, nil
}
