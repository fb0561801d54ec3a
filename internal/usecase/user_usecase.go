package usecase

import (
	"context"
	"errors"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"
)

type userUsecase struct {
	userRepo domain.UserRepository
}

func NewUserUsecase(userRepo domain.UserRepository) domain.UserUsecase {
	return &userUsecase{userRepo: userRepo}
}

// GetCurrentUser resolves the authenticated subject. Tokens are issued elsewhere, so a
// valid token may still point at an account this service does not know.
func (u *userUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Account not found")
		}
		return nil, apperror.Internal(err)
	}
	if !user.Active {
		return nil, apperror.Forbidden("Account is deactivated")
	}
	return user, nil
}
