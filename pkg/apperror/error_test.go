package apperror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"go-swipe-backend/pkg/apperror"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorIsMatchesByReason(t *testing.T) {
	err := apperror.DuplicateSwipe("You have already swiped this offer")

	assert.ErrorIs(t, err, apperror.ErrDuplicateSwipe)
	assert.NotErrorIs(t, err, apperror.ErrForbidden)
	assert.Equal(t, http.StatusConflict, err.Code)
}

func TestAppErrorIsThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("record swipe: %w", apperror.Forbidden("nope"))

	assert.ErrorIs(t, wrapped, apperror.ErrForbidden)
	assert.Equal(t, apperror.ReasonForbidden, apperror.ReasonOf(wrapped))
}

func TestReasonOfForeignError(t *testing.T) {
	assert.Equal(t, apperror.ReasonInternal, apperror.ReasonOf(errors.New("boom")))
}

func TestInternalKeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperror.Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Internal Server Error", err.Error())
}

func TestIsInvalidState(t *testing.T) {
	assert.True(t, apperror.IsInvalidState(apperror.MatchInactive("removed")))
	assert.True(t, apperror.IsInvalidState(apperror.InvalidState("paused")))
	assert.False(t, apperror.IsInvalidState(apperror.Validation("empty")))
}
