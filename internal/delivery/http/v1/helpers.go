package v1

import (
	"go-swipe-backend/internal/delivery/http/middleware"
	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"
	"go-swipe-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func currentUserID(c *gin.Context) string {
	return c.GetString(string(domain.KeyUserID))
}

// matchIDParam reads :matchId; false means an error has already been recorded.
func matchIDParam(c *gin.Context) (string, bool) {
	id := c.Param("matchId")
	if _, err := uuid.Parse(id); err != nil {
		_ = c.Error(apperror.Validation("matchId must be a valid id"))
		return "", false
	}
	return id, true
}

func bindError(c *gin.Context, message string, err error) {
	_ = c.Error(apperror.Validation(message)).
		SetMeta(middleware.ValidationDetails(validation.FormatValidationErrors(err)))
}
