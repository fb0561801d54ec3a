package middleware

import (
	"errors"
	"net/http"

	"go-swipe-backend/internal/delivery/http/response"
	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"
	"go-swipe-backend/pkg/logger"
	"go-swipe-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// ValidationDetails can be attached to an error with c.Error(err).SetMeta to list
// per-field messages in the envelope.
type ValidationDetails []string

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		err := last.Err
		requestID := c.GetString("RequestID")

		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		switch {
		case appErr.Code >= http.StatusInternalServerError:
			// SECURITY: Never expose internal error details to clients.
			logger.Log.Error("request failed",
				"request_id", requestID,
				"method", c.Request.Method,
				"path", c.FullPath(),
				"error", err,
			)
		case appErr.Reason == apperror.ReasonForbidden:
			security.DefaultLogger().LogForbiddenAccess(
				c.Request.Context(),
				c.GetString(string(domain.KeyUserID)),
				c.ClientIP(),
				requestID,
				c.FullPath(),
				appErr.Message,
			)
		}

		body := response.ErrorBody{Code: appErr.Reason}
		if details, ok := last.Meta.(ValidationDetails); ok {
			body.Details = details
		}
		response.Error(c, appErr.Code, appErr.Message, body)
	}
}
