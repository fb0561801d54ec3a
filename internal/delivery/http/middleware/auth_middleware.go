package middleware

import (
	"strings"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"
	"go-swipe-backend/pkg/auth"
	"go-swipe-backend/pkg/security"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware verifies the bearer token issued by the auth service and loads the
// account it names. The role always comes from the database, never from the token.
func AuthMiddleware(verifier *auth.Verifier, userUC domain.UserUsecase) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

		if tokenString == "" {
			_ = c.Error(apperror.Unauthorized("Authorization header required"))
			c.Abort()
			return
		}

		claims, err := verifier.Verify(tokenString)
		if err != nil {
			security.DefaultLogger().LogInvalidToken(
				c.Request.Context(),
				c.ClientIP(),
				c.GetHeader("User-Agent"),
				c.GetString("RequestID"),
				err.Error(),
			)
			_ = c.Error(apperror.Unauthorized("Invalid token"))
			c.Abort()
			return
		}

		user, err := userUC.GetCurrentUser(c.Request.Context(), claims.UserID)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(string(domain.KeyUserID), user.ID)
		c.Set(string(domain.KeyUserEmail), user.Email)
		c.Set(string(domain.KeyUserRole), string(user.Role))

		c.Next()
	}
}
