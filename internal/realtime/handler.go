package realtime

import (
	"net/http"
	"strings"

	"go-swipe-backend/internal/domain"
	"go-swipe-backend/pkg/apperror"
	"go-swipe-backend/pkg/auth"
	"go-swipe-backend/pkg/logger"
	"go-swipe-backend/pkg/security"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	verifier *auth.Verifier
	users    domain.UserUsecase
	matches  MatchAccess
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub, verifier *auth.Verifier, users domain.UserUsecase, matches MatchAccess, allowedOrigins []string) *Handler {
	allowed := make(map[string]struct{}, len(allowedOrigins))
	for _, o := range allowedOrigins {
		allowed[o] = struct{}{}
	}

	return &Handler{
		hub:      hub,
		verifier: verifier,
		users:    users,
		matches:  matches,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				if origin == "" {
					// non-browser clients
					return true
				}
				_, ok := allowed[strings.TrimRight(origin, "/")]
				return ok
			},
		},
	}
}

// Serve upgrades GET /v1/ws. Browsers cannot set headers on a websocket handshake, so
// the access token is also accepted as the token query parameter.
func (h *Handler) Serve(c *gin.Context) {
	token := strings.TrimSpace(c.Query("token"))
	if token == "" {
		token = strings.TrimSpace(strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer "))
	}

	claims, err := h.verifier.Verify(token)
	if err != nil {
		security.DefaultLogger().LogSocketRejected(c.Request.Context(), "", c.ClientIP(), "invalid_token")
		_ = c.Error(apperror.Unauthorized("Invalid or expired token"))
		c.Abort()
		return
	}

	user, err := h.users.GetCurrentUser(c.Request.Context(), claims.UserID)
	if err != nil {
		security.DefaultLogger().LogSocketRejected(c.Request.Context(), claims.UserID, c.ClientIP(), "unknown_user")
		_ = c.Error(err)
		c.Abort()
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// the upgrader already wrote the HTTP error
		logger.Log.Warn("WS upgrade error", "error", err)
		return
	}

	client := NewClient(h.hub, conn, user.ID, h.matches)
	h.hub.Register(client)
	go client.WritePump()
	go client.ReadPump()
}
