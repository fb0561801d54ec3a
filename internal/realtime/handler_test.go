package realtime_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-swipe-backend/internal/delivery/http/middleware"
	"go-swipe-backend/internal/domain"
	"go-swipe-backend/internal/realtime"
	"go-swipe-backend/pkg/apperror"
	"go-swipe-backend/pkg/auth"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const secret = "test-secret"

type stubUsers struct{}

func (stubUsers) GetCurrentUser(_ context.Context, id string) (*domain.User, error) {
	switch id {
	case "cand-1":
		return &domain.User{ID: id, Role: domain.RoleCandidate, Active: true}, nil
	case "rec-1":
		return &domain.User{ID: id, Role: domain.RoleRecruiter, Active: true}, nil
	}
	return nil, apperror.Unauthorized("Account not found")
}

type stubMatches struct{}

func (stubMatches) GetMatch(_ context.Context, userID, matchID string) (*domain.Match, error) {
	m := &domain.Match{ID: "m-1", User1ID: "cand-1", User2ID: "rec-1", JobOfferID: "o-1", Active: true}
	if matchID != m.ID {
		return nil, apperror.NotFound("Match not found")
	}
	if !m.HasParticipant(userID) {
		return nil, apperror.Forbidden("You are not a participant of this match")
	}
	return m, nil
}

func sign(t *testing.T, userID string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, auth.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func setup(t *testing.T) (*httptest.Server, *realtime.Hub) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	hub := realtime.NewHub()
	h := realtime.NewHandler(hub, auth.NewVerifier(secret), stubUsers{}, stubMatches{}, []string{"http://localhost:5173"})

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.GET("/v1/ws", h.Serve)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv, hub
}

func dial(t *testing.T, srv *httptest.Server, userID string) *websocket.Conn {
	t.Helper()
	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws?token=" + sign(t, userID)
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func expect(t *testing.T, conn *websocket.Conn, event string) realtime.Frame {
	t.Helper()
	require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
	var frame realtime.Frame
	require.NoError(t, conn.ReadJSON(&frame))
	require.Equal(t, event, frame.Event, string(frame.Data))
	return frame
}

func TestSocketRejectsInvalidToken(t *testing.T) {
	srv, _ := setup(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws?token=garbage"
	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestSocketRejectsForeignOrigin(t *testing.T) {
	srv, _ := setup(t)

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws?token=" + sign(t, "cand-1")
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example"}})
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestTypingAndMessagesReachTheOtherParticipant(t *testing.T) {
	srv, hub := setup(t)
	cand := dial(t, srv, "cand-1")
	rec := dial(t, srv, "rec-1")

	require.NoError(t, cand.WriteJSON(map[string]any{"event": "join_match", "data": map[string]string{"matchId": "m-1"}}))
	expect(t, cand, realtime.EventJoinedMatch)
	require.NoError(t, rec.WriteJSON(map[string]any{"event": "join_match", "data": map[string]string{"matchId": "m-1"}}))
	expect(t, rec, realtime.EventJoinedMatch)

	require.NoError(t, cand.WriteJSON(map[string]any{"event": "typing", "data": map[string]string{"matchId": "m-1", "userName": "Carl"}}))
	frame := expect(t, rec, realtime.EventUserTyping)
	assert.JSONEq(t, `{"matchId":"m-1","userId":"cand-1","userName":"Carl"}`, string(frame.Data))

	require.NoError(t, cand.WriteJSON(map[string]any{"event": "stop_typing", "data": map[string]string{"matchId": "m-1"}}))
	expect(t, rec, realtime.EventUserStopTyping)

	realtime.NewBroadcaster(hub, nil).NewMessage(context.Background(), &domain.Message{ID: "msg-1", MatchID: "m-1", SenderID: "cand-1", Content: "Hello"})
	expect(t, rec, domain.EventNewMessage)
	expect(t, cand, domain.EventNewMessage)
}

func TestJoinRequiresParticipation(t *testing.T) {
	srv, _ := setup(t)
	rec := dial(t, srv, "rec-1")

	require.NoError(t, rec.WriteJSON(map[string]any{"event": "join_match", "data": map[string]string{"matchId": "m-404"}}))
	frame := expect(t, rec, realtime.EventError)
	assert.Contains(t, string(frame.Data), "Match not found")

	require.NoError(t, rec.WriteJSON(map[string]any{"event": "typing", "data": map[string]string{"matchId": "m-404"}}))
	frame = expect(t, rec, realtime.EventError)
	assert.Contains(t, string(frame.Data), "join the match first")
}
