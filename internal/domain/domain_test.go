package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"go-swipe-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwipeJSONCarriesExactlyOneTarget(t *testing.T) {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	offerSwipe := domain.Swipe{ID: "s1", SwiperID: "c1", Target: domain.OfferTarget{JobOfferID: "o1"}, Liked: true, CreatedAt: created}
	raw, err := json.Marshal(offerSwipe)
	require.NoError(t, err)

	var got map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Equal(t, "o1", got["jobOfferId"])
	assert.Nil(t, got["targetUserId"])
	assert.Equal(t, "LIKE", got["swipeType"])

	candidateSwipe := domain.Swipe{ID: "s2", SwiperID: "r1", Target: domain.CandidateTarget{UserID: "c1"}}
	raw, err = json.Marshal(candidateSwipe)
	require.NoError(t, err)

	got = map[string]interface{}{}
	require.NoError(t, json.Unmarshal(raw, &got))
	assert.Nil(t, got["jobOfferId"])
	assert.Equal(t, "c1", got["targetUserId"])
	assert.Equal(t, "PASS", got["swipeType"])
}

func TestRoleForTarget(t *testing.T) {
	assert.Equal(t, domain.RoleCandidate, domain.RoleForTarget(domain.OfferTarget{JobOfferID: "o"}))
	assert.Equal(t, domain.RoleRecruiter, domain.RoleForTarget(domain.CandidateTarget{UserID: "c"}))
}

func TestMatchParticipants(t *testing.T) {
	m := &domain.Match{User1ID: "cand", User2ID: "rec"}

	assert.True(t, m.HasParticipant("cand"))
	assert.True(t, m.HasParticipant("rec"))
	assert.False(t, m.HasParticipant("intruder"))
	assert.False(t, m.HasParticipant(""))
	assert.Equal(t, "rec", m.Counterpart("cand"))
	assert.Equal(t, "cand", m.Counterpart("rec"))
}

func TestRooms(t *testing.T) {
	assert.Equal(t, "match:42", domain.MatchRoom("42"))
	assert.Equal(t, "user:7", domain.UserRoom("7"))
}
