package usecase_test

import (
	"context"
	"sort"
	"sync"
	"time"

	"go-swipe-backend/internal/domain"
)

// memStore is an in-memory stand-in for postgres that enforces the same unique keys,
// so the usecases can be exercised under real goroutine races.
type memStore struct {
	mu       sync.Mutex
	users    map[string]domain.User
	offers   map[string]domain.JobOffer
	swipes   []domain.Swipe
	matches  []domain.Match
	messages []domain.Message

	// findBarrier holds the first n FindByTriangle misses until all have arrived,
	// forcing every racer past the read before any insert.
	findBarrier *barrier
}

func newMemStore() *memStore {
	return &memStore{
		users:  map[string]domain.User{},
		offers: map[string]domain.JobOffer{},
	}
}

func (s *memStore) addUser(id string, role domain.Role) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[id] = domain.User{ID: id, Email: id + "@example.com", Role: role, Active: true, CreatedAt: time.Now()}
}

func (s *memStore) addOffer(id, recruiterID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.offers[id] = domain.JobOffer{ID: id, RecruiterID: recruiterID, Title: "Offer " + id, Active: true, CreatedAt: time.Now()}
}

func (s *memStore) matchCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.matches)
}

type barrier struct {
	mu      sync.Mutex
	n       int
	arrived int
	release chan struct{}
}

func newBarrier(n int) *barrier {
	return &barrier{n: n, release: make(chan struct{})}
}

func (b *barrier) arrive() {
	b.mu.Lock()
	if b.arrived >= b.n {
		b.mu.Unlock()
		return
	}
	b.arrived++
	if b.arrived == b.n {
		close(b.release)
	}
	b.mu.Unlock()
	<-b.release
}

type memUsers struct{ *memStore }

func (s memUsers) GetByID(_ context.Context, id string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (s memUsers) ListUnswipedCandidates(_ context.Context, recruiterID string, limit int) ([]domain.CandidateCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.CandidateCard{}
	for _, u := range s.users {
		if u.Role != domain.RoleCandidate || !u.Active || s.swipedLocked(recruiterID, domain.CandidateTarget{UserID: u.ID}) {
			continue
		}
		out = append(out, domain.CandidateCard{User: u})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memStore) swipedLocked(swiperID string, target domain.SwipeTarget) bool {
	for _, sw := range s.swipes {
		if sw.SwiperID == swiperID && sw.Target == target {
			return true
		}
	}
	return false
}

type memOffers struct{ *memStore }

func (s memOffers) GetByID(_ context.Context, id string) (*domain.JobOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.offers[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &o, nil
}

func (s memOffers) ListIDsByRecruiter(_ context.Context, recruiterID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := []string{}
	for _, o := range s.offers {
		if o.RecruiterID == recruiterID {
			ids = append(ids, o.ID)
		}
	}
	return ids, nil
}

func (s memOffers) ListUnswipedActive(_ context.Context, candidateID string, limit int) ([]domain.JobOfferCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.JobOfferCard{}
	for _, o := range s.offers {
		if o.Active && !s.swipedLocked(candidateID, domain.OfferTarget{JobOfferID: o.ID}) {
			out = append(out, domain.JobOfferCard{JobOffer: o})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

type memSwipes struct{ *memStore }

func (s memSwipes) FindByTarget(_ context.Context, swiperID string, target domain.SwipeTarget) (*domain.Swipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, sw := range s.swipes {
		if sw.SwiperID == swiperID && sw.Target == target {
			found := sw
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s memSwipes) Create(_ context.Context, swipe *domain.Swipe) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.swipedLocked(swipe.SwiperID, swipe.Target) {
		return domain.ErrConflict
	}
	s.swipes = append(s.swipes, *swipe)
	return nil
}

func (s memSwipes) FindLike(ctx context.Context, swiperID string, target domain.SwipeTarget) (*domain.Swipe, error) {
	sw, err := s.FindByTarget(ctx, swiperID, target)
	if err != nil {
		return nil, err
	}
	if !sw.Liked {
		return nil, domain.ErrNotFound
	}
	return sw, nil
}

func (s memSwipes) FindEarliestOfferLike(_ context.Context, candidateID string, offerIDs []string) (*domain.Swipe, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wanted := map[string]bool{}
	for _, id := range offerIDs {
		wanted[id] = true
	}
	var best *domain.Swipe
	for i := range s.swipes {
		sw := s.swipes[i]
		t, ok := sw.Target.(domain.OfferTarget)
		if !ok || sw.SwiperID != candidateID || !sw.Liked || !wanted[t.JobOfferID] {
			continue
		}
		if best == nil || sw.CreatedAt.Before(best.CreatedAt) ||
			(sw.CreatedAt.Equal(best.CreatedAt) && sw.ID < best.ID) {
			best = &sw
		}
	}
	if best == nil {
		return nil, domain.ErrNotFound
	}
	return best, nil
}

type memMatches struct{ *memStore }

func samePair(m domain.Match, a, b, offerID string) bool {
	return m.JobOfferID == offerID &&
		((m.User1ID == a && m.User2ID == b) || (m.User1ID == b && m.User2ID == a))
}

func (s memMatches) GetByID(_ context.Context, id string) (*domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, m := range s.matches {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s memMatches) FindByTriangle(_ context.Context, candidateID, recruiterID, jobOfferID string) (*domain.Match, error) {
	s.mu.Lock()
	for _, m := range s.matches {
		if samePair(m, candidateID, recruiterID, jobOfferID) {
			found := m
			s.mu.Unlock()
			return &found, nil
		}
	}
	b := s.findBarrier
	s.mu.Unlock()

	if b != nil {
		b.arrive()
	}
	return nil, domain.ErrNotFound
}

func (s memMatches) Create(_ context.Context, match *domain.Match) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.offers[match.JobOfferID]; !ok {
		return domain.ErrReferenceMissing
	}
	for _, m := range s.matches {
		if samePair(m, match.User1ID, match.User2ID, match.JobOfferID) {
			return domain.ErrConflict
		}
	}
	s.matches = append(s.matches, *match)
	return nil
}

func (s memMatches) Deactivate(_ context.Context, id string) (*domain.Match, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.matches {
		if s.matches[i].ID == id {
			s.matches[i].Active = false
			s.matches[i].UpdatedAt = time.Now()
			found := s.matches[i]
			return &found, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s memMatches) ListActiveSummaries(_ context.Context, userID string) ([]domain.MatchSummary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.MatchSummary{}
	for _, m := range s.matches {
		if !m.Active || !m.HasParticipant(userID) {
			continue
		}
		other := m.Counterpart(userID)
		sum := domain.MatchSummary{
			Match:         m,
			JobOfferTitle: s.offers[m.JobOfferID].Title,
			Counterpart:   domain.MatchParty{UserID: other, Role: s.users[other].Role},
		}
		for i := range s.messages {
			msg := s.messages[i]
			if msg.MatchID != m.ID {
				continue
			}
			if msg.SenderID != userID && !msg.Read {
				sum.UnreadCount++
			}
			sum.LastMessage = &msg
		}
		out = append(out, sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type memMessages struct{ *memStore }

func (s memMessages) Create(_ context.Context, msg *domain.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, *msg)
	return nil
}

func (s memMessages) ListByMatch(_ context.Context, matchID string) ([]domain.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []domain.Message{}
	for _, m := range s.messages {
		if m.MatchID == matchID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (s memMessages) MarkReadFor(_ context.Context, matchID, readerID string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var n int64
	for i := range s.messages {
		m := &s.messages[i]
		if m.MatchID == matchID && m.SenderID != readerID && !m.Read {
			m.Read = true
			n++
		}
	}
	return n, nil
}
