package signup

import (
	"sync"
	"time"

	"github.com/snapgram/web/internal/platform/id"
)

const (
	// DefaultFormTTL bounds how long an idle form session is kept.
	DefaultFormTTL = 30 * time.Minute
	// DefaultFormLimit bounds how many form sessions are kept at once.
	DefaultFormLimit = 10000
)

type formEntry struct {
	controller *Controller
	expiresAt  time.Time
}

// formStore keeps one controller per browser form session in memory.
type formStore struct {
	mu    sync.Mutex
	forms map[string]formEntry
	ttl   time.Duration
	now   func() time.Time
	// limit caps live sessions; creating one past it evicts the session
	// closest to expiry.
	limit int
}

func newFormStore(ttl time.Duration, now func() time.Time) *formStore {
	if ttl <= 0 {
		ttl = DefaultFormTTL
	}
	if now == nil {
		now = time.Now
	}
	return &formStore{
		forms: make(map[string]formEntry),
		ttl:   ttl,
		now:   now,
		limit: DefaultFormLimit,
	}
}

// create starts a new form session.
func (s *formStore) create() (string, *Controller, error) {
	formID, err := id.NewID()
	if err != nil {
		return "", nil, err
	}
	controller := NewController()
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	for len(s.forms) >= s.limit {
		if !s.evictOldestLocked() {
			break
		}
	}
	s.forms[formID] = formEntry{controller: controller, expiresAt: now.Add(s.ttl)}
	return formID, controller, nil
}

// get returns the live controller for formID and extends its expiry.
func (s *formStore) get(formID string) (*Controller, bool) {
	if formID == "" {
		return nil, false
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.now()
	s.sweepLocked(now)
	entry, ok := s.forms[formID]
	if !ok {
		return nil, false
	}
	entry.expiresAt = now.Add(s.ttl)
	s.forms[formID] = entry
	return entry.controller, true
}

func (s *formStore) delete(formID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.forms, formID)
}

func (s *formStore) len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.forms)
}

func (s *formStore) sweepLocked(now time.Time) {
	for formID, entry := range s.forms {
		if !now.Before(entry.expiresAt) {
			delete(s.forms, formID)
		}
	}
}

// evictOldestLocked drops the session that would expire first.
func (s *formStore) evictOldestLocked() bool {
	var (
		oldestID string
		oldestAt time.Time
	)
	for formID, entry := range s.forms {
		if oldestID == "" || entry.expiresAt.Before(oldestAt) {
			oldestID, oldestAt = formID, entry.expiresAt
		}
	}
	if oldestID == "" {
		return false
	}
	delete(s.forms, oldestID)
	return true
}
