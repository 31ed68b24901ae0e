package service

import (
	"fmt"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/ReadySetJoe/branch-out/internal/discovery"
	"github.com/ReadySetJoe/branch-out/internal/domain"
	"github.com/ReadySetJoe/branch-out/internal/query"
)

// Session lifecycle states.
const (
	StatusScanning = "scanning"
	StatusComplete = "complete"
	StatusPartial  = "partial"
	StatusFailed   = "failed"
)

// session holds one discovery run's accumulated state plus the caller's
// current filter/sort/page selection. Nothing survives a process restart.
type session struct {
	mu sync.Mutex

	id         string
	generation uint64

	artists  []domain.Artist
	result   *discovery.Result
	progress *discovery.Progress

	status string
	reason string

	lastCriteria query.Criteria
	lastSort     query.SortKey
	page         int
}

func (s *session) setProgress(p discovery.Progress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = &p
}

func (s *session) setArtists(artists []domain.Artist) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.artists = artists
}

func (s *session) finish(result *discovery.Result, status, reason string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.result = result
	s.status = status
	s.reason = reason
	s.progress = nil
}

// sessionStore is a bounded in-memory session index. The LRU bound keeps
// abandoned sessions from accumulating.
type sessionStore struct {
	cache *lru.Cache[string, *session]
}

func newSessionStore(limit int) (*sessionStore, error) {
	cache, err := lru.New[string, *session](limit)
	if err != nil {
		return nil, fmt.Errorf("failed to create session store: %w", err)
	}
	return &sessionStore{cache: cache}, nil
}

func (s *sessionStore) add(sess *session) {
	s.cache.Add(sess.id, sess)
}

func (s *sessionStore) get(id string) (*session, bool) {
	return s.cache.Get(id)
}
