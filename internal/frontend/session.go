package frontend

import (
	"sync"

	"github.com/google/uuid"
)

const maxSessions = 1024

type session struct {
	page *Page
	seen uint64
}

// Sessions maps a browser cookie to its mounted page. When full, the session
// least recently started or read is evicted.
type Sessions struct {
	api   MovieAPI
	limit int

	mu    sync.Mutex
	clock uint64
	pages map[string]*session
}

func NewSessions(api MovieAPI) *Sessions {
	return &Sessions{api: api, limit: maxSessions, pages: make(map[string]*session)}
}

// Start puts a fresh, unmounted page under id, minting an id when empty.
func (s *Sessions) Start(id string) (string, *Page) {
	if _, err := uuid.Parse(id); err != nil {
		id = uuid.NewString()
	}
	page := NewPage(s.api)

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.pages[id]; !exists && len(s.pages) >= s.limit {
		s.evictOldest()
	}
	s.clock++
	s.pages[id] = &session{page: page, seen: s.clock}
	return id, page
}

func (s *Sessions) Get(id string) (*Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	sess, ok := s.pages[id]
	if !ok {
		return nil, false
	}
	s.clock++
	sess.seen = s.clock
	return sess.page, true
}

func (s *Sessions) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.pages)
}

// evictOldest must be called with mu held.
func (s *Sessions) evictOldest() {
	var (
		oldest string
		seen   uint64
	)
	for id, sess := range s.pages {
		if oldest == "" || sess.seen < seen {
			oldest, seen = id, sess.seen
		}
	}
	delete(s.pages, oldest)
}
