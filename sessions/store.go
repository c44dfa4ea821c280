package sessions

import (
	"sync"

	"github.com/Rovan44/shopfront-api/models"
	"github.com/google/uuid"
)

// Session is the explicit owner of a logged-in user's shopping state. It is
// created on login and destroyed on logout; the cart never outlives it.
type Session struct {
	ID       string
	Username string
	Role     string
	Cart     *models.Cart

	mu          sync.Mutex
	checkingOut bool
}

// BeginCheckout marks the session's single checkout slot as busy. It returns
// false while another attempt is in flight.
func (s *Session) BeginCheckout() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.checkingOut {
		return false
	}
	s.checkingOut = true
	return true
}

func (s *Session) EndCheckout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.checkingOut = false
}

type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[string]*Session)}
}

func (st *Store) Create(username, role string) *Session {
	session := &Session{
		ID:       uuid.NewString(),
		Username: username,
		Role:     role,
		Cart:     models.NewCart(),
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.mu.Unlock()
	return session
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	session, ok := st.sessions[id]
	return session, ok
}

// Remove tears the session down; the cart is cleared so no lines survive a
// logout.
func (st *Store) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if session, ok := st.sessions[id]; ok {
		session.Cart.Clear()
		delete(st.sessions, id)
	}
}

// Default is the process-wide store used by the HTTP layer.
var Default = NewStore()
