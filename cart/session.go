package cart

import (
	"context"
	"log"
	"sync"
	"time"
)

// Storage is the durable key-value collaborator carts are snapshotted to.
// Get returns "" (no error) when no snapshot exists for the key.
type Storage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
}

// Session is the single serialized entry point for one cart. Every transition
// runs under the mutex, so two concurrent requests on the same storefront
// session can never interleave reads and writes of the same cart.
type Session struct {
	mu    sync.Mutex
	key   string
	store Storage
	state State
}

// AddItem merges qty of the product into the cart. Quantity must be >= 1.
func (s *Session) AddItem(ctx context.Context, item Item, qty int) (State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next, err := addItem(s.state, item, qty)
	if err != nil {
		return s.snapshot(), err
	}
	s.state = next
	s.persist(ctx)
	return s.snapshot(), nil
}

// RemoveItem drops the line for productID. Unknown ids are a no-op.
func (s *Session) RemoveItem(ctx context.Context, productID uint) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = removeItem(s.state, productID)
	s.persist(ctx)
	return s.snapshot()
}

// UpdateQuantity sets the line's quantity; qty <= 0 removes the line.
func (s *Session) UpdateQuantity(ctx context.Context, productID uint, qty int) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = updateQuantity(s.state, productID, qty)
	s.persist(ctx)
	return s.snapshot()
}

// Clear resets the cart to empty. The checkout flow calls this after a
// successful order; the cart never clears itself.
func (s *Session) Clear(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = emptyState()
	s.persist(ctx)
	return s.snapshot()
}

// State returns a copy of the current cart state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

func (s *Session) snapshot() State {
	items := make([]Item, len(s.state.Items))
	copy(items, s.state.Items)
	return State{Items: items, Total: s.state.Total}
}

// persist writes the snapshot best-effort. Storage failures are logged and
// swallowed; a cart operation never fails because the store is down.
func (s *Session) persist(ctx context.Context) {
	snapshot, err := encodeState(s.state)
	if err != nil {
		log.Printf("[cart] failed to encode snapshot for %s: %v", s.key, err)
		return
	}
	if err := s.store.Set(ctx, s.key, snapshot); err != nil {
		log.Printf("[cart] failed to persist snapshot for %s: %v", s.key, err)
	}
}

const (
	// handleIdleTTL bounds how long an untouched in-memory handle survives.
	// Idle handles are dropped and rehydrated from storage on the next
	// access, so memory never outlives the persisted snapshot by more than
	// this window.
	handleIdleTTL = 30 * time.Minute

	// sweepInterval spaces out idle sweeps so hot paths only occasionally
	// pay for the map scan.
	sweepInterval = time.Minute
)

type managedSession struct {
	session  *Session
	lastUsed time.Time
}

// Manager hands out one Session handle per cart key so every caller funnels
// through the same mutex. Handles idle past handleIdleTTL are reclaimed.
type Manager struct {
	mu        sync.Mutex
	store     Storage
	sessions  map[string]*managedSession
	idleTTL   time.Duration
	lastSweep time.Time
}

// NewManager creates a manager over the given storage collaborator.
func NewManager(store Storage) *Manager {
	return &Manager{
		store:    store,
		sessions: make(map[string]*managedSession),
		idleTTL:  handleIdleTTL,
	}
}

// Session returns the handle for key, rehydrating it from storage on first
// access. A missing or unreadable snapshot yields an empty cart.
func (m *Manager) Session(ctx context.Context, key string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	m.sweepLocked(now)

	if e, ok := m.sessions[key]; ok {
		e.lastUsed = now
		return e.session
	}

	snapshot, err := m.store.Get(ctx, key)
	if err != nil {
		log.Printf("[cart] failed to load snapshot for %s: %v", key, err)
		snapshot = ""
	}

	s := &Session{
		key:   key,
		store: m.store,
		state: decodeState(snapshot),
	}
	m.sessions[key] = &managedSession{session: s, lastUsed: now}
	return s
}

// sweepLocked drops handles that have gone unused for longer than idleTTL.
// Caller must hold m.mu.
func (m *Manager) sweepLocked(now time.Time) {
	if now.Sub(m.lastSweep) < sweepInterval {
		return
	}
	m.lastSweep = now
	for key, e := range m.sessions {
		if now.Sub(e.lastUsed) > m.idleTTL {
			delete(m.sessions, key)
		}
	}
}

// Evict drops the in-memory handle for key. The persisted snapshot stays in
// storage; the next Session call rehydrates from it.
func (m *Manager) Evict(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, key)
}
