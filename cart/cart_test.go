package cart

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scooter() Item {
	return Item{ProductID: 1, Slug: "scooter-vms-110", NameFr: "Scooter VMS 110", NameAr: "سكوتر", Price: 4290}
}

func moto() Item {
	return Item{ProductID: 2, Slug: "moto-sym-125", NameFr: "Moto SYM 125", NameAr: "دراجة", Price: 6890}
}

func assertTotalInvariant(t *testing.T, s State) {
	t.Helper()
	var want float64
	for _, it := range s.Items {
		require.GreaterOrEqual(t, it.Quantity, 1, "no line may carry quantity < 1")
		want += it.Price * float64(it.Quantity)
	}
	assert.InDelta(t, want, s.Total, 1e-9)
}

func TestAddItemNewLine(t *testing.T) {
	s, err := addItem(emptyState(), scooter(), 2)
	require.NoError(t, err)

	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assertTotalInvariant(t, s)
}

func TestAddItemMergesInsteadOfDuplicating(t *testing.T) {
	s, err := addItem(emptyState(), scooter(), 1)
	require.NoError(t, err)
	s, err = addItem(s, scooter(), 3)
	require.NoError(t, err)

	require.Len(t, s.Items, 1)
	assert.Equal(t, 4, s.Items[0].Quantity)
	assertTotalInvariant(t, s)
}

func TestAddItemKeepsInsertionOrder(t *testing.T) {
	s, _ := addItem(emptyState(), scooter(), 1)
	s, _ = addItem(s, moto(), 1)
	s, _ = addItem(s, scooter(), 1)

	require.Len(t, s.Items, 2)
	assert.Equal(t, uint(1), s.Items[0].ProductID)
	assert.Equal(t, uint(2), s.Items[1].ProductID)
}

func TestAddItemRejectsNonPositiveQuantity(t *testing.T) {
	for _, qty := range []int{0, -1, -100} {
		s, err := addItem(emptyState(), scooter(), qty)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		assert.True(t, s.IsEmpty())
	}
}

func TestAddItemDoesNotMutateInput(t *testing.T) {
	before, _ := addItem(emptyState(), scooter(), 1)
	_, err := addItem(before, scooter(), 5)
	require.NoError(t, err)

	assert.Equal(t, 1, before.Items[0].Quantity)
}

func TestRemoveItem(t *testing.T) {
	s, _ := addItem(emptyState(), scooter(), 1)
	s, _ = addItem(s, moto(), 2)

	s = removeItem(s, 1)
	require.Len(t, s.Items, 1)
	assert.Equal(t, uint(2), s.Items[0].ProductID)
	assertTotalInvariant(t, s)

	// Unknown id is a no-op
	s = removeItem(s, 99)
	assert.Len(t, s.Items, 1)
}

func TestUpdateQuantitySetsAbsoluteValue(t *testing.T) {
	s, _ := addItem(emptyState(), scooter(), 5)
	s = updateQuantity(s, 1, 2)

	require.Len(t, s.Items, 1)
	assert.Equal(t, 2, s.Items[0].Quantity)
	assertTotalInvariant(t, s)
}

func TestUpdateQuantityZeroOrNegativeRemovesLine(t *testing.T) {
	for _, qty := range []int{0, -3} {
		s, _ := addItem(emptyState(), scooter(), 2)
		s = updateQuantity(s, 1, qty)
		assert.True(t, s.IsEmpty())
		assert.Zero(t, s.Total)
	}
}

func TestUpdateQuantityUnknownProductIsNoOp(t *testing.T) {
	s, _ := addItem(emptyState(), scooter(), 2)
	got := updateQuantity(s, 99, 7)
	assert.Equal(t, s.Items, got.Items)
	assertTotalInvariant(t, got)
}

func TestTotalInvariantSurvivesRandomTransitionSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	items := []Item{scooter(), moto(), {ProductID: 3, Slug: "casque", NameFr: "Casque", NameAr: "خوذة", Price: 120.5}}

	s := emptyState()
	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			s, _ = addItem(s, items[rng.Intn(len(items))], rng.Intn(5)-1)
		case 1:
			s = removeItem(s, uint(rng.Intn(5)))
		case 2:
			s = updateQuantity(s, uint(rng.Intn(5)), rng.Intn(7)-2)
		case 3:
			if rng.Intn(10) == 0 {
				s = emptyState()
			}
		}
		assertTotalInvariant(t, s)
		assert.False(t, math.IsNaN(s.Total))
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	s, _ := addItem(emptyState(), scooter(), 2)
	s, _ = addItem(s, moto(), 1)

	snapshot, err := encodeState(s)
	require.NoError(t, err)

	got := decodeState(snapshot)
	assert.Equal(t, s.Items, got.Items)
	assert.InDelta(t, s.Total, got.Total, 1e-9)
}

func TestDecodeStateDegradesToEmpty(t *testing.T) {
	for _, snapshot := range []string{"", "{not json", `[1,2,3]`} {
		got := decodeState(snapshot)
		assert.True(t, got.IsEmpty(), "snapshot %q should yield an empty cart", snapshot)
		assert.NotNil(t, got.Items)
	}
}

func TestDecodeStateRecomputesStaleTotal(t *testing.T) {
	got := decodeState(`{"items":[{"product_id":1,"price":100,"quantity":2}],"total":9999}`)
	assert.InDelta(t, 200, got.Total, 1e-9)
}

// fakeStorage is an in-memory Storage used to test sessions without Redis.
type fakeStorage struct {
	mu     sync.Mutex
	data   map[string]string
	getErr error
	setErr error
}

func newFakeStorage() *fakeStorage {
	return &fakeStorage{data: make(map[string]string)}
}

func (f *fakeStorage) Get(ctx context.Context, key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return "", f.getErr
	}
	return f.data[key], nil
}

func (f *fakeStorage) Set(ctx context.Context, key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.setErr != nil {
		return f.setErr
	}
	f.data[key] = value
	return nil
}

func TestSessionPersistsAfterEveryTransition(t *testing.T) {
	store := newFakeStorage()
	m := NewManager(store)
	ctx := context.Background()

	session := m.Session(ctx, "tok")
	_, err := session.AddItem(ctx, scooter(), 2)
	require.NoError(t, err)

	// A fresh manager rehydrates the same state from storage
	got := NewManager(store).Session(ctx, "tok").State()
	require.Len(t, got.Items, 1)
	assert.Equal(t, 2, got.Items[0].Quantity)
}

func TestManagerReturnsSameHandlePerKey(t *testing.T) {
	m := NewManager(newFakeStorage())
	ctx := context.Background()

	a := m.Session(ctx, "tok")
	b := m.Session(ctx, "tok")
	assert.Same(t, a, b)

	other := m.Session(ctx, "other")
	assert.NotSame(t, a, other)
}

func TestManagerEvictForcesRehydration(t *testing.T) {
	store := newFakeStorage()
	m := NewManager(store)
	ctx := context.Background()

	session := m.Session(ctx, "tok")
	_, err := session.AddItem(ctx, moto(), 1)
	require.NoError(t, err)

	m.Evict("tok")
	got := m.Session(ctx, "tok")
	assert.NotSame(t, session, got)
	require.Len(t, got.State().Items, 1)
}

// backdate marks a handle idle past the eviction window and arms the next
// sweep.
func backdate(m *Manager, key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key].lastUsed = time.Now().Add(-m.idleTTL - time.Minute)
	m.lastSweep = time.Time{}
}

func handleCount(m *Manager) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

func TestManagerReclaimsIdleHandles(t *testing.T) {
	store := newFakeStorage()
	m := NewManager(store)
	ctx := context.Background()

	idle := m.Session(ctx, "idle")
	_, err := idle.AddItem(ctx, scooter(), 1)
	require.NoError(t, err)

	backdate(m, "idle")
	m.Session(ctx, "active")
	assert.Equal(t, 1, handleCount(m), "sweep should have dropped the idle handle")

	// The snapshot survived in storage: the next access rehydrates the cart
	// through a fresh handle
	got := m.Session(ctx, "idle")
	assert.NotSame(t, idle, got)
	require.Len(t, got.State().Items, 1)
}

func TestManagerSweepKeepsRecentlyUsedHandles(t *testing.T) {
	m := NewManager(newFakeStorage())
	ctx := context.Background()

	active := m.Session(ctx, "active")
	m.mu.Lock()
	m.lastSweep = time.Time{}
	m.mu.Unlock()

	m.Session(ctx, "other")
	assert.Same(t, active, m.Session(ctx, "active"))
}

func TestManagerDoesNotHoardHandlesForever(t *testing.T) {
	store := newFakeStorage()
	m := NewManager(store)
	ctx := context.Background()

	for i := 0; i < 1000; i++ {
		m.Session(ctx, fmt.Sprintf("tok-%d", i))
	}
	require.Equal(t, 1000, handleCount(m))

	// Everything goes idle; the next access sweeps the lot
	m.mu.Lock()
	stale := time.Now().Add(-m.idleTTL - time.Minute)
	for _, e := range m.sessions {
		e.lastUsed = stale
	}
	m.lastSweep = time.Time{}
	m.mu.Unlock()

	m.Session(ctx, "fresh")
	assert.Equal(t, 1, handleCount(m))
}

func TestIdleHandleDoesNotOutliveSnapshot(t *testing.T) {
	store := newFakeStorage()
	m := NewManager(store)
	ctx := context.Background()

	session := m.Session(ctx, "tok")
	_, err := session.AddItem(ctx, scooter(), 1)
	require.NoError(t, err)

	// The storage TTL fires while the handle sits idle in memory
	store.mu.Lock()
	delete(store.data, "tok")
	store.mu.Unlock()
	backdate(m, "tok")

	got := m.Session(ctx, "tok")
	assert.NotSame(t, session, got)
	assert.True(t, got.State().IsEmpty(), "expired snapshot must not resurrect from memory")
}

func TestSessionSurvivesStorageFailures(t *testing.T) {
	store := newFakeStorage()
	store.getErr = errors.New("redis down")
	store.setErr = errors.New("redis down")

	m := NewManager(store)
	ctx := context.Background()

	session := m.Session(ctx, "tok")
	state, err := session.AddItem(ctx, scooter(), 1)
	require.NoError(t, err)
	require.Len(t, state.Items, 1)

	state = session.Clear(ctx)
	assert.True(t, state.IsEmpty())
}

func TestSessionStateReturnsCopy(t *testing.T) {
	m := NewManager(newFakeStorage())
	ctx := context.Background()

	session := m.Session(ctx, "tok")
	_, err := session.AddItem(ctx, scooter(), 1)
	require.NoError(t, err)

	state := session.State()
	state.Items[0].Quantity = 99

	assert.Equal(t, 1, session.State().Items[0].Quantity)
}

func TestConcurrentTransitionsKeepInvariant(t *testing.T) {
	m := NewManager(newFakeStorage())
	ctx := context.Background()
	session := m.Session(ctx, "tok")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = session.AddItem(ctx, scooter(), 1)
		}()
	}
	wg.Wait()

	state := session.State()
	require.Len(t, state.Items, 1)
	assert.Equal(t, 50, state.Items[0].Quantity)
	assertTotalInvariant(t, state)
}
