// Package session keeps the per-tab order state (cart and checkout wizard) in memory.
// Nothing here is persisted: a session ends when it goes idle or the process stops.
package session

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/brewandbake/internal/calculator"
	"github.com/mmynk/brewandbake/internal/catalog"
	"github.com/mmynk/brewandbake/internal/checkout"
	"github.com/mmynk/brewandbake/internal/metrics"
)

var (
	ErrSessionNotFound = errors.New("session not found")
	ErrUnknownItem     = errors.New("unknown menu item")
)

// DefaultTTL is how long an idle session is kept.
const DefaultTTL = 2 * time.Hour

// SeedLine asks for a catalog item to be in the cart when the session starts.
type SeedLine struct {
	ItemID   int
	Quantity int
}

// DefaultSeed is the cart shown to a visitor who opens the order page directly.
func DefaultSeed() []SeedLine {
	return []SeedLine{
		{ItemID: 2, Quantity: 2}, // Cappuccino
		{ItemID: 7, Quantity: 1}, // Almond Croissant
		{ItemID: 8, Quantity: 1}, // Cinnamon Roll
	}
}

// Session is the mutable state of one page session. It is only reachable
// through Store.Update, which holds the store lock.
type Session struct {
	ID        string
	Cart      *calculator.Cart
	Wizard    *checkout.Wizard
	CreatedAt time.Time
	LastSeen  time.Time
}

// Snapshot is an immutable copy of a session with its totals derived.
type Snapshot struct {
	ID              string
	Lines           []calculator.Line
	ItemCount       int
	Totals          calculator.Totals
	Step            checkout.Step
	DeliveryMethod  calculator.DeliveryMethod
	DeliveryAddress string
	PaymentMethod   checkout.PaymentMethod
	CreatedAt       time.Time
}

func (s *Session) snapshot() Snapshot {
	lines := s.Cart.Lines()
	return Snapshot{
		ID:              s.ID,
		Lines:           lines,
		ItemCount:       s.Cart.ItemCount(),
		Totals:          calculator.ComputeTotals(lines, s.Wizard.DeliveryMethod()),
		Step:            s.Wizard.Step(),
		DeliveryMethod:  s.Wizard.DeliveryMethod(),
		DeliveryAddress: s.Wizard.DeliveryAddress(),
		PaymentMethod:   s.Wizard.PaymentMethod(),
		CreatedAt:       s.CreatedAt,
	}
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now, for tests.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithMetrics records session starts and expiries.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// Store holds sessions in memory.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session
	ttl      time.Duration
	now      func() time.Time
	metrics  *metrics.Metrics
}

// NewStore creates an empty store. A non-positive ttl means DefaultTTL.
func NewStore(ttl time.Duration, opts ...Option) *Store {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	s := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// TTL returns the idle timeout.
func (s *Store) TTL() time.Duration {
	return s.ttl
}

// Create starts a session whose cart holds seed. Prices and names are copied
// from the catalog. An unknown item ID fails the whole call.
func (s *Store) Create(seed []SeedLine) (Snapshot, error) {
	lines := make([]calculator.Line, 0, len(seed))
	for _, sl := range seed {
		item, ok := catalog.Lookup(sl.ItemID)
		if !ok {
			return Snapshot{}, fmt.Errorf("%w: %d", ErrUnknownItem, sl.ItemID)
		}
		lines = append(lines, calculator.Line{
			ItemID:    item.ID,
			Name:      item.Name,
			UnitPrice: item.Price,
			Quantity:  sl.Quantity,
		})
	}

	now := s.now()
	sess := &Session{
		ID:        uuid.New().String(),
		Cart:      calculator.NewCart(lines...),
		Wizard:    checkout.New(),
		CreatedAt: now,
		LastSeen:  now,
	}

	s.mu.Lock()
	s.sessions[sess.ID] = sess
	snap := sess.snapshot()
	s.mu.Unlock()

	s.metrics.RecordSessionStarted()
	return snap, nil
}

// lookup returns a live session, dropping it if it has expired. Callers hold s.mu.
func (s *Store) lookup(id string, now time.Time) (*Session, bool) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, false
	}
	if now.Sub(sess.LastSeen) > s.ttl {
		delete(s.sessions, id)
		s.metrics.RecordSessionsExpired(1)
		return nil, false
	}
	return sess, true
}

// Get returns a snapshot of the session and refreshes its idle timer.
func (s *Store) Get(id string) (Snapshot, error) {
	return s.Update(id, func(*Session) error { return nil })
}

// Update runs fn against the session under the store lock and returns the
// resulting snapshot. If fn fails its error is returned as is.
func (s *Store) Update(id string, fn func(*Session) error) (Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sess, ok := s.lookup(id, now)
	if !ok {
		return Snapshot{}, fmt.Errorf("%w: %s", ErrSessionNotFound, id)
	}
	sess.LastSeen = now

	if err := fn(sess); err != nil {
		return Snapshot{}, err
	}
	return sess.snapshot(), nil
}

// DeleteExpired removes every session idle for longer than the TTL and
// returns how many were removed.
func (s *Store) DeleteExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.LastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}
	s.metrics.RecordSessionsExpired(removed)
	return removed
}

// Len returns the number of sessions held, expired or not.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.sessions)
}
