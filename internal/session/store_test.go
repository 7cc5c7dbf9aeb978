package session

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/brewandbake/internal/calculator"
	"github.com/mmynk/brewandbake/internal/checkout"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func TestStore_CreateDefaultSeed(t *testing.T) {
	store := NewStore(time.Hour)

	snap, err := store.Create(DefaultSeed())
	require.NoError(t, err)

	assert.NotEmpty(t, snap.ID)
	require.Len(t, snap.Lines, 3)
	assert.Equal(t, "Cappuccino", snap.Lines[0].Name)
	assert.Equal(t, 2, snap.Lines[0].Quantity)
	assert.Equal(t, 4, snap.ItemCount)
	assert.Equal(t, "19.00", calculator.FormatMoney(snap.Totals.Subtotal))
	assert.Equal(t, checkout.StepCart, snap.Step)
	assert.Equal(t, calculator.Pickup, snap.DeliveryMethod)
	assert.Equal(t, 1, store.Len())
}

func TestStore_CreateRejectsUnknownItem(t *testing.T) {
	store := NewStore(time.Hour)

	_, err := store.Create([]SeedLine{{ItemID: 2, Quantity: 1}, {ItemID: 404, Quantity: 1}})
	assert.ErrorIs(t, err, ErrUnknownItem)
	assert.Equal(t, 0, store.Len())
}

func TestStore_CreateEmpty(t *testing.T) {
	store := NewStore(time.Hour)

	snap, err := store.Create(nil)
	require.NoError(t, err)
	assert.Empty(t, snap.Lines)
	assert.True(t, snap.Totals.Total.IsZero())
}

func TestStore_UpdateMutatesCart(t *testing.T) {
	store := NewStore(time.Hour)
	created, err := store.Create([]SeedLine{{ItemID: 2, Quantity: 2}, {ItemID: 7, Quantity: 1}})
	require.NoError(t, err)

	snap, err := store.Update(created.ID, func(s *Session) error {
		s.Cart.Decrease(7)
		s.Wizard.SetDeliveryMethod(calculator.Delivery, "1 Roast Road")
		return nil
	})
	require.NoError(t, err)

	require.Len(t, snap.Lines, 1)
	assert.Equal(t, 2, snap.Lines[0].ItemID)
	assert.Equal(t, 2, snap.ItemCount)
	assert.Equal(t, "9.72", calculator.FormatMoney(snap.Totals.Subtotal.Add(snap.Totals.Tax)))
	assert.Equal(t, "13.71", calculator.FormatMoney(snap.Totals.Total))
	assert.Equal(t, "1 Roast Road", snap.DeliveryAddress)

	// The creation snapshot is unaffected.
	assert.Len(t, created.Lines, 2)
}

func TestStore_UpdatePropagatesError(t *testing.T) {
	store := NewStore(time.Hour)
	created, err := store.Create(nil)
	require.NoError(t, err)

	_, err = store.Update(created.ID, func(s *Session) error {
		return s.Wizard.GoTo(checkout.StepPayment)
	})
	assert.ErrorIs(t, err, checkout.ErrForwardJump)

	snap, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, checkout.StepCart, snap.Step)
}

func TestStore_UnknownSession(t *testing.T) {
	store := NewStore(time.Hour)
	_, err := store.Get("missing")
	assert.True(t, errors.Is(err, ErrSessionNotFound))
}

func TestStore_Expiry(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(30*time.Minute, WithClock(clock.Now))

	idle, err := store.Create(nil)
	require.NoError(t, err)
	active, err := store.Create(nil)
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	_, err = store.Get(active.ID)
	require.NoError(t, err)

	clock.Advance(20 * time.Minute)
	_, err = store.Get(idle.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)

	_, err = store.Get(active.ID)
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}

func TestStore_DeleteExpired(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(10*time.Minute, WithClock(clock.Now))

	for i := 0; i < 3; i++ {
		_, err := store.Create(nil)
		require.NoError(t, err)
	}
	clock.Advance(5 * time.Minute)
	fresh, err := store.Create(nil)
	require.NoError(t, err)

	clock.Advance(6 * time.Minute)
	assert.Equal(t, 3, store.DeleteExpired())
	assert.Equal(t, 1, store.Len())

	_, err = store.Get(fresh.ID)
	assert.NoError(t, err)
}

func TestStore_ConcurrentUpdates(t *testing.T) {
	store := NewStore(time.Hour)
	created, err := store.Create([]SeedLine{{ItemID: 1, Quantity: 1}})
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.Update(created.ID, func(s *Session) error {
				s.Cart.Increase(1)
				return nil
			})
		}()
	}
	wg.Wait()

	snap, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Equal(t, 51, snap.Lines[0].Quantity)
}

func TestJanitor_RunStopsOnCancel(t *testing.T) {
	clock := newFakeClock()
	store := NewStore(time.Minute, WithClock(clock.Now))
	_, err := store.Create(nil)
	require.NoError(t, err)
	clock.Advance(2 * time.Minute)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		NewJanitor(store, WithInterval(time.Millisecond)).Run(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return store.Len() == 0 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop after cancel")
	}
}
