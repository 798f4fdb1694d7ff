package session

import (
	"sync"
	"testing"
	"time"

	"mess-bill/internal/domain"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore(time.Hour, 10)
	a, err := store.Create()
	require.NoError(t, err)
	b, err := store.Create()
	require.NoError(t, err)
	require.NotEqual(t, a, b)

	added, err := store.AddExpense(a, "Rent", 2000)
	require.NoError(t, err)
	assert.True(t, added)

	added, err = store.AddExpense(b, "", 50)
	require.NoError(t, err)
	assert.False(t, added)

	ea, err := store.Expenses(a)
	require.NoError(t, err)
	eb, err := store.Expenses(b)
	require.NoError(t, err)

	assert.Equal(t, []domain.FixedExpenseEntry{{Name: "Rent", Amount: 2000}}, ea)
	assert.Empty(t, eb)
}

func TestStore_ClearAndDelete(t *testing.T) {
	store := NewStore(time.Hour, 10)
	id, err := store.Create()
	require.NoError(t, err)
	_, _ = store.AddExpense(id, "Gas", 900)

	require.NoError(t, store.ClearExpenses(id))
	entries, err := store.Expenses(id)
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.NoError(t, store.Delete(id))
	assert.Zero(t, store.Len())
	assert.ErrorIs(t, store.Delete(id), domain.ErrSessionNotFound)
}

func TestStore_UnknownSession(t *testing.T) {
	store := NewStore(time.Hour, 10)
	unknown := uuid.New()

	_, err := store.AddExpense(unknown, "Rent", 10)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.ErrorIs(t, store.ClearExpenses(unknown), domain.ErrSessionNotFound)
	_, err = store.Expenses(unknown)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestStore_ConcurrentAdds(t *testing.T) {
	store := NewStore(0, 0)
	id, err := store.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = store.AddExpense(id, "Maintenance", 10)
		}()
	}
	wg.Wait()

	entries, err := store.Expenses(id)
	require.NoError(t, err)
	assert.Len(t, entries, 50)
}

func TestStore_IdleSessionsExpire(t *testing.T) {
	now := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	store := NewStore(time.Hour, 10)
	store.now = func() time.Time { return now }

	idle, err := store.Create()
	require.NoError(t, err)
	active, err := store.Create()
	require.NoError(t, err)

	now = now.Add(45 * time.Minute)
	_, err = store.AddExpense(active, "Gas", 900)
	require.NoError(t, err)

	now = now.Add(30 * time.Minute)
	_, err = store.Expenses(idle)
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)

	entries, err := store.Expenses(active)
	require.NoError(t, err)
	assert.Len(t, entries, 1)
	assert.Equal(t, 1, store.Len())
}

func TestStore_SessionCap(t *testing.T) {
	now := time.Date(2026, time.October, 1, 9, 0, 0, 0, time.UTC)
	store := NewStore(time.Hour, 2)
	store.now = func() time.Time { return now }

	for i := 0; i < 2; i++ {
		_, err := store.Create()
		require.NoError(t, err)
	}

	_, err := store.Create()
	assert.ErrorIs(t, err, domain.ErrTooManySessions)

	now = now.Add(2 * time.Hour)
	_, err = store.Create()
	assert.NoError(t, err)
	assert.Equal(t, 1, store.Len())
}
