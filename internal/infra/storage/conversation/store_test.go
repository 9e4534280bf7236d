package conversation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
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

func newTestStore(ttl time.Duration) (*MemoryStore, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 12, 20, 10, 0, 0, 0, time.UTC)}
	s := NewMemoryStore(ttl)
	s.now = clock.Now
	return s, clock
}

func TestMemoryStore_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(time.Hour)

	_, err := s.Get(ctx, "chat-1")
	assert.ErrorIs(t, err, ErrConversationNotFound)

	conv := domain.NewConversation("chat-1", "shop-1", "client-1", "João")
	conv.State = domain.StateAwaitingDate
	conv.Draft.ServiceIDs = []string{"svc-1"}
	require.NoError(t, s.Save(ctx, conv))

	got, err := s.Get(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, domain.StateAwaitingDate, got.State)
	assert.Equal(t, []string{"svc-1"}, got.Draft.ServiceIDs)

	require.NoError(t, s.Delete(ctx, "chat-1"))
	require.NoError(t, s.Delete(ctx, "chat-1"))

	_, err = s.Get(ctx, "chat-1")
	assert.ErrorIs(t, err, ErrConversationNotFound)
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	s, _ := newTestStore(time.Hour)

	conv := domain.NewConversation("chat-1", "shop-1", "client-1", "João")
	conv.Draft.ServiceIDs = []string{"svc-1"}
	require.NoError(t, s.Save(ctx, conv))

	// mutating the caller's copy must not leak into the store
	conv.Draft.ServiceIDs[0] = "changed"

	got, err := s.Get(ctx, "chat-1")
	require.NoError(t, err)
	got.State = domain.StateConfirming

	again, err := s.Get(ctx, "chat-1")
	require.NoError(t, err)
	assert.Equal(t, "svc-1", again.Draft.ServiceIDs[0])
	assert.Equal(t, domain.StateIdle, again.State)
}

func TestMemoryStore_SaveInvalid(t *testing.T) {
	s, _ := newTestStore(time.Hour)

	assert.ErrorIs(t, s.Save(context.Background(), nil), ErrInvalidConversation)
	assert.ErrorIs(t, s.Save(context.Background(), &domain.Conversation{}), ErrInvalidConversation)
}

func TestMemoryStore_Expiry(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(30 * time.Minute)

	require.NoError(t, s.Save(ctx, domain.NewConversation("chat-1", "shop-1", "client-1", "A")))
	require.NoError(t, s.Save(ctx, domain.NewConversation("chat-2", "shop-1", "client-2", "B")))

	clock.Advance(20 * time.Minute)
	// touching chat-2 restarts its idle timer
	require.NoError(t, s.Save(ctx, domain.NewConversation("chat-2", "shop-1", "client-2", "B")))

	clock.Advance(15 * time.Minute)

	_, err := s.Get(ctx, "chat-1")
	assert.ErrorIs(t, err, ErrConversationNotFound)

	_, err = s.Get(ctx, "chat-2")
	assert.NoError(t, err)
}

func TestMemoryStore_PurgeExpired(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(time.Minute)

	require.NoError(t, s.Save(ctx, domain.NewConversation("chat-1", "shop-1", "client-1", "A")))
	require.NoError(t, s.Save(ctx, domain.NewConversation("chat-2", "shop-1", "client-2", "B")))
	assert.Equal(t, 0, s.PurgeExpired())

	clock.Advance(2 * time.Minute)
	require.NoError(t, s.Save(ctx, domain.NewConversation("chat-3", "shop-1", "client-3", "C")))

	assert.Equal(t, 2, s.PurgeExpired())
	assert.Equal(t, 1, s.Len())
}

func TestMemoryStore_NoTTL(t *testing.T) {
	ctx := context.Background()
	s, clock := newTestStore(0)

	require.NoError(t, s.Save(ctx, domain.NewConversation("chat-1", "shop-1", "client-1", "A")))
	clock.Advance(24 * time.Hour)

	_, err := s.Get(ctx, "chat-1")
	assert.NoError(t, err)
	assert.Equal(t, 0, s.PurgeExpired())
}

func TestMemoryStore_Run(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	s, clock := newTestStore(time.Minute)

	require.NoError(t, s.Save(ctx, domain.NewConversation("chat-1", "shop-1", "client-1", "A")))
	clock.Advance(time.Hour)

	done := make(chan struct{})
	purgedCh := make(chan int, 1)
	go func() {
		defer close(done)
		s.Run(ctx, time.Millisecond, func(purged, remaining int) {
			if purged > 0 {
				select {
				case purgedCh <- purged:
				default:
				}
			}
		})
	}()

	select {
	case n := <-purgedCh:
		assert.Equal(t, 1, n)
	case <-time.After(time.Second):
		t.Fatal("janitor did not purge expired conversation")
	}

	cancel()
	<-done
	assert.Equal(t, 0, s.Len())
}

func TestMemoryStore_ConcurrentChats(t *testing.T) {
	ctx := context.Background()
	s := NewMemoryStore(time.Hour)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := "chat-" + string(rune('A'+i%26)) + string(rune('a'+i/26))
			conv := domain.NewConversation(id, "shop-1", "client", "X")
			_ = s.Save(ctx, conv)
			_, _ = s.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, s.Len())
}
