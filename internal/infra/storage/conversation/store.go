package conversation

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/brunocamarg0/trim-squire/internal/domain"
)

type entry struct {
	conversation *domain.Conversation
	touchedAt    time.Time
}

// MemoryStore хранит контексты диалогов в памяти процесса.
// Контекст, не обновлявшийся дольше ttl, считается отсутствующим. ttl <= 0 отключает истечение.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore создает новое хранилище
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		items: make(map[string]entry),
		ttl:   ttl,
		now:   time.Now,
	}
}

// Get возвращает копию контекста чата
func (s *MemoryStore) Get(_ context.Context, chatID string) (*domain.Conversation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.items[chatID]
	if !ok {
		return nil, ErrConversationNotFound
	}
	if s.expired(e, s.now()) {
		delete(s.items, chatID)
		return nil, ErrConversationNotFound
	}
	return e.conversation.Clone(), nil
}

// Save сохраняет копию контекста
func (s *MemoryStore) Save(_ context.Context, conv *domain.Conversation) error {
	if conv == nil || conv.ChatID == "" {
		return fmt.Errorf("%w: chat id is required", ErrInvalidConversation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[conv.ChatID] = entry{conversation: conv.Clone(), touchedAt: s.now()}
	return nil
}

// Delete удаляет контекст. Отсутствие контекста ошибкой не является.
func (s *MemoryStore) Delete(_ context.Context, chatID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, chatID)
	return nil
}

// Len количество контекстов в памяти, включая еще не вычищенные истекшие
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.items)
}

// PurgeExpired удаляет истекшие контексты и возвращает их количество
func (s *MemoryStore) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for id, e := range s.items {
		if s.expired(e, now) {
			delete(s.items, id)
			purged++
		}
	}
	return purged
}

// Run периодически вычищает истекшие контексты до отмены ctx.
// onPurge, если задан, вызывается после каждого прохода.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration, onPurge func(purged, remaining int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purged := s.PurgeExpired()
			if onPurge != nil {
				onPurge(purged, s.Len())
			}
		}
	}
}

func (s *MemoryStore) expired(e entry, now time.Time) bool {
	return s.ttl > 0 && now.Sub(e.touchedAt) > s.ttl
}
