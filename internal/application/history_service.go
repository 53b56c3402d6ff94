package application

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/shopassist/internal/ports"
)

const (
	KeySearchHistory = "search_history"
	MaxHistoryItems  = 10
)

// HistoryService keeps recent search terms, most recent first.
type HistoryService struct {
	store ports.StateStore
	mu    sync.Mutex
}

func NewHistoryService(store ports.StateStore) *HistoryService {
	return &HistoryService{store: store}
}

func (s *HistoryService) List(ctx context.Context) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Add moves term to the front, dropping an earlier identical entry and
// anything past the size limit.
func (s *HistoryService) Add(ctx context.Context, term string) []string {
	term = strings.TrimSpace(term)

	s.mu.Lock()
	defer s.mu.Unlock()

	history := s.load(ctx)
	if term == "" {
		return history
	}

	updated := make([]string, 0, len(history)+1)
	updated = append(updated, term)
	for _, existing := range history {
		if existing == term {
			continue
		}
		updated = append(updated, existing)
	}
	if len(updated) > MaxHistoryItems {
		updated = updated[:MaxHistoryItems]
	}

	s.store.Save(ctx, KeySearchHistory, updated)
	return updated
}

func (s *HistoryService) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.store.Remove(ctx, KeySearchHistory)
}

func (s *HistoryService) load(ctx context.Context) []string {
	var history []string
	if !s.store.Load(ctx, KeySearchHistory, &history) || history == nil {
		return []string{}
	}
	return history
}
