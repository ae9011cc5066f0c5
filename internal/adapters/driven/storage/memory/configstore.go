package memory

import (
	"context"
	"sync"

	"github.com/custodia-labs/kith-cli/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map for --memory mode and tests.
// Every Set wakes the active watchers.
type ConfigStore struct {
	mu       sync.RWMutex
	values   map[string]any
	watchers map[chan struct{}]struct{}
}

// NewConfigStore returns an empty store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{
		values:   make(map[string]any),
		watchers: make(map[chan struct{}]struct{}),
	}
}

func (s *ConfigStore) Lookup(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// Int accepts any Go integer kind; floats and strings are not ints.
func (s *ConfigStore) Int(key string) (int, bool) {
	v, _ := s.Lookup(key)
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	}
	return 0, false
}

func (s *ConfigStore) Bool(key string) (bool, bool) {
	v, _ := s.Lookup(key)
	b, ok := v.(bool)
	return b, ok
}

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.values[key] = value
	for ch := range s.watchers {
		// A pending wake-up already covers this change.
		select {
		case ch <- struct{}{}:
		default:
		}
	}
	return nil
}

// Watch calls onChange from its own goroutine after Set, until ctx is done.
// Changes that land while onChange runs are coalesced into one call.
func (s *ConfigStore) Watch(ctx context.Context, onChange func()) error {
	wake := make(chan struct{}, 1)

	s.mu.Lock()
	s.watchers[wake] = struct{}{}
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.watchers, wake)
		s.mu.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-wake:
			if onChange != nil {
				onChange()
			}
		}
	}
}

// Len returns how many keys are set.
func (s *ConfigStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.values)
}
