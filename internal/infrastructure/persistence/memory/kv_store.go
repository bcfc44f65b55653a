// Package memory provides a process-local key-value store.
package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/bnema/workbench/internal/domain/repository"
)

// KVStore keeps values in a map. Nothing survives a restart.
type KVStore struct {
	mu     sync.RWMutex
	values map[string]string
}

var _ repository.KeyValueStore = (*KVStore)(nil)

// NewKVStore creates an empty store.
func NewKVStore() *KVStore {
	return &KVStore{values: make(map[string]string)}
}

func (s *KVStore) Get(_ context.Context, key string) (string, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *KVStore) Set(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *KVStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, key)
	return nil
}

func (s *KVStore) List(_ context.Context, prefix string) (map[string]string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]string)
	for k, v := range s.values {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}
