package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/workbench/internal/application/port"
	"github.com/bnema/workbench/internal/domain/repository"
)

// lazyKVStore opens its database on the first call. An open failure is
// returned by every call, which the layout use cases log and ignore.
type lazyKVStore struct {
	provider port.DatabaseProvider
	store    repository.KeyValueStore
	once     sync.Once
	initErr  error
}

// NewLazyKVStore creates a key-value store backed by a lazily opened database.
func NewLazyKVStore(provider port.DatabaseProvider) repository.KeyValueStore {
	return &lazyKVStore{provider: provider}
}

func (s *lazyKVStore) init(ctx context.Context) error {
	s.once.Do(func() {
		db, err := s.provider.DB(ctx)
		if err != nil {
			s.initErr = err
			return
		}
		s.store = NewKVStore(db)
	})
	return s.initErr
}

func (s *lazyKVStore) Get(ctx context.Context, key string) (string, bool, error) {
	if err := s.init(ctx); err != nil {
		return "", false, err
	}
	return s.store.Get(ctx, key)
}

func (s *lazyKVStore) Set(ctx context.Context, key, value string) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Set(ctx, key, value)
}

func (s *lazyKVStore) Delete(ctx context.Context, key string) error {
	if err := s.init(ctx); err != nil {
		return err
	}
	return s.store.Delete(ctx, key)
}

func (s *lazyKVStore) List(ctx context.Context, prefix string) (map[string]string, error) {
	if err := s.init(ctx); err != nil {
		return nil, err
	}
	return s.store.List(ctx, prefix)
}
