// Package file keeps workspace layout values in a YAML document on disk.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/workbench/internal/domain/repository"
	"github.com/bnema/workbench/internal/logging"
	"gopkg.in/yaml.v3"
)

const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// KVStore rewrites the whole document on every Set and Delete.
// The document is small (a handful of panel keys) so this stays cheap.
type KVStore struct {
	mu     sync.Mutex
	path   string
	values map[string]string
	loaded bool
}

var _ repository.KeyValueStore = (*KVStore)(nil)

// NewKVStore creates a store backed by path. The file is read lazily.
func NewKVStore(path string) *KVStore {
	return &KVStore{path: path}
}

// Path returns the backing file path.
func (s *KVStore) Path() string {
	return s.path
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return "", false, err
	}
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	s.values[key] = value
	return s.flush()
}

func (s *KVStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return err
	}
	if _, ok := s.values[key]; !ok {
		return nil
	}
	delete(s.values, key)
	return s.flush()
}

func (s *KVStore) List(ctx context.Context, prefix string) (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.load(ctx); err != nil {
		return nil, err
	}
	out := make(map[string]string)
	for k, v := range s.values {
		if strings.HasPrefix(k, prefix) {
			out[k] = v
		}
	}
	return out, nil
}

// load reads the document once. A missing file is an empty store; an
// unparsable one is logged and replaced on the next write.
func (s *KVStore) load(ctx context.Context) error {
	if s.loaded {
		return nil
	}
	s.values = make(map[string]string)

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.loaded = true
		return nil
	}
	if err != nil {
		return fmt.Errorf("read layout file: %w", err)
	}

	if err := yaml.Unmarshal(data, &s.values); err != nil {
		logging.FromContext(ctx).Warn().
			Err(err).
			Str("path", s.path).
			Msg("corrupt layout file, starting empty")
		s.values = make(map[string]string)
	}
	if s.values == nil {
		s.values = make(map[string]string)
	}
	s.loaded = true
	return nil
}

// flush writes through a temp file and rename so a crash never leaves a
// half-written document.
func (s *KVStore) flush() error {
	data, err := yaml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encode layout file: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), dirPerm); err != nil {
		return fmt.Errorf("create layout dir: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".layout-*.yaml")
	if err != nil {
		return fmt.Errorf("create temp layout file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write layout file: %w", err)
	}
	if err := tmp.Chmod(filePerm); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod layout file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close layout file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("replace layout file: %w", err)
	}
	return nil
}
