// Package session holds the bearer credential for the admin console. At most
// one token is stored at a time; an absent token means "unauthenticated".
// Token validity is judged solely by the remote API, never locally.
package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is the persistence contract for the bearer token. Implementations
// must not fail loudly: when the backing storage is unavailable every method
// is a no-op and Get returns the empty string.
type Store interface {
	// Get returns the stored token, or "" when none is present.
	Get() string
	// Set overwrites the stored token.
	Set(token string)
	// Clear removes the stored token.
	Clear()
	// Present reports whether a token is currently stored.
	Present() bool
}

// MemStore keeps the token in memory only. Used by tests and ephemeral runs.
type MemStore struct {
	mu    sync.Mutex
	token string
}

func NewMemStore() *MemStore { return &MemStore{} }

func (s *MemStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *MemStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

func (s *MemStore) Present() bool { return s.Get() != "" }

// FileStore persists the token as a single file. A missing or unreadable
// file reads as "no token"; write failures are swallowed so a read-only
// filesystem degrades to an in-memory-less session rather than a crash.
type FileStore struct {
	mu   sync.Mutex
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return ""
	}
	b, err := os.ReadFile(s.path)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}

func (s *FileStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return
	}
	_ = os.WriteFile(s.path, []byte(token), 0o600)
}

func (s *FileStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.path == "" {
		return
	}
	_ = os.Remove(s.path)
}

func (s *FileStore) Present() bool { return s.Get() != "" }
