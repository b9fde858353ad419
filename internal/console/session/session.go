// Package session keeps the operator's console state on disk: the bearer
// token, the signed-in admin profile and UI preferences. State survives
// process restarts, mirroring a browser's persisted storage.
package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Well-known session keys.
const (
	// KeyToken stores the bearer token issued at login.
	KeyToken = "token"
	// KeyAdminUser stores the signed-in admin profile as JSON.
	KeyAdminUser = "adminUser"
	// KeyTheme stores the UI theme preference.
	KeyTheme = "theme"
)

// ChangeFunc receives the key and new value after every mutation. A cleared
// key is delivered with an empty value.
type ChangeFunc func(key, value string)

// Store is a file-backed session store. The zero value is not usable; use
// NewStore.
type Store struct {
	mu     sync.RWMutex
	path   string
	values map[string]string
	subs   []ChangeFunc
}

// NewStore loads or creates a session file at path.
func NewStore(path string) (*Store, error) {
	s := &Store{path: path, values: make(map[string]string)}
	data, errRead := os.ReadFile(path)
	if errRead != nil {
		if os.IsNotExist(errRead) {
			return s, nil
		}
		return nil, fmt.Errorf("session: read %s: %w", path, errRead)
	}
	if len(data) > 0 {
		if errUnmarshal := json.Unmarshal(data, &s.values); errUnmarshal != nil {
			return nil, fmt.Errorf("session: parse %s: %w", path, errUnmarshal)
		}
	}
	return s, nil
}

// Get returns the value for key, or empty when unset.
func (s *Store) Get(key string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Set stores value under key and persists the file.
func (s *Store) Set(key, value string) error {
	s.mu.Lock()
	s.values[key] = value
	errSave := s.saveLocked()
	subs := append([]ChangeFunc(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key, value)
	}
	return errSave
}

// Delete removes key and persists the file.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	if _, ok := s.values[key]; !ok {
		s.mu.Unlock()
		return nil
	}
	delete(s.values, key)
	errSave := s.saveLocked()
	subs := append([]ChangeFunc(nil), s.subs...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(key, "")
	}
	return errSave
}

// Clear removes all session state except the theme preference, which is a
// device setting rather than a credential.
func (s *Store) Clear() error {
	s.mu.Lock()
	theme, hasTheme := s.values[KeyTheme]
	cleared := make([]string, 0, len(s.values))
	for key := range s.values {
		if key == KeyTheme {
			continue
		}
		cleared = append(cleared, key)
	}
	s.values = make(map[string]string)
	if hasTheme {
		s.values[KeyTheme] = theme
	}
	errSave := s.saveLocked()
	subs := append([]ChangeFunc(nil), s.subs...)
	s.mu.Unlock()

	for _, key := range cleared {
		for _, fn := range subs {
			fn(key, "")
		}
	}
	return errSave
}

// OnChange registers fn to run after every mutation. Callbacks run outside
// the store lock, in registration order.
func (s *Store) OnChange(fn ChangeFunc) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	s.subs = append(s.subs, fn)
	s.mu.Unlock()
}

// saveLocked writes the session file. Callers must hold the write lock.
func (s *Store) saveLocked() error {
	data, errMarshal := json.MarshalIndent(s.values, "", "  ")
	if errMarshal != nil {
		return fmt.Errorf("session: encode: %w", errMarshal)
	}
	if dir := filepath.Dir(s.path); dir != "" && dir != "." {
		if errMkdir := os.MkdirAll(dir, 0o755); errMkdir != nil {
			return fmt.Errorf("session: create dir %s: %w", dir, errMkdir)
		}
	}
	if errWrite := os.WriteFile(s.path, data, 0o600); errWrite != nil {
		return fmt.Errorf("session: write %s: %w", s.path, errWrite)
	}
	return nil
}
