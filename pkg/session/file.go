package session

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// FileStore keeps sessions as JSON files, one per deck, so CLI runs in
// separate processes can pick a deck back up for revision.
type FileStore struct {
	mu      sync.RWMutex
	baseDir string
}

var _ Store = (*FileStore)(nil)

// NewFileStore creates a file-based session store. If baseDir is empty,
// defaults to ~/.config/pptgen/sessions/
func NewFileStore(baseDir string) (*FileStore, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "get home dir")
		}
		baseDir = filepath.Join(home, ".config", "pptgen", "sessions")
	}
	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "create session dir")
	}
	return &FileStore{baseDir: baseDir}, nil
}

func (s *FileStore) sessionPath(id string) string {
	return filepath.Join(s.baseDir, id+".json")
}

func (s *FileStore) Get(ctx context.Context, id string) (*Session, error) {
	if err := apperrors.ValidateSessionID(id); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	path := s.sessionPath(id)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "read session file")
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "parse session file %s", path)
	}

	if sess.IsExpired() {
		os.Remove(path)
		return nil, expiredErr(id)
	}
	return &sess, nil
}

func (s *FileStore) Set(ctx context.Context, sess *Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "encode session %s", sess.ID)
	}

	path := s.sessionPath(sess.ID)
	if err := os.WriteFile(path, data, 0600); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write session file")
	}
	return nil
}

func (s *FileStore) Delete(ctx context.Context, id string) error {
	if err := apperrors.ValidateSessionID(id); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.sessionPath(id)); err != nil && !os.IsNotExist(err) {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "remove session file")
	}
	return nil
}

func (s *FileStore) Cleanup(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "read session dir")
	}

	now := time.Now()
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".json" {
			continue
		}
		path := filepath.Join(s.baseDir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		var sess Session
		if err := json.Unmarshal(data, &sess); err != nil {
			continue
		}
		if now.After(sess.ExpiresAt) {
			os.Remove(path)
		}
	}
	return nil
}

// Path returns the base directory for session files.
func (s *FileStore) Path() string {
	return s.baseDir
}

// =============================================================================
// CLI convenience wrapper
// =============================================================================

const latestPointerFile = "latest"

// CLIStore wraps FileStore and remembers the most recent deck session,
// so `pptgen revise` without an id picks up where the last run left
// off.
type CLIStore struct {
	store *FileStore
}

// NewCLIStore creates a store in the default CLI session directory.
func NewCLIStore() (*CLIStore, error) {
	store, err := NewFileStore("")
	if err != nil {
		return nil, err
	}
	return &CLIStore{store: store}, nil
}

// Save stores the session and marks it as the latest.
func (c *CLIStore) Save(ctx context.Context, sess *Session) error {
	if err := c.store.Set(ctx, sess); err != nil {
		return err
	}
	pointer := filepath.Join(c.store.baseDir, latestPointerFile)
	if err := os.WriteFile(pointer, []byte(sess.ID), 0600); err != nil {
		return apperrors.Wrap(apperrors.ErrCodeInternal, err, "write latest pointer")
	}
	return nil
}

// Get retrieves a session by id.
func (c *CLIStore) Get(ctx context.Context, id string) (*Session, error) {
	return c.store.Get(ctx, id)
}

// Resolve expands a session id prefix to a full id. An exact id passes
// through; a prefix must match exactly one stored session.
func (c *CLIStore) Resolve(ctx context.Context, idOrPrefix string) (string, error) {
	if err := apperrors.ValidateSessionID(idOrPrefix); err != nil {
		return "", err
	}
	if _, err := os.Stat(c.store.sessionPath(idOrPrefix)); err == nil {
		return idOrPrefix, nil
	}

	entries, err := os.ReadDir(c.store.baseDir)
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, err, "read session dir")
	}

	matches := []string{}
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		id := strings.TrimSuffix(name, ".json")
		if strings.HasPrefix(id, idOrPrefix) {
			matches = append(matches, id)
		}
	}

	switch len(matches) {
	case 0:
		return "", apperrors.New(apperrors.ErrCodeSessionNotFound, "no deck session matches %q", idOrPrefix)
	case 1:
		return matches[0], nil
	}
	return "", apperrors.New(apperrors.ErrCodeInvalidInput,
		"deck session id %q is ambiguous (%d matches)", idOrPrefix, len(matches))
}

// Latest retrieves the most recently saved session. Returns nil, nil
// when no deck has been generated yet.
func (c *CLIStore) Latest(ctx context.Context) (*Session, error) {
	pointer := filepath.Join(c.store.baseDir, latestPointerFile)
	data, err := os.ReadFile(pointer)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, apperrors.Wrap(apperrors.ErrCodeInternal, err, "read latest pointer")
	}
	id := strings.TrimSpace(string(data))
	if id == "" {
		return nil, nil
	}
	return c.store.Get(ctx, id)
}

// Path returns the session directory.
func (c *CLIStore) Path() string {
	return c.store.baseDir
}
