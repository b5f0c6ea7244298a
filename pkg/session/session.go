// Package session provides deck session management.
//
// A session tracks one generated deck across revisions: the topic, the
// template it was planned against, the latest content JSON, the latest
// plan, and the revision instructions applied so far. Sessions expire
// after a TTL and are kept in one of three backends:
//   - memory: single-process serving and tests
//   - redis: multi-process serving
//   - file: CLI runs, so a later `revise` finds the deck
//
// # Usage
//
// Create a store and a session:
//
//	store := session.NewMemoryStore()
//
//	sess, err := session.New("Q3 Business Review", "boardroom", session.DefaultTTL)
//	if err != nil {
//	    return err
//	}
//	store.Set(ctx, sess)
//
// Retrieve it later:
//
//	sess, err := store.Get(ctx, id)
//	if err != nil {
//	    // expired (SESSION_EXPIRED) or backend failure
//	}
//	if sess == nil {
//	    // unknown id
//	}
package session

import (
	"context"
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"

	apperrors "github.com/nattu22/pptgenerator/pkg/errors"
)

// Default durations and limits.
const (
	// DefaultTTL is the default deck session duration.
	DefaultTTL = 24 * time.Hour

	// MaxRevisions caps the revision rounds per deck. Past this the
	// accumulated instruction history stops fitting a revision prompt;
	// the deck has to be regenerated fresh.
	MaxRevisions = 8
)

// Session is one deck's generation state across revisions.
type Session struct {
	ID        string          `json:"id"`
	Topic     string          `json:"topic"`
	Template  string          `json:"template"`
	Deck      string          `json:"deck_json,omitempty"`
	Plan      json.RawMessage `json:"plan,omitempty"`
	Revisions []string        `json:"revisions,omitempty"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	ExpiresAt time.Time       `json:"expires_at"`
}

// New creates a session with a fresh ID.
func New(topic, templateName string, ttl time.Duration) (*Session, error) {
	id, err := GenerateID()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	return &Session{
		ID:        id,
		Topic:     topic,
		Template:  templateName,
		CreatedAt: now,
		UpdatedAt: now,
		ExpiresAt: now.Add(ttl),
	}, nil
}

// GenerateID returns a random deck session identifier.
func GenerateID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", apperrors.Wrap(apperrors.ErrCodeInternal, err, "generate session id")
	}
	return id.String(), nil
}

// IsExpired reports whether the session has passed its TTL.
func (s *Session) IsExpired() bool {
	return time.Now().After(s.ExpiresAt)
}

// Touch refreshes the session's expiry after activity.
func (s *Session) Touch(ttl time.Duration) {
	now := time.Now()
	s.UpdatedAt = now
	s.ExpiresAt = now.Add(ttl)
}

// AddRevision appends one revision instruction. Fails with
// INVALID_INPUT once the history is full.
func (s *Session) AddRevision(instruction string) error {
	if len(s.Revisions) >= MaxRevisions {
		return apperrors.New(apperrors.ErrCodeInvalidInput,
			"revision history is full (%d rounds); generate the deck again to continue", MaxRevisions)
	}
	s.Revisions = append(s.Revisions, instruction)
	return nil
}

// Clone returns a deep copy. Stores hand out clones so callers can
// mutate a session and decide later whether to Set it back.
func (s *Session) Clone() *Session {
	if s == nil {
		return nil
	}
	out := *s
	out.Plan = slices.Clone(s.Plan)
	out.Revisions = slices.Clone(s.Revisions)
	return &out
}

// Store is the interface for session storage backends.
type Store interface {
	// Get retrieves a session by ID. Returns nil, nil when the id is
	// unknown and a SESSION_EXPIRED error when the session exists but
	// has passed its TTL.
	Get(ctx context.Context, id string) (*Session, error)

	// Set stores a session.
	Set(ctx context.Context, sess *Session) error

	// Delete removes a session. Unknown ids are not an error.
	Delete(ctx context.Context, id string) error

	// Cleanup removes expired sessions. May be a no-op for backends
	// with native expiry.
	Cleanup(ctx context.Context) error
}

// expiredErr is the shared expiry error all backends return.
func expiredErr(id string) error {
	return apperrors.New(apperrors.ErrCodeSessionExpired, "deck session %s has expired", id)
}
