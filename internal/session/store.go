// Package session holds the authenticated user's identity, persisted across
// runs, and is the single source of truth for "is a user logged in".
package session

import (
	"context"
	"encoding/json"
	"sync"

	"daybook/internal/logging"
	"daybook/internal/models"
	"daybook/internal/repositories/kv"
)

// identityKey is the single durable-storage key holding the serialized
// identity record. Absence means "logged out".
const identityKey = "identity"

// Store keeps the persisted identity and the in-memory copy in lockstep:
// every mutating operation writes both, so there is no code path that can
// leave them disagreeing.
type Store struct {
	repo kv.Repository
	log  logging.Logger

	mu       sync.RWMutex
	identity *models.Identity
	ready    bool
}

// NewStore binds a Store to its durable storage. Consumers receive the Store
// by explicit reference; there is no package-level instance.
func NewStore(repo kv.Repository, log logging.Logger) *Store {
	return &Store{repo: repo, log: log.With("component", "session")}
}

// Initialize reads the persisted identity record, if any. A present, valid
// record makes the store authenticated; a malformed record is evicted from
// storage and the store stays logged out. Storage failures are logged and
// treated as "no session"; Initialize never returns an error to the caller.
// Completion flips the ready flag; authorization decisions made before that
// are unreliable (see the guard package).
func (s *Store) Initialize(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	defer func() { s.ready = true }()

	raw, err := s.repo.Get(ctx, identityKey)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored identity, treating as logged out", "error", err)
		return
	}
	if raw == nil {
		return
	}

	var id models.Identity
	if err := json.Unmarshal(raw, &id); err != nil {
		s.log.Warn(ctx, "discarding corrupted stored identity", "error", err)
		if derr := s.repo.Delete(ctx, identityKey); derr != nil {
			s.log.Warn(ctx, "failed to evict corrupted identity", "error", derr)
		}
		return
	}

	s.identity = &id
}

// Login persists the identity record and adopts it as current. The change is
// visible to all consumers immediately. Storage write failures propagate and
// leave the store unchanged.
func (s *Store) Login(ctx context.Context, identity models.Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return err
	}
	if err := s.repo.Set(ctx, identityKey, raw); err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = &identity
	s.mu.Unlock()
	return nil
}

// Logout removes the persisted record and clears the current identity.
func (s *Store) Logout(ctx context.Context) error {
	if err := s.repo.Delete(ctx, identityKey); err != nil {
		return err
	}

	s.mu.Lock()
	s.identity = nil
	s.mu.Unlock()
	return nil
}

// CurrentIdentity returns a copy of the identity, or nil when logged out.
func (s *Store) CurrentIdentity() *models.Identity {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.identity == nil {
		return nil
	}
	id := *s.identity
	return &id
}

// IsAuthenticated reports whether an identity is present. By construction it
// always equals CurrentIdentity() != nil.
func (s *Store) IsAuthenticated() bool {
	return s.CurrentIdentity() != nil
}

// IsReady reports whether Initialize has completed.
func (s *Store) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}
