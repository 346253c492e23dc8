// Package session implements the per-chat session state store on top of an
// embedded Pebble key-value database. Values are small JSON blobs keyed by
// chat id; a missing key reads as an Idle session, so first contact needs no
// explicit initialization.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cockroachdb/pebble"

	"github.com/heartmarshall/relaybot/internal/domain"
)

// Store provides session state persistence backed by Pebble.
type Store struct {
	db *pebble.DB
}

// Open opens (or creates) the Pebble database at the given path.
func Open(path string) (*Store, error) {
	db, err := pebble.Open(path, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("open session store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// sessionKey builds the storage key for a chat. The "session:" prefix leaves
// room for other namespaces in the same database.
func sessionKey(chatID int64) []byte {
	return []byte(fmt.Sprintf("session:%d", chatID))
}

// sessionJSON is the stored representation of domain.Session.
type sessionJSON struct {
	Phase    string `json:"phase"`
	RecordID int64  `json:"record_id,omitempty"`
}

// Get returns the session state for a chat. A chat that has never been seen
// (or was reset) is Idle.
func (s *Store) Get(_ context.Context, chatID int64) (domain.Session, error) {
	value, closer, err := s.db.Get(sessionKey(chatID))
	if errors.Is(err, pebble.ErrNotFound) {
		return domain.IdleSession(), nil
	}
	if err != nil {
		return domain.Session{}, fmt.Errorf("session %d: get: %w", chatID, err)
	}
	defer closer.Close()

	var j sessionJSON
	if err := json.Unmarshal(value, &j); err != nil {
		return domain.Session{}, fmt.Errorf("session %d: unmarshal: %w", chatID, err)
	}

	return domain.Session{
		Phase:    domain.SessionPhase(j.Phase),
		RecordID: j.RecordID,
	}, nil
}

// Put persists the session state for a chat. Writes are synced so that a
// process crash cannot lose a phase transition that was already acknowledged.
func (s *Store) Put(_ context.Context, chatID int64, sess domain.Session) error {
	data, err := json.Marshal(sessionJSON{
		Phase:    string(sess.Phase),
		RecordID: sess.RecordID,
	})
	if err != nil {
		return fmt.Errorf("session %d: marshal: %w", chatID, err)
	}

	if err := s.db.Set(sessionKey(chatID), data, pebble.Sync); err != nil {
		return fmt.Errorf("session %d: put: %w", chatID, err)
	}

	return nil
}

// Reset deletes the session state for a chat, returning it to Idle.
// Deleting an absent key is not an error.
func (s *Store) Reset(_ context.Context, chatID int64) error {
	if err := s.db.Delete(sessionKey(chatID), pebble.Sync); err != nil {
		return fmt.Errorf("session %d: reset: %w", chatID, err)
	}
	return nil
}
