// Package relay implements the record lifecycle engine: starting a recording
// for a chat, appending message references to it, sealing it, and delivering
// the referenced messages to whoever presents a valid reference.
package relay

import (
	"context"
	"errors"
	"log/slog"

	"github.com/heartmarshall/relaybot/internal/domain"
)

// ErrNotRecording is returned by operations that require an in-progress
// recording when the chat's session is Idle.
var ErrNotRecording = errors.New("no recording in progress")

type recordRepo interface {
	Create(ctx context.Context, rec *domain.Record) (*domain.Record, error)
	GetSealed(ctx context.Context, id int64) (*domain.Record, error)
	AppendMessage(ctx context.Context, id int64, messageID int) (int64, error)
	Seal(ctx context.Context, id int64) (*domain.Record, error)
}

type sessionStore interface {
	Get(ctx context.Context, chatID int64) (domain.Session, error)
	Put(ctx context.Context, chatID int64, sess domain.Session) error
	Reset(ctx context.Context, chatID int64) error
}

// courier copies a single message from one chat to another, preserving its
// content but not its forwarding header.
type courier interface {
	CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error
}

// Service provides record lifecycle and retrieval operations.
type Service struct {
	records  recordRepo
	sessions sessionStore
	courier  courier
	log      *slog.Logger
}

// NewService creates a new relay service.
func NewService(
	log *slog.Logger,
	records recordRepo,
	sessions sessionStore,
	courier courier,
) *Service {
	return &Service{
		records:  records,
		sessions: sessions,
		courier:  courier,
		log:      log.With("service", "relay"),
	}
}

// resetSession drops a chat back to Idle. Used when the session points at a
// record that no longer accepts the requested operation; the reset is best
// effort since the caller already has a primary error to report.
func (s *Service) resetSession(ctx context.Context, chatID int64) {
	if err := s.sessions.Reset(ctx, chatID); err != nil {
		s.log.ErrorContext(ctx, "failed to reset session",
			slog.Int64("chat_id", chatID),
			slog.Any("error", err),
		)
	}
}
