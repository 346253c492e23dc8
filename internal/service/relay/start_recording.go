package relay

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/relaybot/internal/domain"
)

// StartRecording creates a new open record for the chat and switches the
// chat's session to Recording. Returns domain.ErrConflict if a recording is
// already in progress; the caller must seal or abandon it first.
func (s *Service) StartRecording(ctx context.Context, chatID int64) (*domain.Record, error) {
	sess, err := s.sessions.Get(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if sess.Recording() {
		return nil, fmt.Errorf("chat %d is already recording record %d: %w",
			chatID, sess.RecordID, domain.ErrConflict)
	}

	rec, err := s.records.Create(ctx, &domain.Record{
		Slug:        domain.NewSlug(),
		CreatedAt:   time.Now().Unix(),
		OwnerChatID: chatID,
	})
	if err != nil {
		return nil, fmt.Errorf("create record: %w", err)
	}

	if err := s.sessions.Put(ctx, chatID, domain.RecordingSession(rec.ID)); err != nil {
		return nil, fmt.Errorf("persist session: %w", err)
	}

	s.log.InfoContext(ctx, "recording started",
		slog.Int64("chat_id", chatID),
		slog.Int64("record_id", rec.ID),
	)

	return rec, nil
}
