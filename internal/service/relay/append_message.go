package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/relaybot/internal/domain"
)

// AppendMessage appends a message reference to the chat's in-progress record
// and returns the record's new count. Returns ErrNotRecording when the chat
// is Idle. If the session points at a record that has vanished or was sealed
// out of band, the session is reset to Idle and domain.ErrNotFound is
// returned so the chat can recover with a fresh recording.
func (s *Service) AppendMessage(ctx context.Context, chatID int64, messageID int) (int64, error) {
	sess, err := s.sessions.Get(ctx, chatID)
	if err != nil {
		return 0, fmt.Errorf("get session: %w", err)
	}
	if !sess.Recording() {
		return 0, ErrNotRecording
	}

	count, err := s.records.AppendMessage(ctx, sess.RecordID, messageID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "session pointed at unwritable record, resetting",
				slog.Int64("chat_id", chatID),
				slog.Int64("record_id", sess.RecordID),
			)
			s.resetSession(ctx, chatID)
		}
		return 0, fmt.Errorf("append message: %w", err)
	}

	return count, nil
}
