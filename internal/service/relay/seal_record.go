package relay

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/relaybot/internal/domain"
)

// SealRecord seals the chat's in-progress record and returns its final state.
// The chat's session goes back to Idle whether the seal succeeded or found
// the record already sealed or gone; only the outcome reported differs.
// Returns ErrNotRecording when the chat is Idle.
func (s *Service) SealRecord(ctx context.Context, chatID int64) (*domain.Record, error) {
	sess, err := s.sessions.Get(ctx, chatID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}
	if !sess.Recording() {
		return nil, ErrNotRecording
	}

	rec, err := s.records.Seal(ctx, sess.RecordID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.log.WarnContext(ctx, "session pointed at unsealable record, resetting",
				slog.Int64("chat_id", chatID),
				slog.Int64("record_id", sess.RecordID),
			)
			s.resetSession(ctx, chatID)
		}
		return nil, fmt.Errorf("seal record: %w", err)
	}

	if err := s.sessions.Reset(ctx, chatID); err != nil {
		return nil, fmt.Errorf("reset session: %w", err)
	}

	s.log.InfoContext(ctx, "record sealed",
		slog.Int64("chat_id", chatID),
		slog.Int64("record_id", rec.ID),
		slog.Int64("count", rec.Count),
	)

	return rec, nil
}
