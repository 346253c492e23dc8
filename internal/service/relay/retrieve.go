package relay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/relaybot/internal/domain"
)

// RetrieveResult holds the outcome of a retrieval: how many message
// references the record carries and how many were actually delivered.
type RetrieveResult struct {
	Count     int64
	Delivered int
}

// Retrieve looks up a sealed record and delivers copies of its referenced
// messages to the requester, preserving insertion order. When enforceSlug is
// set the target's slug must match the record's; a mismatch is reported the
// same way as an absent record so the reference stays opaque. Delivery stops
// at the first courier failure and the partial result is returned alongside
// the error; messages already delivered stay delivered.
func (s *Service) Retrieve(ctx context.Context, requesterChatID int64, target domain.Target, enforceSlug bool) (RetrieveResult, error) {
	rec, err := s.records.GetSealed(ctx, target.RecordID)
	if err != nil {
		return RetrieveResult{}, fmt.Errorf("get record: %w", err)
	}

	if enforceSlug && rec.Slug != target.Slug {
		return RetrieveResult{}, fmt.Errorf("record %d: slug mismatch: %w", target.RecordID, domain.ErrNotFound)
	}

	result := RetrieveResult{Count: rec.Count}
	for _, messageID := range rec.MessageIDs {
		if err := s.courier.CopyMessage(ctx, requesterChatID, rec.OwnerChatID, messageID); err != nil {
			s.log.ErrorContext(ctx, "delivery interrupted",
				slog.Int64("chat_id", requesterChatID),
				slog.Int64("record_id", rec.ID),
				slog.Int("delivered", result.Delivered),
				slog.Any("error", err),
			)
			return result, fmt.Errorf("copy message %d: %w", messageID, err)
		}
		result.Delivered++
	}

	s.log.InfoContext(ctx, "record delivered",
		slog.Int64("chat_id", requesterChatID),
		slog.Int64("record_id", rec.ID),
		slog.Int("delivered", result.Delivered),
	)

	return result, nil
}
