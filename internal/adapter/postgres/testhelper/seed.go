package testhelper

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/relaybot/internal/domain"
)

// UniqueSuffix returns a short unique string for generating non-conflicting test data.
func UniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedRecord inserts a record row directly (bypassing the repository) and
// returns it as a filled domain.Record. Useful for exercising read paths.
func SeedRecord(t *testing.T, pool *pgxpool.Pool, ownerChatID int64, sealed bool, messageIDs ...int) domain.Record {
	t.Helper()
	ctx := context.Background()

	rec := domain.Record{
		Slug:        domain.NewSlug(),
		CreatedAt:   time.Now().Unix(),
		OwnerChatID: ownerChatID,
		MessageIDs:  messageIDs,
		Sealed:      sealed,
		Count:       int64(len(messageIDs)),
	}

	ids := rec.MessageIDs
	if ids == nil {
		ids = []int{}
	}
	idsJSON, err := json.Marshal(ids)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord marshal ids: %v", err)
	}

	err = pool.QueryRow(ctx,
		`INSERT INTO records (slug, created_at, messages, sealed, count)
		 VALUES ($1, $2, jsonb_build_object('cid', $3::bigint, 'ids', $4::jsonb), $5, $6)
		 RETURNING id`,
		rec.Slug, rec.CreatedAt, rec.OwnerChatID, string(idsJSON), rec.Sealed, rec.Count,
	).Scan(&rec.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedRecord insert: %v", err)
	}

	return rec
}
