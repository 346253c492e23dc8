// Package record implements the Record store using PostgreSQL.
// All queries use raw SQL since the messages column is JSONB requiring
// custom marshal/unmarshal logic, and every mutation of an open record is a
// single conditional UPDATE guarded by sealed = FALSE, so append-after-seal
// and double-seal are impossible at the storage layer regardless of what the
// callers do.
package record

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/relaybot/internal/adapter/postgres"
	"github.com/heartmarshall/relaybot/internal/domain"
)

// Repo provides record persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new record repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const recordColumns = `id, slug, created_at, messages, sealed, count`

const createSQL = `
INSERT INTO records (slug, created_at, messages)
VALUES ($1, $2, $3)
RETURNING ` + recordColumns

const getByIDSQL = `
SELECT ` + recordColumns + `
FROM records
WHERE id = $1`

const getSealedSQL = `
SELECT ` + recordColumns + `
FROM records
WHERE id = $1 AND sealed`

const appendSQL = `
UPDATE records
SET messages = jsonb_set(messages, '{ids}', (messages->'ids') || to_jsonb($2::int)),
    count = count + 1
WHERE id = $1 AND sealed = FALSE
RETURNING count`

const sealSQL = `
UPDATE records
SET sealed = TRUE
WHERE id = $1 AND sealed = FALSE
RETURNING ` + recordColumns

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a record by primary key regardless of its sealed flag.
// Returns domain.ErrNotFound if the record does not exist.
func (r *Repo) GetByID(ctx context.Context, id int64) (*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(querier.QueryRow(ctx, getByIDSQL, id))
	if err != nil {
		return nil, mapError(err, id)
	}

	return rec, nil
}

// GetSealed returns a record by primary key only if it has been sealed.
// Absent and unsealed records are indistinguishable to the caller: both
// return domain.ErrNotFound.
func (r *Repo) GetSealed(ctx context.Context, id int64) (*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	rec, err := scanRecord(querier.QueryRow(ctx, getSealedSQL, id))
	if err != nil {
		return nil, mapError(err, id)
	}

	return rec, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a new open, empty record and returns the persisted
// domain.Record with its store-assigned id.
func (r *Repo) Create(ctx context.Context, rec *domain.Record) (*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	msgBytes, err := marshalMessages(rec.OwnerChatID, rec.MessageIDs)
	if err != nil {
		return nil, fmt.Errorf("record: marshal messages: %w", err)
	}

	created, err := scanRecord(querier.QueryRow(ctx, createSQL, rec.Slug, rec.CreatedAt, msgBytes))
	if err != nil {
		return nil, mapError(err, 0)
	}

	return created, nil
}

// AppendMessage appends a message reference to an open record and increments
// count, as a single conditional UPDATE. Returns the new count.
// Returns domain.ErrNotFound if the record does not exist or is sealed, so
// an append that loses a race with a seal fails here, not silently.
func (r *Repo) AppendMessage(ctx context.Context, id int64, messageID int) (int64, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	var count int64
	if err := querier.QueryRow(ctx, appendSQL, id, messageID).Scan(&count); err != nil {
		return 0, mapError(err, id)
	}

	return count, nil
}

// Seal marks an open record as sealed and returns its final state.
// Returns domain.ErrNotFound if the record does not exist or is already
// sealed, which makes a repeated seal a reported no-op.
func (r *Repo) Seal(ctx context.Context, id int64) (*domain.Record, error) {
	querier := postgres.QuerierFromCtx(ctx, r.pool)

	sealed, err := scanRecord(querier.QueryRow(ctx, sealSQL, id))
	if err != nil {
		return nil, mapError(err, id)
	}

	return sealed, nil
}

// ---------------------------------------------------------------------------
// JSONB serialization helpers for the messages column
// ---------------------------------------------------------------------------

// messagesJSON is an intermediate struct for JSON marshaling of the composite
// messages value {owner chat id, ordered message ids}. Domain types have no
// json tags, so the repo layer handles serialization.
type messagesJSON struct {
	CID int64 `json:"cid"`
	IDs []int `json:"ids"`
}

// marshalMessages converts the owner chat id and message ids to JSON bytes
// for JSONB storage. A nil ids slice is stored as an empty array so that the
// server-side append expression always has an array to extend.
func marshalMessages(ownerChatID int64, ids []int) ([]byte, error) {
	if ids == nil {
		ids = []int{}
	}
	return json.Marshal(messagesJSON{CID: ownerChatID, IDs: ids})
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

// scanRecord scans a single record row from pgx.Row.
func scanRecord(row pgx.Row) (*domain.Record, error) {
	var (
		id        int64
		slug      string
		createdAt int64
		msgBytes  []byte
		sealed    bool
		count     int64
	)

	if err := row.Scan(&id, &slug, &createdAt, &msgBytes, &sealed, &count); err != nil {
		return nil, err
	}

	var m messagesJSON
	if err := json.Unmarshal(msgBytes, &m); err != nil {
		return nil, fmt.Errorf("unmarshal messages: %w", err)
	}

	return &domain.Record{
		ID:          id,
		Slug:        slug,
		CreatedAt:   createdAt,
		OwnerChatID: m.CID,
		MessageIDs:  m.IDs,
		Sealed:      sealed,
		Count:       count,
	}, nil
}

// ---------------------------------------------------------------------------
// Error mapping
// ---------------------------------------------------------------------------

// mapError converts pgx/pgconn errors into domain errors.
func mapError(err error, id int64) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("record %d: %w", id, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("record %d: %w", id, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23505": // unique_violation
			return fmt.Errorf("record %d: %w", id, domain.ErrAlreadyExists)
		case "23514": // check_violation
			return fmt.Errorf("record %d: %w", id, domain.ErrValidation)
		}
	}

	return fmt.Errorf("record %d: %w", id, err)
}
