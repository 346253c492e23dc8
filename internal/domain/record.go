package domain

import (
	"strings"

	"github.com/google/uuid"
)

// SlugLength is the length of the capability component embedded in share links.
const SlugLength = 16

// Record is a bundle of message references accumulated by one chat and later
// delivered, in order, to anyone who presents the record's id and slug.
type Record struct {
	ID          int64
	Slug        string
	CreatedAt   int64 // unix seconds
	OwnerChatID int64 // chat the messages are copied from during retrieval
	MessageIDs  []int // append-only while Sealed is false
	Sealed      bool
	Count       int64 // always len(MessageIDs); kept for cheap display
}

// Open reports whether the record still accepts message references.
func (r *Record) Open() bool {
	return !r.Sealed
}

// NewSlug returns a random 16-character alphanumeric slug.
// Slugs are not checked for global uniqueness; the (id, slug) pair is what
// authorizes retrieval, so a slug collision on its own grants nothing.
func NewSlug() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:SlugLength]
}

// Target is a decoded share-link reference to a record.
type Target struct {
	RecordID int64
	Slug     string
}
