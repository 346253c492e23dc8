// Package deeplink encodes record references into the opaque token carried by
// a Telegram start parameter, and builds the shareable https://t.me link.
//
// Token format: "record-<id>-<slug>". Decoding is strict: exactly three
// dash-separated segments, the literal "record" tag, a non-negative integer
// id, and a non-empty slug. Anything else is not a record reference and the
// caller falls back to the default entry message.
package deeplink

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/heartmarshall/relaybot/internal/domain"
)

const tag = "record"

// Encode builds the start-parameter token for a record target.
func Encode(t domain.Target) string {
	return fmt.Sprintf("%s-%d-%s", tag, t.RecordID, t.Slug)
}

// Decode parses a start-parameter token back into a record target.
// Returns false for anything that is not a well-formed record reference;
// malformed input is never an error, just "no special action".
func Decode(token string) (domain.Target, bool) {
	parts := strings.Split(token, "-")
	if len(parts) != 3 || parts[0] != tag {
		return domain.Target{}, false
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil || id < 0 {
		return domain.Target{}, false
	}

	if parts[2] == "" {
		return domain.Target{}, false
	}

	return domain.Target{RecordID: id, Slug: parts[2]}, true
}

// Link builds the shareable deep link for a record target.
// botUsername must not include the leading "@".
func Link(botUsername string, t domain.Target) string {
	return fmt.Sprintf("https://t.me/%s?start=%s", botUsername, Encode(t))
}
