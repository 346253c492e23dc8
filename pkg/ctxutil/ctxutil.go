// Package ctxutil carries per-update correlation values through the call
// chain so that log lines written deep in the service layer can be tied back
// to the update that triggered them.
package ctxutil

import (
	"context"
)

type ctxKey string

const (
	updateIDKey ctxKey = "update_id"
	chatIDKey   ctxKey = "chat_id"
)

// WithUpdateID stores the Telegram update ID in the context.
func WithUpdateID(ctx context.Context, id int) context.Context {
	return context.WithValue(ctx, updateIDKey, id)
}

// UpdateIDFromCtx extracts the update ID from the context.
// Returns 0 and false if the value is missing or of the wrong type.
func UpdateIDFromCtx(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(updateIDKey).(int)
	if !ok {
		return 0, false
	}
	return id, true
}

// WithChatID stores the originating chat ID in the context.
func WithChatID(ctx context.Context, id int64) context.Context {
	return context.WithValue(ctx, chatIDKey, id)
}

// ChatIDFromCtx extracts the chat ID from the context.
// Returns 0 and false if the value is missing or of the wrong type.
func ChatIDFromCtx(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(chatIDKey).(int64)
	if !ok {
		return 0, false
	}
	return id, true
}
