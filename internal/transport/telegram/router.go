package telegram

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/heartmarshall/relaybot/internal/deeplink"
	"github.com/heartmarshall/relaybot/internal/domain"
	"github.com/heartmarshall/relaybot/internal/service/relay"
	"github.com/heartmarshall/relaybot/pkg/ctxutil"
)

type engine interface {
	StartRecording(ctx context.Context, chatID int64) (*domain.Record, error)
	AppendMessage(ctx context.Context, chatID int64, messageID int) (int64, error)
	SealRecord(ctx context.Context, chatID int64) (*domain.Record, error)
	Retrieve(ctx context.Context, requesterChatID int64, target domain.Target, enforceSlug bool) (relay.RetrieveResult, error)
}

type sender interface {
	SendText(ctx context.Context, chatID int64, text string) error
}

// Router dispatches incoming updates to the relay engine. Updates from the
// same chat are handled strictly one at a time; distinct chats proceed
// concurrently.
type Router struct {
	engine      engine
	sender      sender
	botUsername string
	log         *slog.Logger

	chatLocks sync.Map // chat id -> *sync.Mutex
}

// NewRouter creates a Router. botUsername is used to build share links and
// must not carry a leading "@".
func NewRouter(log *slog.Logger, engine engine, sender sender, botUsername string) *Router {
	return &Router{
		engine:      engine,
		sender:      sender,
		botUsername: botUsername,
		log:         log.With("component", "router"),
	}
}

// Run consumes the update channel until it closes or the context is canceled.
// Each update is handled on its own goroutine; the per-chat lock inside
// HandleUpdate provides the ordering guarantee.
func (r *Router) Run(ctx context.Context, updates <-chan tgbotapi.Update) {
	for {
		select {
		case <-ctx.Done():
			return
		case upd, ok := <-updates:
			if !ok {
				return
			}
			go func() {
				if err := r.HandleUpdate(ctx, upd); err != nil {
					r.log.ErrorContext(ctx, "update failed",
						slog.Int("update_id", upd.UpdateID),
						slog.Any("error", err),
					)
				}
			}()
		}
	}
}

// chatLock returns the mutex serializing updates for a chat.
func (r *Router) chatLock(chatID int64) *sync.Mutex {
	mu, _ := r.chatLocks.LoadOrStore(chatID, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// HandleUpdate routes a single update. Updates without a message are ignored.
func (r *Router) HandleUpdate(ctx context.Context, upd tgbotapi.Update) error {
	msg := upd.Message
	if msg == nil || msg.Chat == nil {
		return nil
	}
	chatID := msg.Chat.ID

	ctx = ctxutil.WithUpdateID(ctx, upd.UpdateID)
	ctx = ctxutil.WithChatID(ctx, chatID)

	mu := r.chatLock(chatID)
	mu.Lock()
	defer mu.Unlock()

	if msg.IsCommand() {
		return r.handleCommand(ctx, chatID, msg)
	}

	return r.handleContent(ctx, chatID, msg)
}

func (r *Router) handleCommand(ctx context.Context, chatID int64, msg *tgbotapi.Message) error {
	switch strings.ToLower(msg.Command()) {
	case "start":
		return r.handleStart(ctx, chatID, msg.CommandArguments())
	case "help":
		return r.sender.SendText(ctx, chatID, helpText)
	case "new_record":
		return r.handleNewRecord(ctx, chatID)
	case "get_record":
		return r.handleGetRecord(ctx, chatID, msg.CommandArguments())
	case "end_record":
		return r.handleEndRecord(ctx, chatID)
	default:
		// Unknown commands are dropped, same as any other malformed input.
		r.log.DebugContext(ctx, "unknown command ignored",
			slog.Int64("chat_id", chatID),
			slog.String("command", msg.Command()),
		)
		return nil
	}
}

// handleStart greets the user, unless the start payload carries a record
// reference, in which case the referenced record is delivered instead.
func (r *Router) handleStart(ctx context.Context, chatID int64, arg string) error {
	target, ok := deeplink.Decode(strings.TrimSpace(arg))
	if !ok {
		return r.sender.SendText(ctx, chatID, welcomeText)
	}

	return r.deliver(ctx, chatID, target, true)
}

func (r *Router) handleNewRecord(ctx context.Context, chatID int64) error {
	_, err := r.engine.StartRecording(ctx, chatID)
	if errors.Is(err, domain.ErrConflict) {
		return r.sender.SendText(ctx, chatID, alreadyRecordingText)
	}
	if err != nil {
		r.notifyFailure(ctx, chatID, failureText)
		return fmt.Errorf("start recording: %w", err)
	}

	return r.sender.SendText(ctx, chatID, recordingStartedText)
}

func (r *Router) handleGetRecord(ctx context.Context, chatID int64, arg string) error {
	id, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 64)
	if err != nil || id < 0 {
		r.log.DebugContext(ctx, "malformed get_record argument ignored",
			slog.Int64("chat_id", chatID),
			slog.String("arg", arg),
		)
		return nil
	}

	return r.deliver(ctx, chatID, domain.Target{RecordID: id}, false)
}

func (r *Router) handleEndRecord(ctx context.Context, chatID int64) error {
	rec, err := r.engine.SealRecord(ctx, chatID)
	switch {
	case errors.Is(err, relay.ErrNotRecording):
		return r.sender.SendText(ctx, chatID, notRecordingText)
	case errors.Is(err, domain.ErrNotFound):
		return r.sender.SendText(ctx, chatID, recordGoneText)
	case err != nil:
		r.notifyFailure(ctx, chatID, failureText)
		return fmt.Errorf("seal record: %w", err)
	}

	link := deeplink.Link(r.botUsername, domain.Target{RecordID: rec.ID, Slug: rec.Slug})
	text := fmt.Sprintf(sealedTextFmt, rec.Count, link)
	if rec.Count == 0 {
		text += "\n" + emptyRecordHintText
	}

	return r.sender.SendText(ctx, chatID, text)
}

// handleContent appends a non-command message to the chat's open record.
func (r *Router) handleContent(ctx context.Context, chatID int64, msg *tgbotapi.Message) error {
	count, err := r.engine.AppendMessage(ctx, chatID, msg.MessageID)
	switch {
	case errors.Is(err, relay.ErrNotRecording):
		return r.sender.SendText(ctx, chatID, notRecordingText)
	case errors.Is(err, domain.ErrNotFound):
		return r.sender.SendText(ctx, chatID, recordGoneText)
	case err != nil:
		r.notifyFailure(ctx, chatID, failureText)
		return fmt.Errorf("append message: %w", err)
	}

	return r.sender.SendText(ctx, chatID, fmt.Sprintf(appendedTextFmt, count))
}

// deliver fetches a record, copies its messages to the requester and closes
// with the total count. Absent, unsealed and mismatched records all read as
// "not found".
func (r *Router) deliver(ctx context.Context, chatID int64, target domain.Target, enforceSlug bool) error {
	result, err := r.engine.Retrieve(ctx, chatID, target, enforceSlug)
	if errors.Is(err, domain.ErrNotFound) {
		return r.sender.SendText(ctx, chatID, recordNotFoundText)
	}
	if err != nil {
		// Partial deliveries stay delivered; there is nothing sensible to
		// roll back on a transport failure. Tell the requester how far we
		// got before surfacing the error.
		text := failureText
		if result.Count > 0 {
			text = fmt.Sprintf(partialDeliveryTextFmt, result.Delivered, result.Count)
		}
		r.notifyFailure(ctx, chatID, text)
		return fmt.Errorf("retrieve record %d (delivered %d of %d): %w",
			target.RecordID, result.Delivered, result.Count, err)
	}

	return r.sender.SendText(ctx, chatID, fmt.Sprintf(deliveredTextFmt, result.Count))
}

// notifyFailure tells the chat its request failed. Best effort: the primary
// error is already on its way to the caller.
func (r *Router) notifyFailure(ctx context.Context, chatID int64, text string) {
	if err := r.sender.SendText(ctx, chatID, text); err != nil {
		r.log.WarnContext(ctx, "failed to notify chat about failure",
			slog.Int64("chat_id", chatID),
			slog.Any("error", err),
		)
	}
}
