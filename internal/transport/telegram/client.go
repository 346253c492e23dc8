// Package telegram is the bot transport: a thin client over the Bot API and a
// router that turns incoming updates into relay service calls.
package telegram

import (
	"context"
	"fmt"
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

const updateTimeoutSeconds = 30

// Client wraps the Telegram Bot API with the small surface the rest of the
// application needs. The underlying library is not context-aware, so each
// method checks the context before issuing the request.
type Client struct {
	api *tgbotapi.BotAPI
	log *slog.Logger
}

// NewClient authenticates against the Bot API with the given token.
func NewClient(token string, log *slog.Logger) (*Client, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("authenticate bot: %w", err)
	}

	return &Client{
		api: api,
		log: log.With("component", "telegram"),
	}, nil
}

// Username returns the bot's username as reported by the Bot API,
// without the leading "@".
func (c *Client) Username() string {
	return c.api.Self.UserName
}

// SendText sends a plain text message to a chat.
func (c *Client) SendText(ctx context.Context, chatID int64, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := c.api.Send(tgbotapi.NewMessage(chatID, text)); err != nil {
		return fmt.Errorf("send message to chat %d: %w", chatID, err)
	}

	return nil
}

// CopyMessage copies a single message into another chat. Unlike forwarding,
// the copy carries no link back to the source chat.
func (c *Client) CopyMessage(ctx context.Context, toChatID, fromChatID int64, messageID int) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if _, err := c.api.CopyMessage(tgbotapi.NewCopyMessage(toChatID, fromChatID, messageID)); err != nil {
		return fmt.Errorf("copy message %d from chat %d to chat %d: %w", messageID, fromChatID, toChatID, err)
	}

	return nil
}

// Updates starts long polling and returns the update channel. The channel is
// closed when the context is canceled.
func (c *Client) Updates(ctx context.Context) <-chan tgbotapi.Update {
	cfg := tgbotapi.NewUpdate(0)
	cfg.Timeout = updateTimeoutSeconds
	cfg.AllowedUpdates = []string{"message"}

	updates := c.api.GetUpdatesChan(cfg)

	go func() {
		<-ctx.Done()
		c.api.StopReceivingUpdates()
	}()

	return updates
}
