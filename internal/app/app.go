// Package app wires configuration, storage, the relay service and the
// Telegram transport into a running bot.
package app

import (
	"context"
	"fmt"
	"log/slog"

	sessionstore "github.com/heartmarshall/relaybot/internal/adapter/pebble/session"
	"github.com/heartmarshall/relaybot/internal/adapter/postgres"
	recordrepo "github.com/heartmarshall/relaybot/internal/adapter/postgres/record"
	"github.com/heartmarshall/relaybot/internal/config"
	"github.com/heartmarshall/relaybot/internal/service/relay"
	"github.com/heartmarshall/relaybot/internal/transport/telegram"
)

// Run is the application entry point. It blocks until the context is
// canceled or startup fails.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	sessions, err := sessionstore.Open(cfg.Sessions.Path)
	if err != nil {
		return fmt.Errorf("open session store: %w", err)
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			logger.Error("close session store", slog.Any("error", err))
		}
	}()

	client, err := telegram.NewClient(cfg.Telegram.Token, logger)
	if err != nil {
		return fmt.Errorf("create telegram client: %w", err)
	}

	if client.Username() != cfg.Telegram.BotUsername {
		logger.Warn("configured bot username differs from the Bot API identity",
			slog.String("configured", cfg.Telegram.BotUsername),
			slog.String("actual", client.Username()),
		)
	}

	records := recordrepo.New(pool)
	service := relay.NewService(logger, records, sessions, client)
	router := telegram.NewRouter(logger, service, client, cfg.Telegram.BotUsername)

	notifyAdmin(ctx, logger, client, cfg.Telegram.AdminChatID)

	logger.Info("bot is up", slog.String("username", client.Username()))

	router.Run(ctx, client.Updates(ctx))

	logger.Info("shutting down")
	return nil
}

// notifyAdmin pings the admin chat on startup. Failures are logged and
// otherwise ignored; an unreachable admin must not keep the bot down.
func notifyAdmin(ctx context.Context, logger *slog.Logger, client *telegram.Client, adminChatID int64) {
	if adminChatID == 0 {
		return
	}

	text := fmt.Sprintf("Bot started, version %s", BuildVersion())
	if err := client.SendText(ctx, adminChatID, text); err != nil {
		logger.Warn("failed to notify admin",
			slog.Int64("admin_chat_id", adminChatID),
			slog.Any("error", err),
		)
	}
}
