// Command relaybot runs the record relay bot: long polling against the
// Telegram Bot API, PostgreSQL for records, an embedded Pebble database for
// per-chat session state.
package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/relaybot/internal/app"
)

func main() {
	// Local development keeps secrets in a .env file; in production the
	// variables come from the environment and the file is simply absent.
	_ = godotenv.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatalf("relaybot: %v", err)
	}
}
