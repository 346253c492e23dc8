package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Telegram.Token) == "" {
		return fmt.Errorf("telegram.token must not be blank")
	}

	username := c.Telegram.BotUsername
	if strings.TrimSpace(username) == "" {
		return fmt.Errorf("telegram.bot_username must not be blank")
	}
	// Share links embed the username directly after t.me/, so it must be
	// stored bare.
	if strings.HasPrefix(username, "@") {
		return fmt.Errorf("telegram.bot_username must not start with %q (got %q)", "@", username)
	}

	if strings.TrimSpace(c.Sessions.Path) == "" {
		return fmt.Errorf("sessions.path must not be blank")
	}

	return nil
}
