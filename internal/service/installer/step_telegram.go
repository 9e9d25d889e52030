package installer

import (
	"fmt"
	"strconv"
	"strings"
)

func telegramNotSelected(state *InstallState) bool {
	return state.Channel != ChannelTelegram
}

func NewTelegramTokenStep() Step {
	return newInputStep("your Telegram bot token", "123456789:ABCDEF...", func(state *InstallState, val string) error {
		if !strings.Contains(val, ":") {
			return fmt.Errorf("a bot token looks like 123456789:ABCDEF")
		}
		state.Telegram.Token = val
		return nil
	}, secret(), skipWhen(telegramNotSelected))
}

// NewTelegramOwnerStep asks for the only user the bot answers to.
func NewTelegramOwnerStep() Step {
	return newInputStep("your Telegram user ID", "123456789", func(state *InstallState, val string) error {
		id, err := strconv.ParseInt(val, 10, 64)
		if err != nil || id <= 0 {
			return fmt.Errorf("%q is not a Telegram user ID", val)
		}
		state.Telegram.OwnerID = id
		return nil
	}, skipWhen(telegramNotSelected))
}
