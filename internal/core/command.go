package core

import "context"

// CmdRouter dispatches slash commands (/search, /generate, /manual, /history,
// /show, /usage, /reset, /help) typed in the REPL or sent to the Telegram bot.
type CmdRouter interface {
	// Execute runs input when it starts with "/". The reply is Markdown and ok
	// is false for input that is not a command. sessionID scopes per-chat state
	// such as content set with /manual.
	Execute(ctx context.Context, sessionID, input string) (reply string, ok bool)
	// ListCommands returns the registered commands sorted by name.
	ListCommands() []Command
}

// Command is one slash command. Args are the whitespace-separated words after
// the command name; person arguments are joined back and split on "|".
type Command interface {
	Name() string
	Description() string
	Execute(ctx context.Context, sessionID string, args []string) (string, error)
}
