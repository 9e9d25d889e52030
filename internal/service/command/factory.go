package command

import (
	"github.com/sandevgo/reachout/internal/core"
)

func NewCommands(svc core.OutreachService, manual *ManualStore) []core.Command {
	return []core.Command{
		NewSearchCommand(svc),
		NewGenerateCommand(svc, manual),
		NewManualCommand(manual),
		NewHistoryCommand(svc),
		NewShowCommand(svc),
		NewUsageCommand(svc),
		NewResetCommand(svc, manual),
	}
}

// NewRouter builds the router with every command, /help included.
func NewRouter(svc core.OutreachService) *Router {
	r := New(NewCommands(svc, NewManualStore()))
	r.Register(NewHelpCommand(r))
	return r
}
