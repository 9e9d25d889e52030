package command

import (
	"strings"

	"github.com/sandevgo/reachout/internal/core"
)

// splitArgs rejoins the argument words and splits them on '|'.
func splitArgs(args []string) []string {
	parts := strings.Split(strings.Join(args, " "), "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}

// parsePerson reads "name [| company [| designation]]".
func parsePerson(args []string) (core.Person, error) {
	parts := splitArgs(args)
	p := core.Person{Name: parts[0]}
	if len(parts) > 1 {
		p.Company = parts[1]
	}
	if len(parts) > 2 {
		p.Designation = parts[2]
	}
	if p.Name == "" {
		return p, core.ErrEmptyPerson
	}
	return p, nil
}
