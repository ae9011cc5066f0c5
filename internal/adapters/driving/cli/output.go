package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/kith-cli/internal/core/domain"
)

// timestampLayout formats created/updated times.
const timestampLayout = "2006-01-02 15:04:05"

// stdinIsTerminal is replaced in tests.
var stdinIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// printCheckIns writes one line per check-in with the contact's name.
func printCheckIns(ctx context.Context, cmd *cobra.Command, checkIns []domain.CheckIn) {
	names := make(map[domain.ContactID]string)
	for i := range checkIns {
		c := checkIns[i]
		cmd.Printf("  %s  %-10s %-20s %s\n",
			c.ScheduledDate().Time().Format(domain.DateLayout),
			c.Status(), lookupContactName(ctx, names, c.ContactID()), c.ID())
		if c.IsCompleted() {
			cmd.Printf("      completed %s", c.CompletionDate().Time().Format(domain.DateLayout))
			if !c.Notes().IsEmpty() {
				cmd.Printf(": %s", c.Notes())
			}
			cmd.Println()
		}
	}
}

func lookupContactName(ctx context.Context, cache map[domain.ContactID]string, id domain.ContactID) string {
	if name, ok := cache[id]; ok {
		return name
	}
	name := id.String()
	if contactService != nil {
		if contact, err := contactService.Get(ctx, id); err == nil {
			name = contact.Name
		}
	}
	cache[id] = name
	return name
}

// confirm asks a yes/no question on an interactive terminal. Without a
// terminal it refuses, so scripts must pass --yes.
func confirm(cmd *cobra.Command, question string) (bool, error) {
	if !stdinIsTerminal() {
		return false, errors.New("refusing to continue without --yes: stdin is not a terminal")
	}
	cmd.Printf("%s [y/N]: ", question)
	return readYes(cmd.InOrStdin()), nil
}

func readYes(r io.Reader) bool {
	line, _ := bufio.NewReader(r).ReadString('\n')
	switch strings.ToLower(strings.TrimSpace(line)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
