package output

import (
	"fmt"
	"strings"
)

// CommandHints maps command names to related commands users might want to run next
var CommandHints = map[string][]string{
	"login":              {"home", "session show"},
	"register":           {"login"},
	"logout":             {"login"},
	"session check":      {"session refresh", "home"},
	"session refresh":    {"session show"},
	"home":               {"org create", "partnership create"},
	"org list":           {"org create", "partnership list"},
	"org create":         {"partnership create"},
	"partnership list":   {"partnership create", "org list"},
	"partnership create": {"home"},
}

// PrintHints prints "See also" hints for a command. No-op in quiet mode or if command has no hints.
func (p *Printer) PrintHints(command string) {
	if p.quiet {
		return
	}
	hints, ok := CommandHints[command]
	if !ok || len(hints) == 0 {
		return
	}

	cmds := make([]string, len(hints))
	for i, h := range hints {
		cmds[i] = "oclctl " + h
	}
	fmt.Fprintf(p.out, "\nSee also: %s\n", strings.Join(cmds, ", "))
}
