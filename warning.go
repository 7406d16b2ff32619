package hpgl

import (
	"fmt"
	"strings"

	"github.com/tsawler/hpgl/command"
)

// Warning describes a command that was skipped during parsing. Skipped
// commands never stop a conversion.
type Warning struct {
	// Offset is the byte offset of the command in the stream with
	// whitespace removed.
	Offset int
	// Command is the raw command text.
	Command string
	// Message says why the command was skipped.
	Message string
}

// String formats the warning on one line
func (w Warning) String() string {
	return fmt.Sprintf("offset %d: %s: %q", w.Offset, w.Message, w.Command)
}

func warningFromSkip(s command.Skip) Warning {
	return Warning{
		Offset:  s.Offset,
		Command: s.Raw,
		Message: s.Reason.String(),
	}
}

// FormatWarnings returns the warnings one per line.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
