package command

import "strings"

// Opcode identifies a plotter instruction by its two-letter mnemonic.
type Opcode int

const (
	// Unknown is any mnemonic outside the recognized set.
	Unknown Opcode = iota
	// PenUp lifts the pen (PU).
	PenUp
	// PenDown lowers the pen (PD).
	PenDown
	// AbsoluteMove moves to absolute coordinates (PA).
	AbsoluteMove
	// RelativeMove moves by coordinate deltas (PR).
	RelativeMove
	// Label draws text (LB). Its arguments are never coordinates.
	Label
)

var mnemonics = map[string]Opcode{
	"PU": PenUp,
	"PD": PenDown,
	"PA": AbsoluteMove,
	"PR": RelativeMove,
	"LB": Label,
}

// LookupOpcode maps a two-letter mnemonic to its opcode. Matching is
// case-insensitive; anything else is Unknown.
func LookupOpcode(mnemonic string) Opcode {
	if len(mnemonic) != 2 {
		return Unknown
	}
	if op, ok := mnemonics[strings.ToUpper(mnemonic)]; ok {
		return op
	}
	return Unknown
}

// String returns a readable name for the opcode.
func (o Opcode) String() string {
	switch o {
	case PenUp:
		return "PenUp"
	case PenDown:
		return "PenDown"
	case AbsoluteMove:
		return "AbsoluteMove"
	case RelativeMove:
		return "RelativeMove"
	case Label:
		return "Label"
	default:
		return "Unknown"
	}
}

// Mnemonic returns the two-letter command name, or "" for Unknown.
func (o Opcode) Mnemonic() string {
	switch o {
	case PenUp:
		return "PU"
	case PenDown:
		return "PD"
	case AbsoluteMove:
		return "PA"
	case RelativeMove:
		return "PR"
	case Label:
		return "LB"
	default:
		return ""
	}
}

// Motion reports whether the opcode moves the pen and therefore reaches
// the coordinate state machine.
func (o Opcode) Motion() bool {
	switch o {
	case PenUp, PenDown, AbsoluteMove, RelativeMove:
		return true
	default:
		return false
	}
}

// isLetter checks if a byte is an ASCII letter
func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
