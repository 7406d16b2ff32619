package command

import (
	"fmt"
	"iter"
	"strings"
	"unicode"
)

const (
	// Separator terminates every command in the stream.
	Separator = ';'
	// LabelTerminator ends the text of a label command (ETX).
	LabelTerminator = '\x03'
)

// Token is one recognized motion command with its numeric arguments.
type Token struct {
	Op     Opcode    // PenUp, PenDown, AbsoluteMove or RelativeMove
	Raw    string    // the command text without the separator
	Args   []float64 // always an even number of values
	Offset int       // byte offset of the command in the cleaned stream
}

// Pairs returns the number of (x, y) pairs carried by the token.
func (t Token) Pairs() int {
	return len(t.Args) / 2
}

// Pair returns the i-th (x, y) argument pair.
func (t Token) Pair(i int) (x, y float64) {
	return t.Args[2*i], t.Args[2*i+1]
}

// SkipReason classifies a recoverable anomaly in the stream.
type SkipReason int

const (
	// UnknownOpcode marks a command whose mnemonic is not recognized.
	UnknownOpcode SkipReason = iota
	// LabelDropped marks a label command; its text is never interpreted.
	LabelDropped
	// BadNumber marks a command whose arguments could not be parsed.
	BadNumber
	// OddArgument marks a command whose trailing unpaired value was dropped.
	OddArgument
)

// String returns a short description of the reason.
func (r SkipReason) String() string {
	switch r {
	case UnknownOpcode:
		return "unknown command"
	case LabelDropped:
		return "label dropped"
	case BadNumber:
		return "malformed arguments"
	case OddArgument:
		return "unpaired argument dropped"
	default:
		return "skipped"
	}
}

// Skip records a command, or part of one, that the tokenizer dropped.
type Skip struct {
	Offset int
	Raw    string
	Reason SkipReason
}

// String formats the skip for diagnostics.
func (s Skip) String() string {
	return fmt.Sprintf("offset %d: %s: %q", s.Offset, s.Reason, s.Raw)
}

// Clean removes every whitespace character from the stream. Whitespace
// and newlines carry no meaning in the command language.
func Clean(text string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, text)
}

// Tokenizer splits command streams into motion tokens.
type Tokenizer struct {
	// Precision selects integer or decimal arguments.
	Precision Precision

	// OnSkip, if non-nil, is called for every dropped command.
	OnSkip func(Skip)
}

// NewTokenizer creates a tokenizer reading arguments with precision p.
func NewTokenizer(p Precision) *Tokenizer {
	return &Tokenizer{Precision: p}
}

// Tokens returns the motion commands of text as a lazy sequence. Each
// iteration re-tokenizes the text from scratch.
func (t *Tokenizer) Tokens(text string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		s := &scanner{data: Clean(text)}
		for {
			seg, off, ok := s.next()
			if !ok {
				return
			}
			tok, ok := t.classify(s, seg, off)
			if !ok {
				continue
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// Tokenize collects the motion commands of text along with every skip.
func Tokenize(text string, p Precision) ([]Token, []Skip) {
	var skips []Skip
	t := &Tokenizer{
		Precision: p,
		OnSkip:    func(s Skip) { skips = append(skips, s) },
	}

	var tokens []Token
	for tok := range t.Tokens(text) {
		tokens = append(tokens, tok)
	}
	return tokens, skips
}

// classify turns a raw segment into a token. It returns false when the
// segment is dropped.
func (t *Tokenizer) classify(s *scanner, seg string, off int) (Token, bool) {
	if len(seg) < 2 || !isLetter(seg[0]) || !isLetter(seg[1]) {
		t.skip(Skip{Offset: off, Raw: seg, Reason: UnknownOpcode})
		return Token{}, false
	}

	op := LookupOpcode(seg[:2])
	switch op {
	case Unknown:
		t.skip(Skip{Offset: off, Raw: seg, Reason: UnknownOpcode})
		return Token{}, false
	case Label:
		raw := s.skipLabel(off, seg)
		t.skip(Skip{Offset: off, Raw: raw, Reason: LabelDropped})
		return Token{}, false
	}

	args, err := ParseArgs(seg[2:], t.Precision)
	if err != nil {
		t.skip(Skip{Offset: off, Raw: seg, Reason: BadNumber})
		return Token{}, false
	}
	if len(args)%2 != 0 {
		t.skip(Skip{Offset: off, Raw: seg, Reason: OddArgument})
		args = args[:len(args)-1]
	}

	return Token{Op: op, Raw: seg, Args: args, Offset: off}, true
}

func (t *Tokenizer) skip(s Skip) {
	if t.OnSkip != nil {
		t.OnSkip(s)
	}
}

// scanner walks the cleaned stream one command at a time.
type scanner struct {
	data string
	pos  int
}

// next returns the next non-empty segment up to a separator and its
// starting offset.
func (s *scanner) next() (string, int, bool) {
	for s.pos < len(s.data) {
		start := s.pos
		end := strings.IndexByte(s.data[start:], Separator)
		if end < 0 {
			s.pos = len(s.data)
			end = len(s.data)
		} else {
			end += start
			s.pos = end + 1
		}
		if end > start {
			return s.data[start:end], start, true
		}
	}
	return "", 0, false
}

// skipLabel moves past the text of a label starting at off. When a label
// terminator follows, the text runs up to it, separators included, and
// scanning resumes after it. Otherwise the label ends at the separator
// that already ended seg.
func (s *scanner) skipLabel(off int, seg string) string {
	end := strings.IndexByte(s.data[off:], LabelTerminator)
	if end < 0 {
		return seg
	}
	end += off
	s.pos = end + 1
	return s.data[off:end]
}
