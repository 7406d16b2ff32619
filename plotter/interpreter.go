package plotter

import (
	"errors"
	"fmt"
	"iter"

	"github.com/tsawler/hpgl/command"
	"github.com/tsawler/hpgl/model"
)

// ErrEmptyInput is returned when a stream draws nothing
var ErrEmptyInput = errors.New("plotter: no drawable geometry in input")

// Option configures a Parse call
type Option func(*config)

type config struct {
	precision command.Precision
	onSkip    func(command.Skip)
}

// WithPrecision selects integer or decimal arguments. Integer is the
// default.
func WithPrecision(p command.Precision) Option {
	return func(c *config) {
		c.precision = p
	}
}

// WithSkipHandler registers fn to be called for every dropped command,
// in stream order, as parsing proceeds.
func WithSkipHandler(fn func(command.Skip)) Option {
	return func(c *config) {
		c.onSkip = fn
	}
}

// Parse interprets a command stream and returns the drawing it
// describes along with every dropped command. Dropped commands never
// fail the parse; ErrEmptyInput is returned when no motion command is
// found or no point is recorded.
func Parse(text string, opts ...Option) (*model.Drawing, []command.Skip, error) {
	cfg := config{precision: command.Integer}
	for _, opt := range opts {
		opt(&cfg)
	}

	var skips []command.Skip
	tz := command.NewTokenizer(cfg.precision)
	tz.OnSkip = func(s command.Skip) {
		skips = append(skips, s)
		if cfg.onSkip != nil {
			cfg.onSkip(s)
		}
	}

	state := NewParserState()
	n := Run(state, tz.Tokens(text))
	if n == 0 {
		return nil, skips, fmt.Errorf("%w: no motion commands", ErrEmptyInput)
	}

	d := model.NewDrawing(state.Assembler().Finish()...)
	if d.Empty() {
		return nil, skips, fmt.Errorf("%w: %d commands recorded no points", ErrEmptyInput, n)
	}
	return d, skips, nil
}

// Run feeds tokens through the state machine and returns how many were
// interpreted. Recorded points accumulate in the state's assembler; the
// current path is left open so that Run can be called again to continue
// the same stream.
func Run(state *ParserState, tokens iter.Seq[command.Token]) int {
	n := 0
	for tok := range tokens {
		Step(state, tok)
		n++
	}
	return n
}

// Step applies a single token to the state.
func Step(state *ParserState, tok command.Token) {
	switch tok.Op {
	case command.AbsoluteMove:
		state.Mode = Absolute
		for i := range tok.Pairs() {
			state.move(tok.Pair(i))
		}

	case command.RelativeMove:
		state.Mode = Relative
		for i := range tok.Pairs() {
			state.move(tok.Pair(i))
		}

	case command.PenUp:
		state.PenDown = false
		state.paths.Close()
		for i := range tok.Pairs() {
			state.advance(tok.Pair(i))
		}

	case command.PenDown:
		state.PenDown = true
		for i := range tok.Pairs() {
			state.paths.Append(state.advance(tok.Pair(i)))
		}

	case command.Label, command.Unknown:
		// never produced by the tokenizer; state unchanged
	}
}
