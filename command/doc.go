// Package command tokenizes plotter command streams.
//
// A stream is a sequence of commands terminated by ';'. Each command
// starts with a two-letter mnemonic followed by comma-separated signed
// numbers:
//
//	IN;SP1;PU0,0;PD100,0,100,100;PU;
//
// Whitespace anywhere in the stream is ignored. Only the motion commands
// reach the caller:
//
//   - PU - pen up, optional coordinates
//   - PD - pen down, optional coordinates
//   - PA - absolute move
//   - PR - relative move
//
// Label commands (LB) are recognized so that their text is never read
// as coordinates, then dropped. Every other command is dropped as well.
// Dropped commands are reported through [Tokenizer.OnSkip] rather than
// as errors.
//
// # Usage
//
//	t := command.NewTokenizer(command.Integer)
//	for tok := range t.Tokens(stream) {
//	    fmt.Println(tok.Op, tok.Args)
//	}
//
// The sequence returned by [Tokenizer.Tokens] is lazy and can be ranged
// over any number of times; each pass starts from the beginning.
package command
