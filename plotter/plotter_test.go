package plotter

import (
	"errors"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/tsawler/hpgl/command"
	"github.com/tsawler/hpgl/model"
)

// ============================================================================
// Assembler Tests
// ============================================================================

func TestAssembler(t *testing.T) {
	a := NewAssembler()
	a.Close() // closing nothing is a no-op
	if a.Len() != 0 || a.Open() {
		t.Fatal("expected empty assembler")
	}

	a.Append(model.Pt(1, 1))
	a.Append(model.Pt(2, 2))
	if !a.Open() {
		t.Error("expected open path after Append")
	}
	a.Begin(model.Pt(5, 5))
	a.Close()
	a.Close()

	want := []model.Path{
		{model.Pt(1, 1), model.Pt(2, 2)},
		{model.Pt(5, 5)},
	}
	if diff := cmp.Diff(want, a.Finish()); diff != "" {
		t.Errorf("Finish() mismatch (-want +got):\n%s", diff)
	}
	if got := a.Finish(); len(got) != 0 {
		t.Errorf("second Finish() = %v, want empty", got)
	}
}

// ============================================================================
// State Machine Tests
// ============================================================================

func tokens(t *testing.T, text string) []command.Token {
	t.Helper()
	toks, _ := command.Tokenize(text, command.Integer)
	return toks
}

func TestStepPenUpArgumentsMoveOnly(t *testing.T) {
	s := NewParserState()
	for _, tok := range tokens(t, "PU30,40;") {
		Step(s, tok)
	}
	if s.Position != model.Pt(30, 40) {
		t.Errorf("Position = %v, want (30, 40)", s.Position)
	}
	if s.PenDown {
		t.Error("expected pen up")
	}
	if s.Assembler().Open() || s.Assembler().Len() != 0 {
		t.Error("pen-up arguments must not record points")
	}
}

func TestStepModeChanges(t *testing.T) {
	s := NewParserState()
	steps := []struct {
		cmd     string
		pos     model.Point
		mode    CoordinateMode
		penDown bool
	}{
		{"PA100,100", model.Pt(100, 100), Absolute, false},
		{"PR10,0", model.Pt(110, 100), Relative, false},
		{"PD5,5", model.Pt(115, 105), Relative, true},
		{"PA0,0", model.Pt(0, 0), Absolute, true},
		{"PU1,1", model.Pt(1, 1), Absolute, false},
	}

	for _, st := range steps {
		toks := tokens(t, st.cmd)
		if len(toks) != 1 {
			t.Fatalf("%s: expected one token, got %d", st.cmd, len(toks))
		}
		Step(s, toks[0])
		if s.Position != st.pos || s.Mode != st.mode || s.PenDown != st.penDown {
			t.Errorf("after %s: state = %s, want pos=%v mode=%s pen down=%v",
				st.cmd, s, st.pos, st.mode, st.penDown)
		}
	}
}

func TestRunIgnoresNonMotionTokens(t *testing.T) {
	s := NewParserState()
	seq := func(yield func(command.Token) bool) {
		for _, tok := range []command.Token{
			{Op: command.Label, Args: []float64{9, 9}},
			{Op: command.Unknown, Args: []float64{7, 7}},
		} {
			if !yield(tok) {
				return
			}
		}
	}
	if n := Run(s, seq); n != 2 {
		t.Errorf("Run() = %d, want 2", n)
	}
	if s.Position != model.Pt(0, 0) || s.PenDown || s.Mode != Absolute {
		t.Errorf("state changed: %s", s)
	}
}

// ============================================================================
// Parse Tests
// ============================================================================

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []model.Path
	}{
		{
			name:  "pen down after pen up",
			input: "PU0,0;PD10,0,10,10;PU;",
			want:  []model.Path{{model.Pt(10, 0), model.Pt(10, 10)}},
		},
		{
			name:  "unknown opcode skipped",
			input: "ZZ1,2;PD5,5;",
			want:  []model.Path{{model.Pt(5, 5)}},
		},
		{
			name:  "absolute moves with pen down",
			input: "PD;PA0,0,100,0,100,100;PU;",
			want:  []model.Path{{model.Pt(0, 0), model.Pt(100, 0), model.Pt(100, 100)}},
		},
		{
			name:  "pen-up move starts a new path",
			input: "PU;PA10,10;PD;PA20,10;PU;PA50,50;PD;PA60,60;",
			want: []model.Path{
				{model.Pt(10, 10), model.Pt(20, 10)},
				{model.Pt(50, 50), model.Pt(60, 60)},
			},
		},
		{
			name:  "relative deltas accumulate",
			input: "PA100,100;PD;PR10,0,0,10,-10,0,0,-10;PU;",
			want: []model.Path{{
				model.Pt(100, 100),
				model.Pt(110, 100), model.Pt(110, 110),
				model.Pt(100, 110), model.Pt(100, 100),
			}},
		},
		{
			name:  "mode carries into pen-down arguments",
			input: "PR;PU50,50;PD10,0,0,10;",
			want:  []model.Path{{model.Pt(60, 50), model.Pt(60, 60)}},
		},
		{
			name:  "label text is not geometry",
			input: "PU0,0;LB12,34\x03;PD1,1;",
			want:  []model.Path{{model.Pt(1, 1)}},
		},
		{
			name:  "odd argument dropped",
			input: "PD1,1,2;PD3,3;",
			want:  []model.Path{{model.Pt(1, 1), model.Pt(3, 3)}},
		},
		{
			name:  "whitespace and newlines",
			input: "PU 0 , 0 ;\nPD 4,0 ,\n4,4 ;\r\n",
			want:  []model.Path{{model.Pt(4, 0), model.Pt(4, 4)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, err := Parse(tt.input)
			if err != nil {
				t.Fatalf("Parse() failed: %v", err)
			}
			if diff := cmp.Diff(tt.want, d.Paths); diff != "" {
				t.Errorf("paths mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseNoTrailingEmptyPath(t *testing.T) {
	d, _, err := Parse("PD1,1,2,2;PU;PU;PU5,5;")
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if d.PathCount() != 1 {
		t.Fatalf("PathCount() = %d, want 1", d.PathCount())
	}
	for i, p := range d.Paths {
		if len(p) == 0 {
			t.Errorf("path %d is empty", i)
		}
	}
}

func TestParseEmptyInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"empty string", ""},
		{"whitespace", " \n\t"},
		{"only unknown commands", "IN;SP1;"},
		{"pen-up only", "PU0,0;PU10,10;"},
		{"pen down without coordinates", "PD;PU;"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, _, err := Parse(tt.input)
			if !errors.Is(err, ErrEmptyInput) {
				t.Errorf("Parse(%q) error = %v, want ErrEmptyInput", tt.input, err)
			}
			if d != nil {
				t.Errorf("Parse(%q) returned drawing %v, want nil", tt.input, d)
			}
		})
	}
}

func TestParseSkips(t *testing.T) {
	var seen []command.Skip
	_, skips, err := Parse("IN;ZZ1,2;PD5,5,6;", WithSkipHandler(func(s command.Skip) {
		seen = append(seen, s)
	}))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if len(skips) != 3 {
		t.Fatalf("expected 3 skips, got %v", skips)
	}
	if diff := cmp.Diff(skips, seen); diff != "" {
		t.Errorf("handler saw different skips (-returned +seen):\n%s", diff)
	}
	if skips[2].Reason != command.OddArgument {
		t.Errorf("last skip reason = %v, want OddArgument", skips[2].Reason)
	}
}

func TestParsePrecision(t *testing.T) {
	input := "PD0.5,1.5,2.25,-3;"

	if _, _, err := Parse(input); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("integer precision: error = %v, want ErrEmptyInput", err)
	}

	d, _, err := Parse(input, WithPrecision(command.Float))
	if err != nil {
		t.Fatalf("float precision: Parse() failed: %v", err)
	}
	want := []model.Path{{model.Pt(0.5, 1.5), model.Pt(2.25, -3)}}
	if diff := cmp.Diff(want, d.Paths); diff != "" {
		t.Errorf("paths mismatch (-want +got):\n%s", diff)
	}
}

func TestParseConcurrent(t *testing.T) {
	inputs := []string{
		"PU0,0;PD10,0,10,10;PU;",
		"PA100,100;PD;PR10,0,0,10;PU;",
		"PD1,1,2,2,3,3;",
	}
	want := make([]int, len(inputs))
	for i, in := range inputs {
		d, _, err := Parse(in)
		if err != nil {
			t.Fatalf("Parse(%q) failed: %v", in, err)
		}
		want[i] = d.PointCount()
	}

	var wg sync.WaitGroup
	for range 8 {
		for i, in := range inputs {
			wg.Add(1)
			go func() {
				defer wg.Done()
				d, _, err := Parse(in)
				if err != nil {
					t.Errorf("Parse(%q) failed: %v", in, err)
					return
				}
				if d.PointCount() != want[i] {
					t.Errorf("Parse(%q) PointCount() = %d, want %d", in, d.PointCount(), want[i])
				}
			}()
		}
	}
	wg.Wait()
}
