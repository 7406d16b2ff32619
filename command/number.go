package command

import (
	"fmt"
	"strconv"
	"strings"
)

// Precision selects how numeric arguments are read. A single tokenizer
// uses one precision for the whole stream.
type Precision int

const (
	// Integer reads signed integer plotter units.
	Integer Precision = iota
	// Float reads signed decimal numbers.
	Float
)

// String returns the precision name.
func (p Precision) String() string {
	switch p {
	case Integer:
		return "integer"
	case Float:
		return "float"
	default:
		return "unknown"
	}
}

// ParsePrecision parses "integer"/"int" or "float"/"decimal".
func ParsePrecision(s string) (Precision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "integer", "int", "":
		return Integer, nil
	case "float", "decimal":
		return Float, nil
	default:
		return Integer, fmt.Errorf("unknown precision %q", s)
	}
}

// ParseArgs parses a comma-separated list of signed numbers. Empty
// fields are ignored, so "10,,20" equals "10,20". A field that is not a
// finite number of the requested precision fails the whole list.
func ParseArgs(s string, p Precision) ([]float64, error) {
	if s == "" {
		return nil, nil
	}

	fields := strings.Split(s, ",")
	args := make([]float64, 0, len(fields))
	for _, f := range fields {
		if f == "" {
			continue
		}
		v, err := parseNumber(f, p)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}
	return args, nil
}

// parseNumber parses a single argument.
func parseNumber(f string, p Precision) (float64, error) {
	if p == Integer {
		n, err := strconv.ParseInt(f, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid integer %q: %w", f, err)
		}
		return float64(n), nil
	}

	if !isDecimal(f) {
		return 0, fmt.Errorf("invalid number %q", f)
	}
	v, err := strconv.ParseFloat(f, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q: %w", f, err)
	}
	return v, nil
}

// isDecimal accepts an optional sign, digits and at most one decimal
// point. strconv.ParseFloat alone would also take exponents, hex and
// "Inf", none of which plotters emit.
func isDecimal(f string) bool {
	i := 0
	if i < len(f) && (f[i] == '+' || f[i] == '-') {
		i++
	}
	digits, dot := 0, false
	for ; i < len(f); i++ {
		c := f[i]
		switch {
		case c >= '0' && c <= '9':
			digits++
		case c == '.' && !dot:
			dot = true
		default:
			return false
		}
	}
	return digits > 0
}
