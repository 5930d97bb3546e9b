package vector

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line; high-dimensional vectors easily
// exceed bufio.Scanner's 64 KiB default.
const maxLineBytes = 16 << 20

// ParseOptions controls how ReadVectors treats malformed tokens.
type ParseOptions struct {
	// Strict makes any token that is not entirely a number a fatal *ParseError.
	Strict bool
	// OnWarning, if set, is called for every line that was cut short in lenient mode.
	OnWarning func(line int, msg string)
}

// ParseError reports a token that could not be read as a number.
type ParseError struct {
	Line  int
	Token string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: invalid number %q", e.Line, e.Token)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ParseLine tokenizes one line on whitespace and returns the values read.
//
// Only plain decimal literals are numbers: an optional sign, digits with an
// optional fraction, and an optional exponent. nan, inf, hex floats and
// out-of-range values are not. Reading stops at the first character that
// does not continue a number; if a token starts with a number, that leading
// value is kept ("1.5abc" yields 1.5). The returned *ParseError (with Line
// left zero) names the offending token and the values read so far are
// still returned.
func ParseLine(line string) (Vector, error) {
	fields := strings.Fields(line)
	out := make(Vector, 0, len(fields))
	for _, f := range fields {
		n := numberPrefix(f)
		if n == 0 {
			return out, &ParseError{Token: f, Err: strconv.ErrSyntax}
		}
		x, err := strconv.ParseFloat(f[:n], 64)
		if err != nil && (!errors.Is(err, strconv.ErrRange) || math.IsInf(x, 0)) {
			return out, &ParseError{Token: f, Err: err}
		}
		out = append(out, x)
		if n < len(f) {
			return out, &ParseError{Token: f, Err: strconv.ErrSyntax}
		}
	}
	return out, nil
}

// numberPrefix returns the length of the longest decimal floating-point
// literal at the start of s, or 0 if s does not start with one.
func numberPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	digits := 0
	for i < len(s) && isDigit(s[i]) {
		i++
		digits++
	}
	if i < len(s) && s[i] == '.' {
		i++
		for i < len(s) && isDigit(s[i]) {
			i++
			digits++
		}
	}
	if digits == 0 {
		return 0
	}
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if j < len(s) && isDigit(s[j]) {
			for j < len(s) && isDigit(s[j]) {
				j++
			}
			i = j
		}
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

// ReadVectors reads one vector per non-blank line from r.
//
// Blank lines and lines that yield no values are skipped. The result is not
// validated; call Validate before computing distances.
func ReadVectors(r io.Reader, opts ParseOptions) ([]Vector, error) {
	var out []Vector
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		v, err := ParseLine(line)
		if err != nil {
			var pe *ParseError
			if !errors.As(err, &pe) {
				return nil, err
			}
			pe.Line = lineNo
			if opts.Strict {
				return nil, pe
			}
			if opts.OnWarning != nil {
				opts.OnWarning(lineNo, fmt.Sprintf("stopped at invalid number %q, kept %d value(s)", pe.Token, len(v)))
			}
		}
		if len(v) == 0 {
			continue
		}
		out = append(out, v)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read input: %w", err)
	}
	return out, nil
}

// Validate checks that vs holds at least two vectors and that all of them
// share the dimension of the first.
func Validate(vs []Vector) error {
	if len(vs) < 2 {
		return ErrTooFewVectors
	}
	dim := vs[0].Dim()
	for i := 1; i < len(vs); i++ {
		if vs[i].Dim() != dim {
			return fmt.Errorf("%w: vector %d has %d values, vector 0 has %d", ErrDimensionMismatch, i, vs[i].Dim(), dim)
		}
	}
	return nil
}
