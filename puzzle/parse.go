// Package puzzle parses the textual puzzle format, one instance per line:
//
//	[.##.] (3) (1,3) (2) (2,3) (0,2) (0,1) {3,5,4,7}
//
// Each (...) group lists the positions one button covers, the single {...}
// group is the target vector, and an optional [...] indicator block is
// skipped. Groups are separated by whitespace and may appear in any order.
package puzzle

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Sentinel errors for malformed lines. Returned errors wrap one of these
// with the offending column and token; match with errors.Is.
var (
	// ErrUnbalanced indicates an opening bracket without its closing partner.
	ErrUnbalanced = errors.New("puzzle: unbalanced bracket")

	// ErrBadInteger indicates a list element that is not a decimal integer.
	ErrBadInteger = errors.New("puzzle: bad integer")

	// ErrMissingTarget indicates a line without a {...} target group.
	ErrMissingTarget = errors.New("puzzle: missing target")

	// ErrDuplicateTarget indicates more than one {...} group on a line.
	ErrDuplicateTarget = errors.New("puzzle: duplicate target")

	// ErrUnexpectedToken indicates text outside any recognised group.
	ErrUnexpectedToken = errors.New("puzzle: unexpected token")
)

// IsParseError reports whether err came from ParseLine.
func IsParseError(err error) bool {
	for _, target := range []error{ErrUnbalanced, ErrBadInteger, ErrMissingTarget, ErrDuplicateTarget, ErrUnexpectedToken} {
		if errors.Is(err, target) {
			return true
		}
	}

	return false
}

// Instance is one parsed puzzle: button coverage lists and the target.
// Values are taken as written; range checks belong to system.Build.
type Instance struct {
	Buttons [][]int
	Target  []int
}

// Line is one non-blank input line with its parse outcome.
type Line struct {
	Number   int // 1-based among non-blank lines
	Text     string
	Instance Instance
	Err      error
}

// ParseLine parses a single puzzle line.
func ParseLine(s string) (Instance, error) {
	var (
		inst      Instance
		hasTarget bool
		i         int
	)
	for i < len(s) {
		c := s[i]
		switch {
		case c == ' ' || c == '\t' || c == '\r':
			i++

		case c == '[':
			end := strings.IndexByte(s[i:], ']')
			if end < 0 {
				return Instance{}, errors.Wrapf(ErrUnbalanced, "column %d: %q", i+1, s[i:])
			}
			i += end + 1

		case c == '(' || c == '{':
			closer := byte(')')
			if c == '{' {
				closer = '}'
			}
			end := strings.IndexByte(s[i:], closer)
			if end < 0 {
				return Instance{}, errors.Wrapf(ErrUnbalanced, "column %d: %q", i+1, s[i:])
			}
			vals, err := parseList(s[i+1:i+end], i+2)
			if err != nil {
				return Instance{}, err
			}
			if c == '(' {
				inst.Buttons = append(inst.Buttons, vals)
			} else {
				if hasTarget {
					return Instance{}, errors.Wrapf(ErrDuplicateTarget, "column %d", i+1)
				}
				hasTarget = true
				inst.Target = vals
			}
			i += end + 1

		default:
			j := i
			for j < len(s) && s[j] != ' ' && s[j] != '\t' {
				j++
			}

			return Instance{}, errors.Wrapf(ErrUnexpectedToken, "column %d: %q", i+1, s[i:j])
		}
	}
	if !hasTarget {
		return Instance{}, errors.WithStack(ErrMissingTarget)
	}
	if inst.Target == nil {
		inst.Target = []int{}
	}

	return inst, nil
}

// parseList reads "a, b, c"; an all-blank body is the empty list.
// col is the 1-based column of body[0], used in error messages.
func parseList(body string, col int) ([]int, error) {
	out := []int{}
	if strings.TrimSpace(body) == "" {
		return out, nil
	}
	for _, field := range strings.Split(body, ",") {
		tok := strings.TrimSpace(field)
		v, err := strconv.Atoi(tok)
		if err != nil {
			return nil, errors.Wrapf(ErrBadInteger, "column %d: %q", col, tok)
		}
		out = append(out, v)
		col += len(field) + 1
	}

	return out, nil
}

// ParseReader splits r into non-blank lines and parses each one.
//
// A malformed line only sets its own Line.Err; the returned error is
// reserved for read failures.
func ParseReader(r io.Reader) ([]Line, error) {
	var (
		out     []Line
		number  int
		scanner = bufio.NewScanner(r)
	)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<24)
	for scanner.Scan() {
		text := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(text) == "" {
			continue
		}
		number++
		inst, err := ParseLine(text)
		out = append(out, Line{Number: number, Text: text, Instance: inst, Err: err})
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "puzzle: read input")
	}

	return out, nil
}
