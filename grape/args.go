package grape

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMissingArg is returned when a positional argument is absent.
var ErrMissingArg = errors.New("grape: missing argument")

// ArgError reports an argument that could not be parsed.
type ArgError struct {
	Index int
	Value string
	Err   error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("grape: argument %d (%q): %v", e.Index, e.Value, e.Err)
}

func (e *ArgError) Unwrap() error {
	return e.Err
}

// Args is the positional argument vector passed to Init. Entries are raw
// bytes as received from the engine.
type Args [][]byte

// ArgsFromStrings converts command-line style arguments.
func ArgsFromStrings(ss ...string) Args {
	args := make(Args, len(ss))
	for i, s := range ss {
		args[i] = []byte(s)
	}
	return args
}

// Len returns the number of arguments.
func (a Args) Len() int {
	return len(a)
}

// String returns argument i.
func (a Args) String(i int) (string, error) {
	if i < 0 || i >= len(a) {
		return "", fmt.Errorf("%w: index %d of %d", ErrMissingArg, i, len(a))
	}
	return string(a[i]), nil
}

// Float64 parses argument i as a float.
func (a Args) Float64(i int) (float64, error) {
	s, err := a.String(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, &ArgError{Index: i, Value: s, Err: err}
	}
	return v, nil
}

// Int parses argument i as a base-10 integer.
func (a Args) Int(i int) (int, error) {
	s, err := a.String(i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, &ArgError{Index: i, Value: s, Err: err}
	}
	return v, nil
}
