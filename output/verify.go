package output

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/RoaringBitmap/roaring/v2"
)

// Report describes how a partition file compares to the expected vertex count.
type Report struct {
	Expected   int
	Lines      int
	Missing    []uint32 // ordinals in [0, Expected) with no line
	Duplicates []uint32 // ordinals seen more than once
	OutOfRange int      // lines whose ordinal is outside [0, Expected)
	OutOfOrder int      // lines whose ordinal is not greater than the previous one
	Malformed  int      // lines that do not parse as <lid>\t<oid>\t<score>
	// Truncated is set when the last line has no trailing newline, the usual
	// sign of an interrupted write.
	Truncated bool
}

// Complete reports whether the file has exactly one well-formed line per
// ordinal, in ascending order.
func (r Report) Complete() bool {
	return r.Lines == r.Expected &&
		len(r.Missing) == 0 &&
		len(r.Duplicates) == 0 &&
		r.OutOfRange == 0 &&
		r.OutOfOrder == 0 &&
		r.Malformed == 0 &&
		!r.Truncated
}

func (r Report) String() string {
	if r.Complete() {
		return fmt.Sprintf("complete: %d lines", r.Lines)
	}
	return fmt.Sprintf("incomplete: %d/%d lines, %d missing, %d duplicate, %d out of range, %d out of order, %d malformed, truncated=%t",
		r.Lines, r.Expected, len(r.Missing), len(r.Duplicates), r.OutOfRange, r.OutOfOrder, r.Malformed, r.Truncated)
}

// Line is one parsed output line.
type Line struct {
	LID   int
	OID   int64
	Score float64
}

// ErrMalformedLine is returned by ParseLine.
var ErrMalformedLine = errors.New("output: malformed line")

// ParseLine parses a line without its trailing newline.
func ParseLine(b []byte) (Line, error) {
	f1, rest, ok := bytes.Cut(b, []byte{'\t'})
	if !ok {
		return Line{}, ErrMalformedLine
	}
	f2, f3, ok := bytes.Cut(rest, []byte{'\t'})
	if !ok {
		return Line{}, ErrMalformedLine
	}

	lid, err := strconv.Atoi(string(f1))
	if err != nil {
		return Line{}, fmt.Errorf("%w: lid: %w", ErrMalformedLine, err)
	}
	oid, err := strconv.ParseInt(string(f2), 10, 64)
	if err != nil {
		return Line{}, fmt.Errorf("%w: oid: %w", ErrMalformedLine, err)
	}
	score, err := strconv.ParseFloat(string(f3), 64)
	if err != nil {
		return Line{}, fmt.Errorf("%w: score: %w", ErrMalformedLine, err)
	}
	return Line{LID: lid, OID: oid, Score: score}, nil
}

// Verify reads a partition file and checks it covers ordinals [0, n).
// The error is non-nil only when r itself fails.
func Verify(r io.Reader, n int) (Report, error) {
	rep := Report{Expected: n}
	seen := roaring.New()
	dups := roaring.New()
	prev := -1

	br := bufio.NewReader(r)
	for {
		raw, err := br.ReadSlice('\n')
		if errors.Is(err, bufio.ErrBufferFull) {
			// Longer than any valid line; drain it.
			rep.Malformed++
			for errors.Is(err, bufio.ErrBufferFull) {
				_, err = br.ReadSlice('\n')
			}
			if err != nil && !errors.Is(err, io.EOF) {
				return rep, err
			}
			if errors.Is(err, io.EOF) {
				break
			}
			continue
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return rep, err
		}
		if len(raw) == 0 {
			break
		}

		line, hasNL := bytes.CutSuffix(raw, []byte{'\n'})
		if !hasNL {
			rep.Truncated = true
		}
		rep.Lines++

		l, perr := ParseLine(line)
		switch {
		case perr != nil:
			rep.Malformed++
		case l.LID < 0 || l.LID >= n || int64(l.LID) > math.MaxUint32:
			rep.OutOfRange++
		default:
			lid := uint32(l.LID)
			if !seen.CheckedAdd(lid) {
				dups.Add(lid)
			}
			if l.LID <= prev {
				rep.OutOfOrder++
			}
			prev = l.LID
		}

		if errors.Is(err, io.EOF) {
			break
		}
	}

	if n > 0 {
		missing := roaring.New()
		missing.AddRange(0, min(uint64(n), math.MaxUint32+1))
		missing.AndNot(seen)
		rep.Missing = missing.ToArray()
	}
	rep.Duplicates = dups.ToArray()
	return rep, nil
}
