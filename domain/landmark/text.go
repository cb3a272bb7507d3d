package landmark

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
)

var (
	errTokenCount = errors.New("expected two numbers")
	errNotFinite  = errors.New("coordinate is not finite")
)

// maxLineBytes bounds a single line; a landmark line is a few dozen bytes.
const maxLineBytes = 1 << 20

// ParseText reads one "x y" pair per line; line order is landmark index.
// Trailing blank lines at end of input are ignored. Any other line that is
// not exactly two finite floats, a blank interior line included, fails the
// whole parse.
func ParseText(r io.Reader) ([]Point, error) {
	var pts []Point
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 4096), maxLineBytes)
	line := 0
	blank, blankText := 0, "" // first blank line not yet followed by data
	for sc.Scan() {
		line++
		raw := sc.Text()
		fields := strings.Fields(raw)
		if len(fields) == 0 {
			if blank == 0 {
				blank, blankText = line, raw
			}
			continue
		}
		if blank != 0 {
			return nil, &FormatError{Line: blank, Text: blankText, Err: errTokenCount}
		}
		if len(fields) != 2 {
			return nil, &FormatError{Line: line, Text: raw, Err: errTokenCount}
		}
		var xy [2]float64
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, &FormatError{Line: line, Text: raw, Err: err}
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &FormatError{Line: line, Text: raw, Err: errNotFinite}
			}
			xy[i] = v
		}
		pts = append(pts, Point{X: xy[0], Y: xy[1]})
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return nil, &FormatError{Line: line + 1, Err: err}
		}
		return nil, fmt.Errorf("read landmarks: %w", err)
	}
	return pts, nil
}

// WriteText writes pts as "%f %f\n" lines in index order.
func WriteText(w io.Writer, pts []Point) error {
	bw := bufio.NewWriter(w)
	for _, p := range pts {
		if _, err := fmt.Fprintf(bw, "%f %f\n", p.X, p.Y); err != nil {
			return err
		}
	}
	return bw.Flush()
}
