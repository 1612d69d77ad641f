package seedset

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// Parse reads one "<x>, <y>" coordinate per line. Blank lines are skipped.
// Any other malformed line aborts with ErrMalformedInput naming the line.
func Parse(r io.Reader) ([]Point, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("seedset: read input: %w", err)
	}
	return ParseLines(lines)
}

// ParseLines parses already split lines; see Parse.
func ParseLines(lines []string) ([]Point, error) {
	points := make([]Point, 0, len(lines))
	for i, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		p, err := parsePoint(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrMalformedInput, i+1, line, err)
		}
		points = append(points, p)
	}
	return points, nil
}

func parsePoint(line string) (Point, error) {
	xs, ys, ok := strings.Cut(line, ", ")
	if !ok {
		return Point{}, errors.New("missing \", \" separator")
	}
	x, err := strconv.Atoi(xs)
	if err != nil {
		return Point{}, err
	}
	y, err := strconv.Atoi(ys)
	if err != nil {
		return Point{}, err
	}
	return Point{X: x, Y: y}, nil
}
