// Package patternio reads and writes live-cell sets in the Life 1.06 text
// format: a "#Life 1.06" header followed by one "x y" pair per line.
package patternio

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"gol/pkg/lifelike"
)

// Header is the first line of every Life 1.06 file.
const Header = "#Life 1.06"

// LoadError reports a malformed line in a pattern file. Line is 1-based; it
// is zero when the failure is not tied to a line.
type LoadError struct {
	Path string
	Line int
	Text string
	Err  error
}

func (e *LoadError) Error() string {
	where := e.Path
	if where == "" {
		where = "pattern"
	}
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v (%q)", where, e.Line, e.Err, e.Text)
	}
	return fmt.Sprintf("%s: %v", where, e.Err)
}

// Unwrap returns the underlying cause.
func (e *LoadError) Unwrap() error { return e.Err }

// Cause satisfies github.com/pkg/errors.Cause.
func (e *LoadError) Cause() error { return e.Err }

// Write emits cells in Life 1.06 format, in the order given.
func Write(w io.Writer, cells []lifelike.Cell, comments ...string) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, Header)
	for _, c := range comments {
		fmt.Fprintf(bw, "#D %s\n", c)
	}
	for _, c := range cells {
		fmt.Fprintf(bw, "%d %d\n", c.X, c.Y)
	}
	return errors.Wrap(bw.Flush(), "[Write] failed to flush pattern")
}

// Read parses a Life 1.06 stream. Blank lines and lines starting with '#'
// are skipped; the header is optional. Duplicate coordinates are returned
// as-is.
func Read(r io.Reader) ([]lifelike.Cell, error) {
	var cells []lifelike.Cell
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		c, err := parsePair(text)
		if err != nil {
			return nil, &LoadError{Line: line, Text: text, Err: err}
		}
		cells = append(cells, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, &LoadError{Line: line + 1, Err: errors.Wrap(err, "read failed")}
	}
	return cells, nil
}

func parsePair(text string) (lifelike.Cell, error) {
	fields := strings.Fields(text)
	if len(fields) != 2 {
		return lifelike.Cell{}, errors.Errorf("expected 2 coordinates, got %d", len(fields))
	}
	x, err := strconv.Atoi(fields[0])
	if err != nil {
		return lifelike.Cell{}, errors.Errorf("invalid x coordinate %q", fields[0])
	}
	y, err := strconv.Atoi(fields[1])
	if err != nil {
		return lifelike.Cell{}, errors.Errorf("invalid y coordinate %q", fields[1])
	}
	return lifelike.Cell{X: x, Y: y}, nil
}

// SaveFile writes cells to path, replacing the file atomically.
func SaveFile(path string, cells []lifelike.Cell, comments ...string) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".lif-*")
	if err != nil {
		return errors.Wrapf(err, "[SaveFile] failed to create temp file in: %+v", dir)
	}
	defer os.Remove(tmp.Name())

	if err := Write(tmp, cells, comments...); err != nil {
		tmp.Close()
		return errors.Wrapf(err, "[SaveFile] failed to write: %+v", path)
	}
	if err := tmp.Close(); err != nil {
		return errors.Wrapf(err, "[SaveFile] failed to close: %+v", tmp.Name())
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return errors.Wrapf(err, "[SaveFile] failed to rename into: %+v", path)
	}
	return nil
}

// LoadFile reads the cells stored at path.
func LoadFile(path string) ([]lifelike.Cell, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[LoadFile] failed to open file: %+v", path)
	}
	defer f.Close()

	cells, err := Read(f)
	if err != nil {
		var le *LoadError
		if errors.As(err, &le) {
			le.Path = path
		}
		return nil, err
	}
	return cells, nil
}
