// Package matrix reads square matrix files into heat-map grids.
//
// A matrix file is line oriented. The first line holds the side of the
// matrix, size. Each of the following size×size non-blank lines holds one
// floating-point value, in row-major order. Blank lines between values
// are ignored.
//
// Each value v is mapped to a color with Gray. Matrices of side
// DisplayLimit or more are downsampled: only every step-th row and column
// is kept (see Stride), though every value is still checked for syntax.
package matrix

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"golang.org/x/exp/mmap"
)

// Open reads the named matrix file.
// If the file cannot be opened, the error matches ErrSourceNotFound.
// If its contents are malformed, the error matches ErrInputFormat.
func Open(name string) (*Grid, error) {
	f, err := mmap.Open(name)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSourceNotFound, err)
	}
	defer f.Close()

	g, err := Load(io.NewSectionReader(f, 0, int64(f.Len())))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return g, nil
}

// Load reads a matrix from r.
// On error the returned Grid is nil; a partially read matrix is never returned.
func Load(r io.Reader) (*Grid, error) {
	lr := newLineReader(r)

	text, err := lr.first()
	if err != nil {
		return nil, &FormatError{Line: 1, Err: err}
	}
	size, err := strconv.Atoi(text)
	if err != nil {
		return nil, &FormatError{Line: 1, Err: err}
	}
	if size < 0 {
		return nil, &FormatError{Line: 1, Err: fmt.Errorf("negative matrix size %d", size)}
	}

	g := newGrid(size)
	step := g.step
	for i := 0; i < size; i++ {
		for j := 0; j < size; j++ {
			text, err := lr.next()
			if err == io.EOF {
				n := int64(i)*int64(size) + int64(j)
				total := int64(size) * int64(size)
				return nil, &FormatError{Line: lr.line + 1, Err: fmt.Errorf("%w: read %d of %d values", ErrTruncated, n, total)}
			}
			if err != nil {
				return nil, &FormatError{Line: lr.line + 1, Err: err}
			}
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return nil, &FormatError{Line: lr.line, Err: err}
			}
			if i%step == 0 && j%step == 0 {
				g.set(i/step, j/step, Gray(v))
			}
		}
	}
	return g, nil
}

// A lineReader returns trimmed lines and counts them.
type lineReader struct {
	s    *bufio.Scanner
	line int // lines consumed so far
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{s: bufio.NewScanner(r)}
}

// first returns the first line, blank or not.
func (lr *lineReader) first() (string, error) {
	if !lr.s.Scan() {
		if err := lr.s.Err(); err != nil {
			return "", err
		}
		return "", fmt.Errorf("missing matrix size: %w", io.ErrUnexpectedEOF)
	}
	lr.line++
	return strings.TrimSpace(lr.s.Text()), nil
}

// next returns the next non-blank line, or io.EOF at the end of input.
func (lr *lineReader) next() (string, error) {
	for lr.s.Scan() {
		lr.line++
		if text := strings.TrimSpace(lr.s.Text()); text != "" {
			return text, nil
		}
	}
	if err := lr.s.Err(); err != nil {
		return "", err
	}
	return "", io.EOF
}
