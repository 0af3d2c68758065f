package instance

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"q.log/tableau/model"
)

// ReadText reads the plain text format:
//
//	m [n]
//	m rows of A
//	b
//	c
//	z
//
// Values are separated by whitespace. Blank lines and lines starting
// with '#' are skipped.
func ReadText(r io.Reader) (*Instance, error) {
	lines := &lineReader{s: bufio.NewScanner(r)}

	dims, err := lines.numbers("dimensions")
	if err != nil {
		return nil, err
	}
	if len(dims) == 0 || len(dims) > 2 {
		return nil, errors.Wrapf(ErrSyntax, "line %d: want \"m [n]\", got %d values", lines.n, len(dims))
	}
	header := lines.n
	m, err := count(dims[0], header)
	if err != nil {
		return nil, err
	}

	a := make([][]float64, m)
	for i := range m {
		if a[i], err = lines.numbers("row of A"); err != nil {
			return nil, err
		}
	}
	if len(dims) == 2 && m > 0 {
		n, err := count(dims[1], header)
		if err != nil {
			return nil, err
		}
		if n != len(a[0]) {
			return nil, errors.Wrapf(model.ErrInvalidDimensions, "header says %d columns, A has %d", n, len(a[0]))
		}
	}

	b, err := lines.numbers("b")
	if err != nil {
		return nil, err
	}
	c, err := lines.numbers("c")
	if err != nil {
		return nil, err
	}
	zs, err := lines.numbers("z")
	if err != nil {
		return nil, err
	}
	if len(zs) != 1 {
		return nil, errors.Wrapf(ErrSyntax, "line %d: want a single value for z", lines.n)
	}

	p, err := model.NewProblem(a, b, c, zs[0])
	if err != nil {
		return nil, err
	}
	return &Instance{Problem: p}, nil
}

func count(v float64, line int) (int, error) {
	if v < 0 || v != float64(int(v)) {
		return 0, errors.Wrapf(ErrSyntax, "line %d: %g is not a dimension", line, v)
	}
	return int(v), nil
}

type lineReader struct {
	s *bufio.Scanner
	n int
}

func (l *lineReader) numbers(what string) ([]float64, error) {
	for l.s.Scan() {
		l.n++
		line := strings.TrimSpace(l.s.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		out := make([]float64, len(fields))
		for i, f := range fields {
			v, err := strconv.ParseFloat(f, 64)
			if err != nil {
				return nil, errors.Wrapf(ErrSyntax, "line %d: %s: %q is not a number", l.n, what, f)
			}
			out[i] = v
		}
		return out, nil
	}
	if err := l.s.Err(); err != nil {
		return nil, errors.Wrap(err, "instance: read")
	}
	return nil, errors.Wrapf(ErrSyntax, "unexpected end of input, want %s", what)
}
