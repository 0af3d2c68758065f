// Package prompt asks a user for the initial basis and for confirmation
// over a line-oriented reader/writer pair.
package prompt

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
	"q.log/tableau/simplex"
)

// Console implements simplex.BasisProvider and simplex.Confirmer.
type Console struct {
	in        *bufio.Scanner
	out       io.Writer
	m         int
	suggested []int
}

var (
	_ simplex.BasisProvider = (*Console)(nil)
	_ simplex.Confirmer     = (*Console)(nil)
)

// New returns a console asking for m columns. suggested, if not nil, is
// used when the user enters an empty line.
func New(in io.Reader, out io.Writer, m int, suggested []int) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, m: m, suggested: suggested}
}

// Reason returns the message shown to the user for a rejected basis.
func Reason(err error) string {
	switch {
	case errors.Is(err, simplex.ErrIndexOutOfRange):
		return "invalid indexes"
	case errors.Is(err, simplex.ErrInvalidBasisSize):
		return "invalid length"
	case errors.Is(err, simplex.ErrSingularBasis):
		return "columns are not linearly independent"
	case errors.Is(err, simplex.ErrInfeasible):
		return "basic solution is not feasible"
	case errors.Is(err, simplex.ErrBasisDeclined):
		return "basis declined"
	default:
		return err.Error()
	}
}

func (c *Console) printf(format string, args ...any) error {
	if _, err := fmt.Fprintf(c.out, format, args...); err != nil {
		return errors.Wrap(err, "prompt: writing")
	}
	return nil
}

func (c *Console) readLine(what string) (string, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return "", errors.Wrapf(err, "prompt: reading %s", what)
		}
		return "", errors.Wrapf(io.ErrUnexpectedEOF, "prompt: reading %s", what)
	}
	return strings.TrimSpace(c.in.Text()), nil
}

// NextBasis prints the reason for the previous rejection, if any, and
// reads a line of column indices. A failed write to the output is
// returned as an error.
func (c *Console) NextBasis(ctx context.Context, rejection error) ([]int, error) {
	if rejection != nil {
		if err := c.printf("%s, please enter again\n", Reason(rejection)); err != nil {
			return nil, err
		}
	}
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		question := fmt.Sprintf("choose %d columns to form a basis", c.m)
		if c.suggested != nil {
			question += fmt.Sprintf(" %v", c.suggested)
		}
		if err := c.printf("%s\n", question); err != nil {
			return nil, err
		}

		line, err := c.readLine("basis")
		if err != nil {
			return nil, err
		}
		if line == "" && c.suggested != nil {
			return append([]int(nil), c.suggested...), nil
		}
		if line == "" {
			continue
		}
		idx, err := parseInts(line)
		if err != nil {
			if err := c.printf("%v\n", err); err != nil {
				return nil, err
			}
			continue
		}
		return idx, nil
	}
}

// Confirm asks whether to continue from t.
func (c *Console) Confirm(ctx context.Context, _ *simplex.Tableau) (bool, error) {
	for {
		if err := ctx.Err(); err != nil {
			return false, err
		}
		if err := c.printf("good? (1: yes, 0: no)\n"); err != nil {
			return false, err
		}
		line, err := c.readLine("confirmation")
		if err != nil {
			return false, err
		}
		switch strings.ToLower(line) {
		case "1", "y", "yes":
			return true, nil
		case "0", "n", "no":
			return false, nil
		}
	}
}

func parseInts(line string) ([]int, error) {
	fields := strings.Fields(line)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, errors.Errorf("invalid input: %q is not an integer", f)
		}
		out[i] = v
	}
	return out, nil
}
