package multiplier

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/pkg/errors"
)

// Multiply returns a RunFunc that multiplies the first two arguments and
// prints the product to cmd.Stdout.
//
// With fewer than two arguments, it prints MsgExpectingTwoNumbers followed by
// the command's usage line on cmd.Stderr. Otherwise both arguments are parsed
// with ParseIntOrAbsent before anything else is decided; if either is absent,
// MsgSomeArgumentNull is printed after the per-argument diagnostics. Arguments
// after the second are ignored.
//
// The product is a 32-bit multiplication and wraps on overflow. It is printed
// without a trailing newline. The only error returned is a failure to write
// to cmd.Stdout.
func Multiply(logger *slog.Logger) RunFunc {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return func(cmd *Cmd, args []string) error {
		out := &stickyWriter{w: cmd.Stdout}
		logger.Debug("multiply_start", "command", cmd.Name, "arg_count", len(args))

		if len(args) < 2 {
			fmt.Fprintln(out, MsgExpectingTwoNumbers)
			cmd.Usage()
			return out.Err()
		}

		x := ParseIntOrAbsent(out, args[0])
		y := ParseIntOrAbsent(out, args[1])
		logger.Debug("arguments_parsed", "x", x.String(), "y", y.String())

		if !x.IsPresent() || !y.IsPresent() {
			fmt.Fprintln(out, MsgSomeArgumentNull)
			return out.Err()
		}

		xv, _ := x.Get()
		yv, _ := y.Get()
		product := xv * yv
		logger.Debug("multiply_done", "product", product)
		fmt.Fprint(out, product)
		return out.Err()
	}
}

// stickyWriter remembers the first write error and drops all later writes.
type stickyWriter struct {
	w   io.Writer
	err error
}

func (s *stickyWriter) Write(p []byte) (int, error) {
	if s.err != nil {
		return 0, s.err
	}
	n, err := s.w.Write(p)
	if err != nil {
		s.err = err
	}
	return n, err
}

// Err returns the first write error, if any.
func (s *stickyWriter) Err() error {
	if s.err == nil {
		return nil
	}
	return errors.Wrap(s.err, "write output")
}
