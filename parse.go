package multiplier

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pkg/errors"
)

// Messages written to a command's standard output.
const (
	MsgExpectingTwoNumbers = "Expecting two numbers"
	MsgNotAnInt            = "Some argument isn't an Int"
	MsgSomeArgumentNull    = "Some argument is null"
)

// ErrUnparsableInteger is the cause of every error returned by parseInt32.
var ErrUnparsableInteger = errors.New("not a base-10 integer")

// parseInt32 parses s as a base-10 signed integer that fits in 32 bits. An
// optional leading sign is accepted; whitespace is not.
func parseInt32(s string) (int32, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		reason := err
		if ne, ok := err.(*strconv.NumError); ok {
			reason = ne.Err
		}
		return 0, errors.Wrapf(ErrUnparsableInteger, "%q: %v", s, reason)
	}
	return int32(n), nil
}

// ParseIntOrAbsent parses s into a present OptionalInt. If s is not a 32-bit
// base-10 integer, a single diagnostic line is written to w and an absent
// OptionalInt is returned.
func ParseIntOrAbsent(w io.Writer, s string) OptionalInt {
	n, err := parseInt32(s)
	if err != nil {
		fmt.Fprintln(w, MsgNotAnInt)
		return None()
	}
	return Some(n)
}
