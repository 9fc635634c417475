package stats

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/polyroots/polyroots/pkg/errors"
)

// ReadInts reads whitespace-separated integers from r. Values may span any
// number of lines; blank lines are ignored. A token that is not an integer
// fails with INVALID_INPUT naming its line.
func ReadInts(r io.Reader) ([]int64, error) {
	var vals []int64
	sc := bufio.NewScanner(r)
	line := 0
	for sc.Scan() {
		line++
		for _, tok := range strings.Fields(sc.Text()) {
			v, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "line %d: %q is not an integer", line, tok)
			}
			vals = append(vals, v)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "read integers")
	}
	return vals, nil
}

// ParseInts converts command-line arguments to integers.
func ParseInts(args []string) ([]int64, error) {
	vals := make([]int64, 0, len(args))
	for _, a := range args {
		v, err := strconv.ParseInt(a, 10, 64)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "%q is not an integer", a)
		}
		vals = append(vals, v)
	}
	return vals, nil
}
