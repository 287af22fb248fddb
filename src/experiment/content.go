package experiment

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lint/ZooCanvas/src/types"
)

// ParseTimestamp reads r to the end and returns the timestamp held by its last
// non-blank line. Update files keep it in the second comma-separated field,
// write files on the line by itself.
func ParseTimestamp(kind types.RecordKind, r io.Reader) (int64, error) {
	last, err := lastLine(r)
	if err != nil {
		return 0, err
	}
	if last == "" {
		return 0, fmt.Errorf("%w: no lines", ErrContent)
	}
	field := last
	if kind == types.KindUpdate {
		cols := strings.Split(last, ",")
		if len(cols) < 2 {
			return 0, fmt.Errorf("%w: last line %q has no timestamp field", ErrContent, last)
		}
		field = cols[1]
	}
	ts, err := strconv.ParseInt(strings.TrimSpace(field), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: invalid timestamp %q", ErrContent, field)
	}
	return ts, nil
}

func lastLine(r io.Reader) (string, error) {
	sc := bufio.NewScanner(r)
	var last string
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			last = line
		}
	}
	if err := sc.Err(); err != nil {
		return "", err
	}
	return last, nil
}
