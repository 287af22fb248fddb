// Package experiment reads the files an experiment run leaves in experiment_output/.
//
// Two kinds of files exist, told apart by name only:
//   - updates_<serverId>_<experimentNum>_<writes>.txt, written by each replica's client;
//     lines are "<n>,<timestampMs>" and the last line holds the last update received.
//   - write_<writes>_<experimentNum>.txt (or the bare <writes>_<experimentNum>.txt), written
//     by the client issuing the batch; the last line is the completion timestamp in ms.
package experiment

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/lint/ZooCanvas/src/types"
)

// UpdateMarker is the substring that marks a replica update file.
const UpdateMarker = "updates"

var (
	// ErrFilename is returned when a file name does not carry the expected keys.
	ErrFilename = errors.New("malformed experiment file name")
	// ErrContent is returned when a file body has no usable timestamp.
	ErrContent = errors.New("malformed experiment file content")
)

// Classify returns the record kind encoded in a file name.
func Classify(name string) types.RecordKind {
	if strings.Contains(name, UpdateMarker) {
		return types.KindUpdate
	}
	return types.KindWrite
}

// ParseFilename classifies name and extracts its keys. TimestampMs is left zero.
func ParseFilename(name string) (types.Record, error) {
	parts := strings.Split(name, "_")
	if Classify(name) == types.KindUpdate {
		return parseUpdateName(name, parts)
	}
	return parseWriteName(name, parts)
}

func parseUpdateName(name string, parts []string) (types.Record, error) {
	if len(parts) < 4 {
		return types.Record{}, fmt.Errorf("%w: %q: expected updates_<server>_<experiment>_<writes>, got %d segments", ErrFilename, name, len(parts))
	}
	server, err := atoiField(name, "server id", parts[1])
	if err != nil {
		return types.Record{}, err
	}
	exp, err := atoiField(name, "experiment", parts[2])
	if err != nil {
		return types.Record{}, err
	}
	writes, err := atoiField(name, "writes", stripExt(parts[3]))
	if err != nil {
		return types.Record{}, err
	}
	return types.Record{Kind: types.KindUpdate, ServerID: server, ExperimentNum: exp, Writes: writes, Source: name}, nil
}

func parseWriteName(name string, parts []string) (types.Record, error) {
	// Bare form "<writes>_<experiment>.txt" has no prefix token.
	wi, ei := 1, 2
	if len(parts) == 2 && isInt(parts[0]) {
		wi, ei = 0, 1
	}
	if len(parts) <= ei {
		return types.Record{}, fmt.Errorf("%w: %q: expected write_<writes>_<experiment>, got %d segments", ErrFilename, name, len(parts))
	}
	writes, err := atoiField(name, "writes", parts[wi])
	if err != nil {
		return types.Record{}, err
	}
	exp, err := atoiField(name, "experiment", stripExt(parts[ei]))
	if err != nil {
		return types.Record{}, err
	}
	return types.Record{Kind: types.KindWrite, ExperimentNum: exp, Writes: writes, Source: name}, nil
}

// stripExt cuts a token at its first dot: "12.txt" -> "12".
func stripExt(s string) string {
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

func isInt(s string) bool {
	_, err := strconv.Atoi(s)
	return err == nil
}

func atoiField(name, field, s string) (int, error) {
	v, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: invalid %s %q", ErrFilename, name, field, s)
	}
	return v, nil
}
