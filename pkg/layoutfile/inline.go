package layoutfile

import (
	"strconv"
	"strings"

	"github.com/trackloop/trackloop/pkg/errors"
	"github.com/trackloop/trackloop/pkg/track"
)

// ParseInventorySpec parses an inline inventory spec of the form
// "s1=2,aR=12". Whitespace around entries is ignored.
func ParseInventorySpec(spec string) (map[track.Kind]int, error) {
	raw := make(map[string]int)
	for _, entry := range strings.Split(spec, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		label, countStr, ok := strings.Cut(entry, "=")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInventory, "malformed entry %q, want label=count", entry)
		}
		count, err := strconv.Atoi(strings.TrimSpace(countStr))
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidInventory, "entry %q has non-integer count", entry)
		}
		raw[strings.TrimSpace(label)] = count
	}
	if len(raw) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInventory, "empty inventory spec")
	}
	return validateInventory(raw)
}

// ParseSequenceSpec parses an inline piece sequence, accepting spaces or
// commas as separators: "s2 aR aR" and "s2,aR,aR" are equivalent.
func ParseSequenceSpec(spec string) ([]track.Kind, error) {
	fields := strings.FieldsFunc(spec, func(r rune) bool {
		return r == ' ' || r == ',' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSequence, "empty sequence spec")
	}

	kinds, err := track.ParseAll(fields)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPiece, err, "in sequence")
	}
	return kinds, nil
}
