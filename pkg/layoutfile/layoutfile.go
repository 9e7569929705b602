// Package layoutfile loads piece inventories and piece sequences from TOML
// layout files and from inline CLI specs.
//
// An inventory file lists available stock per piece label:
//
//	[inventory]
//	s1 = 2
//	aR = 12
//
// A sequence file lists an ordered arrangement:
//
//	pieces = ["s2", "aR", "aR", "s1"]
//
// All labels are validated against the piece catalog here, before any
// geometry or search code runs: an unknown label is a configuration error
// with code INVALID_PIECE, never a silent default.
package layoutfile

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/trackloop/trackloop/pkg/errors"
	"github.com/trackloop/trackloop/pkg/track"
)

// inventoryFile is the TOML shape of an inventory layout file.
type inventoryFile struct {
	Inventory map[string]int `toml:"inventory"`
}

// sequenceFile is the TOML shape of a sequence layout file.
type sequenceFile struct {
	Pieces []string `toml:"pieces"`
}

// ReadInventory loads and validates an inventory layout file.
func ReadInventory(path string) (map[track.Kind]int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidLayoutFile, err, "read %s", path)
	}

	var f inventoryFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayoutFile, err, "parse %s", path)
	}
	if len(f.Inventory) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInventory, "%s has no [inventory] table", path)
	}
	return validateInventory(f.Inventory)
}

// ReadSequence loads and validates a sequence layout file.
func ReadSequence(path string) ([]track.Kind, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "layout file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidLayoutFile, err, "read %s", path)
	}

	var f sequenceFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLayoutFile, err, "parse %s", path)
	}
	if len(f.Pieces) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidSequence, "%s has no pieces list", path)
	}

	kinds, err := track.ParseAll(f.Pieces)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPiece, err, "in %s", path)
	}
	return kinds, nil
}

// validateInventory checks labels and counts of a raw label→count map.
func validateInventory(raw map[string]int) (map[track.Kind]int, error) {
	supply := make(map[track.Kind]int, len(raw))
	for label, count := range raw {
		k, err := track.Parse(label)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidPiece, err, "in inventory")
		}
		if count < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInventory, "piece %s has negative count %d", label, count)
		}
		supply[k] = count
	}
	return supply, nil
}
