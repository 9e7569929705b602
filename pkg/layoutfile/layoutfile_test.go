package layoutfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/trackloop/trackloop/pkg/errors"
	"github.com/trackloop/trackloop/pkg/track"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestReadInventory(t *testing.T) {
	path := writeFile(t, "layout.toml", `
[inventory]
s1 = 2
aR = 12
`)

	supply, err := ReadInventory(path)
	if err != nil {
		t.Fatalf("ReadInventory() error: %v", err)
	}
	if got := supply[track.Straight]; got != 2 {
		t.Errorf("supply[s1] = %d, want 2", got)
	}
	if got := supply[track.ArcRight]; got != 12 {
		t.Errorf("supply[aR] = %d, want 12", got)
	}
}

func TestReadInventoryUnknownLabel(t *testing.T) {
	path := writeFile(t, "layout.toml", `
[inventory]
s9 = 1
`)

	_, err := ReadInventory(path)
	if !errors.Is(err, errors.ErrCodeInvalidPiece) {
		t.Errorf("ReadInventory() error = %v, want INVALID_PIECE", err)
	}
}

func TestReadInventoryNegativeCount(t *testing.T) {
	path := writeFile(t, "layout.toml", `
[inventory]
s1 = -3
`)

	_, err := ReadInventory(path)
	if !errors.Is(err, errors.ErrCodeInvalidInventory) {
		t.Errorf("ReadInventory() error = %v, want INVALID_INVENTORY", err)
	}
}

func TestReadInventoryMissingFile(t *testing.T) {
	_, err := ReadInventory(filepath.Join(t.TempDir(), "nope.toml"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("ReadInventory() error = %v, want FILE_NOT_FOUND", err)
	}
}

func TestReadInventoryEmptyTable(t *testing.T) {
	path := writeFile(t, "layout.toml", `pieces = ["s1"]`)

	_, err := ReadInventory(path)
	if !errors.Is(err, errors.ErrCodeInvalidInventory) {
		t.Errorf("ReadInventory() error = %v, want INVALID_INVENTORY", err)
	}
}

func TestReadSequence(t *testing.T) {
	path := writeFile(t, "seq.toml", `pieces = ["s2", "aR", "aL"]`)

	kinds, err := ReadSequence(path)
	if err != nil {
		t.Fatalf("ReadSequence() error: %v", err)
	}
	want := []track.Kind{track.DoubleStraight, track.ArcRight, track.ArcLeft}
	if len(kinds) != len(want) {
		t.Fatalf("ReadSequence() = %v, want %v", kinds, want)
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("kinds[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}
}

func TestReadSequenceUnknownLabel(t *testing.T) {
	path := writeFile(t, "seq.toml", `pieces = ["s1", "zz"]`)

	_, err := ReadSequence(path)
	if !errors.Is(err, errors.ErrCodeInvalidPiece) {
		t.Errorf("ReadSequence() error = %v, want INVALID_PIECE", err)
	}
}

func TestReadSequenceMalformedTOML(t *testing.T) {
	path := writeFile(t, "seq.toml", `pieces = [`)

	_, err := ReadSequence(path)
	if !errors.Is(err, errors.ErrCodeInvalidLayoutFile) {
		t.Errorf("ReadSequence() error = %v, want INVALID_LAYOUT_FILE", err)
	}
}

func TestParseInventorySpec(t *testing.T) {
	supply, err := ParseInventorySpec("s1=2, aR = 12")
	if err != nil {
		t.Fatalf("ParseInventorySpec() error: %v", err)
	}
	if supply[track.Straight] != 2 || supply[track.ArcRight] != 12 {
		t.Errorf("ParseInventorySpec() = %v, want s1:2 aR:12", supply)
	}
}

func TestParseInventorySpecErrors(t *testing.T) {
	tests := []struct {
		spec string
		code errors.Code
	}{
		{"", errors.ErrCodeInvalidInventory},
		{"s1", errors.ErrCodeInvalidInventory},
		{"s1=two", errors.ErrCodeInvalidInventory},
		{"s1=-1", errors.ErrCodeInvalidInventory},
		{"s9=1", errors.ErrCodeInvalidPiece},
	}

	for _, tt := range tests {
		_, err := ParseInventorySpec(tt.spec)
		if !errors.Is(err, tt.code) {
			t.Errorf("ParseInventorySpec(%q) error = %v, want %s", tt.spec, err, tt.code)
		}
	}
}

func TestParseSequenceSpec(t *testing.T) {
	for _, spec := range []string{"s2 aR aR", "s2,aR,aR", "s2, aR aR"} {
		kinds, err := ParseSequenceSpec(spec)
		if err != nil {
			t.Errorf("ParseSequenceSpec(%q) error: %v", spec, err)
			continue
		}
		if len(kinds) != 3 || kinds[0] != track.DoubleStraight {
			t.Errorf("ParseSequenceSpec(%q) = %v", spec, kinds)
		}
	}
}

func TestParseSequenceSpecEmpty(t *testing.T) {
	_, err := ParseSequenceSpec("  ")
	if !errors.Is(err, errors.ErrCodeInvalidSequence) {
		t.Errorf("ParseSequenceSpec() error = %v, want INVALID_SEQUENCE", err)
	}
}
