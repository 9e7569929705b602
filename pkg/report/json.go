package report

import (
	"encoding/json"
	"fmt"
	"io"
)

// WriteJSON encodes any result record as indented JSON. Used by the CLI's
// --output json mode; the HTTP API encodes compactly on its own.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
