// Package report defines the plain-data result records produced by
// searches and diagnoses, and renders them as text or JSON.
//
// The core engines hand back label sequences and gap measurements; this
// package is the only place that turns them into user-facing strings, so
// the CLI and the HTTP API stay byte-for-byte consistent.
package report

import (
	"fmt"
	"strconv"
	"strings"
)

// Layout is one reported closed-loop arrangement.
type Layout struct {
	Pieces []string `json:"pieces"`
}

// Text renders the layout in the single-line result format:
//
//	Path: s1 aR aR aR aR s1 aR aR aR aR  (closed)
func (l Layout) Text() string {
	return fmt.Sprintf("Path: %s  (closed)", strings.Join(l.Pieces, " "))
}

// Diagnosis reports how far a fixed sequence is from closing into a
// C1-continuous loop.
type Diagnosis struct {
	Sequence []string `json:"sequence"`
	Closed   bool     `json:"closed"`
	Distance float64  `json:"distance"` // first-to-last positional gap
	Angle    float64  `json:"angle"`    // first-to-last minimal angular gap, radians
}

// Text renders the four-line diagnosis format: sequence, verdict,
// positional gap, angular gap.
func (d Diagnosis) Text() string {
	verdict := "no"
	if d.Closed {
		verdict = "yes"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Sequence: %s\n", strings.Join(d.Sequence, " "))
	fmt.Fprintf(&b, "Closed: %s\n", verdict)
	fmt.Fprintf(&b, "Distance: %s\n", formatScalar(d.Distance))
	fmt.Fprintf(&b, "Angle: %s", formatScalar(d.Angle))
	return b.String()
}

// formatScalar prints a gap value at full float64 precision, without
// trailing zero noise.
func formatScalar(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
