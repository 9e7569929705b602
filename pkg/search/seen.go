package search

import (
	"strings"

	"github.com/trackloop/trackloop/pkg/track"
)

// seenSet remembers the label sequences of reported loops together with
// all their symmetric restatements. It only suppresses duplicate output;
// the search still traverses the subtrees that produce them.
type seenSet map[string]struct{}

// key joins a kind sequence into its canonical label string.
func key(kinds []track.Kind) string {
	return strings.Join(track.Labels(kinds), " ")
}

func (s seenSet) contains(kinds []track.Kind) bool {
	_, ok := s[key(kinds)]
	return ok
}

// admit records every cyclic rotation of kinds and the piece-wise flip of
// each rotation. A rotation restarts the same loop at a different joint; a
// flip is the same loop laid mirror-imaged. Equal-length substitutions
// (s1 s1 versus s2) are deliberately not covered.
func (s seenSet) admit(kinds []track.Kind) {
	n := len(kinds)
	rotated := make([]track.Kind, n)
	flipped := make([]track.Kind, n)

	for shift := 0; shift < n; shift++ {
		for i := 0; i < n; i++ {
			rotated[i] = kinds[(i+shift)%n]
			flipped[i] = track.Flip(rotated[i])
		}
		s[key(rotated)] = struct{}{}
		s[key(flipped)] = struct{}{}
	}
}
