package track

import (
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/jbeda/geom"
)

// ErrUnknownKind is returned by [Parse] when a label does not name a piece
// kind in the catalog. Loaders must reject such labels before any geometry
// is computed; the geometry functions themselves only accept known kinds.
var ErrUnknownKind = errors.New("unknown piece kind")

// Kind identifies a piece type in the catalog. The string value doubles as
// the label used in layout files, CLI arguments, and reported results.
type Kind string

// The built-in piece kinds. Arcs are 45° segments of a unit-radius circle;
// eight of either orientation close a full circle.
const (
	// Straight is a straight piece of unit length.
	Straight Kind = "s1"
	// DoubleStraight is a straight piece of twice unit length.
	DoubleStraight Kind = "s2"
	// ArcRight is a 45° arc curving to the right (clockwise).
	ArcRight Kind = "aR"
	// ArcLeft is a 45° arc curving to the left (counter-clockwise).
	ArcLeft Kind = "aL"
)

// Geometry describes a piece kind in its own local frame: the displacement
// from the initial end to the final end, and the change in direction.
type Geometry struct {
	Disp geom.Coord // final end relative to the initial end, +X = initial direction
	Turn float64    // direction change in radians (negative = rightward)
}

// pieceSpec pairs a kind's geometry with its mirror partner.
type pieceSpec struct {
	geo  Geometry
	flip Kind
}

// catalog is the fixed piece table. It is never mutated after init.
//
// Flip geometry invariants, relied on throughout the search engine:
// Disp.X is preserved, Disp.Y and Turn are negated, and flipping twice
// returns the original kind.
var catalog = map[Kind]pieceSpec{
	Straight:       {Geometry{geom.Coord{X: 1, Y: 0}, 0}, Straight},
	DoubleStraight: {Geometry{geom.Coord{X: 2, Y: 0}, 0}, DoubleStraight},
	ArcRight:       {Geometry{arcDisp(-1), -math.Pi / 4}, ArcLeft},
	ArcLeft:        {Geometry{arcDisp(1), math.Pi / 4}, ArcRight},
}

// arcDisp returns the local end displacement of a 45° unit-radius arc.
// sign is +1 for a left (counter-clockwise) arc, -1 for a right arc.
func arcDisp(sign float64) geom.Coord {
	return geom.Coord{
		X: math.Sin(math.Pi / 4),
		Y: sign * (1 - math.Cos(math.Pi/4)),
	}
}

// PieceGeometry returns the local geometry for a catalog kind.
// It panics on an unknown kind: callers are required to validate labels
// with [Parse] first, so reaching this with a bad kind is a programming
// error, not an input error.
func PieceGeometry(k Kind) Geometry {
	spec, ok := catalog[k]
	if !ok {
		panic(fmt.Sprintf("track: unknown piece kind %q", k))
	}
	return spec.geo
}

// Flip returns the mirror-image partner of a kind. Straight pieces are
// their own partner. Flip is involutive: Flip(Flip(k)) == k.
// Like [PieceGeometry], Flip panics on a kind outside the catalog.
func Flip(k Kind) Kind {
	spec, ok := catalog[k]
	if !ok {
		panic(fmt.Sprintf("track: unknown piece kind %q", k))
	}
	return spec.flip
}

// Parse validates a piece label against the catalog.
// Unknown labels return an error wrapping [ErrUnknownKind]; this is the
// single validation gate between external input and the geometry code.
func Parse(label string) (Kind, error) {
	k := Kind(label)
	if _, ok := catalog[k]; !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownKind, label)
	}
	return k, nil
}

// Kinds returns all catalog kinds sorted by label.
// The slice is freshly allocated and safe to modify.
func Kinds() []Kind {
	kinds := make([]Kind, 0, len(catalog))
	for k := range catalog {
		kinds = append(kinds, k)
	}
	slices.Sort(kinds)
	return kinds
}

// Labels converts a kind sequence to its plain string labels.
func Labels(kinds []Kind) []string {
	out := make([]string, len(kinds))
	for i, k := range kinds {
		out[i] = string(k)
	}
	return out
}

// ParseAll validates a sequence of labels, returning the parsed kinds or
// the first validation error.
func ParseAll(labels []string) ([]Kind, error) {
	kinds := make([]Kind, len(labels))
	for i, label := range labels {
		k, err := Parse(label)
		if err != nil {
			return nil, err
		}
		kinds[i] = k
	}
	return kinds, nil
}
