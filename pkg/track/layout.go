package track

import (
	"math"

	"github.com/jbeda/geom"
)

// Pose is a position plus an absolute direction in radians. Poses are
// derived data: they are computed once when a section is placed and never
// mutated afterwards.
type Pose struct {
	Position  geom.Coord
	Direction float64
}

// Section is one placed piece: its kind, the pose of its initial end, and
// the pose of its final end. The final pose is fixed at creation.
type Section struct {
	Kind  Kind
	Start Pose
	End   Pose
}

// Append computes the section obtained by laying kind against the final
// end of prior. A nil prior anchors the section at the origin facing
// direction 0.
//
// The piece's canonical local geometry is rotated into the running absolute
// frame: with local displacement (Xd, Yd) and turn Dd, the local heading
// t2 = atan2(Yd, Xd) and magnitude m = hypot(Xd, Yd) give the absolute
// heading t1 = Di + t2, so the final position is Pi + m·(cos t1, sin t1)
// and the final direction Di + Dd.
//
// Every catalog kind has a non-zero displacement; a zero-displacement kind
// would make atan2(0, 0) degenerate and would need special handling here
// before being added to the catalog.
func Append(prior *Section, kind Kind) Section {
	geo := PieceGeometry(kind)

	start := Pose{} // origin anchor, direction 0
	if prior != nil {
		start = prior.End
	}

	t2 := math.Atan2(geo.Disp.Y, geo.Disp.X)
	m := math.Hypot(geo.Disp.X, geo.Disp.Y)
	t1 := start.Direction + t2

	return Section{
		Kind:  kind,
		Start: start,
		End: Pose{
			Position: start.Position.Plus(geom.Coord{
				X: m * math.Cos(t1),
				Y: m * math.Sin(t1),
			}),
			Direction: start.Direction + geo.Turn,
		},
	}
}

// Path is an ordered sequence of placed sections. By construction each
// section starts at the previous section's final pose; the first section is
// anchored at the origin. Paths are extended by appending only.
type Path []Section

// Extend returns a new path with one more piece laid against the end.
// The receiver is not modified when its backing array has spare capacity
// owned elsewhere; callers should use the returned value.
func (p Path) Extend(kind Kind) Path {
	var prior *Section
	if len(p) > 0 {
		prior = &p[len(p)-1]
	}
	return append(p, Append(prior, kind))
}

// Build lays out a whole sequence of kinds from the origin anchor.
func Build(kinds []Kind) Path {
	p := make(Path, 0, len(kinds))
	for _, k := range kinds {
		p = p.Extend(k)
	}
	return p
}

// Kinds returns the ordered piece kinds of the path.
func (p Path) Kinds() []Kind {
	kinds := make([]Kind, len(p))
	for i, s := range p {
		kinds[i] = s.Kind
	}
	return kinds
}
