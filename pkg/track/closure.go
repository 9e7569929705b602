package track

import (
	"math"

	"github.com/jbeda/geom"
)

// Joint play tolerances. A loop counts as closed when the first and last
// poses agree within these bounds; they are deliberately loose compared to
// float precision because physical track joints absorb small gaps.
const (
	// PositionTolerance is the maximum first-to-last positional gap of a
	// closed loop, in track units (one unit = length of a Straight).
	PositionTolerance = 0.01

	// DirectionTolerance is the maximum first-to-last angular gap of a
	// closed loop, in radians.
	DirectionTolerance = 0.001
)

// Distance returns the Euclidean distance between two points.
func Distance(p1, p2 geom.Coord) float64 {
	return p1.DistanceFrom(p2)
}

// NormalizeAngle reduces the magnitude of an angle that exceeds a full
// turn by subtracting floor(a/2π)·2π.
//
// Angles within ±2π pass through untouched, so negative inputs below −2π
// come back in [0, 2π) while small negative angles stay negative. The
// asymmetry is intentional and relied on by the closure test; do not
// canonicalize to a single half-open interval.
func NormalizeAngle(a float64) float64 {
	if math.Abs(a) > 2*math.Pi {
		a -= math.Floor(a/(2*math.Pi)) * 2 * math.Pi
	}
	return a
}

// AngularDifference returns the minimal difference between two angles: the
// smaller of the direct difference and its complement around a full turn.
// The result is non-negative and symmetric in the arguments.
func AngularDifference(a1, a2 float64) float64 {
	d := math.Abs(a2 - a1)
	return math.Min(d, math.Abs(2*math.Pi-d))
}

// IsClosedC1 reports whether the path forms a closed loop with a
// tangent-continuous joint between its last and first piece. Paths with
// fewer than two sections are never closed.
//
// Only relative quantities are compared: the last section's final pose
// against the first section's initial pose. The anchor of the path is
// arbitrary, so absolute coordinates carry no meaning across paths.
func (p Path) IsClosedC1() bool {
	if len(p) < 2 {
		return false
	}
	first, last := p[0], p[len(p)-1]
	if Distance(first.Start.Position, last.End.Position) >= PositionTolerance {
		return false
	}
	gap := AngularDifference(NormalizeAngle(first.Start.Direction), NormalizeAngle(last.End.Direction))
	return gap < DirectionTolerance
}

// Gap measures how far a path is from closing: the first-to-last positional
// distance and the minimal angular difference of the normalized end
// directions. An empty path has zero gaps by convention.
func (p Path) Gap() (distance, angle float64) {
	if len(p) == 0 {
		return 0, 0
	}
	first, last := p[0], p[len(p)-1]
	distance = Distance(first.Start.Position, last.End.Position)
	angle = AngularDifference(NormalizeAngle(first.Start.Direction), NormalizeAngle(last.End.Direction))
	return distance, angle
}
