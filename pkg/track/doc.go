// Package track models rigid toy-train track pieces and the geometry of
// laying them end to end.
//
// The package has three parts:
//
//   - A fixed piece catalog: each [Kind] carries a local displacement and
//     turn angle measured in the piece's own frame, plus a mirror-flip
//     partner ([Flip]).
//   - A layout engine: [Append] chains a piece onto the end of a path by
//     rotating its canonical local geometry into the running absolute frame.
//   - A closure analyzer: [Path.IsClosedC1] decides whether a path forms a
//     closed loop with tangent-continuous joints, within fixed tolerances
//     that model physical joint play.
//
// # Frames and poses
//
// A piece's local frame puts the origin at its initial end with +X pointing
// along the initial direction. A [Pose] is an absolute position plus an
// absolute direction in radians. The first section of a path is anchored at
// the origin facing direction 0; absolute coordinates are therefore only
// meaningful relative to that anchor, and closure tests compare first
// against last rather than against any fixed point.
//
// # Example
//
//	path := track.Path{}
//	for i := 0; i < 8; i++ {
//		path = path.Extend(track.ArcRight)
//	}
//	fmt.Println(path.IsClosedC1()) // true: 8 × 45° right arcs close a circle
package track
