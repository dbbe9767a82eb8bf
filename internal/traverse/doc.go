// Package traverse provides composable traversal orders over rectangular
// regions of a display.
//
// An [Order] walks a [Rect] and lazily yields the coordinates of a physical
// wiring path. Directional orders nest: the outer order fixes its own axis
// and hands every value to its continuation, so
//
//	traverse.TopToBottom(traverse.Alternating(
//		traverse.LeftToRight(nil),
//		traverse.RightToLeft(nil),
//	))
//
// walks rows from the top, alternating direction on every row (a serpentine).
//
// # State
//
// [Alternator] is stateful: every call to Walk flips its [Toggle], whether
// or not the returned sequence is consumed. Sharing one Alternator between
// regions shares the toggle. Call Reset to rewind it.
package traverse
