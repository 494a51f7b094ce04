// Package layout turns a validated braid word into paintable geometry.
//
// # Coordinate System
//
// Diagrams read top to bottom. Slot s is centered at
// x = (s + 0.5) × StrandSpacing, so the frame width is
// strands × StrandSpacing. Vertical space is divided into bands of
// height RowSpacing; band b spans y ∈ [b × RowSpacing, (b+1) × RowSpacing].
// In the default extended mode every generator gets its own band, so band
// k is exactly the diagram row between permutation snapshots k and k+1.
//
// # Primitives
//
// [Build] produces an ordered sequence of two primitive kinds:
//
//   - [Segment]: a strand continuing straight through a band it has no
//     crossing in.
//   - [Crossing]: two strands swapping adjacent slots, carrying all four
//     corner points plus which strand passes in front.
//
// The sequence is emitted band by band, left to right, so a renderer that
// paints primitives in order (drawing each crossing's front strand after
// its back strand) produces a correct diagram with no further sorting.
//
// # Compact Mode
//
// With Config.Compact, consecutive crossings touching disjoint slot pairs
// share a band, giving the dense rendering where independent crossings
// sit side by side. The permutation semantics are unchanged; only the
// vertical placement differs.
//
// Build is a pure function of (word, config): identical inputs yield an
// identical primitive sequence, which makes redraw after an append cheap
// and diffs in tests exact.
package layout
