// Package surface implements the ruler surface as a declarative view-model.
//
// A [Surface] holds two alternative rulers, one per [ruler.Unit], of which
// exactly one is visible. Each ruler has a horizontal and a vertical scale
// bar and a cache of integer tick labels.
//
// # Rendering
//
// [Surface.Render] maps a viewport and configuration onto the surface:
//
//  1. The ruler of the configured unit becomes active; the other is hidden.
//  2. The visible physical length per axis is derived from the viewport.
//  3. The view box and both scale bars are stretched to the drawing extents.
//  4. The desired label set (one label per whole unit on each axis) is
//     reconciled against the cache; only missing labels are created.
//
// The label cache is monotonic: labels are never removed, so calling Render
// repeatedly with the same input adds nothing, and growing the viewport only
// adds labels for newly visible offsets. Render returns the labels it added
// so that a live view can patch just the delta.
//
// On a centimeter ruler the first vertical label is never created, to keep
// the corner next to the origin uncluttered.
//
// Sinks in [github.com/matzehuels/screenruler/pkg/render/sink] turn a
// rendered surface into SVG, HTML, JSON, PNG or PDF.
package surface
