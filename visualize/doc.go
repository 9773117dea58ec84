// Package visualize renders a produced colouring as a Graphviz DOT graph,
// one fill colour per colour class, and optionally rasterizes it to SVG.
// This is the visual counterpart to the raw per-step snapshot text channel
// (package snapshot): where a snapshot is a trace over time for replay,
// ToDOT/RenderSVG produce a single human-viewable picture of one
// colouring.
package visualize
