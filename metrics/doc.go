// Package metrics appends one row per benchmark run to a fixed-schema CSV
// file:
//
//	algorithm,graph_name,vertices,edges,colors_used,known_optimal,runtime_ms
//
// The header is written only when the file is absent or empty, so
// repeated runs against the same results file accumulate rows rather than
// duplicating headers. known_optimal is left blank when the caller doesn't
// supply it; runtime_ms is always rendered with exactly three decimal
// places.
package metrics
