// Package layout computes element geometry for slides.
//
// Each layout (Grid, List, Hierarchy, Flow) is a pure function from bounds
// and elements to placed rectangles and connector endpoints, measured in
// inches. Nothing here touches a presentation backend: callers take the
// returned geometry and create shapes through whatever backend they use.
// Identical inputs always produce identical geometry.
package layout
