// Package diagram parses text diagram DSLs into typed graph structures.
//
// Two dialects are supported: a Mermaid-style flow dialect (graph headers,
// bracket-delimited node shapes, arrow chains) and a PlantUML-style activity
// dialect (start/stop, :action; statements, if/else branches). Parse detects
// the dialect automatically; ParseFlowchart and ParseActivity parse a known
// dialect directly.
//
// Parsed diagrams are plain values: nodes in first-seen order, edges in
// source order, and every edge endpoint resolvable through NodeByID.
package diagram
