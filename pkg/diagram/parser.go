package diagram

import (
	"context"
	"strings"
	"time"

	"github.com/slidesmith/slidesmith/pkg/errors"
	"github.com/slidesmith/slidesmith/pkg/observability"
)

// Dialect names a supported diagram DSL.
type Dialect string

// Supported dialects.
const (
	DialectFlow     Dialect = "mermaid"
	DialectActivity Dialect = "plantuml"
)

// DetectDialect guesses the dialect of diagram source text. Detection is
// heuristic and checks, in order: explicit activity markers (@startuml /
// @enduml), activity keyword shape (a leading "start" or the action
// delimiters ':' and ';'), flow headers (graph / flowchart), and flow
// connector tokens. Anything else defaults to the flow dialect.
func DetectDialect(code string) Dialect {
	lower := strings.ToLower(strings.TrimSpace(code))

	if strings.Contains(lower, "@startuml") || strings.Contains(lower, "@enduml") {
		return DialectActivity
	}
	if strings.HasPrefix(lower, "start") || (strings.Contains(code, ":") && strings.Contains(code, ";")) {
		return DialectActivity
	}
	if strings.HasPrefix(lower, "graph ") || strings.HasPrefix(lower, "flowchart ") {
		return DialectFlow
	}
	if strings.Contains(code, "-->") || strings.Contains(code, "---") {
		return DialectFlow
	}
	return DialectFlow
}

// Parse detects the dialect of code and parses it into a Diagram.
func Parse(ctx context.Context, code string) (*Diagram, error) {
	return ParseAs(ctx, code, DetectDialect(code))
}

// ParseAs parses code as the given dialect, bypassing detection. An
// unknown dialect is an INVALID_INPUT error.
func ParseAs(ctx context.Context, code string, dialect Dialect) (*Diagram, error) {
	hooks := observability.Parser()
	hooks.OnParseStart(ctx, string(dialect))
	start := time.Now()

	var d *Diagram
	var err error
	switch dialect {
	case DialectActivity:
		d, err = ParseActivity(code)
	case DialectFlow:
		d, err = ParseFlowchart(code)
	default:
		err = errors.New(errors.ErrCodeInvalidInput, "unknown diagram dialect %q", dialect)
	}

	nodeCount, edgeCount := 0, 0
	if d != nil {
		nodeCount, edgeCount = len(d.Nodes), len(d.Edges)
	}
	hooks.OnParseComplete(ctx, string(dialect), nodeCount, edgeCount, time.Since(start), err)
	return d, err
}
