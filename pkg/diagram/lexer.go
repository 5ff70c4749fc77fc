package diagram

import "strings"

// edgeToken is a single connector token found in a flow-DSL line, e.g.
// "-->" or "-.->|label|". Start and End are byte offsets into the line.
type edgeToken struct {
	Start, End int
	Label      string
	HasLabel   bool
	Style      EdgeStyle
	Kind       EdgeKind
}

// edgeSpec describes one recognizable connector literal.
// Specs are matched longest-first at each scan position, so a labeled
// token always beats its plain prefix (e.g. "-->|x|" over "-->").
type edgeSpec struct {
	literal   string
	labelable bool
	style     EdgeStyle
	kind      EdgeKind
}

var edgeSpecs = []edgeSpec{
	{"-.->", true, EdgeDashed, EdgeArrow},
	{"===>", false, EdgeSolid, EdgeThickArrow},
	{"-->", true, EdgeSolid, EdgeArrow},
	{"---", true, EdgeSolid, EdgeLine},
	{"-.-", true, EdgeDashed, EdgeLine},
}

// lexEdges scans a line left to right and returns all connector tokens in
// order. At each position the longest possible token wins; text between
// tokens is left for node-reference parsing. This replaces a regex
// scan-and-filter approach with an explicit longest-match-wins lexer while
// keeping the same token priorities.
func lexEdges(line string) []edgeToken {
	var tokens []edgeToken
	for i := 0; i < len(line); {
		tok, ok := matchEdgeAt(line, i)
		if !ok {
			i++
			continue
		}
		tokens = append(tokens, tok)
		i = tok.End
	}
	return tokens
}

// matchEdgeAt attempts to match a connector token at position i.
// Returns the longest match among all specs, or ok=false.
func matchEdgeAt(line string, i int) (edgeToken, bool) {
	var best edgeToken
	found := false

	for _, spec := range edgeSpecs {
		if !strings.HasPrefix(line[i:], spec.literal) {
			continue
		}
		tok := edgeToken{
			Start: i,
			End:   i + len(spec.literal),
			Style: spec.style,
			Kind:  spec.kind,
		}
		// A labeled variant requires "|label|" immediately after the literal.
		if spec.labelable {
			if label, end, ok := matchLabel(line, tok.End); ok {
				tok.Label = label
				tok.HasLabel = true
				tok.End = end
			}
		}
		if !found || tok.End-tok.Start > best.End-best.Start {
			best = tok
			found = true
		}
	}
	return best, found
}

// matchLabel matches "|text|" starting at i, where text contains no pipe.
// Returns the label and the offset just past the closing pipe.
func matchLabel(line string, i int) (string, int, bool) {
	if i >= len(line) || line[i] != '|' {
		return "", 0, false
	}
	j := strings.IndexByte(line[i+1:], '|')
	if j < 0 {
		return "", 0, false
	}
	return line[i+1 : i+1+j], i + 1 + j + 1, true
}
