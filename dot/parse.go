package dot

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ExportedEdge is one edge recovered from Export output.
type ExportedEdge struct {
	From   int
	To     int
	Weight int64
	Tree   bool
}

// edgeRe matches the attribute prefix every edge line starts with;
// attributes after tree=… are ignored.
var edgeRe = regexp.MustCompile(`^(\d+)\s*->\s*(\d+)\s*\[weight=(\d+),\s*tree=(true|false)\b`)

// nodeRe matches node declarations, whose labels may contain "->".
var nodeRe = regexp.MustCompile(`^\d+\s*\[label=`)

// headerRe matches the opening line, whose quoted name may contain "->".
var headerRe = regexp.MustCompile(`^digraph\s`)

// ParseEdges extracts every edge declaration from DOT text produced by
// Export, in order. Header, node and brace lines are skipped; a line that
// contains "->" but does not match the edge shape is ErrMalformedLine.
// Complexity: O(len(text)).
func ParseEdges(text string) ([]ExportedEdge, error) {
	var res []ExportedEdge
	sc := bufio.NewScanner(strings.NewReader(text))
	for lineNo := 1; sc.Scan(); lineNo++ {
		line := strings.TrimSpace(sc.Text())
		if !strings.Contains(line, "->") || headerRe.MatchString(line) || nodeRe.MatchString(line) {
			continue
		}
		m := edgeRe.FindStringSubmatch(line)
		if m == nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}

		from, err1 := strconv.Atoi(m[1])
		to, err2 := strconv.Atoi(m[2])
		w, err3 := strconv.ParseInt(m[3], 10, 64)
		if err1 != nil || err2 != nil || err3 != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrMalformedLine, lineNo, line)
		}
		res = append(res, ExportedEdge{From: from, To: to, Weight: w, Tree: m[4] == "true"})
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}

	return res, nil
}
