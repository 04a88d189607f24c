// Package diagram draws a saes.Trace as a Graphviz graph, one node per
// intermediate state and one cluster per round.
package diagram

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"saes-go/pkg/saes"

	"github.com/goccy/go-graphviz"
)

const header = `digraph saes {
    graph [fontname = "monospace" rankdir=TB bgcolor=transparent];
    node [fontname = "courier new" shape=box style="rounded"];
    edge [fontname = "courier new"];
`

// DOT returns the Graphviz source for tr.
func DOT(tr saes.Trace) string {
	var b strings.Builder
	b.WriteString(header)
	fmt.Fprintf(&b, "    label=\"%s %s -> %s\";\n", tr.Direction,
		saes.FormatWord(tr.Input, "hex"), saes.FormatWord(tr.Output, "hex"))

	round := -1
	for i, st := range tr.Steps {
		if st.Round != round {
			if round >= 0 {
				b.WriteString("    }\n")
			}
			round = st.Round
			fmt.Fprintf(&b, "    subgraph cluster_round%d {\n        label=\"%s\";\n        color=grey;\n", round, roundLabel(round))
		}
		fmt.Fprintf(&b, "        s%d [label=\"%s\\n%s\\n%s\"%s];\n", i,
			st.Name, grid(st.State), saes.Binary(uint64(st.Word()), 16), nodeStyle(i, len(tr.Steps)))
	}
	if round >= 0 {
		b.WriteString("    }\n")
	}

	for i := 1; i < len(tr.Steps); i++ {
		fmt.Fprintf(&b, "    s%d -> s%d;\n", i-1, i)
	}
	b.WriteString("}\n")
	return b.String()
}

func roundLabel(round int) string {
	if round == 0 {
		return "whitening"
	}
	return fmt.Sprintf("round %d", round)
}

func nodeStyle(i, n int) string {
	if i == 0 || i == n-1 {
		return ` style="rounded,filled" fillcolor=lightgrey`
	}
	return ""
}

// grid prints the state as its 2x2 matrix, rows separated by a newline.
func grid(s saes.State) string {
	return fmt.Sprintf("%x %x\\n%x %x", s[0], s[2], s[1], s[3])
}

// SVG renders tr to SVG.
func SVG(ctx context.Context, tr saes.Trace) ([]byte, error) {
	graph, err := graphviz.ParseBytes([]byte(DOT(tr)))
	if err != nil {
		return nil, fmt.Errorf("diagram: parse: %w", err)
	}
	defer graph.Close()

	g, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("diagram: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := g.Render(ctx, graph, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("diagram: render: %w", err)
	}
	return buf.Bytes(), nil
}
