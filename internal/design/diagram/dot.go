package diagram

import (
	"fmt"
	"strings"

	"github.com/archfind/arch-backend/internal/design/domain"
)

// ToDOT renders the graph in Graphviz DOT form for external tooling.
func ToDOT(g domain.DiagramGraph, title string) string {
	var b strings.Builder
	b.WriteString("digraph G {\n  rankdir=TB;\n  node [shape=box, style=rounded];\n")
	if title != "" {
		b.WriteString(fmt.Sprintf(`  labelloc="t"; label="%s"; fontname="Helvetica";`, title))
		b.WriteString("\n")
	}

	for _, n := range g.Nodes {
		style := `shape=box,style="rounded,filled",fillcolor="#eef6ff"`
		if n.ID == string(domain.CategoryDatabase) || n.ID == string(domain.CategoryStorage) {
			style = `shape=cylinder,style="filled",fillcolor="#fff3cd"`
		}
		b.WriteString(fmt.Sprintf(`  "%s" [label="%s", %s];`+"\n", n.ID, n.Label, style))
	}

	for _, e := range g.Edges {
		b.WriteString(fmt.Sprintf(`  "%s" -> "%s";`+"\n", e.From, e.To))
	}

	b.WriteString("}\n")
	return b.String()
}
