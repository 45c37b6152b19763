// Package viz renders hypergraphs in the Graphviz dot language.
//
// Hyperedges are represented as dotted nodes, links as arrows between their
// endpoints and nested hypergraphs as clusters.
package viz

import (
	"strings"

	"github.com/hupe1980/hypergo/hyper"
)

// DotFormatter customizes the labels of an AsDot rendering. Each func
// receives the element's id and value and returns its label. Nil funcs fall
// back to the id.
type DotFormatter[T comparable] struct {
	Node  func(id hyper.Path, value T) string
	Edge  func(id hyper.Path, value T) string
	Link  func(id hyper.Path, value *T) string
	Graph func(id hyper.Path, value *T) string
}

// AsDot renders the hypergraph in dot notation. A nil formatter labels every
// element with its id and omits hypergraph labels.
func AsDot[T comparable](g *hyper.Graph[T], formatter *DotFormatter[T]) string {
	children := make(map[string][]hyper.Path)

	for _, id := range g.IDs() {
		if id.IsEmpty() {
			continue
		}

		parent := id.Parent().String()
		children[parent] = append(children[parent], id)
	}

	var sb strings.Builder

	emitLevel(&sb, g, formatter, children, hyper.EmptyPath())

	return sb.String()
}

func emitLevel[T comparable](sb *strings.Builder, g *hyper.Graph[T], formatter *DotFormatter[T], children map[string][]hyper.Path, level hyper.Path) {
	if level.IsEmpty() {
		sb.WriteString("strict digraph {\n")
	} else {
		sb.WriteString("subgraph cluster {\n")
	}

	if formatter != nil && formatter.Graph != nil {
		value, err := g.GraphValue(level)
		if err == nil {
			sb.WriteString("\tlabel = \"" + escape(formatter.Graph(level, value)) + "\";\n")
		}
	}

	ids := children[level.String()]

	// Local ids are handed out monotonically, so id order is insertion order.
	for _, id := range ids {
		if kind, err := g.ElementKind(id); err == nil && kind == hyper.KindNode {
			label := id.String()

			if formatter != nil && formatter.Node != nil {
				if v, err := g.NodeValue(id); err == nil {
					label = formatter.Node(id, v)
				}
			}

			sb.WriteString("\t\"" + id.String() + "\" [label=\"" + escape(label) + "\"];\n")
		}
	}

	for _, id := range ids {
		if kind, err := g.ElementKind(id); err == nil && kind == hyper.KindEdge {
			label := id.String()

			if formatter != nil && formatter.Edge != nil {
				if v, err := g.EdgeValue(id); err == nil {
					label = formatter.Edge(id, v)
				}
			}

			sb.WriteString("\t\"" + id.String() + "\" [style = dotted, label=\"" + escape(label) + "\"];\n")
		}
	}

	for _, id := range ids {
		if kind, err := g.ElementKind(id); err == nil && kind == hyper.KindLink {
			source, target, err := g.LinkEndpoints(id)
			if err != nil {
				continue
			}

			label := id.String()

			if formatter != nil && formatter.Link != nil {
				if v, err := g.LinkValue(id); err == nil {
					label = formatter.Link(id, v)
				}
			}

			sb.WriteString("\t\"" + source.String() + "\" -> \"" + target.String() + "\" [label=\"" + escape(label) + "\"];\n")
		}
	}

	for _, id := range ids {
		if kind, err := g.ElementKind(id); err == nil && kind == hyper.KindGraph {
			emitLevel(sb, g, formatter, children, id)
		}
	}

	sb.WriteString("}\n")
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}
