// Package pipeviz renders combine pipelines as Graphviz documents and
// images. Combinators are walked through their Inputs; any other Sampler is
// a leaf labeled by its type.
package pipeviz

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"noise-go/pkg/combine"
	"noise-go/pkg/noise"
)

const header = `digraph pipeline {
    graph [fontname = "monospace" rankdir=BT];
    node [fontname = "courier new" shape=box style=rounded];
    edge [fontname = "courier new"];
    bgcolor=transparent;
`

// Dot lays the pipeline rooted at root out as a DOT document. Edges point
// from inputs to the combinator consuming them; a sampler reused in several
// places appears once with multiple outgoing edges.
func Dot(root noise.Sampler) string {
	var b strings.Builder
	b.WriteString(header)
	ids := make(map[noise.Sampler]string)
	var walk func(s noise.Sampler) string
	walk = func(s noise.Sampler) string {
		if id, ok := ids[s]; ok {
			return id
		}
		id := fmt.Sprintf("n%d", len(ids))
		ids[s] = id
		fmt.Fprintf(&b, "    %s [label=%q]\n", id, nodeLabel(s))
		if n, ok := s.(combine.Node); ok {
			for _, in := range n.Inputs() {
				fmt.Fprintf(&b, "    %s -> %s\n", walk(in), id)
			}
		}
		return id
	}
	rootID := walk(root)
	fmt.Fprintf(&b, "    %s [style=\"rounded,bold\"]\n", rootID)
	b.WriteString("}\n")
	return b.String()
}

func nodeLabel(s noise.Sampler) string {
	if c, ok := s.(*combine.Constant); ok {
		return fmt.Sprintf("constant %g", c.Value)
	}
	if n, ok := s.(combine.Node); ok {
		return n.Label()
	}
	return strings.TrimPrefix(fmt.Sprintf("%T", s), "*")
}

// RenderSVG lays out the pipeline graph and returns the rendered SVG.
func RenderSVG(ctx context.Context, root noise.Sampler) ([]byte, error) {
	return render(ctx, root, graphviz.SVG)
}

// RenderPNG lays out the pipeline graph and returns the rendered PNG.
func RenderPNG(ctx context.Context, root noise.Sampler) ([]byte, error) {
	return render(ctx, root, graphviz.PNG)
}

func render(ctx context.Context, root noise.Sampler, format graphviz.Format) ([]byte, error) {
	graph, err := graphviz.ParseBytes([]byte(Dot(root)))
	if err != nil {
		return nil, fmt.Errorf("pipeviz: parsing pipeline graph: %w", err)
	}
	g, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("pipeviz: initializing graphviz: %w", err)
	}
	defer g.Close()
	var buf bytes.Buffer
	if err := g.Render(ctx, graph, format, &buf); err != nil {
		return nil, fmt.Errorf("pipeviz: rendering pipeline graph: %w", err)
	}
	return buf.Bytes(), nil
}
