package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/coursemap/pkg/dag"
	"github.com/matzehuels/coursemap/pkg/highlight"
)

// Options configures node-link diagram rendering.
type Options struct {
	// Highlights maps course IDs to their highlight category. Courses not in
	// the map are drawn with the None style.
	Highlights map[string]highlight.Category

	// Detailed includes the course name, units and term in node labels.
	// When false, only the course code is shown.
	Detailed bool

	// ClusterByTerm groups courses into one cluster per year and semester.
	ClusterByTerm bool

	// ShowCorequisites draws corequisite links as dashed edges.
	ShowCorequisites bool
}

// ToDOT converts a course graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG] or [RenderPNG].
func ToDOT(g *dag.DAG, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, color=black, fontname=\"Helvetica\", fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  edge [color=\"#6b7280\"];\n")
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.25;\n")
	buf.WriteString("\n")

	if opts.ClusterByTerm {
		for _, term := range terms(g) {
			fmt.Fprintf(&buf, "  subgraph %q {\n", term.name)
			fmt.Fprintf(&buf, "    label=%q;\n", term.label)
			buf.WriteString("    style=\"rounded,dashed\";\n")
			buf.WriteString("    color=\"#9ca3af\";\n")
			for _, n := range term.nodes {
				writeNode(&buf, "    ", n, opts)
			}
			buf.WriteString("  }\n")
		}
	} else {
		for _, n := range g.Nodes() {
			writeNode(&buf, "  ", n, opts)
		}
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		switch e.Kind {
		case dag.EdgePrerequisite:
			fmt.Fprintf(&buf, "  %q -> %q;\n", e.To, e.From)
		case dag.EdgeCorequisite:
			if opts.ShowCorequisites {
				fmt.Fprintf(&buf, "  %q -> %q [style=dashed, dir=none, color=%q, constraint=false];\n",
					e.To, e.From, highlight.Corequisite.Style().Border)
			}
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func writeNode(buf *bytes.Buffer, indent string, n *dag.Node, opts Options) {
	cat := opts.Highlights[n.ID]
	style := cat.Style()
	attrs := []string{
		fmt.Sprintf("label=%q", fmtLabel(*n, opts.Detailed)),
		fmt.Sprintf("fillcolor=%q", style.Fill),
		fmt.Sprintf("color=%q", style.Border),
	}
	switch cat {
	case highlight.None:
	case highlight.Self:
		attrs = append(attrs, "penwidth=3", fmt.Sprintf("tooltip=%q", cat.Label()))
	default:
		attrs = append(attrs, "penwidth=2", fmt.Sprintf("tooltip=%q", cat.Label()))
	}
	fmt.Fprintf(buf, "%s%q [%s];\n", indent, n.ID, strings.Join(attrs, ", "))
}

func fmtLabel(n dag.Node, detailed bool) string {
	code, _ := n.Meta[dag.MetaCode].(string)
	if code == "" {
		code = n.ID
	}
	if !detailed {
		return code
	}

	parts := []string{code}
	if name, _ := n.Meta[dag.MetaName].(string); name != "" {
		parts = append(parts, name)
	}
	var info []string
	if units, ok := n.Meta[dag.MetaUnits].(int); ok && units > 0 {
		info = append(info, strconv.Itoa(units)+" units")
	}
	if year, ok := n.Meta[dag.MetaYear].(int); ok && year > 0 {
		sem, _ := n.Meta[dag.MetaSemester].(string)
		info = append(info, strings.TrimSpace(fmt.Sprintf("Y%d %s", year, sem)))
	}
	if len(info) > 0 {
		parts = append(parts, strings.Join(info, ", "))
	}
	return strings.Join(parts, "\n")
}

type termCluster struct {
	name  string
	label string
	nodes []*dag.Node
}

// terms groups nodes by (year, semester) in first-seen order, which for a
// registry-built graph is program order.
func terms(g *dag.DAG) []termCluster {
	var out []termCluster
	index := make(map[string]int)
	for _, n := range g.Nodes() {
		year, _ := n.Meta[dag.MetaYear].(int)
		sem, _ := n.Meta[dag.MetaSemester].(string)
		name := fmt.Sprintf("cluster_y%d_%s", year, strings.ToLower(sem))
		i, ok := index[name]
		if !ok {
			label := strings.TrimSpace(fmt.Sprintf("Year %d %s", year, sem))
			if year == 0 {
				label = "Unscheduled"
			}
			i = len(out)
			index[name] = i
			out = append(out, termCluster{name: name, label: label})
		}
		out[i].nodes = append(out[i].nodes, n)
	}
	return out
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	data, err := render(ctx, dot, graphviz.SVG)
	if err != nil {
		return nil, err
	}
	return normalizeViewBox(data), nil
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(ctx context.Context, dot string) ([]byte, error) {
	return render(ctx, dot, graphviz.PNG)
}

func render(ctx context.Context, dot string, format graphviz.Format) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-based svg header with a pixel
// viewBox so the diagram scales when embedded.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
