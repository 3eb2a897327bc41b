// Package nodelink renders course graphs as node-link diagrams.
//
// # Overview
//
// This package produces directed graph visualizations using Graphviz. Each
// course is a rounded box; prerequisite edges point from the prerequisite to
// the course that requires it, so the diagram reads left to right in program
// order. Corequisite links are dashed.
//
// # Usage
//
// Build the course graph, convert it to DOT, then render:
//
//	g, _ := dag.FromRegistry(reg)
//	dot := nodelink.ToDOT(g, nodelink.Options{
//	    Highlights:    classifier.Map(focal, reg.All()),
//	    ClusterByTerm: true,
//	})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//	png, err := nodelink.RenderPNG(ctx, dot)
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - Highlights: per-course highlight category; fills and borders follow
//     [highlight.Category.Style]
//   - Detailed: include course name, units and term in labels
//   - ClusterByTerm: group courses into one cluster per year and semester
//   - ShowCorequisites: draw corequisite links
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG and
// PNG rendering; no external Graphviz installation is needed.
package nodelink
