// Package render holds the course-map renderers.
//
// The [nodelink] subpackage draws the catalog as a Graphviz node-link
// diagram: one box per course, grouped into year and semester columns, with
// prerequisite arrows and dashed corequisite links. Boxes are filled with the
// highlight colors of package highlight when a focal course is given.
//
//	g, _ := dag.FromRegistry(reg)
//	dot := nodelink.ToDOT(g, nodelink.Options{ClusterByTerm: true})
//	svg, err := nodelink.RenderSVG(ctx, dot)
//
// [nodelink]: github.com/matzehuels/coursemap/pkg/render/nodelink
package render
