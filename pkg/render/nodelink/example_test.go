package nodelink_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/dag"
	"github.com/matzehuels/coursemap/pkg/highlight"
	"github.com/matzehuels/coursemap/pkg/relation"
	"github.com/matzehuels/coursemap/pkg/render/nodelink"
)

func ExampleToDOT() {
	reg := catalog.Default()
	g, _ := dag.FromRegistry(reg)

	focal, _ := reg.ByID("ELG2136")
	cl := highlight.NewClassifier(relation.New(reg))

	dot := nodelink.ToDOT(g, nodelink.Options{
		Highlights:    cl.Map(&focal, reg.All()),
		ClusterByTerm: true,
	})

	fmt.Println(strings.Count(dot, "subgraph"), "terms")
	fmt.Println(strings.Contains(dot, `"ELG2138" -> "ELG2136";`))
	// Output:
	// 8 terms
	// true
}
