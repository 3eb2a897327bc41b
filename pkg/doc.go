// Package pkg provides the core libraries for coursemap.
//
// # Overview
//
// Coursemap presents a degree program as a graph of courses joined by
// prerequisite and corequisite links. Given one focal course it answers
// which courses must come first, which must be taken alongside, and which
// open up afterwards. The pkg directory is organized leaf to root:
//
//  1. [catalog] - Course records, the registry, the seed program and filters
//  2. [relation] - Direct, indirect and dependent course queries
//  3. [highlight] - Per-course categories relative to a focus
//  4. [timeline], [dag], [lint] - Derived views and catalog checks
//  5. [render/nodelink], [pipeline], [cache] - Graphviz output with caching
//
// # Architecture
//
// Data flows one way:
//
//	catalog.Registry (seed table or JSON/TOML file)
//	         ↓
//	relation.Resolver (pure queries, unknown IDs yield empty results)
//	         ↓
//	highlight.Classifier / catalog.Filter
//	         ↓
//	CLI, terminal explorer, DOT/SVG/PNG, preview server
//
// The registry is never mutated after construction, so every layer may
// share it between goroutines.
//
// # Quick Start
//
//	reg := catalog.Default()
//	res := relation.New(reg)
//
//	for _, c := range res.DirectPrerequisites("ELG4176") {
//	    fmt.Println(c.Code, c.Name)
//	}
//
//	focal, _ := reg.ByID("ELG3175")
//	cats := highlight.NewClassifier(res).Map(&focal, reg.All())
//	fmt.Println(cats["ELG3126"]) // corequisite
//
// Render the highlighted graph:
//
//	runner := pipeline.NewRunner(nil, nil, nil)
//	result, _ := runner.Render(ctx, reg, pipeline.Options{
//	    Focus:   "ELG3175",
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	os.WriteFile("elg3175.svg", result.Artifacts["svg"], 0o644)
//
// # Supporting Packages
//
// [errors] - Coded errors for the load, CLI and HTTP boundaries.
//
// [observability] - Hooks for catalog loads, renders, cache traffic and
// HTTP requests.
//
// [buildinfo] - Version information injected at build time.
//
// [catalog]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/catalog
// [relation]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/relation
// [highlight]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/highlight
// [timeline]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/timeline
// [dag]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/dag
// [lint]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/lint
// [render/nodelink]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/render/nodelink
// [pipeline]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/cache
// [errors]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/errors
// [observability]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/coursemap/pkg/buildinfo
package pkg
