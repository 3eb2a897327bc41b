package dag

import (
	"errors"

	"github.com/matzehuels/coursemap/pkg/catalog"
)

// Node metadata keys set by FromRegistry.
const (
	MetaCode     = "code"
	MetaName     = "name"
	MetaYear     = "year"
	MetaSemester = "semester"
	MetaUnits    = "units"
)

// Dangling is a prerequisite or corequisite reference to a course that does
// not exist in the registry.
type Dangling struct {
	From string   // Course declaring the reference
	To   string   // Unresolved course ID
	Kind EdgeKind // Relationship the reference was declared as
}

// FromRegistry builds the course graph: one node per course in declaration
// order, one prerequisite edge per resolvable prerequisite ID and one
// corequisite edge per resolvable corequisite ID.
//
// Dangling references are not added; they are returned so callers can
// report them. FromRegistry never fails.
func FromRegistry(reg *catalog.Registry) (*DAG, []Dangling) {
	g := New(Metadata{"courses": reg.Len()})
	courses := reg.All()

	for _, c := range courses {
		_ = g.AddNode(Node{ID: c.ID, Meta: Metadata{
			MetaCode:     c.Code,
			MetaName:     c.Name,
			MetaYear:     c.Year,
			MetaSemester: string(c.Semester),
			MetaUnits:    c.Units,
		}})
	}

	var dangling []Dangling
	add := func(from, to string, kind EdgeKind) {
		if err := g.AddEdge(Edge{From: from, To: to, Kind: kind}); errors.Is(err, ErrUnknownTargetNode) {
			dangling = append(dangling, Dangling{From: from, To: to, Kind: kind})
		}
	}
	for _, c := range courses {
		for _, id := range c.Prerequisites {
			add(c.ID, id, EdgePrerequisite)
		}
		for _, id := range c.Corequisites {
			add(c.ID, id, EdgeCorequisite)
		}
	}
	return g, dangling
}
