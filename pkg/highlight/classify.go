package highlight

import (
	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/relation"
)

// Classifier assigns a [Category] to candidate courses relative to a focal
// course.
type Classifier struct {
	res *relation.Resolver
}

// NewClassifier returns a Classifier backed by res.
func NewClassifier(res *relation.Resolver) *Classifier {
	return &Classifier{res: res}
}

// focus holds the focal course's resolved relations so that they are
// computed once per focal course, not once per candidate.
type focus struct {
	id         string
	prereqs    []catalog.Course
	coreqs     []catalog.Course
	dependents []catalog.Course
	indirect   []catalog.Course
}

// check is one step of the precedence list.
type check struct {
	category Category
	match    func(f *focus, c catalog.Course) bool
}

var checks = []check{
	{Self, func(f *focus, c catalog.Course) bool {
		return c.ID == f.id
	}},
	{Prerequisite, func(f *focus, c catalog.Course) bool {
		return relation.Contains(f.prereqs, c.ID)
	}},
	{Corequisite, func(f *focus, c catalog.Course) bool {
		return relation.Contains(f.coreqs, c.ID)
	}},
	{Dependent, func(f *focus, c catalog.Course) bool {
		return relation.Contains(f.dependents, c.ID)
	}},
	{IndirectPrerequisite, func(f *focus, c catalog.Course) bool {
		return relation.Contains(f.indirect, c.ID)
	}},
}

// Classify returns the category of c relative to focal. A nil focal yields
// None for every candidate.
func (cl *Classifier) Classify(focal *catalog.Course, c catalog.Course) Category {
	if focal == nil {
		return None
	}
	return cl.resolve(focal.ID).classify(c)
}

// Map classifies every course in courses against focal and returns the
// result keyed by course ID.
func (cl *Classifier) Map(focal *catalog.Course, courses []catalog.Course) map[string]Category {
	out := make(map[string]Category, len(courses))
	if focal == nil {
		for _, c := range courses {
			out[c.ID] = None
		}
		return out
	}
	f := cl.resolve(focal.ID)
	for _, c := range courses {
		out[c.ID] = f.classify(c)
	}
	return out
}

// Focus classifies every course in the registry against the effective
// course of f.
func (cl *Classifier) Focus(f Focus) map[string]Category {
	reg := cl.res.Registry()
	return cl.Map(f.Focal(reg), reg.All())
}

func (cl *Classifier) resolve(id string) *focus {
	return &focus{
		id:         id,
		prereqs:    cl.res.DirectPrerequisites(id),
		coreqs:     cl.res.DirectCorequisites(id),
		dependents: cl.res.Dependents(id),
		indirect:   cl.res.IndirectPrerequisites(id),
	}
}

func (f *focus) classify(c catalog.Course) Category {
	for _, chk := range checks {
		if chk.match(f, c) {
			return chk.category
		}
	}
	return None
}
