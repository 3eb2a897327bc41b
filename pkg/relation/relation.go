package relation

import (
	"github.com/matzehuels/coursemap/pkg/catalog"
)

// Resolver computes prerequisite, corequisite and dependent relationships
// over a registry. It holds no state besides the registry and is safe for
// concurrent use.
type Resolver struct {
	reg *catalog.Registry
}

// New returns a Resolver over reg. A nil registry behaves as empty.
func New(reg *catalog.Registry) *Resolver {
	return &Resolver{reg: reg}
}

// Registry returns the registry the resolver reads from.
func (r *Resolver) Registry() *catalog.Registry { return r.reg }

// DirectPrerequisites returns the courses listed as prerequisites of id, in
// list order. Unresolvable references are dropped; an unknown id yields nil.
func (r *Resolver) DirectPrerequisites(id string) []catalog.Course {
	c, ok := r.reg.ByID(id)
	if !ok {
		return nil
	}
	return r.reg.Resolve(c.Prerequisites)
}

// DirectCorequisites returns the courses listed as corequisites of id, in
// list order. Unresolvable references are dropped; an unknown id yields nil.
func (r *Resolver) DirectCorequisites(id string) []catalog.Course {
	c, ok := r.reg.ByID(id)
	if !ok {
		return nil
	}
	return r.reg.Resolve(c.Corequisites)
}

// IndirectPrerequisites returns the prerequisites of id's direct
// prerequisites that are not themselves direct prerequisites of id.
// Duplicates are removed keeping the first occurrence. The search depth is
// fixed at two hops.
func (r *Resolver) IndirectPrerequisites(id string) []catalog.Course {
	direct := r.DirectPrerequisites(id)
	if len(direct) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(direct))
	for _, p := range direct {
		seen[p.ID] = struct{}{}
	}

	var out []catalog.Course
	for _, p := range direct {
		for _, pp := range r.DirectPrerequisites(p.ID) {
			if _, dup := seen[pp.ID]; dup {
				continue
			}
			seen[pp.ID] = struct{}{}
			out = append(out, pp)
		}
	}
	return out
}

// Dependents returns every course that lists id as a resolvable direct
// prerequisite, in registry order. The registry stores forward edges only,
// so this is a full scan.
func (r *Resolver) Dependents(id string) []catalog.Course {
	if !r.reg.Has(id) {
		return nil
	}
	var out []catalog.Course
	for _, c := range r.reg.All() {
		for _, p := range c.Prerequisites {
			if p == id {
				out = append(out, c)
				break
			}
		}
	}
	return out
}

// Relations bundles every relationship of a single course.
type Relations struct {
	Course                catalog.Course   `json:"course"`
	Prerequisites         []catalog.Course `json:"prerequisites"`
	IndirectPrerequisites []catalog.Course `json:"indirect_prerequisites"`
	Corequisites          []catalog.Course `json:"corequisites"`
	Dependents            []catalog.Course `json:"dependents"`
}

// Relations returns all relationships of id. The boolean is false when id is
// not in the registry, in which case the zero Relations is returned.
func (r *Resolver) Relations(id string) (Relations, bool) {
	c, ok := r.reg.ByID(id)
	if !ok {
		return Relations{}, false
	}
	return Relations{
		Course:                c,
		Prerequisites:         orEmpty(r.DirectPrerequisites(id)),
		IndirectPrerequisites: orEmpty(r.IndirectPrerequisites(id)),
		Corequisites:          orEmpty(r.DirectCorequisites(id)),
		Dependents:            orEmpty(r.Dependents(id)),
	}, true
}

// orEmpty keeps JSON output as [] rather than null.
func orEmpty(courses []catalog.Course) []catalog.Course {
	if courses == nil {
		return []catalog.Course{}
	}
	return courses
}

// IDs returns the IDs of courses in order.
func IDs(courses []catalog.Course) []string {
	if len(courses) == 0 {
		return nil
	}
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

// Contains reports whether courses includes a course with the given id.
func Contains(courses []catalog.Course, id string) bool {
	for _, c := range courses {
		if c.ID == id {
			return true
		}
	}
	return false
}
