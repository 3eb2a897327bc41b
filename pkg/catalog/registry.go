package catalog

import (
	"errors"
	"fmt"
	"slices"
)

var (
	// ErrInvalidCourseID is returned by [New] when a course has an empty ID.
	ErrInvalidCourseID = errors.New("course ID must not be empty")

	// ErrDuplicateCourseID is returned by [New] when two courses share an ID.
	ErrDuplicateCourseID = errors.New("duplicate course ID")
)

// Registry is an immutable collection of courses indexed by ID.
//
// The zero value is an empty registry. A Registry is never modified after
// construction and is safe for concurrent use by multiple goroutines.
type Registry struct {
	courses []Course
	byID    map[string]int
}

// New builds a registry from courses, preserving their declaration order.
// Returns ErrInvalidCourseID or ErrDuplicateCourseID (wrapped with the
// offending ID) if the IDs are not unique and non-empty.
//
// References to unknown courses in prerequisite or corequisite lists are not
// an error; queries drop them.
func New(courses []Course) (*Registry, error) {
	r := &Registry{
		courses: slices.Clone(courses),
		byID:    make(map[string]int, len(courses)),
	}
	for i, c := range r.courses {
		if c.ID == "" {
			return nil, fmt.Errorf("course %d: %w", i, ErrInvalidCourseID)
		}
		if _, exists := r.byID[c.ID]; exists {
			return nil, fmt.Errorf("course %s: %w", c.ID, ErrDuplicateCourseID)
		}
		r.byID[c.ID] = i
	}
	return r, nil
}

// MustNew is like [New] but panics on error. It is intended for compiled-in
// tables and tests.
func MustNew(courses []Course) *Registry {
	r, err := New(courses)
	if err != nil {
		panic(err)
	}
	return r
}

// ByID returns the course with the given ID and true, or the zero Course and
// false if no such course exists.
func (r *Registry) ByID(id string) (Course, bool) {
	if r == nil {
		return Course{}, false
	}
	i, ok := r.byID[id]
	if !ok {
		return Course{}, false
	}
	return r.courses[i], true
}

// Has reports whether a course with the given ID exists.
func (r *Registry) Has(id string) bool {
	_, ok := r.ByID(id)
	return ok
}

// All returns every course in declaration order. The returned slice is a
// copy; the courses' inner slices are shared and must not be modified.
func (r *Registry) All() []Course {
	if r == nil {
		return nil
	}
	return slices.Clone(r.courses)
}

// IDs returns every course ID in declaration order.
func (r *Registry) IDs() []string {
	if r == nil {
		return nil
	}
	ids := make([]string, len(r.courses))
	for i, c := range r.courses {
		ids[i] = c.ID
	}
	return ids
}

// Len returns the number of courses.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	return len(r.courses)
}

// Resolve maps ids through the registry, dropping any that do not exist and
// preserving input order.
func (r *Registry) Resolve(ids []string) []Course {
	out := make([]Course, 0, len(ids))
	for _, id := range ids {
		if c, ok := r.ByID(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// TotalUnits sums the units of the given courses.
func TotalUnits(courses []Course) int {
	total := 0
	for _, c := range courses {
		total += c.Units
	}
	return total
}
