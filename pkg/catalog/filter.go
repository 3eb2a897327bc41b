package catalog

import "strings"

// Filter sentinels.
const (
	// AllYears disables the year predicate.
	AllYears = 0

	// AllSpecializations disables the specialization predicate. The empty
	// string is accepted as well.
	AllSpecializations = "all"
)

// Criteria selects courses from a registry. The zero value matches every
// course.
type Criteria struct {
	// Search is matched case-insensitively as a substring of the course
	// name, code, or any tag. Empty matches everything.
	Search string `json:"search,omitempty"`

	// Year restricts results to a single program year, or AllYears.
	Year int `json:"year,omitempty"`

	// Specialization restricts results to courses tagged with the given
	// letter, or AllSpecializations.
	Specialization string `json:"specialization,omitempty"`
}

// IsZero reports whether c matches every course.
func (c Criteria) IsZero() bool {
	return c.Search == "" && c.Year == AllYears && anySpecialization(c.Specialization)
}

// Match reports whether course satisfies all three predicates.
func (c Criteria) Match(course Course) bool {
	if c.Year != AllYears && course.Year != c.Year {
		return false
	}
	if !anySpecialization(c.Specialization) && !course.HasSpecialization(c.Specialization) {
		return false
	}
	return course.matches(strings.ToLower(c.Search))
}

// Filter returns the courses in r matching criteria, in registry order.
func Filter(r *Registry, criteria Criteria) []Course {
	var out []Course
	for _, course := range r.All() {
		if criteria.Match(course) {
			out = append(out, course)
		}
	}
	return out
}

func anySpecialization(s string) bool {
	return s == "" || s == AllSpecializations
}
