package catalog

import (
	"slices"
	"strconv"
	"strings"
)

// Semester is the term in which a course is scheduled.
type Semester string

// Semesters offered in the program, in chronological order within a year.
const (
	Fall   Semester = "Fall"
	Winter Semester = "Winter"
)

// Semesters lists every semester in chronological order.
var Semesters = []Semester{Fall, Winter}

// Valid reports whether s is a known semester.
func (s Semester) Valid() bool { return s == Fall || s == Winter }

// Order returns the position of s within an academic year (Fall first).
// Unknown semesters sort last.
func (s Semester) Order() int {
	switch s {
	case Fall:
		return 0
	case Winter:
		return 1
	default:
		return 2
	}
}

// Category classifies a course within the degree requirements.
type Category string

// Course categories.
const (
	Core          Category = "Core"
	Elective      Category = "Elective"
	Complementary Category = "Complementary"
	Technical     Category = "Technical"
)

// Categories lists every course category.
var Categories = []Category{Core, Elective, Complementary, Technical}

// Valid reports whether c is a known category.
func (c Category) Valid() bool { return slices.Contains(Categories, c) }

// Year bounds of the program.
const (
	FirstYear = 1
	LastYear  = 4
)

// DefaultVisibleTags is the number of tags shown before collapsing the rest
// into a "+N" badge.
const DefaultVisibleTags = 3

// Course is an immutable course record.
//
// Prerequisites and Corequisites hold course IDs in source order. IDs that do
// not resolve in the owning Registry are tolerated and dropped by queries.
// The slices are shared with the Registry and must be treated as read-only.
type Course struct {
	ID              string   `json:"id" toml:"id"`
	Code            string   `json:"code" toml:"code"`
	Name            string   `json:"name" toml:"name"`
	Units           int      `json:"units" toml:"units"`
	Description     string   `json:"description" toml:"description"`
	Prerequisites   []string `json:"prerequisites" toml:"prerequisites"`
	Corequisites    []string `json:"corequisites" toml:"corequisites"`
	Year            int      `json:"year" toml:"year"`
	Semester        Semester `json:"semester" toml:"semester"`
	Category        Category `json:"category" toml:"category"`
	Tags            []string `json:"tags" toml:"tags"`
	Specializations []string `json:"specializations,omitempty" toml:"specializations,omitempty"`
}

// HasSpecialization reports whether the course counts toward the
// specialization with the given letter. Courses without specializations
// never match.
func (c Course) HasSpecialization(letter string) bool {
	return slices.Contains(c.Specializations, letter)
}

// VisibleTags returns at most n leading tags.
func (c Course) VisibleTags(n int) []string {
	if n < 0 || n >= len(c.Tags) {
		return c.Tags
	}
	return c.Tags[:n]
}

// HiddenTagCount returns how many tags VisibleTags(n) leaves out.
func (c Course) HiddenTagCount(n int) int {
	return len(c.Tags) - len(c.VisibleTags(n))
}

// Term returns a human-readable scheduling label such as "Year 2 Fall".
func (c Course) Term() string {
	return "Year " + strconv.Itoa(c.Year) + " " + string(c.Semester)
}

// matches reports whether term (already lower-cased) is a substring of the
// course name, code, or any tag.
func (c Course) matches(term string) bool {
	if term == "" {
		return true
	}
	if strings.Contains(strings.ToLower(c.Name), term) ||
		strings.Contains(strings.ToLower(c.Code), term) {
		return true
	}
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}
