// Package timeline groups a catalog into the year and semester columns of a
// program map.
package timeline

import (
	"slices"

	"github.com/matzehuels/coursemap/pkg/catalog"
)

// Term is one semester column.
type Term struct {
	Semester catalog.Semester `json:"semester"`
	Courses  []catalog.Course `json:"courses"`
}

// Units returns the total units of the term's courses.
func (t Term) Units() int { return catalog.TotalUnits(t.Courses) }

// Year is one year of the program.
type Year struct {
	Year  int    `json:"year"`
	Units int    `json:"units"`
	Note  string `json:"note,omitempty"`
	Terms []Term `json:"terms"`
}

// Courses returns the year's courses, term by term.
func (y Year) Courses() []catalog.Course {
	var out []catalog.Course
	for _, t := range y.Terms {
		out = append(out, t.Courses...)
	}
	return out
}

var notes = map[int]string{
	1: "Math, physics, chemistry, computing and design basics. ITI 1120 can replace GNG 1106.",
	2: "Complete two complementary electives.",
	3: "Diving deep into foundational EE courses.",
	4: "Choose one specialization for your degree.",
}

// Note returns the advising note for a program year, or "".
func Note(year int) string { return notes[year] }

// Build groups the courses of reg by year (ascending) and semester (Fall
// before Winter). Courses keep declaration order within a term. Years and
// terms without courses are omitted.
func Build(reg *catalog.Registry) []Year {
	return Group(reg.All())
}

// Group is [Build] over an arbitrary course list, such as a filter result.
func Group(courses []catalog.Course) []Year {
	byYear := make(map[int]map[catalog.Semester][]catalog.Course)
	for _, c := range courses {
		terms, ok := byYear[c.Year]
		if !ok {
			terms = make(map[catalog.Semester][]catalog.Course)
			byYear[c.Year] = terms
		}
		terms[c.Semester] = append(terms[c.Semester], c)
	}

	years := make([]int, 0, len(byYear))
	for y := range byYear {
		years = append(years, y)
	}
	slices.Sort(years)

	out := make([]Year, 0, len(years))
	for _, y := range years {
		terms := byYear[y]
		sems := make([]catalog.Semester, 0, len(terms))
		for s := range terms {
			sems = append(sems, s)
		}
		slices.SortFunc(sems, func(a, b catalog.Semester) int {
			if a.Order() != b.Order() {
				return a.Order() - b.Order()
			}
			if a < b {
				return -1
			}
			if a > b {
				return 1
			}
			return 0
		})

		year := Year{Year: y, Note: Note(y)}
		for _, s := range sems {
			t := Term{Semester: s, Courses: terms[s]}
			year.Units += t.Units()
			year.Terms = append(year.Terms, t)
		}
		out = append(out, year)
	}
	return out
}
