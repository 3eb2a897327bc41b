package catalog

import (
	"fmt"
	"slices"

	errs "github.com/matzehuels/coursemap/pkg/errors"
)

// Validate checks a single course record for field-level problems: an
// invalid or non-canonical ID, non-positive units, a year outside the program, or an unknown
// semester, category, or specialization letter.
//
// Cross-record problems (dangling references, cycles) are not validation
// errors; see package lint.
func Validate(c Course) error {
	if err := errs.ValidateCourseID(c.ID); err != nil {
		return errs.Wrap(errs.ErrCodeInvalidCourse, err, "course %q", c.ID)
	}
	// Lookups normalize user input, so stored IDs must already be normalized.
	if canon := errs.NormalizeCourseID(c.ID); canon != c.ID {
		return errs.New(errs.ErrCodeInvalidCourse, "course %q: ID must be upper case, e.g. %q", c.ID, canon)
	}
	if c.Units <= 0 {
		return errs.New(errs.ErrCodeInvalidCourse, "course %s: units must be positive, got %d", c.ID, c.Units)
	}
	if c.Year < FirstYear || c.Year > LastYear {
		return errs.New(errs.ErrCodeInvalidCourse, "course %s: year %d out of range %d-%d", c.ID, c.Year, FirstYear, LastYear)
	}
	if !c.Semester.Valid() {
		return errs.New(errs.ErrCodeInvalidCourse, "course %s: unknown semester %q", c.ID, c.Semester)
	}
	if !c.Category.Valid() {
		return errs.New(errs.ErrCodeInvalidCourse, "course %s: unknown category %q", c.ID, c.Category)
	}
	letters := SpecializationLetters()
	for _, s := range c.Specializations {
		if !slices.Contains(letters, s) {
			return errs.New(errs.ErrCodeInvalidCourse, "course %s: unknown specialization %q", c.ID, s)
		}
	}
	return nil
}

// Load validates every course and builds a registry from them. Errors carry
// an [errs.ErrCodeInvalidCourse] or [errs.ErrCodeDuplicateCourse] code.
func Load(courses []Course) (*Registry, error) {
	for i, c := range courses {
		if err := Validate(c); err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
	}
	r, err := New(courses)
	if err != nil {
		return nil, errs.Wrap(errs.ErrCodeDuplicateCourse, err, "build registry")
	}
	return r, nil
}
