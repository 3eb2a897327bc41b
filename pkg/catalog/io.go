package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/BurntSushi/toml"

	errs "github.com/matzehuels/coursemap/pkg/errors"
)

// createFile opens an export destination. Tests replace it.
var createFile = func(name string) (io.WriteCloser, error) {
	return os.Create(name)
}

// document is the on-disk catalog layout shared by JSON and TOML:
//
//	{"courses": [{"id": "MAT1320", ...}, ...]}
//
// or in TOML, one [[courses]] table per course.
type document struct {
	Courses []Course `json:"courses" toml:"courses"`
}

// ReadJSON decodes a JSON catalog from r and returns a validated registry.
//
// The input must be an object with a "courses" array. Each course must carry
// the fields of [Course]; "specializations" is optional. Dangling
// prerequisite or corequisite IDs are accepted.
//
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Registry, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidCatalog, err, "decode JSON catalog")
	}
	return Load(doc.Courses)
}

// ReadTOML decodes a TOML catalog from r and returns a validated registry.
func ReadTOML(r io.Reader) (*Registry, error) {
	var doc document
	if _, err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errs.Wrap(errs.ErrCodeInvalidCatalog, err, "decode TOML catalog")
	}
	return Load(doc.Courses)
}

// ImportFile reads a catalog from path. The format is chosen by extension
// (.json or .toml).
func ImportFile(path string) (*Registry, error) {
	format, err := errs.ValidateCatalogPath(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errs.Wrap(errs.ErrCodeFileNotFound, err, "open catalog %s", path)
		}
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	if format == "toml" {
		return ReadTOML(f)
	}
	return ReadJSON(f)
}

// WriteJSON encodes the registry as an indented JSON catalog. Empty
// prerequisite, corequisite, and tag lists are written as [] so the output
// round-trips through [ReadJSON] unchanged.
func WriteJSON(r *Registry, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized(r)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// WriteTOML encodes the registry as a TOML catalog.
func WriteTOML(r *Registry, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(normalized(r)); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportFile writes the registry to path in the format implied by its
// extension.
func ExportFile(r *Registry, path string) error {
	format, err := errs.ValidateCatalogPath(path)
	if err != nil {
		return err
	}
	f, err := createFile(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}

	if format == "toml" {
		err = WriteTOML(r, f)
	} else {
		err = WriteJSON(r, f)
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", path, err)
	}
	return nil
}

func normalized(r *Registry) document {
	courses := r.All()
	for i := range courses {
		courses[i].Prerequisites = nonNil(courses[i].Prerequisites)
		courses[i].Corequisites = nonNil(courses[i].Corequisites)
		courses[i].Tags = nonNil(courses[i].Tags)
	}
	return document{Courses: courses}
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return slices.Clone(s)
}
