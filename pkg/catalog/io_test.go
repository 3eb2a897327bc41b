package catalog

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	errs "github.com/matzehuels/coursemap/pkg/errors"
)

const sampleJSON = `{
  "courses": [
    {"id": "A100", "code": "A 100", "name": "Intro", "units": 3, "description": "",
     "prerequisites": [], "corequisites": [], "year": 1, "semester": "Fall",
     "category": "Core", "tags": ["Intro"]},
    {"id": "B200", "code": "B 200", "name": "Next", "units": 3, "description": "",
     "prerequisites": ["A100", "GHOST"], "corequisites": [], "year": 2, "semester": "Winter",
     "category": "Technical", "tags": [], "specializations": ["T"]}
  ]
}`

const sampleTOML = `
[[courses]]
id = "A100"
code = "A 100"
name = "Intro"
units = 3
year = 1
semester = "Fall"
category = "Core"
tags = ["Intro"]

[[courses]]
id = "B200"
code = "B 200"
name = "Next"
units = 3
prerequisites = ["A100"]
year = 2
semester = "Winter"
category = "Elective"
`

func TestReadJSON(t *testing.T) {
	r, err := ReadJSON(strings.NewReader(sampleJSON))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if r.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", r.Len())
	}
	b, _ := r.ByID("B200")
	if len(b.Prerequisites) != 2 || b.Prerequisites[1] != "GHOST" {
		t.Errorf("dangling reference should be kept in the record: %v", b.Prerequisites)
	}
	if !b.HasSpecialization("T") {
		t.Error("specialization T lost")
	}
}

func TestReadTOML(t *testing.T) {
	r, err := ReadTOML(strings.NewReader(sampleTOML))
	if err != nil {
		t.Fatalf("ReadTOML: %v", err)
	}
	b, ok := r.ByID("B200")
	if !ok || b.Category != Elective || b.Semester != Winter {
		t.Errorf("ByID(B200) = %+v, %v", b, ok)
	}
}

func TestReadErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		code errs.Code
	}{
		{"Malformed", `{"courses": [`, errs.ErrCodeInvalidCatalog},
		{"LowercaseID", `{"courses": [{"id": "mat1320", "units": 3, "year": 1, "semester": "Fall", "category": "Core"}]}`, errs.ErrCodeInvalidCourse},
		{"BadYear", `{"courses": [{"id": "A", "units": 3, "year": 7, "semester": "Fall", "category": "Core"}]}`, errs.ErrCodeInvalidCourse},
		{"BadSemester", `{"courses": [{"id": "A", "units": 3, "year": 1, "semester": "Summer", "category": "Core"}]}`, errs.ErrCodeInvalidCourse},
		{"BadCategory", `{"courses": [{"id": "A", "units": 3, "year": 1, "semester": "Fall", "category": "Other"}]}`, errs.ErrCodeInvalidCourse},
		{"BadUnits", `{"courses": [{"id": "A", "units": 0, "year": 1, "semester": "Fall", "category": "Core"}]}`, errs.ErrCodeInvalidCourse},
		{"BadSpecialization", `{"courses": [{"id": "A", "units": 3, "year": 1, "semester": "Fall", "category": "Core", "specializations": ["Z"]}]}`, errs.ErrCodeInvalidCourse},
		{"Duplicate", `{"courses": [
			{"id": "A", "units": 3, "year": 1, "semester": "Fall", "category": "Core"},
			{"id": "A", "units": 3, "year": 1, "semester": "Fall", "category": "Core"}]}`, errs.ErrCodeDuplicateCourse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadJSON(strings.NewReader(tt.in))
			if err == nil {
				t.Fatal("expected error")
			}
			if !errs.Is(err, tt.code) {
				t.Errorf("code = %v, want %v (%v)", errs.GetCode(err), tt.code, err)
			}
		})
	}
}

func TestWriteJSONRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(Default(), &buf); err != nil {
		t.Fatalf("WriteJSON: %v", err)
	}
	if strings.Contains(buf.String(), "null") {
		t.Error("empty lists should be written as []")
	}

	r, err := ReadJSON(&buf)
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	if r.Len() != Default().Len() {
		t.Errorf("round trip lost courses: %d != %d", r.Len(), Default().Len())
	}
	c, _ := r.ByID("ELG4176")
	if len(c.Prerequisites) != 2 || c.Prerequisites[0] != "ELG3175" {
		t.Errorf("ELG4176 prerequisites = %v", c.Prerequisites)
	}
}

func TestExportImportFile(t *testing.T) {
	dir := t.TempDir()

	for _, name := range []string{"catalog.json", "catalog.toml"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			if err := ExportFile(Default(), path); err != nil {
				t.Fatalf("ExportFile: %v", err)
			}
			r, err := ImportFile(path)
			if err != nil {
				t.Fatalf("ImportFile: %v", err)
			}
			if got, want := r.IDs(), Default().IDs(); len(got) != len(want) || got[0] != want[0] {
				t.Errorf("IDs mismatch after round trip")
			}
		})
	}
}

type failingCloser struct {
	bytes.Buffer
}

func (failingCloser) Close() error { return errors.New("disk full") }

func TestExportFileReportsCloseError(t *testing.T) {
	orig := createFile
	t.Cleanup(func() { createFile = orig })

	var out *failingCloser
	createFile = func(string) (io.WriteCloser, error) {
		out = &failingCloser{}
		return out, nil
	}

	err := ExportFile(Default(), "catalog.json")
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("err = %v, want close error", err)
	}
	if out.Len() == 0 {
		t.Error("catalog was not written before close")
	}
}

func TestImportLowercaseIDRejected(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lower.toml")
	data := `[[courses]]
id = "mat1320"
code = "MAT 1320"
name = "Calculus I"
units = 3
year = 1
semester = "Fall"
category = "Core"
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}
	_, err := ImportFile(path)
	if !errs.Is(err, errs.ErrCodeInvalidCourse) {
		t.Errorf("code = %v, want %v (%v)", errs.GetCode(err), errs.ErrCodeInvalidCourse, err)
	}
}

func TestImportFileErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := ImportFile(filepath.Join(dir, "missing.json"))
	if !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file code = %v, want %v", errs.GetCode(err), errs.ErrCodeFileNotFound)
	}

	yaml := filepath.Join(dir, "catalog.yaml")
	if err := os.WriteFile(yaml, []byte("courses: []"), 0644); err != nil {
		t.Fatal(err)
	}
	_, err = ImportFile(yaml)
	if !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("yaml code = %v, want %v", errs.GetCode(err), errs.ErrCodeInvalidFormat)
	}
}

func TestImportExampleCatalog(t *testing.T) {
	r, err := ImportFile(filepath.Join("..", "..", "examples", "catalogs", "minor.toml"))
	if err != nil {
		t.Fatalf("ImportFile: %v", err)
	}
	if r.Len() != 7 {
		t.Errorf("Len() = %d, want 7", r.Len())
	}
	c, ok := r.ByID("CSI3105")
	if !ok {
		t.Fatal("CSI3105 missing")
	}
	if strings.Join(c.Prerequisites, ",") != "CSI2110,CSI2101" {
		t.Errorf("prerequisites = %v", c.Prerequisites)
	}
	if c.HiddenTagCount(DefaultVisibleTags) != 1 {
		t.Errorf("HiddenTagCount = %d, want 1", c.HiddenTagCount(DefaultVisibleTags))
	}
	if alg, _ := r.ByID("CSI4105"); !alg.HasSpecialization(SpecSystems) {
		t.Error("CSI4105 should count toward Systems")
	}
}
