package pipeline

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/matzehuels/coursemap/pkg/cache"
	"github.com/matzehuels/coursemap/pkg/catalog"
	errs "github.com/matzehuels/coursemap/pkg/errors"
	"github.com/matzehuels/coursemap/pkg/highlight"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"svg", false},
		{"png", false},
		{"dot", false},
		{"pdf", true},
		{"SVG", true}, // case-sensitive
		{"", true},
	}

	for _, tt := range tests {
		err := ValidateFormat(tt.format)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
		}
		if err != nil && !errs.Is(err, errs.ErrCodeInvalidFormat) {
			t.Errorf("ValidateFormat(%q) code = %s", tt.format, errs.GetCode(err))
		}
	}
}

func TestValidateFormats(t *testing.T) {
	if err := ValidateFormats([]string{"svg", "dot"}); err != nil {
		t.Errorf("Valid formats should pass: %v", err)
	}
	if err := ValidateFormats([]string{"svg", "invalid"}); err == nil {
		t.Error("Invalid format should fail")
	}
	if err := ValidateFormats(nil); err != nil {
		t.Errorf("Empty formats should pass: %v", err)
	}
}

func TestOptionsDefaults(t *testing.T) {
	var o Options
	if err := o.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(o.Formats) != 1 || o.Formats[0] != FormatSVG {
		t.Errorf("default formats = %v", o.Formats)
	}
	if o.Logger == nil {
		t.Error("Logger should default to a discard logger")
	}

	d := DefaultOptions()
	if !d.ClusterByTerm || !d.ShowCorequisites {
		t.Errorf("DefaultOptions() = %+v", d)
	}
}

func TestArtifactKeyOptsIncludeFocus(t *testing.T) {
	a := Options{Focus: "A"}
	b := Options{Focus: "B"}
	k := cache.NewDefaultKeyer()
	if k.ArtifactKey("h", a.ArtifactKeyOpts("svg")) == k.ArtifactKey("h", b.ArtifactKeyOpts("svg")) {
		t.Error("focus must be part of the artifact key")
	}
}

func TestHighlights(t *testing.T) {
	reg := catalog.Default()

	m, err := Highlights(reg, "ELG2136")
	if err != nil {
		t.Fatalf("Highlights: %v", err)
	}
	if m["ELG2136"] != highlight.Self || m["ELG2138"] != highlight.Prerequisite {
		t.Errorf("Highlights(ELG2136) = self %v, ELG2138 %v", m["ELG2136"], m["ELG2138"])
	}

	none, err := Highlights(reg, "")
	if err != nil || len(none) != reg.Len() {
		t.Fatalf("Highlights(\"\") = %d entries, %v", len(none), err)
	}

	if _, err := Highlights(reg, "NOPE"); !errs.Is(err, errs.ErrCodeCourseNotFound) {
		t.Errorf("Highlights(NOPE) error = %v, want COURSE_NOT_FOUND", err)
	}
}

func TestBuildDOT(t *testing.T) {
	reg := catalog.MustNew([]catalog.Course{
		{ID: "A", Year: 1, Semester: catalog.Fall},
		{ID: "B", Year: 1, Semester: catalog.Winter, Prerequisites: []string{"A", "GHOST"}},
	})
	dot, stats := BuildDOT(reg, nil, Options{})
	if !strings.Contains(dot, `"A" -> "B"`) {
		t.Errorf("DOT missing edge:\n%s", dot)
	}
	if stats.Courses != 2 || stats.Edges != 1 || stats.Dangling != 1 {
		t.Errorf("stats = %+v", stats)
	}
}

func TestRunnerRenderDOT(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	r := NewRunner(fc, nil, nil)
	defer r.Close()

	opts := Options{Focus: "ELG3175", Formats: []string{FormatDOT}, ClusterByTerm: true}

	first, err := r.Render(ctx, catalog.Default(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if first.CacheHit {
		t.Error("first render should miss the cache")
	}
	dot := string(first.Artifacts[FormatDOT])
	if !strings.Contains(dot, highlight.Self.Style().Fill) {
		t.Error("DOT should contain the focal course fill")
	}
	if first.Stats.Courses != 47 || first.CatalogHash == "" {
		t.Errorf("result = %+v", first.Stats)
	}

	second, err := r.Render(ctx, catalog.Default(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !second.CacheHit {
		t.Error("second render should hit the cache")
	}
	if string(second.Artifacts[FormatDOT]) != dot {
		t.Error("cached artifact differs from rendered artifact")
	}

	opts.Refresh = true
	third, err := r.Render(ctx, catalog.Default(), opts)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if third.CacheHit {
		t.Error("refresh should bypass the cache")
	}
}

func TestRunnerRenderErrors(t *testing.T) {
	r := NewRunner(nil, nil, nil)
	ctx := context.Background()

	if _, err := r.Render(ctx, catalog.Default(), Options{Formats: []string{"pdf"}}); !errs.Is(err, errs.ErrCodeInvalidFormat) {
		t.Errorf("invalid format error = %v", err)
	}
	if _, err := r.Render(ctx, catalog.Default(), Options{Focus: "NOPE"}); !errs.Is(err, errs.ErrCodeCourseNotFound) {
		t.Errorf("unknown focus error = %v", err)
	}
}

func TestRunnerCheck(t *testing.T) {
	ctx := context.Background()
	fc, _ := cache.NewFileCache(t.TempDir())
	r := NewRunner(fc, nil, nil)

	reg := catalog.MustNew([]catalog.Course{
		{ID: "A", Year: 1, Semester: catalog.Fall, Prerequisites: []string{"GHOST"}},
	})
	for i := 0; i < 2; i++ {
		report, err := r.Check(ctx, reg)
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if len(report.Findings) != 1 {
			t.Errorf("run %d: findings = %+v", i, report.Findings)
		}
	}
}

func TestLoad(t *testing.T) {
	ctx := context.Background()

	reg, err := Load(ctx, "")
	if err != nil {
		t.Fatalf("Load(builtin): %v", err)
	}
	if reg.Len() != 47 {
		t.Fatalf("Load(builtin) = %d courses, want 47", reg.Len())
	}

	path := filepath.Join(t.TempDir(), "catalog.json")
	if err := os.WriteFile(path, []byte(`{"courses":[{"id":"X","code":"X 1","name":"X","units":3,"year":1,"semester":"Fall","category":"Core"}]}`), 0644); err != nil {
		t.Fatal(err)
	}
	reg, err = Load(ctx, path)
	if err != nil {
		t.Fatalf("Load(%s): %v", path, err)
	}
	if !reg.Has("X") {
		t.Error("loaded catalog missing X")
	}

	if _, err := Load(ctx, filepath.Join(t.TempDir(), "missing.toml")); !errs.Is(err, errs.ErrCodeFileNotFound) {
		t.Errorf("missing file error = %v", err)
	}
}
