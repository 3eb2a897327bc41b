package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/highlight"
	"github.com/matzehuels/coursemap/pkg/lint"
	"github.com/matzehuels/coursemap/pkg/observability"
	"github.com/matzehuels/coursemap/pkg/relation"
	"github.com/matzehuels/coursemap/pkg/timeline"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	s := New(catalog.Default(), nil, log.New(io.Discard))
	ts := httptest.NewServer(s.Handler())
	t.Cleanup(ts.Close)
	return ts
}

func get(t *testing.T, ts *httptest.Server, path string, v any) int {
	t.Helper()
	resp, err := http.Get(ts.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	defer resp.Body.Close()
	if v != nil {
		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			t.Fatalf("GET %s: decode: %v", path, err)
		}
	}
	return resp.StatusCode
}

func courseIDs(courses []catalog.Course) []string {
	ids := make([]string, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}
	return ids
}

func TestCourses(t *testing.T) {
	ts := newTestServer(t)

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"all", "", 47},
		{"year", "?year=1", 10},
		{"all years", "?year=0", 47},
		{"year all", "?year=all", 47},
		{"year ALL", "?year=ALL", 47},
		{"spec all", "?spec=all", 47},
		{"no match", "?search=zzzz", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var courses []catalog.Course
			if status := get(t, ts, "/api/courses"+tt.query, &courses); status != http.StatusOK {
				t.Fatalf("status = %d, want 200", status)
			}
			if len(courses) != tt.want {
				t.Errorf("got %d courses, want %d", len(courses), tt.want)
			}
		})
	}
}

func TestCoursesInvalidYear(t *testing.T) {
	ts := newTestServer(t)
	var body ErrorResponse
	if status := get(t, ts, "/api/courses?year=9", &body); status != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", status)
	}
	if body.Error.Code != "INVALID_FILTER" {
		t.Errorf("code = %q, want INVALID_FILTER", body.Error.Code)
	}
}

func TestCourse(t *testing.T) {
	ts := newTestServer(t)

	var c catalog.Course
	if status := get(t, ts, "/api/courses/elg3175", &c); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if c.ID != "ELG3175" {
		t.Errorf("ID = %q, want ELG3175", c.ID)
	}

	var body ErrorResponse
	if status := get(t, ts, "/api/courses/NOPE1000", &body); status != http.StatusNotFound {
		t.Fatalf("unknown course status = %d, want 404", status)
	}
	if body.Error.Code != "COURSE_NOT_FOUND" {
		t.Errorf("code = %q, want COURSE_NOT_FOUND", body.Error.Code)
	}
}

func TestRelations(t *testing.T) {
	ts := newTestServer(t)

	var rel relation.Relations
	if status := get(t, ts, "/api/courses/ELG4176/relations", &rel); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if got := strings.Join(courseIDs(rel.Prerequisites), ","); got != "ELG3175,ELG3126" {
		t.Errorf("prerequisites = %s, want ELG3175,ELG3126", got)
	}
	if got := strings.Join(courseIDs(rel.IndirectPrerequisites), ","); got != "ELG3125" {
		t.Errorf("indirect = %s, want ELG3125", got)
	}
	if rel.Corequisites == nil {
		t.Error("corequisites should encode as [] not null")
	}
}

func TestHighlight(t *testing.T) {
	ts := newTestServer(t)

	var got map[string]string
	if status := get(t, ts, "/api/highlight?focus=ELG3175", &got); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	want := map[string]highlight.Category{
		"ELG3175": highlight.Self,
		"ELG3126": highlight.Corequisite,
		"ELG2138": highlight.IndirectPrerequisite,
		"ELG4176": highlight.Dependent,
		"ELG4913": highlight.None,
	}
	for id, cat := range want {
		if got[id] != cat.String() {
			t.Errorf("%s = %q, want %q", id, got[id], cat)
		}
	}
	if len(got) != 47 {
		t.Errorf("got %d entries, want 47", len(got))
	}

	if status := get(t, ts, "/api/highlight?focus=NOPE1000", nil); status != http.StatusNotFound {
		t.Errorf("unknown focus status = %d, want 404", status)
	}

	var none map[string]string
	get(t, ts, "/api/highlight", &none)
	for id, cat := range none {
		if cat != "none" {
			t.Errorf("no focus: %s = %q, want none", id, cat)
		}
	}
}

func TestTimeline(t *testing.T) {
	ts := newTestServer(t)
	var years []timeline.Year
	if status := get(t, ts, "/api/timeline", &years); status != http.StatusOK {
		t.Fatalf("status = %d, want 200", status)
	}
	if len(years) != 4 {
		t.Fatalf("got %d years, want 4", len(years))
	}
	if years[0].Units != 30 {
		t.Errorf("year 1 units = %d, want 30", years[0].Units)
	}
}

func TestLintLegendVersion(t *testing.T) {
	ts := newTestServer(t)

	var report lint.Report
	if status := get(t, ts, "/api/lint", &report); status != http.StatusOK {
		t.Fatalf("lint status = %d", status)
	}
	if report.Courses != 47 || !report.Clean() {
		t.Errorf("lint = %+v, want 47 courses and no findings", report)
	}

	var legend []map[string]any
	get(t, ts, "/api/legend", &legend)
	if len(legend) != 5 {
		t.Errorf("legend has %d entries, want 5", len(legend))
	}

	var specs []catalog.Specialization
	get(t, ts, "/api/specializations", &specs)
	if len(specs) != 5 {
		t.Errorf("got %d specializations, want 5", len(specs))
	}

	var version map[string]string
	get(t, ts, "/api/version", &version)
	if _, ok := version["version"]; !ok {
		t.Errorf("version response missing version: %v", version)
	}
}

func TestGraphUnknownFocus(t *testing.T) {
	ts := newTestServer(t)
	if status := get(t, ts, "/graph.svg?focus=NOPE1000", nil); status != http.StatusNotFound {
		t.Errorf("status = %d, want 404", status)
	}
}

func TestGraph(t *testing.T) {
	ts := newTestServer(t)
	resp, err := http.Get(ts.URL + "/graph.svg?focus=ELG3175")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/svg+xml" {
		t.Errorf("Content-Type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if !strings.Contains(string(body), "<svg") {
		t.Error("body is not an SVG document")
	}
}

type recordingHooks struct {
	mu     sync.Mutex
	routes []string
}

func (h *recordingHooks) OnRequest(context.Context, string, string) {}

func (h *recordingHooks) OnResponse(_ context.Context, _ string, route string, _ int, _ time.Duration) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.routes = append(h.routes, route)
}

func TestServerHooks(t *testing.T) {
	hooks := &recordingHooks{}
	observability.SetServerHooks(hooks)
	t.Cleanup(observability.Reset)

	ts := newTestServer(t)
	get(t, ts, "/api/courses/ELG3175", nil)

	hooks.mu.Lock()
	defer hooks.mu.Unlock()
	if len(hooks.routes) != 1 || hooks.routes[0] != "/api/courses/{id}" {
		t.Errorf("routes = %v, want [/api/courses/{id}]", hooks.routes)
	}
}
