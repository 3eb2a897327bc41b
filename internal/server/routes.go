package server

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/coursemap/pkg/buildinfo"
	"github.com/matzehuels/coursemap/pkg/catalog"
	errs "github.com/matzehuels/coursemap/pkg/errors"
	"github.com/matzehuels/coursemap/pkg/highlight"
	"github.com/matzehuels/coursemap/pkg/pipeline"
	"github.com/matzehuels/coursemap/pkg/timeline"
)

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.observe)

	r.Get("/", s.handleIndex)
	r.Get("/graph.svg", s.handleGraph)

	r.Route("/api", func(r chi.Router) {
		r.Get("/courses", s.handleCourses)
		r.Get("/courses/{id}", s.handleCourse)
		r.Get("/courses/{id}/relations", s.handleRelations)
		r.Get("/highlight", s.handleHighlight)
		r.Get("/timeline", s.handleTimeline)
		r.Get("/specializations", s.handleSpecializations)
		r.Get("/legend", s.handleLegend)
		r.Get("/lint", s.handleLint)
		r.Get("/version", s.handleVersion)
	})
	return r
}

// =============================================================================
// Catalog
// =============================================================================

// handleCourses serves the catalog filter: ?search=&year=&spec=.
func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	criteria := catalog.Criteria{
		Search:         q.Get("search"),
		Specialization: strings.ToUpper(q.Get("spec")),
	}
	if criteria.Specialization == "ALL" {
		criteria.Specialization = catalog.AllSpecializations
	}
	if y := q.Get("year"); y != "" && !strings.EqualFold(y, "all") {
		year, err := strconv.Atoi(y)
		if err != nil || (year != catalog.AllYears && (year < catalog.FirstYear || year > catalog.LastYear)) {
			writeError(w, errs.New(errs.ErrCodeInvalidFilter, "invalid year %q", y))
			return
		}
		criteria.Year = year
	}

	courses := catalog.Filter(s.reg, criteria)
	if courses == nil {
		courses = []catalog.Course{}
	}
	writeJSON(w, http.StatusOK, courses)
}

func (s *Server) handleCourse(w http.ResponseWriter, r *http.Request) {
	course, err := s.course(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, course)
}

func (s *Server) handleRelations(w http.ResponseWriter, r *http.Request) {
	course, err := s.course(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, err)
		return
	}
	rel, _ := s.resolver.Relations(course.ID)
	writeJSON(w, http.StatusOK, rel)
}

// handleHighlight classifies every course against ?focus=. Without a focus
// every course is "none".
func (s *Server) handleHighlight(w http.ResponseWriter, r *http.Request) {
	var focal *catalog.Course
	if f := r.URL.Query().Get("focus"); f != "" {
		course, err := s.course(f)
		if err != nil {
			writeError(w, err)
			return
		}
		focal = &course
	}
	writeJSON(w, http.StatusOK, s.classifier.Map(focal, s.reg.All()))
}

func (s *Server) handleTimeline(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, timeline.Build(s.reg))
}

func (s *Server) handleSpecializations(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, catalog.Specializations)
}

func (s *Server) handleLegend(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, highlight.Legend())
}

func (s *Server) handleLint(w http.ResponseWriter, r *http.Request) {
	report, err := s.runner.Check(r.Context(), s.reg)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, report)
}

func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, buildinfo.Get())
}

// =============================================================================
// Graph
// =============================================================================

// handleGraph renders the course graph as SVG, highlighted around ?focus=.
func (s *Server) handleGraph(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := pipeline.DefaultOptions()
	opts.Detailed = q.Get("detailed") == "true"
	if f := q.Get("focus"); f != "" {
		course, err := s.course(f)
		if err != nil {
			writeError(w, err)
			return
		}
		opts.Focus = course.ID
	}

	result, err := s.runner.Render(r.Context(), s.reg, opts)
	if err != nil {
		s.logger.Error("render failed", "focus", opts.Focus, "err", err)
		writeError(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Artifacts[pipeline.FormatSVG])
}

// handleIndex serves a minimal page embedding the graph.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(indexHTML))
}

const indexHTML = `<!doctype html>
<html>
<head><meta charset="utf-8"><title>coursemap</title></head>
<body style="font-family: sans-serif">
<form method="get" action="/graph.svg" target="graph">
  <input name="focus" placeholder="Course ID, e.g. ELG3175">
  <button>Highlight</button>
</form>
<iframe name="graph" src="/graph.svg" style="width:100%;height:90vh;border:0"></iframe>
</body>
</html>
`

// course resolves a course ID from a request.
func (s *Server) course(raw string) (catalog.Course, error) {
	id := errs.NormalizeCourseID(raw)
	if err := errs.ValidateCourseID(id); err != nil {
		return catalog.Course{}, err
	}
	c, ok := s.reg.ByID(id)
	if !ok {
		return catalog.Course{}, errs.New(errs.ErrCodeCourseNotFound, "course %q not found", id)
	}
	return c, nil
}
