// Package lint reports data-quality problems in a course catalog.
//
// None of the findings stop a catalog from loading: relationship queries
// tolerate every problem reported here. The report exists so catalog
// authors can see what the resolver silently drops or shadows.
package lint

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/dag"
)

// Severity ranks a finding.
type Severity int

const (
	Info Severity = iota
	Warning
	Error
)

func (s Severity) String() string {
	switch s {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Severity) UnmarshalText(b []byte) error {
	switch string(b) {
	case "info":
		*s = Info
	case "warning":
		*s = Warning
	case "error":
		*s = Error
	default:
		return fmt.Errorf("unknown severity %q", b)
	}
	return nil
}

// Kind identifies the rule that produced a finding.
type Kind string

const (
	KindDangling      Kind = "dangling-reference"
	KindSelfReference Kind = "self-reference"
	KindOverlap       Kind = "prerequisite-corequisite-overlap"
	KindCycle         Kind = "prerequisite-cycle"
	KindTermOrder     Kind = "term-order"
)

// Finding is a single catalog problem.
type Finding struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Course   string   `json:"course"`
	Related  []string `json:"related,omitempty"`
	Message  string   `json:"message"`
}

func (f Finding) String() string {
	return fmt.Sprintf("%s: %s: %s", f.Severity, f.Course, f.Message)
}

// Report is the outcome of [Check].
type Report struct {
	Courses  int       `json:"courses"`
	Findings []Finding `json:"findings"`
}

// Count returns the number of findings with severity s.
func (r Report) Count(s Severity) int {
	n := 0
	for _, f := range r.Findings {
		if f.Severity == s {
			n++
		}
	}
	return n
}

// HasErrors reports whether any finding has Error severity.
func (r Report) HasErrors() bool { return r.Count(Error) > 0 }

// Clean reports whether there are no findings at all.
func (r Report) Clean() bool { return len(r.Findings) == 0 }

// Check runs every rule over reg. Findings are ordered by rule, then by
// catalog declaration order.
func Check(reg *catalog.Registry) Report {
	courses := reg.All()
	report := Report{Courses: len(courses), Findings: []Finding{}}

	g, dangling := dag.FromRegistry(reg)
	for _, d := range dangling {
		report.Findings = append(report.Findings, Finding{
			Kind:     KindDangling,
			Severity: Warning,
			Course:   d.From,
			Related:  []string{d.To},
			Message:  fmt.Sprintf("%s %s does not exist and is ignored", d.Kind, d.To),
		})
	}

	for _, c := range courses {
		if contains(c.Prerequisites, c.ID) || contains(c.Corequisites, c.ID) {
			report.Findings = append(report.Findings, Finding{
				Kind:     KindSelfReference,
				Severity: Warning,
				Course:   c.ID,
				Message:  "course lists itself as a requirement",
			})
		}
	}

	for _, c := range courses {
		var both []string
		for _, id := range c.Prerequisites {
			if contains(c.Corequisites, id) && !contains(both, id) {
				both = append(both, id)
			}
		}
		if len(both) > 0 {
			report.Findings = append(report.Findings, Finding{
				Kind:     KindOverlap,
				Severity: Warning,
				Course:   c.ID,
				Related:  both,
				Message:  fmt.Sprintf("%s listed as both prerequisite and corequisite; shown as prerequisite", strings.Join(both, ", ")),
			})
		}
	}

	for _, cycle := range g.Cycles() {
		if len(cycle) < 3 {
			continue // self-loop, reported above
		}
		report.Findings = append(report.Findings, Finding{
			Kind:     KindCycle,
			Severity: Error,
			Course:   cycle[0],
			Related:  cycle[1 : len(cycle)-1],
			Message:  "prerequisite cycle " + strings.Join(cycle, " -> "),
		})
	}

	for _, c := range courses {
		for _, id := range c.Prerequisites {
			p, ok := reg.ByID(id)
			if !ok || p.ID == c.ID {
				continue
			}
			if termIndex(p) >= termIndex(c) {
				report.Findings = append(report.Findings, Finding{
					Kind:     KindTermOrder,
					Severity: Warning,
					Course:   c.ID,
					Related:  []string{p.ID},
					Message:  fmt.Sprintf("prerequisite %s (%s) is not scheduled before %s", p.ID, p.Term(), c.Term()),
				})
			}
		}
		for _, id := range c.Corequisites {
			q, ok := reg.ByID(id)
			if !ok || q.ID == c.ID {
				continue
			}
			if termIndex(q) > termIndex(c) {
				report.Findings = append(report.Findings, Finding{
					Kind:     KindTermOrder,
					Severity: Warning,
					Course:   c.ID,
					Related:  []string{q.ID},
					Message:  fmt.Sprintf("corequisite %s (%s) is scheduled after %s", q.ID, q.Term(), c.Term()),
				})
			}
		}
	}

	return report
}

// Marshal encodes a report as JSON.
func Marshal(r Report) ([]byte, error) { return json.Marshal(r) }

// Unmarshal decodes a report written by [Marshal].
func Unmarshal(data []byte) (Report, error) {
	var r Report
	if err := json.Unmarshal(data, &r); err != nil {
		return Report{}, fmt.Errorf("decode report: %w", err)
	}
	return r, nil
}

func termIndex(c catalog.Course) int {
	return c.Year*len(catalog.Semesters) + c.Semester.Order()
}

func contains(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}
