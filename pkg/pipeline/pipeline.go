// Package pipeline renders course maps with caching.
//
// This package is shared by the CLI and the preview server so that both
// load catalogs, classify highlights and render diagrams the same way.
//
// # Stages
//
//  1. Load: read the compiled-in catalog or a JSON/TOML catalog file
//  2. Render: build the course graph, classify every course against the
//     focus, emit DOT and render the requested formats
//
// # Usage
//
//	reg, err := pipeline.Load(ctx, "")          // compiled-in catalog
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Render(ctx, reg, pipeline.Options{
//	    Focus:   "ELG3175",
//	    Formats: []string{pipeline.FormatSVG},
//	})
//	svg := result.Artifacts[pipeline.FormatSVG]
package pipeline

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/coursemap/pkg/cache"
	errs "github.com/matzehuels/coursemap/pkg/errors"
	"github.com/matzehuels/coursemap/pkg/highlight"
)

// Format constants for output formats.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
	FormatDOT = "dot"
)

// ValidFormats lists the supported output formats.
var ValidFormats = []string{FormatSVG, FormatPNG, FormatDOT}

// =============================================================================
// Options
// =============================================================================

// Options configures a render. It supports JSON for API requests.
type Options struct {
	// Focus is the focal course ID. Empty renders without highlights.
	Focus string `json:"focus,omitempty"`

	Formats          []string `json:"formats,omitempty"`
	Detailed         bool     `json:"detailed,omitempty"`
	ClusterByTerm    bool     `json:"cluster_by_term,omitempty"`
	ShowCorequisites bool     `json:"show_corequisites,omitempty"`

	// Refresh skips cache reads; results are still written.
	Refresh bool `json:"refresh,omitempty"`

	Logger *log.Logger `json:"-"`
}

// DefaultOptions returns the options used when nothing is configured:
// SVG, clustered by term, with corequisite links.
func DefaultOptions() Options {
	return Options{
		Formats:          []string{FormatSVG},
		ClusterByTerm:    true,
		ShowCorequisites: true,
	}
}

// SetDefaults fills in zero fields.
func (o *Options) SetDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatSVG}
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// Validate checks formats and applies defaults.
func (o *Options) Validate() error {
	o.SetDefaults()
	return ValidateFormats(o.Formats)
}

// ArtifactKeyOpts returns cache key options for one format.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:           format,
		Focus:            o.Focus,
		Detailed:         o.Detailed,
		ClusterByTerm:    o.ClusterByTerm,
		ShowCorequisites: o.ShowCorequisites,
	}
}

// ValidateFormat checks that a format is supported.
func ValidateFormat(format string) error {
	if !slices.Contains(ValidFormats, format) {
		return errs.New(errs.ErrCodeInvalidFormat, "invalid format: %q (must be one of: svg, png, dot)", format)
	}
	return nil
}

// ValidateFormats checks that all formats are supported.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a render.
type Result struct {
	// CatalogHash is the content hash of the rendered catalog.
	CatalogHash string

	// Highlights is the category of every course relative to the focus.
	Highlights map[string]highlight.Category

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	Stats Stats

	// CacheHit is true when every artifact came from the cache.
	CacheHit bool
}

// Stats contains render statistics.
type Stats struct {
	Courses    int
	Edges      int
	Dangling   int
	RenderTime time.Duration
}

// String summarizes the stats for log output.
func (s Stats) String() string {
	return fmt.Sprintf("%d courses, %d edges, %d dangling", s.Courses, s.Edges, s.Dangling)
}
