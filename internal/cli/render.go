package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/pipeline"
)

// defaultOutputBase is the output base name when -o is not given.
const defaultOutputBase = appName

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string // output file (single format) or base path (multiple)
	formats   string // comma-separated formats
	focus     string // focal course ID
	detailed  bool   // multi-line labels with name, units and term
	noCluster bool   // disable year/semester clusters
	noCoreqs  bool   // hide corequisite links
	noCache   bool   // bypass the artifact cache
	refresh   bool   // skip cache reads but store results
}

// renderCommand creates the render command for generating graph images.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the prerequisite graph to SVG, PNG or DOT",
		Long: `Render the course graph through Graphviz.

Courses are clustered by year and semester. With --focus, every course is
colored by its relationship to the focus course.`,
		Example: `  coursemap render
  coursemap render --focus ELG3175 -f svg,png -o elg3175
  coursemap render -f dot --detailed`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.formats, "format", "f", "", "output format(s): svg, png, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.focus, "focus", "", "course to highlight relationships for")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show name, units and term in each node")
	cmd.Flags().BoolVar(&opts.noCluster, "no-cluster", false, "do not group courses by year and semester")
	cmd.Flags().BoolVar(&opts.noCoreqs, "no-coreqs", false, "hide corequisite links")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")

	return cmd
}

// runRender loads the catalog, renders it and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts renderOpts) error {
	reg, err := c.loadRegistry(ctx)
	if err != nil {
		return err
	}

	popts := pipeline.Options{
		Formats:          parseFormats(opts.formats, c.Config.Formats),
		Detailed:         opts.detailed,
		ClusterByTerm:    !opts.noCluster,
		ShowCorequisites: !opts.noCoreqs,
		Refresh:          opts.refresh,
		Logger:           c.Logger,
	}
	if err := pipeline.ValidateFormats(popts.Formats); err != nil {
		return err
	}
	if opts.focus != "" {
		course, err := lookupCourse(reg, opts.focus)
		if err != nil {
			return err
		}
		popts.Focus = course.ID
	}

	runner, err := c.newRunner(ctx, opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	prog := newProgress(c.Logger)
	spinner := newSpinnerWithContext(ctx, "Rendering course graph...")
	spinner.Start()

	result, err := runner.Render(ctx, reg, popts)
	if err != nil {
		spinner.StopWithError("Render failed")
		return fmt.Errorf("render: %w", err)
	}
	spinner.Stop()
	prog.done(fmt.Sprintf("Rendered %d courses", result.Stats.Courses))

	paths, err := writeArtifacts(result.Artifacts, popts.Formats, opts.output, outputBase(reg, popts.Focus))
	if err != nil {
		return err
	}

	printSuccess("Rendered %s", strings.Join(popts.Formats, ", "))
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Courses, result.Stats.Edges, result.CacheHit)
	if result.Stats.Dangling > 0 {
		printWarning("%d prerequisite references point to unknown courses", result.Stats.Dangling)
		printNextStep("Inspect them with", appName+" check")
	}
	return nil
}

// outputBase is the default file name: "coursemap" or "coursemap-<focus>".
func outputBase(reg *catalog.Registry, focus string) string {
	if focus == "" {
		return defaultOutputBase
	}
	if c, ok := reg.ByID(focus); ok {
		return defaultOutputBase + "-" + strings.ToLower(c.ID)
	}
	return defaultOutputBase
}

// basePath strips a known format extension from output. An empty output
// yields fallback.
func basePath(output, fallback string) string {
	if output == "" {
		return fallback
	}
	ext := strings.TrimPrefix(filepath.Ext(output), ".")
	if slices.Contains(pipeline.ValidFormats, strings.ToLower(ext)) {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	return output
}

// writeArtifacts writes each format's bytes and returns the paths written.
// A single format honors output verbatim; multiple formats share its base.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, fallback string) ([]string, error) {
	var paths []string
	for _, format := range formats {
		data, ok := artifacts[format]
		if !ok {
			return paths, fmt.Errorf("missing %s artifact", format)
		}
		path := basePath(output, fallback) + "." + format
		if len(formats) == 1 && output != "" {
			path = output
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
