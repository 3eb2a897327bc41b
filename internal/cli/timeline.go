package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/highlight"
	"github.com/matzehuels/coursemap/pkg/pipeline"
	"github.com/matzehuels/coursemap/pkg/timeline"
)

// timelineCommand creates the timeline command: the program laid out by year
// and semester, optionally colored relative to a focus course.
func (c *CLI) timelineCommand() *cobra.Command {
	var (
		focus  string
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "timeline",
		Short:   "Show the program by year and semester",
		Example: "  coursemap timeline\n  coursemap timeline --focus ELG3175",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			highlights, err := focusHighlights(reg, focus)
			if err != nil {
				return err
			}
			years := timeline.Build(reg)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(years)
			}
			printTimeline(years, highlights)
			if focus != "" {
				printNewline()
				printLegend()
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&focus, "focus", "", "course to highlight relationships for")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the timeline as JSON")
	return cmd
}

// focusHighlights classifies reg against a user-supplied course ID. An empty
// focus yields nil.
func focusHighlights(reg *catalog.Registry, focus string) (map[string]highlight.Category, error) {
	if focus == "" {
		return nil, nil
	}
	course, err := lookupCourse(reg, focus)
	if err != nil {
		return nil, err
	}
	return pipeline.Highlights(reg, course.ID)
}

func printTimeline(years []timeline.Year, highlights map[string]highlight.Category) {
	for i, y := range years {
		if i > 0 {
			printNewline()
		}
		fmt.Println(StyleTitle.Render(fmt.Sprintf("Year %d", y.Year)) + " " +
			StyleDim.Render(fmt.Sprintf("· %d units", y.Units)))
		if y.Note != "" {
			printDetail("%s", y.Note)
		}
		for _, t := range y.Terms {
			fmt.Println("  " + StyleHighlight.Render(string(t.Semester)) + " " +
				StyleDim.Render(fmt.Sprintf("(%d units)", t.Units())))
			for _, course := range t.Courses {
				fmt.Println("    " + formatCourse(course, highlights[course.ID]))
			}
		}
	}
}

func printLegend() {
	for _, e := range highlight.Legend() {
		fmt.Println(categoryBadge(e.Category) + " " + categoryStyle(e.Category).Render(e.Label))
	}
}
