package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/highlight"
)

// highlightCommand creates the highlight command: the category of every
// course relative to one focus course.
func (c *CLI) highlightCommand() *cobra.Command {
	var (
		all    bool
		asJSON bool
	)

	cmd := &cobra.Command{
		Use:     "highlight <course>",
		Short:   "Classify every course relative to a focus course",
		Example: "  coursemap highlight ELG3175\n  coursemap highlight ELG3175 --all --json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			highlights, err := focusHighlights(reg, args[0])
			if err != nil {
				return err
			}
			courses := highlightedCourses(reg, highlights, all)

			if asJSON {
				out := make(map[string]highlight.Category, len(courses))
				for _, course := range courses {
					out[course.ID] = highlights[course.ID]
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(out)
			}

			for _, course := range courses {
				cat := highlights[course.ID]
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s %s\n",
					categoryBadge(cat), formatCourse(course, cat), StyleDim.Render(cat.String()))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "include unrelated courses")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print categories as JSON")
	return cmd
}

// highlightedCourses returns the registry courses in order, dropping
// category None unless all is set.
func highlightedCourses(reg *catalog.Registry, highlights map[string]highlight.Category, all bool) []catalog.Course {
	var out []catalog.Course
	for _, course := range reg.All() {
		if all || highlights[course.ID] != highlight.None {
			out = append(out, course)
		}
	}
	return out
}
