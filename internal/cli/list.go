package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursemap/pkg/catalog"
	errs "github.com/matzehuels/coursemap/pkg/errors"
)

const (
	outputTable = "table"
	outputJSON  = "json"
)

// listOpts holds the command-line flags for the list command.
type listOpts struct {
	search string
	year   int
	spec   string
	format string
}

// listCommand creates the list command, the catalog filter.
func (c *CLI) listCommand() *cobra.Command {
	opts := listOpts{format: outputTable}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List courses matching a search, year and specialization",
		Example: `  coursemap list --search circuits
  coursemap list --year 4 --spec P
  coursemap list --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			criteria, err := opts.criteria()
			if err != nil {
				return err
			}
			reg, err := c.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			courses := catalog.Filter(reg, criteria)
			c.Logger.Debug("filtered catalog", "matches", len(courses), "of", reg.Len())
			return writeCourses(cmd.OutOrStdout(), opts.format, courses)
		},
	}

	cmd.Flags().StringVarP(&opts.search, "search", "s", "", "match name, code or tag (case-insensitive)")
	cmd.Flags().IntVarP(&opts.year, "year", "y", catalog.AllYears, "program year 1-4 (0 for all)")
	cmd.Flags().StringVar(&opts.spec, "spec", catalog.AllSpecializations, "specialization letter: "+strings.Join(catalog.SpecializationLetters(), ", ")+", or all")
	cmd.Flags().StringVar(&opts.format, "format", opts.format, "output format: table, json")

	return cmd
}

// criteria validates the flags and builds filter criteria.
func (o listOpts) criteria() (catalog.Criteria, error) {
	if o.year != catalog.AllYears && (o.year < catalog.FirstYear || o.year > catalog.LastYear) {
		return catalog.Criteria{}, errs.New(errs.ErrCodeInvalidFilter, "year %d out of range (want %d-%d or 0)", o.year, catalog.FirstYear, catalog.LastYear)
	}
	spec := strings.ToUpper(strings.TrimSpace(o.spec))
	if spec == "ALL" {
		spec = catalog.AllSpecializations
	}
	if spec != "" && spec != catalog.AllSpecializations && !slices.Contains(catalog.SpecializationLetters(), spec) {
		return catalog.Criteria{}, errs.New(errs.ErrCodeInvalidFilter, "unknown specialization %q", o.spec)
	}
	switch o.format {
	case outputTable, outputJSON:
	default:
		return catalog.Criteria{}, errs.New(errs.ErrCodeInvalidFormat, "invalid format %q (must be table or json)", o.format)
	}
	return catalog.Criteria{Search: o.search, Year: o.year, Specialization: spec}, nil
}

// writeCourses prints courses as a table or as indented JSON.
func writeCourses(w io.Writer, format string, courses []catalog.Course) error {
	if format == outputJSON {
		if courses == nil {
			courses = []catalog.Course{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(courses)
	}
	if len(courses) == 0 {
		_, err := fmt.Fprintln(w, StyleDim.Render("No courses match."))
		return err
	}
	_, err := fmt.Fprintf(w, "%s\n%s\n", courseTable(courses, nil),
		StyleDim.Render(fmt.Sprintf("%d courses · %d units", len(courses), catalog.TotalUnits(courses))))
	return err
}
