package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	errs "github.com/matzehuels/coursemap/pkg/errors"
	"github.com/matzehuels/coursemap/pkg/lint"
)

// checkCommand creates the check command, the catalog health report.
func (c *CLI) checkCommand() *cobra.Command {
	var (
		strict  bool
		asJSON  bool
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Report dangling references, cycles and scheduling problems",
		Long: `Check the catalog for problems that the resolver tolerates silently:
prerequisites naming unknown courses, courses requiring themselves,
prerequisite cycles, and prerequisites scheduled after the course that
needs them.

The exit status is zero unless --strict is set and an error-level finding
exists.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			reg, err := c.loadRegistry(ctx)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(ctx, noCache)
			if err != nil {
				return fmt.Errorf("initialize runner: %w", err)
			}
			defer runner.Close()

			report, err := runner.Check(ctx, reg)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				if err := enc.Encode(report); err != nil {
					return err
				}
			} else {
				printReport(report)
			}

			if strict && report.HasErrors() {
				return errs.New(errs.ErrCodeInvalidCatalog, "catalog has %d error(s)", report.Count(lint.Error))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "exit non-zero when errors are found")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "do not read or store the cached report")
	return cmd
}

func printReport(report lint.Report) {
	if report.Clean() {
		printSuccess("%d courses, no problems found", report.Courses)
		return
	}
	for _, f := range report.Findings {
		switch f.Severity {
		case lint.Error:
			printError("%s %s", StyleError.Render(f.Course), f.Message)
		case lint.Warning:
			printWarning("%s %s", f.Course, f.Message)
		default:
			printInfo("%s %s", f.Course, f.Message)
		}
	}
	printNewline()
	printInfo("%d courses · %s errors · %s warnings", report.Courses,
		StyleNumber.Render(fmt.Sprint(report.Count(lint.Error))),
		StyleNumber.Render(fmt.Sprint(report.Count(lint.Warning))))
}
