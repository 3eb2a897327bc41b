package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/coursemap/pkg/catalog"
)

// exportCommand creates the export command. Without -o the active catalog
// is written to stdout as JSON; with -o the extension picks JSON or TOML.
func (c *CLI) exportCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:     "export",
		Short:   "Write the active catalog as JSON or TOML",
		Example: "  coursemap export > courses.json\n  coursemap export -o courses.toml",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			if output == "" {
				return catalog.WriteJSON(reg, cmd.OutOrStdout())
			}
			if err := catalog.ExportFile(reg, output); err != nil {
				return err
			}
			printSuccess("Exported %d courses", reg.Len())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (.json or .toml)")
	return cmd
}
