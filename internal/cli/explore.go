package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// exploreCommand creates the explore command, the interactive course browser.
func (c *CLI) exploreCommand() *cobra.Command {
	var focus string

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Browse courses interactively",
		Long: `Browse the catalog in the terminal.

Keys:
  ↑/k ↓/j   move the cursor (hovering a course highlights its relations)
  b         lock or unlock the highlight on the hovered course
  a, enter  show the relationship panel
  /         search by name, code or tag
  y         cycle the year filter
  s         cycle the specialization filter
  esc       clear the lock and close the panel
  q         quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			m := NewExploreModel(reg)
			if focus != "" {
				course, err := lookupCourse(reg, focus)
				if err != nil {
					return err
				}
				m.Focus = m.Focus.Lock(course.ID)
			}

			p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("explore: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&focus, "focus", "", "start with the highlight locked on this course")
	return cmd
}
