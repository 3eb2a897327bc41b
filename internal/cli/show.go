package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/highlight"
	"github.com/matzehuels/coursemap/pkg/relation"
)

// showCommand creates the show command: one course with every relationship.
func (c *CLI) showCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "show <course>",
		Short:   "Show a course with its prerequisites, corequisites and following courses",
		Example: "  coursemap show ELG3175\n  coursemap show \"elg 3175\" --json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := c.loadRegistry(cmd.Context())
			if err != nil {
				return err
			}
			course, err := lookupCourse(reg, args[0])
			if err != nil {
				return err
			}
			rel, _ := relation.New(reg).Relations(course.ID)

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(rel)
			}
			printRelations(rel)
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print relations as JSON")
	return cmd
}

// printRelations prints a course card followed by each relationship list
// in its legend color.
func printRelations(rel relation.Relations) {
	course := rel.Course
	fmt.Println(categoryStyle(highlight.Self).Render(course.Code + "  " + course.Name))
	printNewline()
	printKeyValue("Units", fmt.Sprint(course.Units))
	printKeyValue("Term", course.Term())
	printKeyValue("Category", string(course.Category))
	if len(course.Tags) > 0 {
		printKeyValue("Tags", formatTags(course, catalog.DefaultVisibleTags))
	}
	if len(course.Specializations) > 0 {
		names := make([]string, 0, len(course.Specializations))
		for _, letter := range course.Specializations {
			if s, ok := catalog.LookupSpecialization(letter); ok {
				names = append(names, s.Name)
			} else {
				names = append(names, letter)
			}
		}
		printKeyValue("Specializations", strings.Join(names, ", "))
	}
	if course.Description != "" {
		printNewline()
		fmt.Println(StyleDim.Render(course.Description))
	}

	sections := []struct {
		cat     highlight.Category
		courses []catalog.Course
	}{
		{highlight.Prerequisite, rel.Prerequisites},
		{highlight.IndirectPrerequisite, rel.IndirectPrerequisites},
		{highlight.Corequisite, rel.Corequisites},
		{highlight.Dependent, rel.Dependents},
	}
	for _, s := range sections {
		printNewline()
		printCourseList(s.cat.Label(), s.courses, s.cat)
	}
}
