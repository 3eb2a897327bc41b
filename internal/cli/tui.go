package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/matzehuels/coursemap/pkg/catalog"
	"github.com/matzehuels/coursemap/pkg/highlight"
	"github.com/matzehuels/coursemap/pkg/relation"
)

// List styles
var (
	listDimStyle   = lipgloss.NewStyle().Foreground(colorDim)
	listLockStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorYellow)
	listInputStyle = lipgloss.NewStyle().Foreground(colorWhite).Underline(true)
)

// =============================================================================
// ExploreModel - Interactive course explorer
// =============================================================================

// ExploreModel is the bubbletea model for the course explorer.
//
// The cursor hovers a course; "b" toggles a lock on it so the highlights
// stay while the cursor moves on. Filters narrow the visible list but never
// the set of courses being classified.
type ExploreModel struct {
	Registry   *catalog.Registry
	Resolver   *relation.Resolver
	Classifier *highlight.Classifier

	Criteria catalog.Criteria
	Courses  []catalog.Course
	Focus    highlight.Focus

	Cursor int
	Height int
	Offset int

	// Searching is true while "/" input is active.
	Searching bool

	// ShowRelations toggles the relationship panel.
	ShowRelations bool
}

// NewExploreModel creates an explorer over reg with the first course hovered.
func NewExploreModel(reg *catalog.Registry) ExploreModel {
	res := relation.New(reg)
	m := ExploreModel{
		Registry:   reg,
		Resolver:   res,
		Classifier: highlight.NewClassifier(res),
		Height:     15,
	}
	m.refilter()
	return m
}

func (m ExploreModel) Init() tea.Cmd {
	return nil
}

func (m ExploreModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Searching {
			return m.updateSearch(msg), nil
		}
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.ShowRelations = false
			m.Focus = m.Focus.Unlock()
		case "up", "k":
			m.move(-1)
		case "down", "j":
			m.move(1)
		case "b":
			m.Focus = m.Focus.Toggle()
		case "a", "enter":
			m.ShowRelations = !m.ShowRelations
		case "/":
			m.Searching = true
		case "y":
			m.Criteria.Year = nextYear(m.Criteria.Year)
			m.refilter()
		case "s":
			m.Criteria.Specialization = nextSpecialization(m.Criteria.Specialization)
			m.refilter()
		}
	case tea.WindowSizeMsg:
		m.Height = msg.Height - 12
		if m.Height < 5 {
			m.Height = 5
		}
		m.scroll()
	}
	return m, nil
}

// updateSearch edits the search term. Enter and esc leave search mode;
// esc also clears the term.
func (m ExploreModel) updateSearch(msg tea.KeyMsg) ExploreModel {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.Searching = false
	case tea.KeyEnter:
		m.Searching = false
	case tea.KeyEsc:
		m.Searching = false
		m.Criteria.Search = ""
		m.refilter()
	case tea.KeyBackspace:
		if s := []rune(m.Criteria.Search); len(s) > 0 {
			m.Criteria.Search = string(s[:len(s)-1])
			m.refilter()
		}
	case tea.KeySpace:
		m.Criteria.Search += " "
		m.refilter()
	case tea.KeyRunes:
		m.Criteria.Search += string(msg.Runes)
		m.refilter()
	}
	return m
}

// move shifts the cursor by delta and hovers the course under it.
func (m *ExploreModel) move(delta int) {
	next := m.Cursor + delta
	if next < 0 || next >= len(m.Courses) {
		return
	}
	m.Cursor = next
	m.scroll()
	m.hover()
}

// refilter reapplies the criteria, clamping the cursor to the new list.
func (m *ExploreModel) refilter() {
	m.Courses = catalog.Filter(m.Registry, m.Criteria)
	if m.Cursor >= len(m.Courses) {
		m.Cursor = len(m.Courses) - 1
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
	m.scroll()
	m.hover()
}

func (m *ExploreModel) scroll() {
	if m.Cursor < m.Offset {
		m.Offset = m.Cursor
	}
	if m.Cursor >= m.Offset+m.Height {
		m.Offset = m.Cursor - m.Height + 1
	}
	if m.Offset < 0 {
		m.Offset = 0
	}
}

func (m *ExploreModel) hover() {
	if len(m.Courses) == 0 {
		m.Focus = m.Focus.Leave()
		return
	}
	m.Focus = m.Focus.Hover(m.Courses[m.Cursor].ID)
}

// Highlights classifies every course against the effective focus.
func (m ExploreModel) Highlights() map[string]highlight.Category {
	return m.Classifier.Focus(m.Focus)
}

func nextYear(y int) int {
	if y >= catalog.LastYear {
		return catalog.AllYears
	}
	return y + 1
}

func nextSpecialization(s string) string {
	letters := catalog.SpecializationLetters()
	if s == "" || s == catalog.AllSpecializations {
		return letters[0]
	}
	for i, l := range letters {
		if l == s && i+1 < len(letters) {
			return letters[i+1]
		}
	}
	return catalog.AllSpecializations
}

func (m ExploreModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Course Explorer"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ move  b lock  a relations  / search  y year  s spec  q quit"))
	b.WriteString("\n")
	b.WriteString(m.filterLine())
	b.WriteString("\n\n")

	highlights := m.Highlights()

	end := min(m.Offset+m.Height, len(m.Courses))

	rows := [][]string{}
	for i := m.Offset; i < end; i++ {
		c := m.Courses[i]
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}
		rows = append(rows, []string{cursor, c.Code, c.Name, c.Term(), highlights[c.ID].Label()})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("", "Code", "Name", "Term", "Relation").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == -1 {
				return styleHeader
			}
			idx := m.Offset + row
			if idx < 0 || idx >= len(m.Courses) {
				return lipgloss.NewStyle()
			}
			s := categoryStyle(highlights[m.Courses[idx].ID])
			if idx == m.Cursor {
				s = s.Bold(true)
			}
			return s
		})

	if len(m.Courses) == 0 {
		b.WriteString(listDimStyle.Render("  No courses match."))
	} else {
		b.WriteString(t.Render())
	}
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", min(m.Cursor+1, len(m.Courses)), len(m.Courses))))
	if id, ok := m.Focus.Locked(); ok {
		b.WriteString("  " + listLockStyle.Render("locked "+id))
	}

	if m.ShowRelations {
		b.WriteString("\n\n")
		b.WriteString(m.relationsView())
	}

	return b.String()
}

func (m ExploreModel) filterLine() string {
	search := m.Criteria.Search
	if m.Searching {
		search = listInputStyle.Render(search + "_")
	} else if search == "" {
		search = "-"
	}
	year := "all"
	if m.Criteria.Year != catalog.AllYears {
		year = fmt.Sprint(m.Criteria.Year)
	}
	spec := "all"
	if s, ok := catalog.LookupSpecialization(m.Criteria.Specialization); ok {
		spec = s.Name
	}
	return listDimStyle.Render("search: ") + search +
		listDimStyle.Render("  year: ") + year +
		listDimStyle.Render("  spec: ") + spec
}

// relationsView lists the relationships of the effective focus course.
func (m ExploreModel) relationsView() string {
	focal := m.Focus.Focal(m.Registry)
	if focal == nil {
		return listDimStyle.Render("No course selected.")
	}
	rel, _ := m.Resolver.Relations(focal.ID)

	var b strings.Builder
	b.WriteString(categoryStyle(highlight.Self).Render(focal.Code + "  " + focal.Name))
	b.WriteString("\n")
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
		codes := listDimStyle.Render("none")
		if len(s.courses) > 0 {
			parts := make([]string, len(s.courses))
			for i, c := range s.courses {
				parts[i] = c.Code
			}
			codes = categoryStyle(s.cat).Render(strings.Join(parts, ", "))
		}
		b.WriteString(fmt.Sprintf("%s %-24s %s\n", categoryBadge(s.cat), s.cat.Label(), codes))
	}
	return strings.TrimRight(b.String(), "\n")
}
