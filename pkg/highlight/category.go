package highlight

// Category is the relationship of a candidate course to the focal course.
type Category int

const (
	None Category = iota
	Self
	Prerequisite
	IndirectPrerequisite
	Corequisite
	Dependent
)

// Categories lists every category in declaration order.
var Categories = []Category{None, Self, Prerequisite, IndirectPrerequisite, Corequisite, Dependent}

var categoryNames = [...]string{
	None:                 "none",
	Self:                 "self",
	Prerequisite:         "prerequisite",
	IndirectPrerequisite: "indirect-prerequisite",
	Corequisite:          "corequisite",
	Dependent:            "dependent",
}

// String returns the machine-readable name, e.g. "indirect-prerequisite".
func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory returns the category with the given String name.
func ParseCategory(s string) (Category, bool) {
	for i, name := range categoryNames {
		if name == s {
			return Category(i), true
		}
	}
	return None, false
}

// Style is a fill/border color pair in #rrggbb form.
type Style struct {
	Fill   string `json:"fill"`
	Border string `json:"border"`
}

var styles = [...]Style{
	None:                 {Fill: "#ffffff", Border: "#000000"},
	Self:                 {Fill: "#bbf7d0", Border: "#16a34a"},
	Prerequisite:         {Fill: "#fef08a", Border: "#ea580c"},
	IndirectPrerequisite: {Fill: "#fed7aa", Border: "#dc2626"},
	Corequisite:          {Fill: "#bfdbfe", Border: "#2563eb"},
	Dependent:            {Fill: "#fbcfe8", Border: "#db2777"},
}

var labels = [...]string{
	None:                 "",
	Self:                 "Selected Course",
	Prerequisite:         "Prerequisites",
	IndirectPrerequisite: "Indirect Prerequisites",
	Corequisite:          "Corequisites",
	Dependent:            "Following Courses",
}

// Style returns the colors for c. Unknown categories use the None style.
func (c Category) Style() Style {
	if c < 0 || int(c) >= len(styles) {
		return styles[None]
	}
	return styles[c]
}

// Label returns the legend label for c, or "" for None.
func (c Category) Label() string {
	if c < 0 || int(c) >= len(labels) {
		return ""
	}
	return labels[c]
}

// LegendEntry is one row of the highlight legend.
type LegendEntry struct {
	Category Category `json:"category"`
	Label    string   `json:"label"`
	Style    Style    `json:"style"`
}

// Legend returns the legend rows in display order.
func Legend() []LegendEntry {
	order := []Category{Prerequisite, IndirectPrerequisite, Corequisite, Dependent, Self}
	out := make([]LegendEntry, len(order))
	for i, c := range order {
		out[i] = LegendEntry{Category: c, Label: c.Label(), Style: c.Style()}
	}
	return out
}
