package catalog

// Specialization is a fourth-year concentration identified by a single letter.
type Specialization struct {
	Letter      string `json:"letter"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Specialization letters.
const (
	SpecCommunications = "T"
	SpecSystems        = "S"
	SpecElectronics    = "E"
	SpecMicrowave      = "M"
	SpecPower          = "P"
)

// Specializations lists the program's specializations in display order.
var Specializations = []Specialization{
	{SpecCommunications, "Communications", "Focus on communication systems, signal processing, and wireless technologies."},
	{SpecSystems, "Systems", "Focus on control systems, robotics, and system integration."},
	{SpecElectronics, "Electronics", "Focus on electronic devices, circuits, and semiconductor technologies."},
	{SpecMicrowave, "Microwave & Photonic", "Focus on microwave circuits, optics, and photonic systems."},
	{SpecPower, "Power & Sustainable Energy", "Focus on power systems, renewable energy, and sustainable technologies."},
}

// LookupSpecialization returns the specialization with the given letter.
func LookupSpecialization(letter string) (Specialization, bool) {
	for _, s := range Specializations {
		if s.Letter == letter {
			return s, true
		}
	}
	return Specialization{}, false
}

// SpecializationLetters returns the valid specialization letters in display order.
func SpecializationLetters() []string {
	letters := make([]string, len(Specializations))
	for i, s := range Specializations {
		letters[i] = s.Letter
	}
	return letters
}
