package catalog

// Default returns the registry built from the compiled-in program table.
// The table is validated at init; Default never fails.
func Default() *Registry { return defaultRegistry }

// SeedCourses returns a copy of the compiled-in program table in declaration
// order.
func SeedCourses() []Course {
	return defaultRegistry.All()
}

var defaultRegistry = MustNew(seed)

var seed = []Course{
	// Year 1 Fall
	{
		ID:          "CHM1311",
		Code:        "CHM 1311",
		Name:        "Principles of Chemistry",
		Units:       3,
		Description: "Fundamental principles of chemistry including atomic structure, chemical bonding, thermodynamics, and kinetics.",
		Year:        1,
		Semester:    Fall,
		Category:    Core,
		Tags:        []string{"Chemistry", "Science"},
	},
	{
		ID:          "ENG1112",
		Code:        "ENG 1112",
		Name:        "Technical Report Writing",
		Units:       3,
		Description: "Technical writing skills for engineering students including report structure, documentation, and communication.",
		Year:        1,
		Semester:    Fall,
		Category:    Core,
		Tags:        []string{"Communication", "Writing"},
	},
	{
		ID:          "GNG1105",
		Code:        "GNG 1105",
		Name:        "Engineering Mechanics",
		Units:       3,
		Description: "Fundamental principles of statics and dynamics applied to engineering problems.",
		Year:        1,
		Semester:    Fall,
		Category:    Core,
		Tags:        []string{"Mechanics", "Physics"},
	},
	{
		ID:          "GNG1106",
		Code:        "GNG 1106",
		Name:        "Fundamentals of Engineering Computation",
		Units:       3,
		Description: "Introduction to computational methods and programming for engineering applications.",
		Year:        1,
		Semester:    Fall,
		Category:    Core,
		Tags:        []string{"Programming", "Computation"},
	},
	{
		ID:          "MAT1320",
		Code:        "MAT 1320",
		Name:        "Calculus I",
		Units:       3,
		Description: "Differential calculus including limits, derivatives, and applications to engineering problems.",
		Year:        1,
		Semester:    Fall,
		Category:    Core,
		Tags:        []string{"Mathematics", "Calculus"},
	},
	// Year 1 Winter
	{
		ID:          "GNG1103",
		Code:        "GNG 1103",
		Name:        "Introduction to Engineering Design",
		Units:       3,
		Description: "Introduction to engineering design process, creativity, and problem-solving methodologies.",
		Year:        1,
		Semester:    Winter,
		Category:    Core,
		Tags:        []string{"Design", "Problem Solving"},
	},
	{
		ID:          "ITI1100",
		Code:        "ITI 1100",
		Name:        "Digital Systems I",
		Units:       3,
		Description: "Introduction to digital logic design, Boolean algebra, and combinational circuits.",
		Year:        1,
		Semester:    Winter,
		Category:    Core,
		Tags:        []string{"Digital Logic", "Electronics"},
	},
	{
		ID:            "MAT1322",
		Code:          "MAT 1322",
		Name:          "Calculus II",
		Units:         3,
		Description:   "Integral calculus including techniques of integration and applications.",
		Prerequisites: []string{"MAT1320"},
		Year:          1,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Mathematics", "Calculus"},
	},
	{
		ID:          "MAT1341",
		Code:        "MAT 1341",
		Name:        "Introduction to Linear Algebra",
		Units:       3,
		Description: "Fundamentals of linear algebra including matrices, vectors, and systems of equations.",
		Year:        1,
		Semester:    Winter,
		Category:    Core,
		Tags:        []string{"Mathematics", "Linear Algebra"},
	},
	{
		ID:          "PHY1124",
		Code:        "PHY 1124",
		Name:        "Fundamentals of Physics for Engineers",
		Units:       3,
		Description: "Physics fundamentals including mechanics, electricity, and magnetism for engineering applications.",
		Year:        1,
		Semester:    Winter,
		Category:    Core,
		Tags:        []string{"Physics", "Science"},
	},
	// Year 2 Fall
	{
		ID:            "CEG2136",
		Code:          "CEG 2136",
		Name:          "Computer Architecture I",
		Units:         3,
		Description:   "Design of digital computers, instruction sets, CPU design, and memory systems.",
		Prerequisites: []string{"ITI1100"},
		Year:          2,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Computer Architecture", "Hardware"},
	},
	{
		ID:            "ELG2138",
		Code:          "ELG 2138",
		Name:          "Circuit Theory I",
		Units:         3,
		Description:   "DC and AC circuit analysis, Kirchhoff laws, circuit theorems, and phasor analysis.",
		Prerequisites: []string{"ITI1100", "MAT1341", "MAT1322"},
		Year:          2,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Circuits", "Electronics"},
	},
	{
		ID:            "GNG2101",
		Code:          "GNG 2101",
		Name:          "Introduction to Product Development for Engineers and Computer Scientists",
		Units:         3,
		Description:   "Product development methodologies, team dynamics, and project management for engineers.",
		Prerequisites: []string{"GNG1103"},
		Year:          2,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Product Development", "Management"},
	},
	{
		ID:            "MAT2322",
		Code:          "MAT 2322",
		Name:          "Calculus III for Engineers",
		Units:         3,
		Description:   "Multivariable calculus including partial derivatives, multiple integrals, and vector calculus.",
		Prerequisites: []string{"MAT1322"},
		Year:          2,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Mathematics", "Calculus"},
	},
	{
		ID:            "MAT2384",
		Code:          "MAT 2384",
		Name:          "Ordinary Differential Equations and Numerical Methods",
		Units:         3,
		Description:   "Solution methods for ordinary differential equations and numerical analysis techniques.",
		Prerequisites: []string{"MAT1322", "MAT1341"},
		Year:          2,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Mathematics", "Differential Equations"},
	},
	{
		ID:          "HIS2129",
		Code:        "HIS 2129",
		Name:        "Technology, Society and Environment since 1800",
		Units:       3,
		Description: "Historical analysis of the relationship between technology, society, and environmental change.",
		Year:        2,
		Semester:    Fall,
		Category:    Complementary,
		Tags:        []string{"History", "Society"},
	},
	{
		ID:          "PHI2394",
		Code:        "PHI 2394",
		Name:        "Scientific Thought and Social Values",
		Units:       3,
		Description: "Philosophical examination of scientific methodology and its relationship to social values.",
		Year:        2,
		Semester:    Fall,
		Category:    Complementary,
		Tags:        []string{"Philosophy", "Ethics"},
	},
	// Year 2 Winter
	{
		ID:          "ELG2911",
		Code:        "ELG 2911",
		Name:        "Professional Practice in Information Technology and Engineering",
		Units:       3,
		Description: "Professional ethics, legal obligations, and communication skills for engineering practice.",
		Year:        2,
		Semester:    Winter,
		Category:    Core,
		Tags:        []string{"Professional Practice", "Ethics"},
	},
	{
		ID:            "ELG2136",
		Code:          "ELG 2136",
		Name:          "Electronics I",
		Units:         3,
		Description:   "Semiconductor physics, diodes, transistors, and basic amplifier circuits.",
		Prerequisites: []string{"ELG2138"},
		Year:          2,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Electronics", "Semiconductors"},
	},
	{
		ID:            "ELG2137",
		Code:          "ELG 2137",
		Name:          "Circuit Theory II",
		Units:         3,
		Description:   "Operational amplifiers, RLC circuits, Laplace transforms, and two-port networks.",
		Prerequisites: []string{"ELG2138", "MAT2384"},
		Year:          2,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Circuits", "Electronics"},
	},
	{
		ID:            "PHY2323",
		Code:          "PHY 2323",
		Name:          "Electricity and Magnetism",
		Units:         3,
		Description:   "Electromagnetic theory including Maxwell's equations and electromagnetic wave propagation.",
		Prerequisites: []string{"MAT2322", "PHY1124"},
		Year:          2,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Physics", "Electromagnetics"},
	},
	// Year 3 Fall
	{
		ID:            "CEG3136",
		Code:          "CEG 3136",
		Name:          "Computer Architecture II",
		Units:         3,
		Description:   "Microprocessors, CISC/RISC architectures, microcontrollers, and embedded systems.",
		Prerequisites: []string{"CEG2136"},
		Year:          3,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Computer Architecture", "Microprocessors"},
	},
	{
		ID:            "ELG3106",
		Code:          "ELG 3106",
		Name:          "Electromagnetic Engineering",
		Units:         3,
		Description:   "Transmission lines, waveguides, impedance matching, and antenna fundamentals.",
		Prerequisites: []string{"MAT2322", "MAT2384", "PHY2323"},
		Year:          3,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Electromagnetics", "Antennas"},
	},
	{
		ID:            "ELG3125",
		Code:          "ELG 3125",
		Name:          "Signal and System Analysis",
		Units:         3,
		Description:   "Continuous and discrete-time signals, Fourier analysis, and linear time-invariant systems.",
		Prerequisites: []string{"ELG2138"},
		Year:          3,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Signals", "Systems"},
	},
	{
		ID:            "ELG3136",
		Code:          "ELG 3136",
		Name:          "Electronics II",
		Units:         3,
		Description:   "Differential amplifiers, frequency response, feedback, and power amplifiers.",
		Prerequisites: []string{"ELG2136"},
		Year:          3,
		Semester:      Fall,
		Category:      Core,
		Tags:          []string{"Electronics", "Amplifiers"},
	},
	// Year 3 Winter
	{
		ID:            "ELG3126",
		Code:          "ELG 3126",
		Name:          "Random Signals and Systems",
		Units:         3,
		Description:   "Probability theory, random processes, and statistical signal processing.",
		Prerequisites: []string{"ELG3125"},
		Year:          3,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Probability", "Statistics"},
	},
	{
		ID:            "ELG3137",
		Code:          "ELG 3137",
		Name:          "Fundamentals of Semiconductor Devices",
		Units:         3,
		Description:   "Solid-state physics, semiconductor device operation, and modern device fabrication.",
		Prerequisites: []string{"ELG2136", "MAT2384", "PHY1124"},
		Year:          3,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Semiconductors", "Devices"},
	},
	{
		ID:            "ELG3155",
		Code:          "ELG 3155",
		Name:          "Introduction to Control Systems",
		Units:         3,
		Description:   "Control system analysis, stability criteria, and controller design methods.",
		Prerequisites: []string{"ELG3125"},
		Year:          3,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Control Systems", "Feedback"},
	},
	{
		ID:            "ELG3175",
		Code:          "ELG 3175",
		Name:          "Introduction to Communication Systems",
		Units:         3,
		Description:   "Analog and digital modulation techniques, communication system analysis.",
		Prerequisites: []string{"ELG3125"},
		Corequisites:  []string{"ELG3126"},
		Year:          3,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Communications", "Modulation"},
	},
	{
		ID:            "ELG3316",
		Code:          "ELG 3316",
		Name:          "Electric Machines and Power Systems",
		Units:         3,
		Description:   "AC/DC machines, transformers, and power system fundamentals.",
		Prerequisites: []string{"ELG2138"},
		Year:          3,
		Semester:      Winter,
		Category:      Core,
		Tags:          []string{"Power Systems", "Machines"},
	},
	// Year 4 Fall
	{
		ID:              "CEG4158",
		Code:            "CEG 4158",
		Name:            "Computer Control in Robotics",
		Units:           3,
		Description:     "Robotic systems, kinematics, control algorithms, and computer vision for robotics.",
		Prerequisites:   []string{"CEG2136", "ELG3155"},
		Year:            4,
		Semester:        Fall,
		Category:        Technical,
		Tags:            []string{"Robotics", "Control", "Specialization"},
		Specializations: []string{"S"},
	},
	{
		ID:              "ELG4117",
		Code:            "ELG 4117",
		Name:            "Optoelectronics and Optical Components",
		Units:           3,
		Description:     "Optical devices, lasers, photodetectors, and optoelectronic system design.",
		Prerequisites:   []string{"ELG3106", "ELG3136"},
		Year:            4,
		Semester:        Fall,
		Category:        Technical,
		Tags:            []string{"Optics", "Photonics", "Specialization"},
		Specializations: []string{"E", "M"},
	},
	{
		ID:              "ELG4125",
		Code:            "ELG 4125",
		Name:            "Electric Power Transmission, Distribution & Utilization",
		Units:           3,
		Description:     "Power system analysis, transmission lines, distribution systems, and power quality.",
		Prerequisites:   []string{"ELG2137", "ELG3316"},
		Year:            4,
		Semester:        Fall,
		Category:        Technical,
		Tags:            []string{"Power Systems", "Transmission", "Specialization"},
		Specializations: []string{"P"},
	},
	{
		ID:              "ELG4139",
		Code:            "ELG 4139",
		Name:            "Electronics III",
		Units:           3,
		Description:     "Advanced operational amplifier applications, power electronics, and MEMS devices.",
		Prerequisites:   []string{"ELG3136", "ELG3155"},
		Year:            4,
		Semester:        Fall,
		Category:        Technical,
		Tags:            []string{"Electronics", "Power Electronics", "Specialization"},
		Specializations: []string{"T", "E", "M", "P"},
	},
	{
		ID:              "ELG4156",
		Code:            "ELG 4156",
		Name:            "Linear Systems",
		Units:           3,
		Description:     "State-space analysis, controllability, observability, and system identification.",
		Prerequisites:   []string{"ELG3125", "ELG3155"},
		Year:            4,
		Semester:        Fall,
		Category:        Technical,
		Tags:            []string{"Systems", "Control", "Specialization"},
		Specializations: []string{"T", "S"},
	},
	{
		ID:              "ELG4176",
		Code:            "ELG 4176",
		Name:            "Communication Systems",
		Units:           3,
		Description:     "Digital communication systems, modulation, detection, and error control coding.",
		Prerequisites:   []string{"ELG3175", "ELG3126"},
		Year:            4,
		Semester:        Fall,
		Category:        Technical,
		Tags:            []string{"Communications", "Digital", "Specialization"},
		Specializations: []string{"T", "E"},
	},
	{
		ID:              "ELG4179",
		Code:            "ELG 4179",
		Name:            "Wireless Communication Fundamentals",
		Units:           3,
		Description:     "Wireless propagation, cellular systems, and modern wireless communication standards.",
		Prerequisites:   []string{"ELG3175"},
		Year:            4,
		Semester:        Fall,
		Category:        Technical,
		Tags:            []string{"Wireless", "Communications", "Specialization"},
		Specializations: []string{"T", "M", "P"},
	},
	{
		ID:              "ELG4912",
		Code:            "ELG 4912",
		Name:            "Electrical Engineering Design Project: Part I",
		Units:           3,
		Description:     "Capstone design project integrating electrical engineering knowledge and skills.",
		Prerequisites:   []string{"ELG3106", "ELG3136", "ELG3175", "ELG3155"},
		Year:            4,
		Semester:        Fall,
		Category:        Core,
		Tags:            []string{"Design Project", "Capstone", "Specialization"},
		Specializations: []string{"T", "S", "E", "M", "P"},
	},
	// Year 4 Winter
	{
		ID:              "ELG4115",
		Code:            "ELG 4115",
		Name:            "Microwave Circuits",
		Units:           3,
		Description:     "Microwave circuit design, network parameters, and microwave amplifier design.",
		Prerequisites:   []string{"ELG3106", "ELG3136"},
		Year:            4,
		Semester:        Winter,
		Category:        Technical,
		Tags:            []string{"Microwave", "Circuits", "Specialization"},
		Specializations: []string{"E", "M"},
	},
	{
		ID:              "ELG4118",
		Code:            "ELG 4118",
		Name:            "Wave Propagation and Antennas",
		Units:           3,
		Description:     "Antenna theory, array antennas, and electromagnetic wave propagation.",
		Prerequisites:   []string{"ELG3106"},
		Year:            4,
		Semester:        Winter,
		Category:        Technical,
		Tags:            []string{"Antennas", "Propagation", "Specialization"},
		Specializations: []string{"T", "M"},
	},
	{
		ID:              "ELG4126",
		Code:            "ELG 4126",
		Name:            "Sustainable Electrical Power Systems",
		Units:           3,
		Description:     "Renewable energy integration, smart grids, and sustainable power system design.",
		Prerequisites:   []string{"ELG2137", "ELG3316", "ELG3136", "ELG3155"},
		Year:            4,
		Semester:        Winter,
		Category:        Technical,
		Tags:            []string{"Power Systems", "Renewable Energy", "Specialization"},
		Specializations: []string{"P"},
	},
	{
		ID:              "ELG4137",
		Code:            "ELG 4137",
		Name:            "Principles and Applications of VLSI Design",
		Units:           3,
		Description:     "VLSI design methodologies, CMOS circuits, and integrated circuit design.",
		Prerequisites:   []string{"ELG2136"},
		Year:            4,
		Semester:        Winter,
		Category:        Technical,
		Tags:            []string{"VLSI", "Integrated Circuits", "Specialization"},
		Specializations: []string{"S", "E"},
	},
	{
		ID:              "ELG4157",
		Code:            "ELG 4157",
		Name:            "Modern Control Engineering",
		Units:           3,
		Description:     "Advanced control techniques, optimal control, and modern control system design.",
		Prerequisites:   []string{"ELG3155"},
		Year:            4,
		Semester:        Winter,
		Category:        Technical,
		Tags:            []string{"Control Systems", "Optimal Control", "Specialization"},
		Specializations: []string{"S", "P"},
	},
	{
		ID:              "ELG4159",
		Code:            "ELG 4159",
		Name:            "Integrated Control Systems",
		Units:           3,
		Description:     "Microcontroller-based control systems, digital control, and system integration.",
		Prerequisites:   []string{"CEG3136", "ELG3125", "ELG3155", "ELG3316"},
		Year:            4,
		Semester:        Winter,
		Category:        Technical,
		Tags:            []string{"Control Systems", "Microcontrollers", "Specialization"},
		Specializations: []string{"S", "P"},
	},
	{
		ID:              "ELG4177",
		Code:            "ELG 4177",
		Name:            "Digital Signal Processing",
		Units:           3,
		Description:     "Digital signal processing algorithms, filter design, and DSP applications.",
		Prerequisites:   []string{"ELG3125"},
		Year:            4,
		Semester:        Winter,
		Category:        Technical,
		Tags:            []string{"Signal Processing", "Digital", "Specialization"},
		Specializations: []string{"T", "S", "E"},
	},
	{
		ID:              "ELG4178",
		Code:            "ELG 4178",
		Name:            "Optical Communications and Networking",
		Units:           3,
		Description:     "Optical fiber communications, WDM systems, and optical networking.",
		Prerequisites:   []string{"ELG3106"},
		Year:            4,
		Semester:        Winter,
		Category:        Technical,
		Tags:            []string{"Optical Communications", "Networking", "Specialization"},
		Specializations: []string{"M"},
	},
	{
		ID:              "ELG4913",
		Code:            "ELG 4913",
		Name:            "Electrical Engineering Design Project: Part II",
		Units:           3,
		Description:     "Completion of the capstone design project with final implementation and presentation.",
		Prerequisites:   []string{"ELG4912"},
		Year:            4,
		Semester:        Winter,
		Category:        Core,
		Tags:            []string{"Design Project", "Capstone", "Specialization"},
		Specializations: []string{"T", "S", "E", "M", "P"},
	},
}
