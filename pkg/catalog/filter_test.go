package catalog

import "testing"

func TestFilter(t *testing.T) {
	reg := Default()

	tests := []struct {
		name     string
		criteria Criteria
		want     []string // IDs that must be present
		exclude  []string // IDs that must be absent
		count    int      // expected size, -1 to skip
	}{
		{
			name:     "ZeroMatchesAll",
			criteria: Criteria{},
			count:    reg.Len(),
		},
		{
			name:     "SearchCircuitCaseInsensitive",
			criteria: Criteria{Search: "circuit", Specialization: AllSpecializations},
			want:     []string{"ELG2138", "ELG2137", "ELG4115", "ELG4137"},
			exclude:  []string{"MAT1320"},
			count:    -1,
		},
		{
			name:     "SearchByCode",
			criteria: Criteria{Search: "mat 13"},
			want:     []string{"MAT1320", "MAT1322", "MAT1341"},
			count:    3,
		},
		{
			name:     "SearchByTag",
			criteria: Criteria{Search: "capstone"},
			want:     []string{"ELG4912", "ELG4913"},
			count:    2,
		},
		{
			name:     "Year",
			criteria: Criteria{Year: 1},
			want:     []string{"CHM1311", "PHY1124"},
			exclude:  []string{"CEG2136"},
			count:    10,
		},
		{
			name:     "Specialization",
			criteria: Criteria{Specialization: SpecPower},
			want:     []string{"ELG4125", "ELG4126", "ELG4139"},
			exclude:  []string{"ELG4176", "MAT1320"},
			count:    -1,
		},
		{
			name:     "Combined",
			criteria: Criteria{Search: "control", Year: 4, Specialization: SpecSystems},
			want:     []string{"CEG4158", "ELG4156", "ELG4157", "ELG4159"},
			exclude:  []string{"ELG3155"},
			count:    -1,
		},
		{
			name:     "NoMatch",
			criteria: Criteria{Search: "basket weaving"},
			count:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(reg, tt.criteria)
			ids := map[string]bool{}
			for _, c := range got {
				ids[c.ID] = true
			}
			for _, id := range tt.want {
				if !ids[id] {
					t.Errorf("missing %s", id)
				}
			}
			for _, id := range tt.exclude {
				if ids[id] {
					t.Errorf("unexpected %s", id)
				}
			}
			if tt.count >= 0 && len(got) != tt.count {
				t.Errorf("len = %d, want %d", len(got), tt.count)
			}
		})
	}
}

func TestFilterPreservesRegistryOrder(t *testing.T) {
	reg := Default()
	got := Filter(reg, Criteria{Search: "calculus"})

	want := []string{"MAT1320", "MAT1322", "MAT2322"}
	if len(got) != len(want) {
		t.Fatalf("got %d courses, want %d", len(got), len(want))
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("got[%d] = %s, want %s", i, got[i].ID, id)
		}
	}
}

func TestFilterAbsentSpecializationsNeverMatch(t *testing.T) {
	reg := MustNew([]Course{
		{ID: "A", Name: "Alpha"},
		{ID: "B", Name: "Beta", Specializations: []string{"T"}},
	})
	got := Filter(reg, Criteria{Specialization: "T"})
	if len(got) != 1 || got[0].ID != "B" {
		t.Errorf("got %v, want [B]", got)
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() || !(Criteria{Specialization: AllSpecializations}).IsZero() {
		t.Error("empty criteria should be zero")
	}
	if (Criteria{Year: 2}).IsZero() {
		t.Error("year criteria should not be zero")
	}
}
