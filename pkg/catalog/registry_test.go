package catalog

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		courses []Course
		wantErr error
		wantLen int
	}{
		{name: "Empty", courses: nil, wantLen: 0},
		{name: "Two", courses: []Course{{ID: "A"}, {ID: "B"}}, wantLen: 2},
		{name: "Duplicate", courses: []Course{{ID: "A"}, {ID: "A"}}, wantErr: ErrDuplicateCourseID},
		{name: "EmptyID", courses: []Course{{ID: ""}}, wantErr: ErrInvalidCourseID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := New(tt.courses)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if r.Len() != tt.wantLen {
				t.Errorf("Len() = %d, want %d", r.Len(), tt.wantLen)
			}
		})
	}
}

func TestRegistryByID(t *testing.T) {
	r := MustNew([]Course{{ID: "A", Name: "Alpha"}, {ID: "B", Name: "Beta"}})

	c, ok := r.ByID("B")
	if !ok || c.Name != "Beta" {
		t.Errorf("ByID(B) = %+v, %v", c, ok)
	}
	if _, ok := r.ByID("missing"); ok {
		t.Error("ByID(missing) should report not found")
	}
	if !r.Has("A") || r.Has("Z") {
		t.Error("Has() mismatch")
	}

	var nilReg *Registry
	if _, ok := nilReg.ByID("A"); ok {
		t.Error("nil registry should find nothing")
	}
	if nilReg.Len() != 0 || nilReg.All() != nil {
		t.Error("nil registry should be empty")
	}
}

func TestRegistryAllPreservesOrder(t *testing.T) {
	r := MustNew([]Course{{ID: "C"}, {ID: "A"}, {ID: "B"}})

	got := r.IDs()
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("IDs() = %v, want %v", got, want)
		}
	}

	all := r.All()
	all[0].ID = "mutated"
	if c, _ := r.ByID("C"); c.ID != "C" {
		t.Error("All() must return a copy")
	}
}

func TestRegistryResolveDropsUnknown(t *testing.T) {
	r := MustNew([]Course{{ID: "A"}, {ID: "B"}})

	got := r.Resolve([]string{"B", "GHOST", "A"})
	if len(got) != 2 || got[0].ID != "B" || got[1].ID != "A" {
		t.Errorf("Resolve() = %v, want [B A]", got)
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := Default()
	if r.Len() != 47 {
		t.Errorf("Len() = %d, want 47", r.Len())
	}
	for _, c := range r.All() {
		if err := Validate(c); err != nil {
			t.Errorf("seed course invalid: %v", err)
		}
	}

	c, ok := r.ByID("ELG2136")
	if !ok {
		t.Fatal("ELG2136 missing from seed")
	}
	if len(c.Prerequisites) != 1 || c.Prerequisites[0] != "ELG2138" {
		t.Errorf("ELG2136 prerequisites = %v, want [ELG2138]", c.Prerequisites)
	}

	first := r.All()[0]
	if first.ID != "CHM1311" {
		t.Errorf("first course = %s, want CHM1311", first.ID)
	}
}

func TestCourseTags(t *testing.T) {
	c := Course{Tags: []string{"a", "b", "c", "d", "e"}}
	if got := c.VisibleTags(DefaultVisibleTags); len(got) != 3 {
		t.Errorf("VisibleTags(3) = %v", got)
	}
	if got := c.HiddenTagCount(DefaultVisibleTags); got != 2 {
		t.Errorf("HiddenTagCount(3) = %d, want 2", got)
	}

	short := Course{Tags: []string{"a"}}
	if got := short.HiddenTagCount(DefaultVisibleTags); got != 0 {
		t.Errorf("HiddenTagCount = %d, want 0", got)
	}
}

func TestCourseTerm(t *testing.T) {
	c := Course{Year: 2, Semester: Winter}
	if got := c.Term(); got != "Year 2 Winter" {
		t.Errorf("Term() = %q", got)
	}
}
