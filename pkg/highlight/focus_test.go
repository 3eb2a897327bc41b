package highlight

import (
	"testing"

	"github.com/matzehuels/coursemap/pkg/catalog"
)

func effective(f Focus) string {
	id, _ := f.Effective()
	return id
}

func TestFocus(t *testing.T) {
	tests := []struct {
		name       string
		focus      Focus
		wantID     string
		wantLocked bool
	}{
		{name: "Zero", focus: Focus{}, wantID: ""},
		{name: "Hover", focus: Focus{}.Hover("A"), wantID: "A"},
		{name: "Leave", focus: Focus{}.Hover("A").Leave(), wantID: ""},
		{name: "Lock", focus: Focus{}.Lock("A"), wantID: "A", wantLocked: true},
		{name: "LockBeatsHover", focus: Focus{}.Lock("A").Hover("B"), wantID: "A", wantLocked: true},
		{name: "LockLastWins", focus: Focus{}.Lock("X").Lock("Y"), wantID: "Y", wantLocked: true},
		{name: "UnlockRevealsHover", focus: Focus{}.Hover("B").Lock("A").Unlock(), wantID: "B"},
		{name: "UnlockTwice", focus: Focus{}.Lock("A").Unlock().Unlock(), wantID: ""},
		{name: "UnlockUnlocked", focus: Focus{}.Unlock(), wantID: ""},
		{name: "ToggleLocksHover", focus: Focus{}.Hover("A").Toggle(), wantID: "A", wantLocked: true},
		{name: "ToggleUnlocks", focus: Focus{}.Hover("A").Toggle().Hover("B").Toggle(), wantID: "B"},
		{name: "ToggleNothing", focus: Focus{}.Toggle(), wantID: ""},
		{name: "LeaveKeepsLock", focus: Focus{}.Hover("A").Toggle().Leave(), wantID: "A", wantLocked: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := effective(tt.focus); got != tt.wantID {
				t.Errorf("Effective() = %q, want %q", got, tt.wantID)
			}
			if got := tt.focus.IsLocked(); got != tt.wantLocked {
				t.Errorf("IsLocked() = %v, want %v", got, tt.wantLocked)
			}
		})
	}
}

func TestFocusIsValue(t *testing.T) {
	f := Focus{}.Hover("A")
	_ = f.Lock("B")
	if f.IsLocked() {
		t.Error("Lock must not modify the receiver")
	}
}

func TestFocusFocal(t *testing.T) {
	reg := catalog.Default()
	if c := (Focus{}).Focal(reg); c != nil {
		t.Errorf("Focal() = %v, want nil", c)
	}
	if c := (Focus{}).Hover("NOPE").Focal(reg); c != nil {
		t.Errorf("Focal() for unknown id = %v, want nil", c)
	}
	c := Focus{}.Lock("ELG2138").Focal(reg)
	if c == nil || c.ID != "ELG2138" {
		t.Errorf("Focal() = %v, want ELG2138", c)
	}
}
