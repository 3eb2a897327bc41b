package errors

import "testing"

func TestValidateCourseID(t *testing.T) {
	tests := []struct {
		id      string
		wantErr bool
	}{
		{"ELG2138", false},
		{"MAT1320", false},
		{"lab-1_a", false},
		{"", true},
		{"ELG 2138", true},
		{"../etc", true},
		{"A\x00B", true},
		{string(make([]byte, 65)), true},
	}

	for _, tt := range tests {
		err := ValidateCourseID(tt.id)
		if (err != nil) != tt.wantErr {
			t.Errorf("ValidateCourseID(%q) error = %v, wantErr %v", tt.id, err, tt.wantErr)
		}
		if err != nil && !Is(err, ErrCodeInvalidInput) {
			t.Errorf("ValidateCourseID(%q) code = %v, want %v", tt.id, GetCode(err), ErrCodeInvalidInput)
		}
	}
}

func TestNormalizeCourseID(t *testing.T) {
	tests := map[string]string{
		"elg 2138":  "ELG2138",
		" MAT1320 ": "MAT1320",
		"ceg\t2136": "CEG2136",
		"":          "",
	}
	for in, want := range tests {
		if got := NormalizeCourseID(in); got != want {
			t.Errorf("NormalizeCourseID(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestValidateCatalogPath(t *testing.T) {
	tests := []struct {
		path       string
		wantFormat string
		wantCode   Code
	}{
		{"courses.json", "json", ""},
		{"dir/Courses.TOML", "toml", ""},
		{"courses.yaml", "", ErrCodeInvalidFormat},
		{"", "", ErrCodeInvalidInput},
		{"bad\x01.json", "", ErrCodeInvalidInput},
	}

	for _, tt := range tests {
		format, err := ValidateCatalogPath(tt.path)
		if format != tt.wantFormat {
			t.Errorf("ValidateCatalogPath(%q) format = %q, want %q", tt.path, format, tt.wantFormat)
		}
		if GetCode(err) != tt.wantCode {
			t.Errorf("ValidateCatalogPath(%q) code = %q, want %q", tt.path, GetCode(err), tt.wantCode)
		}
	}
}
