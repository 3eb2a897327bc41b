package errors

import (
	"errors"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidCourse, "course %s: bad year", "X1")

	if err.Code != ErrCodeInvalidCourse {
		t.Errorf("Code = %v, want %v", err.Code, ErrCodeInvalidCourse)
	}
	if err.Message != "course X1: bad year" {
		t.Errorf("Message = %v, want %v", err.Message, "course X1: bad year")
	}

	expected := "INVALID_COURSE: course X1: bad year"
	if err.Error() != expected {
		t.Errorf("Error() = %v, want %v", err.Error(), expected)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(ErrCodeFileNotFound, cause, "open catalog")

	if err.Cause != cause {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if errors.Unwrap(err) != cause {
		t.Errorf("Unwrap() = %v, want %v", errors.Unwrap(err), cause)
	}
	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	if got := err.Error(); got != "FILE_NOT_FOUND: open catalog: no such file" {
		t.Errorf("Error() = %q", got)
	}
}

func TestIs(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		code     Code
		expected bool
	}{
		{"matching code", New(ErrCodeCourseNotFound, "x"), ErrCodeCourseNotFound, true},
		{"different code", New(ErrCodeCourseNotFound, "x"), ErrCodeInvalidInput, false},
		{"wrapped", Wrap(ErrCodeInvalidCatalog, New(ErrCodeInvalidCourse, "inner"), "outer"), ErrCodeInvalidCatalog, true},
		{"plain error", errors.New("plain"), ErrCodeInternal, false},
		{"nil", nil, ErrCodeInternal, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.code); got != tt.expected {
				t.Errorf("Is() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestGetCodeAndUserMessage(t *testing.T) {
	err := New(ErrCodeDuplicateCourse, "course %s declared twice", "A")
	if GetCode(err) != ErrCodeDuplicateCourse {
		t.Errorf("GetCode() = %v", GetCode(err))
	}
	if UserMessage(err) != "course A declared twice" {
		t.Errorf("UserMessage() = %q", UserMessage(err))
	}

	plain := errors.New("boom")
	if GetCode(plain) != "" {
		t.Errorf("GetCode(plain) = %v, want empty", GetCode(plain))
	}
	if UserMessage(plain) != "boom" {
		t.Errorf("UserMessage(plain) = %q", UserMessage(plain))
	}
}

func TestIsNotFound(t *testing.T) {
	if !IsNotFound(New(ErrCodeCourseNotFound, "x")) {
		t.Error("COURSE_NOT_FOUND should be not-found")
	}
	if !IsNotFound(Wrap(ErrCodeFileNotFound, errors.New("x"), "y")) {
		t.Error("FILE_NOT_FOUND should be not-found")
	}
	if IsNotFound(New(ErrCodeInvalidInput, "x")) {
		t.Error("INVALID_INPUT should not be not-found")
	}
}
