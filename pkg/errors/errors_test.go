package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeParseEmpty, "diagram %q has no content", "demo")

	if err.Code != ErrCodeParseEmpty {
		t.Errorf("Code = %q, want %q", err.Code, ErrCodeParseEmpty)
	}
	if err.Message != `diagram "demo" has no content` {
		t.Errorf("Message = %q", err.Message)
	}
	want := `PARSE_EMPTY: diagram "demo" has no content`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestWrap(t *testing.T) {
	cause := errors.New("no such file")
	err := Wrap(ErrCodeConfigFile, cause, "load theme %s", "corp.toml")

	if !errors.Is(err, cause) {
		t.Error("errors.Is(err, cause) = false, want true")
	}
	want := "CONFIG_FILE: load theme corp.toml: no such file"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeLayoutEmpty, "no elements")
	wrapped := fmt.Errorf("layout failed: %w", err)

	if !Is(wrapped, ErrCodeLayoutEmpty) {
		t.Error("Is(wrapped, ErrCodeLayoutEmpty) = false, want true")
	}
	if Is(wrapped, ErrCodeParseEmpty) {
		t.Error("Is(wrapped, ErrCodeParseEmpty) = true, want false")
	}
	if Is(errors.New("plain"), ErrCodeLayoutEmpty) {
		t.Error("Is(plain, ErrCodeLayoutEmpty) = true, want false")
	}
}

func TestGetCode(t *testing.T) {
	if got := GetCode(New(ErrCodeConfigColor, "bad color")); got != ErrCodeConfigColor {
		t.Errorf("GetCode() = %q, want %q", got, ErrCodeConfigColor)
	}
	if got := GetCode(errors.New("plain")); got != "" {
		t.Errorf("GetCode(plain) = %q, want empty", got)
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeLayoutBounds, "grid 0x3 cannot fit a cell")
	if got := UserMessage(err); got != "grid 0x3 cannot fit a cell" {
		t.Errorf("UserMessage() = %q", got)
	}
	plain := errors.New("plain failure")
	if got := UserMessage(plain); got != "plain failure" {
		t.Errorf("UserMessage(plain) = %q", got)
	}
}

func TestCategoryPredicates(t *testing.T) {
	tests := []struct {
		code                Code
		parse, layout, conf bool
	}{
		{ErrCodeParseEmpty, true, false, false},
		{ErrCodeParseInvalid, true, false, false},
		{ErrCodeLayoutBounds, false, true, false},
		{ErrCodeConfigTag, false, false, true},
		{ErrCodeInvalidInput, false, false, false},
	}

	for _, tt := range tests {
		err := New(tt.code, "x")
		if got := IsParse(err); got != tt.parse {
			t.Errorf("IsParse(%s) = %v, want %v", tt.code, got, tt.parse)
		}
		if got := IsLayout(err); got != tt.layout {
			t.Errorf("IsLayout(%s) = %v, want %v", tt.code, got, tt.layout)
		}
		if got := IsConfig(err); got != tt.conf {
			t.Errorf("IsConfig(%s) = %v, want %v", tt.code, got, tt.conf)
		}
	}
}
