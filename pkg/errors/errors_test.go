package errors

import (
	stderrors "errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	err := New(ErrCodeInvalidPrompt, "prompt is required")
	if err.Code != ErrCodeInvalidPrompt {
		t.Errorf("Code = %s, want INVALID_PROMPT", err.Code)
	}
	if !strings.Contains(err.Error(), "INVALID_PROMPT") {
		t.Errorf("Error() should contain the code: %s", err.Error())
	}
	if !strings.Contains(err.Error(), "prompt is required") {
		t.Errorf("Error() should contain the message: %s", err.Error())
	}
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("disk full")
	err := Wrap(ErrCodeInternal, cause, "write cache entry")

	if !stderrors.Is(err, cause) {
		t.Error("wrapped error should unwrap to its cause")
	}
	if !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Error() should include the cause: %s", err.Error())
	}
}

func TestIs(t *testing.T) {
	err := New(ErrCodeInvalidTheme, "unknown theme %q", "neon")
	if !Is(err, ErrCodeInvalidTheme) {
		t.Error("Is should match the error's code")
	}
	if Is(err, ErrCodeInternal) {
		t.Error("Is should not match a different code")
	}
	if Is(stderrors.New("plain"), ErrCodeInternal) {
		t.Error("Is should not match plain errors")
	}

	// Code survives wrapping with fmt
	wrapped := fmt.Errorf("handler: %w", err)
	if !Is(wrapped, ErrCodeInvalidTheme) {
		t.Error("Is should unwrap wrapped errors")
	}
}

func TestGetCode(t *testing.T) {
	if GetCode(New(ErrCodeNotFound, "missing")) != ErrCodeNotFound {
		t.Error("GetCode should return the error's code")
	}
	if GetCode(stderrors.New("plain")) != "" {
		t.Error("GetCode should return empty for plain errors")
	}
}

func TestUserMessage(t *testing.T) {
	err := New(ErrCodeInvalidPrompt, "prompt is required")
	if UserMessage(err) != "prompt is required" {
		t.Errorf("UserMessage = %q", UserMessage(err))
	}
	plain := stderrors.New("boom")
	if UserMessage(plain) != "boom" {
		t.Errorf("UserMessage(plain) = %q", UserMessage(plain))
	}
}

func TestValidatePrompt(t *testing.T) {
	tests := []struct {
		name    string
		prompt  string
		wantErr bool
	}{
		{"valid", "a login form", false},
		{"empty", "", true},
		{"whitespace only", "   \t ", true},
		{"too long", strings.Repeat("a", MaxPromptLength+1), true},
		{"control characters", "login\x00form", true},
		{"newlines allowed", "login\nform", false},
		{"unicode allowed", "формы и кнопки", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePrompt(tt.prompt)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePrompt(%q) error = %v, wantErr %v", tt.prompt, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPrompt) {
				t.Errorf("validation errors should carry INVALID_PROMPT, got %s", GetCode(err))
			}
		})
	}
}
