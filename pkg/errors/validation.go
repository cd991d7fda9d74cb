package errors

import (
	"strings"
	"unicode"
)

// MaxPromptLength bounds the accepted prompt size at the boundary. The
// renderer itself never fails on long prompts (the caption truncates), so
// this only guards against abusive request bodies.
const MaxPromptLength = 2000

// ValidatePrompt validates a prompt at the HTTP/CLI boundary.
//
// The rules are intentionally minimal: the render core accepts any text and
// always produces a document, so the boundary rejects only what the contract
// requires (a missing prompt) plus obviously hostile input.
func ValidatePrompt(prompt string) error {
	if strings.TrimSpace(prompt) == "" {
		return New(ErrCodeInvalidPrompt, "prompt is required")
	}

	if len(prompt) > MaxPromptLength {
		return New(ErrCodeInvalidPrompt, "prompt too long (max %d bytes)", MaxPromptLength)
	}

	for _, r := range prompt {
		if unicode.IsControl(r) && r != '\n' && r != '\t' {
			return New(ErrCodeInvalidPrompt, "prompt contains control characters")
		}
	}

	return nil
}
