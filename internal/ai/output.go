package ai

import (
	"strings"

	domainErrors "github.com/thomas-vilte/matereadme/internal/errors"
	"github.com/thomas-vilte/matereadme/internal/regex"
)

// CleanCompletion strips reasoning blocks and a wrapping markdown fence
// from model output. Output that is empty after cleaning is an error.
func CleanCompletion(text string) (string, error) {
	cleaned := regex.ThinkBlock.ReplaceAllString(text, "")
	cleaned = strings.TrimSpace(cleaned)

	if m := regex.MarkdownFence.FindStringSubmatch(cleaned); m != nil {
		cleaned = strings.TrimSpace(m[1])
	}

	if cleaned == "" {
		return "", domainErrors.ErrInvalidAIOutput.
			WithContext("reason", "empty response from AI").
			WithContext("raw_length", len(text))
	}
	return cleaned, nil
}
