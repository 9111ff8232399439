package generator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildPromptIncludesInputs(t *testing.T) {
	p := BuildPrompt("Go, SQL", "Backend Engineer", "professional", "senior", 3)

	assert.True(t, strings.HasPrefix(p, "You are an expert resume writer."))
	assert.Contains(t, p, "Skills & facts: Go, SQL.")
	assert.Contains(t, p, "Target role: Backend Engineer.")
	assert.Contains(t, p, "Tone: professional.")
	assert.Contains(t, p, "Experience level: senior.")
	assert.Contains(t, p, "Length: 3 sentences.")
	assert.Contains(t, p, "Return ONLY the summary text, nothing else.")
}

func TestBuildPromptOmitsEmptyRole(t *testing.T) {
	p := BuildPrompt("Go, SQL", "", "professional", "student", 4)
	assert.NotContains(t, p, "Target role:")
}
