package generator

import (
	"fmt"
	"strings"
)

// systemPrompt is the fixed instruction prepended to every generation call.
// It pins the writing style so output quality does not depend on the client
// sending a well-formed request.
const systemPrompt = `You are an expert resume writer.
Write a tight, results-focused resume summary in US English.
Avoid buzzwords, avoid fluff, avoid first-person pronouns.
Include credible specifics (skills, domains, tools) and quantified impact when possible.
No more than one line per sentence; no bullet points.`

// BuildPrompt composes the full prompt from sanitized inputs. The role line
// is included only when a target role was given.
func BuildPrompt(skills, role, tone, experience string, sentences int) string {
	var b strings.Builder
	b.WriteString(systemPrompt)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "Skills & facts: %s.\n", skills)
	if role != "" {
		fmt.Fprintf(&b, "Target role: %s.\n", role)
	}
	fmt.Fprintf(&b, "Tone: %s.\n", tone)
	fmt.Fprintf(&b, "Experience level: %s.\n", experience)
	fmt.Fprintf(&b, "Length: %d sentences.\n", sentences)
	b.WriteString("Return ONLY the summary text, nothing else.")
	return b.String()
}
