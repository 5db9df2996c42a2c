// Package textnorm cleans structured model output before lexical scoring.
// Judge-style generators emit markdown headers, explicit "Claim N:"
// numbering and "Reasoning:" asides that wreck n-gram overlap if left in.
package textnorm

import (
	"regexp"
	"strings"
)

var (
	headerRe    = regexp.MustCompile(`##\s+`)
	claimRe     = regexp.MustCompile(`Claim \d+[^:]*:\s*([^\.]+\.)`)
	reasoningRe = regexp.MustCompile(`Reasoning[^:]*:[^\.]+\.`)
	boldRe      = regexp.MustCompile(`\*\*([^\*]+)\*\*`)
)

// Normalize returns the canonical form of a prediction. It is pure and
// idempotent: Normalize(Normalize(s)) == Normalize(s).
//
// Transform order matters: headers first so claim bodies are matched on
// clean text, claim extraction before the reasoning strip so commentary
// around claims is dropped wholesale, bold unwrapping before the final
// whitespace collapse.
func Normalize(text string) string {
	text = headerRe.ReplaceAllString(text, "")

	// Enumerated claims: keep only the claim bodies, sentence up to the
	// terminating period. Text without claim markers passes through.
	if claims := claimRe.FindAllStringSubmatch(text, -1); len(claims) > 0 {
		bodies := make([]string, 0, len(claims))
		for _, m := range claims {
			bodies = append(bodies, m[1])
		}
		text = strings.Join(bodies, " ")
	}

	text = reasoningRe.ReplaceAllString(text, "")
	text = boldRe.ReplaceAllString(text, "$1")

	return strings.Join(strings.Fields(text), " ")
}
