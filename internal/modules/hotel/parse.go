// README: Best-effort structured parse of hotel recommendation text.
package hotel

import (
	"encoding/json"
	"strings"
)

// Parse attempts to read hotel text as a JSON list of listings. Markdown code
// fences are stripped first since models often wrap JSON in them. Anything
// that is not list-shaped comes back as Raw.
func Parse(text string) ParseResult {
	cleaned := stripFences(text)
	if !strings.HasPrefix(cleaned, "[") {
		return ParseResult{Raw: text}
	}

	var listings []Listing
	if err := json.Unmarshal([]byte(cleaned), &listings); err != nil {
		return ParseResult{Raw: text}
	}
	return ParseResult{Listings: listings, parsed: true}
}

// stripFences removes markdown code blocks if present (e.g. ```json ... ```).
func stripFences(input string) string {
	input = strings.TrimSpace(input)
	input = strings.TrimPrefix(input, "```json")
	input = strings.TrimPrefix(input, "```")
	input = strings.TrimSuffix(input, "```")
	return strings.TrimSpace(input)
}
