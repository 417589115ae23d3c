// README: Heuristic attraction-name extraction from free-form guide text.
package guide

import (
	"regexp"
	"strings"
)

// attractionPattern matches names following a numbered-list marker or a
// bullet dash at the start of a line, starting with an uppercase letter.
// The generation backend's phrasing is not a stable contract, so this is
// lossy on purpose. The capture stops at the " - description" separator so
// only the name survives.
var attractionPattern = regexp.MustCompile(`(?m)^[ \t]*(?:1\.|2\.|3\.|-)\s*([A-Z][\w ,'&]+)`)

// ExtractAttractions pulls up to three unique attraction names out of guide
// text. Matches of three characters or fewer are treated as noise. Absent
// markers yield an empty slice, never an error.
func ExtractAttractions(text string) []string {
	matches := attractionPattern.FindAllStringSubmatch(text, -1)
	seen := make(map[string]struct{}, len(matches))
	var names []string
	for _, m := range matches {
		name := strings.TrimSpace(m[1])
		if len(name) <= 3 {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
		if len(names) == 3 {
			break
		}
	}
	return names
}
