// README: Travel guide aggregate: raw text plus the ranked attraction names.
package guide

// Guide is the generated city guide. Attractions are extracted heuristically
// from FullText: deduplicated, first-seen order, at most three.
type Guide struct {
	City        string
	Attractions []string
	FullText    string
}
