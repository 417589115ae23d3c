// README: Currency-amount summation over itinerary cost lines.
package itinerary

import (
	"regexp"
	"strconv"
	"strings"
)

// costMarker is the exact phrase the itinerary prompt asks the backend to
// emit on each day's cost line.
const costMarker = "Estimated cost"

// costPattern grabs the first integer following a currency symbol. The symbol
// itself does not affect the sum.
var costPattern = regexp.MustCompile(`[₹$](\d+)`)

// SumCosts totals the per-day cost annotations in itinerary text. A cost line
// with no amount after a currency symbol contributes zero; text with no cost
// lines sums to zero.
func SumCosts(text string) int {
	total := 0
	for _, line := range strings.Split(text, "\n") {
		if !strings.Contains(line, costMarker) {
			continue
		}
		m := costPattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		n, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		total += n
	}
	return total
}
