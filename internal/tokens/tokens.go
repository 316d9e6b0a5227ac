// Package tokens provides fast token-count estimation for transcript
// budgeting. The heuristic is intentionally cheap; exact counts depend on the
// model's tokenizer and are not needed for a status-bar readout.
package tokens

// Estimate estimates the token count for content using chars/4 approximation.
// This is a fast heuristic; actual tokenization may vary by model.
func Estimate(content string) int {
	if content == "" {
		return 0
	}
	// chars/4 is a reasonable approximation for English text
	return (len(content) + 3) / 4
}

// EstimateAll sums the estimate over multiple strings.
func EstimateAll(contents ...string) int {
	total := 0
	for _, c := range contents {
		total += Estimate(c)
	}
	return total
}

// Budget tracks estimated token consumption against a fixed ceiling.
type Budget struct {
	Max  int
	used int
}

// NewBudget returns a budget with the given ceiling. A non-positive max
// disables accounting: Remaining reports 0 and Exceeded never trips.
func NewBudget(max int) *Budget {
	return &Budget{Max: max}
}

// Add records the estimated cost of content and returns the running total.
func (b *Budget) Add(content string) int {
	b.used += Estimate(content)
	return b.used
}

// Used returns the estimated tokens consumed so far.
func (b *Budget) Used() int {
	return b.used
}

// Remaining returns the estimated tokens left, never negative.
func (b *Budget) Remaining() int {
	if b.Max <= 0 {
		return 0
	}
	if rem := b.Max - b.used; rem > 0 {
		return rem
	}
	return 0
}

// Exceeded reports whether consumption has passed the ceiling.
func (b *Budget) Exceeded() bool {
	return b.Max > 0 && b.used > b.Max
}
