package llm

import (
	"math"

	"github.com/breedsnap/breedsnap-go/internal/models"
)

// NormalizePercentages rescales the primary confidence and all
// alternative percentages so they sum to exactly 100 when the model's
// raw total is off by more than 1. Each value is scaled by 100/total
// and rounded; the rounding remainder is absorbed entirely into the
// primary confidence, never into an alternative. A total of zero or a
// total already within 1 of 100 is left untouched.
//
// The adjusted confidence is deliberately not clamped to [0,100]: with
// pathological model output (many alternatives summing far past 100)
// clamping would break the sums-to-100 invariant the rest of the system
// relies on.
func NormalizePercentages(c *models.Classification) {
	total := c.Confidence
	for _, alt := range c.AlternativeBreeds {
		total += alt.Percentage
	}

	if total == 0 || math.Abs(total-100) <= 1 {
		return
	}

	scale := 100 / total
	confidence := math.Round(c.Confidence * scale)
	newTotal := confidence
	for i := range c.AlternativeBreeds {
		p := math.Round(c.AlternativeBreeds[i].Percentage * scale)
		c.AlternativeBreeds[i].Percentage = p
		newTotal += p
	}

	c.Confidence = confidence + (100 - newTotal)
}
