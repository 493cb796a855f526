// Package tier is the single source of truth for the donor reward ladder.
// Every consumer (HTTP responses, receipt emails, seed tooling) classifies
// against the same static table.
package tier

// Tier is one named reward bracket of the ladder
type Tier struct {
	Key       string   `json:"tier"`                // Stable identifier
	Name      string   `json:"name"`                // Display name
	Subtitle  string   `json:"subtitle"`            // Short tagline
	MinAmount float64  `json:"minAmount"`           // Inclusive lower threshold
	MaxAmount *float64 `json:"maxAmount,omitempty"` // Inclusive upper threshold, nil for the top tier
	Benefits  []string `json:"benefits"`            // Donor-facing perks
}

// Progress is the result of classifying a cumulative total
type Progress struct {
	Current       *Tier   `json:"currentTier"`   // Highest tier reached
	Next          *Tier   `json:"nextTier"`      // Following tier, nil at the top
	PercentToNext float64 `json:"percentToNext"` // Progress within the current bracket, 0-100
}

func maxAmount(v float64) *float64 { return &v }

// ladder is ordered by ascending MinAmount and is immutable at runtime
var ladder = []Tier{
	{
		Key:       "aegis",
		Name:      "Aegis",
		Subtitle:  "Guardian Tier",
		MinAmount: 0,
		MaxAmount: maxAmount(99),
		Benefits:  []string{"Thank you email", "Monthly newsletter", "Community updates"},
	},
	{
		Key:       "poseidon",
		Name:      "Poseidon",
		Subtitle:  "Depth Tier",
		MinAmount: 100,
		MaxAmount: maxAmount(499),
		Benefits: []string{
			"All Aegis benefits",
			"Exclusive donor badge",
			"Quarterly impact reports",
			"Priority email support",
		},
	},
	{
		Key:       "ares",
		Name:      "Ares",
		Subtitle:  "Valor Tier",
		MinAmount: 500,
		MaxAmount: maxAmount(999),
		Benefits: []string{
			"All Poseidon benefits",
			"Recognition on donor wall",
			"Invitation to annual gala",
			"Personal impact dashboard",
			"Tax receipt priority processing",
		},
	},
	{
		Key:       "zeus",
		Name:      "Zeus",
		Subtitle:  "Supreme Tier",
		MinAmount: 1000,
		MaxAmount: maxAmount(4999),
		Benefits: []string{
			"All Ares benefits",
			"VIP event access",
			"One-on-one impact briefing",
			"Featured in annual report",
			"Personalized thank you video",
		},
	},
	{
		Key:       "athena",
		Name:      "Athena",
		Subtitle:  "Legendary Shield",
		MinAmount: 5000,
		Benefits: []string{
			"All Zeus benefits",
			"Board meeting attendance",
			"Program naming opportunities",
			"Exclusive site visit",
			"Legacy recognition",
			"Dedicated account manager",
		},
	},
}

// Ladder returns a copy of the ordered tier table
func Ladder() []Tier {
	out := make([]Tier, len(ladder))
	copy(out, ladder)
	return out
}

// Classify maps a cumulative donated total to the current tier, the next
// tier, and the percentage progress toward it. Pure function: no I/O, same
// input always yields the same output. Negative totals are treated as zero.
func Classify(totalDonated float64) Progress {
	if totalDonated < 0 {
		totalDonated = 0
	}
	// Walk from the highest tier down and pick the first whose threshold is met
	for i := len(ladder) - 1; i >= 0; i-- {
		if totalDonated < ladder[i].MinAmount {
			continue
		}
		current := ladder[i]
		if i == len(ladder)-1 {
			// Already at the top tier: no further progress possible
			return Progress{Current: &current, Next: nil, PercentToNext: 100}
		}
		next := ladder[i+1]
		span := next.MinAmount - current.MinAmount
		percent := (totalDonated - current.MinAmount) / span * 100
		// Clamp to [0,100]
		if percent < 0 {
			percent = 0
		}
		if percent > 100 {
			percent = 100
		}
		return Progress{Current: &current, Next: &next, PercentToNext: percent}
	}
	// Unreachable while the lowest tier starts at zero
	lowest, next := ladder[0], ladder[1]
	return Progress{Current: &lowest, Next: &next, PercentToNext: 0}
}

// AmountToNext returns how much more the donor must give to unlock the next
// tier, zero when already at the top.
func AmountToNext(totalDonated float64) float64 {
	p := Classify(totalDonated)
	if p.Next == nil {
		return 0
	}
	remaining := p.Next.MinAmount - totalDonated
	if remaining < 0 {
		remaining = 0
	}
	return remaining
}
