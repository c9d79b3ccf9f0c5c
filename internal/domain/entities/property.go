package entities

// Property describes the dwelling being cleaned.
type Property struct {
	Address   string `json:"address"`
	Bedrooms  int    `json:"bedrooms"`
	Bathrooms int    `json:"bathrooms"`
}

// AddOns are the optional priced extras.
type AddOns struct {
	DeepClean    bool `json:"deepClean"`
	PremiumLinen bool `json:"premiumLinen"`
}

// Pricing is a computed (or overridden) price in the configured currency.
//
// Total equals the sum of Breakdown at the moment it was computed.
type Pricing struct {
	Total     float64            `json:"total"`
	Breakdown map[string]float64 `json:"breakdown"`
	Currency  string             `json:"currency"`
}

// BreakdownSum adds up the itemized amounts.
func (p Pricing) BreakdownSum() float64 {
	var sum float64
	for _, v := range p.Breakdown {
		sum += v
	}
	return sum
}
