package repository

import (
	"time"

	"turnover_service/internal/domain/entities"
)

// Timestamps are stored as RFC3339Nano strings so every backend sorts and
// compares them the same way.
func formatTime(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

func parseTime(s string) time.Time {
	t, _ := time.Parse(time.RFC3339Nano, s)
	return t
}

type propertyDoc struct {
	Address   string `json:"address" bson:"address" dynamodbav:"address" firestore:"address"`
	Bedrooms  int    `json:"bedrooms" bson:"bedrooms" dynamodbav:"bedrooms" firestore:"bedrooms"`
	Bathrooms int    `json:"bathrooms" bson:"bathrooms" dynamodbav:"bathrooms" firestore:"bathrooms"`
}

type addOnsDoc struct {
	DeepClean    bool `json:"deepClean" bson:"deepClean" dynamodbav:"deepClean" firestore:"deepClean"`
	PremiumLinen bool `json:"premiumLinen" bson:"premiumLinen" dynamodbav:"premiumLinen" firestore:"premiumLinen"`
}

type pricingDoc struct {
	Total     float64            `json:"total" bson:"total" dynamodbav:"total" firestore:"total"`
	Breakdown map[string]float64 `json:"breakdown" bson:"breakdown" dynamodbav:"breakdown" firestore:"breakdown"`
	Currency  string             `json:"currency" bson:"currency" dynamodbav:"currency" firestore:"currency"`
}

func toPropertyDoc(p entities.Property) propertyDoc {
	return propertyDoc{Address: p.Address, Bedrooms: p.Bedrooms, Bathrooms: p.Bathrooms}
}

func (d propertyDoc) toEntity() entities.Property {
	return entities.Property{Address: d.Address, Bedrooms: d.Bedrooms, Bathrooms: d.Bathrooms}
}

func toAddOnsDoc(a entities.AddOns) addOnsDoc {
	return addOnsDoc{DeepClean: a.DeepClean, PremiumLinen: a.PremiumLinen}
}

func (d addOnsDoc) toEntity() entities.AddOns {
	return entities.AddOns{DeepClean: d.DeepClean, PremiumLinen: d.PremiumLinen}
}

func toPricingDoc(p entities.Pricing) pricingDoc {
	return pricingDoc{Total: p.Total, Breakdown: p.Breakdown, Currency: p.Currency}
}

func (d pricingDoc) toEntity() entities.Pricing {
	return entities.Pricing{Total: d.Total, Breakdown: d.Breakdown, Currency: d.Currency}
}
