// Package pricing computes deterministic turnover and linen prices.
package pricing

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"turnover_service/internal/domain/entities"
)

// Turnover pricing, in the configured currency.
const (
	BasePrice     = 85.0
	PerBedroom    = 20.0
	PerBathroom   = 15.0
	DeepCleanFee  = 90.0
	LinenAddOnFee = 35.0
)

// Standalone linen order flat pricing.
const (
	LinenPickupFee     = 10.0
	LinenProcessingFee = 25.0
	LinenDeliveryFee   = 10.0
	LinenFlatTotal     = LinenPickupFee + LinenProcessingFee + LinenDeliveryFee
)

// Breakdown keys.
const (
	KeyBase           = "base"
	KeyBedroomsCost   = "bedroomsCost"
	KeyBathroomsCost  = "bathroomsCost"
	KeyDeepClean      = "deepClean"
	KeyPremiumLinen   = "premiumLinen"
	KeyPickup         = "pickup"
	KeyProcessing     = "processing"
	KeyDelivery       = "delivery"
	KeyCustomOverride = "customOverride"
)

const DefaultCurrency = "AUD"

// Engine prices resources in a single fixed currency. It has no state besides
// the currency and is safe for concurrent use.
type Engine struct {
	currency string
}

func NewEngine(currency string) *Engine {
	currency = strings.TrimSpace(currency)
	if currency == "" {
		currency = DefaultCurrency
	}
	return &Engine{currency: currency}
}

func (e *Engine) Currency() string {
	return e.currency
}

// ComputeTurnoverPrice prices a clean from room counts and add-ons.
//
// Negative or non-finite counts are treated as 0; the function never fails.
func (e *Engine) ComputeTurnoverPrice(bedrooms, bathrooms float64, addOns entities.AddOns) entities.Pricing {
	bedrooms = clampCount(bedrooms)
	bathrooms = clampCount(bathrooms)

	breakdown := map[string]float64{
		KeyBase:          BasePrice,
		KeyBedroomsCost:  bedrooms * PerBedroom,
		KeyBathroomsCost: bathrooms * PerBathroom,
		KeyDeepClean:     0,
		KeyPremiumLinen:  0,
	}
	if addOns.DeepClean {
		breakdown[KeyDeepClean] = DeepCleanFee
	}
	if addOns.PremiumLinen {
		breakdown[KeyPremiumLinen] = LinenAddOnFee
	}

	total := breakdown[KeyBase] + breakdown[KeyBedroomsCost] + breakdown[KeyBathroomsCost] +
		breakdown[KeyDeepClean] + breakdown[KeyPremiumLinen]

	return entities.Pricing{Total: total, Breakdown: breakdown, Currency: e.currency}
}

// LinenFlatPrice is the standalone linen order price. Item counts do not matter.
func (e *Engine) LinenFlatPrice() entities.Pricing {
	return entities.Pricing{
		Total: LinenFlatTotal,
		Breakdown: map[string]float64{
			KeyPickup:     LinenPickupFee,
			KeyProcessing: LinenProcessingFee,
			KeyDelivery:   LinenDeliveryFee,
		},
		Currency: e.currency,
	}
}

// OverridePrice wraps a caller-supplied total as a single synthetic breakdown entry.
func (e *Engine) OverridePrice(total float64) entities.Pricing {
	return entities.Pricing{
		Total:     total,
		Breakdown: map[string]float64{KeyCustomOverride: total},
		Currency:  e.currency,
	}
}

// CoerceCount converts a loosely typed room count to a number.
//
// Anything non-numeric, absent, negative or non-finite becomes 0. This leniency
// is intentional; request validation rejects bad counts before pricing runs.
func CoerceCount(v any) float64 {
	n, ok := ToNumber(v)
	if !ok {
		return 0
	}
	return clampCount(n)
}

// ToNumber performs loose numeric coercion of a decoded JSON value.
//
// null and "" are 0, booleans are 0 or 1, numeric strings are parsed.
// Objects, arrays and unparsable strings report false.
func ToNumber(v any) (float64, bool) {
	var n float64
	switch x := v.(type) {
	case nil:
		return 0, true
	case bool:
		if x {
			return 1, true
		}
		return 0, true
	case float64:
		n = x
	case float32:
		n = float64(x)
	case int:
		n = float64(x)
	case int64:
		n = float64(x)
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return 0, false
		}
		n = f
	case string:
		s := strings.TrimSpace(x)
		if s == "" {
			return 0, true
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		n = f
	default:
		return 0, false
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return 0, false
	}
	return n, true
}

// Truthy reports whether a decoded JSON value counts as "on" for an add-on flag.
func Truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case float64:
		return x != 0 && !math.IsNaN(x)
	case json.Number:
		f, err := x.Float64()
		return err != nil || (f != 0 && !math.IsNaN(f))
	case int:
		return x != 0
	default:
		return true
	}
}

func clampCount(n float64) float64 {
	if math.IsNaN(n) || math.IsInf(n, 0) || n < 0 {
		return 0
	}
	return n
}
