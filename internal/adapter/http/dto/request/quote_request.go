package request

import (
	"turnover_service/internal/domain/entities"
	"turnover_service/internal/domain/pricing"
	"turnover_service/internal/usecase"
)

// QuoteRequest is the validated body of POST /quotes.
type QuoteRequest struct {
	HostName string
	Email    string
	Phone    *string
	Property entities.Property
	AddOns   entities.AddOns
	Notes    *string
}

// ParseQuoteRequest validates hostName, email, property.address,
// property.bedrooms and property.bathrooms, in that order.
func ParseQuoteRequest(body map[string]any) (QuoteRequest, error) {
	hostName, err := requireString(body, "hostName", "hostName")
	if err != nil {
		return QuoteRequest{}, err
	}
	email, err := requireString(body, "email", "email")
	if err != nil {
		return QuoteRequest{}, err
	}
	property, err := parseProperty(body)
	if err != nil {
		return QuoteRequest{}, err
	}

	return QuoteRequest{
		HostName: hostName,
		Email:    email,
		Phone:    optionalString(body["phone"]),
		Property: property,
		AddOns:   parseAddOns(object(object(body, "preferences"), "addOns")),
		Notes:    optionalString(body["notes"]),
	}, nil
}

func (r QuoteRequest) ToInput() usecase.CreateQuoteInput {
	return usecase.CreateQuoteInput{
		HostName: r.HostName,
		Email:    r.Email,
		Phone:    r.Phone,
		Property: r.Property,
		AddOns:   r.AddOns,
		Notes:    r.Notes,
	}
}

func parseProperty(body map[string]any) (entities.Property, error) {
	property := object(body, "property")

	address, err := requireString(property, "address", fieldPath("property", "address"))
	if err != nil {
		return entities.Property{}, err
	}
	bedrooms, err := requireNonNegativeInteger(property, "bedrooms", fieldPath("property", "bedrooms"))
	if err != nil {
		return entities.Property{}, err
	}
	bathrooms, err := requireNonNegativeInteger(property, "bathrooms", fieldPath("property", "bathrooms"))
	if err != nil {
		return entities.Property{}, err
	}

	return entities.Property{Address: address, Bedrooms: bedrooms, Bathrooms: bathrooms}, nil
}

func parseAddOns(addOns map[string]any) entities.AddOns {
	return entities.AddOns{
		DeepClean:    pricing.Truthy(addOns["deepClean"]),
		PremiumLinen: pricing.Truthy(addOns["premiumLinen"]),
	}
}
