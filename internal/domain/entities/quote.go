package entities

import "time"

// QuoteStatus represents the lifecycle of a quote. Only "quoted" exists today.
type QuoteStatus string

const (
	QuoteStatusQuoted QuoteStatus = "quoted"
)

// QuotePreferences carries the add-ons the host asked for.
type QuotePreferences struct {
	AddOns AddOns `json:"addOns"`
}

// Quote is a priced cleaning request persisted in the "quotes" collection.
//
// Quotes are written once and never updated; CreatedAt equals UpdatedAt.
type Quote struct {
	ID          string           `json:"id"`
	HostName    string           `json:"hostName"`
	Email       string           `json:"email"`
	Phone       *string          `json:"phone"`
	Property    Property         `json:"property"`
	Preferences QuotePreferences `json:"preferences"`
	Notes       *string          `json:"notes"`
	Pricing     Pricing          `json:"pricing"`
	Status      QuoteStatus      `json:"status"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}
