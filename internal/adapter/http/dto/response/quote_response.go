package response

import (
	"time"

	"turnover_service/internal/domain/entities"
)

type QuoteResponse struct {
	OK          bool                      `json:"ok"`
	ID          string                    `json:"id"`
	HostName    string                    `json:"hostName"`
	Email       string                    `json:"email"`
	Phone       *string                   `json:"phone"`
	Property    entities.Property         `json:"property"`
	Preferences entities.QuotePreferences `json:"preferences"`
	Notes       *string                   `json:"notes"`
	Pricing     entities.Pricing          `json:"pricing"`
	Status      string                    `json:"status"`
	CreatedAt   time.Time                 `json:"createdAt"`
	UpdatedAt   time.Time                 `json:"updatedAt"`
}

func FromQuote(q entities.Quote) QuoteResponse {
	return QuoteResponse{
		OK:          true,
		ID:          q.ID,
		HostName:    q.HostName,
		Email:       q.Email,
		Phone:       q.Phone,
		Property:    q.Property,
		Preferences: q.Preferences,
		Notes:       q.Notes,
		Pricing:     q.Pricing,
		Status:      string(q.Status),
		CreatedAt:   q.CreatedAt,
		UpdatedAt:   q.UpdatedAt,
	}
}
