package response

import (
	"time"

	"turnover_service/internal/domain/entities"
)

type LinenOrderResponse struct {
	OK        bool                   `json:"ok"`
	ID        string                 `json:"id"`
	JobID     *string                `json:"jobId"`
	Property  entities.LinenProperty `json:"property"`
	Items     entities.LinenItems    `json:"items"`
	Schedule  entities.LinenSchedule `json:"schedule"`
	Pricing   entities.Pricing       `json:"pricing"`
	Status    string                 `json:"status"`
	Notes     *string                `json:"notes"`
	CreatedAt time.Time              `json:"createdAt"`
	UpdatedAt time.Time              `json:"updatedAt"`
}

func FromLinenOrder(o entities.LinenOrder) LinenOrderResponse {
	return LinenOrderResponse{
		OK:        true,
		ID:        o.ID,
		JobID:     o.JobID,
		Property:  o.Property,
		Items:     o.Items,
		Schedule:  o.Schedule,
		Pricing:   o.Pricing,
		Status:    string(o.Status),
		Notes:     o.Notes,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}
