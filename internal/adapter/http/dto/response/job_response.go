package response

import (
	"time"

	"turnover_service/internal/domain/entities"
)

type JobResponse struct {
	OK        bool                 `json:"ok"`
	ID        string               `json:"id"`
	QuoteID   *string              `json:"quoteId"`
	Schedule  entities.JobSchedule `json:"schedule"`
	Property  entities.Property    `json:"property"`
	AddOns    entities.AddOns      `json:"addOns"`
	Pricing   entities.Pricing     `json:"pricing"`
	Status    string               `json:"status"`
	Checklist entities.Checklist   `json:"checklist"`
	Notes     *string              `json:"notes"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func FromJob(j entities.Job) JobResponse {
	return JobResponse{
		OK:        true,
		ID:        j.ID,
		QuoteID:   j.QuoteID,
		Schedule:  j.Schedule,
		Property:  j.Property,
		AddOns:    j.AddOns,
		Pricing:   j.Pricing,
		Status:    string(j.Status),
		Checklist: j.Checklist,
		Notes:     j.Notes,
		CreatedAt: j.CreatedAt,
		UpdatedAt: j.UpdatedAt,
	}
}
