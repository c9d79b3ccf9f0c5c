package request

import (
	"encoding/json"
	"strings"

	"turnover_service/internal/domain/entities"
	"turnover_service/internal/domain/pricing"
	"turnover_service/internal/usecase"
)

// JobRequest is the validated body of POST /jobs.
type JobRequest struct {
	QuoteID   *string
	Schedule  entities.JobSchedule
	Property  entities.Property
	AddOns    entities.AddOns
	Price     *float64
	Checklist []entities.ChecklistUpdate
	Notes     *string
}

// ParseJobRequest validates schedule.start, schedule.end, the property fields,
// an optional price override and optional checklist overrides, in that order.
func ParseJobRequest(body map[string]any) (JobRequest, error) {
	schedule := object(body, "schedule")
	start, err := requireString(schedule, "start", fieldPath("schedule", "start"))
	if err != nil {
		return JobRequest{}, err
	}
	end, err := requireString(schedule, "end", fieldPath("schedule", "end"))
	if err != nil {
		return JobRequest{}, err
	}

	property, err := parseProperty(body)
	if err != nil {
		return JobRequest{}, err
	}

	price, err := parsePriceOverride(body)
	if err != nil {
		return JobRequest{}, err
	}

	checklist, err := parseChecklistOverrides(body)
	if err != nil {
		return JobRequest{}, err
	}

	return JobRequest{
		QuoteID:   optionalString(body["quoteId"]),
		Schedule:  entities.JobSchedule{Start: start, End: end},
		Property:  property,
		AddOns:    parseAddOns(object(body, "addOns")),
		Price:     price,
		Checklist: checklist,
		Notes:     optionalString(body["notes"]),
	}, nil
}

func (r JobRequest) ToInput() usecase.CreateJobInput {
	return usecase.CreateJobInput{
		QuoteID:   r.QuoteID,
		Schedule:  r.Schedule,
		Property:  r.Property,
		AddOns:    r.AddOns,
		Price:     r.Price,
		Checklist: r.Checklist,
		Notes:     r.Notes,
	}
}

// parsePriceOverride returns nil when price is absent or null. A present price
// must be a finite number >= 0 (numeric strings are accepted).
func parsePriceOverride(body map[string]any) (*float64, error) {
	v, present := body["price"]
	if !present || v == nil {
		return nil, nil
	}

	invalid := &FieldError{Field: "price", Message: "price must be a non-negative number"}
	switch x := v.(type) {
	case json.Number, float64:
	case string:
		if strings.TrimSpace(x) == "" {
			return nil, invalid
		}
	default:
		return nil, invalid
	}

	n, ok := pricing.ToNumber(v)
	if !ok || n < 0 {
		return nil, invalid
	}
	return &n, nil
}

// parseChecklistOverrides reads the optional checklist object of a new job.
// Unknown keys are ignored; known keys must carry booleans.
func parseChecklistOverrides(body map[string]any) ([]entities.ChecklistUpdate, error) {
	raw, present := body["checklist"]
	if !present || raw == nil {
		return nil, nil
	}
	checklist, ok := raw.(map[string]any)
	if !ok {
		return nil, &FieldError{Field: "checklist", Message: "checklist must be an object"}
	}

	var updates []entities.ChecklistUpdate
	for _, field := range entities.ChecklistFields {
		v, present := checklist[field]
		if !present {
			continue
		}
		b, ok := Boolean(v)
		if !ok {
			return nil, booleanError(fieldPath("checklist", field))
		}
		updates = append(updates, entities.ChecklistUpdate{Field: field, Value: b})
	}
	return updates, nil
}
