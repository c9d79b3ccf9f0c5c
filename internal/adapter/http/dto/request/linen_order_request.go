package request

import (
	"turnover_service/internal/domain/entities"
	"turnover_service/internal/usecase"
)

// LinenOrderRequest is the validated body of POST /linen/orders.
type LinenOrderRequest struct {
	JobID    *string
	Address  string
	Items    entities.LinenItems
	Schedule entities.LinenSchedule
	Notes    *string
}

// ParseLinenOrderRequest validates property.address, schedule.pickupAt and
// schedule.returnAt, in that order. Item counts never fail; anything
// unusable counts as 0.
func ParseLinenOrderRequest(body map[string]any) (LinenOrderRequest, error) {
	address, err := requireString(object(body, "property"), "address", fieldPath("property", "address"))
	if err != nil {
		return LinenOrderRequest{}, err
	}

	schedule := object(body, "schedule")
	pickupAt, err := requireString(schedule, "pickupAt", fieldPath("schedule", "pickupAt"))
	if err != nil {
		return LinenOrderRequest{}, err
	}
	returnAt, err := requireString(schedule, "returnAt", fieldPath("schedule", "returnAt"))
	if err != nil {
		return LinenOrderRequest{}, err
	}

	items := object(body, "items")

	return LinenOrderRequest{
		JobID:   optionalString(body["jobId"]),
		Address: address,
		Items: entities.LinenItems{
			QueenSheets:  itemCount(items["queenSheets"]),
			KingSheets:   itemCount(items["kingSheets"]),
			SingleSheets: itemCount(items["singleSheets"]),
			BathTowels:   itemCount(items["bathTowels"]),
			HandTowels:   itemCount(items["handTowels"]),
			Pillowcases:  itemCount(items["pillowcases"]),
		},
		Schedule: entities.LinenSchedule{PickupAt: pickupAt, ReturnAt: returnAt},
		Notes:    optionalString(body["notes"]),
	}, nil
}

func (r LinenOrderRequest) ToInput() usecase.CreateLinenOrderInput {
	return usecase.CreateLinenOrderInput{
		JobID:    r.JobID,
		Address:  r.Address,
		Items:    r.Items,
		Schedule: r.Schedule,
		Notes:    r.Notes,
	}
}
