package entities

import "time"

type LinenOrderStatus string

const (
	LinenOrderStatusScheduled LinenOrderStatus = "scheduled"
)

// LinenItems are the per-item counts of a linen order. They do not affect pricing.
type LinenItems struct {
	QueenSheets  int `json:"queenSheets"`
	KingSheets   int `json:"kingSheets"`
	SingleSheets int `json:"singleSheets"`
	BathTowels   int `json:"bathTowels"`
	HandTowels   int `json:"handTowels"`
	Pillowcases  int `json:"pillowcases"`
}

type LinenSchedule struct {
	PickupAt string `json:"pickupAt"`
	ReturnAt string `json:"returnAt"`
}

// LinenProperty only carries the address; linen service is not sized by rooms.
type LinenProperty struct {
	Address string `json:"address"`
}

// LinenOrder is a standalone linen pickup/return persisted in "linen_orders".
// It is immutable after creation.
type LinenOrder struct {
	ID        string           `json:"id"`
	JobID     *string          `json:"jobId"`
	Property  LinenProperty    `json:"property"`
	Items     LinenItems       `json:"items"`
	Schedule  LinenSchedule    `json:"schedule"`
	Pricing   Pricing          `json:"pricing"`
	Status    LinenOrderStatus `json:"status"`
	Notes     *string          `json:"notes"`
	CreatedAt time.Time        `json:"createdAt"`
	UpdatedAt time.Time        `json:"updatedAt"`
}
