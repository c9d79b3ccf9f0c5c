package entities

import "time"

type JobStatus string

const (
	JobStatusScheduled JobStatus = "scheduled"
)

// Checklist field names as they appear in requests and stored documents.
const (
	ChecklistBathroomsDone   = "bathroomsDone"
	ChecklistKitchenDone     = "kitchenDone"
	ChecklistFloorsDone      = "floorsDone"
	ChecklistTrashOut        = "trashOut"
	ChecklistLinensChanged   = "linensChanged"
	ChecklistRestockSupplies = "restockSupplies"
	ChecklistPhotosTaken     = "photosTaken"
)

// ChecklistFields lists the recognized checklist fields in document order.
var ChecklistFields = []string{
	ChecklistBathroomsDone,
	ChecklistKitchenDone,
	ChecklistFloorsDone,
	ChecklistTrashOut,
	ChecklistLinensChanged,
	ChecklistRestockSupplies,
	ChecklistPhotosTaken,
}

// IsChecklistField reports whether name is one of the seven checklist fields.
func IsChecklistField(name string) bool {
	for _, f := range ChecklistFields {
		if f == name {
			return true
		}
	}
	return false
}

// Checklist tracks cleaning-task completion on a job.
type Checklist struct {
	BathroomsDone   bool `json:"bathroomsDone"`
	KitchenDone     bool `json:"kitchenDone"`
	FloorsDone      bool `json:"floorsDone"`
	TrashOut        bool `json:"trashOut"`
	LinensChanged   bool `json:"linensChanged"`
	RestockSupplies bool `json:"restockSupplies"`
	PhotosTaken     bool `json:"photosTaken"`
}

// DefaultChecklist is all false except LinensChanged, which follows the
// premium linen add-on.
func DefaultChecklist(premiumLinen bool) Checklist {
	return Checklist{LinensChanged: premiumLinen}
}

// Set assigns a field by name. It returns false for unknown names.
func (c *Checklist) Set(field string, value bool) bool {
	switch field {
	case ChecklistBathroomsDone:
		c.BathroomsDone = value
	case ChecklistKitchenDone:
		c.KitchenDone = value
	case ChecklistFloorsDone:
		c.FloorsDone = value
	case ChecklistTrashOut:
		c.TrashOut = value
	case ChecklistLinensChanged:
		c.LinensChanged = value
	case ChecklistRestockSupplies:
		c.RestockSupplies = value
	case ChecklistPhotosTaken:
		c.PhotosTaken = value
	default:
		return false
	}
	return true
}

// ChecklistUpdate is a single field assignment, kept in the order supplied.
type ChecklistUpdate struct {
	Field string
	Value bool
}

// JobSchedule holds caller-supplied ISO-8601 strings. They are stored as given.
type JobSchedule struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Job is a scheduled clean persisted in the "jobs" collection.
//
// Only Checklist and UpdatedAt change after creation.
type Job struct {
	ID        string      `json:"id"`
	QuoteID   *string     `json:"quoteId"`
	Schedule  JobSchedule `json:"schedule"`
	Property  Property    `json:"property"`
	AddOns    AddOns      `json:"addOns"`
	Pricing   Pricing     `json:"pricing"`
	Status    JobStatus   `json:"status"`
	Checklist Checklist   `json:"checklist"`
	Notes     *string     `json:"notes"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}
