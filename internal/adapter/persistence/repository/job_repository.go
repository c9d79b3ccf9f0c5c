package repository

import (
	"context"
	"time"

	"turnover_service/internal/adapter/persistence/documentstore"
	"turnover_service/internal/domain/entities"
	"turnover_service/internal/usecase/interfaces"
)

type checklistDoc struct {
	BathroomsDone   bool `json:"bathroomsDone" bson:"bathroomsDone" dynamodbav:"bathroomsDone" firestore:"bathroomsDone"`
	KitchenDone     bool `json:"kitchenDone" bson:"kitchenDone" dynamodbav:"kitchenDone" firestore:"kitchenDone"`
	FloorsDone      bool `json:"floorsDone" bson:"floorsDone" dynamodbav:"floorsDone" firestore:"floorsDone"`
	TrashOut        bool `json:"trashOut" bson:"trashOut" dynamodbav:"trashOut" firestore:"trashOut"`
	LinensChanged   bool `json:"linensChanged" bson:"linensChanged" dynamodbav:"linensChanged" firestore:"linensChanged"`
	RestockSupplies bool `json:"restockSupplies" bson:"restockSupplies" dynamodbav:"restockSupplies" firestore:"restockSupplies"`
	PhotosTaken     bool `json:"photosTaken" bson:"photosTaken" dynamodbav:"photosTaken" firestore:"photosTaken"`
}

type jobScheduleDoc struct {
	Start string `json:"start" bson:"start" dynamodbav:"start" firestore:"start"`
	End   string `json:"end" bson:"end" dynamodbav:"end" firestore:"end"`
}

type jobDoc struct {
	ID        string         `json:"id" bson:"_id" dynamodbav:"id" firestore:"-"`
	QuoteID   *string        `json:"quoteId" bson:"quoteId" dynamodbav:"quoteId" firestore:"quoteId"`
	Schedule  jobScheduleDoc `json:"schedule" bson:"schedule" dynamodbav:"schedule" firestore:"schedule"`
	Property  propertyDoc    `json:"property" bson:"property" dynamodbav:"property" firestore:"property"`
	AddOns    addOnsDoc      `json:"addOns" bson:"addOns" dynamodbav:"addOns" firestore:"addOns"`
	Pricing   pricingDoc     `json:"pricing" bson:"pricing" dynamodbav:"pricing" firestore:"pricing"`
	Status    string         `json:"status" bson:"status" dynamodbav:"status" firestore:"status"`
	Checklist checklistDoc   `json:"checklist" bson:"checklist" dynamodbav:"checklist" firestore:"checklist"`
	Notes     *string        `json:"notes" bson:"notes" dynamodbav:"notes" firestore:"notes"`
	CreatedAt string         `json:"createdAt" bson:"createdAt" dynamodbav:"createdAt" firestore:"createdAt"`
	UpdatedAt string         `json:"updatedAt" bson:"updatedAt" dynamodbav:"updatedAt" firestore:"updatedAt"`
}

func (d *jobDoc) SetID(id string) { d.ID = id }

// JobRepository persists jobs in the "jobs" collection.
type JobRepository struct {
	store documentstore.Store
}

var _ interfaces.IJobRepository = (*JobRepository)(nil)

func NewJobRepository(store documentstore.Store) *JobRepository {
	return &JobRepository{store: store}
}

func (r *JobRepository) Create(ctx context.Context, j entities.Job) (entities.Job, error) {
	id, err := r.store.Create(ctx, documentstore.CollectionJobs, toJobDoc(j))
	if err != nil {
		return entities.Job{}, err
	}
	j.ID = id
	return j, nil
}

func (r *JobRepository) GetByID(ctx context.Context, id string) (entities.Job, error) {
	var doc jobDoc
	found, err := r.store.Get(ctx, documentstore.CollectionJobs, id, &doc)
	if err != nil || !found {
		return entities.Job{}, err
	}
	return fromJobDoc(doc), nil
}

// UpdateChecklist sets only the named checklist fields plus updatedAt, so
// concurrent updates to different fields do not overwrite each other.
func (r *JobRepository) UpdateChecklist(ctx context.Context, id string, updates []entities.ChecklistUpdate, updatedAt time.Time) (entities.Job, error) {
	fields := make(map[string]any, len(updates)+1)
	for _, upd := range updates {
		fields["checklist."+upd.Field] = upd.Value
	}
	fields["updatedAt"] = formatTime(updatedAt)

	var doc jobDoc
	found, err := r.store.Update(ctx, documentstore.CollectionJobs, id, fields, &doc)
	if err != nil || !found {
		return entities.Job{}, err
	}
	return fromJobDoc(doc), nil
}

func toJobDoc(j entities.Job) *jobDoc {
	return &jobDoc{
		QuoteID:   j.QuoteID,
		Schedule:  jobScheduleDoc{Start: j.Schedule.Start, End: j.Schedule.End},
		Property:  toPropertyDoc(j.Property),
		AddOns:    toAddOnsDoc(j.AddOns),
		Pricing:   toPricingDoc(j.Pricing),
		Status:    string(j.Status),
		Checklist: checklistDoc(j.Checklist),
		Notes:     j.Notes,
		CreatedAt: formatTime(j.CreatedAt),
		UpdatedAt: formatTime(j.UpdatedAt),
	}
}

func fromJobDoc(d jobDoc) entities.Job {
	return entities.Job{
		ID:        d.ID,
		QuoteID:   d.QuoteID,
		Schedule:  entities.JobSchedule{Start: d.Schedule.Start, End: d.Schedule.End},
		Property:  d.Property.toEntity(),
		AddOns:    d.AddOns.toEntity(),
		Pricing:   d.Pricing.toEntity(),
		Status:    entities.JobStatus(d.Status),
		Checklist: entities.Checklist(d.Checklist),
		Notes:     d.Notes,
		CreatedAt: parseTime(d.CreatedAt),
		UpdatedAt: parseTime(d.UpdatedAt),
	}
}
