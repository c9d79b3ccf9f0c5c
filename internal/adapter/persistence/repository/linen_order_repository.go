package repository

import (
	"context"

	"turnover_service/internal/adapter/persistence/documentstore"
	"turnover_service/internal/domain/entities"
	"turnover_service/internal/usecase/interfaces"
)

type linenItemsDoc struct {
	QueenSheets  int `json:"queenSheets" bson:"queenSheets" dynamodbav:"queenSheets" firestore:"queenSheets"`
	KingSheets   int `json:"kingSheets" bson:"kingSheets" dynamodbav:"kingSheets" firestore:"kingSheets"`
	SingleSheets int `json:"singleSheets" bson:"singleSheets" dynamodbav:"singleSheets" firestore:"singleSheets"`
	BathTowels   int `json:"bathTowels" bson:"bathTowels" dynamodbav:"bathTowels" firestore:"bathTowels"`
	HandTowels   int `json:"handTowels" bson:"handTowels" dynamodbav:"handTowels" firestore:"handTowels"`
	Pillowcases  int `json:"pillowcases" bson:"pillowcases" dynamodbav:"pillowcases" firestore:"pillowcases"`
}

type linenOrderDoc struct {
	ID       string  `json:"id" bson:"_id" dynamodbav:"id" firestore:"-"`
	JobID    *string `json:"jobId" bson:"jobId" dynamodbav:"jobId" firestore:"jobId"`
	Property struct {
		Address string `json:"address" bson:"address" dynamodbav:"address" firestore:"address"`
	} `json:"property" bson:"property" dynamodbav:"property" firestore:"property"`
	Items    linenItemsDoc `json:"items" bson:"items" dynamodbav:"items" firestore:"items"`
	Schedule struct {
		PickupAt string `json:"pickupAt" bson:"pickupAt" dynamodbav:"pickupAt" firestore:"pickupAt"`
		ReturnAt string `json:"returnAt" bson:"returnAt" dynamodbav:"returnAt" firestore:"returnAt"`
	} `json:"schedule" bson:"schedule" dynamodbav:"schedule" firestore:"schedule"`
	Pricing   pricingDoc `json:"pricing" bson:"pricing" dynamodbav:"pricing" firestore:"pricing"`
	Status    string     `json:"status" bson:"status" dynamodbav:"status" firestore:"status"`
	Notes     *string    `json:"notes" bson:"notes" dynamodbav:"notes" firestore:"notes"`
	CreatedAt string     `json:"createdAt" bson:"createdAt" dynamodbav:"createdAt" firestore:"createdAt"`
	UpdatedAt string     `json:"updatedAt" bson:"updatedAt" dynamodbav:"updatedAt" firestore:"updatedAt"`
}

func (d *linenOrderDoc) SetID(id string) { d.ID = id }

// LinenOrderRepository persists linen orders in the "linen_orders" collection.
type LinenOrderRepository struct {
	store documentstore.Store
}

var _ interfaces.ILinenOrderRepository = (*LinenOrderRepository)(nil)

func NewLinenOrderRepository(store documentstore.Store) *LinenOrderRepository {
	return &LinenOrderRepository{store: store}
}

func (r *LinenOrderRepository) Create(ctx context.Context, o entities.LinenOrder) (entities.LinenOrder, error) {
	id, err := r.store.Create(ctx, documentstore.CollectionLinenOrders, toLinenOrderDoc(o))
	if err != nil {
		return entities.LinenOrder{}, err
	}
	o.ID = id
	return o, nil
}

func (r *LinenOrderRepository) GetByID(ctx context.Context, id string) (entities.LinenOrder, error) {
	var doc linenOrderDoc
	found, err := r.store.Get(ctx, documentstore.CollectionLinenOrders, id, &doc)
	if err != nil || !found {
		return entities.LinenOrder{}, err
	}
	return fromLinenOrderDoc(doc), nil
}

func toLinenOrderDoc(o entities.LinenOrder) *linenOrderDoc {
	doc := &linenOrderDoc{
		JobID:     o.JobID,
		Items:     linenItemsDoc(o.Items),
		Pricing:   toPricingDoc(o.Pricing),
		Status:    string(o.Status),
		Notes:     o.Notes,
		CreatedAt: formatTime(o.CreatedAt),
		UpdatedAt: formatTime(o.UpdatedAt),
	}
	doc.Property.Address = o.Property.Address
	doc.Schedule.PickupAt = o.Schedule.PickupAt
	doc.Schedule.ReturnAt = o.Schedule.ReturnAt
	return doc
}

func fromLinenOrderDoc(d linenOrderDoc) entities.LinenOrder {
	return entities.LinenOrder{
		ID:        d.ID,
		JobID:     d.JobID,
		Property:  entities.LinenProperty{Address: d.Property.Address},
		Items:     entities.LinenItems(d.Items),
		Schedule:  entities.LinenSchedule{PickupAt: d.Schedule.PickupAt, ReturnAt: d.Schedule.ReturnAt},
		Pricing:   d.Pricing.toEntity(),
		Status:    entities.LinenOrderStatus(d.Status),
		Notes:     d.Notes,
		CreatedAt: parseTime(d.CreatedAt),
		UpdatedAt: parseTime(d.UpdatedAt),
	}
}
