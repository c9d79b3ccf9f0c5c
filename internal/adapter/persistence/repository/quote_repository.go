package repository

import (
	"context"

	"turnover_service/internal/adapter/persistence/documentstore"
	"turnover_service/internal/domain/entities"
	"turnover_service/internal/usecase/interfaces"
)

type quoteDoc struct {
	ID          string      `json:"id" bson:"_id" dynamodbav:"id" firestore:"-"`
	HostName    string      `json:"hostName" bson:"hostName" dynamodbav:"hostName" firestore:"hostName"`
	Email       string      `json:"email" bson:"email" dynamodbav:"email" firestore:"email"`
	Phone       *string     `json:"phone" bson:"phone" dynamodbav:"phone" firestore:"phone"`
	Property    propertyDoc `json:"property" bson:"property" dynamodbav:"property" firestore:"property"`
	Preferences struct {
		AddOns addOnsDoc `json:"addOns" bson:"addOns" dynamodbav:"addOns" firestore:"addOns"`
	} `json:"preferences" bson:"preferences" dynamodbav:"preferences" firestore:"preferences"`
	Notes     *string    `json:"notes" bson:"notes" dynamodbav:"notes" firestore:"notes"`
	Pricing   pricingDoc `json:"pricing" bson:"pricing" dynamodbav:"pricing" firestore:"pricing"`
	Status    string     `json:"status" bson:"status" dynamodbav:"status" firestore:"status"`
	CreatedAt string     `json:"createdAt" bson:"createdAt" dynamodbav:"createdAt" firestore:"createdAt"`
	UpdatedAt string     `json:"updatedAt" bson:"updatedAt" dynamodbav:"updatedAt" firestore:"updatedAt"`
}

func (d *quoteDoc) SetID(id string) { d.ID = id }

// QuoteRepository persists quotes in the "quotes" collection.
type QuoteRepository struct {
	store documentstore.Store
}

var _ interfaces.IQuoteRepository = (*QuoteRepository)(nil)

func NewQuoteRepository(store documentstore.Store) *QuoteRepository {
	return &QuoteRepository{store: store}
}

func (r *QuoteRepository) Create(ctx context.Context, q entities.Quote) (entities.Quote, error) {
	doc := toQuoteDoc(q)
	id, err := r.store.Create(ctx, documentstore.CollectionQuotes, doc)
	if err != nil {
		return entities.Quote{}, err
	}
	q.ID = id
	return q, nil
}

func (r *QuoteRepository) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	var doc quoteDoc
	found, err := r.store.Get(ctx, documentstore.CollectionQuotes, id, &doc)
	if err != nil || !found {
		return entities.Quote{}, err
	}
	return fromQuoteDoc(doc), nil
}

func toQuoteDoc(q entities.Quote) *quoteDoc {
	doc := &quoteDoc{
		HostName:  q.HostName,
		Email:     q.Email,
		Phone:     q.Phone,
		Property:  toPropertyDoc(q.Property),
		Notes:     q.Notes,
		Pricing:   toPricingDoc(q.Pricing),
		Status:    string(q.Status),
		CreatedAt: formatTime(q.CreatedAt),
		UpdatedAt: formatTime(q.UpdatedAt),
	}
	doc.Preferences.AddOns = toAddOnsDoc(q.Preferences.AddOns)
	return doc
}

func fromQuoteDoc(d quoteDoc) entities.Quote {
	return entities.Quote{
		ID:          d.ID,
		HostName:    d.HostName,
		Email:       d.Email,
		Phone:       d.Phone,
		Property:    d.Property.toEntity(),
		Preferences: entities.QuotePreferences{AddOns: d.Preferences.AddOns.toEntity()},
		Notes:       d.Notes,
		Pricing:     d.Pricing.toEntity(),
		Status:      entities.QuoteStatus(d.Status),
		CreatedAt:   parseTime(d.CreatedAt),
		UpdatedAt:   parseTime(d.UpdatedAt),
	}
}
