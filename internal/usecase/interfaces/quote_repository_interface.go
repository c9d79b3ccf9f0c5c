package interfaces

import (
	"context"

	"turnover_service/internal/domain/entities"
)

//go:generate mockgen -source=quote_repository_interface.go -destination=mocks/mock_quote_repository_interface.go -package=mock_interfaces

// IQuoteRepository abstracts document-store persistence for Quote.
//
// Create returns the quote with its store-assigned ID. GetByID returns a zero
// Quote (empty ID) when the document does not exist.
type IQuoteRepository interface {
	Create(ctx context.Context, q entities.Quote) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
}
