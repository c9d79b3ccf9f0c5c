package interfaces

import "turnover_service/internal/domain/entities"

//go:generate mockgen -source=quote_renderer_interface.go -destination=mocks/mock_quote_renderer_interface.go -package=mock_interfaces

// IQuoteRenderer turns a stored quote into a printable document (e.g. PDF).
type IQuoteRenderer interface {
	Render(q entities.Quote) ([]byte, error)
}
