package interfaces

import (
	"context"

	"turnover_service/internal/domain/entities"
)

//go:generate mockgen -source=linen_order_repository_interface.go -destination=mocks/mock_linen_order_repository_interface.go -package=mock_interfaces

// ILinenOrderRepository abstracts document-store persistence for LinenOrder.
type ILinenOrderRepository interface {
	Create(ctx context.Context, o entities.LinenOrder) (entities.LinenOrder, error)
	GetByID(ctx context.Context, id string) (entities.LinenOrder, error)
}
