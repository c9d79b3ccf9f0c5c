package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"turnover_service/internal/domain/entities"
	"turnover_service/internal/domain/pricing"
	"turnover_service/internal/usecase/interfaces"
)

var ErrLinenOrderNotFound = errors.New("linen order not found")

type CreateLinenOrderInput struct {
	JobID    *string
	Address  string
	Items    entities.LinenItems
	Schedule entities.LinenSchedule
	Notes    *string
}

//go:generate mockgen -source=linen_order_usecase.go -destination=../adapter/http/handlers/mocks/mock_linen_order_usecase.go -package=mocks

type ILinenOrderUseCase interface {
	CreateLinenOrder(ctx context.Context, in CreateLinenOrderInput) (entities.LinenOrder, error)
	GetByID(ctx context.Context, id string) (entities.LinenOrder, error)
}

type LinenOrderUseCase struct {
	repo   interfaces.ILinenOrderRepository
	engine *pricing.Engine
}

var _ ILinenOrderUseCase = (*LinenOrderUseCase)(nil)

func NewLinenOrderUseCase(repo interfaces.ILinenOrderRepository, engine *pricing.Engine) *LinenOrderUseCase {
	return &LinenOrderUseCase{repo: repo, engine: engine}
}

// CreateLinenOrder stores a linen order at the flat linen price.
func (u *LinenOrderUseCase) CreateLinenOrder(ctx context.Context, in CreateLinenOrderInput) (entities.LinenOrder, error) {
	now := time.Now().UTC()
	o := entities.LinenOrder{
		JobID:     in.JobID,
		Property:  entities.LinenProperty{Address: in.Address},
		Items:     in.Items,
		Schedule:  in.Schedule,
		Pricing:   u.engine.LinenFlatPrice(),
		Status:    entities.LinenOrderStatusScheduled,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, o)
}

func (u *LinenOrderUseCase) GetByID(ctx context.Context, id string) (entities.LinenOrder, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.LinenOrder{}, ErrInvalidID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.LinenOrder{}, err
	}
	if o.ID == "" {
		return entities.LinenOrder{}, ErrLinenOrderNotFound
	}
	return o, nil
}
