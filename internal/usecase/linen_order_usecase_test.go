package usecase

import (
	"context"
	"errors"
	"testing"

	"turnover_service/internal/domain/entities"
	"turnover_service/internal/domain/pricing"
	mock_interfaces "turnover_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestLinenOrderUseCase_CreateLinenOrder(t *testing.T) {
	for _, items := range []entities.LinenItems{
		{},
		{QueenSheets: 4, BathTowels: 8},
		{QueenSheets: 40, KingSheets: 40, SingleSheets: 40, BathTowels: 40, HandTowels: 40, Pillowcases: 40},
	} {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockILinenOrderRepository(ctrl)
		uc := NewLinenOrderUseCase(repo, pricing.NewEngine("AUD"))

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.LinenOrder{})).DoAndReturn(
			func(_ context.Context, o entities.LinenOrder) (entities.LinenOrder, error) {
				o.ID = "lo-1"
				return o, nil
			},
		)

		res, err := uc.CreateLinenOrder(context.Background(), CreateLinenOrderInput{
			Address:  "1 Main St",
			Items:    items,
			Schedule: entities.LinenSchedule{PickupAt: "a", ReturnAt: "b"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Pricing.Total != 45 || res.Pricing.Breakdown["processing"] != 25 {
			t.Fatalf("expected flat 45 pricing, got %+v", res.Pricing)
		}
		if res.Status != entities.LinenOrderStatusScheduled || res.Items != items {
			t.Fatalf("unexpected order: %+v", res)
		}
		ctrl.Finish()
	}
}

func TestLinenOrderUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewLinenOrderUseCase(nil, pricing.NewEngine("AUD"))
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILinenOrderRepository(ctrl)
		uc := NewLinenOrderUseCase(repo, pricing.NewEngine("AUD"))
		repo.EXPECT().GetByID(gomock.Any(), "lo-1").Return(entities.LinenOrder{}, nil)

		if _, err := uc.GetByID(context.Background(), "lo-1"); !errors.Is(err, ErrLinenOrderNotFound) {
			t.Fatalf("expected ErrLinenOrderNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockILinenOrderRepository(ctrl)
		uc := NewLinenOrderUseCase(repo, pricing.NewEngine("AUD"))
		repo.EXPECT().GetByID(gomock.Any(), "lo-1").Return(entities.LinenOrder{}, errors.New("db"))

		if _, err := uc.GetByID(context.Background(), "lo-1"); err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}
