package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"turnover_service/internal/domain/entities"
	"turnover_service/internal/domain/pricing"
	mock_interfaces "turnover_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func echoJob(id string) func(context.Context, entities.Job) (entities.Job, error) {
	return func(_ context.Context, j entities.Job) (entities.Job, error) {
		j.ID = id
		return j, nil
	}
}

func TestJobUseCase_CreateJob(t *testing.T) {
	property := entities.Property{Address: "1 Main St", Bedrooms: 3, Bathrooms: 2}
	schedule := entities.JobSchedule{Start: "2026-11-01T10:00:00Z", End: "2026-11-01T13:00:00Z"}

	t.Run("premium linen defaults linensChanged", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Job{})).DoAndReturn(echoJob("job-1"))

		res, err := uc.CreateJob(context.Background(), CreateJobInput{
			Schedule: schedule,
			Property: property,
			AddOns:   entities.AddOns{PremiumLinen: true},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Checklist != (entities.Checklist{LinensChanged: true}) {
			t.Fatalf("unexpected checklist: %+v", res.Checklist)
		}
		if res.Status != entities.JobStatusScheduled {
			t.Fatalf("expected scheduled, got %s", res.Status)
		}
		if res.Pricing.Total != 85+60+30+35 {
			t.Fatalf("unexpected total: %v", res.Pricing.Total)
		}
		if res.CreatedAt.IsZero() || !res.CreatedAt.Equal(res.UpdatedAt) {
			t.Fatalf("expected equal timestamps")
		}
	})

	t.Run("price override ignores rooms", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoJob("job-2"))

		price := 200.0
		res, err := uc.CreateJob(context.Background(), CreateJobInput{
			Schedule: schedule,
			Property: property,
			AddOns:   entities.AddOns{DeepClean: true},
			Price:    &price,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Pricing.Total != 200 || res.Pricing.Currency != "AUD" ||
			len(res.Pricing.Breakdown) != 1 || res.Pricing.Breakdown["customOverride"] != 200 {
			t.Fatalf("unexpected override pricing: %+v", res.Pricing)
		}
	})

	t.Run("explicit checklist overrides defaults", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(echoJob("job-3"))

		res, err := uc.CreateJob(context.Background(), CreateJobInput{
			Schedule: schedule,
			Property: property,
			AddOns:   entities.AddOns{PremiumLinen: true},
			Checklist: []entities.ChecklistUpdate{
				{Field: entities.ChecklistLinensChanged, Value: false},
				{Field: entities.ChecklistPhotosTaken, Value: true},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if res.Checklist != (entities.Checklist{PhotosTaken: true}) {
			t.Fatalf("unexpected checklist: %+v", res.Checklist)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Job{}, errors.New("db"))

		_, err := uc.CreateJob(context.Background(), CreateJobInput{Schedule: schedule, Property: property})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestJobUseCase_GetByID(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewJobUseCase(nil, pricing.NewEngine("AUD"))
		if _, err := uc.GetByID(context.Background(), ""); !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{}, nil)

		if _, err := uc.GetByID(context.Background(), "job-1"); !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))
		repo.EXPECT().GetByID(gomock.Any(), "job-1").Return(entities.Job{ID: "job-1"}, nil)

		res, err := uc.GetByID(context.Background(), "job-1")
		if err != nil || res.ID != "job-1" {
			t.Fatalf("unexpected result: %+v %v", res, err)
		}
	})
}

func TestJobUseCase_UpdateChecklist(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewJobUseCase(nil, pricing.NewEngine("AUD"))
		_, err := uc.UpdateChecklist(context.Background(), " ", []entities.ChecklistUpdate{{Field: "trashOut", Value: true}})
		if !errors.Is(err, ErrInvalidID) {
			t.Fatalf("expected ErrInvalidID, got %v", err)
		}
	})

	t.Run("no recognized fields", func(t *testing.T) {
		uc := NewJobUseCase(nil, pricing.NewEngine("AUD"))
		for _, updates := range [][]entities.ChecklistUpdate{nil, {{Field: "unknownField", Value: true}}} {
			if _, err := uc.UpdateChecklist(context.Background(), "job-1", updates); !errors.Is(err, ErrNoChecklistFields) {
				t.Fatalf("expected ErrNoChecklistFields, got %v", err)
			}
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))
		repo.EXPECT().UpdateChecklist(gomock.Any(), "job-1", gomock.Any(), gomock.Any()).Return(entities.Job{}, nil)

		_, err := uc.UpdateChecklist(context.Background(), "job-1", []entities.ChecklistUpdate{{Field: "trashOut", Value: true}})
		if !errors.Is(err, ErrJobNotFound) {
			t.Fatalf("expected ErrJobNotFound, got %v", err)
		}
	})

	t.Run("repo error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))
		repo.EXPECT().UpdateChecklist(gomock.Any(), "job-1", gomock.Any(), gomock.Any()).Return(entities.Job{}, errors.New("db"))

		_, err := uc.UpdateChecklist(context.Background(), "job-1", []entities.ChecklistUpdate{{Field: "trashOut", Value: true}})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success drops unknown fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIJobRepository(ctrl)
		uc := NewJobUseCase(repo, pricing.NewEngine("AUD"))

		before := time.Now().UTC()
		repo.EXPECT().UpdateChecklist(gomock.Any(), "job-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, updates []entities.ChecklistUpdate, updatedAt time.Time) (entities.Job, error) {
				if len(updates) != 1 || updates[0].Field != "bathroomsDone" || !updates[0].Value {
					t.Fatalf("unexpected updates: %+v", updates)
				}
				if updatedAt.Before(before) {
					t.Fatalf("updatedAt must be fresh")
				}
				return entities.Job{ID: "job-1", Checklist: entities.Checklist{BathroomsDone: true}, UpdatedAt: updatedAt}, nil
			},
		)

		res, err := uc.UpdateChecklist(context.Background(), "job-1", []entities.ChecklistUpdate{
			{Field: "bathroomsDone", Value: true},
			{Field: "unknownField", Value: true},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !res.Checklist.BathroomsDone {
			t.Fatalf("expected bathroomsDone")
		}
	})
}
