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

var (
	ErrJobNotFound       = errors.New("job not found")
	ErrNoChecklistFields = errors.New("no valid checklist fields provided")
)

// CreateJobInput is a validated job request. Price, when set, overrides the
// computed pricing.
type CreateJobInput struct {
	QuoteID   *string
	Schedule  entities.JobSchedule
	Property  entities.Property
	AddOns    entities.AddOns
	Price     *float64
	Checklist []entities.ChecklistUpdate
	Notes     *string
}

//go:generate mockgen -source=job_usecase.go -destination=../adapter/http/handlers/mocks/mock_job_usecase.go -package=mocks

// IJobUseCase exposes job operations:
//   - POST /jobs => CreateJob()
//   - GET /jobs/:id => GetByID()
//   - PATCH /jobs/:id/checklist => UpdateChecklist()
type IJobUseCase interface {
	CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	UpdateChecklist(ctx context.Context, id string, updates []entities.ChecklistUpdate) (entities.Job, error)
}

type JobUseCase struct {
	repo   interfaces.IJobRepository
	engine *pricing.Engine
}

var _ IJobUseCase = (*JobUseCase)(nil)

func NewJobUseCase(repo interfaces.IJobRepository, engine *pricing.Engine) *JobUseCase {
	return &JobUseCase{repo: repo, engine: engine}
}

// CreateJob stores a scheduled job. The checklist starts all false except
// linensChanged, which mirrors the premium linen add-on, and then takes any
// explicit overrides.
func (u *JobUseCase) CreateJob(ctx context.Context, in CreateJobInput) (entities.Job, error) {
	var price entities.Pricing
	if in.Price != nil {
		price = u.engine.OverridePrice(*in.Price)
	} else {
		price = u.engine.ComputeTurnoverPrice(float64(in.Property.Bedrooms), float64(in.Property.Bathrooms), in.AddOns)
	}

	checklist := entities.DefaultChecklist(in.AddOns.PremiumLinen)
	for _, upd := range in.Checklist {
		checklist.Set(upd.Field, upd.Value)
	}

	now := time.Now().UTC()
	j := entities.Job{
		QuoteID:   in.QuoteID,
		Schedule:  in.Schedule,
		Property:  in.Property,
		AddOns:    in.AddOns,
		Pricing:   price,
		Status:    entities.JobStatusScheduled,
		Checklist: checklist,
		Notes:     in.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	}
	return u.repo.Create(ctx, j)
}

func (u *JobUseCase) GetByID(ctx context.Context, id string) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidID
	}

	j, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Job{}, err
	}
	if j.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return j, nil
}

// UpdateChecklist writes the given checklist fields and updatedAt in one
// document update. Concurrent updates are last-write-wins per field.
func (u *JobUseCase) UpdateChecklist(ctx context.Context, id string, updates []entities.ChecklistUpdate) (entities.Job, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Job{}, ErrInvalidID
	}

	var recognized []entities.ChecklistUpdate
	for _, upd := range updates {
		if entities.IsChecklistField(upd.Field) {
			recognized = append(recognized, upd)
		}
	}
	if len(recognized) == 0 {
		return entities.Job{}, ErrNoChecklistFields
	}

	updated, err := u.repo.UpdateChecklist(ctx, id, recognized, time.Now().UTC())
	if err != nil {
		return entities.Job{}, err
	}
	if updated.ID == "" {
		return entities.Job{}, ErrJobNotFound
	}
	return updated, nil
}
