package interfaces

import (
	"context"
	"time"

	"turnover_service/internal/domain/entities"
)

//go:generate mockgen -source=job_repository_interface.go -destination=mocks/mock_job_repository_interface.go -package=mock_interfaces

// IJobRepository abstracts document-store persistence for Job.
//
// The job document must be able to:
//   - be created once with its full canonical shape
//   - be read back by ID
//   - have checklist fields written in a single-document update
//
// Missing documents are reported as a zero Job (empty ID), not as an error.
type IJobRepository interface {
	Create(ctx context.Context, j entities.Job) (entities.Job, error)
	GetByID(ctx context.Context, id string) (entities.Job, error)
	UpdateChecklist(ctx context.Context, id string, updates []entities.ChecklistUpdate, updatedAt time.Time) (entities.Job, error)
}
