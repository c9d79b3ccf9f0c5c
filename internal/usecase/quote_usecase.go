package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"turnover_service/internal/domain/entities"
	"turnover_service/internal/domain/pricing"
	"turnover_service/internal/usecase/interfaces"
	"turnover_service/pkg/metrics"
)

var (
	ErrQuoteNotFound           = errors.New("quote not found")
	ErrInvalidID               = errors.New("invalid id")
	ErrQuoteRendererNotEnabled = errors.New("quote renderer not configured")
)

// CreateQuoteInput is a validated quote request.
type CreateQuoteInput struct {
	HostName string
	Email    string
	Phone    *string
	Property entities.Property
	AddOns   entities.AddOns
	Notes    *string
}

//go:generate mockgen -source=quote_usecase.go -destination=../adapter/http/handlers/mocks/mock_quote_usecase.go -package=mocks

// IQuoteUseCase exposes quote operations:
//   - POST /quotes => CreateQuote()
//   - GET /quotes/:id => GetByID()
//   - GET /quotes/:id/pdf => RenderPDF()
type IQuoteUseCase interface {
	CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error)
	GetByID(ctx context.Context, id string) (entities.Quote, error)
	RenderPDF(ctx context.Context, id string) ([]byte, error)
}

type QuoteUseCase struct {
	repo     interfaces.IQuoteRepository
	engine   *pricing.Engine
	renderer interfaces.IQuoteRenderer
	metrics  *metrics.Metrics
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRepository, engine *pricing.Engine, renderer interfaces.IQuoteRenderer, m *metrics.Metrics) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, engine: engine, renderer: renderer, metrics: m}
}

// CreateQuote prices the request and stores it with status "quoted".
func (u *QuoteUseCase) CreateQuote(ctx context.Context, in CreateQuoteInput) (entities.Quote, error) {
	now := time.Now().UTC()
	q := entities.Quote{
		HostName:    in.HostName,
		Email:       in.Email,
		Phone:       in.Phone,
		Property:    in.Property,
		Preferences: entities.QuotePreferences{AddOns: in.AddOns},
		Notes:       in.Notes,
		Pricing:     u.engine.ComputeTurnoverPrice(float64(in.Property.Bedrooms), float64(in.Property.Bathrooms), in.AddOns),
		Status:      entities.QuoteStatusQuoted,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quote{}, err
	}
	u.metrics.QuoteTotal(created.Pricing.Total)
	return created, nil
}

func (u *QuoteUseCase) GetByID(ctx context.Context, id string) (entities.Quote, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quote{}, ErrInvalidID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quote{}, err
	}
	if q.ID == "" {
		return entities.Quote{}, ErrQuoteNotFound
	}
	return q, nil
}

// RenderPDF loads a quote and renders it as a printable document.
func (u *QuoteUseCase) RenderPDF(ctx context.Context, id string) ([]byte, error) {
	if u.renderer == nil {
		return nil, ErrQuoteRendererNotEnabled
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return u.renderer.Render(q)
}
