package rendering

import (
	"bytes"
	"testing"
	"time"

	"turnover_service/internal/domain/entities"
	"turnover_service/internal/domain/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuotePDFRenderer_Render(t *testing.T) {
	notes := "Key under the mat, café door"
	q := entities.Quote{
		ID:        "q-1",
		HostName:  "Alex",
		Email:     "a@b.com",
		Property:  entities.Property{Address: "1 Main St", Bedrooms: 2, Bathrooms: 1},
		Notes:     &notes,
		Pricing:   pricing.NewEngine("AUD").ComputeTurnoverPrice(2, 1, entities.AddOns{}),
		Status:    entities.QuoteStatusQuoted,
		CreatedAt: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC),
	}

	out, err := NewQuotePDFRenderer("turnover-api").Render(q)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestBreakdownLines(t *testing.T) {
	lines := breakdownLines(map[string]float64{
		"zeta":                   1,
		pricing.KeyBathroomsCost: 15,
		pricing.KeyBase:          85,
		pricing.KeyDeepClean:     0,
		pricing.KeyPremiumLinen:  35,
	})

	assert.Equal(t, []breakdownLine{
		{label: "Base clean", amount: 85},
		{label: "Bathrooms", amount: 15},
		{label: "Premium linen", amount: 35},
		{label: "zeta", amount: 1},
	}, lines)
}
