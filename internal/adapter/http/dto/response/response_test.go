package response

import (
	"encoding/json"
	"testing"
	"time"

	"turnover_service/internal/domain/entities"
)

func TestFromQuote(t *testing.T) {
	now := time.Now().UTC()
	q := entities.Quote{
		ID:       "q-1",
		HostName: "Alex",
		Email:    "a@b.com",
		Property: entities.Property{Address: "1 Main St", Bedrooms: 2, Bathrooms: 1},
		Pricing: entities.Pricing{
			Total:     140,
			Breakdown: map[string]float64{"base": 85, "bedroomsCost": 40, "bathroomsCost": 15},
			Currency:  "AUD",
		},
		Status:    entities.QuoteStatusQuoted,
		CreatedAt: now,
		UpdatedAt: now,
	}

	res := FromQuote(q)
	if !res.OK || res.ID != "q-1" {
		t.Fatalf("unexpected envelope: %+v", res)
	}
	if res.Status != "quoted" || res.Pricing.Total != 140 {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if !res.CreatedAt.Equal(now) || !res.UpdatedAt.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
}

func TestFromQuote_NullOptionals(t *testing.T) {
	raw, err := json.Marshal(FromQuote(entities.Quote{ID: "q-1"}))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var body map[string]any
	if err := json.Unmarshal(raw, &body); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	for _, key := range []string{"phone", "notes"} {
		v, ok := body[key]
		if !ok || v != nil {
			t.Fatalf("expected %s to be present and null, got %v (present=%v)", key, v, ok)
		}
	}
	if body["ok"] != true {
		t.Fatalf("expected ok=true, got %v", body["ok"])
	}
}

func TestFromJob(t *testing.T) {
	quoteID := "q-1"
	j := entities.Job{
		ID:        "job-1",
		QuoteID:   &quoteID,
		Status:    entities.JobStatusScheduled,
		Checklist: entities.Checklist{LinensChanged: true},
	}

	res := FromJob(j)
	if !res.OK || res.ID != "job-1" || *res.QuoteID != "q-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.Status != "scheduled" || !res.Checklist.LinensChanged {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
}

func TestFromLinenOrder(t *testing.T) {
	o := entities.LinenOrder{
		ID:     "lo-1",
		Items:  entities.LinenItems{BathTowels: 6},
		Status: entities.LinenOrderStatusScheduled,
	}

	res := FromLinenOrder(o)
	if !res.OK || res.ID != "lo-1" || res.Items.BathTowels != 6 || res.Status != "scheduled" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.JobID != nil {
		t.Fatalf("expected nil job id, got %v", *res.JobID)
	}
}
