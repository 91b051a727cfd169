package domain

import (
	"time"

	"github.com/google/uuid"
)

// RateSnapshot is one persisted fetch result, kept so callers can read the
// last known rates when the upstream is down and browse what was fetched.
type RateSnapshot struct {
	ID        uuid.UUID          `json:"id"`
	Base      string             `json:"base"`
	Rates     map[string]float64 `json:"rates"`
	FetchedAt time.Time          `json:"fetched_at"`
}

func SnapshotOf(t *RateTable) *RateSnapshot {
	return &RateSnapshot{
		ID:        uuid.New(),
		Base:      t.Base,
		Rates:     t.Rates,
		FetchedAt: t.FetchedAt,
	}
}
