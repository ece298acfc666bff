package analytics

import (
	"math"
	"testing"
	"time"

	"npc_garage/internal/domain/entities"
)

func pct(v float64) *float64 { return &v }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func assertClose(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s: expected %v, got %v", name, want, got)
	}
}

func completed(id string, date time.Time) entities.Estimate {
	return entities.Estimate{ID: id, Date: date, Status: entities.EstimateStatusCompleted}
}
