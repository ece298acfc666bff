package analytics

import (
	"testing"
	"time"

	"npc_garage/internal/domain/entities"
)

func TestMonthlyRevenue_TrailingWindow(t *testing.T) {
	now := time.Date(2024, 6, 15, 10, 0, 0, 0, time.UTC)

	mk := func(id string, date time.Time, rate float64) entities.Estimate {
		e := completed(id, date)
		e.Labor = []entities.LaborLine{{Description: "Work", Hours: 1, Rate: rate}}
		return e
	}
	tooOld := mk("old", day(2023, 1, 20), 999)
	firstBucket := mk("jul", day(2023, 7, 1), 100)
	june := mk("jun", day(2024, 6, 2), 50)
	juneAgain := mk("jun2", time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC), 25)
	draft := mk("draft", day(2024, 6, 3), 1000)
	draft.Status = entities.EstimateStatusDraft

	got := MonthlyRevenue([]entities.Estimate{tooOld, firstBucket, june, juneAgain, draft}, nil, now, 12)
	if len(got) != 12 {
		t.Fatalf("expected 12 buckets, got %d", len(got))
	}
	if got[0].Year != 2023 || got[0].Month != time.July {
		t.Fatalf("expected first bucket 2023-07, got %d-%d", got[0].Year, got[0].Month)
	}
	if got[11].Year != 2024 || got[11].Month != time.June {
		t.Fatalf("expected last bucket 2024-06, got %d-%d", got[11].Year, got[11].Month)
	}
	if got[0].Revenue != 100 || got[11].Revenue != 75 {
		t.Fatalf("unexpected bucket values: first=%v last=%v", got[0].Revenue, got[11].Revenue)
	}

	var total float64
	for _, b := range got {
		total += b.Revenue
	}
	if total != 175 {
		t.Fatalf("expected old and draft records to be ignored, total=%v", total)
	}
}

func TestMonthlyRevenue_DefaultsAndYearBoundary(t *testing.T) {
	now := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)

	got := MonthlyRevenue(nil, nil, now, 0)
	if len(got) != DefaultMonths {
		t.Fatalf("expected %d buckets, got %d", DefaultMonths, len(got))
	}

	got = MonthlyRevenue(nil, nil, now, 3)
	want := [][2]int{{2024, 12}, {2025, 1}, {2025, 2}}
	for i, w := range want {
		if got[i].Year != w[0] || int(got[i].Month) != w[1] || got[i].Revenue != 0 {
			t.Fatalf("bucket %d: expected %v, got %+v", i, w, got[i])
		}
	}
}
