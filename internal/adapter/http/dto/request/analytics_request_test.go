package request

import (
	"errors"
	"testing"
	"time"
)

func TestAnalyticsQuery_ToReportQuery(t *testing.T) {
	t.Run("plain dates", func(t *testing.T) {
		q, err := AnalyticsQuery{StartDate: "2024-03-01", EndDate: "2024-03-31", MechanicID: " m1 ", Limit: 3}.ToReportQuery()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !q.Start.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local)) {
			t.Fatalf("unexpected start %v", q.Start)
		}
		if q.End.Day() != 31 || q.MechanicID != "m1" || q.Limit != 3 {
			t.Fatalf("unexpected query %+v", q)
		}
	})

	t.Run("rfc3339", func(t *testing.T) {
		q, err := AnalyticsQuery{StartDate: "2024-03-01T08:00:00-03:00", EndDate: "2024-03-02"}.ToReportQuery()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !q.Start.Equal(time.Date(2024, 3, 1, 11, 0, 0, 0, time.UTC)) {
			t.Fatalf("unexpected start %v", q.Start)
		}
	})

	t.Run("missing dates stay zero", func(t *testing.T) {
		q, err := AnalyticsQuery{}.ToReportQuery()
		if err != nil {
			t.Fatalf("unexpected err: %v", err)
		}
		if !q.Start.IsZero() || !q.End.IsZero() {
			t.Fatalf("expected zero dates, got %+v", q)
		}
	})

	t.Run("invalid date", func(t *testing.T) {
		_, err := AnalyticsQuery{StartDate: "01/03/2024", EndDate: "2024-03-31"}.ToReportQuery()
		if !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("expected ErrInvalidDate, got %v", err)
		}
	})
}
