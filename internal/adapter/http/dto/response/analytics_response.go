package response

import (
	"fmt"
	"time"

	"npc_garage/internal/domain/analytics"
)

type PeriodResponse struct {
	StartDate  string `json:"start_date"`
	EndDate    string `json:"end_date"`
	MechanicID string `json:"mechanic_id"`
}

type MonthBucketResponse struct {
	Period  string  `json:"period"`
	Year    int     `json:"year"`
	Month   int     `json:"month"`
	Revenue float64 `json:"revenue"`
}

type ReportResponse struct {
	Period         PeriodResponse                  `json:"period"`
	GeneratedAt    time.Time                       `json:"generated_at"`
	KPIs           analytics.KPIs                  `json:"kpis"`
	Clients        analytics.ClientSegments        `json:"clients"`
	Mechanics      []analytics.MechanicPerformance `json:"mechanics"`
	TopServices    []analytics.RankedItem          `json:"top_services"`
	TopParts       []analytics.RankedItem          `json:"top_parts"`
	MonthlyRevenue []MonthBucketResponse           `json:"monthly_revenue"`
}

// ListResponse wraps collection results so empty lists render as [].
type ListResponse[T any] struct {
	Items []T `json:"items"`
}

func FromReport(r analytics.Report) ReportResponse {
	return ReportResponse{
		Period:         FromWindow(r.Window),
		GeneratedAt:    r.GeneratedAt,
		KPIs:           r.KPIs,
		Clients:        r.Clients,
		Mechanics:      orEmpty(r.Mechanics),
		TopServices:    orEmpty(r.TopServices),
		TopParts:       orEmpty(r.TopParts),
		MonthlyRevenue: FromMonthBuckets(r.MonthlyRevenue),
	}
}

func FromWindow(w analytics.Window) PeriodResponse {
	mechanicID := w.MechanicID
	if mechanicID == "" {
		mechanicID = analytics.AllMechanics
	}
	return PeriodResponse{
		StartDate:  w.Start.Format("2006-01-02"),
		EndDate:    w.End.Format("2006-01-02"),
		MechanicID: mechanicID,
	}
}

func FromMonthBuckets(buckets []analytics.MonthBucket) []MonthBucketResponse {
	out := make([]MonthBucketResponse, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, MonthBucketResponse{
			Period:  fmt.Sprintf("%04d-%02d", b.Year, int(b.Month)),
			Year:    b.Year,
			Month:   int(b.Month),
			Revenue: b.Revenue,
		})
	}
	return out
}

func NewList[T any](items []T) ListResponse[T] {
	return ListResponse[T]{Items: orEmpty(items)}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
