package analytics

import (
	"time"

	"npc_garage/internal/domain/entities"
)

// ReportInput carries the full collections plus the reporting parameters.
// Estimates must be the whole history: client segmentation and the monthly
// series read it unfiltered.
type ReportInput struct {
	Estimates []entities.Estimate
	Stock     []entities.StockItem
	Mechanics []entities.Mechanic
	Window    Window
	Now       time.Time
	TopN      int
	Months    int
}

// Report is the immutable result handed to the presentation layer.
type Report struct {
	Window         Window                `json:"-"`
	GeneratedAt    time.Time             `json:"generated_at"`
	KPIs           KPIs                  `json:"kpis"`
	Clients        ClientSegments        `json:"clients"`
	Mechanics      []MechanicPerformance `json:"mechanics"`
	TopServices    []RankedItem          `json:"top_services"`
	TopParts       []RankedItem          `json:"top_parts"`
	MonthlyRevenue []MonthBucket         `json:"monthly_revenue"`
}

// BuildReport filters the history once and composes every aggregate.
func BuildReport(in ReportInput) Report {
	costs := NewStockCosts(in.Stock)
	filtered := Filter(in.Estimates, in.Window)

	return Report{
		Window:         in.Window,
		GeneratedAt:    in.Now,
		KPIs:           ComputeKPIs(filtered, costs),
		Clients:        SegmentClients(in.Estimates, filtered, in.Window),
		Mechanics:      AttributeMechanics(filtered, in.Mechanics),
		TopServices:    TopServices(filtered, in.TopN),
		TopParts:       TopParts(filtered, costs, in.TopN),
		MonthlyRevenue: MonthlyRevenue(in.Estimates, costs, in.Now, in.Months),
	}
}
