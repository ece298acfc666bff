package analytics

import (
	"sort"

	"npc_garage/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type MechanicPerformance struct {
	ID                   string  `json:"id"`
	Name                 string  `json:"name"`
	TotalLaborRevenueNet float64 `json:"total_labor_revenue_net"`
	TotalHours           float64 `json:"total_hours"`
	CompletedCount       int     `json:"completed_count"`
	AvgHourlyRate        float64 `json:"avg_hourly_rate"`
}

type mechanicTotals struct {
	revenue decimal.Decimal
	hours   decimal.Decimal
	records int
}

// AttributeMechanics splits each estimate's net labor revenue and hours
// evenly among its assigned mechanics and aggregates them per mechanic.
//
// Every mechanic of the roster is returned, zeroed when idle, sorted by net
// labor revenue descending; ties keep roster order. Assignments to IDs that
// are not in the roster still consume their share but are not reported.
// Empty IDs are not assignments and repeated IDs count once.
func AttributeMechanics(filtered []entities.Estimate, mechanics []entities.Mechanic) []MechanicPerformance {
	totals := make(map[string]*mechanicTotals, len(mechanics))
	for _, m := range mechanics {
		if _, ok := totals[m.ID]; !ok {
			totals[m.ID] = &mechanicTotals{}
		}
	}

	for _, e := range filtered {
		assigned := uniqueIDs(e.MechanicIDs)
		if len(assigned) == 0 {
			continue
		}

		hours := decimal.Zero
		for _, l := range e.Labor {
			hours = hours.Add(decimal.NewFromFloat(l.Hours))
		}
		netLabor := calculate(e, nil).netLabor

		k := decimal.NewFromInt(int64(len(assigned)))
		revenueShare := netLabor.Div(k)
		hoursShare := hours.Div(k)

		for _, id := range assigned {
			t, ok := totals[id]
			if !ok {
				continue
			}
			t.revenue = t.revenue.Add(revenueShare)
			t.hours = t.hours.Add(hoursShare)
			t.records++
		}
	}

	type row struct {
		perf    MechanicPerformance
		revenue decimal.Decimal
	}
	rows := make([]row, 0, len(mechanics))
	reported := make(map[string]struct{}, len(mechanics))
	for _, m := range mechanics {
		if _, dup := reported[m.ID]; dup {
			continue
		}
		reported[m.ID] = struct{}{}

		t := totals[m.ID]
		perf := MechanicPerformance{
			ID:                   m.ID,
			Name:                 m.Name,
			TotalLaborRevenueNet: toFloat64(t.revenue),
			TotalHours:           toFloat64(t.hours),
			CompletedCount:       t.records,
		}
		if t.hours.IsPositive() {
			perf.AvgHourlyRate = toFloat64(t.revenue.Div(t.hours))
		}
		rows = append(rows, row{perf: perf, revenue: t.revenue})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].revenue.GreaterThan(rows[j].revenue)
	})

	out := make([]MechanicPerformance, len(rows))
	for i, r := range rows {
		out[i] = r.perf
	}
	return out
}

// uniqueIDs drops blanks and repeated IDs, keeping first occurrence order.
func uniqueIDs(ids []string) []string {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
