package analytics

import (
	"time"

	"npc_garage/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultMonths is the length of the trailing revenue series.
const DefaultMonths = 12

// MonthBucket is one calendar month of net revenue. Labels are left to the
// presentation layer.
type MonthBucket struct {
	Year    int        `json:"year"`
	Month   time.Month `json:"month"`
	Revenue float64    `json:"revenue"`
}

// MonthlyRevenue returns the trailing months calendar months ending at now's
// month, oldest first. Every bucket is present even without data. Only
// COMPLETED estimates count; dates are read in now's location.
func MonthlyRevenue(all []entities.Estimate, costs StockCosts, now time.Time, months int) []MonthBucket {
	if months <= 0 {
		months = DefaultMonths
	}

	loc := now.Location()
	current := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, loc)
	first := current.AddDate(0, -(months - 1), 0)
	firstIndex := monthIndex(first)

	totals := make([]decimal.Decimal, months)
	for _, e := range all {
		if !e.IsCompleted() {
			continue
		}
		i := monthIndex(e.Date.In(loc)) - firstIndex
		if i < 0 || i >= months {
			continue
		}
		totals[i] = totals[i].Add(calculate(e, costs).revenue())
	}

	out := make([]MonthBucket, months)
	for i := range out {
		m := first.AddDate(0, i, 0)
		out[i] = MonthBucket{Year: m.Year(), Month: m.Month(), Revenue: toFloat64(totals[i])}
	}
	return out
}

func monthIndex(t time.Time) int {
	return t.Year()*12 + int(t.Month()) - 1
}
