package analytics

import (
	"sort"

	"npc_garage/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// DefaultTopN is the ranking size used when the caller asks for n <= 0.
const DefaultTopN = 5

type RankedItem struct {
	Label  string  `json:"label"`
	Profit float64 `json:"profit"`
}

// ranking accumulates totals per label, remembering first-seen order.
type ranking struct {
	order  []string
	totals map[string]decimal.Decimal
}

func newRanking() *ranking {
	return &ranking{totals: make(map[string]decimal.Decimal)}
}

func (r *ranking) add(label string, v decimal.Decimal) {
	cur, ok := r.totals[label]
	if !ok {
		r.order = append(r.order, label)
		cur = decimal.Zero
	}
	r.totals[label] = cur.Add(v)
}

func (r *ranking) top(n int, eligible func(decimal.Decimal) bool) []RankedItem {
	if n <= 0 {
		n = DefaultTopN
	}

	labels := make([]string, 0, len(r.order))
	for _, label := range r.order {
		if eligible != nil && !eligible(r.totals[label]) {
			continue
		}
		labels = append(labels, label)
	}

	sort.SliceStable(labels, func(i, j int) bool {
		return r.totals[labels[i]].GreaterThan(r.totals[labels[j]])
	})
	if len(labels) > n {
		labels = labels[:n]
	}

	out := make([]RankedItem, len(labels))
	for i, label := range labels {
		out[i] = RankedItem{Label: label, Profit: toFloat64(r.totals[label])}
	}
	return out
}

// TopServices ranks labor lines by description. Labor has no cost basis, so
// a line's profit is its net amount after the estimate's labor discount.
func TopServices(filtered []entities.Estimate, n int) []RankedItem {
	r := newRanking()
	for _, e := range filtered {
		if !e.IsCompleted() {
			continue
		}
		factor := discountFactor(e.LaborDiscountPercent)
		for _, l := range e.Labor {
			r.add(l.Description, lineAmount(l.Hours, l.Rate).Mul(factor))
		}
	}
	return r.top(n, nil)
}

// TopParts ranks parts by name using their net margin.
//
// Only parts whose StockID resolves to a purchase price take part; parts
// without a cost basis are left out of the ranking entirely. Labels whose
// aggregate profit is not strictly positive are dropped.
func TopParts(filtered []entities.Estimate, costs StockCosts, n int) []RankedItem {
	r := newRanking()
	for _, e := range filtered {
		if !e.IsCompleted() {
			continue
		}
		factor := discountFactor(e.PartsDiscountPercent)
		for _, p := range e.Parts {
			cost, ok := costs.PurchasePrice(p)
			if !ok {
				continue
			}
			sale := lineAmount(p.Quantity, p.Price).Mul(factor)
			r.add(p.Name, sale.Sub(lineAmount(p.Quantity, cost)))
		}
	}
	return r.top(n, decimal.Decimal.IsPositive)
}
