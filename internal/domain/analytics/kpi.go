package analytics

import (
	"npc_garage/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// KPIs is the headline bundle of the financial dashboard.
type KPIs struct {
	TotalRevenue            float64 `json:"total_revenue"`
	TotalPartsRevenue       float64 `json:"total_parts_revenue"`
	TotalLaborRevenue       float64 `json:"total_labor_revenue"`
	TotalCostOfGoods        float64 `json:"total_cost_of_goods"`
	TotalProfit             float64 `json:"total_profit"`
	ProfitMargin            float64 `json:"profit_margin"`
	CompletedCount          int     `json:"completed_count"`
	AverageRevenuePerRecord float64 `json:"average_revenue_per_record"`
	TotalDiscountsGiven     float64 `json:"total_discounts_given"`
}

// ComputeKPIs sums the per-estimate breakdowns of an already filtered set.
// Records that are not COMPLETED are ignored.
func ComputeKPIs(filtered []entities.Estimate, costs StockCosts) KPIs {
	var parts, labor, cogs, profit, discounts decimal.Decimal
	count := 0

	for _, e := range filtered {
		if !e.IsCompleted() {
			continue
		}
		a := calculate(e, costs)
		parts = parts.Add(a.netParts)
		labor = labor.Add(a.netLabor)
		cogs = cogs.Add(a.cogs)
		profit = profit.Add(a.profit())
		discounts = discounts.Add(a.discount())
		count++
	}

	revenue := parts.Add(labor)
	k := KPIs{
		TotalRevenue:        toFloat64(revenue),
		TotalPartsRevenue:   toFloat64(parts),
		TotalLaborRevenue:   toFloat64(labor),
		TotalCostOfGoods:    toFloat64(cogs),
		TotalProfit:         toFloat64(profit),
		CompletedCount:      count,
		TotalDiscountsGiven: toFloat64(discounts),
	}
	if !revenue.IsZero() {
		k.ProfitMargin = toFloat64(profit.Div(revenue).Mul(hundred))
	}
	if count > 0 {
		k.AverageRevenuePerRecord = toFloat64(revenue.Div(decimal.NewFromInt(int64(count))))
	}
	return k
}
