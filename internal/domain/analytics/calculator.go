// Package analytics turns a collection of estimates into the financial
// figures shown on the shop dashboard.
//
// Every function in this package is pure: callers hand in the full record
// collections and receive plain aggregate values back. Nothing is cached,
// fetched or mutated here, so all entry points are safe for concurrent use.
package analytics

import (
	"npc_garage/internal/domain/entities"

	"github.com/shopspring/decimal"
)

var (
	one     = decimal.NewFromInt(1)
	hundred = decimal.NewFromInt(100)
)

// StockCosts resolves a part's StockID to the stock item's purchase price.
type StockCosts map[string]float64

func NewStockCosts(items []entities.StockItem) StockCosts {
	costs := make(StockCosts, len(items))
	for _, it := range items {
		if it.ID == "" {
			continue
		}
		costs[it.ID] = it.PurchasePrice
	}
	return costs
}

// PurchasePrice returns the unit cost of the part and whether it could be
// resolved. Parts without a StockID, or pointing to an unknown item, have no
// cost basis.
func (c StockCosts) PurchasePrice(p entities.Part) (float64, bool) {
	if p.StockID == "" || c == nil {
		return 0, false
	}
	v, ok := c[p.StockID]
	return v, ok
}

// Breakdown is the per-estimate decomposition of revenue and profit.
//
// Profit assumes labor carries no cost basis (100% margin) and parts without
// a resolvable purchase price cost nothing.
type Breakdown struct {
	GrossParts       float64 `json:"gross_parts"`
	NetParts         float64 `json:"net_parts"`
	GrossLabor       float64 `json:"gross_labor"`
	NetLabor         float64 `json:"net_labor"`
	PartsCostOfGoods float64 `json:"parts_cost_of_goods"`
	DiscountAmount   float64 `json:"discount_amount"`
	Revenue          float64 `json:"revenue"`
	Profit           float64 `json:"profit"`
}

// Calculate derives the gross/net figures of a single estimate. Status is
// not checked here; filtering COMPLETED records is up to the caller.
func Calculate(e entities.Estimate, costs StockCosts) Breakdown {
	return calculate(e, costs).breakdown()
}

type amounts struct {
	grossParts decimal.Decimal
	netParts   decimal.Decimal
	grossLabor decimal.Decimal
	netLabor   decimal.Decimal
	cogs       decimal.Decimal
}

func calculate(e entities.Estimate, costs StockCosts) amounts {
	a := amounts{
		grossParts: decimal.Zero,
		grossLabor: decimal.Zero,
		cogs:       decimal.Zero,
	}

	for _, p := range e.Parts {
		a.grossParts = a.grossParts.Add(lineAmount(p.Quantity, p.Price))
		if cost, ok := costs.PurchasePrice(p); ok {
			a.cogs = a.cogs.Add(lineAmount(p.Quantity, cost))
		}
	}
	for _, l := range e.Labor {
		a.grossLabor = a.grossLabor.Add(lineAmount(l.Hours, l.Rate))
	}

	a.netParts = a.grossParts.Mul(discountFactor(e.PartsDiscountPercent))
	a.netLabor = a.grossLabor.Mul(discountFactor(e.LaborDiscountPercent))
	return a
}

func (a amounts) revenue() decimal.Decimal {
	return a.netParts.Add(a.netLabor)
}

func (a amounts) profit() decimal.Decimal {
	return a.netParts.Sub(a.cogs).Add(a.netLabor)
}

func (a amounts) discount() decimal.Decimal {
	return a.grossParts.Sub(a.netParts).Add(a.grossLabor.Sub(a.netLabor))
}

func (a amounts) breakdown() Breakdown {
	return Breakdown{
		GrossParts:       toFloat64(a.grossParts),
		NetParts:         toFloat64(a.netParts),
		GrossLabor:       toFloat64(a.grossLabor),
		NetLabor:         toFloat64(a.netLabor),
		PartsCostOfGoods: toFloat64(a.cogs),
		DiscountAmount:   toFloat64(a.discount()),
		Revenue:          toFloat64(a.revenue()),
		Profit:           toFloat64(a.profit()),
	}
}

func lineAmount(qty, unit float64) decimal.Decimal {
	return decimal.NewFromFloat(qty).Mul(decimal.NewFromFloat(unit))
}

// discountFactor returns (1 - pct/100). A nil percentage means no discount.
func discountFactor(pct *float64) decimal.Decimal {
	if pct == nil {
		return one
	}
	return one.Sub(decimal.NewFromFloat(*pct).Div(hundred))
}

func toFloat64(d decimal.Decimal) float64 {
	return d.InexactFloat64()
}
