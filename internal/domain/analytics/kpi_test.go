package analytics

import (
	"testing"

	"npc_garage/internal/domain/entities"
)

func TestComputeKPIs(t *testing.T) {
	costs := NewStockCosts([]entities.StockItem{{ID: "stk-1", PurchasePrice: 30}})

	a := completed("a", day(2024, 6, 1))
	a.Parts = []entities.Part{{Name: "Filter", Quantity: 2, Price: 50, StockID: "stk-1"}}
	a.Labor = []entities.LaborLine{{Description: "Oil change", Hours: 2, Rate: 100}}
	a.PartsDiscountPercent = pct(10)

	b := completed("b", day(2024, 6, 2))
	b.Parts = []entities.Part{{Name: "Wiper", Quantity: 1, Price: 20}}
	b.Labor = []entities.LaborLine{{Description: "Check", Hours: 1, Rate: 50}}
	b.LaborDiscountPercent = pct(20)

	draft := a
	draft.Status = entities.EstimateStatusDraft

	k := ComputeKPIs([]entities.Estimate{a, b, draft}, costs)

	if k.CompletedCount != 2 {
		t.Fatalf("expected 2 completed, got %d", k.CompletedCount)
	}
	if k.TotalPartsRevenue != 110 || k.TotalLaborRevenue != 240 || k.TotalRevenue != 350 {
		t.Fatalf("unexpected revenue: %+v", k)
	}
	if k.TotalCostOfGoods != 60 || k.TotalProfit != 290 {
		t.Fatalf("unexpected profit: %+v", k)
	}
	if k.TotalDiscountsGiven != 20 {
		t.Fatalf("expected discounts 20, got %v", k.TotalDiscountsGiven)
	}
	if k.AverageRevenuePerRecord != 175 {
		t.Fatalf("expected average 175, got %v", k.AverageRevenuePerRecord)
	}
	assertClose(t, "margin", k.ProfitMargin, 290.0/350.0*100)
}

func TestComputeKPIs_ZeroGuards(t *testing.T) {
	k := ComputeKPIs(nil, nil)
	if k != (KPIs{}) {
		t.Fatalf("expected zero bundle, got %+v", k)
	}

	free := completed("free", day(2024, 6, 1))
	free.Labor = []entities.LaborLine{{Description: "Warranty", Hours: 1, Rate: 80}}
	free.LaborDiscountPercent = pct(100)

	k = ComputeKPIs([]entities.Estimate{free}, nil)
	if k.CompletedCount != 1 || k.TotalRevenue != 0 {
		t.Fatalf("unexpected bundle: %+v", k)
	}
	if k.ProfitMargin != 0 || k.AverageRevenuePerRecord != 0 {
		t.Fatalf("expected zero margin and average, got %+v", k)
	}
	if k.TotalDiscountsGiven != 80 {
		t.Fatalf("expected discount 80, got %v", k.TotalDiscountsGiven)
	}
}
