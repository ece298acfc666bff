package excel

import (
	"bytes"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"npc_garage/internal/domain/analytics"
)

func TestGenerator_Generate(t *testing.T) {
	report := analytics.Report{
		Window: analytics.Window{
			Start:      time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			End:        time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
			MechanicID: "m1",
		},
		KPIs:    analytics.KPIs{TotalRevenue: 160, CompletedCount: 1},
		Clients: analytics.ClientSegments{TotalClients: 2, NewClients: 1},
		Mechanics: []analytics.MechanicPerformance{
			{ID: "m1", Name: "Carlos", TotalLaborRevenueNet: 100, TotalHours: 2, CompletedCount: 1, AvgHourlyRate: 50},
		},
		TopServices: []analytics.RankedItem{{Label: "Oil change", Profit: 100}},
		TopParts:    []analytics.RankedItem{{Label: "Filter", Profit: 40}},
		MonthlyRevenue: []analytics.MonthBucket{
			{Year: 2024, Month: time.February, Revenue: 0},
			{Year: 2024, Month: time.March, Revenue: 160},
		},
	}

	data, err := NewGenerator().Generate(report)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	want := []string{SheetSummary, SheetMechanics, SheetServices, SheetParts, SheetMonthly}
	got := f.GetSheetList()
	if len(got) != len(want) {
		t.Fatalf("expected sheets %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected sheets %v, got %v", want, got)
		}
	}

	cases := []struct {
		sheet, cell, want string
	}{
		{SheetSummary, "B1", "2024-03-01"},
		{SheetSummary, "B3", "m1"},
		{SheetSummary, "B4", "160"},
		{SheetSummary, "B14", "1"},
		{SheetMechanics, "A2", "Carlos"},
		{SheetMechanics, "E2", "50"},
		{SheetServices, "A2", "Oil change"},
		{SheetParts, "B2", "40"},
		{SheetMonthly, "B3", "3"},
		{SheetMonthly, "C3", "160"},
	}
	for _, tc := range cases {
		v, err := f.GetCellValue(tc.sheet, tc.cell)
		if err != nil {
			t.Fatalf("%s!%s: %v", tc.sheet, tc.cell, err)
		}
		if v != tc.want {
			t.Fatalf("%s!%s: expected %q, got %q", tc.sheet, tc.cell, tc.want, v)
		}
	}
}
