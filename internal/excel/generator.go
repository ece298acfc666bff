package excel

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"npc_garage/internal/domain/analytics"
)

const (
	SheetSummary   = "Summary"
	SheetMechanics = "Mechanics"
	SheetServices  = "Top services"
	SheetParts     = "Top parts"
	SheetMonthly   = "Monthly revenue"

	dateLayout = "2006-01-02"
)

// Generator renders a computed report as an xlsx workbook. Cells hold raw
// numbers; formatting is left to the spreadsheet.
type Generator struct{}

func NewGenerator() *Generator {
	return &Generator{}
}

func (g *Generator) Generate(report analytics.Report) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", SheetSummary); err != nil {
		return nil, err
	}
	g.writeSummary(file, report)

	for _, sheet := range []string{SheetMechanics, SheetServices, SheetParts, SheetMonthly} {
		if _, err := file.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	g.writeMechanics(file, report.Mechanics)
	g.writeRanking(file, SheetServices, "Service", report.TopServices)
	g.writeRanking(file, SheetParts, "Part", report.TopParts)
	g.writeMonthly(file, report.MonthlyRevenue)

	file.SetActiveSheet(0)
	buf, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (g *Generator) writeSummary(file *excelize.File, report analytics.Report) {
	set := setter(file, SheetSummary)

	rows := []struct {
		label string
		value interface{}
	}{
		{"Period start", report.Window.Start.Format(dateLayout)},
		{"Period end", report.Window.End.Format(dateLayout)},
		{"Mechanic", mechanicLabel(report.Window.MechanicID)},
		{"Total revenue", report.KPIs.TotalRevenue},
		{"Parts revenue", report.KPIs.TotalPartsRevenue},
		{"Labor revenue", report.KPIs.TotalLaborRevenue},
		{"Cost of goods", report.KPIs.TotalCostOfGoods},
		{"Total profit", report.KPIs.TotalProfit},
		{"Profit margin (%)", report.KPIs.ProfitMargin},
		{"Completed estimates", report.KPIs.CompletedCount},
		{"Average revenue", report.KPIs.AverageRevenuePerRecord},
		{"Discounts given", report.KPIs.TotalDiscountsGiven},
		{"Total clients", report.Clients.TotalClients},
		{"New clients", report.Clients.NewClients},
		{"Recurring clients", report.Clients.RecurringClients},
	}
	for i, r := range rows {
		set(fmt.Sprintf("A%d", i+1), r.label)
		set(fmt.Sprintf("B%d", i+1), r.value)
	}

	_ = file.SetColWidth(SheetSummary, "A", "A", 24)
	_ = file.SetColWidth(SheetSummary, "B", "B", 16)
}

func (g *Generator) writeMechanics(file *excelize.File, mechanics []analytics.MechanicPerformance) {
	set := setter(file, SheetMechanics)
	writeHeader(set, "Mechanic", "Labor revenue", "Hours", "Completed", "Avg hourly rate")

	for i, m := range mechanics {
		row := i + 2
		set(fmt.Sprintf("A%d", row), m.Name)
		set(fmt.Sprintf("B%d", row), m.TotalLaborRevenueNet)
		set(fmt.Sprintf("C%d", row), m.TotalHours)
		set(fmt.Sprintf("D%d", row), m.CompletedCount)
		set(fmt.Sprintf("E%d", row), m.AvgHourlyRate)
	}

	_ = file.SetColWidth(SheetMechanics, "A", "A", 28)
	_ = file.SetColWidth(SheetMechanics, "B", "E", 16)
}

func (g *Generator) writeRanking(file *excelize.File, sheet, label string, items []analytics.RankedItem) {
	set := setter(file, sheet)
	writeHeader(set, label, "Profit")

	for i, it := range items {
		row := i + 2
		set(fmt.Sprintf("A%d", row), it.Label)
		set(fmt.Sprintf("B%d", row), it.Profit)
	}

	_ = file.SetColWidth(sheet, "A", "A", 32)
	_ = file.SetColWidth(sheet, "B", "B", 16)
}

func (g *Generator) writeMonthly(file *excelize.File, buckets []analytics.MonthBucket) {
	set := setter(file, SheetMonthly)
	writeHeader(set, "Year", "Month", "Revenue")

	for i, b := range buckets {
		row := i + 2
		set(fmt.Sprintf("A%d", row), b.Year)
		set(fmt.Sprintf("B%d", row), int(b.Month))
		set(fmt.Sprintf("C%d", row), b.Revenue)
	}
}

func setter(file *excelize.File, sheet string) func(cell string, value interface{}) {
	return func(cell string, value interface{}) {
		_ = file.SetCellValue(sheet, cell, value)
	}
}

func writeHeader(set func(string, interface{}), headers ...string) {
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		set(cell, h)
	}
}

func mechanicLabel(id string) string {
	if id == "" {
		return analytics.AllMechanics
	}
	return id
}
