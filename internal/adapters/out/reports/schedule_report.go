// Package reports renders derived fleet views into downloadable workbooks.
// Reports are a presentation of the scheduler's output; all figures come
// from the domain services and are never recomputed here.
package reports

import (
	"fmt"

	"gasfleet/internal/core/domain/services"

	"github.com/xuri/excelize/v2"
)

var scheduleHeaders = []string{
	"Plate",
	"Status",
	"Orders",
	"Allocated (kg)",
	"Capacity (kg)",
	"Available (kg)",
	"Utilization (%)",
	"Overallocated",
	"Maintenance Due",
	"Fuel Sufficient",
}

// BuildDailyScheduleWorkbook renders one row per truck of the daily
// schedule. The caller owns the returned file and must Close it.
func BuildDailyScheduleWorkbook(schedules []services.DailySchedule) (*excelize.File, string, error) {
	f := excelize.NewFile()
	sheet := "Schedule"
	f.SetSheetName("Sheet1", sheet)

	boldStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	for i, h := range scheduleHeaders {
		col, _ := excelize.ColumnNumberToName(i + 1)
		cell := col + "1"
		f.SetCellValue(sheet, cell, h)
		f.SetCellStyle(sheet, cell, cell, boldStyle)
	}

	var totalAllocated, totalCapacity float64
	for rowIdx, schedule := range schedules {
		row := rowIdx + 2
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), schedule.Truck.Plate())
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), schedule.Truck.Status().String())
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), schedule.Capacity.OrdersCount)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), schedule.Capacity.AllocatedKg)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", row), schedule.Capacity.CapacityKg)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", row), schedule.Capacity.AvailableKg)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", row), schedule.Capacity.UtilizationPct)
		f.SetCellValue(sheet, fmt.Sprintf("H%d", row), yesNo(schedule.Capacity.IsOverallocated))
		f.SetCellValue(sheet, fmt.Sprintf("I%d", row), yesNo(schedule.MaintenanceDue))
		f.SetCellValue(sheet, fmt.Sprintf("J%d", row), yesNo(schedule.FuelSufficient))

		totalAllocated += schedule.Capacity.AllocatedKg
		totalCapacity += schedule.Capacity.CapacityKg
	}

	summaryRow := len(schedules) + 2
	summaryStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellValue(sheet, fmt.Sprintf("A%d", summaryRow), "Fleet")
	f.SetCellValue(sheet, fmt.Sprintf("C%d", summaryRow), fmt.Sprintf("Trucks: %d", len(schedules)))
	f.SetCellValue(sheet, fmt.Sprintf("D%d", summaryRow), totalAllocated)
	f.SetCellValue(sheet, fmt.Sprintf("E%d", summaryRow), totalCapacity)
	f.SetCellStyle(sheet, fmt.Sprintf("A%d", summaryRow), fmt.Sprintf("J%d", summaryRow), summaryStyle)

	colWidths := []float64{14, 12, 8, 14, 14, 14, 14, 14, 16, 14}
	for i, w := range colWidths {
		col, _ := excelize.ColumnNumberToName(i + 1)
		f.SetColWidth(sheet, col, col, w)
	}

	var filename string
	if len(schedules) > 0 {
		filename = fmt.Sprintf("schedule_%s.xlsx", schedules[0].Date.Format("2006-01-02"))
	} else {
		filename = "schedule.xlsx"
	}

	return f, filename, nil
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
