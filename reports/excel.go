package reports

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sheetName = "Report"

// WriteExcel renders the rollup as a single-sheet workbook: header block,
// income/expense/net summary, transaction table, expense table.
func WriteExcel(summary Summary, mode, date string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return nil, err
	}

	row := 1
	writeRow := func(values ...interface{}) error {
		cell, err := excelize.CoordinatesToCellName(1, row)
		if err != nil {
			return err
		}
		row++
		return f.SetSheetRow(sheetName, cell, &values)
	}

	rows := [][]interface{}{
		{"Financial Report"},
		{"Filter", fmt.Sprintf("%s - %s", strings.ToUpper(mode), date)},
		{},
		{"Income", summary.Income},
		{"Expenses", summary.ExpenseTotal},
		{"Net Profit", summary.Net},
		{},
		{"Transactions"},
		{"Time", "Customer", "Table", "Subtotal"},
	}
	for _, t := range summary.Transactions {
		rows = append(rows, []interface{}{
			t.CreatedAt.Format("02/01/2006 15:04"),
			orDash(t.CustomerName),
			t.TableNumber,
			t.Subtotal,
		})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Expenses"},
		[]interface{}{"Time", "Description", "Amount"},
	)
	for _, e := range summary.Expenses {
		rows = append(rows, []interface{}{
			e.CreatedAt.Format("02/01/2006 15:04"),
			e.Description,
			e.Amount,
		})
	}

	for _, r := range rows {
		if err := writeRow(r...); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
