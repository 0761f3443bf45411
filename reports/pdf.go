package reports

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/jung-kurt/gofpdf"
)

// WritePDF renders the rollup as a paginated document with the same sections
// as the spreadsheet export.
func WritePDF(summary Summary, mode, date string) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Financial Report", "", 1, "C", false, 0, "")
	pdf.Ln(2)

	pdf.SetFont("Arial", "", 12)
	pdf.CellFormat(0, 8, fmt.Sprintf("Filter: %s - %s", strings.ToUpper(mode), date), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Income: %.2f", summary.Income), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Expenses: %.2f", summary.ExpenseTotal), "", 1, "L", false, 0, "")
	pdf.CellFormat(0, 8, fmt.Sprintf("Net Profit: %.2f", summary.Net), "", 1, "L", false, 0, "")
	pdf.Ln(4)

	// Transaction table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(45, 9, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(55, 9, "Customer", "1", 0, "C", false, 0, "")
	pdf.CellFormat(30, 9, "Table", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 9, "Subtotal", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, t := range summary.Transactions {
		pdf.CellFormat(45, 9, t.CreatedAt.Format("02/01/2006 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(55, 9, orDash(t.CustomerName), "1", 0, "L", false, 0, "")
		pdf.CellFormat(30, 9, t.TableNumber, "1", 0, "C", false, 0, "")
		pdf.CellFormat(40, 9, fmt.Sprintf("%.2f", t.Subtotal), "1", 1, "R", false, 0, "")
	}
	pdf.Ln(6)

	// Expense table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(45, 9, "Time", "1", 0, "C", false, 0, "")
	pdf.CellFormat(85, 9, "Description", "1", 0, "C", false, 0, "")
	pdf.CellFormat(40, 9, "Amount", "1", 1, "C", false, 0, "")

	pdf.SetFont("Arial", "", 12)
	for _, e := range summary.Expenses {
		pdf.CellFormat(45, 9, e.CreatedAt.Format("02/01/2006 15:04"), "1", 0, "C", false, 0, "")
		pdf.CellFormat(85, 9, e.Description, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 9, fmt.Sprintf("%.2f", e.Amount), "1", 1, "R", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
