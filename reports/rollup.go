package reports

import (
	"time"

	"github.com/Neeto7/neetocafebackoffice/models"
)

// Transaction is one reported income line.
type Transaction struct {
	CustomerName string    `json:"customer_name"`
	TableNumber  string    `json:"table_number"`
	Subtotal     float64   `json:"subtotal"`
	CreatedAt    time.Time `json:"created_at"`
}

// Summary is the rollup result the report views and exports share.
type Summary struct {
	Income       float64          `json:"income"`
	ExpenseTotal float64          `json:"expense_total"`
	Net          float64          `json:"net"`
	Transactions []Transaction    `json:"transactions"`
	Expenses     []models.Expense `json:"expenses"`
}

// Rollup folds history rows and expenses inside a reporting window into
// income, expense and net figures.
//
// Income lines are grouped by (table_number, customer_name), not by order id:
// two orders at the same table under the same customer name in one window
// merge into a single line with their subtotals summed. That matches the
// books this system has always produced; switching the key to order id would
// silently change reported revenue.
func Rollup(rows []models.OrderHistory, expenses []models.Expense) Summary {
	transactions := make([]Transaction, 0, len(rows))
	index := make(map[string]int, len(rows))

	for _, row := range rows {
		key := row.TableNumber + "-" + row.CustomerName
		if i, ok := index[key]; ok {
			transactions[i].Subtotal += row.Subtotal
			continue
		}
		index[key] = len(transactions)
		transactions = append(transactions, Transaction{
			CustomerName: row.CustomerName,
			TableNumber:  row.TableNumber,
			Subtotal:     row.Subtotal,
			CreatedAt:    row.CreatedAt,
		})
	}

	var income float64
	for _, t := range transactions {
		income += t.Subtotal
	}

	var expenseTotal float64
	for _, e := range expenses {
		expenseTotal += e.Amount
	}

	if expenses == nil {
		expenses = []models.Expense{}
	}

	// Net may be negative; it is reported as-is, never clamped.
	return Summary{
		Income:       income,
		ExpenseTotal: expenseTotal,
		Net:          income - expenseTotal,
		Transactions: transactions,
		Expenses:     expenses,
	}
}
