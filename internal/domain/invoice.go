package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// Money is a decimal currency amount. The server serializes decimals as
// JSON strings ("350.00"); some tooling sends plain numbers. Both decode.
type Money float64

func (m *Money) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		v, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid amount %q: %w", s, err)
		}
		*m = Money(v)
		return nil
	}
	var v float64
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	*m = Money(v)
	return nil
}

// Invoice is one billing entry, scoped to a single month per student.
// Invoices are created out-of-band; the client only reads them and
// mutates their status.
type Invoice struct {
	ID          int           `json:"id"`
	StudentID   int           `json:"student"`
	StudentName string        `json:"student_name"`
	Month       string        `json:"month"`    // first day of the billed month, YYYY-MM-DD
	DueDate     string        `json:"due_date"` // YYYY-MM-DD, "" when unset
	Amount      Money         `json:"amount"`
	Status      InvoiceStatus `json:"status"`
	Notes       string        `json:"notes"`
}

// Receivable reports whether the invoice still counts toward the
// outstanding total.
func (i Invoice) Receivable() bool {
	return ReceivableStatuses[i.Status]
}

// ReceivableTotal sums the amounts of invoices that are still outstanding
// (pending, overdue, or flagged for reminder). Paid invoices are excluded.
func ReceivableTotal(invoices []Invoice) Money {
	var total Money
	for _, inv := range invoices {
		if inv.Receivable() {
			total += inv.Amount
		}
	}
	return total
}
