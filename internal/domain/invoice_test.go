package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMoney_UnmarshalJSON_String(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`"350.00"`), &m))
	assert.InDelta(t, 350.0, float64(m), 0.001)
}

func TestMoney_UnmarshalJSON_Number(t *testing.T) {
	var m Money
	require.NoError(t, json.Unmarshal([]byte(`199.9`), &m))
	assert.InDelta(t, 199.9, float64(m), 0.001)
}

func TestMoney_UnmarshalJSON_InvalidString(t *testing.T) {
	var m Money
	assert.Error(t, json.Unmarshal([]byte(`"abc"`), &m))
}

func TestInvoice_Receivable(t *testing.T) {
	assert.True(t, Invoice{Status: InvoicePending}.Receivable())
	assert.True(t, Invoice{Status: InvoiceOverdue}.Receivable())
	assert.True(t, Invoice{Status: InvoiceRemind}.Receivable())
	assert.False(t, Invoice{Status: InvoicePaid}.Receivable())
}

func TestReceivableTotal_ExcludesPaid(t *testing.T) {
	invoices := []Invoice{
		{Amount: 350, Status: InvoicePending},
		{Amount: 200, Status: InvoicePaid},
		{Amount: 150, Status: InvoiceOverdue},
		{Amount: 100, Status: InvoiceRemind},
	}
	assert.InDelta(t, 600.0, float64(ReceivableTotal(invoices)), 0.001)
}

func TestReceivableTotal_Empty(t *testing.T) {
	assert.Zero(t, ReceivableTotal(nil))
}
