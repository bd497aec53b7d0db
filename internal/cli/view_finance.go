package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvbarbosa/lousa/internal/cli/formatter"
	"github.com/mvbarbosa/lousa/internal/dateutil"
	"github.com/mvbarbosa/lousa/internal/domain"
)

// financeView lists the viewed month's invoices with a receivable total.
// Digits 1 to 4 set the status of the invoice under the cursor.
type financeView struct {
	state  *SharedState
	cursor int
}

func newFinanceView(state *SharedState) *financeView {
	return &financeView{state: state}
}

func (v *financeView) Init() tea.Cmd {
	return load(v.state.Store.LoadInvoicesForMonth)
}

func (v *financeView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if n := len(v.state.Store.Invoices()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *financeView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	invoices := v.state.Store.Invoices()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(invoices)-1 {
			v.cursor++
		}

	case "[":
		return v, v.changeMonth(-1)
	case "]":
		return v, v.changeMonth(1)

	case "1":
		return v, v.setStatus(invoices, domain.InvoicePaid)
	case "2":
		return v, v.setStatus(invoices, domain.InvoicePending)
	case "3":
		return v, v.setStatus(invoices, domain.InvoiceOverdue)
	case "4":
		return v, v.setStatus(invoices, domain.InvoiceRemind)

	case "r":
		return v, load(v.state.Store.LoadInvoicesForMonth)
	}

	return v, nil
}

func (v *financeView) changeMonth(delta int) tea.Cmd {
	return load(func(ctx context.Context) error {
		return v.state.Store.ChangeMonth(ctx, delta)
	})
}

func (v *financeView) setStatus(invoices []domain.Invoice, status domain.InvoiceStatus) tea.Cmd {
	if v.cursor < 0 || v.cursor >= len(invoices) {
		return nil
	}
	inv := invoices[v.cursor]
	if inv.Status == status {
		return nil
	}
	return mutate("Cobrança marcada como "+strings.ToLower(formatter.InvoiceStatusLabel(status))+".",
		func(ctx context.Context) error {
			return v.state.Store.UpdateInvoiceStatus(ctx, inv.ID, status)
		})
}

func (v *financeView) View() string {
	invoices := v.state.Store.Invoices()
	if len(invoices) == 0 {
		return formatter.Dim("Nenhuma cobrança neste mês.")
	}

	var b strings.Builder
	for i, inv := range invoices {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("▸ ")
		}

		due := inv.DueDate
		if due == "" {
			due = "sem vencimento"
		}
		b.WriteString(prefix + formatter.PadRight(inv.StudentName, 24))
		b.WriteString(formatter.Dim(formatter.PadRight(due, 14)))
		b.WriteString(formatter.PadRight(formatter.BRL(inv.Amount), 14))
		b.WriteString(formatter.InvoiceStatusPill(inv.Status))
		b.WriteString("\n")
		if inv.Notes != "" {
			b.WriteString("    " + formatter.Dim(inv.Notes) + "\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(formatter.Bold("A receber: " + formatter.BRL(v.state.Store.ReceivableTotal())))
	b.WriteString(formatter.Dim("  (pendentes, vencidas e lembretes; pagas não contam)"))

	return b.String()
}

func (v *financeView) ID() ViewID { return ViewFinance }

func (v *financeView) Title() string {
	return "Financeiro · " + dateutil.MonthLabel(v.state.Store.Month())
}

func (v *financeView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "pago")),
		key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "pendente")),
		key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "vencido")),
		key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "lembrar")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "mês")),
	}
}
