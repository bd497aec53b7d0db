package cli

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mvbarbosa/lousa/internal/billing"
	"github.com/mvbarbosa/lousa/internal/cli/formatter"
)

// billingView previews the payment reminder for one student and lets the
// tutor tweak the fields before copying the message or a WhatsApp link.
type billingView struct {
	state     *SharedState
	studentID int
	fields    billing.Fields
}

func newBillingView(state *SharedState, studentID int) *billingView {
	v := &billingView{state: state, studentID: studentID}
	if s, ok := state.Store.StudentByID(studentID); ok {
		v.fields = billing.Populate(s)
	}
	return v
}

func (v *billingView) Init() tea.Cmd { return nil }

func (v *billingView) message() (name, msg string, ok bool) {
	s, found := v.state.Store.StudentByID(v.studentID)
	if !found {
		return "", "", false
	}
	return s.Name, billing.Message(s.Name, v.fields), true
}

func (v *billingView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "e":
		return v, pushView(v.editForm())

	case "c":
		_, text, ok := v.message()
		if !ok {
			return v, nil
		}
		if err := billing.CopyToClipboard(text); err != nil {
			return v, notifyErr(err)
		}
		return v, notify("Mensagem copiada para a área de transferência.")

	case "w":
		s, found := v.state.Store.StudentByID(v.studentID)
		if !found {
			return v, nil
		}
		phone, err := billing.NormalizePhone(s.Phone)
		if err != nil {
			return v, notifyErr(err)
		}
		_, text, _ := v.message()
		link := billing.WhatsAppLink(phone, text)
		if err := billing.CopyToClipboard(link); err != nil {
			return v, notifyErr(err)
		}
		return v, notify("Link do WhatsApp copiado para a área de transferência.")
	}

	return v, nil
}

// editForm adjusts the template fields for this message only. Nothing is
// written to the server; permanent changes belong in the student form.
func (v *billingView) editForm() View {
	f := v.fields
	done := strconv.Itoa(f.Done)
	total := strconv.Itoa(f.Total)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Plano").Value(&f.Plan),
			huh.NewInput().Title("Parcelamento").Value(&f.Installments),
			huh.NewInput().Title("Valor (R$)").Value(&f.Value),
			huh.NewInput().Title("Aulas concluídas").Validate(validateNonNegativeInt).Value(&done),
			huh.NewInput().Title("Total de aulas").Validate(validateNonNegativeInt).Value(&total),
			huh.NewInput().Title("Chave Pix").Value(&f.PixKey),
		),
	).WithTheme(lousaHuhTheme()).WithShowHelp(false)

	return newWizardView(v.state, "Ajustar cobrança", form, func() tea.Cmd {
		f.Done = parseNonNegativeInt(done)
		f.Total = parseNonNegativeInt(total)
		v.fields = f
		return notify("Campos da mensagem atualizados.")
	})
}

func (v *billingView) View() string {
	name, text, ok := v.message()
	if !ok {
		return formatter.Dim("Aluno não encontrado.")
	}

	var b strings.Builder
	b.WriteString(formatter.Header("Cobrança · " + name))
	b.WriteString("\n\n")
	for _, line := range strings.Split(text, "\n") {
		b.WriteString("  " + line + "\n")
	}

	if s, found := v.state.Store.StudentByID(v.studentID); found && s.Phone != "" {
		if phone, err := billing.NormalizePhone(s.Phone); err == nil {
			b.WriteString("\n" + formatter.Dim("WhatsApp: wa.me/"+phone))
		}
	}

	return strings.TrimRight(b.String(), "\n")
}

func (v *billingView) ID() ViewID    { return ViewBilling }
func (v *billingView) Title() string { return "Cobrança" }
func (v *billingView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "ajustar campos")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copiar mensagem")),
		key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "copiar link")),
	}
}
