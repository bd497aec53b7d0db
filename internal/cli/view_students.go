package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvbarbosa/lousa/internal/cli/formatter"
	"github.com/mvbarbosa/lousa/internal/domain"
)

// studentsView is the roster panel. Inactive students are listed last
// and dimmed; they stay reachable so they can be reactivated.
type studentsView struct {
	state  *SharedState
	cursor int
}

func newStudentsView(state *SharedState) *studentsView {
	return &studentsView{state: state}
}

func (v *studentsView) Init() tea.Cmd {
	return load(v.state.Store.LoadStudents)
}

// roster returns active students first, inactive after.
func (v *studentsView) roster() []domain.Student {
	all := v.state.Store.Students()
	out := make([]domain.Student, 0, len(all))
	for _, s := range all {
		if s.Active {
			out = append(out, s)
		}
	}
	for _, s := range all {
		if !s.Active {
			out = append(out, s)
		}
	}
	return out
}

func (v *studentsView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if n := len(v.roster()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *studentsView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	roster := v.roster()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(roster)-1 {
			v.cursor++
		}

	case "a":
		return v, pushView(newStudentForm(v.state, 0))

	case "e":
		if s, ok := v.current(roster); ok {
			return v, pushView(newStudentForm(v.state, s.ID))
		}

	case "b", "enter":
		if s, ok := v.current(roster); ok && s.Active {
			return v, pushView(newBillingView(v.state, s.ID))
		}

	case "i":
		s, ok := v.current(roster)
		if !ok {
			return v, nil
		}
		if !s.Active {
			return v, mutate(fmt.Sprintf("%s reativado(a).", s.Name), func(ctx context.Context) error {
				return v.state.Store.SetStudentActive(ctx, s.ID, true)
			})
		}
		return v, pushView(confirmView(v.state, "Inativar aluno",
			fmt.Sprintf("Inativar %s? O cadastro é mantido, mas some das listas de seleção.", s.Name),
			func() tea.Cmd {
				return mutate(fmt.Sprintf("%s inativado(a).", s.Name), func(ctx context.Context) error {
					return v.state.Store.SetStudentActive(ctx, s.ID, false)
				})
			}))

	case "r":
		return v, load(v.state.Store.LoadStudents)
	}

	return v, nil
}

func (v *studentsView) current(roster []domain.Student) (domain.Student, bool) {
	if v.cursor < 0 || v.cursor >= len(roster) {
		return domain.Student{}, false
	}
	return roster[v.cursor], true
}

func (v *studentsView) View() string {
	roster := v.roster()
	if len(roster) == 0 {
		return formatter.Dim("Nenhum aluno cadastrado. Pressione a para adicionar.")
	}

	var b strings.Builder
	for i, s := range roster {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("▸ ")
		}

		name := formatter.Bold(s.Name)
		if !s.Active {
			name = formatter.Dim(s.Name + " (inativo)")
		}
		b.WriteString(prefix + name)
		if s.PlanName != "" {
			b.WriteString("  " + formatter.Dim(s.PlanName))
		}
		b.WriteString("\n")

		b.WriteString("    " + formatter.RenderProgress(float64(s.ProgressPercent())/100, 20))
		b.WriteString(formatter.Dim(fmt.Sprintf("  %d/%d aulas", s.LessonsDone, s.LessonsTotal)))
		b.WriteString("\n")

		var details []string
		if s.Phone != "" {
			details = append(details, s.Phone)
		}
		if s.Guardians != "" {
			details = append(details, s.Guardians)
		}
		if len(details) > 0 {
			b.WriteString("    " + formatter.Dim(strings.Join(details, "  ·  ")) + "\n")
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *studentsView) ID() ViewID    { return ViewStudents }
func (v *studentsView) Title() string { return "Alunos" }
func (v *studentsView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "novo")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "cobrança")),
		key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "inativar/reativar")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recarregar")),
	}
}
