package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvbarbosa/lousa/internal/cli/formatter"
	"github.com/mvbarbosa/lousa/internal/dateutil"
	"github.com/mvbarbosa/lousa/internal/domain"
)

// dayView lists the selected day's lessons and is where individual
// lessons get their status changed, edited, or deleted.
type dayView struct {
	state  *SharedState
	cursor int
}

func newDayView(state *SharedState) *dayView {
	return &dayView{state: state}
}

func (v *dayView) Init() tea.Cmd { return nil }

func (v *dayView) lessons() []domain.Lesson {
	return v.state.Store.LessonsOn(v.state.Store.SelectedDate())
}

func (v *dayView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		v.clampCursor()
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *dayView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lessons := v.lessons()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(lessons)-1 {
			v.cursor++
		}

	case "a":
		v.state.Store.StopEditing()
		return v, pushView(newLessonForm(v.state))

	case "e":
		if l, ok := v.current(lessons); ok {
			v.state.Store.StartEditing(l.ID)
			return v, pushView(newLessonForm(v.state))
		}

	case "c":
		return v, v.setStatus(lessons, domain.LessonConfirmed, "Aula confirmada.")
	case "p":
		return v, v.setStatus(lessons, domain.LessonPending, "Aula marcada como pendente.")
	case "x":
		return v, v.setStatus(lessons, domain.LessonCanceled, "Aula cancelada.")

	case "d":
		l, ok := v.current(lessons)
		if !ok {
			return v, nil
		}
		dateKey := v.state.Store.SelectedDate()
		return v, pushView(confirmView(v.state, "Excluir aula",
			fmt.Sprintf("Excluir a aula %q?", l.Title),
			func() tea.Cmd {
				return mutate("Aula excluída.", func(ctx context.Context) error {
					return v.state.Store.DeleteLesson(ctx, dateKey, l.ID)
				})
			}))
	}

	return v, nil
}

func (v *dayView) current(lessons []domain.Lesson) (domain.Lesson, bool) {
	if v.cursor < 0 || v.cursor >= len(lessons) {
		return domain.Lesson{}, false
	}
	return lessons[v.cursor], true
}

func (v *dayView) setStatus(lessons []domain.Lesson, status domain.LessonStatus, notice string) tea.Cmd {
	l, ok := v.current(lessons)
	if !ok || l.Status == status {
		return nil
	}
	dateKey := v.state.Store.SelectedDate()
	return mutate(notice, func(ctx context.Context) error {
		return v.state.Store.UpdateLessonStatus(ctx, dateKey, l.ID, status)
	})
}

func (v *dayView) clampCursor() {
	if n := len(v.lessons()); v.cursor >= n {
		v.cursor = n - 1
	}
	if v.cursor < 0 {
		v.cursor = 0
	}
}

func (v *dayView) View() string {
	lessons := v.lessons()

	var b strings.Builder
	if len(lessons) == 0 {
		b.WriteString(formatter.Dim("Sem aulas neste dia. Pressione a para agendar."))
		return b.String()
	}

	for i, l := range lessons {
		prefix := "  "
		if i == v.cursor {
			prefix = formatter.StyleHeader.Render("▸ ")
		}
		hour := l.Time
		if hour == "" {
			hour = "--:--"
		}
		b.WriteString(fmt.Sprintf("%s%s  %s  %s\n",
			prefix,
			formatter.Dim(hour),
			formatter.Bold(l.Title),
			formatter.Dim(l.StudentName)))
		b.WriteString("      " + formatter.LessonStatusPill(l.Status))
		if l.Info != "" {
			b.WriteString("  " + formatter.Dim(l.Info))
		}
		b.WriteString("\n\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *dayView) ID() ViewID { return ViewDay }

func (v *dayView) Title() string {
	if day, err := dateutil.ParseKey(v.state.Store.SelectedDate()); err == nil {
		return dateutil.DayLabel(day)
	}
	return "Dia"
}

func (v *dayView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "nova")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "editar")),
		key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "confirmar")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pendente")),
		key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "cancelar")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "excluir")),
	}
}
