package cli

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mvbarbosa/lousa/internal/cli/formatter"
	"github.com/mvbarbosa/lousa/internal/domain"
)

// tasksView is the personal to-do board. Space walks a task through the
// todo, doing, done cycle, mirroring the column drag on the dashboard.
type tasksView struct {
	state  *SharedState
	cursor int
}

func newTasksView(state *SharedState) *tasksView {
	return &tasksView{state: state}
}

func (v *tasksView) Init() tea.Cmd {
	return load(v.state.Store.LoadTasks)
}

// board groups tasks by status in column order.
func (v *tasksView) board() []domain.Task {
	all := v.state.Store.Tasks()
	out := make([]domain.Task, 0, len(all))
	for _, status := range []domain.TaskStatus{domain.TaskTodo, domain.TaskDoing, domain.TaskDone} {
		for _, t := range all {
			if t.Status == status {
				out = append(out, t)
			}
		}
	}
	return out
}

func (v *tasksView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case refreshViewMsg:
		if n := len(v.board()); v.cursor >= n && n > 0 {
			v.cursor = n - 1
		}
		return v, nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return v, nil
}

func (v *tasksView) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	board := v.board()

	switch msg.String() {
	case "up", "k":
		if v.cursor > 0 {
			v.cursor--
		}
	case "down", "j":
		if v.cursor < len(board)-1 {
			v.cursor++
		}

	case " ", "enter":
		if v.cursor < 0 || v.cursor >= len(board) {
			return v, nil
		}
		t := board[v.cursor]
		next := t.NextStatus()
		return v, mutate("Tarefa movida para "+formatter.TaskStatusLabel(next)+".",
			func(ctx context.Context) error {
				return v.state.Store.UpdateTaskStatus(ctx, t.ID, next)
			})

	case "a":
		return v, pushView(v.newTaskForm())

	case "r":
		return v, load(v.state.Store.LoadTasks)
	}

	return v, nil
}

func (v *tasksView) newTaskForm() View {
	var title string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nova tarefa").
				Placeholder("Corrigir redações da turma...").
				Validate(validateRequired("a descrição")).
				Value(&title),
		),
	).WithTheme(lousaHuhTheme()).WithShowHelp(false)

	return newWizardView(v.state, "Nova tarefa", form, func() tea.Cmd {
		return mutate("Tarefa criada.", func(ctx context.Context) error {
			return v.state.Store.CreateTask(ctx, title)
		})
	})
}

func (v *tasksView) View() string {
	board := v.board()
	if len(board) == 0 {
		return formatter.Dim("Nenhuma tarefa. Pressione a para adicionar.")
	}

	var b strings.Builder
	var lastStatus domain.TaskStatus = "?"
	for i, t := range board {
		if t.Status != lastStatus {
			if i > 0 {
				b.WriteString("\n")
			}
			b.WriteString(formatter.TaskStatusPill(t.Status) + "\n")
			lastStatus = t.Status
		}

		prefix := "    "
		if i == v.cursor {
			prefix = "  " + formatter.StyleHeader.Render("▸ ")
		}
		line := prefix + t.Title
		if tags := formatter.Tags(t.Tags); tags != "" {
			line += "  " + tags
		}
		b.WriteString(line + "\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *tasksView) ID() ViewID    { return ViewTasks }
func (v *tasksView) Title() string { return "Tarefas" }
func (v *tasksView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys(" "), key.WithHelp("espaço", "avançar status")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "nova")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recarregar")),
	}
}
