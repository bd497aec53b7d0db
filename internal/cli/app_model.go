package cli

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvbarbosa/lousa/internal/cli/formatter"
	"github.com/mvbarbosa/lousa/internal/dateutil"
)

// appModel is the root bubbletea Model for the TUI.
// It manages a view stack; the bottom of the stack is always one of the
// four top-level panels.
type appModel struct {
	state     *SharedState
	viewStack []View
	quitting  bool

	// Transient status-line notice from the last action.
	notice    string
	noticeErr bool
}

func newAppModel(app *App) appModel {
	state := &SharedState{Store: app.Store}
	m := appModel{state: state}

	// Start with the calendar as the home view.
	m.viewStack = []View{newCalendarView(state)}

	return m
}

// activeView returns the top view on the stack, or nil.
func (m *appModel) activeView() View {
	if len(m.viewStack) == 0 {
		return nil
	}
	return m.viewStack[len(m.viewStack)-1]
}

// setActiveView replaces the top of the view stack.
func (m *appModel) setActiveView(v View) {
	if len(m.viewStack) > 0 {
		m.viewStack[len(m.viewStack)-1] = v
	}
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m appModel) Init() tea.Cmd {
	if v := m.activeView(); v != nil {
		return v.Init()
	}
	return nil
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		m.state.Width = msg.Width
		m.state.Height = msg.Height
		if v := m.activeView(); v != nil {
			updated, cmd := v.Update(msg)
			m.setActiveView(updated.(View))
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case pushViewMsg:
		m.notice = ""
		m.viewStack = append(m.viewStack, msg.view)
		return m, msg.view.Init()

	case popViewMsg:
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, nil

	case replaceViewMsg:
		m.notice = ""
		m.viewStack = []View{msg.view}
		return m, msg.view.Init()

	case refreshViewMsg:
		// Broadcast to ALL views in the stack so underlying views reload
		// data after mutations made in views above them (e.g. forms).
		var cmds []tea.Cmd
		for i, v := range m.viewStack {
			updated, cmd := v.Update(msg)
			m.viewStack[i] = updated.(View)
			if cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
		return m, tea.Batch(cmds...)

	case noticeMsg:
		m.notice = msg.text
		m.noticeErr = msg.isErr
		return m, nil

	case mutationDoneMsg:
		m.notice = msg.notice
		m.noticeErr = false
		return m, func() tea.Msg { return refreshViewMsg{} }

	case wizardCompleteMsg:
		// Atomically pop the form view and run the follow-up command.
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
		}
		return m, tea.Batch(msg.nextCmd, func() tea.Msg { return refreshViewMsg{} })
	}

	// Forward other messages to the active view.
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit
	if msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	// Forms own every key, including q and esc.
	if v := m.activeView(); v != nil && v.ID() == ViewForm {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	// A keypress dismisses a stale notice.
	m.notice = ""

	switch msg.String() {
	case "q":
		m.quitting = true
		return m, tea.Quit

	// Top-level panel switching (uppercase so panel-local keys stay free).
	case "C":
		return m, switchView(newCalendarView(m.state))
	case "S":
		return m, switchView(newStudentsView(m.state))
	case "T":
		return m, switchView(newTasksView(m.state))
	case "F":
		return m, switchView(newFinanceView(m.state))
	}

	if msg.Type == tea.KeyEsc {
		if len(m.viewStack) > 1 {
			m.viewStack = m.viewStack[:len(m.viewStack)-1]
			return m, nil
		}
		return m, nil
	}

	// Forward to active view
	if v := m.activeView(); v != nil {
		updated, cmd := v.Update(msg)
		m.setActiveView(updated.(View))
		return m, cmd
	}

	return m, nil
}

func (m appModel) View() string {
	if m.quitting {
		return ""
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if v := m.activeView(); v != nil {
		sections = append(sections, v.View())
	}

	sections = append(sections, m.renderStatusBar())

	result := strings.Join(sections, "\n")

	// Pad to terminal height to prevent stale line artifacts from
	// bubbletea's line-diff renderer in alt-screen mode.
	if m.state.Height > 0 {
		lines := strings.Count(result, "\n") + 1
		if lines < m.state.Height {
			result += strings.Repeat("\n", m.state.Height-lines)
		}
	}

	return result
}

// ── rendering helpers ────────────────────────────────────────────────────────

func (m *appModel) renderHeader() string {
	title := formatter.StylePurple.Render("lousa")

	var crumbs []string
	for _, v := range m.viewStack {
		if t := v.Title(); t != "" {
			crumbs = append(crumbs, t)
		}
	}
	breadcrumb := ""
	if len(crumbs) > 0 {
		breadcrumb = " " + formatter.Dim("›") + " " + formatter.Dim(strings.Join(crumbs, " › "))
	}

	header := title + breadcrumb

	// Right-hand month indicator: lessons and invoices are scoped to it.
	month := formatter.StyleGreen.Render(dateutil.MonthLabel(m.state.Store.Month()))
	header += "  " + formatter.Dim("[") + month + formatter.Dim("]")

	sep := formatter.Dim(strings.Repeat("─", max(m.state.Width, 20)))
	return header + "\n" + sep
}

func (m *appModel) renderStatusBar() string {
	var bar string
	if m.notice != "" {
		if m.noticeErr {
			bar = formatter.StyleRed.Render("✖ " + m.notice)
		} else {
			bar = formatter.StyleGreen.Render("✔ " + m.notice)
		}
	} else if v := m.activeView(); v != nil {
		var hints []string
		for _, b := range v.ShortHelp() {
			hints = append(hints, formatter.Dim(b.Help().Key+": "+b.Help().Desc))
		}
		if len(m.viewStack) > 1 {
			hints = append(hints, formatter.Dim("esc: voltar"))
		}
		hints = append(hints, formatter.Dim("C/S/T/F: painéis"))
		bar = strings.Join(hints, "  ")
	}

	sepStyle := lipgloss.NewStyle().Foreground(formatter.ColorDim)
	sep := sepStyle.Render(strings.Repeat("─", max(m.state.Width, 20)))
	return sep + "\n" + bar
}

// Run starts the TUI and blocks until the user quits.
func Run(app *App) error {
	p := tea.NewProgram(newAppModel(app), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
