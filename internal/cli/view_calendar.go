package cli

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mvbarbosa/lousa/internal/calendar"
	"github.com/mvbarbosa/lousa/internal/cli/formatter"
	"github.com/mvbarbosa/lousa/internal/dateutil"
)

var weekdayHeadersPT = [...]string{"dom", "seg", "ter", "qua", "qui", "sex", "sáb"}

const calendarCellWidth = 9

var (
	styleDaySelected = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#282828")).
				Background(formatter.ColorHeader).
				Bold(true)
	styleDayToday = lipgloss.NewStyle().Foreground(formatter.ColorHeader).Bold(true)
)

// calendarView is the home panel: the month grid with a movable day
// cursor. The selected day lives in the store so the day view and the
// lesson form always agree on the date.
type calendarView struct {
	state  *SharedState
	loaded bool
}

func newCalendarView(state *SharedState) *calendarView {
	return &calendarView{state: state}
}

func (v *calendarView) Init() tea.Cmd {
	if v.loaded {
		return nil
	}
	v.loaded = true
	return load(v.state.Store.LoadAll)
}

func (v *calendarView) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return v, nil
	}

	switch keyMsg.String() {
	case "left", "h":
		return v, v.moveCursor(-1)
	case "right", "l":
		return v, v.moveCursor(1)
	case "up", "k":
		return v, v.moveCursor(-7)
	case "down", "j":
		return v, v.moveCursor(7)

	case "[":
		return v, v.changeMonth(-1)
	case "]":
		return v, v.changeMonth(1)

	case "t":
		now := time.Now()
		v.state.Store.SelectDate(dateutil.ToKey(now))
		delta := monthDelta(v.state.Store.Month(), now)
		if delta != 0 {
			return v, v.changeMonth(delta)
		}
		return v, nil

	case "enter":
		if v.state.Store.SelectedDate() == "" {
			return v, nil
		}
		return v, pushView(newDayView(v.state))

	case "a":
		v.state.Store.StopEditing()
		return v, pushView(newLessonForm(v.state))

	case "r":
		return v, load(v.state.Store.LoadAll)
	}

	return v, nil
}

// moveCursor shifts the selected day, rolling the viewed month when the
// cursor crosses its edge.
func (v *calendarView) moveCursor(days int) tea.Cmd {
	st := v.state.Store

	cur, err := dateutil.ParseKey(st.SelectedDate())
	if err != nil {
		cur = st.Month()
	}
	next := cur.AddDate(0, 0, days)
	st.SelectDate(dateutil.ToKey(next))

	if delta := monthDelta(st.Month(), next); delta != 0 {
		return v.changeMonth(delta)
	}
	return nil
}

func (v *calendarView) changeMonth(delta int) tea.Cmd {
	return load(func(ctx context.Context) error {
		return v.state.Store.ChangeMonth(ctx, delta)
	})
}

// monthDelta returns how many months separate t's month from the viewed
// month, so cursor moves can roll the view along with them.
func monthDelta(viewed, t time.Time) int {
	return (t.Year()-viewed.Year())*12 + int(t.Month()) - int(viewed.Month())
}

func (v *calendarView) View() string {
	st := v.state.Store
	month := st.Month()
	todayKey := dateutil.ToKey(time.Now())
	grid := calendar.BuildMonthGrid(month.Year(), month.Month(), st.LessonsByDay(), st.SelectedDate(), todayKey)

	var b strings.Builder

	// Weekday header row
	for _, wd := range weekdayHeadersPT {
		b.WriteString(formatter.Dim(formatter.PadRight(wd, calendarCellWidth)))
	}
	b.WriteString("\n")

	col := 0
	writeBlank := func() {
		b.WriteString(strings.Repeat(" ", calendarCellWidth))
		col++
	}
	for i := 0; i < grid.LeadingBlanks; i++ {
		writeBlank()
	}
	for _, cell := range grid.Cells {
		b.WriteString(renderDayCell(cell))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(v.renderStats())
	b.WriteString("\n\n")
	b.WriteString(v.renderSelectedDay())

	return b.String()
}

// renderDayCell lays out one fixed-width cell: day number, then status
// glyphs for up to MaxChips lessons, then an overflow count.
func renderDayCell(c calendar.DayCell) string {
	glyphs := ""
	for _, chip := range c.Chips {
		glyphs += formatter.LessonGlyph(chip.Status)
	}
	if extra := c.Count - len(c.Chips); extra > 0 {
		glyphs += fmt.Sprintf("+%d", extra)
	}

	text := formatter.PadRight(fmt.Sprintf("%2d %s", c.Day, glyphs), calendarCellWidth)
	switch {
	case c.Selected:
		return styleDaySelected.Render(text)
	case c.Today:
		return styleDayToday.Render(text)
	case c.Count == 0:
		return formatter.Dim(text)
	default:
		return text
	}
}

func (v *calendarView) renderStats() string {
	stats, active := v.state.Store.Stats()
	parts := []string{
		formatter.StyleGreen.Render(fmt.Sprintf("%d confirmadas", stats.Confirmed)),
		formatter.StyleYellow.Render(fmt.Sprintf("%d pendentes", stats.Pending)),
		formatter.StyleRed.Render(fmt.Sprintf("%d canceladas", stats.Canceled)),
		formatter.Dim(fmt.Sprintf("%d alunos ativos", active)),
	}
	return strings.Join(parts, formatter.Dim("  ·  "))
}

// renderSelectedDay previews the selected day's lessons under the grid.
func (v *calendarView) renderSelectedDay() string {
	st := v.state.Store
	selected := st.SelectedDate()
	if selected == "" {
		return formatter.Dim("Nenhum dia selecionado.")
	}

	day, err := dateutil.ParseKey(selected)
	if err != nil {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Bold(dateutil.DayLabel(day)))
	b.WriteString("\n")

	lessons := st.LessonsOn(selected)
	if len(lessons) == 0 {
		b.WriteString(formatter.Dim("Sem aulas neste dia."))
		return b.String()
	}
	for _, l := range lessons {
		hour := l.Time
		if hour == "" {
			hour = "--:--"
		}
		b.WriteString(fmt.Sprintf("  %s %s  %s %s\n",
			formatter.LessonGlyph(l.Status),
			formatter.Dim(hour),
			l.Title,
			formatter.Dim("("+l.StudentName+")")))
	}
	return strings.TrimRight(b.String(), "\n")
}

func (v *calendarView) ID() ViewID    { return ViewCalendar }
func (v *calendarView) Title() string { return "Agenda" }
func (v *calendarView) ShortHelp() []key.Binding {
	return []key.Binding{
		key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "dia")),
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "nova aula")),
		key.NewBinding(key.WithKeys("["), key.WithHelp("[/]", "mês")),
		key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "hoje")),
		key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "recarregar")),
	}
}
