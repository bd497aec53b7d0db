package cli

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvbarbosa/lousa/internal/api"
	"github.com/mvbarbosa/lousa/internal/store"
)

func newTestApp(t *testing.T) *App {
	t.Helper()
	client, err := api.NewClient(api.DefaultConfig(), api.NoopObserver{})
	require.NoError(t, err)
	return &App{
		Store: store.New(client, time.Date(2026, time.January, 15, 10, 0, 0, 0, time.Local)),
	}
}

func TestAppModel_StartsOnCalendar(t *testing.T) {
	m := newAppModel(newTestApp(t))
	require.NotNil(t, m.activeView())
	assert.Equal(t, ViewCalendar, m.activeView().ID())
}

func TestAppModel_PushAndPop(t *testing.T) {
	m := newAppModel(newTestApp(t))

	updated, _ := m.Update(pushViewMsg{view: newDayView(m.state)})
	m = updated.(appModel)
	assert.Equal(t, ViewDay, m.activeView().ID())
	assert.Len(t, m.viewStack, 2)

	updated, _ = m.Update(popViewMsg{})
	m = updated.(appModel)
	assert.Equal(t, ViewCalendar, m.activeView().ID())
}

func TestAppModel_PopNeverEmptiesStack(t *testing.T) {
	m := newAppModel(newTestApp(t))
	updated, _ := m.Update(popViewMsg{})
	m = updated.(appModel)
	assert.Len(t, m.viewStack, 1)
}

func TestAppModel_ReplaceResetsStack(t *testing.T) {
	m := newAppModel(newTestApp(t))

	updated, _ := m.Update(pushViewMsg{view: newDayView(m.state)})
	m = updated.(appModel)
	updated, _ = m.Update(replaceViewMsg{view: newTasksView(m.state)})
	m = updated.(appModel)

	assert.Len(t, m.viewStack, 1)
	assert.Equal(t, ViewTasks, m.activeView().ID())
}

func TestAppModel_PanelSwitchKeys(t *testing.T) {
	m := newAppModel(newTestApp(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'F'}})
	require.NotNil(t, cmd)

	msg := cmd()
	replace, ok := msg.(replaceViewMsg)
	require.True(t, ok)
	assert.Equal(t, ViewFinance, replace.view.ID())
}

func TestAppModel_NoticeShownInStatusBar(t *testing.T) {
	m := newAppModel(newTestApp(t))
	m.state.Width = 80
	m.state.Height = 24

	updated, _ := m.Update(noticeMsg{text: "Aula agendada.", isErr: false})
	m = updated.(appModel)

	assert.Contains(t, m.View(), "Aula agendada.")
}

func TestAppModel_QuitKeys(t *testing.T) {
	m := newAppModel(newTestApp(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestAppModel_MutationDoneTriggersRefresh(t *testing.T) {
	m := newAppModel(newTestApp(t))

	updated, cmd := m.Update(mutationDoneMsg{notice: "Salvo."})
	m = updated.(appModel)
	assert.Equal(t, "Salvo.", m.notice)
	assert.False(t, m.noticeErr)

	require.NotNil(t, cmd)
	_, ok := cmd().(refreshViewMsg)
	assert.True(t, ok)
}
