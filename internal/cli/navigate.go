package cli

import tea "github.com/charmbracelet/bubbletea"

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the whole stack with a new root view.
// Used for top-level panel switching (calendar / students / tasks / finance).
type replaceViewMsg struct {
	view View
}

// refreshViewMsg tells every view on the stack to re-read the store and,
// where needed, reload data after a mutation made in a view above it.
type refreshViewMsg struct{}

// noticeMsg carries a transient status-line message (errors included).
type noticeMsg struct {
	text  string
	isErr bool
}

// wizardCompleteMsg is sent when a form completes or is cancelled.
// The appModel handles it atomically: pop the form view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// switchView returns a tea.Cmd that replaces the stack with a new root view.
func switchView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// notify returns a tea.Cmd that shows an informational notice.
func notify(text string) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: text} }
}

// notifyErr returns a tea.Cmd that shows an error notice.
func notifyErr(err error) tea.Cmd {
	return func() tea.Msg { return noticeMsg{text: err.Error(), isErr: true} }
}
