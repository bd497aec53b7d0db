package cli

import (
	"context"
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mvbarbosa/lousa/internal/store"
)

// requestTimeout bounds every store call issued from the TUI so a dead
// server surfaces as a notice instead of a frozen interface.
const requestTimeout = 15 * time.Second

// mutationDoneMsg reports a finished store mutation. The appModel shows
// the notice and broadcasts a refresh so every stacked view re-reads the
// store.
type mutationDoneMsg struct {
	notice string
}

// mutate wraps a store call in a tea.Cmd. Success produces a
// mutationDoneMsg; failure produces an error notice. A ReconcileError
// (write landed, refresh did not) gets its own wording so the user knows
// the data is saved and only the local mirror is behind.
func mutate(okNotice string, fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			var rec *store.ReconcileError
			if errors.As(err, &rec) {
				return noticeMsg{
					text:  "Salvo no servidor, mas a atualização local falhou. Pressione r para recarregar.",
					isErr: true,
				}
			}
			return noticeMsg{text: err.Error(), isErr: true}
		}
		return mutationDoneMsg{notice: okNotice}
	}
}

// load wraps a read-only store call; it refreshes views without a notice.
func load(fn func(ctx context.Context) error) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()

		if err := fn(ctx); err != nil {
			return noticeMsg{text: err.Error(), isErr: true}
		}
		return refreshViewMsg{}
	}
}
