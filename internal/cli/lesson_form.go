package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mvbarbosa/lousa/internal/domain"
	"github.com/mvbarbosa/lousa/internal/store"
)

// newLessonForm builds the create/edit lesson wizard for the selected
// day. Edit mode is signalled through the store's editing id, which the
// form clears when it completes or is cancelled.
func newLessonForm(state *SharedState) View {
	st := state.Store

	var (
		editID    = st.EditingLessonID()
		title     string
		studentID int
		timeOfDay string
		info      string
		status    = domain.LessonPending
	)

	formTitle := "Nova aula"
	if editID != 0 {
		formTitle = "Editar aula"
		for _, l := range st.LessonsOn(st.SelectedDate()) {
			if l.ID == editID {
				title = l.Title
				studentID = l.StudentID
				timeOfDay = l.Time
				info = l.Info
				status = l.Status
				break
			}
		}
	}

	var studentOptions []huh.Option[int]
	for _, s := range st.ActiveStudents() {
		studentOptions = append(studentOptions, huh.NewOption(s.Name, s.ID))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Descrição").
				Placeholder("Aula de reforço, redação...").
				Validate(validateRequired("a descrição")).
				Value(&title),
			huh.NewSelect[int]().
				Title("Aluno").
				Options(studentOptions...).
				Value(&studentID),
			huh.NewInput().
				Title("Horário (HH:MM, opcional)").
				Validate(validateOptionalTime).
				Value(&timeOfDay),
			huh.NewInput().
				Title("Observações").
				Value(&info),
			huh.NewSelect[domain.LessonStatus]().
				Title("Status").
				Options(
					huh.NewOption("Pendente", domain.LessonPending),
					huh.NewOption("Confirmada", domain.LessonConfirmed),
					huh.NewOption("Cancelada", domain.LessonCanceled),
				).
				Value(&status),
		),
	).WithTheme(lousaHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle, form, func() tea.Cmd {
		st.StopEditing()
		in := store.LessonInput{
			StudentID: studentID,
			DateKey:   st.SelectedDate(),
			Time:      timeOfDay,
			Title:     title,
			Info:      info,
			Status:    status,
		}
		if editID != 0 {
			return mutate("Aula atualizada.", func(ctx context.Context) error {
				return st.UpdateLesson(ctx, editID, in)
			})
		}
		return mutate(fmt.Sprintf("Aula %q agendada.", in.Title), func(ctx context.Context) error {
			return st.CreateLesson(ctx, in)
		})
	})
}
