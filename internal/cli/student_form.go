package cli

import (
	"context"
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/mvbarbosa/lousa/internal/store"
)

// newStudentForm builds the create/edit roster wizard. A zero id means
// create; otherwise the form is prefilled from the cached record.
func newStudentForm(state *SharedState, id int) View {
	st := state.Store

	var (
		name         string
		guardians    string
		phone        string
		address      string
		planName     string
		lessonsTotal string
		lessonsDone  string
		pixKey       string
	)

	formTitle := "Novo aluno"
	if id != 0 {
		formTitle = "Editar aluno"
		if s, ok := st.StudentByID(id); ok {
			name = s.Name
			guardians = s.Guardians
			phone = s.Phone
			address = s.Address
			planName = s.PlanName
			lessonsTotal = strconv.Itoa(s.LessonsTotal)
			lessonsDone = strconv.Itoa(s.LessonsDone)
			pixKey = s.PixKey
		}
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Nome").
				Validate(validateRequired("o nome")).
				Value(&name),
			huh.NewInput().
				Title("Responsáveis").
				Placeholder(store.DefaultGuardians).
				Value(&guardians),
			huh.NewInput().
				Title("Telefone (WhatsApp)").
				Placeholder("(11) 99999-0000").
				Value(&phone),
			huh.NewInput().
				Title("Endereço").
				Value(&address),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Plano").
				Placeholder("Mensal 8 aulas").
				Value(&planName),
			huh.NewInput().
				Title("Total de aulas do plano").
				Validate(validateNonNegativeInt).
				Value(&lessonsTotal),
			huh.NewInput().
				Title("Aulas concluídas").
				Validate(validateNonNegativeInt).
				Value(&lessonsDone),
			huh.NewInput().
				Title("Chave Pix").
				Value(&pixKey),
		),
	).WithTheme(lousaHuhTheme()).WithShowHelp(false)

	return newWizardView(state, formTitle, form, func() tea.Cmd {
		in := store.StudentInput{
			Name:         name,
			Guardians:    guardians,
			Phone:        phone,
			Address:      address,
			PlanName:     planName,
			LessonsTotal: parseNonNegativeInt(lessonsTotal),
			LessonsDone:  parseNonNegativeInt(lessonsDone),
			PixKey:       pixKey,
		}
		if id != 0 {
			return mutate("Cadastro atualizado.", func(ctx context.Context) error {
				return st.UpdateStudent(ctx, id, in)
			})
		}
		return mutate(fmt.Sprintf("%s cadastrado(a).", in.Name), func(ctx context.Context) error {
			return st.CreateStudent(ctx, in)
		})
	})
}
