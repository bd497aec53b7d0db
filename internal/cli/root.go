package cli

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/mvbarbosa/lousa/internal/cli/formatter"
	"github.com/mvbarbosa/lousa/internal/dateutil"
	"github.com/mvbarbosa/lousa/internal/store"
)

// App holds the wired dependencies used by CLI commands and the TUI.
type App struct {
	Store *store.Store

	// IsInteractive reports whether stdin is a terminal. The bare
	// command only starts the TUI when it is.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "lousa" command. Run without a
// subcommand on a terminal, it opens the interactive dashboard; the
// subcommands print read-only snapshots for scripting.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "lousa",
		Short: "Agenda e cobranças para aulas particulares",
		RunE: func(cmd *cobra.Command, args []string) error {
			if app.IsInteractive == nil || !app.IsInteractive() {
				return cmd.Help()
			}
			return Run(app)
		},
	}

	root.AddCommand(
		newAgendaCmd(app),
		newStudentsCmd(app),
		newTasksCmd(app),
		newInvoicesCmd(app),
	)

	return root
}

// parseMonthArg resolves an optional YYYY-MM argument, defaulting to the
// current month.
func parseMonthArg(args []string) (time.Time, error) {
	if len(args) == 0 {
		return dateutil.MonthStart(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01", args[0], time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid month %q — expected YYYY-MM", args[0])
	}
	return t, nil
}

// loadMonth points the store at the requested month and loads its data.
func loadMonth(ctx context.Context, app *App, month time.Time) error {
	if delta := monthDelta(app.Store.Month(), month); delta != 0 {
		return app.Store.ChangeMonth(ctx, delta)
	}
	return app.Store.LoadAll(ctx)
}

func newAgendaCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "agenda [YYYY-MM]",
		Short: "List the month's lessons day by day",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := parseMonthArg(args)
			if err != nil {
				return err
			}
			if err := loadMonth(context.Background(), app, month); err != nil {
				return err
			}

			byDay := app.Store.LessonsByDay()
			if len(byDay) == 0 {
				fmt.Println(formatter.Dim("Sem aulas em " + dateutil.MonthLabel(month) + "."))
				return nil
			}

			keys := make([]string, 0, len(byDay))
			for k := range byDay {
				keys = append(keys, k)
			}
			sort.Strings(keys)

			fmt.Println(formatter.Header(dateutil.MonthLabel(month)))
			for _, k := range keys {
				day, err := dateutil.ParseKey(k)
				if err != nil {
					continue
				}
				fmt.Println(formatter.Bold(dateutil.DayLabel(day)))
				for _, l := range byDay[k] {
					hour := l.Time
					if hour == "" {
						hour = "--:--"
					}
					fmt.Printf("  %s %s  %s %s\n",
						formatter.LessonGlyph(l.Status),
						formatter.Dim(hour),
						l.Title,
						formatter.Dim("("+l.StudentName+")"))
				}
			}
			return nil
		},
	}
}

func newStudentsCmd(app *App) *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "students",
		Short: "List the student roster",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.LoadStudents(context.Background()); err != nil {
				return err
			}

			students := app.Store.Students()
			if !all {
				students = app.Store.ActiveStudents()
			}
			if len(students) == 0 {
				fmt.Println(formatter.Dim("Nenhum aluno cadastrado."))
				return nil
			}

			for _, s := range students {
				name := formatter.Bold(s.Name)
				if !s.Active {
					name = formatter.Dim(s.Name + " (inativo)")
				}
				fmt.Printf("%s  %s\n", name, formatter.Dim(s.PlanName))
				fmt.Printf("  %s %s\n",
					formatter.RenderProgress(float64(s.ProgressPercent())/100, 20),
					formatter.Dim(fmt.Sprintf("%d/%d aulas", s.LessonsDone, s.LessonsTotal)))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&all, "all", false, "Include inactive students")

	return cmd
}

func newTasksCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "tasks",
		Short: "List the personal task board",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Store.LoadTasks(context.Background()); err != nil {
				return err
			}

			tasks := app.Store.Tasks()
			if len(tasks) == 0 {
				fmt.Println(formatter.Dim("Nenhuma tarefa."))
				return nil
			}
			for _, t := range tasks {
				line := fmt.Sprintf("%s  %s", formatter.TaskStatusPill(t.Status), t.Title)
				if tags := formatter.Tags(t.Tags); tags != "" {
					line += "  " + tags
				}
				fmt.Println(line)
			}
			return nil
		},
	}
}

func newInvoicesCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "invoices [YYYY-MM]",
		Short: "List the month's invoices and the receivable total",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := parseMonthArg(args)
			if err != nil {
				return err
			}
			ctx := context.Background()
			if err := loadMonth(ctx, app, month); err != nil {
				return err
			}

			invoices := app.Store.Invoices()
			if len(invoices) == 0 {
				fmt.Println(formatter.Dim("Nenhuma cobrança em " + dateutil.MonthLabel(month) + "."))
				return nil
			}

			fmt.Println(formatter.Header("Financeiro · " + dateutil.MonthLabel(month)))
			for _, inv := range invoices {
				due := inv.DueDate
				if due == "" {
					due = "sem vencimento"
				}
				fmt.Printf("%s%s%s%s\n",
					formatter.PadRight(inv.StudentName, 24),
					formatter.Dim(formatter.PadRight(due, 14)),
					formatter.PadRight(formatter.BRL(inv.Amount), 14),
					formatter.InvoiceStatusPill(inv.Status))
			}
			fmt.Println()
			fmt.Println(formatter.Bold("A receber: " + formatter.BRL(app.Store.ReceivableTotal())))
			return nil
		},
	}
}
