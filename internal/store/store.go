package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mvbarbosa/lousa/internal/api"
	"github.com/mvbarbosa/lousa/internal/dateutil"
	"github.com/mvbarbosa/lousa/internal/domain"
)

// Validation failures caught before any network call.
var (
	ErrTitleRequired   = errors.New("informe a descrição da aula")
	ErrStudentRequired = errors.New("selecione um aluno")
	ErrNameRequired    = errors.New("informe o nome do aluno")
	ErrNoDateSelected  = errors.New("selecione um dia no calendário primeiro")
)

// ReconcileError reports a write that succeeded on the server but whose
// follow-up local refresh failed. The two steps are not transactional;
// the user should reload manually.
type ReconcileError struct {
	Err error
}

func (e *ReconcileError) Error() string {
	return fmt.Sprintf("saved, but refreshing local data failed: %v", e.Err)
}

func (e *ReconcileError) Unwrap() error { return e.Err }

// Store is the in-memory mirror of the remote collections, scoped to one
// viewed month for lessons and invoices. All fields are owned by the Store
// and guarded by mu, because bubbletea commands run off the update loop.
type Store struct {
	client *api.Client

	mu           sync.RWMutex
	month        time.Time // first day of the viewed month
	selectedDate string    // YYYY-MM-DD, "" when no day is selected
	editingID    int       // lesson being edited, 0 when creating

	students     []domain.Student
	tasks        []domain.Task
	lessonsByDay map[string][]domain.Lesson
	invoices     []domain.Invoice

	// monthGen guards month-scoped loads: navigating months bumps it, and a
	// load only installs its result if the generation it captured is still
	// current. A late response for a stale month is discarded instead of
	// overwriting fresher data.
	monthGen uint64
}

// New creates a Store viewing the month of now, with today selected.
func New(client *api.Client, now time.Time) *Store {
	return &Store{
		client:       client,
		month:        dateutil.MonthStart(now),
		selectedDate: dateutil.ToKey(now),
		lessonsByDay: make(map[string][]domain.Lesson),
	}
}

// ── view state ───────────────────────────────────────────────────────────────

// Month returns the first day of the currently viewed month.
func (s *Store) Month() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.month
}

// SelectedDate returns the selected day key, or "".
func (s *Store) SelectedDate() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.selectedDate
}

// SelectDate sets the selected day key.
func (s *Store) SelectDate(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = key
}

// EditingLessonID returns the id of the lesson being edited, 0 when the
// form is in create mode. At most one lesson is ever in edit mode.
func (s *Store) EditingLessonID() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editingID
}

// StartEditing enters edit mode for one lesson, replacing any prior edit.
func (s *Store) StartEditing(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = id
}

// StopEditing returns the form to create mode.
func (s *Store) StopEditing() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editingID = 0
}

// ── collection snapshots ─────────────────────────────────────────────────────

// Students returns a copy of the full roster, inactive entries included.
func (s *Store) Students() []domain.Student {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Student, len(s.students))
	copy(out, s.students)
	return out
}

// ActiveStudents returns the roster filtered to active students, which is
// what every selection control displays.
func (s *Store) ActiveStudents() []domain.Student {
	return domain.ActiveStudents(s.Students())
}

// StudentByID looks up one student, active or not.
func (s *Store) StudentByID(id int) (domain.Student, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, st := range s.students {
		if st.ID == id {
			return st, true
		}
	}
	return domain.Student{}, false
}

// Tasks returns a copy of the task board.
func (s *Store) Tasks() []domain.Task {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Invoices returns a copy of the viewed month's invoices.
func (s *Store) Invoices() []domain.Invoice {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Invoice, len(s.invoices))
	copy(out, s.invoices)
	return out
}

// LessonsByDay returns a copy of the date-keyed lesson map for the viewed
// month. Bucket slices are copied too, so callers can hold the result
// across mutations.
func (s *Store) LessonsByDay() map[string][]domain.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string][]domain.Lesson, len(s.lessonsByDay))
	for key, lessons := range s.lessonsByDay {
		bucket := make([]domain.Lesson, len(lessons))
		copy(bucket, lessons)
		out[key] = bucket
	}
	return out
}

// LessonsOn returns the lessons of a single day, in server order.
func (s *Store) LessonsOn(key string) []domain.Lesson {
	s.mu.RLock()
	defer s.mu.RUnlock()
	bucket := s.lessonsByDay[key]
	out := make([]domain.Lesson, len(bucket))
	copy(out, bucket)
	return out
}

// Stats aggregates lesson status counts for the viewed month plus the
// active student count.
func (s *Store) Stats() (domain.LessonStats, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	active := 0
	for _, st := range s.students {
		if st.Active {
			active++
		}
	}
	return domain.CountByStatus(s.lessonsByDay), active
}

// ReceivableTotal sums outstanding invoice amounts for the viewed month.
func (s *Store) ReceivableTotal() domain.Money {
	return domain.ReceivableTotal(s.Invoices())
}

// ── loads ────────────────────────────────────────────────────────────────────

// LoadStudents replaces the roster wholesale from the server.
func (s *Store) LoadStudents(ctx context.Context) error {
	var students []domain.Student
	if err := s.client.Get(ctx, "/students/", &students); err != nil {
		return err
	}
	s.mu.Lock()
	s.students = students
	s.mu.Unlock()
	return nil
}

// LoadTasks replaces the task board wholesale from the server.
func (s *Store) LoadTasks(ctx context.Context) error {
	var tasks []domain.Task
	if err := s.client.Get(ctx, "/tasks/", &tasks); err != nil {
		return err
	}
	s.mu.Lock()
	s.tasks = tasks
	s.mu.Unlock()
	return nil
}

// LoadLessonsForMonth fetches the viewed month's lessons, filtered server
// side, and rebuilds the date-keyed map from scratch. A stale response
// (month navigated away mid-flight) is discarded.
func (s *Store) LoadLessonsForMonth(ctx context.Context) error {
	month, gen := s.monthSnapshot()

	var lessons []domain.Lesson
	path := "/lessons/?month=" + dateutil.MonthParam(month)
	if err := s.client.Get(ctx, path, &lessons); err != nil {
		return err
	}

	byDay := make(map[string][]domain.Lesson)
	for _, l := range lessons {
		byDay[l.DateKey] = append(byDay[l.DateKey], l)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.monthGen {
		return nil // stale month, drop it
	}
	s.lessonsByDay = byDay
	return nil
}

// LoadInvoicesForMonth fetches the viewed month's invoices wholesale,
// with the same stale-response guard as LoadLessonsForMonth.
func (s *Store) LoadInvoicesForMonth(ctx context.Context) error {
	month, gen := s.monthSnapshot()

	var invoices []domain.Invoice
	path := "/invoices/?month=" + dateutil.MonthParam(month)
	if err := s.client.Get(ctx, path, &invoices); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.monthGen {
		return nil
	}
	s.invoices = invoices
	return nil
}

// LoadAll runs the four collection loads concurrently. The first failure
// aborts the batch: the caller should treat the whole load as failed
// rather than render a half-updated view.
func (s *Store) LoadAll(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.LoadStudents(ctx) })
	g.Go(func() error { return s.LoadTasks(ctx) })
	g.Go(func() error { return s.LoadLessonsForMonth(ctx) })
	g.Go(func() error { return s.LoadInvoicesForMonth(ctx) })
	return g.Wait()
}

// ChangeMonth moves the viewed month by delta and reloads lessons and
// invoices together, so a slow request cannot leave the two collections
// describing different months.
func (s *Store) ChangeMonth(ctx context.Context, delta int) error {
	s.mu.Lock()
	s.month = dateutil.AddMonths(s.month, delta)
	s.monthGen++
	s.mu.Unlock()

	return s.reloadMonth(ctx)
}

func (s *Store) reloadMonth(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return s.LoadLessonsForMonth(ctx) })
	g.Go(func() error { return s.LoadInvoicesForMonth(ctx) })
	return g.Wait()
}

func (s *Store) monthSnapshot() (time.Time, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.month, s.monthGen
}

// writeThenReload models every mutation as a two-phase operation: issue
// the write, then reconcile local state. A reload failure after a
// successful write becomes a ReconcileError so the UI can advise a manual
// refresh instead of implying the write was lost.
func (s *Store) writeThenReload(write, reload func() error) error {
	if err := write(); err != nil {
		return err
	}
	if err := reload(); err != nil {
		return &ReconcileError{Err: err}
	}
	return nil
}
