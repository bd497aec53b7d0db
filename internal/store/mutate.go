package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/mvbarbosa/lousa/internal/domain"
)

// LessonInput carries the day-detail form fields for a create or update.
type LessonInput struct {
	StudentID int
	DateKey   string
	Time      string // HH:MM, "" when unscheduled
	Title     string
	Info      string
	Status    domain.LessonStatus
}

// Validate enforces the pre-submit rules: a title, a student, and a
// selected date. Failures here never reach the network.
func (in LessonInput) Validate() error {
	if in.DateKey == "" {
		return ErrNoDateSelected
	}
	if strings.TrimSpace(in.Title) == "" {
		return ErrTitleRequired
	}
	if in.StudentID == 0 {
		return ErrStudentRequired
	}
	return nil
}

type lessonPayload struct {
	Student int     `json:"student"`
	Date    string  `json:"date"`
	Time    *string `json:"time"`
	Title   string  `json:"title"`
	Info    string  `json:"info"`
	Status  string  `json:"status"`
}

func (in LessonInput) payload() lessonPayload {
	p := lessonPayload{
		Student: in.StudentID,
		Date:    in.DateKey,
		Title:   strings.TrimSpace(in.Title),
		Info:    strings.TrimSpace(in.Info),
		Status:  string(in.Status),
	}
	if in.Time != "" {
		t := in.Time
		p.Time = &t
	}
	return p
}

// CreateLesson posts a new lesson and reloads the month so the new entry
// lands in its bucket in server order.
func (s *Store) CreateLesson(ctx context.Context, in LessonInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.writeThenReload(
		func() error { return s.client.Post(ctx, "/lessons/", in.payload(), nil) },
		func() error { return s.LoadLessonsForMonth(ctx) },
	)
}

// UpdateLesson patches an existing lesson and reloads the month. Editing
// can move a lesson between days, so a full reload beats an in-place patch.
func (s *Store) UpdateLesson(ctx context.Context, id int, in LessonInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.writeThenReload(
		func() error { return s.client.Patch(ctx, fmt.Sprintf("/lessons/%d/", id), in.payload(), nil) },
		func() error { return s.LoadLessonsForMonth(ctx) },
	)
}

// UpdateLessonStatus patches a single lesson's status and mirrors the
// change in place.
func (s *Store) UpdateLessonStatus(ctx context.Context, dateKey string, id int, status domain.LessonStatus) error {
	body := map[string]string{"status": string(status)}
	if err := s.client.Patch(ctx, fmt.Sprintf("/lessons/%d/", id), body, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, l := range s.lessonsByDay[dateKey] {
		if l.ID == id {
			s.lessonsByDay[dateKey][i].Status = status
			break
		}
	}
	return nil
}

// DeleteLesson removes a lesson and splices it out of its day bucket.
// Deleting the last lesson of a day removes the bucket entirely.
func (s *Store) DeleteLesson(ctx context.Context, dateKey string, id int) error {
	if err := s.client.Delete(ctx, fmt.Sprintf("/lessons/%d/", id)); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	bucket := s.lessonsByDay[dateKey]
	for i, l := range bucket {
		if l.ID == id {
			bucket = append(bucket[:i], bucket[i+1:]...)
			break
		}
	}
	if len(bucket) == 0 {
		delete(s.lessonsByDay, dateKey)
	} else {
		s.lessonsByDay[dateKey] = bucket
	}
	return nil
}

// StudentInput carries the roster form fields.
type StudentInput struct {
	Name         string
	Guardians    string
	Phone        string
	Address      string
	PlanName     string
	LessonsTotal int
	LessonsDone  int
	PixKey       string
}

// DefaultGuardians labels adult students who answer for themselves.
const DefaultGuardians = "Responsável próprio"

func (in StudentInput) Validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return ErrNameRequired
	}
	return nil
}

type studentPayload struct {
	Name         string `json:"name"`
	Guardians    string `json:"guardians"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	PlanName     string `json:"plan_name"`
	LessonsTotal int    `json:"lessons_total"`
	LessonsDone  int    `json:"lessons_done"`
	PixKey       string `json:"pix_key"`
	Active       bool   `json:"active"`
}

func (in StudentInput) payload() studentPayload {
	guardians := strings.TrimSpace(in.Guardians)
	if guardians == "" {
		guardians = DefaultGuardians
	}
	return studentPayload{
		Name:         strings.TrimSpace(in.Name),
		Guardians:    guardians,
		Phone:        strings.TrimSpace(in.Phone),
		Address:      strings.TrimSpace(in.Address),
		PlanName:     strings.TrimSpace(in.PlanName),
		LessonsTotal: in.LessonsTotal,
		LessonsDone:  in.LessonsDone,
		PixKey:       strings.TrimSpace(in.PixKey),
		Active:       true,
	}
}

// CreateStudent posts a new roster entry, then reloads the roster: the
// server owns the id and timestamp defaults.
func (s *Store) CreateStudent(ctx context.Context, in StudentInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.writeThenReload(
		func() error { return s.client.Post(ctx, "/students/", in.payload(), nil) },
		func() error { return s.LoadStudents(ctx) },
	)
}

// UpdateStudent patches a roster entry wholesale, then reloads the roster.
func (s *Store) UpdateStudent(ctx context.Context, id int, in StudentInput) error {
	if err := in.Validate(); err != nil {
		return err
	}
	return s.writeThenReload(
		func() error { return s.client.Patch(ctx, fmt.Sprintf("/students/%d/", id), in.payload(), nil) },
		func() error { return s.LoadStudents(ctx) },
	)
}

// SetStudentActive flips the active flag. Inactivation is the product's
// "removal": the record is retained but drops out of selection lists.
func (s *Store) SetStudentActive(ctx context.Context, id int, active bool) error {
	body := map[string]bool{"active": active}
	return s.writeThenReload(
		func() error { return s.client.Patch(ctx, fmt.Sprintf("/students/%d/", id), body, nil) },
		func() error { return s.LoadStudents(ctx) },
	)
}

// CreateTask posts a minimal task (always created as todo) and reloads
// the board.
func (s *Store) CreateTask(ctx context.Context, title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrTitleRequired
	}
	body := map[string]string{
		"title":  title,
		"status": string(domain.TaskTodo),
		"tags":   "",
	}
	return s.writeThenReload(
		func() error { return s.client.Post(ctx, "/tasks/", body, nil) },
		func() error { return s.LoadTasks(ctx) },
	)
}

// UpdateTaskStatus patches a task's status and mirrors it in place.
func (s *Store) UpdateTaskStatus(ctx context.Context, id int, status domain.TaskStatus) error {
	body := map[string]string{"status": string(status)}
	if err := s.client.Patch(ctx, fmt.Sprintf("/tasks/%d/", id), body, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, t := range s.tasks {
		if t.ID == id {
			s.tasks[i].Status = status
			break
		}
	}
	return nil
}

// UpdateInvoiceStatus patches an invoice's status and mirrors it in place.
func (s *Store) UpdateInvoiceStatus(ctx context.Context, id int, status domain.InvoiceStatus) error {
	body := map[string]string{"status": string(status)}
	if err := s.client.Patch(ctx, fmt.Sprintf("/invoices/%d/", id), body, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, inv := range s.invoices {
		if inv.ID == id {
			s.invoices[i].Status = status
			break
		}
	}
	return nil
}
