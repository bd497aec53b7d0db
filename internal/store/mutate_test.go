package store

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvbarbosa/lousa/internal/domain"
)

// recordingHandler captures every request and serves canned responses.
type recordingHandler struct {
	t *testing.T

	mu       sync.Mutex
	requests []recordedRequest

	lessons  []map[string]any
	students []map[string]any
	tasks    []map[string]any
	invoices []map[string]any
}

type recordedRequest struct {
	Method string
	Path   string
	Body   map[string]any
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rec := recordedRequest{Method: r.Method, Path: r.URL.Path}
	if r.Body != nil {
		json.NewDecoder(r.Body).Decode(&rec.Body)
	}
	h.mu.Lock()
	h.requests = append(h.requests, rec)
	h.mu.Unlock()

	if r.Method == http.MethodDelete {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if r.Method != http.MethodGet {
		writeJSON(h.t, w, map[string]int{"id": 99})
		return
	}

	switch r.URL.Path {
	case "/lessons/":
		writeJSON(h.t, w, h.lessons)
	case "/students/":
		writeJSON(h.t, w, h.students)
	case "/tasks/":
		writeJSON(h.t, w, h.tasks)
	case "/invoices/":
		writeJSON(h.t, w, h.invoices)
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (h *recordingHandler) recorded() []recordedRequest {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]recordedRequest, len(h.requests))
	copy(out, h.requests)
	return out
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.requests)
}

func TestLessonInput_Validate(t *testing.T) {
	valid := LessonInput{StudentID: 1, DateKey: "2026-01-05", Title: "Aula"}
	assert.NoError(t, valid.Validate())

	noDate := valid
	noDate.DateKey = ""
	assert.ErrorIs(t, noDate.Validate(), ErrNoDateSelected)

	noTitle := valid
	noTitle.Title = "   "
	assert.ErrorIs(t, noTitle.Validate(), ErrTitleRequired)

	noStudent := valid
	noStudent.StudentID = 0
	assert.ErrorIs(t, noStudent.Validate(), ErrStudentRequired)
}

func TestStore_CreateLesson_InvalidInput_NoRequest(t *testing.T) {
	h := &recordingHandler{t: t}
	s, _ := newTestStore(t, h)

	err := s.CreateLesson(context.Background(), LessonInput{DateKey: "2026-01-05"})
	assert.ErrorIs(t, err, ErrTitleRequired)
	assert.Zero(t, h.count(), "validation failures must not reach the network")
}

func TestStore_CreateLesson_PostsPayloadThenReloads(t *testing.T) {
	h := &recordingHandler{t: t}
	s, _ := newTestStore(t, h)

	in := LessonInput{
		StudentID: 1,
		DateKey:   "2026-01-05",
		Title:     "  Reforço  ",
		Info:      "Capítulo 3",
		Status:    domain.LessonPending,
	}
	require.NoError(t, s.CreateLesson(context.Background(), in))

	reqs := h.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/lessons/", reqs[0].Path)
	assert.Equal(t, "Reforço", reqs[0].Body["title"])
	assert.Equal(t, "2026-01-05", reqs[0].Body["date"])
	assert.Nil(t, reqs[0].Body["time"], "blank time must serialize as null")
	assert.Equal(t, http.MethodGet, reqs[1].Method)
	assert.Equal(t, "/lessons/", reqs[1].Path)
}

func TestStore_CreateLesson_WithTime(t *testing.T) {
	h := &recordingHandler{t: t}
	s, _ := newTestStore(t, h)

	in := LessonInput{StudentID: 1, DateKey: "2026-01-05", Title: "Aula", Time: "14:30", Status: domain.LessonConfirmed}
	require.NoError(t, s.CreateLesson(context.Background(), in))

	reqs := h.recorded()
	require.NotEmpty(t, reqs)
	assert.Equal(t, "14:30", reqs[0].Body["time"])
}

func TestStore_UpdateLesson_PatchesByID(t *testing.T) {
	h := &recordingHandler{t: t}
	s, _ := newTestStore(t, h)

	in := LessonInput{StudentID: 1, DateKey: "2026-01-06", Title: "Movida", Status: domain.LessonPending}
	require.NoError(t, s.UpdateLesson(context.Background(), 10, in))

	reqs := h.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPatch, reqs[0].Method)
	assert.Equal(t, "/lessons/10/", reqs[0].Path)
	assert.Equal(t, http.MethodGet, reqs[1].Method)
}

func TestStore_UpdateLessonStatus_MirrorsInPlace(t *testing.T) {
	h := &recordingHandler{t: t, lessons: []map[string]any{
		{"id": 10, "student": 1, "student_name": "Ana", "date": "2026-01-05", "time": nil, "title": "Aula", "status": "pending"},
	}}
	s, _ := newTestStore(t, h)
	require.NoError(t, s.LoadLessonsForMonth(context.Background()))

	require.NoError(t, s.UpdateLessonStatus(context.Background(), "2026-01-05", 10, domain.LessonConfirmed))

	lessons := s.LessonsOn("2026-01-05")
	require.Len(t, lessons, 1)
	assert.Equal(t, domain.LessonConfirmed, lessons[0].Status)

	// A status patch must not trigger a month reload.
	var gets int
	for _, r := range h.recorded() {
		if r.Method == http.MethodGet {
			gets++
		}
	}
	assert.Equal(t, 1, gets)
}

func TestStore_DeleteLesson_SplicesBucket(t *testing.T) {
	h := &recordingHandler{t: t, lessons: []map[string]any{
		{"id": 10, "student": 1, "student_name": "Ana", "date": "2026-01-05", "time": nil, "title": "Primeira", "status": "pending"},
		{"id": 11, "student": 1, "student_name": "Ana", "date": "2026-01-05", "time": nil, "title": "Segunda", "status": "pending"},
	}}
	s, _ := newTestStore(t, h)
	require.NoError(t, s.LoadLessonsForMonth(context.Background()))

	require.NoError(t, s.DeleteLesson(context.Background(), "2026-01-05", 10))
	remaining := s.LessonsOn("2026-01-05")
	require.Len(t, remaining, 1)
	assert.Equal(t, "Segunda", remaining[0].Title)

	// Deleting the last lesson removes the whole day bucket.
	require.NoError(t, s.DeleteLesson(context.Background(), "2026-01-05", 11))
	assert.Empty(t, s.LessonsOn("2026-01-05"))
	assert.NotContains(t, s.LessonsByDay(), "2026-01-05")
}

func TestStudentInput_Payload_Defaults(t *testing.T) {
	p := StudentInput{Name: "  Ana  "}.payload()
	assert.Equal(t, "Ana", p.Name)
	assert.Equal(t, DefaultGuardians, p.Guardians)
	assert.True(t, p.Active)

	custom := StudentInput{Name: "Bia", Guardians: "Mãe: Carla"}.payload()
	assert.Equal(t, "Mãe: Carla", custom.Guardians)
}

func TestStore_CreateStudent_InvalidName_NoRequest(t *testing.T) {
	h := &recordingHandler{t: t}
	s, _ := newTestStore(t, h)

	err := s.CreateStudent(context.Background(), StudentInput{Name: "  "})
	assert.ErrorIs(t, err, ErrNameRequired)
	assert.Zero(t, h.count())
}

func TestStore_SetStudentActive_PatchesAndReloads(t *testing.T) {
	h := &recordingHandler{t: t, students: []map[string]any{
		{"id": 1, "name": "Ana", "active": false},
	}}
	s, _ := newTestStore(t, h)

	require.NoError(t, s.SetStudentActive(context.Background(), 1, false))

	reqs := h.recorded()
	require.Len(t, reqs, 2)
	assert.Equal(t, http.MethodPatch, reqs[0].Method)
	assert.Equal(t, "/students/1/", reqs[0].Path)
	assert.Equal(t, false, reqs[0].Body["active"])

	// The roster reflects the reload, not an optimistic edit.
	students := s.Students()
	require.Len(t, students, 1)
	assert.False(t, students[0].Active)
}

func TestStore_CreateTask_AlwaysTodo(t *testing.T) {
	h := &recordingHandler{t: t}
	s, _ := newTestStore(t, h)

	require.NoError(t, s.CreateTask(context.Background(), " Planejar aula "))

	reqs := h.recorded()
	require.NotEmpty(t, reqs)
	assert.Equal(t, "Planejar aula", reqs[0].Body["title"])
	assert.Equal(t, string(domain.TaskTodo), reqs[0].Body["status"])
	assert.Equal(t, "", reqs[0].Body["tags"])
}

func TestStore_CreateTask_EmptyTitle(t *testing.T) {
	h := &recordingHandler{t: t}
	s, _ := newTestStore(t, h)

	assert.ErrorIs(t, s.CreateTask(context.Background(), "   "), ErrTitleRequired)
	assert.Zero(t, h.count())
}

func TestStore_UpdateTaskStatus_MirrorsInPlace(t *testing.T) {
	h := &recordingHandler{t: t, tasks: []map[string]any{
		{"id": 5, "title": "Corrigir provas", "status": "todo", "tags": ""},
	}}
	s, _ := newTestStore(t, h)
	require.NoError(t, s.LoadTasks(context.Background()))

	require.NoError(t, s.UpdateTaskStatus(context.Background(), 5, domain.TaskDoing))

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, domain.TaskDoing, tasks[0].Status)
}

func TestStore_UpdateInvoiceStatus_MirrorsInPlace(t *testing.T) {
	h := &recordingHandler{t: t, invoices: []map[string]any{
		{"id": 20, "student": 1, "student_name": "Ana", "amount": "350.00", "status": "pending"},
	}}
	s, _ := newTestStore(t, h)
	require.NoError(t, s.LoadInvoicesForMonth(context.Background()))

	require.NoError(t, s.UpdateInvoiceStatus(context.Background(), 20, domain.InvoicePaid))

	invoices := s.Invoices()
	require.Len(t, invoices, 1)
	assert.Equal(t, domain.InvoicePaid, invoices[0].Status)
	assert.Zero(t, float64(s.ReceivableTotal()))
}
