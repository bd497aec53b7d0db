package domain

import "encoding/json"

// Lesson is a scheduled tutoring session on a single calendar day.
// The server calls these "lessons"; the product calls them notas.
type Lesson struct {
	ID          int          `json:"id"`
	StudentID   int          `json:"student"`
	StudentName string       `json:"student_name"`
	DateKey     string       `json:"date"` // YYYY-MM-DD
	Time        string       `json:"time"` // HH:MM, "" when unscheduled
	Title       string       `json:"title"`
	Info        string       `json:"info"`
	Status      LessonStatus `json:"status"`
}

// lessonWire mirrors Lesson with a nullable time field as sent by the server.
type lessonWire struct {
	ID          int          `json:"id"`
	StudentID   int          `json:"student"`
	StudentName string       `json:"student_name"`
	DateKey     string       `json:"date"`
	Time        *string      `json:"time"`
	Title       string       `json:"title"`
	Info        string       `json:"info"`
	Status      LessonStatus `json:"status"`
}

// UnmarshalJSON maps the wire shape onto Lesson, normalizing the optional
// time-of-day: null becomes "", and HH:MM:SS is truncated to HH:MM.
func (l *Lesson) UnmarshalJSON(data []byte) error {
	var w lessonWire
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	*l = Lesson{
		ID:          w.ID,
		StudentID:   w.StudentID,
		StudentName: w.StudentName,
		DateKey:     w.DateKey,
		Title:       w.Title,
		Info:        w.Info,
		Status:      w.Status,
	}
	if w.Time != nil {
		l.Time = *w.Time
		if len(l.Time) > 5 {
			l.Time = l.Time[:5]
		}
	}
	return nil
}

// LessonStats holds per-status lesson counts for the loaded month.
type LessonStats struct {
	Confirmed int
	Pending   int
	Canceled  int
}

// CountByStatus tallies lessons across all day buckets.
func CountByStatus(byDay map[string][]Lesson) LessonStats {
	var st LessonStats
	for _, lessons := range byDay {
		for _, l := range lessons {
			switch l.Status {
			case LessonConfirmed:
				st.Confirmed++
			case LessonPending:
				st.Pending++
			case LessonCanceled:
				st.Canceled++
			}
		}
	}
	return st
}
