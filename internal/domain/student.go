package domain

// Student is a roster entry. Students are never hard-deleted: "removal"
// flips Active to false and the record stays on the server.
type Student struct {
	ID           int    `json:"id"`
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

// ProgressPercent returns plan completion as an integer percentage,
// clamped to [0,100]. A plan with zero total lessons reads as 0%.
func (s Student) ProgressPercent() int {
	if s.LessonsTotal <= 0 {
		return 0
	}
	pct := s.LessonsDone * 100 / s.LessonsTotal
	if pct > 100 {
		return 100
	}
	if pct < 0 {
		return 0
	}
	return pct
}

// ActiveStudents filters the roster to active entries, preserving order.
func ActiveStudents(students []Student) []Student {
	var out []Student
	for _, s := range students {
		if s.Active {
			out = append(out, s)
		}
	}
	return out
}
