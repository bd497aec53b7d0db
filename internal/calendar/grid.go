package calendar

import (
	"time"

	"github.com/mvbarbosa/lousa/internal/dateutil"
	"github.com/mvbarbosa/lousa/internal/domain"
)

// MaxChips caps how many lesson summary chips a day cell previews.
// The count still reflects the true total.
const MaxChips = 3

// Chip is a one-line lesson summary shown inside a day cell.
type Chip struct {
	Status domain.LessonStatus
	Title  string
}

// DayCell is the projection of one calendar day.
type DayCell struct {
	Day      int
	Key      string // YYYY-MM-DD
	Count    int
	Chips    []Chip
	Selected bool
	Today    bool
}

// MonthGrid is the full projection of one month. LeadingBlanks is the
// number of empty placeholder cells before day 1 so weekday columns align
// (weeks start on Sunday, as on the original dashboard).
type MonthGrid struct {
	Year          int
	Month         time.Month
	LeadingBlanks int
	Cells         []DayCell
}

// BuildMonthGrid projects a lessons-by-day map onto a month grid.
// selectedKey and todayKey may be empty or fall outside the month; at most
// one cell is marked selected.
func BuildMonthGrid(year int, month time.Month, byDay map[string][]domain.Lesson, selectedKey, todayKey string) MonthGrid {
	grid := MonthGrid{
		Year:          year,
		Month:         month,
		LeadingBlanks: int(dateutil.FirstWeekday(year, month)),
	}

	days := dateutil.DaysInMonth(year, month)
	grid.Cells = make([]DayCell, 0, days)
	for day := 1; day <= days; day++ {
		key := dateutil.ToKey(time.Date(year, month, day, 0, 0, 0, 0, time.Local))
		lessons := byDay[key]

		cell := DayCell{
			Day:      day,
			Key:      key,
			Count:    len(lessons),
			Selected: key == selectedKey,
			Today:    key == todayKey,
		}
		for i, l := range lessons {
			if i == MaxChips {
				break
			}
			cell.Chips = append(cell.Chips, Chip{Status: l.Status, Title: l.Title})
		}
		grid.Cells = append(grid.Cells, cell)
	}

	return grid
}
