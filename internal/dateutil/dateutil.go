package dateutil

import (
	"fmt"
	"strings"
	"time"
)

// KeyLayout is the canonical calendar-day key format used to index lessons
// and to talk to the API.
const KeyLayout = "2006-01-02"

// ToKey converts a date to its YYYY-MM-DD key using the date's local
// calendar fields. It never round-trips through UTC serialization, so a
// date close to midnight cannot shift to the previous or next day.
func ToKey(t time.Time) string {
	y, m, d := t.Date()
	return fmt.Sprintf("%04d-%02d-%02d", y, int(m), d)
}

// ParseKey is the inverse of ToKey. The returned time is midnight in the
// local location, built from the key's calendar fields directly.
func ParseKey(key string) (time.Time, error) {
	var y, m, d int
	if _, err := fmt.Sscanf(key, "%d-%d-%d", &y, &m, &d); err != nil {
		return time.Time{}, fmt.Errorf("invalid date key %q: %w", key, err)
	}
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, fmt.Errorf("invalid date key %q", key)
	}
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.Local), nil
}

// DaysInMonth returns the number of days in the given month.
// Computed in UTC: only a day count is needed, not an instant, and UTC
// arithmetic is immune to local DST boundary effects.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday of day 1 of the given month (Sunday = 0).
// UTC for the same reason as DaysInMonth.
func FirstWeekday(year int, month time.Month) time.Weekday {
	return time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday()
}

// MonthParam formats a date as the YYYY-MM query parameter the API expects.
func MonthParam(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}

// MonthStart returns midnight on day 1 of t's month, in t's location.
func MonthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

// AddMonths moves the first day of t's month by delta months.
// Always anchored to day 1 so February cannot overflow into March.
func AddMonths(t time.Time, delta int) time.Time {
	return time.Date(t.Year(), t.Month()+time.Month(delta), 1, 0, 0, 0, 0, t.Location())
}

var monthNamesPT = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

var weekdayNamesPT = [...]string{
	"domingo", "segunda-feira", "terça-feira", "quarta-feira",
	"quinta-feira", "sexta-feira", "sábado",
}

// MonthLabel returns the pt-BR month title, e.g. "Janeiro de 2026".
func MonthLabel(t time.Time) string {
	r := []rune(monthNamesPT[int(t.Month())-1])
	return fmt.Sprintf("%s%s de %d", strings.ToUpper(string(r[0])), string(r[1:]), t.Year())
}

// DayLabel returns the pt-BR long label for a day, e.g. "segunda-feira, 05 de janeiro".
func DayLabel(t time.Time) string {
	return fmt.Sprintf("%s, %02d de %s",
		weekdayNamesPT[int(t.Weekday())], t.Day(), monthNamesPT[int(t.Month())-1])
}
