package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mvbarbosa/lousa/internal/calendar"
	"github.com/mvbarbosa/lousa/internal/domain"
)

func TestMonthDelta(t *testing.T) {
	jan := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.Local)

	assert.Equal(t, 0, monthDelta(jan, time.Date(2026, time.January, 31, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, 1, monthDelta(jan, time.Date(2026, time.February, 1, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, -1, monthDelta(jan, time.Date(2025, time.December, 15, 0, 0, 0, 0, time.Local)))
	assert.Equal(t, 12, monthDelta(jan, time.Date(2027, time.January, 1, 0, 0, 0, 0, time.Local)))
}

func TestRenderDayCell_GlyphsAndOverflow(t *testing.T) {
	cell := calendar.DayCell{
		Day:   5,
		Count: 5,
		Chips: []calendar.Chip{
			{Status: domain.LessonConfirmed},
			{Status: domain.LessonPending},
			{Status: domain.LessonCanceled},
		},
	}

	out := renderDayCell(cell)
	assert.Contains(t, out, "5")
	assert.Contains(t, out, "✔")
	assert.Contains(t, out, "•")
	assert.Contains(t, out, "✖")
	assert.Contains(t, out, "+2")
}

func TestRenderDayCell_EmptyDayHasNoGlyphs(t *testing.T) {
	out := renderDayCell(calendar.DayCell{Day: 3})
	assert.Contains(t, out, "3")
	for _, glyph := range []string{"✔", "•", "✖", "+"} {
		assert.NotContains(t, out, glyph)
	}
}

func TestWeekdayHeaders_SevenColumns(t *testing.T) {
	assert.Len(t, weekdayHeadersPT, 7)
	assert.Equal(t, "dom", weekdayHeadersPT[0])
	assert.Equal(t, "sáb", weekdayHeadersPT[6])
}

func TestRenderDayCell_FixedWidth(t *testing.T) {
	// Cells must all occupy the same number of columns or the grid skews.
	plain := renderDayCell(calendar.DayCell{Day: 1})
	busy := renderDayCell(calendar.DayCell{
		Day:   28,
		Count: 2,
		Chips: []calendar.Chip{{Status: domain.LessonConfirmed}, {Status: domain.LessonPending}},
	})

	assert.Equal(t, visibleWidth(plain), visibleWidth(busy))
}

// visibleWidth counts printable runes, skipping ANSI escape sequences.
func visibleWidth(s string) int {
	width := 0
	inEscape := false
	for _, r := range s {
		switch {
		case inEscape:
			if strings.ContainsRune("mK", r) {
				inEscape = false
			}
		case r == '\x1b':
			inEscape = true
		default:
			width++
		}
	}
	return width
}
