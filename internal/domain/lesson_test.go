package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLesson_UnmarshalJSON_NullTime(t *testing.T) {
	raw := `{"id":1,"student":2,"student_name":"Ana","date":"2026-01-05","time":null,"title":"Reforço","info":"","status":"pending"}`

	var l Lesson
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	assert.Equal(t, "", l.Time)
	assert.Equal(t, "2026-01-05", l.DateKey)
	assert.Equal(t, LessonPending, l.Status)
}

func TestLesson_UnmarshalJSON_TruncatesSeconds(t *testing.T) {
	raw := `{"id":1,"student":2,"student_name":"Ana","date":"2026-01-05","time":"14:30:00","title":"Reforço","info":"","status":"confirmed"}`

	var l Lesson
	require.NoError(t, json.Unmarshal([]byte(raw), &l))
	assert.Equal(t, "14:30", l.Time)
}

func TestCountByStatus(t *testing.T) {
	byDay := map[string][]Lesson{
		"2026-01-05": {
			{Status: LessonConfirmed},
			{Status: LessonPending},
		},
		"2026-01-12": {
			{Status: LessonConfirmed},
			{Status: LessonCanceled},
		},
	}

	st := CountByStatus(byDay)
	assert.Equal(t, 2, st.Confirmed)
	assert.Equal(t, 1, st.Pending)
	assert.Equal(t, 1, st.Canceled)
}

func TestCountByStatus_Empty(t *testing.T) {
	assert.Equal(t, LessonStats{}, CountByStatus(nil))
}
