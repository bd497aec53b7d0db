package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvbarbosa/lousa/internal/domain"
)

func TestLessonGlyph(t *testing.T) {
	assert.Equal(t, "✔", LessonGlyph(domain.LessonConfirmed))
	assert.Equal(t, "•", LessonGlyph(domain.LessonPending))
	assert.Equal(t, "✖", LessonGlyph(domain.LessonCanceled))
	assert.Equal(t, "•", LessonGlyph("unknown"))
}

func TestLessonStatusLabel(t *testing.T) {
	assert.Equal(t, "Confirmada", LessonStatusLabel(domain.LessonConfirmed))
	assert.Equal(t, "Pendente", LessonStatusLabel(domain.LessonPending))
	assert.Equal(t, "Cancelada", LessonStatusLabel(domain.LessonCanceled))
}

func TestTaskStatusLabel(t *testing.T) {
	assert.Equal(t, "A fazer", TaskStatusLabel(domain.TaskTodo))
	assert.Equal(t, "Fazendo", TaskStatusLabel(domain.TaskDoing))
	assert.Equal(t, "Concluída", TaskStatusLabel(domain.TaskDone))
}

func TestInvoiceStatusLabel(t *testing.T) {
	assert.Equal(t, "Pago", InvoiceStatusLabel(domain.InvoicePaid))
	assert.Equal(t, "Pendente", InvoiceStatusLabel(domain.InvoicePending))
	assert.Equal(t, "Vencido", InvoiceStatusLabel(domain.InvoiceOverdue))
	assert.Equal(t, "Lembrar de cobrar", InvoiceStatusLabel(domain.InvoiceRemind))
}

func TestTags(t *testing.T) {
	assert.Empty(t, Tags(nil))
	out := Tags([]string{"prova", "escola"})
	assert.Contains(t, out, "[prova]")
	assert.Contains(t, out, "[escola]")
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "ab   ", PadRight("ab", 5))
	assert.Equal(t, "abcd…", PadRight("abcdefgh", 5))
	assert.Equal(t, "", PadRight("abc", 0))
	// Multibyte runes count as one column.
	assert.Equal(t, "Março ", PadRight("Março", 6))
}
