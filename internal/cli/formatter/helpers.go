package formatter

import (
	"strings"

	"github.com/mvbarbosa/lousa/internal/domain"
)

// Lesson status glyphs, matching the dashboard's note chips.
var lessonGlyphs = map[domain.LessonStatus]string{
	domain.LessonConfirmed: "✔",
	domain.LessonPending:   "•",
	domain.LessonCanceled:  "✖",
}

// LessonGlyph returns the one-character status marker for a lesson chip.
func LessonGlyph(status domain.LessonStatus) string {
	if g, ok := lessonGlyphs[status]; ok {
		return g
	}
	return "•"
}

// LessonStatusPill returns a colored lesson status label (pt-BR, as on the
// original dashboard).
func LessonStatusPill(status domain.LessonStatus) string {
	switch status {
	case domain.LessonConfirmed:
		return StyleGreen.Render("✔ Confirmada")
	case domain.LessonPending:
		return StyleYellow.Render("• Pendente")
	case domain.LessonCanceled:
		return StyleRed.Render("✖ Cancelada")
	default:
		return StyleDim.Render(string(status))
	}
}

// LessonStatusLabel returns the plain pt-BR label for a lesson status.
func LessonStatusLabel(status domain.LessonStatus) string {
	switch status {
	case domain.LessonConfirmed:
		return "Confirmada"
	case domain.LessonPending:
		return "Pendente"
	case domain.LessonCanceled:
		return "Cancelada"
	default:
		return string(status)
	}
}

// TaskStatusPill returns a colored task status label.
func TaskStatusPill(status domain.TaskStatus) string {
	switch status {
	case domain.TaskTodo:
		return StyleBlue.Render("○ A fazer")
	case domain.TaskDoing:
		return StyleYellow.Render("● Fazendo")
	case domain.TaskDone:
		return StyleDim.Render("✔ Concluída")
	default:
		return StyleDim.Render(string(status))
	}
}

// TaskStatusLabel returns the plain pt-BR label for a task status.
func TaskStatusLabel(status domain.TaskStatus) string {
	switch status {
	case domain.TaskTodo:
		return "A fazer"
	case domain.TaskDoing:
		return "Fazendo"
	case domain.TaskDone:
		return "Concluída"
	default:
		return string(status)
	}
}

// InvoiceStatusPill returns a colored invoice status label.
func InvoiceStatusPill(status domain.InvoiceStatus) string {
	switch status {
	case domain.InvoicePaid:
		return StyleGreen.Render("✔ Pago")
	case domain.InvoicePending:
		return StyleYellow.Render("• Pendente")
	case domain.InvoiceOverdue:
		return StyleRed.Render("! Vencido")
	case domain.InvoiceRemind:
		return StylePurple.Render("◷ Lembrar de cobrar")
	default:
		return StyleDim.Render(string(status))
	}
}

// InvoiceStatusLabel returns the plain pt-BR label for an invoice status.
func InvoiceStatusLabel(status domain.InvoiceStatus) string {
	switch status {
	case domain.InvoicePaid:
		return "Pago"
	case domain.InvoicePending:
		return "Pendente"
	case domain.InvoiceOverdue:
		return "Vencido"
	case domain.InvoiceRemind:
		return "Lembrar de cobrar"
	default:
		return string(status)
	}
}

// Tags renders a tag list as dim bracketed labels.
func Tags(tags []string) string {
	if len(tags) == 0 {
		return ""
	}
	parts := make([]string, len(tags))
	for i, t := range tags {
		parts[i] = StyleDim.Render("[" + t + "]")
	}
	return strings.Join(parts, " ")
}

// PadRight pads s with spaces to width, truncating with an ellipsis when
// it does not fit.
func PadRight(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		if width < 1 {
			return ""
		}
		return string(r[:width-1]) + "…"
	}
	return s + strings.Repeat(" ", width-len(r))
}
