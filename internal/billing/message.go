package billing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mvbarbosa/lousa/internal/domain"
)

// Defaults used when a student record leaves a billing field blank.
const (
	// DefaultCountryCode is prepended to phone numbers stored without an
	// international prefix.
	DefaultCountryCode = "55"

	// DefaultPixKey is the tutor's fallback payment key.
	DefaultPixKey = "61.185.079/0001-67"

	// DefaultInstallments is the standing installment note.
	DefaultInstallments = "Mensal - Vencimento dia 05"
)

// Fields are the inputs to the billing reminder template. Populate fills
// them from a student record; the UI lets the tutor tweak them before
// sending.
type Fields struct {
	Plan         string
	Installments string
	Value        string
	Done         int
	Total        int
	PixKey       string
}

// Populate builds template fields from a student, applying defaults for
// blank values.
func Populate(s domain.Student) Fields {
	f := Fields{
		Plan:         s.PlanName,
		Installments: DefaultInstallments,
		Done:         s.LessonsDone,
		Total:        s.LessonsTotal,
		PixKey:       s.PixKey,
	}
	if f.PixKey == "" {
		f.PixKey = DefaultPixKey
	}
	return f
}

// Message renders the payment reminder sent to a student.
func Message(name string, f Fields) string {
	pix := f.PixKey
	if pix == "" {
		pix = "informar no contato"
	}
	return fmt.Sprintf(`Olá %s. Espero que você esteja bem!

Este é um lembrete automático do seu Plano: %s
Parcelamento: %s
Valor R$: %s
Progresso: %d/%d Aulas Concluídas
Chave Pix: %s

Conte comigo para qualquer dúvida. Obrigado por estudar comigo!`,
		name, f.Plan, f.Installments, f.Value, f.Done, f.Total, pix)
}

// NormalizePhone strips a stored phone number down to digits and prepends
// the default country code when the number has no international prefix.
// "(11) 99999-0000" becomes "5511999990000".
func NormalizePhone(phone string) (string, error) {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	if digits.Len() == 0 {
		return "", fmt.Errorf("phone number %q has no digits", phone)
	}
	num := digits.String()
	if len(num) <= 11 {
		num = DefaultCountryCode + num
	}
	return num, nil
}

// WhatsAppLink builds a wa.me deep link that opens a chat with the message
// pre-filled. The phone must already be normalized.
func WhatsAppLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s", phone, url.QueryEscape(message))
}

// CopyToClipboard places the rendered message on the system clipboard.
// Fire and forget: failure is reported but has no state to roll back.
func CopyToClipboard(message string) error {
	if err := clipboard.WriteAll(message); err != nil {
		return fmt.Errorf("copying message: %w", err)
	}
	return nil
}
