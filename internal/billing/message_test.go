package billing

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvbarbosa/lousa/internal/domain"
)

func TestPopulate_AppliesDefaults(t *testing.T) {
	s := domain.Student{
		Name:         "Ana",
		PlanName:     "Mensal 8 aulas",
		LessonsDone:  3,
		LessonsTotal: 8,
	}

	f := Populate(s)
	assert.Equal(t, "Mensal 8 aulas", f.Plan)
	assert.Equal(t, DefaultInstallments, f.Installments)
	assert.Equal(t, DefaultPixKey, f.PixKey)
	assert.Equal(t, 3, f.Done)
	assert.Equal(t, 8, f.Total)
}

func TestPopulate_KeepsStudentPixKey(t *testing.T) {
	s := domain.Student{Name: "Bia", PixKey: "bia@example.com"}
	assert.Equal(t, "bia@example.com", Populate(s).PixKey)
}

func TestMessage_RendersTemplate(t *testing.T) {
	f := Fields{
		Plan:         "Mensal 8 aulas",
		Installments: "Mensal - Vencimento dia 05",
		Value:        "350,00",
		Done:         3,
		Total:        8,
		PixKey:       "chave-pix",
	}

	msg := Message("Ana", f)
	assert.True(t, strings.HasPrefix(msg, "Olá Ana. Espero que você esteja bem!"))
	assert.Contains(t, msg, "Plano: Mensal 8 aulas")
	assert.Contains(t, msg, "Parcelamento: Mensal - Vencimento dia 05")
	assert.Contains(t, msg, "Valor R$: 350,00")
	assert.Contains(t, msg, "Progresso: 3/8 Aulas Concluídas")
	assert.Contains(t, msg, "Chave Pix: chave-pix")
	assert.Contains(t, msg, "Obrigado por estudar comigo!")
}

func TestMessage_BlankPixKeyFallback(t *testing.T) {
	msg := Message("Ana", Fields{})
	assert.Contains(t, msg, "Chave Pix: informar no contato")
}

func TestNormalizePhone(t *testing.T) {
	tests := []struct {
		name  string
		phone string
		want  string
	}{
		{"formatted local number", "(11) 99999-0000", "5511999990000"},
		{"bare digits", "11999990000", "5511999990000"},
		{"already has country code", "5511999990000", "5511999990000"},
		{"short landline", "3333-4444", "5533334444"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizePhone(tt.phone)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNormalizePhone_NoDigits(t *testing.T) {
	_, err := NormalizePhone("sem telefone")
	assert.Error(t, err)
}

func TestWhatsAppLink_EscapesMessage(t *testing.T) {
	link := WhatsAppLink("5511999990000", "Olá Ana & família")
	assert.True(t, strings.HasPrefix(link, "https://wa.me/5511999990000?text="))
	assert.Contains(t, link, "Ol%C3%A1")
	assert.Contains(t, link, "%26")
	assert.NotContains(t, link, " ")
}
