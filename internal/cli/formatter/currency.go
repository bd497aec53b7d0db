package formatter

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/mvbarbosa/lousa/internal/domain"
)

var brlPrinter = message.NewPrinter(language.BrazilianPortuguese)

// BRL formats an amount as Brazilian currency, e.g. "R$ 1.234,56".
func BRL(amount domain.Money) string {
	return brlPrinter.Sprintf("R$ %v", number.Decimal(float64(amount),
		number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}
