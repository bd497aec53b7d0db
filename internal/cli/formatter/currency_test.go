package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvbarbosa/lousa/internal/domain"
)

func TestBRL(t *testing.T) {
	assert.Equal(t, "R$ 350,00", BRL(domain.Money(350)))
	assert.Equal(t, "R$ 1.234,56", BRL(domain.Money(1234.56)))
	assert.Equal(t, "R$ 0,00", BRL(domain.Money(0)))
}
