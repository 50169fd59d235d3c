package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencyFormat descreve como um valor em centavos é exibido
type CurrencyFormat struct {
	Symbol           string
	DecimalSeparator string
	GroupSeparator   string
}

// BRL segue o formato pt-BR: R$ 1.234,56
var BRL = CurrencyFormat{
	Symbol:           "R$",
	DecimalSeparator: ",",
	GroupSeparator:   ".",
}

// OnlyDigits remove tudo que não for dígito ASCII
func OnlyDigits(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		if raw[i] >= '0' && raw[i] <= '9' {
			b.WriteByte(raw[i])
		}
	}
	return b.String()
}

// Format interpreta os dígitos de raw como centavos e devolve o valor formatado.
// Entrada sem dígitos resulta no valor zero formatado.
func (f CurrencyFormat) Format(raw string) string {
	return f.FormatMinorUnits(OnlyDigits(raw))
}

// FormatMinorUnits formata uma sequência de dígitos já limpa, interpretada como centavos.
// O valor é exato para qualquer quantidade de dígitos.
func (f CurrencyFormat) FormatMinorUnits(digits string) string {
	amount := decimal.Zero
	if digits != "" {
		parsed, err := decimal.NewFromString(digits)
		if err == nil {
			amount = parsed.Shift(-2)
		}
	}

	integer, cents, _ := strings.Cut(amount.StringFixed(2), ".")

	var b strings.Builder
	b.WriteString(f.Symbol)
	b.WriteString(" ")
	for i := 0; i < len(integer); i++ {
		if i > 0 && (len(integer)-i)%3 == 0 {
			b.WriteString(f.GroupSeparator)
		}
		b.WriteByte(integer[i])
	}
	b.WriteString(f.DecimalSeparator)
	b.WriteString(cents)

	return b.String()
}

func FormatBRL(raw string) string {
	return BRL.Format(raw)
}
