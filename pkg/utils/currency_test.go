package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "Entrada vazia vira zero formatado", input: "", expected: "R$ 0,00"},
		{name: "Somente letras vira zero formatado", input: "abc", expected: "R$ 0,00"},
		{name: "Um dígito é tratado como centavos", input: "5", expected: "R$ 0,05"},
		{name: "Dois dígitos", input: "50", expected: "R$ 0,50"},
		{name: "Ruído entre dígitos é ignorado", input: "abc1234xyz", expected: "R$ 12,34"},
		{name: "Zeros à esquerda são descartados", input: "000123", expected: "R$ 1,23"},
		{name: "Milhar recebe separador", input: "123456", expected: "R$ 1.234,56"},
		{name: "Milhões recebem dois separadores", input: "123456789", expected: "R$ 1.234.567,89"},
		{name: "Valor já formatado é estável", input: "R$ 1.234,56", expected: "R$ 1.234,56"},
		{name: "Valores maiores que float64 mantêm os centavos", input: "12345678901234567891", expected: "R$ 123.456.789.012.345.678,91"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBRL(tt.input))
		})
	}
}

func TestFormatBRL_IgnoresNonDigitNoise(t *testing.T) {
	digits := []string{"", "0", "7", "42", "100", "99999", "1234567"}
	noise := []func(string) string{
		func(d string) string { return d },
		func(d string) string { return "R$ " + d },
		func(d string) string { return d + " reais" },
		func(d string) string {
			out := ""
			for _, r := range d {
				out += string(r) + ".,-"
			}
			return out
		},
	}

	for _, d := range digits {
		want := BRL.FormatMinorUnits(d)
		for _, n := range noise {
			assert.Equal(t, want, FormatBRL(n(d)), "entrada %q", n(d))
		}
	}
}

func TestFormatBRL_ReformatOwnOutput(t *testing.T) {
	for _, input := range []string{"", "1", "1234", "987654321"} {
		first := FormatBRL(input)
		assert.Equal(t, first, FormatBRL(first))
	}
}

func TestFormatMinorUnits(t *testing.T) {
	tests := []struct {
		name     string
		digits   string
		expected string
	}{
		{name: "Sem dígitos", digits: "", expected: "R$ 0,00"},
		{name: "Somente zeros", digits: "0000", expected: "R$ 0,00"},
		{name: "Centavo único", digits: "1", expected: "R$ 0,01"},
		{name: "Exatamente mil reais", digits: "100000", expected: "R$ 1.000,00"},
		{name: "Vinte dígitos", digits: "12345678901234567891", expected: "R$ 123.456.789.012.345.678,91"},
		{name: "Trinta dígitos", digits: "999999999999999999999999999999", expected: "R$ 9.999.999.999.999.999.999.999.999.999,99"},
		{name: "Entrada não numérica vira zero", digits: "1a2", expected: "R$ 0,00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BRL.FormatMinorUnits(tt.digits))
		})
	}
}

func TestOnlyDigits(t *testing.T) {
	assert.Equal(t, "", OnlyDigits(""))
	assert.Equal(t, "123456", OnlyDigits("R$ 1.234,56"))
	// dígitos fora do ASCII não contam como centavos
	assert.Equal(t, "3", OnlyDigits("١٢3"))
}
