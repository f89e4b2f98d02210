package utils

import "testing"

func TestFormatarCNPJ(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"", ""},
		{"12", "12"},
		{"12345", "12.345"},
		{"12345678", "12.345.678"},
		{"123456780001", "12.345.678/0001"},
		{"12345678000190", "12.345.678/0001-90"},
		{"12.345.678/0001-90", "12.345.678/0001-90"},
		{"12345678000190999", "12.345.678/0001-90"},
		{"ab12cd345", "12.345"},
	}
	for _, c := range casos {
		if got := FormatarCNPJ(c.entrada); got != c.esperado {
			t.Errorf("FormatarCNPJ(%q) = %q, esperado %q", c.entrada, got, c.esperado)
		}
	}
}

func TestFormatarTelefone(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado string
	}{
		{"", ""},
		{"11", "11"},
		{"119876", "(11) 9876"},
		{"1198765432", "(11) 9876-5432"},
		{"11987654321", "(11) 98765-4321"},
		{"(11) 98765-4321", "(11) 98765-4321"},
		{"119876543219999", "(11) 98765-4321"},
	}
	for _, c := range casos {
		if got := FormatarTelefone(c.entrada); got != c.esperado {
			t.Errorf("FormatarTelefone(%q) = %q, esperado %q", c.entrada, got, c.esperado)
		}
	}
}

func TestParseMoeda(t *testing.T) {
	casos := []struct {
		entrada  string
		esperado float64
	}{
		{"R$ 1.234,56", 1234.56},
		{"1234,56", 1234.56},
		{"1234.56", 123456}, // ponto é separador de milhar na entrada pt-BR
		{"5000", 5000},
		{"R$5.000,00", 5000},
		{"", 0},
		{"abc", 0},
	}
	for _, c := range casos {
		if got := ParseMoeda(c.entrada); got != c.esperado {
			t.Errorf("ParseMoeda(%q) = %v, esperado %v", c.entrada, got, c.esperado)
		}
	}
}
