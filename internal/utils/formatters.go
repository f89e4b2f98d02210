package utils

import (
	"strconv"
	"strings"
)

func somenteDigitos(valor string) string {
	var b strings.Builder
	for _, r := range valor {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// FormatarCNPJ aplica a máscara 00.000.000/0000-00 de forma progressiva.
func FormatarCNPJ(valor string) string {
	d := somenteDigitos(valor)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 5:
		return d[:2] + "." + d[2:]
	case len(d) <= 8:
		return d[:2] + "." + d[2:5] + "." + d[5:]
	case len(d) <= 12:
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:]
	default:
		if len(d) > 14 {
			d = d[:14]
		}
		return d[:2] + "." + d[2:5] + "." + d[5:8] + "/" + d[8:12] + "-" + d[12:]
	}
}

// FormatarTelefone aplica a máscara (00) 00000-0000 de forma progressiva.
func FormatarTelefone(valor string) string {
	d := somenteDigitos(valor)
	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 6:
		return "(" + d[:2] + ") " + d[2:]
	case len(d) <= 10:
		return "(" + d[:2] + ") " + d[2:6] + "-" + d[6:]
	default:
		if len(d) > 11 {
			d = d[:11]
		}
		return "(" + d[:2] + ") " + d[2:7] + "-" + d[7:]
	}
}

// ParseMoeda converte entrada monetária pt-BR ("R$ 1.234,56") em float64.
// Símbolo, espaços e separadores de milhar são descartados; vírgula vira
// ponto decimal. Entrada inválida vale 0.
func ParseMoeda(valor string) float64 {
	limpo := strings.NewReplacer("R$", "", " ", "", " ", "", ".", "").Replace(valor)
	limpo = strings.ReplaceAll(limpo, ",", ".")
	n, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return 0
	}
	return n
}
