package pagamento

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pruma-gestao/api-pruma/internal/prestador"
)

// Regras puras da Folha PJ: normalização da entrada do operador, total por
// linha e montagem dos registros de pagamento.

var (
	ErrFolhaVazia = errors.New("Selecione pelo menos um prestador para criar pagamentos")
)

// LinhaFolha é uma linha selecionada pelo operador. Comissão e desconto
// chegam como o texto cru digitado; mês e ano vazios valem o mês corrente.
type LinhaFolha struct {
	PrestadorID uuid.UUID `json:"prestadorId"`
	Comissao    string    `json:"comissao"`
	Desconto    string    `json:"desconto"`
	Mes         string    `json:"mes"`
	Ano         string    `json:"ano"`
}

// NormalizarValor interpreta a entrada de comissão/desconto: vírgula conta
// como separador decimal, todo o resto que não é dígito ou ponto é
// descartado e só o primeiro ponto decimal sobrevive. Texto não
// interpretável vale 0. Um valor negativo é recusado (ok=false) e o
// chamador mantém o valor anterior.
func NormalizarValor(entrada string) (float64, bool) {
	entrada = strings.ReplaceAll(entrada, ",", ".")
	var b strings.Builder
	for _, r := range entrada {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	limpo := b.String()
	if partes := strings.Split(limpo, "."); len(partes) > 2 {
		limpo = partes[0] + "." + partes[1]
	}
	v, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		v = 0
	}
	if v < 0 {
		return 0, false
	}
	return v, true
}

// AplicarValor aplica a entrada sobre o valor vigente, retendo o anterior
// quando a entrada é recusada.
func AplicarValor(anterior float64, entrada string) float64 {
	v, ok := NormalizarValor(entrada)
	if !ok {
		return anterior
	}
	return v
}

// TotalLinha calcula o total exato de uma linha, inclusive negativo.
func TotalLinha(remuneracao, comissao, desconto float64) float64 {
	return remuneracao + comissao - desconto
}

// MesReferente compõe a string "AAAA-MM-01" validando mês (01–12) e ano
// (ano corrente até dois à frente).
func MesReferente(mes, ano string, agora time.Time) (string, error) {
	m, err := strconv.Atoi(mes)
	if err != nil || m < 1 || m > 12 {
		return "", fmt.Errorf("mês inválido: %q", mes)
	}
	a, err := strconv.Atoi(ano)
	if err != nil || a < agora.Year() || a > agora.Year()+2 {
		return "", fmt.Errorf("ano inválido: %q", ano)
	}
	return fmt.Sprintf("%04d-%02d-01", a, m), nil
}

// MontarPagamentos valida as linhas contra o conjunto de prestadores ativos
// e produz um registro pendente por linha, todos com a mesma data de
// submissão. A folha inteira é recusada se alguma linha aponta para um
// prestador inativo ou fecha com total negativo; nada é persistido aqui.
func MontarPagamentos(ativos []prestador.PrestadorPJ, linhas []LinhaFolha, criadoPor uuid.UUID, agora time.Time, chaveLote string) ([]*Pagamento, error) {
	if len(linhas) == 0 {
		return nil, ErrFolhaVazia
	}

	porID := make(map[uuid.UUID]prestador.PrestadorPJ, len(ativos))
	for _, p := range ativos {
		porID[p.ID] = p
	}

	mesPadrao := fmt.Sprintf("%02d", int(agora.Month()))
	anoPadrao := strconv.Itoa(agora.Year())

	pagamentos := make([]*Pagamento, 0, len(linhas))
	for _, linha := range linhas {
		p, ok := porID[linha.PrestadorID]
		if !ok {
			return nil, fmt.Errorf("prestador %s não encontrado entre os ativos", linha.PrestadorID)
		}

		comissao := AplicarValor(0, linha.Comissao)
		desconto := AplicarValor(0, linha.Desconto)
		total := TotalLinha(p.Remuneracao, comissao, desconto)
		if total < 0 {
			return nil, fmt.Errorf("total negativo para o prestador %s %s (desconto maior que remuneração e comissão)", p.Nome, p.Sobrenome)
		}

		mes := linha.Mes
		if mes == "" {
			mes = mesPadrao
		}
		ano := linha.Ano
		if ano == "" {
			ano = anoPadrao
		}
		referencia, err := MesReferente(mes, ano, agora)
		if err != nil {
			return nil, err
		}

		pagamentos = append(pagamentos, &Pagamento{
			PrestadorID:  p.ID,
			Valor:        total,
			Data:         agora,
			MesReferente: referencia,
			Status:       StatusPendente,
			ChaveLote:    chaveLote,
			CriadoPor:    criadoPor,
		})
	}
	return pagamentos, nil
}

// SomaFolha é o total exibido/confirmado de uma folha montada.
func SomaFolha(pagamentos []*Pagamento) float64 {
	var soma float64
	for _, p := range pagamentos {
		soma += p.Valor
	}
	return soma
}
