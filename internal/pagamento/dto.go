package pagamento

import (
	"time"

	"github.com/google/uuid"
)

// ResumoPagamentoDTO é a linha da listagem de pagamentos, com o nome do
// prestador achatado para a tabela.
type ResumoPagamentoDTO struct {
	ID                 uuid.UUID  `json:"id"`
	PrestadorID        uuid.UUID  `json:"prestadorId"`
	PrestadorNome      string     `json:"prestadorNome"`
	PrestadorSobrenome string     `json:"prestadorSobrenome"`
	Data               time.Time  `json:"data"`
	MesReferente       string     `json:"mesReferente"`
	Valor              float64    `json:"valor"`
	Status             string     `json:"status"`
	NotaFiscalID       *uuid.UUID `json:"nfId"`
}

func montarResumo(p Pagamento) ResumoPagamentoDTO {
	return ResumoPagamentoDTO{
		ID:                 p.ID,
		PrestadorID:        p.PrestadorID,
		PrestadorNome:      p.Prestador.Nome,
		PrestadorSobrenome: p.Prestador.Sobrenome,
		Data:               p.Data,
		MesReferente:       p.MesReferente,
		Valor:              p.Valor,
		Status:             p.Status,
		NotaFiscalID:       p.NotaFiscalID,
	}
}

// criarFolhaRequest é a submissão da Folha PJ.
type criarFolhaRequest struct {
	ChaveLote string       `json:"chaveLote"`
	Linhas    []LinhaFolha `json:"linhas"`
}

// FolhaCriadaResponse confirma a folha inserida.
type FolhaCriadaResponse struct {
	Criados int     `json:"criados"`
	Total   float64 `json:"total"`
}

type processarRequest struct {
	IDs []uuid.UUID `json:"ids"`
}
