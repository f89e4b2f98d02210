package pagamento

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para Pagamento.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// CriarEmLote insere todos os pagamentos de uma folha de uma vez
// (ignora se vazio).
func (r *Repository) CriarEmLote(pagamentos []*Pagamento) error {
	if len(pagamentos) == 0 {
		return nil
	}
	return r.DB.Create(pagamentos).Error
}

// ExisteChaveLote indica se uma folha com esta chave já foi submetida.
func (r *Repository) ExisteChaveLote(chave string) (bool, error) {
	var total int64
	err := r.DB.Model(&Pagamento{}).Where("chave_lote = ?", chave).Count(&total).Error
	return total > 0, err
}

// ListarTodos retorna todos os pagamentos com o prestador carregado,
// mais recentes primeiro.
func (r *Repository) ListarTodos() ([]Pagamento, error) {
	var lista []Pagamento
	err := r.DB.Preload("Prestador").Order("created_at DESC").Find(&lista).Error
	return lista, err
}

// ListarPorPrestador retorna os pagamentos de um único prestador.
func (r *Repository) ListarPorPrestador(prestadorID uuid.UUID) ([]Pagamento, error) {
	var lista []Pagamento
	err := r.DB.Preload("Prestador").
		Where("prestador_id = ?", prestadorID).
		Order("created_at DESC").
		Find(&lista).Error
	return lista, err
}

func (r *Repository) BuscarPorID(id uuid.UUID) (*Pagamento, error) {
	var p Pagamento
	if err := r.DB.Preload("Prestador").First(&p, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

// MarcarComoPagos transita os pagamentos selecionados de pendente para
// pago. Linhas já pagas (ou ids estranhos) ficam intactas; retorna quantas
// linhas mudaram.
func (r *Repository) MarcarComoPagos(ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	res := r.DB.Model(&Pagamento{}).
		Where("id IN ? AND status = ?", ids, StatusPendente).
		Update("status", StatusPago)
	return res.RowsAffected, res.Error
}

// VincularNotaFiscal define (ou limpa, com nil) a referência de nota fiscal.
func (r *Repository) VincularNotaFiscal(pagamentoID uuid.UUID, nfID *uuid.UUID) error {
	return r.DB.Model(&Pagamento{}).Where("id = ?", pagamentoID).Update("nota_fiscal_id", nfID).Error
}
