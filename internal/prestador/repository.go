package prestador

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Salvar(db *gorm.DB, p *PrestadorPJ) error
	BuscarPorID(db *gorm.DB, id uuid.UUID) (*PrestadorPJ, error)
	ListarTodos(db *gorm.DB) ([]PrestadorPJ, error)
	ListarAtivos(db *gorm.DB) ([]PrestadorPJ, error)
	Atualizar(db *gorm.DB, id uuid.UUID, novosDados *PrestadorPJ) error
	DefinirAtivo(db *gorm.DB, id uuid.UUID, ativo bool, status string) error
	AtualizarContrato(db *gorm.DB, id uuid.UUID, caminho *string, status string) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Salvar(db *gorm.DB, p *PrestadorPJ) error {
	return db.Save(p).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, id uuid.UUID) (*PrestadorPJ, error) {
	var p PrestadorPJ
	err := db.First(&p, "id = ?", id).Error
	return &p, err
}

func (r *repositoryImpl) ListarTodos(db *gorm.DB) ([]PrestadorPJ, error) {
	var lista []PrestadorPJ
	err := db.Order("nome").Find(&lista).Error
	return lista, err
}

// ListarAtivos é a consulta da Folha PJ: só prestadores ativos, por nome.
func (r *repositoryImpl) ListarAtivos(db *gorm.DB) ([]PrestadorPJ, error) {
	var lista []PrestadorPJ
	err := db.Where("ativo = ?", true).Order("nome").Find(&lista).Error
	return lista, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, id uuid.UUID, novosDados *PrestadorPJ) error {
	var existente PrestadorPJ
	if err := db.First(&existente, "id = ?", id).Error; err != nil {
		return err
	}

	existente.Nome = novosDados.Nome
	existente.Sobrenome = novosDados.Sobrenome
	existente.RazaoSocial = novosDados.RazaoSocial
	existente.CNPJ = novosDados.CNPJ
	existente.TelefoneContato = novosDados.TelefoneContato
	existente.Nascimento = novosDados.Nascimento
	existente.Funcao = novosDados.Funcao
	existente.DataInicio = novosDados.DataInicio
	existente.Remuneracao = novosDados.Remuneracao
	existente.EnderecoLogradouro = novosDados.EnderecoLogradouro
	existente.EnderecoCidade = novosDados.EnderecoCidade
	existente.ChavePix = novosDados.ChavePix

	return db.Save(&existente).Error
}

func (r *repositoryImpl) DefinirAtivo(db *gorm.DB, id uuid.UUID, ativo bool, status string) error {
	return db.Model(&PrestadorPJ{}).Where("id = ?", id).Updates(map[string]interface{}{
		"ativo":           ativo,
		"status_contrato": status,
	}).Error
}

func (r *repositoryImpl) AtualizarContrato(db *gorm.DB, id uuid.UUID, caminho *string, status string) error {
	return db.Model(&PrestadorPJ{}).Where("id = ?", id).Updates(map[string]interface{}{
		"contrato_path":   caminho,
		"status_contrato": status,
	}).Error
}
