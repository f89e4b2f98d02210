package papel

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsula o acesso à tabela de papéis.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// BuscarPorUsuario retorna o papel do usuário ou gorm.ErrRecordNotFound.
func (r *Repository) BuscarPorUsuario(usuarioID uuid.UUID) (*PapelUsuario, error) {
	var p PapelUsuario
	if err := r.DB.Where("usuario_id = ?", usuarioID).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) Criar(p *PapelUsuario) error {
	return r.DB.Create(p).Error
}

// Salvar sobrescreve o papel existente (vínculo de prestador no convite).
func (r *Repository) Salvar(p *PapelUsuario) error {
	return r.DB.Save(p).Error
}
