package configuracoes

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsula configurações de empresa e perfil do usuário.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

// GarantirEmpresa devolve a linha do usuário, criando-a vazia se ainda não
// existir.
func (r *Repository) GarantirEmpresa(usuarioID uuid.UUID) (*ConfiguracoesEmpresa, error) {
	var c ConfiguracoesEmpresa
	err := r.DB.Where(ConfiguracoesEmpresa{UsuarioID: usuarioID}).
		FirstOrCreate(&c).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// GarantirPerfil devolve o perfil do usuário, criando-o vazio se ainda não
// existir.
func (r *Repository) GarantirPerfil(usuarioID uuid.UUID) (*PerfilUsuario, error) {
	var p PerfilUsuario
	err := r.DB.Where(PerfilUsuario{UsuarioID: usuarioID}).
		FirstOrCreate(&p).Error
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *Repository) AtualizarEmpresa(usuarioID uuid.UUID, campos map[string]interface{}) error {
	return r.DB.Model(&ConfiguracoesEmpresa{}).
		Where("usuario_id = ?", usuarioID).
		Updates(campos).Error
}

func (r *Repository) AtualizarPerfil(usuarioID uuid.UUID, campos map[string]interface{}) error {
	return r.DB.Model(&PerfilUsuario{}).
		Where("usuario_id = ?", usuarioID).
		Updates(campos).Error
}
