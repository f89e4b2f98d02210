package conta

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsula o acesso a contas e convites.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) CriarUsuario(u *Usuario) error {
	u.Email = strings.ToLower(u.Email)
	return r.DB.Create(u).Error
}

func (r *Repository) BuscarPorEmail(email string) (*Usuario, error) {
	var u Usuario
	if err := r.DB.Where("email = ?", strings.ToLower(email)).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) BuscarPorID(id uuid.UUID) (*Usuario, error) {
	var u Usuario
	if err := r.DB.First(&u, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *Repository) AtualizarSenha(id uuid.UUID, hash string) error {
	return r.DB.Model(&Usuario{}).Where("id = ?", id).Updates(map[string]interface{}{
		"senha":                   hash,
		"precisa_redefinir_senha": false,
	}).Error
}

func (r *Repository) CriarConvite(c *ConviteToken) error {
	c.Email = strings.ToLower(c.Email)
	return r.DB.Create(c).Error
}

func (r *Repository) BuscarConvitePorToken(token string) (*ConviteToken, error) {
	var c ConviteToken
	if err := r.DB.Where("token = ?", token).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *Repository) MarcarConviteUsado(id uint) error {
	agora := time.Now()
	return r.DB.Model(&ConviteToken{}).Where("id = ?", id).Update("usado_em", &agora).Error
}
