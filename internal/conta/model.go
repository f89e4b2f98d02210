package conta

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Usuario é a conta autenticável (operador da empresa ou prestador).
type Usuario struct {
	ID                    uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email                 string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Senha                 string    `json:"-"`
	PrecisaRedefinirSenha bool      `json:"-"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

func (u *Usuario) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// ConviteToken é o token de uso único enviado no link de convite de um
// prestador recém-cadastrado.
type ConviteToken struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Token       string     `gorm:"size:64;uniqueIndex;not null" json:"-"`
	Email       string     `gorm:"size:255;not null" json:"email"`
	PrestadorID uuid.UUID  `gorm:"type:uuid;not null;index" json:"prestadorId"`
	ExpiraEm    time.Time  `gorm:"not null" json:"expiraEm"`
	UsadoEm     *time.Time `json:"usadoEm,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Validade padrão do link de convite.
const ValidadeConvite = 7 * 24 * time.Hour

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Usuario{}, &ConviteToken{})
}
