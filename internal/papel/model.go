package papel

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	Empresa   = "empresa"
	Prestador = "prestador"
)

// PapelUsuario mapeia um usuário autenticado para o papel dele no sistema.
// Quando o papel é "prestador", PrestadorID aponta para o cadastro PJ.
type PapelUsuario struct {
	UsuarioID   uuid.UUID  `gorm:"type:uuid;primaryKey" json:"usuarioId"`
	Papel       string     `gorm:"size:20;not null;default:'empresa'" json:"papel"`
	PrestadorID *uuid.UUID `gorm:"type:uuid;index" json:"prestadorId,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PapelUsuario{})
}
