package configuracoes

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConfiguracoesEmpresa guarda os dados da empresa de um usuário operador.
// Uma linha por usuário, criada vazia no primeiro acesso.
type ConfiguracoesEmpresa struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UsuarioID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"usuarioId"`
	NomeFantasia string    `gorm:"size:255" json:"nomeFantasia"`
	RazaoSocial  string    `gorm:"size:255" json:"razaoSocial"`
	CNPJ         string    `gorm:"size:18" json:"cnpj"`
	Endereco     string    `gorm:"size:255" json:"endereco"`
	Cidade       string    `gorm:"size:120" json:"cidade"`
	Estado       string    `gorm:"size:2" json:"estado"`
	CEP          string    `gorm:"size:9" json:"cep"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func (c *ConfiguracoesEmpresa) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// PerfilUsuario guarda os dados pessoais do usuário. Mesma regra de criação
// preguiçosa da linha de empresa.
type PerfilUsuario struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UsuarioID uuid.UUID `gorm:"type:uuid;uniqueIndex;not null" json:"usuarioId"`
	Nome      string    `gorm:"size:120" json:"nome"`
	Sobrenome string    `gorm:"size:120" json:"sobrenome"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (p *PerfilUsuario) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Migrate cria as tabelas no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&ConfiguracoesEmpresa{}, &PerfilUsuario{})
}
