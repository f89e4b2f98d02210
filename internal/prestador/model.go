package prestador

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status de contrato observados no ciclo de vida do prestador.
const (
	ContratoPendente = "Pendente"
	ContratoAtivo    = "Ativo"
	ContratoInativo  = "Inativo"
)

// PrestadorPJ é o cadastro de um prestador de serviço pessoa jurídica.
// Criado inativo e com contrato pendente; ativado manualmente pelo operador.
// Nunca é removido fisicamente, apenas desativado.
type PrestadorPJ struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Nome               string    `gorm:"size:120;not null" json:"nome"`
	Sobrenome          string    `gorm:"size:120;not null" json:"sobrenome"`
	RazaoSocial        string    `gorm:"size:255" json:"razaoSocial"`
	CNPJ               string    `gorm:"size:18" json:"cnpj"`
	Email              string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	TelefoneContato    string    `gorm:"size:20" json:"telefoneContato"`
	Nascimento         *string   `gorm:"size:10" json:"nascimento,omitempty"`
	Funcao             string    `gorm:"size:120" json:"funcao"`
	DataInicio         string    `gorm:"size:10" json:"dataInicio"`
	Remuneracao        float64   `gorm:"not null" json:"remuneracao"`
	EnderecoLogradouro string    `gorm:"size:255" json:"enderecoLogradouro"`
	EnderecoCidade     string    `gorm:"size:120" json:"enderecoCidade"`
	ChavePix           string    `gorm:"size:120" json:"chavePix"`
	StatusContrato     string    `gorm:"size:50;not null;default:'Pendente'" json:"statusContrato"`
	ContratoPath       *string   `gorm:"size:255" json:"contratoPath,omitempty"`
	Ativo              bool      `gorm:"not null;default:false;index" json:"ativo"`
	CriadoPor          uuid.UUID `gorm:"type:uuid" json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
	UpdatedAt          time.Time `json:"updatedAt"`
}

func (p *PrestadorPJ) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&PrestadorPJ{})
}
