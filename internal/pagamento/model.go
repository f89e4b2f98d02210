package pagamento

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pruma-gestao/api-pruma/internal/prestador"
)

const (
	StatusPendente = "pendente"
	StatusPago     = "pago"
)

// Pagamento registra o valor devido a um prestador em um mês de referência.
// O valor é fixado na criação (remuneração + comissão − desconto) e não há
// caminho de edição posterior; só o status transita, de pendente para pago.
type Pagamento struct {
	ID           uuid.UUID             `gorm:"type:uuid;primaryKey" json:"id"`
	PrestadorID  uuid.UUID             `gorm:"type:uuid;not null;index" json:"prestadorId"`
	Prestador    prestador.PrestadorPJ `gorm:"foreignKey:PrestadorID" json:"-"`
	Valor        float64               `gorm:"not null" json:"valor"`
	Data         time.Time             `gorm:"not null" json:"data"`
	MesReferente string                `gorm:"size:10;not null" json:"mesReferente"`
	Status       string                `gorm:"size:20;not null;default:'pendente';index" json:"status"`
	NotaFiscalID *uuid.UUID            `gorm:"type:uuid" json:"nfId"`
	ChaveLote    string                `gorm:"size:64;index" json:"-"`
	CriadoPor    uuid.UUID             `gorm:"type:uuid" json:"-"`
	CreatedAt    time.Time             `json:"createdAt"`
	UpdatedAt    time.Time             `json:"updatedAt"`
}

func (p *Pagamento) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&Pagamento{})
}
