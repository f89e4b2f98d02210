package notafiscal

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const ValidacaoPendente = "Pendente"

// NotaFiscal é o documento fiscal anexado a no máximo um pagamento.
// A ligação mora no pagamento (nota_fiscal_id); a nota guarda só o caminho
// do arquivo, a data de emissão (apenas data) e o status de validação.
type NotaFiscal struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	ArquivoPath     string    `gorm:"size:255;not null" json:"arquivoPath"`
	DataEmissao     string    `gorm:"size:10;not null" json:"dataEmissao"`
	StatusValidacao string    `gorm:"size:50;not null;default:'Pendente'" json:"statusValidacao"`
	CriadoPor       uuid.UUID `gorm:"type:uuid" json:"-"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

func (n *NotaFiscal) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	return nil
}

// Migrate cria a tabela no banco de dados.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&NotaFiscal{})
}
