package notafiscal

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Repository encapsula operações de banco para NotaFiscal.
type Repository struct {
	DB *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{DB: db}
}

func (r *Repository) Criar(n *NotaFiscal) error {
	return r.DB.Create(n).Error
}

func (r *Repository) BuscarPorID(id uuid.UUID) (*NotaFiscal, error) {
	var n NotaFiscal
	if err := r.DB.First(&n, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &n, nil
}

func (r *Repository) Deletar(id uuid.UUID) error {
	res := r.DB.Delete(&NotaFiscal{}, "id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
