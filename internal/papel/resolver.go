package papel

import (
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Resolucao é o papel efetivo de um usuário em uma requisição.
type Resolucao struct {
	Papel       string
	PrestadorID *uuid.UUID
}

// Resolver centraliza a resolução de papel para todas as rotas.
// Ausência de linha e falha de consulta são resultados distintos:
// ausência vale o padrão "empresa" (com tentativa de registrar a linha
// padrão, melhor-esforço); falha de consulta é devolvida como erro em vez
// de ser mascarada com o papel padrão.
type Resolver struct {
	Repo *Repository
	Log  *zap.Logger
}

func NewResolver(repo *Repository, log *zap.Logger) *Resolver {
	return &Resolver{Repo: repo, Log: log}
}

func (r *Resolver) Resolver(usuarioID uuid.UUID) (Resolucao, error) {
	p, err := r.Repo.BuscarPorUsuario(usuarioID)
	if err == nil {
		return Resolucao{Papel: p.Papel, PrestadorID: p.PrestadorID}, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		novo := &PapelUsuario{UsuarioID: usuarioID, Papel: Empresa}
		if cerr := r.Repo.Criar(novo); cerr != nil {
			r.Log.Warn("falha ao registrar papel padrão",
				zap.String("usuarioId", usuarioID.String()),
				zap.Error(cerr))
		}
		return Resolucao{Papel: Empresa}, nil
	}
	return Resolucao{}, err
}
