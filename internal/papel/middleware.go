package papel

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/pruma-gestao/api-pruma/internal/auth"
)

type ctxKey string

const (
	CtxPapel       ctxKey = "papel"
	CtxPrestadorID ctxKey = "prestadorID"
)

// Middleware resolve o papel uma única vez por requisição e o injeta no
// contexto. Roda depois do middleware de autenticação.
func Middleware(res *Resolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			usuarioID, ok := auth.UsuarioDoContexto(r)
			if !ok {
				http.Error(w, "Token ausente", http.StatusUnauthorized)
				return
			}
			resolucao, err := res.Resolver(usuarioID)
			if err != nil {
				http.Error(w, "Falha ao consultar papel do usuário", http.StatusServiceUnavailable)
				return
			}
			ctx := context.WithValue(r.Context(), CtxPapel, resolucao.Papel)
			if resolucao.PrestadorID != nil {
				ctx = context.WithValue(ctx, CtxPrestadorID, *resolucao.PrestadorID)
			}
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireEmpresa bloqueia rotas exclusivas do operador da empresa.
func RequireEmpresa(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if p, _ := r.Context().Value(CtxPapel).(string); p != Empresa {
			http.Error(w, "Acesso restrito à empresa", http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// DoContexto devolve papel e, se houver, o prestador vinculado.
func DoContexto(r *http.Request) (string, *uuid.UUID) {
	p, _ := r.Context().Value(CtxPapel).(string)
	if id, ok := r.Context().Value(CtxPrestadorID).(uuid.UUID); ok {
		return p, &id
	}
	return p, nil
}
