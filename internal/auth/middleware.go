package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

type ctxKey string

const CtxUsuarioID ctxKey = "usuarioID"

func MiddlewareAutenticacao(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodOptions {
			next.ServeHTTP(w, r)
			return
		}
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			http.Error(w, "Token ausente", http.StatusUnauthorized)
			return
		}
		raw := strings.TrimPrefix(h, "Bearer ")
		claims, err := ValidarToken(raw)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		id, err := uuid.Parse(claims.UsuarioID)
		if err != nil {
			http.Error(w, "Token inválido", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), CtxUsuarioID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// UsuarioDoContexto devolve o ID autenticado injetado pelo middleware.
func UsuarioDoContexto(r *http.Request) (uuid.UUID, bool) {
	id, ok := r.Context().Value(CtxUsuarioID).(uuid.UUID)
	return id, ok
}
