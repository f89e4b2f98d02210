package configuracoes

import (
	"encoding/json"
	"net/http"

	"gorm.io/gorm"

	"github.com/pruma-gestao/api-pruma/internal/auth"
	"github.com/pruma-gestao/api-pruma/internal/utils"
)

type salvarPerfilRequest struct {
	Nome      string `json:"nome"`
	Sobrenome string `json:"sobrenome"`
}

type salvarEmpresaRequest struct {
	NomeFantasia string `json:"nomeFantasia"`
	RazaoSocial  string `json:"razaoSocial"`
	CNPJ         string `json:"cnpj"`
	Endereco     string `json:"endereco"`
	Cidade       string `json:"cidade"`
	Estado       string `json:"estado"`
	CEP          string `json:"cep"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository(db)}
}

// Buscar retorna as configurações da empresa e o perfil do usuário logado,
// criando as linhas vazias no primeiro acesso.
func (h *Handler) Buscar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	empresa, err := h.Repository.GarantirEmpresa(usuarioID)
	if err != nil {
		http.Error(w, "erro ao carregar configurações", http.StatusInternalServerError)
		return
	}
	perfil, err := h.Repository.GarantirPerfil(usuarioID)
	if err != nil {
		http.Error(w, "erro ao carregar perfil", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"empresa": empresa,
		"perfil":  perfil,
	})
}

// SalvarPerfil é o primeiro passo do onboarding: garante a linha e atualiza
// os campos pessoais. Cada passo é uma fronteira própria; não há rollback
// entre eles.
func (h *Handler) SalvarPerfil(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	var req salvarPerfilRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" || req.Sobrenome == "" {
		http.Error(w, "nome e sobrenome são obrigatórios", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.GarantirPerfil(usuarioID); err != nil {
		http.Error(w, "erro ao preparar perfil", http.StatusInternalServerError)
		return
	}
	err := h.Repository.AtualizarPerfil(usuarioID, map[string]interface{}{
		"nome":      req.Nome,
		"sobrenome": req.Sobrenome,
	})
	if err != nil {
		http.Error(w, "erro ao salvar perfil", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// SalvarEmpresa é o segundo passo do onboarding e também atende a tela de
// configurações.
func (h *Handler) SalvarEmpresa(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	var req salvarEmpresaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if _, err := h.Repository.GarantirEmpresa(usuarioID); err != nil {
		http.Error(w, "erro ao preparar configurações", http.StatusInternalServerError)
		return
	}
	err := h.Repository.AtualizarEmpresa(usuarioID, map[string]interface{}{
		"nome_fantasia": req.NomeFantasia,
		"razao_social":  req.RazaoSocial,
		"cnpj":          utils.FormatarCNPJ(req.CNPJ),
		"endereco":      req.Endereco,
		"cidade":        req.Cidade,
		"estado":        req.Estado,
		"cep":           req.CEP,
	})
	if err != nil {
		http.Error(w, "erro ao salvar configurações", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
