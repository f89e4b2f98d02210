package conta

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"gorm.io/gorm"

	"github.com/pruma-gestao/api-pruma/internal/auth"
	"github.com/pruma-gestao/api-pruma/internal/papel"
	"github.com/pruma-gestao/api-pruma/internal/utils"
)

// request DTOs
type registrarRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type LoginRequest struct {
	Email string `json:"email"`
	Senha string `json:"senha"`
}

type loginConviteRequest struct {
	Token string `json:"token"`
	Senha string `json:"senha"`
}

type atualizarSenhaRequest struct {
	SenhaAtual string `json:"senhaAtual"`
	NovaSenha  string `json:"novaSenha"`
}

// Handler encapsula DB e repositories
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
	Papeis     *papel.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(db),
		Papeis:     papel.NewRepository(db),
	}
}

// Registrar cadastra uma nova conta de operador (livre de autenticação)
func (h *Handler) Registrar(w http.ResponseWriter, r *http.Request) {
	var req registrarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Email == "" || len(req.Senha) < 6 {
		http.Error(w, "email e senha (mínimo 6 caracteres) são obrigatórios", http.StatusBadRequest)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	u := Usuario{Email: req.Email, Senha: hash}
	if err := h.Repository.CriarUsuario(&u); err != nil {
		http.Error(w, "erro ao criar conta", http.StatusConflict)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(u)
}

// Login gera um JWT para credenciais válidas
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorEmail(req.Email)
	if err != nil {
		http.Error(w, "credenciais inválidas", http.StatusUnauthorized)
		return
	}

	if !utils.VerificarSenha(user.Senha, req.Senha) {
		http.Error(w, "senha incorreta", http.StatusUnauthorized)
		return
	}

	token, err := auth.GerarToken(user.ID)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// LoginComConvite consome o token de uso único do link de convite, cria a
// conta do prestador com a senha informada e vincula o papel "prestador".
func (h *Handler) LoginComConvite(w http.ResponseWriter, r *http.Request) {
	var req loginConviteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Token == "" || len(req.Senha) < 6 {
		http.Error(w, "token e senha (mínimo 6 caracteres) são obrigatórios", http.StatusBadRequest)
		return
	}

	convite, err := h.Repository.BuscarConvitePorToken(req.Token)
	if err != nil {
		http.Error(w, "convite inválido", http.StatusUnauthorized)
		return
	}
	if convite.UsadoEm != nil {
		http.Error(w, "convite já utilizado", http.StatusUnauthorized)
		return
	}
	if time.Now().After(convite.ExpiraEm) {
		http.Error(w, "convite expirado", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.Senha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}

	user, err := h.Repository.BuscarPorEmail(convite.Email)
	switch {
	case err == nil:
		if uerr := h.Repository.AtualizarSenha(user.ID, hash); uerr != nil {
			http.Error(w, "erro ao definir senha", http.StatusInternalServerError)
			return
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		user = &Usuario{Email: convite.Email, Senha: hash}
		if cerr := h.Repository.CriarUsuario(user); cerr != nil {
			http.Error(w, "erro ao criar conta", http.StatusInternalServerError)
			return
		}
	default:
		http.Error(w, "erro ao consultar conta", http.StatusInternalServerError)
		return
	}

	prestadorID := convite.PrestadorID
	vinculo := &papel.PapelUsuario{
		UsuarioID:   user.ID,
		Papel:       papel.Prestador,
		PrestadorID: &prestadorID,
	}
	if err := h.Papeis.Salvar(vinculo); err != nil {
		http.Error(w, "erro ao vincular prestador", http.StatusInternalServerError)
		return
	}

	if err := h.Repository.MarcarConviteUsado(convite.ID); err != nil {
		http.Error(w, "erro ao consumir convite", http.StatusInternalServerError)
		return
	}

	token, err := auth.GerarToken(user.ID)
	if err != nil {
		http.Error(w, "erro ao gerar token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"token": token})
}

// AtualizarSenha troca a senha do usuário logado
func (h *Handler) AtualizarSenha(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Token ausente", http.StatusUnauthorized)
		return
	}

	var req atualizarSenhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if len(req.NovaSenha) < 6 {
		http.Error(w, "nova senha deve ter pelo menos 6 caracteres", http.StatusBadRequest)
		return
	}

	user, err := h.Repository.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "conta não encontrada", http.StatusNotFound)
		return
	}
	if !utils.VerificarSenha(user.Senha, req.SenhaAtual) {
		http.Error(w, "senha atual incorreta", http.StatusUnauthorized)
		return
	}

	hash, err := utils.HashSenha(req.NovaSenha)
	if err != nil {
		http.Error(w, "erro ao processar senha", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.AtualizarSenha(user.ID, hash); err != nil {
		http.Error(w, "erro ao atualizar senha", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("senha atualizada com sucesso"))
}

// Me retorna o usuário logado
func (h *Handler) Me(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Token ausente", http.StatusUnauthorized)
		return
	}

	user, err := h.Repository.BuscarPorID(usuarioID)
	if err != nil {
		http.Error(w, "conta não encontrada", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(user)
}
