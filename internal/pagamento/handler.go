package pagamento

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"gorm.io/gorm"

	"github.com/pruma-gestao/api-pruma/internal/auth"
	"github.com/pruma-gestao/api-pruma/internal/papel"
	"github.com/pruma-gestao/api-pruma/internal/prestador"
)

// Handler encapsula DB e repositories
type Handler struct {
	DB          *gorm.DB
	Repository  *Repository
	Prestadores prestador.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:          db,
		Repository:  NewRepository(db),
		Prestadores: prestador.NewRepository(),
	}
}

// ListarElegiveis retorna os prestadores ativos, em ordem de nome, para a
// tela de criação da Folha PJ.
func (h *Handler) ListarElegiveis(w http.ResponseWriter, r *http.Request) {
	ativos, err := h.Prestadores.ListarAtivos(h.DB)
	if err != nil {
		http.Error(w, "Falha ao carregar prestadores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ativos)
}

// CriarFolha valida as linhas selecionadas e insere os pagamentos em um
// único lote. Exige ao menos uma linha e um ator autenticado; com chave de
// lote repetida nada é inserido.
func (h *Handler) CriarFolha(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	var req criarFolhaRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if len(req.Linhas) == 0 {
		http.Error(w, ErrFolhaVazia.Error(), http.StatusBadRequest)
		return
	}

	if req.ChaveLote != "" {
		existe, err := h.Repository.ExisteChaveLote(req.ChaveLote)
		if err != nil {
			http.Error(w, "Falha ao criar pagamentos. Por favor, tente novamente.", http.StatusInternalServerError)
			return
		}
		if existe {
			http.Error(w, "esta folha já foi submetida", http.StatusConflict)
			return
		}
	}

	ativos, err := h.Prestadores.ListarAtivos(h.DB)
	if err != nil {
		http.Error(w, "Falha ao carregar prestadores", http.StatusInternalServerError)
		return
	}

	pagamentos, err := MontarPagamentos(ativos, req.Linhas, usuarioID, time.Now(), req.ChaveLote)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.Repository.CriarEmLote(pagamentos); err != nil {
		http.Error(w, "Falha ao criar pagamentos. Por favor, tente novamente.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(FolhaCriadaResponse{
		Criados: len(pagamentos),
		Total:   SomaFolha(pagamentos),
	})
}

// Listar retorna os pagamentos visíveis para o papel da requisição:
// empresa vê todos, prestador vê apenas os próprios.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	p, prestadorID := papel.DoContexto(r)

	var (
		lista []Pagamento
		err   error
	)
	if p == papel.Prestador {
		if prestadorID == nil {
			http.Error(w, "prestador não vinculado", http.StatusForbidden)
			return
		}
		lista, err = h.Repository.ListarPorPrestador(*prestadorID)
	} else {
		lista, err = h.Repository.ListarTodos()
	}
	if err != nil {
		http.Error(w, "Falha ao carregar pagamentos", http.StatusInternalServerError)
		return
	}

	resumos := make([]ResumoPagamentoDTO, 0, len(lista))
	for _, item := range lista {
		resumos = append(resumos, montarResumo(item))
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(resumos)
}

// BuscarPorID retorna um pagamento pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "pagamento não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "Falha ao carregar pagamento", http.StatusInternalServerError)
		return
	}

	p, prestadorID := papel.DoContexto(r)
	if p == papel.Prestador && (prestadorID == nil || *prestadorID != obj.PrestadorID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(montarResumo(*obj))
}

// ProcessarSelecionados marca os pagamentos pendentes selecionados como
// pagos em uma única atualização.
func (h *Handler) ProcessarSelecionados(w http.ResponseWriter, r *http.Request) {
	var req processarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if len(req.IDs) == 0 {
		http.Error(w, "selecione pelo menos um pagamento", http.StatusBadRequest)
		return
	}

	processados, err := h.Repository.MarcarComoPagos(req.IDs)
	if err != nil {
		http.Error(w, "Falha ao processar pagamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int64{"processados": processados})
}
