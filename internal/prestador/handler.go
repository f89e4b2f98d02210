package prestador

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pruma-gestao/api-pruma/internal/auth"
	"github.com/pruma-gestao/api-pruma/internal/conta"
	"github.com/pruma-gestao/api-pruma/internal/notificacao"
	"github.com/pruma-gestao/api-pruma/internal/papel"
	"github.com/pruma-gestao/api-pruma/internal/storage"
	"github.com/pruma-gestao/api-pruma/internal/utils"
)

// Handler encapsula DB, repository e os colaboradores do fluxo de convite.
type Handler struct {
	DB             *gorm.DB
	Repository     Repository
	Contas         *conta.Repository
	Storage        storage.Storage
	Notificador    *notificacao.Notificador
	ConviteBaseURL string
	Log            *zap.Logger
}

func NewHandler(db *gorm.DB, st storage.Storage, notificador *notificacao.Notificador, conviteBaseURL string, log *zap.Logger) *Handler {
	return &Handler{
		DB:             db,
		Repository:     NewRepository(),
		Contas:         conta.NewRepository(db),
		Storage:        st,
		Notificador:    notificador,
		ConviteBaseURL: conviteBaseURL,
		Log:            log,
	}
}

// Criar cadastra um novo prestador, inativo e com contrato pendente, e
// dispara o convite de acesso.
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	var req criarPrestadorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Nome == "" || req.Sobrenome == "" || req.RazaoSocial == "" ||
		req.Email == "" || req.Funcao == "" || req.DataInicio == "" {
		http.Error(w, "campos obrigatórios ausentes", http.StatusBadRequest)
		return
	}

	remuneracao := utils.ParseMoeda(req.Remuneracao)
	if remuneracao <= 0 {
		http.Error(w, "A remuneração deve ser maior que zero", http.StatusBadRequest)
		return
	}

	var nascimento *string
	if req.Nascimento != "" {
		nascimento = &req.Nascimento
	}

	p := PrestadorPJ{
		Nome:               req.Nome,
		Sobrenome:          req.Sobrenome,
		RazaoSocial:        req.RazaoSocial,
		CNPJ:               utils.FormatarCNPJ(req.CNPJ),
		Email:              req.Email,
		TelefoneContato:    utils.FormatarTelefone(req.TelefoneContato),
		Nascimento:         nascimento,
		Funcao:             req.Funcao,
		DataInicio:         req.DataInicio,
		Remuneracao:        remuneracao,
		EnderecoLogradouro: req.EnderecoLogradouro,
		EnderecoCidade:     req.EnderecoCidade,
		ChavePix:           req.ChavePix,
		StatusContrato:     ContratoPendente,
		Ativo:              false,
		CriadoPor:          usuarioID,
	}

	if err := h.Repository.Salvar(h.DB, &p); err != nil {
		http.Error(w, "erro ao salvar prestador", http.StatusInternalServerError)
		return
	}

	token, err := utils.GerarTokenConvite()
	if err != nil {
		http.Error(w, "erro ao gerar convite", http.StatusInternalServerError)
		return
	}
	convite := conta.ConviteToken{
		Token:       token,
		Email:       p.Email,
		PrestadorID: p.ID,
		ExpiraEm:    time.Now().Add(conta.ValidadeConvite),
	}
	if err := h.Contas.CriarConvite(&convite); err != nil {
		http.Error(w, "erro ao registrar convite", http.StatusInternalServerError)
		return
	}

	link := fmt.Sprintf("%s?token=%s", h.ConviteBaseURL, token)
	h.Notificador.EnviarConvitePrestador(p.Email, p.Nome, link)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CriadoResponse{Prestador: p, ConviteURL: link})
}

// Listar retorna todos os prestadores (empresa) ou apenas o próprio cadastro.
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	p, prestadorID := papel.DoContexto(r)

	if p == papel.Prestador {
		if prestadorID == nil {
			http.Error(w, "prestador não vinculado", http.StatusForbidden)
			return
		}
		obj, err := h.Repository.BuscarPorID(h.DB, *prestadorID)
		if err != nil {
			http.Error(w, "prestador não encontrado", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode([]PrestadorPJ{*obj})
		return
	}

	lista, err := h.Repository.ListarTodos(h.DB)
	if err != nil {
		http.Error(w, "erro ao listar prestadores", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(lista)
}

// podeAcessar libera o operador da empresa ou o próprio prestador.
func podeAcessar(r *http.Request, id uuid.UUID) bool {
	p, prestadorID := papel.DoContexto(r)
	if p == papel.Empresa {
		return true
	}
	return prestadorID != nil && *prestadorID == id
}

func idDaRota(r *http.Request) (uuid.UUID, error) {
	return uuid.Parse(mux.Vars(r)["id"])
}

// BuscarPorID retorna um prestador pelo ID
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !podeAcessar(r, id) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "prestador não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(obj)
}

// Atualizar altera dados cadastrais de um prestador existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !podeAcessar(r, id) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	var dados PrestadorPJ
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if err := h.Repository.Atualizar(h.DB, id, &dados); err != nil {
		http.Error(w, "erro ao atualizar prestador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("prestador atualizado com sucesso"))
}

// Ativar marca o prestador como ativo (empresa apenas, garantido na rota).
func (h *Handler) Ativar(w http.ResponseWriter, r *http.Request) {
	h.definirAtivo(w, r, true, ContratoAtivo)
}

// Desativar marca o prestador como inativo; o cadastro é preservado.
func (h *Handler) Desativar(w http.ResponseWriter, r *http.Request) {
	h.definirAtivo(w, r, false, ContratoInativo)
}

func (h *Handler) definirAtivo(w http.ResponseWriter, r *http.Request, ativo bool, status string) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, id); err != nil {
		http.Error(w, "prestador não encontrado", http.StatusNotFound)
		return
	}
	if err := h.Repository.DefinirAtivo(h.DB, id, ativo, status); err != nil {
		http.Error(w, "erro ao atualizar prestador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}

// UploadContrato recebe o arquivo de contrato e marca o contrato como ativo.
func (h *Handler) UploadContrato(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if _, err := h.Repository.BuscarPorID(h.DB, id); err != nil {
		http.Error(w, "prestador não encontrado", http.StatusNotFound)
		return
	}

	arquivo, header, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "arquivo ausente", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	caminho := storage.NomeArquivoContrato(id, header.Filename)
	if err := h.Storage.Upload(storage.BucketContratos, caminho, arquivo); err != nil {
		http.Error(w, "Falha ao fazer upload do contrato", http.StatusInternalServerError)
		return
	}

	if err := h.Repository.AtualizarContrato(h.DB, id, &caminho, ContratoAtivo); err != nil {
		// upload já aconteceu; desfaz para não deixar arquivo órfão
		if rerr := h.Storage.Remove(storage.BucketContratos, caminho); rerr != nil {
			h.Log.Warn("falha ao remover contrato órfão", zap.String("caminho", caminho), zap.Error(rerr))
		}
		http.Error(w, "Falha ao atualizar caminho do contrato", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]string{"contratoPath": caminho})
}

// DownloadContrato devolve o arquivo de contrato anexado.
func (h *Handler) DownloadContrato(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}
	if !podeAcessar(r, id) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "prestador não encontrado", http.StatusNotFound)
		return
	}
	if obj.ContratoPath == nil {
		http.Error(w, "prestador não possui contrato anexado", http.StatusNotFound)
		return
	}

	conteudo, err := h.Storage.Download(storage.BucketContratos, *obj.ContratoPath)
	if err != nil {
		http.Error(w, "Falha ao baixar contrato", http.StatusInternalServerError)
		return
	}
	defer conteudo.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(*obj.ContratoPath)))
	if _, err := io.Copy(w, conteudo); err != nil {
		h.Log.Warn("falha ao enviar contrato", zap.Error(err))
	}
}

// RemoverContrato apaga o arquivo e volta o contrato para pendente.
func (h *Handler) RemoverContrato(w http.ResponseWriter, r *http.Request) {
	id, err := idDaRota(r)
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	obj, err := h.Repository.BuscarPorID(h.DB, id)
	if err != nil {
		http.Error(w, "prestador não encontrado", http.StatusNotFound)
		return
	}
	if obj.ContratoPath == nil {
		http.Error(w, "prestador não possui contrato anexado", http.StatusNotFound)
		return
	}

	if err := h.Storage.Remove(storage.BucketContratos, *obj.ContratoPath); err != nil {
		http.Error(w, "Falha ao remover contrato", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.AtualizarContrato(h.DB, id, nil, ContratoPendente); err != nil {
		http.Error(w, "erro ao atualizar prestador", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
}
