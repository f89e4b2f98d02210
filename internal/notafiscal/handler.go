package notafiscal

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/pruma-gestao/api-pruma/internal/auth"
	"github.com/pruma-gestao/api-pruma/internal/pagamento"
	"github.com/pruma-gestao/api-pruma/internal/papel"
	"github.com/pruma-gestao/api-pruma/internal/storage"
)

// Handler cuida do ciclo anexar/baixar/remover da nota de um pagamento.
type Handler struct {
	DB         *gorm.DB
	Repository *Repository
	Pagamentos *pagamento.Repository
	Storage    storage.Storage
	Log        *zap.Logger
}

func NewHandler(db *gorm.DB, st storage.Storage, log *zap.Logger) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(db),
		Pagamentos: pagamento.NewRepository(db),
		Storage:    st,
		Log:        log,
	}
}

// carregarPagamento resolve o pagamento da rota e valida o acesso: empresa
// sempre, prestador apenas no próprio pagamento.
func (h *Handler) carregarPagamento(w http.ResponseWriter, r *http.Request) *pagamento.Pagamento {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return nil
	}
	pag, err := h.Pagamentos.BuscarPorID(id)
	if err != nil {
		http.Error(w, "pagamento não encontrado", http.StatusNotFound)
		return nil
	}
	p, prestadorID := papel.DoContexto(r)
	if p == papel.Prestador && (prestadorID == nil || *prestadorID != pag.PrestadorID) {
		http.Error(w, "acesso negado", http.StatusForbidden)
		return nil
	}
	return pag
}

func ehPDF(nome, contentType string) bool {
	if strings.EqualFold(contentType, "application/pdf") {
		return true
	}
	return strings.EqualFold(path.Ext(nome), ".pdf")
}

// Anexar grava o PDF, cria a NotaFiscal e vincula no pagamento, nesta
// ordem. Falha no meio da sequência desfaz os passos já feitos para não
// deixar arquivo órfão nem nota sem vínculo.
func (h *Handler) Anexar(w http.ResponseWriter, r *http.Request) {
	usuarioID, ok := auth.UsuarioDoContexto(r)
	if !ok {
		http.Error(w, "Usuário não autenticado", http.StatusUnauthorized)
		return
	}

	pag := h.carregarPagamento(w, r)
	if pag == nil {
		return
	}
	if pag.NotaFiscalID != nil {
		http.Error(w, "pagamento já possui nota fiscal anexada", http.StatusConflict)
		return
	}

	arquivo, header, err := r.FormFile("arquivo")
	if err != nil {
		http.Error(w, "arquivo ausente", http.StatusBadRequest)
		return
	}
	defer arquivo.Close()

	if !ehPDF(header.Filename, header.Header.Get("Content-Type")) {
		http.Error(w, "Por favor, selecione um arquivo PDF.", http.StatusBadRequest)
		return
	}

	caminho := storage.CaminhoNotaFiscal(pag.ID)
	if err := h.Storage.Upload(storage.BucketNotasFiscais, caminho, arquivo); err != nil {
		http.Error(w, "Falha ao fazer upload da nota fiscal. Por favor, tente novamente.", http.StatusInternalServerError)
		return
	}

	nota := NotaFiscal{
		ArquivoPath:     caminho,
		DataEmissao:     time.Now().Format("2006-01-02"),
		StatusValidacao: ValidacaoPendente,
		CriadoPor:       usuarioID,
	}
	if err := h.Repository.Criar(&nota); err != nil {
		if rerr := h.Storage.Remove(storage.BucketNotasFiscais, caminho); rerr != nil {
			h.Log.Warn("falha ao remover arquivo órfão de nota fiscal",
				zap.String("caminho", caminho), zap.Error(rerr))
		}
		http.Error(w, "Falha ao fazer upload da nota fiscal. Por favor, tente novamente.", http.StatusInternalServerError)
		return
	}

	if err := h.Pagamentos.VincularNotaFiscal(pag.ID, &nota.ID); err != nil {
		if derr := h.Repository.Deletar(nota.ID); derr != nil {
			h.Log.Warn("falha ao desfazer nota fiscal sem vínculo",
				zap.String("notaId", nota.ID.String()), zap.Error(derr))
		}
		if rerr := h.Storage.Remove(storage.BucketNotasFiscais, caminho); rerr != nil {
			h.Log.Warn("falha ao remover arquivo órfão de nota fiscal",
				zap.String("caminho", caminho), zap.Error(rerr))
		}
		http.Error(w, "Falha ao fazer upload da nota fiscal. Por favor, tente novamente.", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(nota)
}

// Baixar devolve o PDF da nota vinculada ao pagamento.
func (h *Handler) Baixar(w http.ResponseWriter, r *http.Request) {
	pag := h.carregarPagamento(w, r)
	if pag == nil {
		return
	}
	if pag.NotaFiscalID == nil {
		http.Error(w, "pagamento não possui nota fiscal", http.StatusNotFound)
		return
	}

	nota, err := h.Repository.BuscarPorID(*pag.NotaFiscalID)
	if err != nil {
		http.Error(w, "nota fiscal não encontrada", http.StatusNotFound)
		return
	}

	conteudo, err := h.Storage.Download(storage.BucketNotasFiscais, nota.ArquivoPath)
	if err != nil {
		http.Error(w, "Falha ao baixar nota fiscal. Por favor, tente novamente.", http.StatusInternalServerError)
		return
	}
	defer conteudo.Close()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", path.Base(nota.ArquivoPath)))
	if _, err := io.Copy(w, conteudo); err != nil {
		h.Log.Warn("falha ao enviar nota fiscal", zap.Error(err))
	}
}

// Remover apaga o arquivo, limpa o vínculo no pagamento e então remove a
// linha da nota, na mesma ordem do fluxo original.
func (h *Handler) Remover(w http.ResponseWriter, r *http.Request) {
	pag := h.carregarPagamento(w, r)
	if pag == nil {
		return
	}
	if pag.NotaFiscalID == nil {
		http.Error(w, "pagamento não possui nota fiscal", http.StatusNotFound)
		return
	}

	nota, err := h.Repository.BuscarPorID(*pag.NotaFiscalID)
	if err != nil {
		http.Error(w, "nota fiscal não encontrada", http.StatusNotFound)
		return
	}

	if err := h.Storage.Remove(storage.BucketNotasFiscais, nota.ArquivoPath); err != nil {
		http.Error(w, "Falha ao remover nota fiscal. Por favor, tente novamente.", http.StatusInternalServerError)
		return
	}
	if err := h.Pagamentos.VincularNotaFiscal(pag.ID, nil); err != nil {
		http.Error(w, "Falha ao remover nota fiscal. Por favor, tente novamente.", http.StatusInternalServerError)
		return
	}
	if err := h.Repository.Deletar(nota.ID); err != nil {
		http.Error(w, "Falha ao remover nota fiscal. Por favor, tente novamente.", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
