package pagamento

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/pruma-gestao/api-pruma/internal/auth"
	"github.com/pruma-gestao/api-pruma/internal/papel"
)

func comEmpresa(req *http.Request, usuarioID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), auth.CtxUsuarioID, usuarioID)
	ctx = context.WithValue(ctx, papel.CtxPapel, papel.Empresa)
	return req.WithContext(ctx)
}

func comPrestador(req *http.Request, usuarioID, prestadorID uuid.UUID) *http.Request {
	ctx := context.WithValue(req.Context(), auth.CtxUsuarioID, usuarioID)
	ctx = context.WithValue(ctx, papel.CtxPapel, papel.Prestador)
	ctx = context.WithValue(ctx, papel.CtxPrestadorID, prestadorID)
	return req.WithContext(ctx)
}

func TestCriarFolhaSemLinhas(t *testing.T) {
	h := NewHandler(bancoDeTeste(t))

	body := bytes.NewBufferString(`{"linhas":[]}`)
	req := comEmpresa(httptest.NewRequest(http.MethodPost, "/folha", body), uuid.New())
	rec := httptest.NewRecorder()
	h.CriarFolha(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400, veio %d: %s", rec.Code, rec.Body.String())
	}
}

func TestCriarFolhaSemAutenticacao(t *testing.T) {
	h := NewHandler(bancoDeTeste(t))

	body := bytes.NewBufferString(`{"linhas":[{"prestadorId":"` + uuid.NewString() + `"}]}`)
	req := httptest.NewRequest(http.MethodPost, "/folha", body)
	rec := httptest.NewRecorder()
	h.CriarFolha(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("esperado 401, veio %d", rec.Code)
	}
}

func TestCriarFolhaCriaPagamentosPendentes(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewHandler(db)
	ana := criarPrestador(t, db, "ana", 1000, true)
	bruno := criarPrestador(t, db, "bruno", 2000, true)

	payload := map[string]any{
		"linhas": []map[string]string{
			{"prestadorId": ana.ID.String(), "comissao": "150,00", "desconto": "50,00", "mes": "03", "ano": "2026"},
			{"prestadorId": bruno.ID.String(), "mes": "03", "ano": "2026"},
		},
	}
	body, _ := json.Marshal(payload)
	req := comEmpresa(httptest.NewRequest(http.MethodPost, "/folha", bytes.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()
	h.CriarFolha(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("esperado 201, veio %d: %s", rec.Code, rec.Body.String())
	}

	var resp FolhaCriadaResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if resp.Criados != 2 {
		t.Fatalf("esperado 2 pagamentos criados, veio %d", resp.Criados)
	}
	if resp.Total != 3100 {
		t.Fatalf("total da folha: esperado 3100, veio %v", resp.Total)
	}

	lista, err := h.Repository.ListarTodos()
	if err != nil {
		t.Fatalf("erro ao listar: %v", err)
	}
	for _, pg := range lista {
		if pg.Status != StatusPendente {
			t.Fatalf("pagamento criado com status %q, esperado pendente", pg.Status)
		}
		if pg.MesReferente != "2026-03-01" {
			t.Fatalf("mês referente: esperado 2026-03-01, veio %q", pg.MesReferente)
		}
	}
}

func TestCriarFolhaChaveRepetida(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewHandler(db)
	ana := criarPrestador(t, db, "ana", 1000, true)

	payload := map[string]any{
		"chaveLote": "folha-2026-03",
		"linhas": []map[string]string{
			{"prestadorId": ana.ID.String(), "mes": "03", "ano": "2026"},
		},
	}
	body, _ := json.Marshal(payload)

	req := comEmpresa(httptest.NewRequest(http.MethodPost, "/folha", bytes.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()
	h.CriarFolha(rec, req)
	if rec.Code != http.StatusCreated {
		t.Fatalf("primeira submissão: esperado 201, veio %d: %s", rec.Code, rec.Body.String())
	}

	req = comEmpresa(httptest.NewRequest(http.MethodPost, "/folha", bytes.NewReader(body)), uuid.New())
	rec = httptest.NewRecorder()
	h.CriarFolha(rec, req)
	if rec.Code != http.StatusConflict {
		t.Fatalf("repetição: esperado 409, veio %d", rec.Code)
	}

	var total int64
	if err := db.Model(&Pagamento{}).Count(&total).Error; err != nil {
		t.Fatalf("erro ao contar: %v", err)
	}
	if total != 1 {
		t.Fatalf("a repetição não pode inserir de novo; há %d pagamentos", total)
	}
}

func TestCriarFolhaPrestadorInativoRejeitado(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewHandler(db)
	inativo := criarPrestador(t, db, "carla", 1500, false)

	payload := map[string]any{
		"linhas": []map[string]string{
			{"prestadorId": inativo.ID.String(), "mes": "03", "ano": "2026"},
		},
	}
	body, _ := json.Marshal(payload)
	req := comEmpresa(httptest.NewRequest(http.MethodPost, "/folha", bytes.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()
	h.CriarFolha(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("esperado 400 para prestador inativo, veio %d", rec.Code)
	}
}

func TestListarElegiveisSoAtivos(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewHandler(db)
	criarPrestador(t, db, "zeca", 1000, true)
	criarPrestador(t, db, "ana", 1000, true)
	criarPrestador(t, db, "bruno", 1000, false)

	req := comEmpresa(httptest.NewRequest(http.MethodGet, "/folha/prestadores", nil), uuid.New())
	rec := httptest.NewRecorder()
	h.ListarElegiveis(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("esperado 200, veio %d", rec.Code)
	}
	var lista []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &lista); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if len(lista) != 2 {
		t.Fatalf("esperado 2 prestadores ativos, veio %d", len(lista))
	}
	if lista[0]["nome"] != "ana" || lista[1]["nome"] != "zeca" {
		t.Fatalf("lista fora de ordem: %v, %v", lista[0]["nome"], lista[1]["nome"])
	}
}

func TestListarEscopoPorPapel(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewHandler(db)
	ana := criarPrestador(t, db, "ana", 1000, true)
	bruno := criarPrestador(t, db, "bruno", 2000, true)

	linhas := []LinhaFolha{
		{PrestadorID: ana.ID},
		{PrestadorID: bruno.ID},
	}
	ativos, _ := h.Prestadores.ListarAtivos(db)
	pagamentos, err := MontarPagamentos(ativos, linhas, uuid.New(), time.Now(), "")
	if err != nil {
		t.Fatalf("erro ao montar: %v", err)
	}
	if err := h.Repository.CriarEmLote(pagamentos); err != nil {
		t.Fatalf("erro no lote: %v", err)
	}

	req := comEmpresa(httptest.NewRequest(http.MethodGet, "/pagamentos", nil), uuid.New())
	rec := httptest.NewRecorder()
	h.Listar(rec, req)
	var todos []ResumoPagamentoDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &todos); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if len(todos) != 2 {
		t.Fatalf("empresa deveria ver 2 pagamentos, viu %d", len(todos))
	}

	req = comPrestador(httptest.NewRequest(http.MethodGet, "/pagamentos", nil), uuid.New(), ana.ID)
	rec = httptest.NewRecorder()
	h.Listar(rec, req)
	var proprios []ResumoPagamentoDTO
	if err := json.Unmarshal(rec.Body.Bytes(), &proprios); err != nil {
		t.Fatalf("resposta inválida: %v", err)
	}
	if len(proprios) != 1 || proprios[0].PrestadorID != ana.ID {
		t.Fatalf("prestador deveria ver só os próprios pagamentos: %+v", proprios)
	}
}

func TestProcessarSelecionados(t *testing.T) {
	db := bancoDeTeste(t)
	h := NewHandler(db)
	ana := criarPrestador(t, db, "ana", 1000, true)

	ativos, _ := h.Prestadores.ListarAtivos(db)
	pagamentos, err := MontarPagamentos(ativos, []LinhaFolha{{PrestadorID: ana.ID}}, uuid.New(), time.Now(), "")
	if err != nil {
		t.Fatalf("erro ao montar: %v", err)
	}
	if err := h.Repository.CriarEmLote(pagamentos); err != nil {
		t.Fatalf("erro no lote: %v", err)
	}

	body, _ := json.Marshal(map[string]any{"ids": []string{pagamentos[0].ID.String()}})
	req := comEmpresa(httptest.NewRequest(http.MethodPost, "/pagamentos/processar", bytes.NewReader(body)), uuid.New())
	rec := httptest.NewRecorder()
	h.ProcessarSelecionados(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("esperado 200, veio %d: %s", rec.Code, rec.Body.String())
	}
	depois, _ := h.Repository.BuscarPorID(pagamentos[0].ID)
	if depois.Status != StatusPago {
		t.Fatalf("esperado status pago, veio %q", depois.Status)
	}
}
