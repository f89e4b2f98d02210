package pagamento

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pruma-gestao/api-pruma/internal/prestador"
)

func bancoDeTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "teste.db")), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("erro ao abrir banco de teste: %v", err)
	}
	if err := db.AutoMigrate(&prestador.PrestadorPJ{}, &Pagamento{}); err != nil {
		t.Fatalf("erro no AutoMigrate: %v", err)
	}
	return db
}

func criarPrestador(t *testing.T, db *gorm.DB, nome string, remuneracao float64, ativo bool) prestador.PrestadorPJ {
	t.Helper()
	p := prestador.PrestadorPJ{
		Nome:        nome,
		Sobrenome:   "Silva",
		RazaoSocial: nome + " ME",
		Email:       nome + "@exemplo.com.br",
		Funcao:      "Desenvolvedor",
		DataInicio:  "2024-01-01",
		Remuneracao: remuneracao,
		Ativo:       ativo,
	}
	if err := db.Save(&p).Error; err != nil {
		t.Fatalf("erro ao criar prestador: %v", err)
	}
	return p
}

func TestCriarEmLoteEListar(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository(db)
	p := criarPrestador(t, db, "ana", 1000, true)

	agora := time.Now()
	pagamentos := []*Pagamento{
		{PrestadorID: p.ID, Valor: 1100, Data: agora, MesReferente: "2025-03-01", Status: StatusPendente},
		{PrestadorID: p.ID, Valor: 900, Data: agora, MesReferente: "2025-04-01", Status: StatusPendente},
	}
	if err := repo.CriarEmLote(pagamentos); err != nil {
		t.Fatalf("erro no lote: %v", err)
	}

	lista, err := repo.ListarTodos()
	if err != nil {
		t.Fatalf("erro ao listar: %v", err)
	}
	if len(lista) != 2 {
		t.Fatalf("esperado 2 pagamentos, veio %d", len(lista))
	}
	if lista[0].Prestador.Nome != "ana" {
		t.Fatalf("prestador não foi carregado na listagem: %+v", lista[0].Prestador)
	}

	porPrestador, err := repo.ListarPorPrestador(p.ID)
	if err != nil || len(porPrestador) != 2 {
		t.Fatalf("listagem por prestador falhou: %d err=%v", len(porPrestador), err)
	}
	if vazio, err := repo.ListarPorPrestador(uuid.New()); err != nil || len(vazio) != 0 {
		t.Fatalf("prestador sem pagamentos deveria vir vazio: %d err=%v", len(vazio), err)
	}
}

func TestMarcarComoPagosSoMudaPendentes(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository(db)
	p := criarPrestador(t, db, "bruno", 2000, true)

	agora := time.Now()
	pendente := &Pagamento{PrestadorID: p.ID, Valor: 2000, Data: agora, MesReferente: "2025-03-01", Status: StatusPendente}
	jaPago := &Pagamento{PrestadorID: p.ID, Valor: 2000, Data: agora, MesReferente: "2025-02-01", Status: StatusPago}
	intocado := &Pagamento{PrestadorID: p.ID, Valor: 2000, Data: agora, MesReferente: "2025-01-01", Status: StatusPendente}
	if err := repo.CriarEmLote([]*Pagamento{pendente, jaPago, intocado}); err != nil {
		t.Fatalf("erro no lote: %v", err)
	}

	mudados, err := repo.MarcarComoPagos([]uuid.UUID{pendente.ID, jaPago.ID})
	if err != nil {
		t.Fatalf("erro ao processar: %v", err)
	}
	if mudados != 1 {
		t.Fatalf("apenas o pendente selecionado deveria mudar, mudaram %d", mudados)
	}

	depois, err := repo.BuscarPorID(intocado.ID)
	if err != nil {
		t.Fatalf("erro ao buscar: %v", err)
	}
	if depois.Status != StatusPendente {
		t.Fatal("pagamento fora da seleção não pode mudar de status")
	}
}

func TestChaveLote(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository(db)
	p := criarPrestador(t, db, "carla", 1500, true)

	existe, err := repo.ExisteChaveLote("lote-1")
	if err != nil || existe {
		t.Fatalf("chave nova não deveria existir: %v err=%v", existe, err)
	}

	pag := &Pagamento{PrestadorID: p.ID, Valor: 1500, Data: time.Now(), MesReferente: "2025-03-01", Status: StatusPendente, ChaveLote: "lote-1"}
	if err := repo.CriarEmLote([]*Pagamento{pag}); err != nil {
		t.Fatalf("erro no lote: %v", err)
	}

	existe, err = repo.ExisteChaveLote("lote-1")
	if err != nil || !existe {
		t.Fatalf("chave usada deveria constar: %v err=%v", existe, err)
	}
}

func TestVincularNotaFiscal(t *testing.T) {
	db := bancoDeTeste(t)
	repo := NewRepository(db)
	p := criarPrestador(t, db, "davi", 1500, true)

	pag := &Pagamento{PrestadorID: p.ID, Valor: 1500, Data: time.Now(), MesReferente: "2025-03-01", Status: StatusPendente}
	if err := repo.CriarEmLote([]*Pagamento{pag}); err != nil {
		t.Fatalf("erro no lote: %v", err)
	}

	nfID := uuid.New()
	if err := repo.VincularNotaFiscal(pag.ID, &nfID); err != nil {
		t.Fatalf("erro ao vincular: %v", err)
	}
	depois, _ := repo.BuscarPorID(pag.ID)
	if depois.NotaFiscalID == nil || *depois.NotaFiscalID != nfID {
		t.Fatal("vínculo de nota fiscal não persistiu")
	}

	if err := repo.VincularNotaFiscal(pag.ID, nil); err != nil {
		t.Fatalf("erro ao limpar vínculo: %v", err)
	}
	depois, _ = repo.BuscarPorID(pag.ID)
	if depois.NotaFiscalID != nil {
		t.Fatal("vínculo deveria ter sido limpo")
	}
}
