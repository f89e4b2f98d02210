package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/pruma-gestao/api-pruma/internal/auth"
	"github.com/pruma-gestao/api-pruma/internal/config"
	"github.com/pruma-gestao/api-pruma/internal/configuracoes"
	"github.com/pruma-gestao/api-pruma/internal/conta"
	"github.com/pruma-gestao/api-pruma/internal/logger"
	"github.com/pruma-gestao/api-pruma/internal/notafiscal"
	"github.com/pruma-gestao/api-pruma/internal/notificacao"
	"github.com/pruma-gestao/api-pruma/internal/pagamento"
	"github.com/pruma-gestao/api-pruma/internal/papel"
	"github.com/pruma-gestao/api-pruma/internal/prestador"
	"github.com/pruma-gestao/api-pruma/internal/storage"
	"github.com/pruma-gestao/api-pruma/internal/utils/db"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuração inválida: ", err)
	}

	zlog, err := logger.Init(logger.ConfigFromEnv())
	if err != nil {
		log.Fatal("Erro ao iniciar logger: ", err)
	}
	defer zlog.Sync()

	auth.Init(cfg.JWTSecret)

	conexao, err := db.ConnectDataBase(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Erro ao conectar no banco: ", err)
	}

	// AutoMigrate para todos os modelos
	if err := conexao.AutoMigrate(
		&conta.Usuario{},
		&conta.ConviteToken{},
		&papel.PapelUsuario{},
		&prestador.PrestadorPJ{},
		&pagamento.Pagamento{},
		&notafiscal.NotaFiscal{},
		&configuracoes.ConfiguracoesEmpresa{},
		&configuracoes.PerfilUsuario{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate: ", err)
	}

	store := storage.NewLocal(cfg.StorageDir)
	notificador := notificacao.NewNotificador(cfg.WebhookConviteURL, zlog)
	resolver := papel.NewResolver(papel.NewRepository(conexao), zlog)

	// Handlers
	contaHandler := conta.NewHandler(conexao)
	prestadorHandler := prestador.NewHandler(conexao, store, notificador, cfg.ConviteBaseURL, zlog)
	pagamentoHandler := pagamento.NewHandler(conexao)
	notaFiscalHandler := notafiscal.NewHandler(conexao, store, zlog)
	configuracoesHandler := configuracoes.NewHandler(conexao)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/registrar", contaHandler.Registrar).Methods("POST")
	r.HandleFunc("/login", contaHandler.Login).Methods("POST")
	r.HandleFunc("/convites/login", contaHandler.LoginComConvite).Methods("POST")

	// Rotas autenticadas (papel resolvido uma vez por requisição)
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)
	api.Use(papel.Middleware(resolver))

	// Conta
	api.HandleFunc("/me", contaHandler.Me).Methods("GET")
	api.HandleFunc("/senha", contaHandler.AtualizarSenha).Methods("PUT")

	// Configurações e onboarding
	api.HandleFunc("/configuracoes", configuracoesHandler.Buscar).Methods("GET")
	api.HandleFunc("/configuracoes/perfil", configuracoesHandler.SalvarPerfil).Methods("PUT")
	api.HandleFunc("/configuracoes/empresa", configuracoesHandler.SalvarEmpresa).Methods("PUT")
	api.HandleFunc("/onboarding/perfil", configuracoesHandler.SalvarPerfil).Methods("POST")
	api.HandleFunc("/onboarding/empresa", configuracoesHandler.SalvarEmpresa).Methods("POST")

	// Rotas de prestadores
	api.HandleFunc("/prestadores", prestadorHandler.Listar).Methods("GET")
	api.HandleFunc("/prestadores/{id}", prestadorHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/prestadores/{id}", prestadorHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/prestadores/{id}/contrato", prestadorHandler.DownloadContrato).Methods("GET")

	// Rotas de pagamentos
	api.HandleFunc("/pagamentos", pagamentoHandler.Listar).Methods("GET")
	api.HandleFunc("/pagamentos/{id}", pagamentoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pagamentos/{id}/nota-fiscal", notaFiscalHandler.Anexar).Methods("POST")
	api.HandleFunc("/pagamentos/{id}/nota-fiscal", notaFiscalHandler.Baixar).Methods("GET")
	api.HandleFunc("/pagamentos/{id}/nota-fiscal", notaFiscalHandler.Remover).Methods("DELETE")

	// Rotas exclusivas do operador da empresa
	empresa := r.NewRoute().Subrouter()
	empresa.Use(auth.MiddlewareAutenticacao)
	empresa.Use(papel.Middleware(resolver))
	empresa.Use(papel.RequireEmpresa)

	empresa.HandleFunc("/prestadores", prestadorHandler.Criar).Methods("POST")
	empresa.HandleFunc("/prestadores/{id}/ativar", prestadorHandler.Ativar).Methods("POST")
	empresa.HandleFunc("/prestadores/{id}/desativar", prestadorHandler.Desativar).Methods("POST")
	empresa.HandleFunc("/prestadores/{id}/contrato", prestadorHandler.UploadContrato).Methods("POST")
	empresa.HandleFunc("/prestadores/{id}/contrato", prestadorHandler.RemoverContrato).Methods("DELETE")

	// Folha PJ
	empresa.HandleFunc("/folha/prestadores", pagamentoHandler.ListarElegiveis).Methods("GET")
	empresa.HandleFunc("/folha", pagamentoHandler.CriarFolha).Methods("POST")
	empresa.HandleFunc("/pagamentos/processar", pagamentoHandler.ProcessarSelecionados).Methods("POST")

	// Inicia servidor
	fmt.Println("Servidor rodando em http://localhost:" + cfg.Port)
	log.Fatal(http.ListenAndServe(":"+cfg.Port, cors.AllowAll().Handler(r)))
}
