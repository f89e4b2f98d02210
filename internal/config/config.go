package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config reúne tudo que o processo lê do ambiente na inicialização.
// DATABASE_URL e JWT_SECRET são obrigatórios; sem eles o processo não sobe.
type Config struct {
	DatabaseURL       string
	JWTSecret         string
	Port              string
	StorageDir        string
	WebhookConviteURL string
	ConviteBaseURL    string
}

// Load carrega um .env local (se existir) e valida as variáveis obrigatórias.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		Port:              os.Getenv("PORT"),
		StorageDir:        os.Getenv("STORAGE_DIR"),
		WebhookConviteURL: os.Getenv("WEBHOOK_CONVITE_URL"),
		ConviteBaseURL:    os.Getenv("CONVITE_BASE_URL"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL não definida")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET não definida")
	}

	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.StorageDir == "" {
		cfg.StorageDir = "./dados"
	}
	if cfg.ConviteBaseURL == "" {
		cfg.ConviteBaseURL = "http://localhost:3000/prestador/signup"
	}
	return cfg, nil
}
