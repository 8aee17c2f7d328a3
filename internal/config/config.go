package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string

	// Gateway Evolution (API externa de WhatsApp)
	EvolutionURL      string
	EvolutionAPIKey   string
	EvolutionInstance string

	// Broadcast de convites
	InviteImageURL    string
	BroadcastInterval time.Duration

	// Notificação por email (opcional)
	MailHost     string
	MailPort     int
	MailUser     string
	MailPassword string
	MailNotifyTo string
}

// Load lê as variáveis de ambiente uma única vez no boot e valida.
// Nada de estado global: o Config é injetado nos construtores.
func Load() (*Config, error) {
	godotenv.Load()

	cfg := &Config{
		Port:              envOr("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		EvolutionURL:      os.Getenv("EVOLUTION_URL"),
		EvolutionAPIKey:   os.Getenv("EVOLUTION_API_KEY"),
		EvolutionInstance: envOr("EVOLUTION_INSTANCE", "wedding"),
		InviteImageURL:    os.Getenv("INVITE_IMAGE_URL"),
		MailHost:          os.Getenv("MAIL_HOST"),
		MailUser:          os.Getenv("MAIL_USER"),
		MailPassword:      os.Getenv("MAIL_PASS"),
		MailNotifyTo:      os.Getenv("MAIL_NOTIFY_TO"),
	}

	cfg.MailPort = 587
	if v := os.Getenv("MAIL_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("config: MAIL_PORT inválida (%q): %w", v, err)
		}
		cfg.MailPort = port
	}

	// Um convidado por minuto, igual ao disparo original.
	cfg.BroadcastInterval = time.Minute
	if v := os.Getenv("BROADCAST_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("config: BROADCAST_INTERVAL inválido (%q): %w", v, err)
		}
		cfg.BroadcastInterval = d
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("config: DATABASE_URL é obrigatória")
	}
	if _, err := url.Parse(c.DatabaseURL); err != nil {
		return fmt.Errorf("config: DATABASE_URL inválida (%q): %w", c.DatabaseURL, err)
	}

	if strings.TrimSpace(c.EvolutionURL) == "" {
		return fmt.Errorf("config: EVOLUTION_URL é obrigatória")
	}
	if strings.TrimSpace(c.EvolutionAPIKey) == "" {
		return fmt.Errorf("config: EVOLUTION_API_KEY é obrigatória")
	}

	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
