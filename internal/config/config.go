// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v2"
)

// Config reúne tudo que os handlers precisam de fora: porta, URL do feed e os
// valores de fallback da identidade do site. A URL nunca fica hardcoded no
// handler; vem do YAML ou do ambiente.
type Config struct {
	App  AppConfig  `yaml:"app"`
	Feed FeedConfig `yaml:"feed"`
	Site SiteConfig `yaml:"site"`
}

type AppConfig struct {
	Name string `yaml:"name"`
	Port int    `yaml:"port"`
}

type FeedConfig struct {
	URL string `yaml:"url"`
}

// SiteConfig são os fallbacks usados quando a fila de configuração do feed
// deixa um campo vazio, mais o interruptor de email. Expressos como
// configuração para que variantes do catálogo não dupliquem lógica.
type SiteConfig struct {
	FallbackName  string `yaml:"fallback_name"`
	FallbackPhone string `yaml:"fallback_phone"`
	FallbackLogo  string `yaml:"fallback_logo"`
	IncludeEmail  bool   `yaml:"include_email"`
}

// LoadConfig carrega configs/app.yaml e aplica as variáveis de ambiente
// FEED_URL e PORT por cima.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		App:  AppConfig{Name: "inmobiliaria", Port: 8080},
		Site: SiteConfig{FallbackName: "Mi Inmobiliaria", FallbackPhone: "", FallbackLogo: ""},
	}

	// Carrega arquivo YAML base, quando existir
	basePath := filepath.Join("configs", "app.yaml")
	yamlFile, err := os.ReadFile(basePath)
	if err == nil {
		if err := yaml.Unmarshal(yamlFile, cfg); err != nil {
			return nil, fmt.Errorf("lendo %s: %w", basePath, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, err
	}

	cfg.Feed.URL = getEnv("FEED_URL", cfg.Feed.URL)
	cfg.App.Port = getEnvInt("PORT", cfg.App.Port)

	if cfg.Feed.URL == "" {
		return nil, fmt.Errorf("FEED_URL não configurada (configs/app.yaml ou ambiente)")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		var n int
		if _, err := fmt.Sscanf(val, "%d", &n); err == nil {
			return n
		}
	}
	return fallback
}
