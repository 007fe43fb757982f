package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
database:
  host: localhost
  user: catering
  password: secret
  database: catering
rabbitmq:
  host: localhost
  user: guest
  password: guest
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if cfg.Database.Port != 5432 || cfg.Database.SSLMode != "disable" || cfg.Database.MaxConns != 10 {
		t.Errorf("database defaults not applied: %+v", cfg.Database)
	}
	if cfg.RabbitMQ.Port != 5672 || cfg.RabbitMQ.VHost != "/" {
		t.Errorf("rabbitmq defaults not applied: %+v", cfg.RabbitMQ)
	}
}

func TestLoadRejectsIncompleteSections(t *testing.T) {
	t.Parallel()
	path := writeConfig(t, `
database:
  host: localhost
rabbitmq:
  host: localhost
  user: guest
`)
	if _, err := Load(path); err == nil {
		t.Fatal("Load() accepted a config without database credentials")
	}
}

func TestLoadMissingFile(t *testing.T) {
	t.Parallel()
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("Load() = nil error for a missing file")
	}
}
