package config

import (
	"testing"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("default port = %q, want 8080", cfg.Server.Port)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("default log level = %q, want info", cfg.LogLevel)
	}
	if cfg.Mongo.URI != "" {
		t.Errorf("default mongo URI = %q, want empty (in-memory mode)", cfg.Mongo.URI)
	}
	if len(cfg.Auth.AdminKeys) == 0 {
		t.Error("expected a default admin API key")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("MONGO_DATABASE", "burger_test")
	t.Setenv("ADMIN_API_KEYS", "key1,key2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("port = %q, want 9090", cfg.Server.Port)
	}
	if cfg.Mongo.Database != "burger_test" {
		t.Errorf("database = %q, want burger_test", cfg.Mongo.Database)
	}
	if len(cfg.Auth.AdminKeys) != 2 {
		t.Errorf("admin keys = %v, want two keys", cfg.Auth.AdminKeys)
	}
}

func TestLoad_InvalidLogLevel(t *testing.T) {
	t.Setenv("LOG_LEVEL", "loud")

	if _, err := Load(); err == nil {
		t.Fatal("Load() accepted an invalid log level")
	}
}
