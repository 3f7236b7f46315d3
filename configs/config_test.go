package configs

import (
	"testing"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("DB_NAME", "")
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")
	t.Setenv("JWT_SECRET", "s")

	cfg := Load()
	if cfg.Port != "3000" {
		t.Errorf("default port = %q", cfg.Port)
	}
	if cfg.DBName != "blogdb" {
		t.Errorf("default db name = %q", cfg.DBName)
	}
}

func TestLoadReadsEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_NAME", "blogtest")
	t.Setenv("MONGO_URI", "mongodb://db:27017")
	t.Setenv("JWT_SECRET", "super")

	cfg := Load()
	if cfg.Port != "8081" || cfg.DBName != "blogtest" ||
		cfg.MongoURI != "mongodb://db:27017" || cfg.JWTSecret != "super" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}
