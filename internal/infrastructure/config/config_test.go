package config

import "testing"

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %q", cfg.Port)
	}
	if cfg.Mongo.Database != "studio_portal" {
		t.Fatalf("expected default database, got %q", cfg.Mongo.Database)
	}
	if cfg.Redis.Addr != "localhost:6379" {
		t.Fatalf("expected default redis addr, got %q", cfg.Redis.Addr)
	}
	if cfg.License.MaxDomains != 3 {
		t.Fatalf("expected default max domains 3, got %d", cfg.License.MaxDomains)
	}
}

func TestLoad_RedisOverrides(t *testing.T) {
	t.Setenv("REDIS_ADDR", "cache.internal:6380")
	t.Setenv("REDIS_DB", "2")
	t.Setenv("REDIS_PASSWORD", "hunter2")

	cfg := Load()

	if cfg.Redis.Addr != "cache.internal:6380" {
		t.Fatalf("expected overridden addr, got %q", cfg.Redis.Addr)
	}
	if cfg.Redis.DB != 2 {
		t.Fatalf("expected db 2, got %d", cfg.Redis.DB)
	}
	if cfg.Redis.Password != "hunter2" {
		t.Fatalf("expected password wired through, got %q", cfg.Redis.Password)
	}
}
