package config

import (
	"testing"
	"time"
)

func validConfig() *Config {
	return &Config{
		Server: ServerConfig{Port: 8080},
		Auth: AuthConfig{
			JWTSecret: "test-secret-at-least-16-chars",
			TokenTTL:  168 * time.Hour,
		},
	}
}

func TestValidate(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Errorf("合法配置不应报错: %v", err)
	}
}

func TestValidateJWTSecret(t *testing.T) {
	cfg := validConfig()
	cfg.Auth.JWTSecret = ""
	if err := cfg.Validate(); err == nil {
		t.Error("空 jwt_secret 应校验失败")
	}

	cfg.Auth.JWTSecret = "too-short"
	if err := cfg.Validate(); err == nil {
		t.Error("过短 jwt_secret 应校验失败")
	}
}

func TestValidateTokenTTL(t *testing.T) {
	cfg := validConfig()

	cfg.Auth.TokenTTL = 12 * time.Hour
	if err := cfg.Validate(); err == nil {
		t.Error("低于 24h 的 token_ttl 应校验失败")
	}

	cfg.Auth.TokenTTL = 200 * time.Hour
	if err := cfg.Validate(); err == nil {
		t.Error("超过 168h 的 token_ttl 应校验失败")
	}

	cfg.Auth.TokenTTL = 24 * time.Hour
	if err := cfg.Validate(); err != nil {
		t.Errorf("24h 的 token_ttl 应合法: %v", err)
	}
}

func TestValidatePort(t *testing.T) {
	cfg := validConfig()
	cfg.Server.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Error("非法端口应校验失败")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SWS_AUTH_JWT_SECRET", "test-secret-at-least-16-chars")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("加载配置失败: %v", err)
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("缺省端口错误: got %d", cfg.Server.Port)
	}
	if cfg.Database.Name != "saylani_welfare" {
		t.Errorf("缺省库名错误: got %s", cfg.Database.Name)
	}
	if cfg.Auth.TokenTTL != 168*time.Hour {
		t.Errorf("缺省 token_ttl 错误: got %s", cfg.Auth.TokenTTL)
	}
}
