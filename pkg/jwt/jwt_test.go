package jwt

import (
	"errors"
	"testing"
	"time"

	jwtv5 "github.com/golang-jwt/jwt/v5"

	"saylani-welfare/backend/config"
)

func newTestManager(ttl time.Duration) *Manager {
	return NewManager(&config.AuthConfig{
		JWTSecret: "test-secret-at-least-16-chars",
		TokenTTL:  ttl,
	})
}

func TestGenerateAndParseToken(t *testing.T) {
	mgr := newTestManager(24 * time.Hour)

	token, err := mgr.GenerateToken("user-1", "前台小李", "receptionist")
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}

	claims, err := mgr.ParseToken(token)
	if err != nil {
		t.Fatalf("解析 Token 失败: %v", err)
	}
	if claims.UserID != "user-1" {
		t.Errorf("UserID 错误: got %s", claims.UserID)
	}
	if claims.Name != "前台小李" {
		t.Errorf("Name 错误: got %s", claims.Name)
	}
	if claims.Role != "receptionist" {
		t.Errorf("Role 错误: got %s", claims.Role)
	}
	if claims.Issuer != "saylani-welfare" {
		t.Errorf("Issuer 错误: got %s", claims.Issuer)
	}
	if claims.ID == "" {
		t.Error("JTI 不应为空")
	}
}

func TestParseExpiredToken(t *testing.T) {
	mgr := newTestManager(-time.Hour)

	token, err := mgr.GenerateToken("user-1", "前台小李", "receptionist")
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}

	if _, err := mgr.ParseToken(token); !errors.Is(err, ErrTokenExpired) {
		t.Errorf("过期 Token 应返回 ErrTokenExpired, got %v", err)
	}
}

func TestParseTokenMissingExpiry(t *testing.T) {
	mgr := newTestManager(24 * time.Hour)

	// 用相同密钥手工签发一个没有 exp 声明的 Token
	claims := Claims{
		UserID: "user-1",
		Name:   "前台小李",
		Role:   "receptionist",
		RegisteredClaims: jwtv5.RegisteredClaims{
			IssuedAt: jwtv5.NewNumericDate(time.Now()),
			Issuer:   "saylani-welfare",
		},
	}
	token, err := jwtv5.NewWithClaims(jwtv5.SigningMethodHS256, claims).
		SignedString([]byte("test-secret-at-least-16-chars"))
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}

	// 缺少过期时间的 Token 一律拒绝，不会带着 nil ExpiresAt 进入后续流程
	if _, err := mgr.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("无 exp 的 Token 应返回 ErrTokenInvalid, got %v", err)
	}
}

func TestParseInvalidToken(t *testing.T) {
	mgr := newTestManager(24 * time.Hour)

	if _, err := mgr.ParseToken("not-a-token"); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("非法 Token 应返回 ErrTokenInvalid, got %v", err)
	}

	// 不同密钥签发的 Token 验证不通过
	other := NewManager(&config.AuthConfig{
		JWTSecret: "another-secret-16-chars-long",
		TokenTTL:  24 * time.Hour,
	})
	token, err := other.GenerateToken("user-1", "前台小李", "receptionist")
	if err != nil {
		t.Fatalf("签发 Token 失败: %v", err)
	}
	if _, err := mgr.ParseToken(token); !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("错误密钥的 Token 应返回 ErrTokenInvalid, got %v", err)
	}
}
