package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"saylani-welfare/backend/config"
	"saylani-welfare/backend/internal/model"
)

func TestSeedAdmin(t *testing.T) {
	repo, userRepo, _, _ := newTestRepository()
	cfg := &config.BootstrapConfig{
		AdminName:     "System Admin",
		AdminEmail:    "admin@saylani.org",
		AdminPassword: "bootstrap-pass-1",
	}

	if err := SeedAdmin(context.Background(), cfg, repo, zap.NewNop()); err != nil {
		t.Fatalf("播种管理员失败: %v", err)
	}

	admin, err := userRepo.GetByEmail(context.Background(), "admin@saylani.org")
	if err != nil {
		t.Fatalf("查询管理员失败: %v", err)
	}
	if admin.Role != model.RoleAdmin {
		t.Errorf("角色错误: got %s", admin.Role)
	}
	if !admin.IsActive {
		t.Error("初始管理员应为激活状态")
	}

	// 已存在管理员时幂等跳过
	if err := SeedAdmin(context.Background(), cfg, repo, zap.NewNop()); err != nil {
		t.Fatalf("重复播种不应报错: %v", err)
	}
	count, _ := userRepo.CountByRole(context.Background(), model.RoleAdmin)
	if count != 1 {
		t.Errorf("管理员数量错误: got %d, want 1", count)
	}
}

func TestSeedAdminWithoutConfig(t *testing.T) {
	repo, userRepo, _, _ := newTestRepository()

	// 未配置引导账号时为空操作
	if err := SeedAdmin(context.Background(), &config.BootstrapConfig{}, repo, zap.NewNop()); err != nil {
		t.Fatalf("无配置播种不应报错: %v", err)
	}
	count, _ := userRepo.CountByRole(context.Background(), model.RoleAdmin)
	if count != 0 {
		t.Errorf("不应创建管理员: got %d", count)
	}
}
