package service

import (
	"context"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"saylani-welfare/backend/config"
	"saylani-welfare/backend/internal/model"
	"saylani-welfare/backend/internal/repository"
)

// SeedAdmin 启动时播种初始管理员
// 仅在用户表中不存在管理员、且配置了引导账号时执行一次，
// 替代原先随时可调的 create-admin 接口
func SeedAdmin(ctx context.Context, cfg *config.BootstrapConfig, repo *repository.Repository, logger *zap.Logger) error {
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		return nil
	}

	count, err := repo.User.CountByRole(ctx, model.RoleAdmin)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.User{
		Name:         cfg.AdminName,
		Email:        strings.ToLower(strings.TrimSpace(cfg.AdminEmail)),
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsActive:     true,
	}
	if err := repo.User.Create(ctx, admin); err != nil {
		return err
	}

	logger.Info("初始管理员已创建", zap.String("email", cfg.AdminEmail))
	return nil
}
