package service

import (
	"go.uber.org/zap"

	"saylani-welfare/backend/config"
	"saylani-welfare/backend/internal/repository"
	"saylani-welfare/backend/pkg/jwt"
	"saylani-welfare/backend/pkg/redis"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Auth        AuthService
	User        UserService
	Beneficiary BeneficiaryService
	Dashboard   DashboardService
	Export      ExportService
}

// NewService 创建 Service 聚合
func NewService(
	cfg *config.Config,
	repo *repository.Repository,
	jwtMgr *jwt.Manager,
	rdb *redis.Client,
	logger *zap.Logger,
) *Service {
	return &Service{
		Auth:        NewAuthService(cfg, repo, jwtMgr, rdb, logger),
		User:        NewUserService(repo, logger),
		Beneficiary: NewBeneficiaryService(repo, NewTokenIssuer(), logger),
		Dashboard:   NewDashboardService(repo, logger),
		Export:      NewExportService(repo, logger),
	}
}
