package handler

import "saylani-welfare/backend/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Auth        *AuthHandler
	User        *UserHandler
	Beneficiary *BeneficiaryHandler
	Token       *TokenHandler
	Dashboard   *DashboardHandler
	Export      *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Auth:        NewAuthHandler(svc.Auth),
		User:        NewUserHandler(svc.User),
		Beneficiary: NewBeneficiaryHandler(svc.Beneficiary),
		Token:       NewTokenHandler(svc.Beneficiary),
		Dashboard:   NewDashboardHandler(svc.Dashboard),
		Export:      NewExportHandler(svc.Export),
	}
}
