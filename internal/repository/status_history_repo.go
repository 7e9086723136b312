package repository

import (
	"context"

	"gorm.io/gorm"

	"saylani-welfare/backend/internal/model"
)

// StatusHistoryRepository 状态流转历史数据访问接口
// 只追加：不提供 Update / Delete
type StatusHistoryRepository interface {
	Append(ctx context.Context, entry *model.StatusHistory) error
	ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]model.StatusHistory, error)
}

// statusHistoryRepo StatusHistoryRepository 的 GORM 实现
type statusHistoryRepo struct {
	db *gorm.DB
}

// NewStatusHistoryRepo 创建 StatusHistoryRepository 实例
func NewStatusHistoryRepo(db *gorm.DB) StatusHistoryRepository {
	return &statusHistoryRepo{db: db}
}

func (r *statusHistoryRepo) Append(ctx context.Context, entry *model.StatusHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *statusHistoryRepo) ListByBeneficiary(ctx context.Context, beneficiaryID string) ([]model.StatusHistory, error) {
	var entries []model.StatusHistory
	err := r.db.WithContext(ctx).
		Where("beneficiary_id = ?", beneficiaryID).
		Order("created_at ASC").
		Find(&entries).Error
	return entries, err
}
