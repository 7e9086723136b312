package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"saylani-welfare/backend/internal/model"
)

// SearchField 搜索字段：cnic / name / phone / all
// all 额外覆盖 token_id
type SearchField string

const (
	SearchFieldCNIC  SearchField = "cnic"
	SearchFieldName  SearchField = "name"
	SearchFieldPhone SearchField = "phone"
	SearchFieldAll   SearchField = "all"
)

// StatsFilter 仪表盘统计过滤条件
type StatsFilter struct {
	StartDate  *time.Time
	EndDate    *time.Time
	Department string
}

// DepartmentCount 按部门聚合结果
type DepartmentCount struct {
	Department     model.Department `json:"department"`
	Count          int64            `json:"count"`
	NewCount       int64            `json:"new_count"`
	ReturningCount int64            `json:"returning_count"`
}

// StatusCount 按状态聚合结果
type StatusCount struct {
	Status model.Status `json:"status"`
	Count  int64        `json:"count"`
}

// BeneficiaryRepository 受助人数据访问接口
type BeneficiaryRepository interface {
	Create(ctx context.Context, b *model.Beneficiary) error
	GetByID(ctx context.Context, id string) (*model.Beneficiary, error)
	GetByTokenID(ctx context.Context, tokenID string) (*model.Beneficiary, error)
	GetByCNIC(ctx context.Context, cnic string) (*model.Beneficiary, error)
	Update(ctx context.Context, b *model.Beneficiary) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]model.Beneficiary, error)
	Search(ctx context.Context, field SearchField, query string, limit int) ([]model.Beneficiary, error)
	CountOverview(ctx context.Context, filter *StatsFilter) (total, returning int64, err error)
	CountByDepartment(ctx context.Context, filter *StatsFilter) ([]DepartmentCount, error)
	CountByStatus(ctx context.Context, filter *StatsFilter) ([]StatusCount, error)
}

// beneficiaryRepo BeneficiaryRepository 的 GORM 实现
type beneficiaryRepo struct {
	db *gorm.DB
}

// NewBeneficiaryRepo 创建 BeneficiaryRepository 实例
func NewBeneficiaryRepo(db *gorm.DB) BeneficiaryRepository {
	return &beneficiaryRepo{db: db}
}

func (r *beneficiaryRepo) Create(ctx context.Context, b *model.Beneficiary) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *beneficiaryRepo) GetByID(ctx context.Context, id string) (*model.Beneficiary, error) {
	var b model.Beneficiary
	err := r.db.WithContext(ctx).
		Where("beneficiary_id = ?", id).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *beneficiaryRepo) GetByTokenID(ctx context.Context, tokenID string) (*model.Beneficiary, error) {
	var b model.Beneficiary
	err := r.db.WithContext(ctx).
		Where("token_id = ?", tokenID).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *beneficiaryRepo) GetByCNIC(ctx context.Context, cnic string) (*model.Beneficiary, error) {
	var b model.Beneficiary
	err := r.db.WithContext(ctx).
		Where("cnic = ?", cnic).
		First(&b).Error
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *beneficiaryRepo) Update(ctx context.Context, b *model.Beneficiary) error {
	return r.db.WithContext(ctx).Save(b).Error
}

func (r *beneficiaryRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("beneficiary_id = ?", id).
		Delete(&model.Beneficiary{}).Error
}

// List 全量列表，最新登记在前
func (r *beneficiaryRepo) List(ctx context.Context) ([]model.Beneficiary, error) {
	var list []model.Beneficiary
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// Search 大小写不敏感的子串匹配，最新登记在前，数量受 limit 约束
func (r *beneficiaryRepo) Search(ctx context.Context, field SearchField, query string, limit int) ([]model.Beneficiary, error) {
	db := r.db.WithContext(ctx).Model(&model.Beneficiary{})
	pattern := "%" + query + "%"

	switch field {
	case SearchFieldCNIC:
		db = db.Where("cnic ILIKE ?", pattern)
	case SearchFieldName:
		db = db.Where("name ILIKE ?", pattern)
	case SearchFieldPhone:
		db = db.Where("phone ILIKE ?", pattern)
	default:
		db = db.Where(
			"cnic ILIKE ? OR name ILIKE ? OR phone ILIKE ? OR token_id ILIKE ?",
			pattern, pattern, pattern, pattern,
		)
	}

	var list []model.Beneficiary
	err := db.Order("created_at DESC").
		Limit(limit).
		Find(&list).Error
	return list, err
}

// applyStatsFilter 组装日期区间与部门过滤
func applyStatsFilter(db *gorm.DB, filter *StatsFilter, withDepartment bool) *gorm.DB {
	if filter == nil {
		return db
	}
	if filter.StartDate != nil {
		db = db.Where("created_at >= ?", *filter.StartDate)
	}
	if filter.EndDate != nil {
		db = db.Where("created_at <= ?", *filter.EndDate)
	}
	if withDepartment && filter.Department != "" {
		db = db.Where("department = ?", filter.Department)
	}
	return db
}

func (r *beneficiaryRepo) CountOverview(ctx context.Context, filter *StatsFilter) (total, returning int64, err error) {
	db := applyStatsFilter(r.db.WithContext(ctx).Model(&model.Beneficiary{}), filter, true)
	if err = db.Count(&total).Error; err != nil {
		return 0, 0, err
	}

	db = applyStatsFilter(r.db.WithContext(ctx).Model(&model.Beneficiary{}), filter, true)
	if err = db.Where("is_returning = ?", true).Count(&returning).Error; err != nil {
		return 0, 0, err
	}
	return total, returning, nil
}

// CountByDepartment 按部门分组统计（仅应用日期过滤，部门维度本身即分组键）
func (r *beneficiaryRepo) CountByDepartment(ctx context.Context, filter *StatsFilter) ([]DepartmentCount, error) {
	var result []DepartmentCount
	db := applyStatsFilter(r.db.WithContext(ctx).Model(&model.Beneficiary{}), filter, false)
	err := db.
		Select(
			"department",
			"COUNT(*) AS count",
			"COUNT(*) FILTER (WHERE NOT is_returning) AS new_count",
			"COUNT(*) FILTER (WHERE is_returning) AS returning_count",
		).
		Group("department").
		Order("count DESC").
		Scan(&result).Error
	return result, err
}

func (r *beneficiaryRepo) CountByStatus(ctx context.Context, filter *StatsFilter) ([]StatusCount, error) {
	var result []StatusCount
	db := applyStatsFilter(r.db.WithContext(ctx).Model(&model.Beneficiary{}), filter, true)
	err := db.
		Select("status", "COUNT(*) AS count").
		Group("status").
		Scan(&result).Error
	return result, err
}
