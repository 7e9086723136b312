package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"saylani-welfare/backend/internal/dto"
	"saylani-welfare/backend/internal/model"
	"saylani-welfare/backend/internal/repository"
)

// ── 仪表盘模块业务错误 ──

var (
	ErrInvalidDateFilter = errors.New("日期格式非法，应为 YYYY-MM-DD")
	ErrUnknownDepartment = errors.New("未知的部门")
)

// dateLayout 仪表盘过滤参数日期格式
const dateLayout = "2006-01-02"

// DashboardService 仪表盘只读聚合接口
type DashboardService interface {
	Stats(ctx context.Context, req *dto.DashboardRequest) (*dto.DashboardResponse, error)
}

type dashboardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewDashboardService 创建 DashboardService 实例
func NewDashboardService(repo *repository.Repository, logger *zap.Logger) DashboardService {
	return &dashboardService{repo: repo, logger: logger}
}

// parseStatsFilter 解析过滤参数
// endDate 计入当日末尾（23:59:59.999...）
func parseStatsFilter(req *dto.DashboardRequest) (*repository.StatsFilter, error) {
	filter := &repository.StatsFilter{}

	if req.StartDate != "" {
		t, err := time.Parse(dateLayout, req.StartDate)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		filter.StartDate = &t
	}
	if req.EndDate != "" {
		t, err := time.Parse(dateLayout, req.EndDate)
		if err != nil {
			return nil, ErrInvalidDateFilter
		}
		end := t.AddDate(0, 0, 1).Add(-time.Nanosecond)
		filter.EndDate = &end
	}
	if req.Department != "" {
		if !model.ValidDepartment(req.Department) {
			return nil, ErrUnknownDepartment
		}
		filter.Department = req.Department
	}

	return filter, nil
}

func (s *dashboardService) Stats(ctx context.Context, req *dto.DashboardRequest) (*dto.DashboardResponse, error) {
	filter, err := parseStatsFilter(req)
	if err != nil {
		return nil, err
	}

	total, returning, err := s.repo.Beneficiary.CountOverview(ctx, filter)
	if err != nil {
		s.logger.Error("统计总览失败", zap.Error(err))
		return nil, err
	}

	deptCounts, err := s.repo.Beneficiary.CountByDepartment(ctx, filter)
	if err != nil {
		s.logger.Error("按部门统计失败", zap.Error(err))
		return nil, err
	}

	statusCounts, err := s.repo.Beneficiary.CountByStatus(ctx, filter)
	if err != nil {
		s.logger.Error("按状态统计失败", zap.Error(err))
		return nil, err
	}

	deptStats := make([]dto.DepartmentStat, 0, len(deptCounts))
	for _, d := range deptCounts {
		deptStats = append(deptStats, dto.DepartmentStat{
			Department:     string(d.Department),
			Count:          d.Count,
			NewCount:       d.NewCount,
			ReturningCount: d.ReturningCount,
		})
	}

	statusStats := make([]dto.StatusStat, 0, len(statusCounts))
	for _, c := range statusCounts {
		statusStats = append(statusStats, dto.StatusStat{
			Status: string(c.Status),
			Count:  c.Count,
		})
	}

	return &dto.DashboardResponse{
		Overview: dto.DashboardOverview{
			TotalBeneficiaries:     total,
			NewBeneficiaries:       total - returning,
			ReturningBeneficiaries: returning,
		},
		DepartmentStats: deptStats,
		StatusStats:     statusStats,
	}, nil
}
