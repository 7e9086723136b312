package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"saylani-welfare/backend/internal/repository"
)

// ── 导出模块业务错误 ──

var ErrExportGenerateFail = errors.New("生成 Excel 文件失败")

// ExportService 导出业务接口
//
// 设计说明：
//   - 受助人登记册导出为 Excel (.xlsx)，供管理员留档与线下核对
//   - 导出以 bytes.Buffer 返回，由 Handler 层设置 HTTP 响应头后写入 Response
type ExportService interface {
	// ExportBeneficiaries 导出受助人登记册
	ExportBeneficiaries(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewExportService 创建 ExportService 实例
func NewExportService(repo *repository.Repository, logger *zap.Logger) ExportService {
	return &exportService{repo: repo, logger: logger}
}

func (s *exportService) ExportBeneficiaries(ctx context.Context) (*bytes.Buffer, string, error) {
	// 1. 查询全部受助人（最新登记在前）
	list, err := s.repo.Beneficiary.List(ctx)
	if err != nil {
		s.logger.Error("查询受助人失败", zap.Error(err))
		return nil, "", err
	}

	// 2. 生成工作簿
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Beneficiaries"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Token", "Name", "CNIC", "Phone", "Department", "Status", "Registered By", "Registered At"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			s.logger.Error("写入表头失败", zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	for row, b := range list {
		values := []interface{}{
			b.TokenID,
			b.Name,
			b.CNIC,
			b.Phone,
			string(b.Department),
			string(b.Status),
			b.RegisteredBy,
			b.CreatedAt.Format("2006-01-02 15:04"),
		}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, row+2)
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				s.logger.Error("写入数据行失败", zap.Int("row", row+2), zap.Error(err))
				return nil, "", ErrExportGenerateFail
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("序列化 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("beneficiaries_%s.xlsx", time.Now().Format("20060102"))
	return buf, filename, nil
}
