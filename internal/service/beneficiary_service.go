package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"saylani-welfare/backend/internal/dto"
	"saylani-welfare/backend/internal/model"
	"saylani-welfare/backend/internal/repository"
)

// ── 受助人模块业务错误 ──

var (
	ErrMissingFields         = errors.New("所有字段均为必填")
	ErrCNICExists            = errors.New("该 CNIC 已登记过受助人")
	ErrBeneficiaryNotFound   = errors.New("受助人不存在")
	ErrInvalidStatus         = errors.New("非法的处理状态")
	ErrTokenGenerationFailed = errors.New("案件 Token 生成失败，请重试")
)

// searchLimit 搜索结果数量上限，约束响应体大小
const searchLimit = 20

// Actor 执行操作的服务端身份（来自会话 Token，绝不信任客户端传入）
type Actor struct {
	UserID string
	Name   string
}

// BeneficiaryService 受助人业务接口
// 登记 → 发 Token → 状态流转 → 查询的完整案件生命周期
type BeneficiaryService interface {
	Register(ctx context.Context, req *dto.RegisterBeneficiaryRequest, actor Actor) (*dto.RegisterBeneficiaryResponse, error)
	UpdateStatus(ctx context.Context, tokenID string, req *dto.UpdateStatusRequest, actor Actor) (*dto.BeneficiaryResponse, error)
	Edit(ctx context.Context, id string, req *dto.EditBeneficiaryRequest, actor Actor) (*dto.BeneficiaryResponse, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]dto.BeneficiaryResponse, error)
	GetByTokenID(ctx context.Context, tokenID string) (*dto.CaseTokenResponse, error)
	Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error)
}

type beneficiaryService struct {
	repo   *repository.Repository
	issuer TokenIssuer
	logger *zap.Logger
}

// NewBeneficiaryService 创建 BeneficiaryService 实例
func NewBeneficiaryService(repo *repository.Repository, issuer TokenIssuer, logger *zap.Logger) BeneficiaryService {
	return &beneficiaryService{repo: repo, issuer: issuer, logger: logger}
}

// toBeneficiaryResponse 转换为响应结构
func toBeneficiaryResponse(b *model.Beneficiary) *dto.BeneficiaryResponse {
	return &dto.BeneficiaryResponse{
		ID:           b.BeneficiaryID,
		Name:         b.Name,
		CNIC:         b.CNIC,
		Phone:        b.Phone,
		Address:      b.Address,
		Purpose:      string(b.Purpose),
		Department:   string(b.Department),
		Status:       string(b.Status),
		Remarks:      b.Remarks,
		TokenID:      b.TokenID,
		IsReturning:  b.IsReturning,
		RegisteredBy: b.RegisteredBy,
		CreatedAt:    b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    b.UpdatedAt.Format(time.RFC3339),
	}
}

// ────────────────────── Register ──────────────────────

func (s *beneficiaryService) Register(ctx context.Context, req *dto.RegisterBeneficiaryRequest, actor Actor) (*dto.RegisterBeneficiaryResponse, error) {
	// 必填字段不允许纯空白（binding:"required" 拦不住空格）
	name := strings.TrimSpace(req.Name)
	cnic := strings.TrimSpace(req.CNIC)
	phone := strings.TrimSpace(req.Phone)
	address := strings.TrimSpace(req.Address)
	purpose := strings.TrimSpace(req.Purpose)
	if name == "" || cnic == "" || phone == "" || address == "" || purpose == "" {
		return nil, ErrMissingFields
	}

	// CNIC 唯一性预检（并发场景由数据库约束兜底）
	if _, err := s.repo.Beneficiary.GetByCNIC(ctx, cnic); err == nil {
		return nil, ErrCNICExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		s.logger.Error("查询 CNIC 失败", zap.Error(err))
		return nil, err
	}

	// 部门在登记时由目的一次性推导
	department := model.DeriveDepartment(model.Purpose(purpose))

	b := &model.Beneficiary{
		Name:               name,
		CNIC:               cnic,
		Phone:              phone,
		Address:            address,
		Purpose:            model.Purpose(purpose),
		Department:         department,
		Status:             model.StatusPending,
		TokenID:            s.issuer.Issue(),
		RegisteredBy:       actor.Name,
		RegisteredByUserID: actor.UserID,
	}

	// 唯一约束冲突：先区分 CNIC 撞单，再按 Token 碰撞重发一次
	if err := s.repo.Beneficiary.Create(ctx, b); err != nil {
		if !errors.Is(err, gorm.ErrDuplicatedKey) {
			s.logger.Error("登记受助人失败", zap.Error(err))
			return nil, err
		}
		if _, cnicErr := s.repo.Beneficiary.GetByCNIC(ctx, cnic); cnicErr == nil {
			return nil, ErrCNICExists
		}
		b.TokenID = s.issuer.Issue()
		if err := s.repo.Beneficiary.Create(ctx, b); err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				s.logger.Error("案件 Token 连续碰撞", zap.String("token_id", b.TokenID))
				return nil, ErrTokenGenerationFailed
			}
			s.logger.Error("登记受助人失败", zap.Error(err))
			return nil, err
		}
	}

	// 初始状态写入流转历史
	s.appendHistory(ctx, b, "", model.StatusPending, "", actor)

	s.logger.Info("受助人登记成功",
		zap.String("token_id", b.TokenID),
		zap.String("department", string(department)),
		zap.String("registered_by", actor.Name),
	)

	return &dto.RegisterBeneficiaryResponse{
		Beneficiary: *toBeneficiaryResponse(b),
		TokenID:     b.TokenID,
	}, nil
}

// ────────────────────── UpdateStatus ──────────────────────

func (s *beneficiaryService) UpdateStatus(ctx context.Context, tokenID string, req *dto.UpdateStatusRequest, actor Actor) (*dto.BeneficiaryResponse, error) {
	status, ok := model.NormalizeStatus(req.Status)
	if !ok {
		return nil, ErrInvalidStatus
	}

	b, err := s.repo.Beneficiary.GetByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBeneficiaryNotFound
		}
		s.logger.Error("查询受助人失败", zap.String("token_id", tokenID), zap.Error(err))
		return nil, err
	}

	oldStatus := b.Status
	b.Status = status
	b.Remarks = req.Remarks

	if err := s.repo.Beneficiary.Update(ctx, b); err != nil {
		s.logger.Error("更新案件状态失败", zap.String("token_id", tokenID), zap.Error(err))
		return nil, err
	}

	// 每次流转都追加历史，旧状态不再被覆盖丢失
	s.appendHistory(ctx, b, oldStatus, status, req.Remarks, actor)

	return toBeneficiaryResponse(b), nil
}

// ────────────────────── Edit ──────────────────────

func (s *beneficiaryService) Edit(ctx context.Context, id string, req *dto.EditBeneficiaryRequest, actor Actor) (*dto.BeneficiaryResponse, error) {
	b, err := s.repo.Beneficiary.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBeneficiaryNotFound
		}
		s.logger.Error("查询受助人失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 应用更新字段（仅更新非 nil 字段）
	if req.Name != nil {
		b.Name = strings.TrimSpace(*req.Name)
	}
	if req.CNIC != nil {
		cnic := strings.TrimSpace(*req.CNIC)
		existing, err := s.repo.Beneficiary.GetByCNIC(ctx, cnic)
		if err == nil && existing.BeneficiaryID != id {
			return nil, ErrCNICExists
		} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		b.CNIC = cnic
	}
	if req.Phone != nil {
		b.Phone = strings.TrimSpace(*req.Phone)
	}
	if req.Address != nil {
		b.Address = *req.Address
	}
	if req.Purpose != nil {
		// 目的变更同步重推部门，避免两字段脱节
		b.Purpose = model.Purpose(strings.TrimSpace(*req.Purpose))
		b.Department = model.DeriveDepartment(b.Purpose)
	}
	if req.Remarks != nil {
		b.Remarks = *req.Remarks
	}
	if req.IsReturning != nil {
		b.IsReturning = *req.IsReturning
	}

	oldStatus := b.Status
	if req.Status != nil {
		status, ok := model.NormalizeStatus(*req.Status)
		if !ok {
			return nil, ErrInvalidStatus
		}
		b.Status = status
	}

	if err := s.repo.Beneficiary.Update(ctx, b); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrCNICExists
		}
		s.logger.Error("编辑受助人失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if b.Status != oldStatus {
		s.appendHistory(ctx, b, oldStatus, b.Status, b.Remarks, actor)
	}

	return toBeneficiaryResponse(b), nil
}

// ────────────────────── Delete ──────────────────────

func (s *beneficiaryService) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.Beneficiary.GetByID(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBeneficiaryNotFound
		}
		s.logger.Error("查询受助人失败", zap.String("id", id), zap.Error(err))
		return err
	}

	// 不可逆硬删除，历史记录随外键级联清除
	if err := s.repo.Beneficiary.Delete(ctx, id); err != nil {
		s.logger.Error("删除受助人失败", zap.String("id", id), zap.Error(err))
		return err
	}
	return nil
}

// ────────────────────── List ──────────────────────

func (s *beneficiaryService) List(ctx context.Context) ([]dto.BeneficiaryResponse, error) {
	list, err := s.repo.Beneficiary.List(ctx)
	if err != nil {
		s.logger.Error("列出受助人失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.BeneficiaryResponse, 0, len(list))
	for i := range list {
		result = append(result, *toBeneficiaryResponse(&list[i]))
	}
	return result, nil
}

// ────────────────────── GetByTokenID ──────────────────────

// GetByTokenID 按案件 Token 查询受助人及其状态流转历史
// 替代原先独立的 Token 实体：只读投影，状态权威字段在受助人上
func (s *beneficiaryService) GetByTokenID(ctx context.Context, tokenID string) (*dto.CaseTokenResponse, error) {
	b, err := s.repo.Beneficiary.GetByTokenID(ctx, tokenID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBeneficiaryNotFound
		}
		s.logger.Error("查询受助人失败", zap.String("token_id", tokenID), zap.Error(err))
		return nil, err
	}

	entries, err := s.repo.StatusHistory.ListByBeneficiary(ctx, b.BeneficiaryID)
	if err != nil {
		s.logger.Error("查询状态历史失败", zap.String("token_id", tokenID), zap.Error(err))
		return nil, err
	}

	history := make([]dto.StatusHistoryEntry, 0, len(entries))
	for _, e := range entries {
		history = append(history, dto.StatusHistoryEntry{
			OldStatus: string(e.OldStatus),
			NewStatus: string(e.NewStatus),
			Remarks:   e.Remarks,
			ChangedBy: e.ChangedBy,
			ChangedAt: e.CreatedAt.Format(time.RFC3339),
		})
	}

	return &dto.CaseTokenResponse{
		TokenID:     b.TokenID,
		Department:  string(b.Department),
		Status:      string(b.Status),
		Remarks:     b.Remarks,
		Beneficiary: *toBeneficiaryResponse(b),
		History:     history,
	}, nil
}

// ────────────────────── Search ──────────────────────

func (s *beneficiaryService) Search(ctx context.Context, req *dto.SearchRequest) (*dto.SearchResponse, error) {
	// 空查询返回空集，不报错也不全量返回
	query := strings.TrimSpace(req.Query)
	if query == "" {
		return &dto.SearchResponse{Count: 0, List: []dto.BeneficiaryResponse{}}, nil
	}

	field := repository.SearchFieldAll
	switch repository.SearchField(req.Type) {
	case repository.SearchFieldCNIC, repository.SearchFieldName, repository.SearchFieldPhone:
		field = repository.SearchField(req.Type)
	}

	list, err := s.repo.Beneficiary.Search(ctx, field, query, searchLimit)
	if err != nil {
		s.logger.Error("搜索受助人失败", zap.String("query", query), zap.Error(err))
		return nil, err
	}

	result := make([]dto.BeneficiaryResponse, 0, len(list))
	for i := range list {
		result = append(result, *toBeneficiaryResponse(&list[i]))
	}
	return &dto.SearchResponse{Count: len(result), List: result}, nil
}

// appendHistory 追加状态流转历史
// 历史写入失败只记日志，不阻断主流程
func (s *beneficiaryService) appendHistory(ctx context.Context, b *model.Beneficiary, oldStatus, newStatus model.Status, remarks string, actor Actor) {
	entry := &model.StatusHistory{
		BeneficiaryID:   b.BeneficiaryID,
		TokenID:         b.TokenID,
		OldStatus:       oldStatus,
		NewStatus:       newStatus,
		Remarks:         remarks,
		ChangedBy:       actor.Name,
		ChangedByUserID: actor.UserID,
	}
	if err := s.repo.StatusHistory.Append(ctx, entry); err != nil {
		s.logger.Error("写入状态历史失败",
			zap.String("token_id", b.TokenID),
			zap.Error(err),
		)
	}
}
