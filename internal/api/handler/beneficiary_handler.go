package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"saylani-welfare/backend/internal/dto"
	"saylani-welfare/backend/internal/service"
	"saylani-welfare/backend/pkg/response"
)

// BeneficiaryHandler 受助人模块 HTTP 处理器
type BeneficiaryHandler struct {
	beneficiarySvc service.BeneficiaryService
}

// NewBeneficiaryHandler 创建 BeneficiaryHandler
func NewBeneficiaryHandler(beneficiarySvc service.BeneficiaryService) *BeneficiaryHandler {
	return &BeneficiaryHandler{beneficiarySvc: beneficiarySvc}
}

// Register 登记受助人并发放案件 Token
// POST /api/beneficiaries
func (h *BeneficiaryHandler) Register(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.RegisterBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "所有字段均为必填")
		return
	}

	result, err := h.beneficiarySvc.Register(c.Request.Context(), &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			response.BadRequest(c, "所有字段均为必填")
		case errors.Is(err, service.ErrCNICExists):
			response.Conflict(c, "该 CNIC 已登记过受助人")
		case errors.Is(err, service.ErrTokenGenerationFailed):
			response.InternalError(c)
		default:
			response.InternalError(c)
		}
		return
	}
	response.Created(c, "受助人登记成功", result)
}

// List 全量列表（最新登记在前）
// GET /api/beneficiaries
func (h *BeneficiaryHandler) List(c *gin.Context) {
	result, err := h.beneficiarySvc.List(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// Edit 整单编辑（管理员）
// PUT /api/beneficiaries/:id
func (h *BeneficiaryHandler) Edit(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.EditBeneficiaryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	result, err := h.beneficiarySvc.Edit(c.Request.Context(), c.Param("id"), &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBeneficiaryNotFound):
			response.NotFound(c, "受助人不存在")
		case errors.Is(err, service.ErrCNICExists):
			response.Conflict(c, "该 CNIC 已登记过受助人")
		case errors.Is(err, service.ErrInvalidStatus):
			response.BadRequest(c, "非法的处理状态")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OKMessage(c, "受助人更新成功", result)
}

// Delete 删除受助人（管理员，不可逆）
// DELETE /api/beneficiaries/:id
func (h *BeneficiaryHandler) Delete(c *gin.Context) {
	if err := h.beneficiarySvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrBeneficiaryNotFound) {
			response.NotFound(c, "受助人不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OKMessage(c, "受助人已删除", nil)
}

// Search 子串搜索
// GET /api/search?q=&type=
func (h *BeneficiaryHandler) Search(c *gin.Context) {
	var req dto.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	result, err := h.beneficiarySvc.Search(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}
