package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"saylani-welfare/backend/internal/dto"
	"saylani-welfare/backend/internal/service"
	"saylani-welfare/backend/pkg/response"
)

// TokenHandler 案件 Token 模块 HTTP 处理器
// Token 是受助人记录的只读投影；状态更新按 Token 定位但写在受助人上
type TokenHandler struct {
	beneficiarySvc service.BeneficiaryService
}

// NewTokenHandler 创建 TokenHandler
func NewTokenHandler(beneficiarySvc service.BeneficiaryService) *TokenHandler {
	return &TokenHandler{beneficiarySvc: beneficiarySvc}
}

// GetToken 按案件 Token 查询（含状态流转历史）
// GET /api/tokens/:id
func (h *TokenHandler) GetToken(c *gin.Context) {
	result, err := h.beneficiarySvc.GetByTokenID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrBeneficiaryNotFound) {
			response.NotFound(c, "Token 不存在")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, result)
}

// UpdateToken 更新案件状态与备注
// PATCH /api/tokens/:id
func (h *TokenHandler) UpdateToken(c *gin.Context) {
	actor, ok := MustGetActor(c)
	if !ok {
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	result, err := h.beneficiarySvc.UpdateStatus(c.Request.Context(), c.Param("id"), &req, actor)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBeneficiaryNotFound):
			response.NotFound(c, "Token 不存在")
		case errors.Is(err, service.ErrInvalidStatus):
			response.BadRequest(c, "非法的处理状态")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OKMessage(c, "案件状态已更新", result)
}
