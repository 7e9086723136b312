package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"saylani-welfare/backend/internal/dto"
	"saylani-welfare/backend/internal/service"
	"saylani-welfare/backend/pkg/response"
)

// DashboardHandler 仪表盘模块 HTTP 处理器（管理员）
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// GetStats 聚合统计
// GET /api/dashboard?startDate=&endDate=&department=
func (h *DashboardHandler) GetStats(c *gin.Context) {
	var req dto.DashboardRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	result, err := h.dashboardSvc.Stats(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDateFilter):
			response.BadRequest(c, "日期格式非法，应为 YYYY-MM-DD")
		case errors.Is(err, service.ErrUnknownDepartment):
			response.BadRequest(c, "未知的部门")
		default:
			response.InternalError(c)
		}
		return
	}
	response.OK(c, result)
}
