package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"saylani-welfare/backend/internal/service"
	"saylani-welfare/backend/pkg/response"
)

// ExportHandler 导出模块 HTTP 处理器（管理员）
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportBeneficiaries 导出受助人登记册为 Excel
// GET /api/export/beneficiaries
func (h *ExportHandler) ExportBeneficiaries(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportBeneficiaries(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		buf.Bytes(),
	)
}
