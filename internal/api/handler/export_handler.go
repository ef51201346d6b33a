package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"shift-checkin/internal/service"
	"shift-checkin/pkg/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportHandler 导出 HTTP 处理器
type ExportHandler struct {
	exportSvc service.ExportService
}

// NewExportHandler 创建 ExportHandler
func NewExportHandler(exportSvc service.ExportService) *ExportHandler {
	return &ExportHandler{exportSvc: exportSvc}
}

// ExportBoard 导出当前看板
// GET /export/board
func (h *ExportHandler) ExportBoard(c *gin.Context) {
	buf, filename, err := h.exportSvc.ExportBoard(c.Request.Context())
	if err != nil {
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, codeExportFailed, err.Error())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, filename))
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}
