package handler

import (
	"github.com/gin-gonic/gin"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/service"
	"shift-checkin/pkg/response"
)

// SettingsHandler 人数配置 HTTP 处理器
type SettingsHandler struct {
	settingsSvc service.SettingsService
}

// NewSettingsHandler 创建 SettingsHandler
func NewSettingsHandler(settingsSvc service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsSvc: settingsSvc}
}

// GetSettings 当前人数目标
// GET /settings
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	response.OK(c, h.settingsSvc.Get(c.Request.Context()))
}

// UpdateSettings 录入预估量并计算人数目标，成功后进入角色分配
// POST /settings
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	var req dto.UpdateSettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, codeBadParams, msgBadParams)
		return
	}

	resp, err := h.settingsSvc.Update(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Done(c, "/assign_roles", resp)
}
