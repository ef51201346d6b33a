package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/service"
	"shift-checkin/pkg/response"
)

// CheckinHandler 签到模块 HTTP 处理器
type CheckinHandler struct {
	checkinSvc service.CheckinService
}

// NewCheckinHandler 创建 CheckinHandler
func NewCheckinHandler(checkinSvc service.CheckinService) *CheckinHandler {
	return &CheckinHandler{checkinSvc: checkinSvc}
}

// Dashboard 首页看板
// GET /
func (h *CheckinHandler) Dashboard(c *gin.Context) {
	board, err := h.checkinSvc.Dashboard(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, board)
}

// CheckIn 扫码签到
// POST /checkin
func (h *CheckinHandler) CheckIn(c *gin.Context) {
	var req dto.CheckinRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, codeBadParams, msgBadParams)
		return
	}

	resp, err := h.checkinSvc.CheckIn(c.Request.Context(), req.BadgeID)
	if err != nil {
		if errors.Is(err, service.ErrUnknownBadge) {
			unknownBadge(c, req.BadgeID)
			return
		}
		handleError(c, err)
		return
	}

	response.Done(c, "/", resp)
}

// Remove 移除在岗人员，不在岗时同样返回成功
// POST /remove
func (h *CheckinHandler) Remove(c *gin.Context) {
	var req dto.RemoveRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, codeBadParams, msgBadParams)
		return
	}

	removed, err := h.checkinSvc.Remove(c.Request.Context(), req.BadgeID)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Done(c, "/", gin.H{"badge": req.BadgeID, "removed": removed})
}

// Reset 清空本班次在岗台账
// POST /reset
func (h *CheckinHandler) Reset(c *gin.Context) {
	if err := h.checkinSvc.Reset(c.Request.Context()); err != nil {
		handleError(c, err)
		return
	}
	response.Done(c, "/", nil)
}

// ReassignRole 在岗调岗
// POST /reassign_role
func (h *CheckinHandler) ReassignRole(c *gin.Context) {
	var req dto.ReassignRoleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, codeBadParams, msgBadParams)
		return
	}

	resp, err := h.checkinSvc.Reassign(c.Request.Context(), req.Barcode, req.NewRole)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Done(c, "/", resp)
}
