package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/service"
	"shift-checkin/pkg/response"
)

// AssignmentHandler 角色预分配 HTTP 处理器
type AssignmentHandler struct {
	assignmentSvc service.AssignmentService
}

// NewAssignmentHandler 创建 AssignmentHandler
func NewAssignmentHandler(assignmentSvc service.AssignmentService) *AssignmentHandler {
	return &AssignmentHandler{assignmentSvc: assignmentSvc}
}

// GetAssignments 分配页面数据
// GET /assign_roles
func (h *AssignmentHandler) GetAssignments(c *gin.Context) {
	resp, err := h.assignmentSvc.Get(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, resp)
}

// AssignRoles 整体替换角色分配。
// 表单提交时每个字段名是 badge、值是角色；JSON 提交 {"assignments": {...}}
// POST /assign_roles
func (h *AssignmentHandler) AssignRoles(c *gin.Context) {
	var assignments map[string]string

	if c.ContentType() == binding.MIMEJSON {
		var req dto.AssignRolesRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, codeBadParams, msgBadParams)
			return
		}
		assignments = req.Assignments
	} else {
		if err := c.Request.ParseMultipartForm(1 << 20); err != nil && !errors.Is(err, http.ErrNotMultipart) {
			response.BadRequest(c, codeBadParams, msgBadParams)
			return
		}
		assignments = make(map[string]string, len(c.Request.PostForm))
		for badge, values := range c.Request.PostForm {
			if len(values) > 0 {
				assignments[badge] = values[0]
			}
		}
	}

	resp, err := h.assignmentSvc.AssignAll(c.Request.Context(), assignments)
	if err != nil {
		handleError(c, err)
		return
	}

	response.Done(c, "/", resp)
}

// AssignRole 单个分配
// POST /assign_role
func (h *AssignmentHandler) AssignRole(c *gin.Context) {
	var req dto.AssignRoleRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, codeBadParams, msgBadParams)
		return
	}

	if err := h.assignmentSvc.AssignOne(c.Request.Context(), req.Barcode, req.Role); err != nil {
		handleError(c, err)
		return
	}

	response.Done(c, "/", gin.H{"barcode": req.Barcode, "role": req.Role})
}
