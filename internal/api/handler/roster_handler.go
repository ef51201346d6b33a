package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/service"
	"shift-checkin/pkg/response"
)

// RosterHandler 花名册 HTTP 处理器
type RosterHandler struct {
	rosterSvc service.RosterService
}

// NewRosterHandler 创建 RosterHandler
func NewRosterHandler(rosterSvc service.RosterService) *RosterHandler {
	return &RosterHandler{rosterSvc: rosterSvc}
}

// ListAssociates 花名册
// GET /associates
func (h *RosterHandler) ListAssociates(c *gin.Context) {
	list, err := h.rosterSvc.List(c.Request.Context())
	if err != nil {
		handleError(c, err)
		return
	}
	response.OK(c, gin.H{"list": list})
}

// AddAssociateForm 新增人员表单数据（扫到未登记 badge 后跳转至此）
// GET /add_associate?barcode=xxx
func (h *RosterHandler) AddAssociateForm(c *gin.Context) {
	response.OK(c, addAssociatePrompt(c.Query("barcode")))
}

// AddAssociate 新增人员并写入默认角色
// POST /add_associate
func (h *RosterHandler) AddAssociate(c *gin.Context) {
	var req dto.AddAssociateRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, codeBadParams, msgBadParams)
		return
	}

	resp, err := h.rosterSvc.Add(c.Request.Context(), &req)
	if err != nil {
		handleError(c, err)
		return
	}

	if response.WantsJSON(c) {
		response.Created(c, resp)
		return
	}
	c.Redirect(http.StatusSeeOther, "/")
}

// ImportAssociates Excel 批量导入花名册
// POST /associates/import  (multipart, 字段名 file)
func (h *RosterHandler) ImportAssociates(c *gin.Context) {
	fh, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, codeBadParams, "file is required")
		return
	}
	f, err := fh.Open()
	if err != nil {
		response.BadRequest(c, codeImportFailed, "cannot open uploaded file")
		return
	}
	defer f.Close()

	rows, err := h.rosterSvc.ParseImportFile(f)
	if err != nil {
		if errors.Is(err, service.ErrImportNoData) ||
			errors.Is(err, service.ErrImportBadHeader) ||
			errors.Is(err, service.ErrImportTooManyRows) {
			handleError(c, err)
			return
		}
		// excelize 解析失败，原始错误放在 details
		response.ErrorWithDetails(c, http.StatusBadRequest, codeImportFailed, "cannot parse import file", err.Error())
		return
	}

	result, err := h.rosterSvc.Import(c.Request.Context(), rows)
	if err != nil {
		handleError(c, err)
		return
	}

	response.OK(c, result)
}
