package handler

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/model"
	"shift-checkin/internal/service"
	"shift-checkin/pkg/response"
)

// 业务错误码
const (
	codeBadParams         = 10001
	codeDuplicateCheckin  = 13001
	codeUnknownBadge      = 13002
	codeInvalidRole       = 13003
	codeInvalidAssociate  = 13004
	codeTransCapExceeded  = 14001
	codeInvalidVolume     = 14002
	codeHeadcountExceeded = 14003
	codeImportFailed      = 15001
	codeExportFailed      = 16001
)

const (
	msgBadParams     = "invalid parameters"
	addAssociatePath = "/add_associate"
)

// handleError 统一处理业务错误，未识别的错误按 500 处理
func handleError(c *gin.Context, err error) {
	var capErr *service.TransCapError
	switch {
	case errors.Is(err, service.ErrDuplicateCheckin):
		response.BadRequest(c, codeDuplicateCheckin, "Badge already scanned")
	case errors.Is(err, service.ErrInvalidRole):
		response.BadRequest(c, codeInvalidRole, err.Error())
	case errors.Is(err, service.ErrInvalidAssociate):
		response.BadRequest(c, codeInvalidAssociate, err.Error())
	case errors.As(err, &capErr):
		response.BadRequest(c, codeTransCapExceeded, capErr.Error())
	case errors.Is(err, service.ErrInvalidVolume):
		response.BadRequest(c, codeInvalidVolume, err.Error())
	case errors.Is(err, service.ErrHeadcountExceeded):
		response.BadRequest(c, codeHeadcountExceeded, err.Error())
	case errors.Is(err, service.ErrImportNoData),
		errors.Is(err, service.ErrImportBadHeader),
		errors.Is(err, service.ErrImportTooManyRows):
		response.BadRequest(c, codeImportFailed, err.Error())
	default:
		_ = c.Error(err)
		response.InternalError(c)
	}
}

// unknownBadge 未登记的 badge 转入新增人员流程
func unknownBadge(c *gin.Context, barcode string) {
	if response.WantsJSON(c) {
		response.ErrorWithData(c, http.StatusNotFound, codeUnknownBadge, "badge not in roster", addAssociatePrompt(barcode))
		return
	}
	c.Redirect(http.StatusSeeOther, addAssociatePath+"?barcode="+url.QueryEscape(barcode))
}

func addAssociatePrompt(barcode string) dto.AddAssociatePrompt {
	return dto.AddAssociatePrompt{Barcode: barcode, Roles: model.RolesByCategory()}
}
