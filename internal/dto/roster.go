package dto

// ── 花名册模块 DTO ──

// AddAssociateRequest 新增人员请求
type AddAssociateRequest struct {
	Barcode      string `form:"barcode"       json:"barcode"       binding:"required,max=64"`
	FirstName    string `form:"first_name"    json:"first_name"    binding:"required,max=100"`
	Login        string `form:"login"         json:"login"         binding:"required,max=64"`
	AssignedRole string `form:"assigned_role" json:"assigned_role" binding:"omitempty,max=64"`
}

// AssociateResponse 花名册条目响应
type AssociateResponse struct {
	Barcode      string `json:"barcode"`
	FirstName    string `json:"first_name"`
	Login        string `json:"login"`
	DisplayName  string `json:"display_name"`
	AssignedRole string `json:"assigned_role,omitempty"`
}

// ImportRowError 导入失败的行
type ImportRowError struct {
	Row     int    `json:"row"`
	Barcode string `json:"barcode"`
	Reason  string `json:"reason"`
}

// ImportAssociateResponse Excel 导入结果
type ImportAssociateResponse struct {
	Created int              `json:"created"`
	Failed  []ImportRowError `json:"failed"`
}
