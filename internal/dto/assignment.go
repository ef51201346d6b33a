package dto

import "shift-checkin/internal/model"

// ── 角色分配模块 DTO ──

// AssignRolesRequest 整体替换角色分配（JSON 调用；表单提交直接以 badge 为字段名）
type AssignRolesRequest struct {
	Assignments map[string]string `json:"assignments" binding:"required"`
}

// AssignRoleRequest 单个分配
type AssignRoleRequest struct {
	Barcode string `form:"barcode" json:"barcode" binding:"required,max=64"`
	Role    string `form:"role"    json:"role"    binding:"required,max=64"`
}

// AssignmentsResponse 分配页面数据
type AssignmentsResponse struct {
	Assignments       map[string]string               `json:"assignments"`
	Associates        []AssociateResponse             `json:"associates"`
	Roles             map[model.Category][]model.Role `json:"roles"`
	RequiredHeadcount int                             `json:"required_headcount"`
}

// AssignAllResponse 整体替换结果
type AssignAllResponse struct {
	Assigned          int  `json:"assigned"`
	RequiredHeadcount int  `json:"required_headcount"`
	OverTarget        bool `json:"over_target"`
}
