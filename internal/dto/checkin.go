package dto

import "shift-checkin/internal/model"

// ── 签到模块 DTO ──
// form 标签对应扫码页面的表单字段，json 标签用于脚本调用

// CheckinRequest 扫码签到请求
type CheckinRequest struct {
	BadgeID string `form:"badge_id" json:"badge_id" binding:"required,max=64"`
}

// RemoveRequest 移除在岗人员请求
type RemoveRequest struct {
	BadgeID string `form:"badge_id" json:"badge_id" binding:"required,max=64"`
}

// ReassignRoleRequest 在岗调岗请求
type ReassignRoleRequest struct {
	Barcode string `form:"barcode"  json:"barcode"  binding:"required,max=64"`
	NewRole string `form:"new_role" json:"new_role" binding:"required,max=64"`
}

// CheckinResponse 签到成功响应
type CheckinResponse struct {
	Badge string     `json:"badge"`
	Name  string     `json:"name"`
	Role  model.Role `json:"role"`
}

// ReassignResponse 调岗响应。Changed=false 表示该 badge 不在岗，未做任何修改
type ReassignResponse struct {
	Badge   string     `json:"badge"`
	OldRole model.Role `json:"old_role,omitempty"`
	NewRole model.Role `json:"new_role"`
	Changed bool       `json:"changed"`
}

// CheckinEntryResponse 看板上的一行
type CheckinEntryResponse struct {
	Badge       string         `json:"badge"`
	Name        string         `json:"name"`
	Role        model.Role     `json:"role"`
	Category    model.Category `json:"category,omitempty"`
	CheckedInAt string         `json:"checked_in_at"`
}

// CountersResponse 在岗计数，全部由在岗记录实时计算
type CountersResponse struct {
	Total            int            `json:"total"`
	CurrentCheckins  int            `json:"current_checkins"`
	TransWorkers     int            `json:"trans_workers"`
	FirstPACheckedIn bool           `json:"first_pa_checked_in"`
	RoleCounts       map[string]int `json:"role_counts"`
}

// DashboardResponse 首页看板
type DashboardResponse struct {
	Entries     []CheckinEntryResponse          `json:"entries"`
	Counters    CountersResponse                `json:"counters"`
	Targets     SettingsResponse                `json:"targets"`
	OverTarget  bool                            `json:"over_target"`
	Assignments map[string]string               `json:"assignments"`
	Roles       map[model.Category][]model.Role `json:"roles"`
}

// AddAssociatePrompt 扫到未登记 badge 时返回的新增人员表单数据
type AddAssociatePrompt struct {
	Barcode string                          `json:"barcode"`
	Roles   map[model.Category][]model.Role `json:"roles"`
}
