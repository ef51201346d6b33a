package model

// RoleAssignment 本班次预分配角色 — 对应 assigned_roles.json / role_assignments 表
type RoleAssignment struct {
	Badge string `gorm:"type:varchar(64);primaryKey" json:"badge"`
	Role  string `gorm:"type:varchar(64);not null"   json:"role"`
	BaseModel
}

// TableName 指定表名
func (RoleAssignment) TableName() string { return "role_assignments" }
