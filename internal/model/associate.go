package model

import "fmt"

// Associate 花名册条目 — 对应 names.json / associates 表
type Associate struct {
	ID        uint   `gorm:"primaryKey;autoIncrement"     json:"-"`
	Barcode   string `gorm:"type:varchar(64);not null;index" json:"barcode"`
	FirstName string `gorm:"type:varchar(100);not null"   json:"first_name"`
	Login     string `gorm:"type:varchar(64);not null"    json:"login"`
	BaseModel `json:"-"`
}

// TableName 指定表名
func (Associate) TableName() string { return "associates" }

// DisplayName 看板展示名: "First (login)"
func (a Associate) DisplayName() string {
	return fmt.Sprintf("%s (%s)", a.FirstName, a.Login)
}
