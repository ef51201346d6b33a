package service

import (
	"strings"
	"unicode/utf8"

	"shift-checkin/internal/model"
)

// ErrInvalidRole 角色名不合法（严格模式下不在角色表内，或为空）
var ErrInvalidRole = model.ErrInvalidRole

// MaxRoleLen 角色名最大长度，与 role_assignments.role 列宽一致
const MaxRoleLen = 64

// RolePolicy 角色名校验策略
type RolePolicy struct {
	Strict bool
}

// Normalize 去除首尾空白并校验。
// 严格模式只接受角色表内的名字；宽松模式接受不超过 MaxRoleLen 个字符的非空字符串。
func (p RolePolicy) Normalize(s string) (model.Role, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", ErrInvalidRole
	}
	if !p.Strict {
		if utf8.RuneCountInString(s) > MaxRoleLen {
			return "", ErrInvalidRole
		}
		return model.Role(s), nil
	}
	return model.ParseRole(s)
}
