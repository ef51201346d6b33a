package model

import (
	"errors"
	"fmt"
)

// ErrInvalidRole 角色名不在角色表内
var ErrInvalidRole = errors.New("invalid role")

// Role 岗位角色。角色表是封闭集合，见 Catalog。
type Role string

// Critical 岗位
const (
	RolePit              Role = "Pit"
	RoleCPT              Role = "CPT"
	RoleShipClerk        Role = "Ship Clerk"
	RoleDEA              Role = "DEA"
	RoleFluidPS          Role = "Fluid PS"
	RoleMainPS           Role = "Main PS"
	RoleRoboticsOperator Role = "Robotics Operator"
	RolePA               Role = "PA"
)

// Non-Critical 岗位
const (
	RoleFlats       Role = "Flats"
	RoleMI          Role = "MI"
	RoleWS          Role = "WS"
	RoleFluids      Role = "Fluids"
	RoleMainHighCap Role = "Main High Cap"
	RoleMidHighCap  Role = "Mid High Cap"
	RoleMidCap      Role = "Mid Cap"
	RoleTrans       Role = "Trans"
	RoleCarts       Role = "Carts"
)

// RoleUnassigned 签到时没有预分配角色的默认值，不可被选择
const RoleUnassigned Role = "Unassigned"

// Category 岗位分类
type Category string

const (
	CategoryCritical    Category = "Critical"
	CategoryNonCritical Category = "Non-Critical"
)

// RoleSpec 角色表条目。Capacity 为 0 表示不限人数。
type RoleSpec struct {
	Role     Role     `json:"role"`
	Category Category `json:"category"`
	Capacity int      `json:"capacity,omitempty"`
}

// Catalog 角色表，顺序即页面展示顺序
var Catalog = []RoleSpec{
	{Role: RolePit, Category: CategoryCritical},
	{Role: RoleCPT, Category: CategoryCritical},
	{Role: RoleShipClerk, Category: CategoryCritical},
	{Role: RoleDEA, Category: CategoryCritical},
	{Role: RoleFluidPS, Category: CategoryCritical},
	{Role: RoleMainPS, Category: CategoryCritical},
	{Role: RoleRoboticsOperator, Category: CategoryCritical},
	{Role: RolePA, Category: CategoryCritical, Capacity: 1},
	{Role: RoleFlats, Category: CategoryNonCritical},
	{Role: RoleMI, Category: CategoryNonCritical},
	{Role: RoleWS, Category: CategoryNonCritical},
	{Role: RoleFluids, Category: CategoryNonCritical},
	{Role: RoleMainHighCap, Category: CategoryNonCritical},
	{Role: RoleMidHighCap, Category: CategoryNonCritical},
	{Role: RoleMidCap, Category: CategoryNonCritical},
	{Role: RoleTrans, Category: CategoryNonCritical},
	{Role: RoleCarts, Category: CategoryNonCritical},
}

var catalogIndex = func() map[Role]RoleSpec {
	m := make(map[Role]RoleSpec, len(Catalog))
	for _, s := range Catalog {
		m[s.Role] = s
	}
	return m
}()

// ParseRole 将字符串解析为角色表内的角色
func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := catalogIndex[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}
	return r, nil
}

// Spec 返回角色表条目；不在表内时 ok=false
func (r Role) Spec() (RoleSpec, bool) {
	s, ok := catalogIndex[r]
	return s, ok
}

// IsTransLike Pit / Trans / Robotics Operator 单独计数，不计入主人数
func (r Role) IsTransLike() bool {
	return r == RolePit || r == RoleTrans || r == RoleRoboticsOperator
}

// IsPA 是否为 PA 岗
func (r Role) IsPA() bool { return r == RolePA }

// RolesByCategory 按分类分组，供分配页面使用
func RolesByCategory() map[Category][]Role {
	out := map[Category][]Role{}
	for _, s := range Catalog {
		out[s.Category] = append(out[s.Category], s.Role)
	}
	return out
}
