package model

import "time"

// CheckinEntry 在岗记录，仅存于内存（启用 Redis 时另存快照）
type CheckinEntry struct {
	Badge       string    `json:"badge"`
	Role        Role      `json:"role"`
	CheckedInAt time.Time `json:"checked_in_at"`
	Seq         uint64    `json:"seq"`
}
