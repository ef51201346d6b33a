package service

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"shift-checkin/internal/model"
)

// ErrDuplicateCheckin badge 已在岗
var ErrDuplicateCheckin = errors.New("badge already scanned")

// PAFlagMode 决定 first-PA 标记的含义
type PAFlagMode string

const (
	// PAFlagAny 只要有 PA 在岗即为 true
	PAFlagAny PAFlagMode = "any"
	// PAFlagFirst 记住第一个到岗的 PA，仅当这个人离开 PA 岗时清除
	PAFlagFirst PAFlagMode = "first"
)

// Counters 由在岗记录计算出的计数
type Counters struct {
	Total           int
	CurrentCheckins int
	TransLike       int
	FirstPA         bool
	RoleCounts      map[model.Role]int
}

// Ledger 在岗台账。
// 计数不做增量维护，每次从 entries 重新计算；PAFlagFirst 模式下额外记录持有标记的 badge。
// 非并发安全，由 CheckinService 加锁。
type Ledger struct {
	mode    PAFlagMode
	entries map[string]model.CheckinEntry
	seq     uint64
	firstPA string
	now     func() time.Time
}

// NewLedger 创建空台账
func NewLedger(mode PAFlagMode) *Ledger {
	if mode != PAFlagFirst {
		mode = PAFlagAny
	}
	return &Ledger{
		mode:    mode,
		entries: make(map[string]model.CheckinEntry),
		now:     time.Now,
	}
}

// Mode 当前 PA 标记模式
func (l *Ledger) Mode() PAFlagMode { return l.mode }

// Len 在岗人数
func (l *Ledger) Len() int { return len(l.entries) }

// Get 查询在岗记录
func (l *Ledger) Get(badge string) (model.CheckinEntry, bool) {
	e, ok := l.entries[badge]
	return e, ok
}

// CheckIn 登记到岗
func (l *Ledger) CheckIn(badge string, role model.Role) (model.CheckinEntry, error) {
	if _, ok := l.entries[badge]; ok {
		return model.CheckinEntry{}, ErrDuplicateCheckin
	}
	if role == "" {
		role = model.RoleUnassigned
	}

	l.seq++
	e := model.CheckinEntry{Badge: badge, Role: role, CheckedInAt: l.now(), Seq: l.seq}
	l.entries[badge] = e
	l.arrivePA(badge, "", role)
	return e, nil
}

// Remove 移除在岗记录，不在岗时返回 false
func (l *Ledger) Remove(badge string) (model.CheckinEntry, bool) {
	e, ok := l.entries[badge]
	if !ok {
		return model.CheckinEntry{}, false
	}
	delete(l.entries, badge)
	if l.firstPA == badge {
		l.firstPA = ""
	}
	return e, true
}

// Reassign 调岗，不在岗时返回 false
func (l *Ledger) Reassign(badge string, role model.Role) (old model.Role, ok bool) {
	e, ok := l.entries[badge]
	if !ok {
		return "", false
	}
	old = e.Role
	e.Role = role
	l.entries[badge] = e

	if l.firstPA == badge && !role.IsPA() {
		l.firstPA = ""
	}
	l.arrivePA(badge, old, role)
	return old, true
}

// Reset 清空台账
func (l *Ledger) Reset() {
	l.entries = make(map[string]model.CheckinEntry)
	l.firstPA = ""
}

// arrivePA 非 PA → PA 的到达才可能成为 first-PA
func (l *Ledger) arrivePA(badge string, from, to model.Role) {
	if l.mode != PAFlagFirst || !to.IsPA() || from.IsPA() {
		return
	}
	if l.firstPA == "" {
		l.firstPA = badge
	}
}

// Entries 按到岗顺序返回在岗记录
func (l *Ledger) Entries() []model.CheckinEntry {
	out := make([]model.CheckinEntry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Seq < out[j].Seq })
	return out
}

// Restore 用快照重建台账。PAFlagFirst 模式下最早到岗的 PA 持有标记。
func (l *Ledger) Restore(entries []model.CheckinEntry) {
	l.Reset()
	l.seq = 0
	sorted := append([]model.CheckinEntry(nil), entries...)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Seq < sorted[j].Seq })

	for _, e := range sorted {
		if _, dup := l.entries[e.Badge]; dup {
			continue
		}
		if e.Seq > l.seq {
			l.seq = e.Seq
		}
		l.entries[e.Badge] = e
		l.arrivePA(e.Badge, "", e.Role)
	}
}

// FirstPA first-PA 标记
func (l *Ledger) FirstPA() bool {
	if l.mode == PAFlagFirst {
		return l.firstPA != ""
	}
	for _, e := range l.entries {
		if e.Role.IsPA() {
			return true
		}
	}
	return false
}

// TransLikeCount Pit / Trans / Robotics Operator 在岗人数
func (l *Ledger) TransLikeCount() int {
	n := 0
	for _, e := range l.entries {
		if e.Role.IsTransLike() {
			n++
		}
	}
	return n
}

// Counters 汇总计数。CurrentCheckins 为非 trans 人数，有 PA 在岗时扣除一个 PA 位。
func (l *Ledger) Counters() Counters {
	c := Counters{
		Total:      len(l.entries),
		FirstPA:    l.FirstPA(),
		RoleCounts: make(map[model.Role]int),
	}
	hasPA := false
	for _, e := range l.entries {
		c.RoleCounts[e.Role]++
		if e.Role.IsTransLike() {
			c.TransLike++
			continue
		}
		c.CurrentCheckins++
		if e.Role.IsPA() {
			hasPA = true
		}
	}
	if hasPA {
		c.CurrentCheckins--
	}
	return c
}

// Verify 校验台账内部一致性
func (l *Ledger) Verify() error {
	seen := make(map[uint64]string, len(l.entries))
	for badge, e := range l.entries {
		if e.Badge != badge {
			return fmt.Errorf("entry key %q holds badge %q", badge, e.Badge)
		}
		if other, dup := seen[e.Seq]; dup {
			return fmt.Errorf("badges %q and %q share seq %d", other, badge, e.Seq)
		}
		seen[e.Seq] = badge
	}
	if l.firstPA != "" {
		e, ok := l.entries[l.firstPA]
		if !ok || !e.Role.IsPA() {
			return fmt.Errorf("first-PA holder %q is not a checked-in PA", l.firstPA)
		}
	}
	return nil
}
