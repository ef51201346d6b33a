package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/model"
	"shift-checkin/internal/repository"
)

// ErrUnknownBadge badge 不在花名册，应转入新增人员流程
var ErrUnknownBadge = errors.New("badge not in roster")

// CheckinService 签到业务接口，持有本班次的在岗台账
type CheckinService interface {
	CheckIn(ctx context.Context, badge string) (*dto.CheckinResponse, error)
	// Remove 不在岗时返回 false 且无副作用
	Remove(ctx context.Context, badge string) (bool, error)
	// Reassign 不在岗时 Changed=false 且无副作用
	Reassign(ctx context.Context, badge, role string) (*dto.ReassignResponse, error)
	Reset(ctx context.Context) error
	Dashboard(ctx context.Context) (*dto.DashboardResponse, error)
	// Restore 启动时从快照恢复台账
	Restore(ctx context.Context) error
}

type checkinService struct {
	mu       sync.Mutex
	ledger   *Ledger
	repo     *repository.Repository
	roster   RosterService
	settings SettingsService
	roles    RolePolicy
	logger   *zap.Logger
}

// CheckinOptions 签到模块开关
type CheckinOptions struct {
	PAFlagMode PAFlagMode
	Roles      RolePolicy
}

// NewCheckinService 创建 CheckinService 实例
func NewCheckinService(repo *repository.Repository, roster RosterService, settings SettingsService, opts CheckinOptions, logger *zap.Logger) CheckinService {
	return &checkinService{
		ledger:   NewLedger(opts.PAFlagMode),
		repo:     repo,
		roster:   roster,
		settings: settings,
		roles:    opts.Roles,
		logger:   logger,
	}
}

// ────────────────────── CheckIn ──────────────────────

func (s *checkinService) CheckIn(ctx context.Context, badge string) (*dto.CheckinResponse, error) {
	badge = strings.TrimSpace(badge)
	if badge == "" {
		return nil, ErrUnknownBadge
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.ledger.Get(badge); ok {
		return nil, ErrDuplicateCheckin
	}

	associate, ok, err := s.roster.Lookup(ctx, badge)
	if err != nil {
		return nil, err
	}
	if !ok {
		s.logger.Info("未登记的 badge", zap.String("badge", badge))
		return nil, ErrUnknownBadge
	}

	assignments, err := s.repo.Assignment.GetAll(ctx)
	if err != nil {
		s.logger.Error("读取角色分配失败", zap.Error(err))
		return nil, err
	}
	role := model.Role(assignments[badge])
	if role == "" {
		role = model.RoleUnassigned
	}

	entry, err := s.ledger.CheckIn(badge, role)
	if err != nil {
		return nil, err
	}
	s.saveSnapshot(ctx)

	s.logger.Info("签到", zap.String("badge", badge), zap.String("role", string(entry.Role)))
	return &dto.CheckinResponse{Badge: badge, Name: associate.DisplayName(), Role: entry.Role}, nil
}

// ────────────────────── Remove ──────────────────────

func (s *checkinService) Remove(ctx context.Context, badge string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.ledger.Remove(strings.TrimSpace(badge))
	if !ok {
		return false, nil
	}
	s.saveSnapshot(ctx)

	s.logger.Info("移除在岗", zap.String("badge", e.Badge), zap.String("role", string(e.Role)))
	return true, nil
}

// ────────────────────── Reassign ──────────────────────

// Reassign 不在岗时为 no-op；在岗时先持久化分配再改台账，持久化失败时台账不变
func (s *checkinService) Reassign(ctx context.Context, badge, raw string) (*dto.ReassignResponse, error) {
	badge = strings.TrimSpace(badge)

	s.mu.Lock()
	defer s.mu.Unlock()

	// 不在岗时直接返回，不校验角色名
	if _, ok := s.ledger.Get(badge); !ok {
		return &dto.ReassignResponse{Badge: badge, NewRole: model.Role(strings.TrimSpace(raw))}, nil
	}

	role, err := s.roles.Normalize(raw)
	if err != nil {
		return nil, err
	}

	if err := s.repo.Assignment.Set(ctx, badge, string(role)); err != nil {
		s.logger.Error("保存角色分配失败", zap.String("badge", badge), zap.Error(err))
		return nil, err
	}

	old, _ := s.ledger.Reassign(badge, role)
	s.saveSnapshot(ctx)

	s.logger.Info("调岗", zap.String("badge", badge), zap.String("from", string(old)), zap.String("to", string(role)))
	return &dto.ReassignResponse{Badge: badge, OldRole: old, NewRole: role, Changed: true}, nil
}

// ────────────────────── Reset ──────────────────────

func (s *checkinService) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.ledger.Len()
	s.ledger.Reset()
	s.saveSnapshot(ctx)

	s.logger.Info("台账已清空", zap.Int("removed", n))
	return nil
}

// ────────────────────── Dashboard ──────────────────────

func (s *checkinService) Dashboard(ctx context.Context) (*dto.DashboardResponse, error) {
	dir, err := s.roster.Directory(ctx)
	if err != nil {
		return nil, err
	}
	assignments, err := s.repo.Assignment.GetAll(ctx)
	if err != nil {
		s.logger.Error("读取角色分配失败", zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	entries := s.ledger.Entries()
	counters := s.ledger.Counters()
	s.mu.Unlock()

	rows := make([]dto.CheckinEntryResponse, 0, len(entries))
	for _, e := range entries {
		row := dto.CheckinEntryResponse{
			Badge:       e.Badge,
			Role:        e.Role,
			CheckedInAt: e.CheckedInAt.Format(time.RFC3339),
		}
		if a, ok := dir[e.Badge]; ok {
			row.Name = a.DisplayName()
		}
		if spec, ok := e.Role.Spec(); ok {
			row.Category = spec.Category
		}
		rows = append(rows, row)
	}

	roleCounts := make(map[string]int, len(counters.RoleCounts))
	for r, n := range counters.RoleCounts {
		roleCounts[string(r)] = n
	}

	target := s.settings.Target()
	return &dto.DashboardResponse{
		Entries: rows,
		Counters: dto.CountersResponse{
			Total:            counters.Total,
			CurrentCheckins:  counters.CurrentCheckins,
			TransWorkers:     counters.TransLike,
			FirstPACheckedIn: counters.FirstPA,
			RoleCounts:       roleCounts,
		},
		Targets:     *toSettingsResponse(target),
		OverTarget:  target.Configured && counters.CurrentCheckins > target.RequiredHeadcount,
		Assignments: assignments,
		Roles:       model.RolesByCategory(),
	}, nil
}

// ────────────────────── Snapshot ──────────────────────

func (s *checkinService) Restore(ctx context.Context) error {
	entries, err := s.repo.Ledger.Load(ctx)
	if err != nil {
		s.logger.Warn("读取在岗快照失败，从空台账开始", zap.Error(err))
		return err
	}

	s.mu.Lock()
	s.ledger.Restore(entries)
	n := s.ledger.Len()
	s.mu.Unlock()

	if n > 0 {
		s.logger.Info("已从快照恢复在岗台账", zap.Int("count", n))
	}
	return nil
}

// saveSnapshot 调用方持有 s.mu。快照失败只记录日志，不影响签到。
func (s *checkinService) saveSnapshot(ctx context.Context) {
	if err := s.repo.Ledger.Save(ctx, s.ledger.Entries()); err != nil {
		s.logger.Warn("保存在岗快照失败", zap.Error(err))
	}
}
