package service

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/model"
	"shift-checkin/internal/repository"
)

// ErrHeadcountExceeded 已分配人数超过目标人数（仅 enforce_headcount_cap 开启时）
var ErrHeadcountExceeded = errors.New("assigned associates exceed required headcount")

// AssignmentService 角色预分配业务接口
type AssignmentService interface {
	Get(ctx context.Context) (*dto.AssignmentsResponse, error)
	AssignAll(ctx context.Context, assignments map[string]string) (*dto.AssignAllResponse, error)
	AssignOne(ctx context.Context, badge, role string) error
}

// AssignmentOptions 分配校验开关
type AssignmentOptions struct {
	Roles               RolePolicy
	EnforceHeadcountCap bool
}

type assignmentService struct {
	repo     *repository.Repository
	roster   RosterService
	settings SettingsService
	opts     AssignmentOptions
	logger   *zap.Logger
}

// NewAssignmentService 创建 AssignmentService 实例
func NewAssignmentService(repo *repository.Repository, roster RosterService, settings SettingsService, opts AssignmentOptions, logger *zap.Logger) AssignmentService {
	return &assignmentService{repo: repo, roster: roster, settings: settings, opts: opts, logger: logger}
}

// ────────────────────── Get ──────────────────────

func (s *assignmentService) Get(ctx context.Context) (*dto.AssignmentsResponse, error) {
	assignments, err := s.repo.Assignment.GetAll(ctx)
	if err != nil {
		s.logger.Error("读取角色分配失败", zap.Error(err))
		return nil, err
	}
	associates, err := s.roster.List(ctx)
	if err != nil {
		return nil, err
	}

	return &dto.AssignmentsResponse{
		Assignments:       assignments,
		Associates:        associates,
		Roles:             model.RolesByCategory(),
		RequiredHeadcount: s.settings.Target().RequiredHeadcount,
	}, nil
}

// ────────────────────── AssignAll ──────────────────────

// AssignAll 整体替换分配。值为空或 Unassigned 的 badge 视为不分配。
func (s *assignmentService) AssignAll(ctx context.Context, assignments map[string]string) (*dto.AssignAllResponse, error) {
	next := make(map[string]string, len(assignments))
	for badge, raw := range assignments {
		badge = strings.TrimSpace(badge)
		raw = strings.TrimSpace(raw)
		if badge == "" || raw == "" || model.Role(raw) == model.RoleUnassigned {
			continue
		}
		role, err := s.opts.Roles.Normalize(raw)
		if err != nil {
			return nil, err
		}
		next[badge] = string(role)
	}
	assigned := len(next)

	target := s.settings.Target()
	over := target.Configured && assigned > target.RequiredHeadcount
	if over && s.opts.EnforceHeadcountCap {
		return nil, ErrHeadcountExceeded
	}

	if err := s.repo.Assignment.ReplaceAll(ctx, next); err != nil {
		s.logger.Error("保存角色分配失败", zap.Error(err))
		return nil, err
	}

	if over {
		s.logger.Warn("分配人数超过目标",
			zap.Int("assigned", assigned),
			zap.Int("required_headcount", target.RequiredHeadcount),
		)
	}
	return &dto.AssignAllResponse{
		Assigned:          assigned,
		RequiredHeadcount: target.RequiredHeadcount,
		OverTarget:        over,
	}, nil
}

// ────────────────────── AssignOne ──────────────────────

func (s *assignmentService) AssignOne(ctx context.Context, badge, raw string) error {
	badge = strings.TrimSpace(badge)
	if badge == "" {
		return ErrInvalidAssociate
	}
	role, err := s.opts.Roles.Normalize(raw)
	if err != nil {
		return err
	}
	if err := s.repo.Assignment.Set(ctx, badge, string(role)); err != nil {
		s.logger.Error("保存角色分配失败", zap.String("badge", badge), zap.Error(err))
		return err
	}
	return nil
}
