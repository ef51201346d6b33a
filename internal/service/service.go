package service

import (
	"go.uber.org/zap"

	"shift-checkin/config"
	"shift-checkin/internal/repository"
)

// Service 所有 Service 的聚合入口
type Service struct {
	Settings   SettingsService
	Roster     RosterService
	Assignment AssignmentService
	Checkin    CheckinService
	Export     ExportService
}

// NewService 创建 Service 聚合
func NewService(cfg *config.Config, repo *repository.Repository, logger *zap.Logger) *Service {
	roles := RolePolicy{Strict: cfg.Shift.StrictRoles}

	settings := NewSettingsService(Capacity{
		VolumePerAssociate: cfg.Shift.VolumePerAssociate,
		TransPerAssociate:  cfg.Shift.TransPerAssociate,
	}, logger.Named("settings"))
	roster := NewRosterService(repo, roles, logger.Named("roster"))
	checkin := NewCheckinService(repo, roster, settings, CheckinOptions{
		PAFlagMode: PAFlagMode(cfg.Shift.PAFlagMode),
		Roles:      roles,
	}, logger.Named("checkin"))

	return &Service{
		Settings: settings,
		Roster:   roster,
		Assignment: NewAssignmentService(repo, roster, settings, AssignmentOptions{
			Roles:               roles,
			EnforceHeadcountCap: cfg.Shift.EnforceHeadcountCap,
		}, logger.Named("assignment")),
		Checkin: checkin,
		Export:  NewExportService(checkin, logger.Named("export")),
	}
}
