package handler

import "shift-checkin/internal/service"

// Handler 所有 Handler 的聚合入口
type Handler struct {
	Checkin    *CheckinHandler
	Settings   *SettingsHandler
	Roster     *RosterHandler
	Assignment *AssignmentHandler
	Export     *ExportHandler
}

// NewHandler 创建 Handler 聚合
func NewHandler(svc *service.Service) *Handler {
	return &Handler{
		Checkin:    NewCheckinHandler(svc.Checkin),
		Settings:   NewSettingsHandler(svc.Settings),
		Roster:     NewRosterHandler(svc.Roster),
		Assignment: NewAssignmentHandler(svc.Assignment),
		Export:     NewExportHandler(svc.Export),
	}
}
