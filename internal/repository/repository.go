package repository

import (
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repository 所有 Repository 的聚合入口
type Repository struct {
	Roster     RosterRepository
	Assignment AssignmentRepository
	Ledger     LedgerRepository
}

// NewRepository 创建 Postgres 存储的 Repository 聚合
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{
		Roster:     NewRosterRepo(db),
		Assignment: NewAssignmentRepo(db),
		Ledger:     NewNopLedgerRepo(),
	}
}

// NewFileRepository 创建 JSON 文件存储的 Repository 聚合
func NewFileRepository(rosterPath, assignmentPath string, logger *zap.Logger) *Repository {
	return &Repository{
		Roster:     NewRosterFileRepo(rosterPath, logger),
		Assignment: NewAssignmentFileRepo(assignmentPath, logger),
		Ledger:     NewNopLedgerRepo(),
	}
}
