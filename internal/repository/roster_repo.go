package repository

import (
	"context"

	"gorm.io/gorm"

	"shift-checkin/internal/model"
)

// RosterRepository 花名册数据访问接口。
// List 按追加顺序返回，允许同一 barcode 出现多次。
type RosterRepository interface {
	List(ctx context.Context) ([]model.Associate, error)
	Append(ctx context.Context, a *model.Associate) error
}

type rosterRepo struct {
	db *gorm.DB
}

// NewRosterRepo 创建 Postgres 花名册实现
func NewRosterRepo(db *gorm.DB) RosterRepository {
	return &rosterRepo{db: db}
}

func (r *rosterRepo) List(ctx context.Context) ([]model.Associate, error) {
	var associates []model.Associate
	err := r.db.WithContext(ctx).Order("id ASC").Find(&associates).Error
	return associates, err
}

func (r *rosterRepo) Append(ctx context.Context, a *model.Associate) error {
	return r.db.WithContext(ctx).Create(a).Error
}
