package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"shift-checkin/internal/model"
)

// AssignmentRepository 角色预分配数据访问接口（badge → role）
type AssignmentRepository interface {
	GetAll(ctx context.Context) (map[string]string, error)
	ReplaceAll(ctx context.Context, assignments map[string]string) error
	Set(ctx context.Context, badge, role string) error
}

type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepo 创建 Postgres 角色分配实现
func NewAssignmentRepo(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

func (r *assignmentRepo) GetAll(ctx context.Context) (map[string]string, error) {
	var rows []model.RoleAssignment
	if err := r.db.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]string, len(rows))
	for _, row := range rows {
		out[row.Badge] = row.Role
	}
	return out, nil
}

func (r *assignmentRepo) ReplaceAll(ctx context.Context, assignments map[string]string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("1 = 1").Delete(&model.RoleAssignment{}).Error; err != nil {
			return err
		}
		if len(assignments) == 0 {
			return nil
		}
		rows := make([]model.RoleAssignment, 0, len(assignments))
		for badge, role := range assignments {
			rows = append(rows, model.RoleAssignment{Badge: badge, Role: role})
		}
		return tx.CreateInBatches(rows, 200).Error
	})
}

func (r *assignmentRepo) Set(ctx context.Context, badge, role string) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "badge"}},
			DoUpdates: clause.AssignmentColumns([]string{"role", "updated_at"}),
		}).
		Create(&model.RoleAssignment{Badge: badge, Role: role}).Error
}
