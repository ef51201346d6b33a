package repository

import (
	"context"
	"sync"

	"go.uber.org/zap"
)

type assignmentFileRepo struct {
	mu          sync.Mutex
	path        string
	assignments map[string]string
}

// NewAssignmentFileRepo 创建 JSON 文件角色分配实现，启动时加载一次
func NewAssignmentFileRepo(path string, logger *zap.Logger) AssignmentRepository {
	r := &assignmentFileRepo{path: path}
	if !readJSONFile(path, &r.assignments, logger) || r.assignments == nil {
		r.assignments = map[string]string{}
	}
	logger.Info("角色分配已加载", zap.String("path", path), zap.Int("count", len(r.assignments)))
	return r
}

func (r *assignmentFileRepo) GetAll(_ context.Context) (map[string]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return copyAssignments(r.assignments), nil
}

func (r *assignmentFileRepo) ReplaceAll(_ context.Context, assignments map[string]string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := copyAssignments(assignments)
	if err := writeJSONFile(r.path, next); err != nil {
		return err
	}
	r.assignments = next
	return nil
}

func (r *assignmentFileRepo) Set(_ context.Context, badge, role string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := copyAssignments(r.assignments)
	next[badge] = role
	if err := writeJSONFile(r.path, next); err != nil {
		return err
	}
	r.assignments = next
	return nil
}

func copyAssignments(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
