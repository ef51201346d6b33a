package repository

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"go.uber.org/zap"

	"shift-checkin/internal/model"
)

// fileAssociate names.json 的行格式。旧文件里 barcode 可能是数字。
type fileAssociate struct {
	Barcode   flexString `json:"barcode"`
	FirstName string     `json:"first_name"`
	Login     string     `json:"login"`
}

type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	var str string
	if err := json.Unmarshal(b, &str); err == nil {
		*s = flexString(str)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(strings.TrimSpace(n.String()))
	return nil
}

type rosterFileRepo struct {
	mu     sync.Mutex
	path   string
	rows   []fileAssociate
	logger *zap.Logger
}

// NewRosterFileRepo 创建 JSON 文件花名册实现，启动时加载一次
func NewRosterFileRepo(path string, logger *zap.Logger) RosterRepository {
	r := &rosterFileRepo{path: path, logger: logger}
	if !readJSONFile(path, &r.rows, logger) {
		r.rows = nil
	}
	logger.Info("花名册已加载", zap.String("path", path), zap.Int("count", len(r.rows)))
	return r
}

func (r *rosterFileRepo) List(_ context.Context) ([]model.Associate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]model.Associate, 0, len(r.rows))
	for _, row := range r.rows {
		out = append(out, model.Associate{
			Barcode:   string(row.Barcode),
			FirstName: row.FirstName,
			Login:     row.Login,
		})
	}
	return out, nil
}

func (r *rosterFileRepo) Append(_ context.Context, a *model.Associate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rows := append(r.rows[:len(r.rows):len(r.rows)], fileAssociate{
		Barcode:   flexString(a.Barcode),
		FirstName: a.FirstName,
		Login:     a.Login,
	})
	if err := writeJSONFile(r.path, rows); err != nil {
		return err
	}
	r.rows = rows
	return nil
}
