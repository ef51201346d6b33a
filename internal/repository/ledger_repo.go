package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"shift-checkin/internal/model"
)

// LedgerRepository 在岗快照存取。默认实现什么也不存，重启后看板清空。
type LedgerRepository interface {
	Save(ctx context.Context, entries []model.CheckinEntry) error
	Load(ctx context.Context) ([]model.CheckinEntry, error)
}

// SnapshotStore 快照的底层字节存储，由 pkg/redis.Client 实现
type SnapshotStore interface {
	SaveLedgerSnapshot(ctx context.Context, payload []byte) error
	LoadLedgerSnapshot(ctx context.Context) ([]byte, error)
}

type nopLedgerRepo struct{}

// NewNopLedgerRepo 不持久化的在岗快照实现
func NewNopLedgerRepo() LedgerRepository { return nopLedgerRepo{} }

func (nopLedgerRepo) Save(context.Context, []model.CheckinEntry) error { return nil }

func (nopLedgerRepo) Load(context.Context) ([]model.CheckinEntry, error) { return nil, nil }

type snapshotLedgerRepo struct {
	store SnapshotStore
}

// NewSnapshotLedgerRepo 基于 SnapshotStore（Redis）的在岗快照实现
func NewSnapshotLedgerRepo(store SnapshotStore) LedgerRepository {
	return &snapshotLedgerRepo{store: store}
}

func (r *snapshotLedgerRepo) Save(ctx context.Context, entries []model.CheckinEntry) error {
	if entries == nil {
		entries = []model.CheckinEntry{}
	}
	payload, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("序列化在岗快照失败: %w", err)
	}
	return r.store.SaveLedgerSnapshot(ctx, payload)
}

func (r *snapshotLedgerRepo) Load(ctx context.Context) ([]model.CheckinEntry, error) {
	payload, err := r.store.LoadLedgerSnapshot(ctx)
	if err != nil {
		return nil, err
	}
	if len(payload) == 0 {
		return nil, nil
	}
	var entries []model.CheckinEntry
	if err := json.Unmarshal(payload, &entries); err != nil {
		return nil, fmt.Errorf("解析在岗快照失败: %w", err)
	}
	return entries, nil
}
