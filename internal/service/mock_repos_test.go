package service

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"shift-checkin/internal/model"
	"shift-checkin/internal/repository"
)

var errMockStore = errors.New("mock store failure")

// ── Mock RosterRepository ──

type mockRosterRepo struct {
	associates []model.Associate
	appendErr  error
}

func (m *mockRosterRepo) List(_ context.Context) ([]model.Associate, error) {
	return append([]model.Associate(nil), m.associates...), nil
}

func (m *mockRosterRepo) Append(_ context.Context, a *model.Associate) error {
	if m.appendErr != nil {
		return m.appendErr
	}
	m.associates = append(m.associates, *a)
	return nil
}

// ── Mock AssignmentRepository ──

type mockAssignmentRepo struct {
	assignments map[string]string
	setErr      error
	setCalls    int
}

func newMockAssignmentRepo() *mockAssignmentRepo {
	return &mockAssignmentRepo{assignments: make(map[string]string)}
}

func (m *mockAssignmentRepo) GetAll(_ context.Context) (map[string]string, error) {
	out := make(map[string]string, len(m.assignments))
	for k, v := range m.assignments {
		out[k] = v
	}
	return out, nil
}

func (m *mockAssignmentRepo) ReplaceAll(_ context.Context, assignments map[string]string) error {
	m.assignments = make(map[string]string, len(assignments))
	for k, v := range assignments {
		m.assignments[k] = v
	}
	return nil
}

func (m *mockAssignmentRepo) Set(_ context.Context, badge, role string) error {
	m.setCalls++
	if m.setErr != nil {
		return m.setErr
	}
	m.assignments[badge] = role
	return nil
}

// ── Mock LedgerRepository ──

type mockLedgerRepo struct {
	saved   []model.CheckinEntry
	saves   int
	loadErr error
}

func (m *mockLedgerRepo) Save(_ context.Context, entries []model.CheckinEntry) error {
	m.saves++
	m.saved = append([]model.CheckinEntry(nil), entries...)
	return nil
}

func (m *mockLedgerRepo) Load(_ context.Context) ([]model.CheckinEntry, error) {
	return m.saved, m.loadErr
}

// ── 测试辅助 ──

type testEnv struct {
	repo        *repository.Repository
	roster      *mockRosterRepo
	assignments *mockAssignmentRepo
	ledger      *mockLedgerRepo
	settings    SettingsService
	rosterSvc   RosterService
	logger      *zap.Logger
}

func newTestEnv(strict bool) *testEnv {
	env := &testEnv{
		roster: &mockRosterRepo{associates: []model.Associate{
			{Barcode: "100", FirstName: "Dana", Login: "danak"},
			{Barcode: "200", FirstName: "Lee", Login: "leej"},
			{Barcode: "300", FirstName: "Sam", Login: "samp"},
			{Barcode: "400", FirstName: "Ari", Login: "arim"},
		}},
		assignments: newMockAssignmentRepo(),
		ledger:      &mockLedgerRepo{},
		logger:      zap.NewNop(),
	}
	env.repo = &repository.Repository{
		Roster:     env.roster,
		Assignment: env.assignments,
		Ledger:     env.ledger,
	}
	env.settings = NewSettingsService(DefaultCapacity, env.logger)
	env.rosterSvc = NewRosterService(env.repo, RolePolicy{Strict: strict}, env.logger)
	return env
}

func (e *testEnv) checkin(mode PAFlagMode, strict bool) CheckinService {
	return NewCheckinService(e.repo, e.rosterSvc, e.settings, CheckinOptions{
		PAFlagMode: mode,
		Roles:      RolePolicy{Strict: strict},
	}, e.logger)
}
