package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"

	"shift-checkin/internal/dto"
	"shift-checkin/internal/model"
	"shift-checkin/internal/repository"
)

// ── 花名册模块业务错误 ──

var (
	ErrInvalidAssociate  = errors.New("barcode, first name and login are required")
	ErrImportNoData      = errors.New("import file has no data rows")
	ErrImportBadHeader   = errors.New("import file header must contain barcode, first_name, login")
	ErrImportTooManyRows = errors.New("import file has too many rows")
)

const maxImportRows = 2000

// RosterService 花名册业务接口
type RosterService interface {
	List(ctx context.Context) ([]dto.AssociateResponse, error)
	// Lookup 同一 barcode 多次登记时以最后一条为准
	Lookup(ctx context.Context, barcode string) (model.Associate, bool, error)
	Directory(ctx context.Context) (map[string]model.Associate, error)
	Add(ctx context.Context, req *dto.AddAssociateRequest) (*dto.AssociateResponse, error)
	ParseImportFile(reader io.Reader) ([]ImportAssociateRow, error)
	Import(ctx context.Context, rows []ImportAssociateRow) (*dto.ImportAssociateResponse, error)
}

// ImportAssociateRow Excel 导入解析后的单行数据
type ImportAssociateRow struct {
	Row       int
	Barcode   string
	FirstName string
	Login     string
	Role      string
}

type rosterService struct {
	repo   *repository.Repository
	roles  RolePolicy
	logger *zap.Logger
}

// NewRosterService 创建 RosterService 实例
func NewRosterService(repo *repository.Repository, roles RolePolicy, logger *zap.Logger) RosterService {
	return &rosterService{repo: repo, roles: roles, logger: logger}
}

// ────────────────────── List ──────────────────────

func (s *rosterService) List(ctx context.Context) ([]dto.AssociateResponse, error) {
	associates, err := s.repo.Roster.List(ctx)
	if err != nil {
		s.logger.Error("读取花名册失败", zap.Error(err))
		return nil, err
	}
	assignments, err := s.repo.Assignment.GetAll(ctx)
	if err != nil {
		s.logger.Error("读取角色分配失败", zap.Error(err))
		return nil, err
	}

	result := make([]dto.AssociateResponse, 0, len(associates))
	for _, a := range associates {
		result = append(result, toAssociateResponse(a, assignments[a.Barcode]))
	}
	return result, nil
}

// ────────────────────── Lookup ──────────────────────

func (s *rosterService) Directory(ctx context.Context) (map[string]model.Associate, error) {
	associates, err := s.repo.Roster.List(ctx)
	if err != nil {
		s.logger.Error("读取花名册失败", zap.Error(err))
		return nil, err
	}
	dir := make(map[string]model.Associate, len(associates))
	for _, a := range associates {
		dir[a.Barcode] = a
	}
	return dir, nil
}

func (s *rosterService) Lookup(ctx context.Context, barcode string) (model.Associate, bool, error) {
	dir, err := s.Directory(ctx)
	if err != nil {
		return model.Associate{}, false, err
	}
	a, ok := dir[barcode]
	return a, ok, nil
}

// ────────────────────── Add ──────────────────────

// Add 追加花名册并写入默认角色；AssignedRole 为空时不写分配
func (s *rosterService) Add(ctx context.Context, req *dto.AddAssociateRequest) (*dto.AssociateResponse, error) {
	a := model.Associate{
		Barcode:   strings.TrimSpace(req.Barcode),
		FirstName: strings.TrimSpace(req.FirstName),
		Login:     strings.TrimSpace(req.Login),
	}
	if a.Barcode == "" || a.FirstName == "" || a.Login == "" {
		return nil, ErrInvalidAssociate
	}

	var role model.Role
	if strings.TrimSpace(req.AssignedRole) != "" {
		r, err := s.roles.Normalize(req.AssignedRole)
		if err != nil {
			return nil, err
		}
		role = r
	}

	if err := s.repo.Roster.Append(ctx, &a); err != nil {
		s.logger.Error("追加花名册失败", zap.String("barcode", a.Barcode), zap.Error(err))
		return nil, err
	}
	if role != "" {
		if err := s.repo.Assignment.Set(ctx, a.Barcode, string(role)); err != nil {
			s.logger.Error("写入默认角色失败", zap.String("barcode", a.Barcode), zap.Error(err))
			return nil, err
		}
	}

	s.logger.Info("新增人员", zap.String("barcode", a.Barcode), zap.String("login", a.Login), zap.String("role", string(role)))
	resp := toAssociateResponse(a, string(role))
	return &resp, nil
}

// ────────────────────── Import ──────────────────────

func (s *rosterService) ParseImportFile(reader io.Reader) ([]ImportAssociateRow, error) {
	f, err := excelize.OpenReader(reader)
	if err != nil {
		return nil, fmt.Errorf("无法解析Excel文件: %w", err)
	}
	defer f.Close()

	sheetName := f.GetSheetName(0)
	excelRows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, fmt.Errorf("读取工作表失败: %w", err)
	}
	if len(excelRows) < 2 {
		return nil, ErrImportNoData
	}

	colIndex := parseRosterHeader(excelRows[0])
	if colIndex["barcode"] < 0 || colIndex["first_name"] < 0 || colIndex["login"] < 0 {
		return nil, ErrImportBadHeader
	}

	cell := func(row []string, key string) string {
		if idx := colIndex[key]; idx >= 0 && idx < len(row) {
			return strings.TrimSpace(row[idx])
		}
		return ""
	}

	var rows []ImportAssociateRow
	for i := 1; i < len(excelRows); i++ {
		item := ImportAssociateRow{
			Row:       i + 1,
			Barcode:   cell(excelRows[i], "barcode"),
			FirstName: cell(excelRows[i], "first_name"),
			Login:     cell(excelRows[i], "login"),
			Role:      cell(excelRows[i], "role"),
		}
		if item.Barcode == "" && item.FirstName == "" && item.Login == "" && item.Role == "" {
			continue
		}
		rows = append(rows, item)
	}

	if len(rows) == 0 {
		return nil, ErrImportNoData
	}
	if len(rows) > maxImportRows {
		return nil, ErrImportTooManyRows
	}
	return rows, nil
}

// parseRosterHeader 表头 → 列索引，缺失列为 -1
func parseRosterHeader(header []string) map[string]int {
	idx := map[string]int{"barcode": -1, "first_name": -1, "login": -1, "role": -1}
	for i, h := range header {
		switch strings.ToLower(strings.TrimSpace(h)) {
		case "barcode", "badge", "badge_id":
			idx["barcode"] = i
		case "first_name", "first name", "name":
			idx["first_name"] = i
		case "login":
			idx["login"] = i
		case "role", "assigned_role":
			idx["role"] = i
		}
	}
	return idx
}

// Import 逐行调用 Add，单行失败不影响其他行
func (s *rosterService) Import(ctx context.Context, rows []ImportAssociateRow) (*dto.ImportAssociateResponse, error) {
	result := &dto.ImportAssociateResponse{Failed: []dto.ImportRowError{}}
	for _, row := range rows {
		_, err := s.Add(ctx, &dto.AddAssociateRequest{
			Barcode:      row.Barcode,
			FirstName:    row.FirstName,
			Login:        row.Login,
			AssignedRole: row.Role,
		})
		switch {
		case err == nil:
			result.Created++
		case errors.Is(err, ErrInvalidAssociate), errors.Is(err, ErrInvalidRole):
			result.Failed = append(result.Failed, dto.ImportRowError{Row: row.Row, Barcode: row.Barcode, Reason: err.Error()})
		default:
			return nil, err
		}
	}

	s.logger.Info("花名册导入完成", zap.Int("created", result.Created), zap.Int("failed", len(result.Failed)))
	return result, nil
}

func toAssociateResponse(a model.Associate, role string) dto.AssociateResponse {
	return dto.AssociateResponse{
		Barcode:      a.Barcode,
		FirstName:    a.FirstName,
		Login:        a.Login,
		DisplayName:  a.DisplayName(),
		AssignedRole: role,
	}
}
