package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

// ErrExportGenerateFail 生成 Excel 失败
var ErrExportGenerateFail = errors.New("failed to generate board export")

// ExportService 导出业务接口
type ExportService interface {
	// ExportBoard 导出当前看板为 Excel，返回内容与建议文件名
	ExportBoard(ctx context.Context) (*bytes.Buffer, string, error)
}

type exportService struct {
	checkin CheckinService
	logger  *zap.Logger
	now     func() time.Time
}

// NewExportService 创建 ExportService 实例
func NewExportService(checkin CheckinService, logger *zap.Logger) ExportService {
	return &exportService{checkin: checkin, logger: logger, now: time.Now}
}

const boardSheet = "Board"

// ExportBoard 输出格式：
//   - 明细: Badge | Name | Role | Category | Checked In
//   - 明细下方空一行，汇总当前人数与目标
func (s *exportService) ExportBoard(ctx context.Context) (*bytes.Buffer, string, error) {
	board, err := s.checkin.Dashboard(ctx)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(boardSheet)
	if err != nil {
		s.logger.Error("创建工作表失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	rows := [][]interface{}{{"Badge", "Name", "Role", "Category", "Checked In"}}
	for _, e := range board.Entries {
		rows = append(rows, []interface{}{e.Badge, e.Name, string(e.Role), string(e.Category), e.CheckedInAt})
	}
	rows = append(rows,
		[]interface{}{},
		[]interface{}{"Current Check-ins", board.Counters.CurrentCheckins, "Required Headcount", board.Targets.RequiredHeadcount},
		[]interface{}{"Trans Workers", board.Counters.TransWorkers, "Required Trans", board.Targets.RequiredTrans},
		[]interface{}{"Total Scanned", board.Counters.Total, "First PA", board.Counters.FirstPACheckedIn},
	)

	for i, row := range rows {
		if len(row) == 0 {
			continue
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(boardSheet, cell, &row); err != nil {
			s.logger.Error("写入 Excel 行失败", zap.Int("row", i+1), zap.Error(err))
			return nil, "", ErrExportGenerateFail
		}
	}

	headerStyle, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err == nil {
		_ = f.SetCellStyle(boardSheet, "A1", "E1", headerStyle)
	}
	_ = f.SetColWidth(boardSheet, "A", "E", 20)

	buf, err := f.WriteToBuffer()
	if err != nil {
		s.logger.Error("生成 Excel 失败", zap.Error(err))
		return nil, "", ErrExportGenerateFail
	}

	filename := fmt.Sprintf("checkin-board-%s.xlsx", s.now().Format("20060102-1504"))
	return buf, filename, nil
}
