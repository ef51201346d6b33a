package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sync"

	"go.uber.org/zap"

	"shift-checkin/internal/dto"
)

// ── 人数配置模块业务错误 ──

var (
	ErrInvalidVolume    = errors.New("volume must be a non-negative number within range")
	ErrTransCapExceeded = errors.New("transitional employees exceed cap")
)

// TransCapError 过渡员工人数超过 trans 目标 × 单人容量
type TransCapError struct {
	Cap int
}

func (e *TransCapError) Error() string {
	return fmt.Sprintf("Transitional Employees cannot exceed %d", e.Cap)
}

func (e *TransCapError) Unwrap() error { return ErrTransCapExceeded }

// 单人容量常量
const (
	DefaultVolumePerAssociate = 550
	DefaultTransPerAssociate  = 1000
)

// Capacity 单人可处理量
type Capacity struct {
	VolumePerAssociate int
	TransPerAssociate  int
}

// DefaultCapacity 550 件/人，1000 过渡量/人
var DefaultCapacity = Capacity{
	VolumePerAssociate: DefaultVolumePerAssociate,
	TransPerAssociate:  DefaultTransPerAssociate,
}

// HeadcountInput 班前录入的预估量。TransTarget 为 0 时由 TransWorkers 推算。
type HeadcountInput struct {
	Volume          int
	SecondaryVolume int
	TransWorkers    int
	TransTarget     int
}

// HeadcountTarget 计算出的人数目标
type HeadcountTarget struct {
	Configured        bool
	RequiredHeadcount int
	RequiredTrans     int
	TransCap          int
	Input             HeadcountInput
}

// CeilDiv 非负整数向上取整除法
func CeilDiv(n, d int) int {
	if n <= 0 {
		return 0
	}
	q := n / d
	if n%d != 0 {
		q++
	}
	return q
}

// CalculateHeadcount 使用默认容量计算人数目标
func CalculateHeadcount(in HeadcountInput) (HeadcountTarget, error) {
	return DefaultCapacity.Calculate(in)
}

// Calculate required_headcount = ceil(Volume / VolumePerAssociate)，
// required_trans = ceil(TransWorkers / TransPerAssociate)；
// 显式给出 TransTarget 时以它为准，并校验 TransWorkers 不超过 TransTarget × TransPerAssociate。
func (c Capacity) Calculate(in HeadcountInput) (HeadcountTarget, error) {
	if in.Volume < 0 || in.SecondaryVolume < 0 || in.TransWorkers < 0 || in.TransTarget < 0 {
		return HeadcountTarget{}, ErrInvalidVolume
	}

	requiredTrans := CeilDiv(in.TransWorkers, c.TransPerAssociate)
	if in.TransTarget > 0 {
		requiredTrans = in.TransTarget
	}
	if requiredTrans > math.MaxInt/c.TransPerAssociate {
		return HeadcountTarget{}, ErrInvalidVolume
	}
	transCap := requiredTrans * c.TransPerAssociate
	if in.TransWorkers > transCap {
		return HeadcountTarget{}, &TransCapError{Cap: transCap}
	}

	return HeadcountTarget{
		Configured:        true,
		RequiredHeadcount: CeilDiv(in.Volume, c.VolumePerAssociate),
		RequiredTrans:     requiredTrans,
		TransCap:          transCap,
		Input:             in,
	}, nil
}

// SettingsService 人数配置业务接口
type SettingsService interface {
	Get(ctx context.Context) *dto.SettingsResponse
	Update(ctx context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error)
	// Target 供签到与分配模块读取当前目标
	Target() HeadcountTarget
}

type settingsService struct {
	mu       sync.RWMutex
	capacity Capacity
	target   HeadcountTarget
	logger   *zap.Logger
}

// NewSettingsService 创建 SettingsService 实例
func NewSettingsService(capacity Capacity, logger *zap.Logger) SettingsService {
	if capacity.VolumePerAssociate <= 0 {
		capacity.VolumePerAssociate = DefaultVolumePerAssociate
	}
	if capacity.TransPerAssociate <= 0 {
		capacity.TransPerAssociate = DefaultTransPerAssociate
	}
	return &settingsService{capacity: capacity, logger: logger}
}

func (s *settingsService) Get(_ context.Context) *dto.SettingsResponse {
	return toSettingsResponse(s.Target())
}

// Update 计算失败时保留原目标
func (s *settingsService) Update(_ context.Context, req *dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	target, err := s.capacity.Calculate(HeadcountInput{
		Volume:          req.CE,
		SecondaryVolume: req.MI,
		TransWorkers:    req.Trans,
		TransTarget:     req.TransTarget,
	})
	if err != nil {
		s.logger.Warn("人数目标计算失败", zap.Int("trans", req.Trans), zap.Int("trans_target", req.TransTarget), zap.Error(err))
		return nil, err
	}

	s.mu.Lock()
	s.target = target
	s.mu.Unlock()

	s.logger.Info("人数目标已更新",
		zap.Int("required_headcount", target.RequiredHeadcount),
		zap.Int("required_trans", target.RequiredTrans),
	)
	return toSettingsResponse(target), nil
}

func (s *settingsService) Target() HeadcountTarget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.target
}

func toSettingsResponse(t HeadcountTarget) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		Configured:        t.Configured,
		RequiredHeadcount: t.RequiredHeadcount,
		RequiredTrans:     t.RequiredTrans,
		TransCap:          t.TransCap,
		Volume:            t.Input.Volume,
		SecondaryVolume:   t.Input.SecondaryVolume,
		TransWorkers:      t.Input.TransWorkers,
	}
}
