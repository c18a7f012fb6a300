package service

import (
	"fmt"

	"concept_tutor_backend/internal/model"
	"concept_tutor_backend/internal/repository"
	"concept_tutor_backend/pkg/logger"

	"go.uber.org/zap"
)

// 掌握度交互事件类型
const (
	EventExposure  = "exposure"
	EventConfusion = "confusion"
	EventCorrect   = "correct"
)

// MasteryService 用户掌握度状态的读写入口
type MasteryService struct {
	store *repository.MasteryRepository
}

func NewMasteryService(store *repository.MasteryRepository) *MasteryService {
	return &MasteryService{store: store}
}

// Model 返回该用户的掌握度模型（惰性创建）
func (s *MasteryService) Model(userID string) *model.UserMastery {
	return s.store.Get(userID)
}

// State 返回该用户触达过的全部概念的可序列化快照
func (s *MasteryService) State(userID string) model.MasteryState {
	return s.store.Get(userID).State()
}

// SetMastery 批量设置原始掌握度，越界值钳制而非拒绝
func (s *MasteryService) SetMastery(userID string, levels map[string]float64) {
	if len(levels) == 0 {
		return
	}
	um := s.store.Get(userID)
	for conceptID, level := range levels {
		um.SetMastery(conceptID, level)
	}
	logger.Log.Debug("mastery overrides applied",
		zap.String("user_id", repository.NormalizeUserID(userID)),
		zap.Int("count", len(levels)),
	)
}

// RecordEvent 记录一次学习交互
// 未知概念ID不报错：掌握度记录对任意概念惰性生效
func (s *MasteryService) RecordEvent(userID, conceptID, event string) error {
	um := s.store.Get(userID)
	switch event {
	case EventExposure:
		um.RecordExposure(conceptID)
	case EventConfusion:
		um.RecordConfusion(conceptID)
	case EventCorrect:
		um.RecordCorrect(conceptID)
	default:
		return fmt.Errorf("unknown mastery event: '%s'", event)
	}
	return nil
}

// ApplyDecay 对该用户所有已跟踪概念执行时间衰减
func (s *MasteryService) ApplyDecay(userID string) model.MasteryState {
	um := s.store.Get(userID)
	um.ApplyDecayAll()
	return um.State()
}
