package model

import (
	"sync"
	"time"
)

// 掌握度模型常量
const (
	// ConfusionPenaltyPerCount 每次困惑对有效掌握度的扣减
	ConfusionPenaltyPerCount = 0.1
	// CorrectAnswerBoost 答对一次的掌握度提升（上限1.0）
	CorrectAnswerBoost = 0.05
	// DecayRatePerSecond 遗忘衰减速率，约合0.086/天
	DecayRatePerSecond = 1e-6
)

// UserMastery 单个学生的概念掌握度记录
//
// 原始掌握度存储为[0,1]的浮点数。所有教学决策必须使用 Effective()，
// 它在原始值之上叠加困惑惩罚，使反复出错能压低原本偏高的分数。
// 同一用户的并发请求按后写胜出处理，锁只保护map本身。
type UserMastery struct {
	mu          sync.RWMutex
	mastery     map[string]float64
	lastUpdated map[string]time.Time
	exposure    map[string]int
	confusion   map[string]int
	now         func() time.Time
}

// MasteryState 可序列化的用户掌握度快照，供状态查询接口返回
type MasteryState struct {
	Mastery          map[string]float64   `json:"mastery"`
	EffectiveMastery map[string]float64   `json:"effective_mastery"`
	ExposureCount    map[string]int       `json:"exposure_count"`
	ConfusionCount   map[string]int       `json:"confusion_count"`
	LastUpdated      map[string]time.Time `json:"last_updated"`
}

// NewUserMastery 创建带默认种子值的掌握度记录
func NewUserMastery() *UserMastery {
	return &UserMastery{
		mastery: map[string]float64{
			"entity_concept":      0.9,
			"accounting_equation": 0.7,
			"accrual":             0.2,
			"matching":            0.1,
		},
		lastUpdated: make(map[string]time.Time),
		exposure:    make(map[string]int),
		confusion:   make(map[string]int),
		now:         time.Now,
	}
}

// SetMastery 直接设置原始掌握度（钳制到[0,1]）
func (u *UserMastery) SetMastery(conceptID string, level float64) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.mastery[conceptID] = clamp01(level)
	u.lastUpdated[conceptID] = u.now()
}

// Raw 返回未施加任何惩罚的原始掌握度，未记录的概念为0
func (u *UserMastery) Raw(conceptID string) float64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.mastery[conceptID]
}

// Effective 返回按困惑历史折减后的掌握度
//
// effective = max(0, raw - 0.1 * confusion_count)
func (u *UserMastery) Effective(conceptID string) float64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return u.effectiveLocked(conceptID)
}

func (u *UserMastery) effectiveLocked(conceptID string) float64 {
	penalty := ConfusionPenaltyPerCount * float64(u.confusion[conceptID])
	e := u.mastery[conceptID] - penalty
	if e < 0 {
		return 0
	}
	return e
}

// RecordExposure 概念被讲解过一次，掌握度本身不变
func (u *UserMastery) RecordExposure(conceptID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.exposure[conceptID]++
	u.lastUpdated[conceptID] = u.now()
}

// RecordConfusion 学生在该概念的检测题上出错
// 困惑计数加一，同时下调原始掌握度，使反复出错双通道叠加
func (u *UserMastery) RecordConfusion(conceptID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.confusion[conceptID]++
	next := u.mastery[conceptID] - ConfusionPenaltyPerCount
	if next < 0 {
		next = 0
	}
	u.mastery[conceptID] = next
	u.lastUpdated[conceptID] = u.now()
}

// RecordCorrect 学生答对检测题，小幅提升掌握度（封顶1.0），困惑计数不变
func (u *UserMastery) RecordCorrect(conceptID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	next := u.mastery[conceptID] + CorrectAnswerBoost
	if next > 1 {
		next = 1
	}
	u.mastery[conceptID] = next
	u.lastUpdated[conceptID] = u.now()
}

// ApplyDecay 按距上次更新的间隔时间衰减原始掌握度
// 从未接触过的概念不受影响
func (u *UserMastery) ApplyDecay(conceptID string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.applyDecayLocked(conceptID)
}

func (u *UserMastery) applyDecayLocked(conceptID string) {
	last, ok := u.lastUpdated[conceptID]
	if !ok {
		return
	}
	elapsed := u.now().Sub(last).Seconds()
	next := u.mastery[conceptID] - DecayRatePerSecond*elapsed
	if next < 0 {
		next = 0
	}
	u.mastery[conceptID] = next
}

// ApplyDecayAll 对所有已跟踪概念执行时间衰减
func (u *UserMastery) ApplyDecayAll() {
	u.mu.Lock()
	defer u.mu.Unlock()
	for conceptID := range u.mastery {
		u.applyDecayLocked(conceptID)
	}
}

// FilterUnknown 返回有效掌握度低于阈值的概念子集，保持输入顺序
func (u *UserMastery) FilterUnknown(conceptIDs []string, threshold float64) []string {
	u.mu.RLock()
	defer u.mu.RUnlock()
	unknown := make([]string, 0, len(conceptIDs))
	for _, cid := range conceptIDs {
		if u.effectiveLocked(cid) < threshold {
			unknown = append(unknown, cid)
		}
	}
	return unknown
}

// Snapshot 返回给定概念的有效掌握度映射
func (u *UserMastery) Snapshot(conceptIDs []string) map[string]float64 {
	u.mu.RLock()
	defer u.mu.RUnlock()
	snap := make(map[string]float64, len(conceptIDs))
	for _, cid := range conceptIDs {
		snap[cid] = u.effectiveLocked(cid)
	}
	return snap
}

// State 返回该用户触达过的全部概念的可序列化快照
func (u *UserMastery) State() MasteryState {
	u.mu.RLock()
	defer u.mu.RUnlock()

	touched := make(map[string]struct{}, len(u.mastery))
	for cid := range u.mastery {
		touched[cid] = struct{}{}
	}
	for cid := range u.confusion {
		touched[cid] = struct{}{}
	}
	for cid := range u.exposure {
		touched[cid] = struct{}{}
	}

	state := MasteryState{
		Mastery:          make(map[string]float64, len(u.mastery)),
		EffectiveMastery: make(map[string]float64, len(touched)),
		ExposureCount:    make(map[string]int, len(u.exposure)),
		ConfusionCount:   make(map[string]int, len(u.confusion)),
		LastUpdated:      make(map[string]time.Time, len(u.lastUpdated)),
	}
	for cid, v := range u.mastery {
		state.Mastery[cid] = v
	}
	for cid := range touched {
		state.EffectiveMastery[cid] = u.effectiveLocked(cid)
	}
	for cid, v := range u.exposure {
		state.ExposureCount[cid] = v
	}
	for cid, v := range u.confusion {
		state.ConfusionCount[cid] = v
	}
	for cid, t := range u.lastUpdated {
		state.LastUpdated[cid] = t
	}
	return state
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
