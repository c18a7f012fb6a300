package service

import (
	"math"

	"concept_tutor_backend/internal/model"
	"concept_tutor_backend/pkg/logger"
	"concept_tutor_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// 教学规划常量
const (
	// MaxConceptNodes 单次教学上下文的概念节点硬上限（含目标概念）
	MaxConceptNodes = 5
	// MasteryThreshold 有效掌握度低于该值视为薄弱概念
	MasteryThreshold = 0.6
	// ExampleMasteryCutoff 低于该值时例题加倍
	ExampleMasteryCutoff = 0.4
	// WeakPrereqConfidenceCap 存在薄弱前置时的置信度硬顶
	WeakPrereqConfidenceCap = 0.5
)

// ConceptCard 裁剪后的概念节点，只保留教学上下文需要的字段
type ConceptCard struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	DependsOn   []string `json:"depends_on"`
}

// TeachingBundle 为单个目标概念组装的限容教学上下文
// 仅在一次请求内有效，不缓存、不跨请求复用
type TeachingBundle struct {
	Target              ConceptCard        `json:"target"`
	WeakPrerequisites   []ConceptCard      `json:"weak_prerequisites"`
	StrongPrerequisites []ConceptCard      `json:"strong_prerequisites"`
	Examples            []string           `json:"examples"`
	MasterySnapshot     map[string]float64 `json:"student_mastery_snapshot"`
}

// TeachingPlan 内部规划对象，指导提示词构建，不得原样外发
type TeachingPlan struct {
	ReviewConcepts    []string `json:"review_concepts"`
	FocusConcept      string   `json:"focus_concept"`
	SkipReinforcement []string `json:"skip_reinforcement"`
	ExplanationDepth  string   `json:"explanation_depth"`
}

// PlanEntry 课程序列中的单个概念条目
// 内部字段不参与JSON序列化，仅供进程内的提示词构建方消费
type PlanEntry struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`

	TeachingPlan      TeachingPlan  `json:"-"`
	Confidence        float64       `json:"-"`
	WeakPrerequisites []ConceptCard `json:"-"`
}

// StructuredPlan 主题的完整课程规划
type StructuredPlan struct {
	Topic           string      `json:"topic"`
	ConceptSequence []PlanEntry `json:"concept_sequence"`
}

// PlanService 教学规划编排：束构建、规划推导、置信度标定
type PlanService struct {
	graph   *GraphService
	mastery *MasteryService
}

func NewPlanService(graph *GraphService, mastery *MasteryService) *PlanService {
	return &PlanService{graph: graph, mastery: mastery}
}

// BuildTeachingBundle 为目标概念组装教学束
//
// 传递依赖按有效掌握度切分为薄弱（<0.6）与牢固（>=0.6）两组，
// 每个节点按其自身掌握度裁剪例题数（<0.4取2条，否则1条）。
// 总节点数硬上限5个：目标占1席，剩余4席薄弱优先，超出部分静默丢弃。
func (s *PlanService) BuildTeachingBundle(target string, um *model.UserMastery) (*TeachingBundle, error) {
	prereqs, err := s.graph.TransitivePrerequisites(target)
	if err != nil {
		return nil, err
	}
	targetMastery := um.Effective(target)

	var weak, strong []ConceptCard
	for _, cid := range prereqs {
		meta, err := s.graph.Concept(cid)
		if err != nil {
			return nil, err
		}
		m := um.Effective(cid)
		card := trimConcept(meta, m)
		if m < MasteryThreshold {
			weak = append(weak, card)
		} else {
			strong = append(strong, card)
		}
	}

	targetMeta, err := s.graph.Concept(target)
	if err != nil {
		return nil, err
	}
	targetCard := trimConcept(targetMeta, targetMastery)

	snapshot := um.Snapshot(append(append([]string(nil), prereqs...), target))

	// 容量裁剪：目标保留1席，薄弱前置优先占席
	budget := MaxConceptNodes - 1
	if len(weak) > budget {
		weak = weak[:budget]
	}
	if remaining := budget - len(weak); len(strong) > remaining {
		strong = strong[:remaining]
	}

	return &TeachingBundle{
		Target:              targetCard,
		WeakPrerequisites:   weak,
		StrongPrerequisites: strong,
		Examples:            targetCard.Examples,
		MasterySnapshot:     snapshot,
	}, nil
}

// BuildTeachingPlan 从教学束推导讲解深度与复习/跳过指令
//
// 深度规则（按目标有效掌握度）：<0.3 high，0.3–0.7 medium，>0.7 low
func (s *PlanService) BuildTeachingPlan(target string, bundle *TeachingBundle, um *model.UserMastery) TeachingPlan {
	targetMastery := um.Effective(target)

	depth := "low"
	switch {
	case targetMastery < 0.3:
		depth = "high"
	case targetMastery <= 0.7:
		depth = "medium"
	}

	review := make([]string, 0, len(bundle.WeakPrerequisites))
	for _, card := range bundle.WeakPrerequisites {
		review = append(review, card.ID)
	}
	skip := make([]string, 0, len(bundle.StrongPrerequisites))
	for _, card := range bundle.StrongPrerequisites {
		skip = append(skip, card.ID)
	}

	return TeachingPlan{
		ReviewConcepts:    review,
		FocusConcept:      target,
		SkipReinforcement: skip,
		ExplanationDepth:  depth,
	}
}

// CalibrateConfidence 标定当前教授目标概念的就绪置信度
//
// 因子：前置平均掌握度（0.5）、依赖完备度（0.35）、支撑节点数饱和因子（0.15）。
// 无前置恒为1.0；存在任何薄弱前置时封顶0.5。结果钳制到[0,1]并保留3位小数。
func (s *PlanService) CalibrateConfidence(bundle *TeachingBundle) float64 {
	prereqIDs := make([]string, 0, len(bundle.WeakPrerequisites)+len(bundle.StrongPrerequisites))
	for _, card := range bundle.WeakPrerequisites {
		prereqIDs = append(prereqIDs, card.ID)
	}
	for _, card := range bundle.StrongPrerequisites {
		prereqIDs = append(prereqIDs, card.ID)
	}

	if len(prereqIDs) == 0 {
		// 根概念：随时可教
		return 1.0
	}

	var sum float64
	for _, cid := range prereqIDs {
		sum += bundle.MasterySnapshot[cid]
	}
	avgMastery := sum / float64(len(prereqIDs))

	total := len(prereqIDs)
	completeness := float64(len(bundle.StrongPrerequisites)) / float64(total)
	nodeFactor := math.Min(1.0, float64(total+1)/float64(MaxConceptNodes))

	confidence := avgMastery*0.5 + completeness*0.35 + nodeFactor*0.15

	if len(bundle.WeakPrerequisites) > 0 {
		confidence = math.Min(confidence, WeakPrereqConfidenceCap)
	}

	if confidence < 0 {
		confidence = 0
	} else if confidence > 1 {
		confidence = 1
	}
	return math.Round(confidence*1000) / 1000
}

// BuildStructuredPlan 主题的完整规划流水线
//
//  1. 解析主题得到有序概念序列
//  2. 过滤掉已掌握的概念（有效掌握度 >= 0.6）
//  3. 剩余概念按依赖深度由浅到深稳定排序
//  4. 逐个构建教学束、教学规划与置信度
//
// 用户已掌握主题中全部概念时返回空序列，属正常结果而非错误。
func (s *PlanService) BuildStructuredPlan(topic string, um *model.UserMastery) (*StructuredPlan, error) {
	conceptIDs, err := s.graph.ResolveTopic(topic)
	if err != nil {
		return nil, err
	}

	unknownIDs := um.FilterUnknown(conceptIDs, MasteryThreshold)
	orderedIDs := s.graph.OrderByDepth(unknownIDs)

	logger.Log.Info("structured plan resolved",
		zap.String("topic", topic),
		zap.Int("concepts", len(conceptIDs)),
		zap.Int("unknown", len(unknownIDs)),
	)
	logger.Log.Debug("structured plan ordering",
		zap.Strings("concept_ids", conceptIDs),
		zap.Strings("ordered_ids", orderedIDs),
	)

	sequence := make([]PlanEntry, 0, len(orderedIDs))
	for _, conceptID := range orderedIDs {
		bundle, err := s.BuildTeachingBundle(conceptID, um)
		if err != nil {
			return nil, err
		}
		plan := s.BuildTeachingPlan(conceptID, bundle, um)
		confidence := s.CalibrateConfidence(bundle)

		sequence = append(sequence, PlanEntry{
			ID:                bundle.Target.ID,
			Title:             bundle.Target.Title,
			Description:       bundle.Target.Description,
			Examples:          bundle.Target.Examples,
			TeachingPlan:      plan,
			Confidence:        confidence,
			WeakPrerequisites: bundle.WeakPrerequisites,
		})
	}

	monitoring.PlansBuilt.Inc()
	if len(sequence) == 0 {
		monitoring.EmptyPlans.Inc()
	}

	return &StructuredPlan{Topic: topic, ConceptSequence: sequence}, nil
}

// PlanForUser 面向请求的规划入口：套用掌握度覆写、构建规划并记录曝光
func (s *PlanService) PlanForUser(topic, userID string, overrides map[string]float64) (*StructuredPlan, error) {
	s.mastery.SetMastery(userID, overrides)
	um := s.mastery.Model(userID)

	plan, err := s.BuildStructuredPlan(topic, um)
	if err != nil {
		return nil, err
	}

	// 本次课程覆盖到的每个概念都记一次曝光
	for _, entry := range plan.ConceptSequence {
		um.RecordExposure(entry.ID)
	}
	return plan, nil
}

// trimConcept 按掌握度裁剪概念节点：掌握度越低保留的例题越多
func trimConcept(meta model.ConceptNode, effectiveMastery float64) ConceptCard {
	exampleCount := 1
	if effectiveMastery < ExampleMasteryCutoff {
		exampleCount = 2
	}
	if exampleCount > len(meta.Examples) {
		exampleCount = len(meta.Examples)
	}
	return ConceptCard{
		ID:          meta.ID,
		Title:       meta.Title,
		Description: meta.Description,
		Examples:    meta.Examples[:exampleCount],
		DependsOn:   meta.DependsOn,
	}
}
