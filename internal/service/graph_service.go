package service

import (
	"regexp"
	"sort"
	"strings"

	"concept_tutor_backend/internal/model"
	"concept_tutor_backend/internal/repository"
	"concept_tutor_backend/internal/util"
)

// GraphService 概念图谱查询：主题解析、依赖闭包、深度排序
type GraphService struct {
	concepts *repository.ConceptRepository
}

func NewGraphService(concepts *repository.ConceptRepository) *GraphService {
	return &GraphService{concepts: concepts}
}

var nonAlnumPattern = regexp.MustCompile(`[^a-z0-9]+`)

// 主题归一化时剔除的无信息量词
var topicStopWords = map[string]bool{
	"a":       true,
	"about":   true,
	"an":      true,
	"explain": true,
	"learn":   true,
	"me":      true,
	"please":  true,
	"teach":   true,
	"the":     true,
}

// ResolveTopic 把主题名解析为有序概念序列
//
// 依次尝试：精确匹配 → 归一化匹配 → 去下划线匹配 → 词元前缀匹配 →
// 概念名兜底（落到第一个包含该概念的主题，按表序）。
// 全部失败时返回 TopicNotFoundError，附带全部可用主题名。
func (s *GraphService) ResolveTopic(name string) ([]string, error) {
	if seq, ok := s.concepts.TopicSequence(name); ok {
		return seq, nil
	}

	normalized := normalizeTopicName(name)
	if seq, ok := s.concepts.TopicSequence(normalized); ok {
		return seq, nil
	}

	// 去下划线对比
	flat := strings.ReplaceAll(normalized, "_", "")
	for _, key := range s.concepts.TopicNames() {
		if strings.ReplaceAll(key, "_", "") == flat {
			seq, _ := s.concepts.TopicSequence(key)
			return seq, nil
		}
	}

	// 词元前缀匹配：查询词元与主题键词元任一方向的前缀关系
	tokens := splitTokens(normalized)
	for _, token := range tokens {
		for _, key := range s.concepts.TopicNames() {
			for _, keyToken := range strings.Split(key, "_") {
				if strings.HasPrefix(token, keyToken) || strings.HasPrefix(keyToken, token) {
					seq, _ := s.concepts.TopicSequence(key)
					return seq, nil
				}
			}
		}
	}

	// 概念名兜底：词元命中概念ID时，解析到第一个包含该概念的主题
	for _, token := range tokens {
		for _, conceptID := range s.concepts.ConceptIDs() {
			if !strings.HasPrefix(token, conceptID) && !strings.HasPrefix(conceptID, token) {
				continue
			}
			for _, key := range s.concepts.TopicNames() {
				seq, _ := s.concepts.TopicSequence(key)
				for _, cid := range seq {
					if cid == conceptID {
						return seq, nil
					}
				}
			}
		}
	}

	available := s.concepts.TopicNames()
	sort.Strings(available)
	return nil, &util.TopicNotFoundError{Topic: name, Available: available}
}

// Concept 返回概念元数据副本，未知ID返回 ConceptNotFoundError
func (s *GraphService) Concept(id string) (model.ConceptNode, error) {
	return s.concepts.Concept(id)
}

// Concepts 返回全部概念
func (s *GraphService) Concepts() []model.ConceptNode {
	return s.concepts.Concepts()
}

// TopicMap 返回全部主题映射
func (s *GraphService) TopicMap() map[string][]string {
	return s.concepts.TopicMap()
}

// Prerequisites 返回直接（非传递）依赖
func (s *GraphService) Prerequisites(id string) ([]string, error) {
	if !s.concepts.Has(id) {
		return nil, &util.ConceptNotFoundError{ConceptID: id}
	}
	return s.concepts.DependsOn(id), nil
}

// TransitivePrerequisites 返回全部传递依赖（不含自身），由浅到深排序
func (s *GraphService) TransitivePrerequisites(id string) ([]string, error) {
	if !s.concepts.Has(id) {
		return nil, &util.ConceptNotFoundError{ConceptID: id}
	}
	collected := s.collectPrerequisites(id)
	ancestors := make([]string, 0, len(collected))
	for _, cid := range collected {
		if cid != id {
			ancestors = append(ancestors, cid)
		}
	}
	return s.OrderByDepth(ancestors), nil
}

// collectPrerequisites 迭代先序遍历，收集自身及全部传递依赖
// 收集顺序确定（按依赖声明顺序），保证重复调用结果一致
func (s *GraphService) collectPrerequisites(id string) []string {
	seen := map[string]bool{}
	var order []string
	stack := []string{id}
	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[cur] {
			continue
		}
		seen[cur] = true
		order = append(order, cur)
		if !s.concepts.Has(cur) {
			continue
		}
		deps := s.concepts.DependsOn(cur)
		// 逆序入栈，使出栈顺序与声明顺序一致
		for i := len(deps) - 1; i >= 0; i-- {
			if !seen[deps[i]] {
				stack = append(stack, deps[i])
			}
		}
	}
	return order
}

// Depth 返回概念的依赖深度（无依赖为0，否则1+直接依赖的最大深度）
func (s *GraphService) Depth(id string) int {
	return s.concepts.Depth(id)
}

// OrderByDepth 按深度升序稳定排序，深度相同时保持输入顺序
func (s *GraphService) OrderByDepth(ids []string) []string {
	out := append([]string(nil), ids...)
	sort.SliceStable(out, func(i, j int) bool {
		return s.concepts.Depth(out[i]) < s.concepts.Depth(out[j])
	})
	return out
}

// LearningPath 返回学习 target 前需要的概念序列（含 target，由浅到深）
//
// 传入掌握度模型时只保留有效掌握度低于阈值的概念，纯图计算。
func (s *GraphService) LearningPath(target string, um *model.UserMastery, threshold float64) ([]string, error) {
	if !s.concepts.Has(target) {
		return nil, &util.ConceptNotFoundError{ConceptID: target}
	}
	candidates := s.collectPrerequisites(target)
	if um != nil {
		candidates = um.FilterUnknown(candidates, threshold)
	}
	return s.OrderByDepth(candidates), nil
}

func normalizeTopicName(name string) string {
	cleaned := strings.TrimSpace(nonAlnumPattern.ReplaceAllString(strings.ToLower(name), " "))
	if cleaned == "" {
		return ""
	}

	all := strings.Fields(cleaned)
	tokens := make([]string, 0, len(all))
	for _, t := range all {
		if !topicStopWords[t] {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		tokens = all
	}
	return strings.Join(tokens, "_")
}

func splitTokens(normalized string) []string {
	var tokens []string
	for _, t := range strings.Split(normalized, "_") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}
