package repository

import (
	"fmt"

	"concept_tutor_backend/internal/model"
	"concept_tutor_backend/internal/util"
)

// ConceptRepository 只读概念注册表
//
// 概念表与课程表在构造时装载并校验，之后不再修改，
// 依赖深度同时一次性算出，所有请求无锁共享同一实例。
type ConceptRepository struct {
	concepts     map[string]model.ConceptNode
	conceptOrder []string
	topics       map[string][]string
	topicOrder   []string
	depths       map[string]int
}

func NewConceptRepository() (*ConceptRepository, error) {
	r := &ConceptRepository{
		concepts: make(map[string]model.ConceptNode, len(conceptTable)),
		topics:   make(map[string][]string, len(topicTable)),
		depths:   make(map[string]int, len(conceptTable)),
	}

	for _, c := range conceptTable {
		if _, exists := r.concepts[c.ID]; exists {
			return nil, fmt.Errorf("duplicate concept id: '%s'", c.ID)
		}
		r.concepts[c.ID] = c
		r.conceptOrder = append(r.conceptOrder, c.ID)
	}
	for _, t := range topicTable {
		if _, exists := r.topics[t.Name]; exists {
			return nil, fmt.Errorf("duplicate topic: '%s'", t.Name)
		}
		r.topics[t.Name] = t.Concepts
		r.topicOrder = append(r.topicOrder, t.Name)
	}

	if err := r.computeDepths(); err != nil {
		return nil, err
	}
	return r, nil
}

// computeDepths 迭代式深度计算，顺带检测依赖环
//
// depth = 0 表示无依赖；否则为 1 + 直接依赖的最大深度。
// 引用了未登记概念的依赖按深度0处理（与主题解析同样的宽容策略）。
func (r *ConceptRepository) computeDepths() error {
	const (
		visiting = 1
		done     = 2
	)
	state := make(map[string]int, len(r.concepts))

	for _, rootID := range r.conceptOrder {
		if state[rootID] == done {
			continue
		}
		stack := []string{rootID}
		for len(stack) > 0 {
			id := stack[len(stack)-1]
			node, known := r.concepts[id]
			if !known {
				// 未登记的依赖视为根节点
				r.depths[id] = 0
				state[id] = done
				stack = stack[:len(stack)-1]
				continue
			}

			if state[id] == done {
				stack = stack[:len(stack)-1]
				continue
			}

			if state[id] == visiting {
				// 第二次出栈，所有依赖均已算完
				maxDep := -1
				for _, dep := range node.DependsOn {
					if d := r.depths[dep]; d > maxDep {
						maxDep = d
					}
				}
				r.depths[id] = maxDep + 1
				state[id] = done
				stack = stack[:len(stack)-1]
				continue
			}

			state[id] = visiting
			for _, dep := range node.DependsOn {
				switch state[dep] {
				case visiting:
					return fmt.Errorf("%w: '%s' -> '%s'", util.ErrCyclicDependency, id, dep)
				case done:
				default:
					stack = append(stack, dep)
				}
			}
		}
	}
	return nil
}

// Concept 按ID返回概念元数据的副本
func (r *ConceptRepository) Concept(id string) (model.ConceptNode, error) {
	c, ok := r.concepts[id]
	if !ok {
		return model.ConceptNode{}, &util.ConceptNotFoundError{ConceptID: id}
	}
	return c.Clone(), nil
}

// Has 概念是否登记在表中
func (r *ConceptRepository) Has(id string) bool {
	_, ok := r.concepts[id]
	return ok
}

// Concepts 按表序返回全部概念元数据
func (r *ConceptRepository) Concepts() []model.ConceptNode {
	out := make([]model.ConceptNode, 0, len(r.conceptOrder))
	for _, id := range r.conceptOrder {
		out = append(out, r.concepts[id].Clone())
	}
	return out
}

// ConceptIDs 按表序返回全部概念ID
func (r *ConceptRepository) ConceptIDs() []string {
	return append([]string(nil), r.conceptOrder...)
}

// DependsOn 返回概念声明的直接依赖
func (r *ConceptRepository) DependsOn(id string) []string {
	return append([]string(nil), r.concepts[id].DependsOn...)
}

// Depth 返回概念的依赖深度，未登记的概念为0
func (r *ConceptRepository) Depth(id string) int {
	return r.depths[id]
}

// TopicSequence 返回主题的概念序列副本
func (r *ConceptRepository) TopicSequence(name string) ([]string, bool) {
	seq, ok := r.topics[name]
	if !ok {
		return nil, false
	}
	return append([]string(nil), seq...), true
}

// TopicNames 按表的插入顺序返回全部主题名
// 解析兜底策略的平局判定依赖该顺序
func (r *ConceptRepository) TopicNames() []string {
	return append([]string(nil), r.topicOrder...)
}

// TopicMap 返回全部主题映射的副本
func (r *ConceptRepository) TopicMap() map[string][]string {
	out := make(map[string][]string, len(r.topics))
	for name, seq := range r.topics {
		out[name] = append([]string(nil), seq...)
	}
	return out
}
