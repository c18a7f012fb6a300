package model

// ConceptNode 知识图谱中的概念节点
// 进程启动时构建一次，所有请求只读共享，构建后不可修改
type ConceptNode struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Type        string   `json:"type"`
	Description string   `json:"description"`
	Examples    []string `json:"examples"`
	DependsOn   []string `json:"depends_on"`
}

// Clone 返回节点副本，切片独立，调用方修改不会影响注册表
func (n ConceptNode) Clone() ConceptNode {
	c := n
	c.Examples = append([]string(nil), n.Examples...)
	c.DependsOn = append([]string(nil), n.DependsOn...)
	return c
}

// Topic 预定义课程：按教学顺序排列的概念ID序列
type Topic struct {
	Name     string   `json:"name"`
	Concepts []string `json:"concepts"`
}
