package controller

import (
	"concept_tutor_backend/internal/service"
	"concept_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GraphController struct {
	Graph   *service.GraphService
	Mastery *service.MasteryService
}

func NewGraphController(graph *service.GraphService, mastery *service.MasteryService) *GraphController {
	return &GraphController{Graph: graph, Mastery: mastery}
}

// @Summary 获取知识图谱
// @Description 返回全部主题映射与概念元数据
// @Tags 图谱
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/knowledge-graph [get]
func (c *GraphController) GetKnowledgeGraph(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"topics":   c.Graph.TopicMap(),
		"concepts": c.Graph.Concepts(),
	})
}

// @Summary 获取单个概念
// @Tags 图谱
// @Produce json
// @Param id path string true "概念ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/knowledge-graph/concepts/{id} [get]
func (c *GraphController) GetConcept(ctx *gin.Context) {
	id := ctx.Param("id")

	concept, err := c.Graph.Concept(id)
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	util.Success(ctx, gin.H{
		"concept": concept,
		"depth":   c.Graph.Depth(id),
	})
}

// @Summary 获取概念的学习路径
// @Description 返回学习该概念前所需的全部前置概念（含自身），由浅到深；
// @Description 提供 user_id 时按该用户的有效掌握度过滤已掌握的部分
// @Tags 图谱
// @Produce json
// @Param id path string true "概念ID"
// @Param user_id query string false "用户ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/knowledge-graph/concepts/{id}/path [get]
func (c *GraphController) GetLearningPath(ctx *gin.Context) {
	id := ctx.Param("id")

	var path []string
	var err error
	if userID, filtered := ctx.GetQuery("user_id"); filtered {
		path, err = c.Graph.LearningPath(id, c.Mastery.Model(userID), service.MasteryThreshold)
	} else {
		path, err = c.Graph.LearningPath(id, nil, service.MasteryThreshold)
	}
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}

	depths := make(map[string]int, len(path))
	for _, cid := range path {
		depths[cid] = c.Graph.Depth(cid)
	}

	util.Success(ctx, gin.H{
		"target": id,
		"path":   path,
		"depths": depths,
	})
}
