package controller

import (
	"concept_tutor_backend/internal/repository"
	"concept_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HealthController struct {
	Concepts *repository.ConceptRepository
	Users    *repository.MasteryRepository
}

func NewHealthController(concepts *repository.ConceptRepository, users *repository.MasteryRepository) *HealthController {
	return &HealthController{Concepts: concepts, Users: users}
}

// @Summary 健康检查
// @Description 检查服务状态与注册表规模
// @Tags 系统
// @Produce json
// @Success 200 {object} util.Response
// @Router /api/health [get]
func (c *HealthController) HealthCheck(ctx *gin.Context) {
	util.Success(ctx, gin.H{
		"status": "ok",
		"components": gin.H{
			"concept_registry": "up",
		},
		"concepts": len(c.Concepts.ConceptIDs()),
		"topics":   len(c.Concepts.TopicNames()),
		"users":    c.Users.Count(),
	})
}
