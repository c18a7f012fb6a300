package app

import (
	"concept_tutor_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	// Prometheus 指标
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 教学计划
		api.POST("/plan", c.plan.BuildPlan)

		// 知识图谱
		graph := api.Group("/knowledge-graph")
		{
			graph.GET("", c.graph.GetKnowledgeGraph)
			graph.GET("/concepts/:id", c.graph.GetConcept)
			graph.GET("/concepts/:id/path", c.graph.GetLearningPath)
		}

		// 用户掌握度
		userGraph := api.Group("/user-graph")
		{
			userGraph.GET("", c.mastery.GetUserGraph)
			userGraph.PUT("/mastery", c.mastery.SetMastery)
			userGraph.POST("/events", c.mastery.RecordEvent)
			userGraph.POST("/decay", c.mastery.ApplyDecay)
		}
	}
}
