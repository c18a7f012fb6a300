package controller

import (
	"time"

	"concept_tutor_backend/internal/service"
	"concept_tutor_backend/internal/util"
	"concept_tutor_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlanController struct {
	Service *service.PlanService
}

func NewPlanController(svc *service.PlanService) *PlanController {
	return &PlanController{Service: svc}
}

type BuildPlanRequest struct {
	Topic       string             `json:"topic" binding:"required"`
	UserID      string             `json:"user_id"`
	UserMastery map[string]float64 `json:"user_mastery"`
}

type BuildPlanResponse struct {
	Topic           string              `json:"topic"`
	ConceptSequence []service.PlanEntry `json:"concept_sequence"`
	LatencyMs       float64             `json:"latency_ms"`
}

// @Summary 构建结构化课程规划
// @Description 解析主题、过滤已掌握概念并按依赖深度排序，逐个生成教学条目
// @Tags 规划
// @Accept json
// @Produce json
// @Param body body BuildPlanRequest true "规划请求"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "未知主题"
// @Router /api/plan [post]
func (c *PlanController) BuildPlan(ctx *gin.Context) {
	var req BuildPlanRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reqID := uuid.New().String()[:8]
	logger.Log.Info("plan request started",
		zap.String("req_id", reqID),
		zap.String("topic", req.Topic),
		zap.String("user_id", req.UserID),
		zap.Int("mastery_overrides", len(req.UserMastery)),
	)

	t0 := time.Now()
	plan, err := c.Service.PlanForUser(req.Topic, req.UserID, req.UserMastery)
	if err != nil {
		if util.IsNotFound(err) {
			logger.Log.Warn("plan request rejected",
				zap.String("req_id", reqID), zap.Error(err))
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	latencyMs := float64(time.Since(t0).Microseconds()) / 1000

	logger.Log.Info("plan request done",
		zap.String("req_id", reqID),
		zap.Int("concepts", len(plan.ConceptSequence)),
		zap.Float64("latency_ms", latencyMs),
	)

	// 空序列表示该主题已全部掌握，属正常结果
	util.Success(ctx, BuildPlanResponse{
		Topic:           plan.Topic,
		ConceptSequence: plan.ConceptSequence,
		LatencyMs:       latencyMs,
	})
}
