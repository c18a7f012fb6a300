package controller

import (
	"concept_tutor_backend/internal/service"
	"concept_tutor_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type MasteryController struct {
	Service *service.MasteryService
}

func NewMasteryController(svc *service.MasteryService) *MasteryController {
	return &MasteryController{Service: svc}
}

type SetMasteryRequest struct {
	UserID string             `json:"user_id"`
	Levels map[string]float64 `json:"levels" binding:"required"`
}

type RecordEventRequest struct {
	UserID    string `json:"user_id"`
	ConceptID string `json:"concept_id" binding:"required"`
	Event     string `json:"event" binding:"required"`
}

type ApplyDecayRequest struct {
	UserID string `json:"user_id"`
}

// @Summary 获取用户掌握度快照
// @Description 返回该用户触达过的全部概念的原始/有效掌握度、曝光与困惑计数
// @Tags 掌握度
// @Produce json
// @Param user_id query string false "用户ID，缺省为default"
// @Success 200 {object} util.Response
// @Router /api/user-graph [get]
func (c *MasteryController) GetUserGraph(ctx *gin.Context) {
	util.Success(ctx, c.Service.State(ctx.Query("user_id")))
}

// @Summary 批量设置掌握度
// @Description 直接设置原始掌握度，越界值钳制到[0,1]
// @Tags 掌握度
// @Accept json
// @Produce json
// @Param body body SetMasteryRequest true "掌握度设置"
// @Success 200 {object} util.Response
// @Router /api/user-graph/mastery [put]
func (c *MasteryController) SetMastery(ctx *gin.Context) {
	var req SetMasteryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	c.Service.SetMastery(req.UserID, req.Levels)
	util.Success(ctx, c.Service.State(req.UserID))
}

// @Summary 记录学习交互事件
// @Description event 取值 exposure / confusion / correct
// @Tags 掌握度
// @Accept json
// @Produce json
// @Param body body RecordEventRequest true "交互事件"
// @Success 200 {object} util.Response
// @Router /api/user-graph/events [post]
func (c *MasteryController) RecordEvent(ctx *gin.Context) {
	var req RecordEventRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.Service.RecordEvent(req.UserID, req.ConceptID, req.Event); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, c.Service.State(req.UserID))
}

// @Summary 执行时间衰减
// @Description 对该用户所有已跟踪概念按距上次更新的时长衰减原始掌握度
// @Tags 掌握度
// @Accept json
// @Produce json
// @Param body body ApplyDecayRequest true "用户"
// @Success 200 {object} util.Response
// @Router /api/user-graph/decay [post]
func (c *MasteryController) ApplyDecay(ctx *gin.Context) {
	var req ApplyDecayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	util.Success(ctx, c.Service.ApplyDecay(req.UserID))
}
