package controller

import (
	"strconv"

	"lingoland_backend/internal/model"
	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"
	"lingoland_backend/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PracticeController struct {
	PracticeService     *service.PracticeService
	GamificationService *service.GamificationService
}

func NewPracticeController(practiceService *service.PracticeService, gamificationService *service.GamificationService) *PracticeController {
	return &PracticeController{
		PracticeService:     practiceService,
		GamificationService: gamificationService,
	}
}

// @Summary Active practice games
// @Tags practice
// @Produce json
// @Success 200 {object} util.Response
// @Router /games [get]
func (c *PracticeController) ListGames(ctx *gin.Context) {
	games, err := c.PracticeService.ListGames()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, games)
}

type SubmitResultRequest struct {
	Score       int  `json:"score"`
	Won         bool `json:"won"`
	DurationSec int  `json:"durationSec"`
}

// @Summary Submit a practice round
// @Description Records the round, pays the win reward and feeds the
// @Description GAME_WON / LEARNING_TIME quest events.
// @Tags practice
// @Accept json
// @Produce json
// @Param code path string true "game code"
// @Param body body SubmitResultRequest true "round outcome"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /games/{code}/results [post]
func (c *PracticeController) SubmitResult(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	outcome, err := c.PracticeService.SubmitResult(claims.UserID, ctx.Param("code"), req.Score, req.Won, req.DurationSec)
	if err != nil {
		if err == util.ErrGameNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	var badges []model.Badge
	if req.Won {
		badges, err = c.GamificationService.TrackProgress(claims.UserID, model.EventGameWon, 1)
		if err != nil {
			logger.Log.Error("game quest tracking failed",
				zap.Uint("userId", claims.UserID), zap.Error(err))
		}
	}
	if minutes := req.DurationSec / 60; minutes > 0 {
		if _, err := c.GamificationService.TrackProgress(claims.UserID, model.EventLearningTime, minutes); err != nil {
			logger.Log.Error("learning time tracking failed",
				zap.Uint("userId", claims.UserID), zap.Error(err))
		}
	}

	util.Success(ctx, gin.H{
		"outcome":        outcome,
		"unlockedBadges": badges,
	})
}

// @Summary Recent rounds
// @Tags practice
// @Produce json
// @Param limit query int false "row count, max 100"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /games/results [get]
func (c *PracticeController) RecentResults(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	results, err := c.PracticeService.RecentResults(claims.UserID, limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, results)
}
