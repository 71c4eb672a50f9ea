package controller

import (
	"strconv"

	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type GamificationController struct {
	GamificationService *service.GamificationService
}

func NewGamificationController(gamificationService *service.GamificationService) *GamificationController {
	return &GamificationController{GamificationService: gamificationService}
}

// @Summary Today's quests with progress
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /quests [get]
func (c *GamificationController) GetDailyQuests(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	quests, err := c.GamificationService.GetDailyQuests(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quests)
}

// @Summary Claim a completed quest's reward
// @Tags gamification
// @Produce json
// @Param id path int true "quest id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /quests/{id}/claim [post]
func (c *GamificationController) ClaimQuest(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	questID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid quest id")
		return
	}

	rewards, err := c.GamificationService.ClaimQuestReward(claims.UserID, uint(questID))
	if err != nil {
		switch err {
		case util.ErrQuestNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrQuestNotStarted, util.ErrQuestNotCompleted, util.ErrQuestAlreadyClaimed:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, rewards)
}

// @Summary Achievement catalog
// @Tags gamification
// @Produce json
// @Success 200 {object} util.Response
// @Router /achievements [get]
func (c *GamificationController) ListAchievements(ctx *gin.Context) {
	achievements, err := c.GamificationService.ListAchievements()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, achievements)
}

// @Summary Earned badges
// @Tags gamification
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /badges [get]
func (c *GamificationController) GetBadges(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	badges, err := c.GamificationService.GetBadges(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, badges)
}

// @Summary XP leaderboard
// @Tags gamification
// @Produce json
// @Param limit query int false "row count, max 50"
// @Success 200 {object} util.Response
// @Router /leaderboard [get]
func (c *GamificationController) GetLeaderboard(ctx *gin.Context) {
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	rows, err := c.GamificationService.GetLeaderboard(limit)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}
