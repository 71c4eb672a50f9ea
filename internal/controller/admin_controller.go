package controller

import (
	"strconv"

	"lingoland_backend/internal/model"
	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// AdminController manages the gamification catalogs: quests, achievements,
// shop items, practice games and handbook cards.
type AdminController struct {
	GamificationService *service.GamificationService
	ShopService         *service.ShopService
	PracticeService     *service.PracticeService
	HandbookService     *service.HandbookService
}

func NewAdminController(
	gamificationService *service.GamificationService,
	shopService *service.ShopService,
	practiceService *service.PracticeService,
	handbookService *service.HandbookService,
) *AdminController {
	return &AdminController{
		GamificationService: gamificationService,
		ShopService:         shopService,
		PracticeService:     practiceService,
		HandbookService:     handbookService,
	}
}

// @Summary Create a quest
// @Tags admin
// @Accept json
// @Produce json
// @Param body body model.Quest true "quest"
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/quests [post]
func (c *AdminController) CreateQuest(ctx *gin.Context) {
	var quest model.Quest
	if err := ctx.ShouldBindJSON(&quest); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.GamificationService.CreateQuest(&quest); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, quest)
}

// @Summary Update a quest
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "quest id"
// @Param body body model.Quest true "quest"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/quests/{id} [put]
func (c *AdminController) UpdateQuest(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid quest id")
		return
	}

	var quest model.Quest
	if err := ctx.ShouldBindJSON(&quest); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	quest.ID = uint(id)
	if err := c.GamificationService.UpdateQuest(&quest); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, quest)
}

// @Summary Create an achievement
// @Description Rejects unknown criteria types up front.
// @Tags admin
// @Accept json
// @Produce json
// @Param body body model.Achievement true "achievement"
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/achievements [post]
func (c *AdminController) CreateAchievement(ctx *gin.Context) {
	var achievement model.Achievement
	if err := ctx.ShouldBindJSON(&achievement); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.GamificationService.CreateAchievement(&achievement); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Created(ctx, achievement)
}

// @Summary Create a shop item
// @Tags admin
// @Accept json
// @Produce json
// @Param body body model.Item true "item"
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/items [post]
func (c *AdminController) CreateItem(ctx *gin.Context) {
	var item model.Item
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ShopService.CreateItem(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, item)
}

// @Summary Update a shop item
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "item id"
// @Param body body model.Item true "item"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/items/{id} [put]
func (c *AdminController) UpdateItem(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid item id")
		return
	}

	var item model.Item
	if err := ctx.ShouldBindJSON(&item); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	item.ID = uint(id)
	if err := c.ShopService.UpdateItem(&item); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, item)
}

// @Summary Create a practice game
// @Tags admin
// @Accept json
// @Produce json
// @Param body body model.PracticeGame true "game"
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/games [post]
func (c *AdminController) CreateGame(ctx *gin.Context) {
	var game model.PracticeGame
	if err := ctx.ShouldBindJSON(&game); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.PracticeService.CreateGame(&game); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, game)
}

// @Summary Update a practice game
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "game id"
// @Param body body model.PracticeGame true "game"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/games/{id} [put]
func (c *AdminController) UpdateGame(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid game id")
		return
	}

	var game model.PracticeGame
	if err := ctx.ShouldBindJSON(&game); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	game.ID = uint(id)
	if err := c.PracticeService.UpdateGame(&game); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, game)
}

// @Summary Create a handbook card
// @Tags admin
// @Accept json
// @Produce json
// @Param body body model.HandbookCard true "card"
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/handbook [post]
func (c *AdminController) CreateCard(ctx *gin.Context) {
	var card model.HandbookCard
	if err := ctx.ShouldBindJSON(&card); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.HandbookService.CreateCard(&card); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, card)
}

// @Summary Update a handbook card
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "card id"
// @Param body body model.HandbookCard true "card"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/handbook/{id} [put]
func (c *AdminController) UpdateCard(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid card id")
		return
	}

	var card model.HandbookCard
	if err := ctx.ShouldBindJSON(&card); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	card.ID = uint(id)
	if err := c.HandbookService.UpdateCard(&card); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, card)
}
