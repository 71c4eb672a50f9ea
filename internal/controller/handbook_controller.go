package controller

import (
	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type HandbookController struct {
	HandbookService *service.HandbookService
}

func NewHandbookController(handbookService *service.HandbookService) *HandbookController {
	return &HandbookController{HandbookService: handbookService}
}

// @Summary Vocabulary handbook with ownership flags
// @Tags handbook
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /handbook [get]
func (c *HandbookController) ListCards(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	cards, err := c.HandbookService.ListCards(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cards)
}

// @Summary Collected cards only
// @Tags handbook
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /handbook/owned [get]
func (c *HandbookController) ListOwned(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	cards, err := c.HandbookService.ListOwned(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, cards)
}
