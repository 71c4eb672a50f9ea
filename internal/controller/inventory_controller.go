package controller

import (
	"strconv"

	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type InventoryController struct {
	InventoryService *service.InventoryService
}

func NewInventoryController(inventoryService *service.InventoryService) *InventoryController {
	return &InventoryController{InventoryService: inventoryService}
}

// @Summary Owned items
// @Tags inventory
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /inventory [get]
func (c *InventoryController) ListInventory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	items, err := c.InventoryService.ListInventory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary Equip an owned item
// @Tags inventory
// @Produce json
// @Param id path int true "item id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /inventory/{id}/equip [post]
func (c *InventoryController) Equip(ctx *gin.Context) {
	c.setEquipped(ctx, true)
}

// @Summary Take an equipped item off
// @Tags inventory
// @Produce json
// @Param id path int true "item id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /inventory/{id}/unequip [post]
func (c *InventoryController) Unequip(ctx *gin.Context) {
	c.setEquipped(ctx, false)
}

func (c *InventoryController) setEquipped(ctx *gin.Context, equip bool) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	itemID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid item id")
		return
	}

	if equip {
		err = c.InventoryService.Equip(claims.UserID, uint(itemID))
	} else {
		err = c.InventoryService.Unequip(claims.UserID, uint(itemID))
	}
	if err != nil {
		switch err {
		case util.ErrItemNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrItemNotOwned:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"equipped": equip})
}
