package controller

import (
	"strconv"

	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type ShopController struct {
	ShopService *service.ShopService
}

func NewShopController(shopService *service.ShopService) *ShopController {
	return &ShopController{ShopService: shopService}
}

// @Summary Shop catalog
// @Tags shop
// @Produce json
// @Success 200 {object} util.Response
// @Router /shop/items [get]
func (c *ShopController) ListItems(ctx *gin.Context) {
	items, err := c.ShopService.ListItems()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, items)
}

// @Summary Buy an item
// @Tags shop
// @Produce json
// @Param id path int true "item id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /shop/items/{id}/purchase [post]
func (c *ShopController) Purchase(ctx *gin.Context) {
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

	purchase, err := c.ShopService.Purchase(claims.UserID, uint(itemID))
	if err != nil {
		switch err {
		case util.ErrItemNotFound:
			util.NotFound(ctx, err.Error())
		case util.ErrItemNotSellable, util.ErrItemAlreadyOwned, util.ErrInsufficientFunds:
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, purchase)
}

// @Summary Purchase history
// @Tags shop
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /shop/purchases [get]
func (c *ShopController) PurchaseHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	purchases, err := c.ShopService.PurchaseHistory(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, purchases)
}
