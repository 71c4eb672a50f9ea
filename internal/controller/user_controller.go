package controller

import (
	"fmt"
	"path/filepath"
	"strconv"
	"time"

	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService    *service.UserService
	StorageService *service.StorageService
}

func NewUserController(userService *service.UserService, storageService *service.StorageService) *UserController {
	return &UserController{
		UserService:    userService,
		StorageService: storageService,
	}
}

type UpdateProfileRequest struct {
	Name   string `json:"name"`
	Avatar string `json:"avatar"`
}

// @Summary Update own profile
// @Tags users
// @Accept json
// @Produce json
// @Param body body UpdateProfileRequest true "fields to change"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateProfileRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req.Name, req.Avatar)
	if err != nil {
		if err == util.ErrUserNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, user)
}

// @Summary Upload an avatar image
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "image file"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /profile/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer file.Close()

	filename := fmt.Sprintf("avatars/%d_%d%s", claims.UserID, time.Now().Unix(), filepath.Ext(fileHeader.Filename))
	url, err := c.StorageService.Upload(
		ctx.Request.Context(),
		filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, "", url)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"avatar": user.Avatar})
}

// @Summary List users
// @Tags admin
// @Produce json
// @Param page query int false "page"
// @Param pageSize query int false "page size"
// @Param role query string false "role filter"
// @Param search query string false "name/email search"
// @Security ApiKeyAuth
// @Success 200 {object} util.PageResponse
// @Router /admin/users [get]
func (c *UserController) ListUsers(ctx *gin.Context) {
	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(ctx.DefaultQuery("pageSize", "20"))

	users, total, err := c.UserService.GetUsers(page, pageSize, ctx.Query("role"), ctx.Query("search"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.SuccessPage(ctx, users, total, page, pageSize)
}

// @Summary User detail
// @Tags admin
// @Produce json
// @Param id path int true "user id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	user, err := c.UserService.GetUserByID(uint(id))
	if err != nil {
		util.NotFound(ctx, err.Error())
		return
	}
	util.Success(ctx, user)
}

type DisableUserRequest struct {
	Disabled bool `json:"disabled"`
}

// @Summary Enable or disable an account
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "user id"
// @Param body body DisableUserRequest true "target state"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/users/{id}/disable [put]
func (c *UserController) DisableUser(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	var req DisableUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.UserService.DisableUser(uint(id), req.Disabled); err != nil {
		if err == util.ErrUserNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"disabled": req.Disabled})
}

// @Summary Reset a user's password
// @Description Sets a temporary password and returns it once.
// @Tags admin
// @Produce json
// @Param id path int true "user id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/users/{id}/reset-password [post]
func (c *UserController) ResetPassword(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	tempPassword, err := c.UserService.ResetPassword(uint(id))
	if err != nil {
		if err == util.ErrUserNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"tempPassword": tempPassword})
}
