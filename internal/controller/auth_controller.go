package controller

import (
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService         *service.AuthService
	UserService         *service.UserService
	GamificationService *service.GamificationService
}

func NewAuthController(
	authService *service.AuthService,
	userService *service.UserService,
	gamificationService *service.GamificationService,
) *AuthController {
	return &AuthController{
		AuthService:         authService,
		UserService:         userService,
		GamificationService: gamificationService,
	}
}

type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// @Summary Register a learner account
// @Tags auth
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "account info"
// @Success 201 {object} util.Response
// @Router /register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user := &model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     model.Student,
	}

	if err := c.AuthService.Register(user); err != nil {
		if err == util.ErrEmailRegistered {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"id": user.ID, "email": user.Email})
}

// @Summary Log in
// @Description Authenticates the learner, registers the daily check-in and
// @Description feeds the LOGIN quest event.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "credentials"
// @Success 200 {object} util.Response
// @Router /login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	token, user, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		util.Error(ctx, 401, err.Error())
		return
	}

	firstToday, streak, err := c.UserService.RecordLogin(user.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if firstToday {
		// quest/achievement tracking runs on the first login of the day
		if _, err := c.GamificationService.TrackProgress(user.ID, model.EventLogin, 1); err != nil {
			util.LogInternalError(ctx, err)
			return
		}
	}

	util.Success(ctx, gin.H{
		"token":  token,
		"streak": streak,
		"user": gin.H{
			"id":    user.ID,
			"name":  user.Name,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}

// @Summary Current profile
// @Tags auth
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /profile [get]
func (c *AuthController) GetProfile(ctx *gin.Context) {
	user := c.AuthService.GetCurrentUser(ctx)
	if user == nil {
		util.Unauthorized(ctx)
		return
	}
	util.Success(ctx, user)
}
