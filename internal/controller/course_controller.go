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

type CourseController struct {
	CourseService       *service.CourseService
	GamificationService *service.GamificationService
}

func NewCourseController(courseService *service.CourseService, gamificationService *service.GamificationService) *CourseController {
	return &CourseController{
		CourseService:       courseService,
		GamificationService: gamificationService,
	}
}

// @Summary List published courses
// @Tags courses
// @Produce json
// @Success 200 {object} util.Response
// @Router /courses [get]
func (c *CourseController) ListCourses(ctx *gin.Context) {
	courses, err := c.CourseService.ListCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Course tree with the learner's completion overlay
// @Tags courses
// @Produce json
// @Param id path int true "course id"
// @Success 200 {object} util.Response
// @Router /courses/{id} [get]
func (c *CourseController) GetCourse(ctx *gin.Context) {
	courseID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var userID uint
	if claims := util.GetUserFromContext(ctx); claims != nil {
		userID = claims.UserID
	}

	view, err := c.CourseService.GetCourse(uint(courseID), userID)
	if err != nil {
		if err == util.ErrCourseNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, view)
}

type CompleteLessonRequest struct {
	DurationSec int `json:"durationSec"`
}

// @Summary Complete a lesson
// @Description Records the completion, cascades unit/course milestone
// @Description rewards, and feeds the quest/achievement tracker. Replaying
// @Description an already completed lesson grants nothing.
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "lesson id"
// @Param body body CompleteLessonRequest false "optional time spent"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /lessons/{id}/complete [post]
func (c *CourseController) CompleteLesson(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	lessonID, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var req CompleteLessonRequest
	_ = ctx.ShouldBindJSON(&req)

	result, err := c.CourseService.CompleteLesson(claims.UserID, uint(lessonID))
	if err != nil {
		if err == util.ErrLessonNotFound {
			util.NotFound(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}

	var badges []model.Badge
	if result.NewlyCompleted {
		badges, err = c.GamificationService.TrackProgress(claims.UserID, model.EventLessonsCompleted, 1)
		if err != nil {
			logger.Log.Error("lesson quest tracking failed",
				zap.Uint("userId", claims.UserID), zap.Error(err))
		}
	}
	if req.DurationSec > 0 {
		minutes := req.DurationSec / 60
		if minutes > 0 {
			if _, err := c.GamificationService.TrackProgress(claims.UserID, model.EventLearningTime, minutes); err != nil {
				logger.Log.Error("learning time tracking failed",
					zap.Uint("userId", claims.UserID), zap.Error(err))
			}
		}
	}

	util.Success(ctx, gin.H{
		"completion":     result,
		"unlockedBadges": badges,
	})
}
