package controller

import (
	"strconv"

	"lingoland_backend/internal/model"
	"lingoland_backend/internal/service"
	"lingoland_backend/internal/util"

	"github.com/gin-gonic/gin"
)

// ContentController is the admin surface for the course tree and media
// uploads.
type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// @Summary All courses including unpublished
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/courses [get]
func (c *ContentController) ListAllCourses(ctx *gin.Context) {
	courses, err := c.ContentService.ListAllCourses()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, courses)
}

// @Summary Create a course
// @Tags admin
// @Accept json
// @Produce json
// @Param body body model.Course true "course"
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/courses [post]
func (c *ContentController) CreateCourse(ctx *gin.Context) {
	var course model.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ContentService.CreateCourse(&course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, course)
}

// @Summary Update a course
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "course id"
// @Param body body model.Course true "course"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/courses/{id} [put]
func (c *ContentController) UpdateCourse(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}

	var course model.Course
	if err := ctx.ShouldBindJSON(&course); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	course.ID = uint(id)
	if err := c.ContentService.UpdateCourse(&course); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, course)
}

// @Summary Delete a course
// @Tags admin
// @Produce json
// @Param id path int true "course id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/courses/{id} [delete]
func (c *ContentController) DeleteCourse(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid course id")
		return
	}
	if err := c.ContentService.DeleteCourse(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Create a unit
// @Tags admin
// @Accept json
// @Produce json
// @Param body body model.Unit true "unit"
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/units [post]
func (c *ContentController) CreateUnit(ctx *gin.Context) {
	var unit model.Unit
	if err := ctx.ShouldBindJSON(&unit); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ContentService.CreateUnit(&unit); err != nil {
		if err == util.ErrCourseNotFound {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, unit)
}

// @Summary Update a unit
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "unit id"
// @Param body body model.Unit true "unit"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/units/{id} [put]
func (c *ContentController) UpdateUnit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid unit id")
		return
	}

	var unit model.Unit
	if err := ctx.ShouldBindJSON(&unit); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	unit.ID = uint(id)
	if err := c.ContentService.UpdateUnit(&unit); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, unit)
}

// @Summary Delete a unit
// @Tags admin
// @Produce json
// @Param id path int true "unit id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/units/{id} [delete]
func (c *ContentController) DeleteUnit(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid unit id")
		return
	}
	if err := c.ContentService.DeleteUnit(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Create a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Param body body model.Lesson true "lesson"
// @Security ApiKeyAuth
// @Success 201 {object} util.Response
// @Router /admin/lessons [post]
func (c *ContentController) CreateLesson(ctx *gin.Context) {
	var lesson model.Lesson
	if err := ctx.ShouldBindJSON(&lesson); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if err := c.ContentService.CreateLesson(&lesson); err != nil {
		if err == util.ErrUnitNotFound {
			util.BadRequest(ctx, err.Error())
			return
		}
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, lesson)
}

// @Summary Update a lesson
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "lesson id"
// @Param body body model.Lesson true "lesson"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/lessons/{id} [put]
func (c *ContentController) UpdateLesson(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}

	var lesson model.Lesson
	if err := ctx.ShouldBindJSON(&lesson); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	lesson.ID = uint(id)
	if err := c.ContentService.UpdateLesson(&lesson); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, lesson)
}

// @Summary Delete a lesson
// @Tags admin
// @Produce json
// @Param id path int true "lesson id"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/lessons/{id} [delete]
func (c *ContentController) DeleteLesson(ctx *gin.Context) {
	id, err := strconv.ParseUint(ctx.Param("id"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid lesson id")
		return
	}
	if err := c.ContentService.DeleteLesson(uint(id)); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// @Summary Upload a media file
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "media file"
// @Security ApiKeyAuth
// @Success 200 {object} util.Response
// @Router /admin/media [post]
func (c *ContentController) UploadMedia(ctx *gin.Context) {
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

	url, err := c.ContentService.UploadMedia(
		ctx.Request.Context(),
		fileHeader.Filename,
		file,
		fileHeader.Size,
		fileHeader.Header.Get("Content-Type"),
	)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"url": url})
}
