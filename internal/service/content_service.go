package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/internal/util"
	"path/filepath"
	"time"

	"gorm.io/gorm"
)

// ContentService is the admin surface for the course tree and media.
type ContentService struct {
	CourseRepo *repository.CourseRepository
	Storage    *StorageService
}

func NewContentService(courseRepo *repository.CourseRepository, storage *StorageService) *ContentService {
	return &ContentService{
		CourseRepo: courseRepo,
		Storage:    storage,
	}
}

func (s *ContentService) ListAllCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAll(false)
}

func (s *ContentService) CreateCourse(course *model.Course) error {
	return s.CourseRepo.Create(course)
}

func (s *ContentService) UpdateCourse(course *model.Course) error {
	return s.CourseRepo.Update(course)
}

func (s *ContentService) DeleteCourse(id uint) error {
	return s.CourseRepo.Delete(id)
}

func (s *ContentService) CreateUnit(unit *model.Unit) error {
	if _, err := s.CourseRepo.FindByID(unit.CourseID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCourseNotFound
		}
		return err
	}
	return s.CourseRepo.CreateUnit(unit)
}

func (s *ContentService) UpdateUnit(unit *model.Unit) error {
	return s.CourseRepo.UpdateUnit(unit)
}

func (s *ContentService) DeleteUnit(id uint) error {
	return s.CourseRepo.DeleteUnit(id)
}

// CreateLesson validates the parent unit and denormalizes its course id
// onto the lesson row.
func (s *ContentService) CreateLesson(lesson *model.Lesson) error {
	unit, err := s.CourseRepo.FindUnitByID(lesson.UnitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrUnitNotFound
		}
		return err
	}
	lesson.CourseID = unit.CourseID
	return s.CourseRepo.CreateLesson(lesson)
}

func (s *ContentService) UpdateLesson(lesson *model.Lesson) error {
	return s.CourseRepo.UpdateLesson(lesson)
}

func (s *ContentService) DeleteLesson(id uint) error {
	return s.CourseRepo.DeleteLesson(id)
}

// UploadMedia stores a media file under a timestamped name and returns its
// public URL.
func (s *ContentService) UploadMedia(ctx context.Context, originalName string, reader io.Reader, size int64, contentType string) (string, error) {
	ext := filepath.Ext(originalName)
	filename := fmt.Sprintf("media/%d%s", time.Now().UnixNano(), ext)
	return s.Storage.Upload(ctx, filename, reader, size, contentType)
}
