package repository

import (
	"lingoland_backend/internal/model"

	"gorm.io/gorm"
)

type CourseRepository struct {
	DB *gorm.DB
}

func NewCourseRepository(db *gorm.DB) *CourseRepository {
	return &CourseRepository{DB: db}
}

func (r *CourseRepository) FindAll(publishedOnly bool) ([]model.Course, error) {
	var courses []model.Course
	query := r.DB.Order("`order` asc, id asc")
	if publishedOnly {
		query = query.Where("is_published = ?", true)
	}
	err := query.Find(&courses).Error
	return courses, err
}

func (r *CourseRepository) FindByID(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) FindByIDWithTree(id uint) (*model.Course, error) {
	var course model.Course
	err := r.DB.
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("units.`order` asc, units.id asc")
		}).
		Preload("Units.Lessons", func(db *gorm.DB) *gorm.DB {
			return db.Order("lessons.`order` asc, lessons.id asc")
		}).
		First(&course, id).Error
	return &course, err
}

func (r *CourseRepository) Create(course *model.Course) error {
	return r.DB.Create(course).Error
}

func (r *CourseRepository) Update(course *model.Course) error {
	return r.DB.Save(course).Error
}

func (r *CourseRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Course{}, id).Error
}

func (r *CourseRepository) FindUnitByID(id uint) (*model.Unit, error) {
	var unit model.Unit
	err := r.DB.First(&unit, id).Error
	return &unit, err
}

func (r *CourseRepository) CreateUnit(unit *model.Unit) error {
	return r.DB.Create(unit).Error
}

func (r *CourseRepository) UpdateUnit(unit *model.Unit) error {
	return r.DB.Save(unit).Error
}

func (r *CourseRepository) DeleteUnit(id uint) error {
	return r.DB.Delete(&model.Unit{}, id).Error
}

func (r *CourseRepository) FindLessonByID(id uint) (*model.Lesson, error) {
	var lesson model.Lesson
	err := r.DB.First(&lesson, id).Error
	return &lesson, err
}

func (r *CourseRepository) CreateLesson(lesson *model.Lesson) error {
	return r.DB.Create(lesson).Error
}

func (r *CourseRepository) UpdateLesson(lesson *model.Lesson) error {
	return r.DB.Save(lesson).Error
}

func (r *CourseRepository) DeleteLesson(id uint) error {
	return r.DB.Delete(&model.Lesson{}, id).Error
}

func (r *CourseRepository) CountLessonsByUnit(unitID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Where("unit_id = ?", unitID).Count(&count).Error
	return count, err
}

func (r *CourseRepository) CountLessonsByCourse(courseID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.Lesson{}).Where("course_id = ?", courseID).Count(&count).Error
	return count, err
}
