package service

import (
	"errors"
	"lingoland_backend/internal/model"
	"lingoland_backend/internal/repository"
	"lingoland_backend/internal/util"
	"lingoland_backend/pkg/logger"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Platform defaults for entities whose reward was never configured.
var (
	defaultLessonReward = model.RewardBundle{Gold: 10, XP: 10}
	defaultUnitReward   = model.RewardBundle{Gold: 50, XP: 100}
	defaultCourseReward = model.RewardBundle{Gold: 500, Diamond: 5}
)

// CourseService serves the course catalog and runs the lesson completion
// chain: lesson -> unit milestone -> course milestone.
type CourseService struct {
	CourseRepo     *repository.CourseRepository
	CompletionRepo *repository.CompletionRepository
	MilestoneRepo  *repository.MilestoneRepository
	Rewards        *RewardService
}

func NewCourseService(
	courseRepo *repository.CourseRepository,
	completionRepo *repository.CompletionRepository,
	milestoneRepo *repository.MilestoneRepository,
	rewards *RewardService,
) *CourseService {
	return &CourseService{
		CourseRepo:     courseRepo,
		CompletionRepo: completionRepo,
		MilestoneRepo:  milestoneRepo,
		Rewards:        rewards,
	}
}

// CompletionResult is the payload returned to the client after a lesson
// completion, carrying every reward the completion cascaded into.
type CompletionResult struct {
	NewlyCompleted bool          `json:"newlyCompleted"`
	LessonRewards  *Disbursement `json:"lessonRewards,omitempty"`
	UnitCompleted  bool          `json:"unitCompleted"`
	UnitRewards    *Disbursement `json:"unitRewards,omitempty"`
	CourseComplete bool          `json:"courseCompleted"`
	CourseRewards  *Disbursement `json:"courseRewards,omitempty"`
}

func (s *CourseService) ListCourses() ([]model.Course, error) {
	return s.CourseRepo.FindAll(true)
}

// CourseView is a course tree with the learner's completion overlay.
type CourseView struct {
	model.Course
	CompletedLessonIDs []uint `json:"completedLessonIds"`
}

func (s *CourseService) GetCourse(courseID, userID uint) (*CourseView, error) {
	course, err := s.CourseRepo.FindByIDWithTree(courseID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}

	view := &CourseView{Course: *course, CompletedLessonIDs: []uint{}}
	if userID != 0 {
		completions, err := s.CompletionRepo.ListByUserAndCourse(userID, courseID)
		if err != nil {
			return nil, err
		}
		for _, c := range completions {
			if c.IsCompleted {
				view.CompletedLessonIDs = append(view.CompletedLessonIDs, c.LessonID)
			}
		}
	}
	return view, nil
}

// CompleteLesson records the completion and pays out whatever milestones it
// triggers. Lesson rewards are granted only when the completion row is
// first created; replaying a lesson is free practice. A lesson whose parent
// unit is missing is logged and ignored, matching the tolerant behavior of
// the completion endpoint.
func (s *CourseService) CompleteLesson(userID, lessonID uint) (*CompletionResult, error) {
	lesson, err := s.CourseRepo.FindLessonByID(lessonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrLessonNotFound
		}
		return nil, err
	}

	unit, err := s.CourseRepo.FindUnitByID(lesson.UnitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Log.Warn("lesson has no parent unit, completion skipped",
				zap.Uint("lessonId", lessonID), zap.Uint("unitId", lesson.UnitID))
			return &CompletionResult{}, nil
		}
		return nil, err
	}

	created, err := s.CompletionRepo.CreateIfAbsent(&model.LessonCompletion{
		UserID:      userID,
		LessonID:    lesson.ID,
		UnitID:      lesson.UnitID,
		CourseID:    lesson.CourseID,
		IsCompleted: true,
	})
	if err != nil {
		return nil, err
	}

	result := &CompletionResult{NewlyCompleted: created}

	if created {
		bundle := lesson.Reward
		if bundle.IsZero() {
			bundle = defaultLessonReward
		}
		result.LessonRewards, err = s.Rewards.GiveRewards(userID, bundle, "lesson")
		if err != nil {
			return nil, err
		}
	}

	if err := s.evaluateUnit(userID, unit, result); err != nil {
		return nil, err
	}

	return result, nil
}

// evaluateUnit grants the unit reward when every lesson in the unit is
// completed, then cascades into course evaluation. The tombstone insert is
// the only dedup mechanism and is claimed before disbursing, so the reward
// is paid at most once even under concurrent completions.
func (s *CourseService) evaluateUnit(userID uint, unit *model.Unit, result *CompletionResult) error {
	total, err := s.CourseRepo.CountLessonsByUnit(unit.ID)
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}

	completed, err := s.CompletionRepo.CountCompletedInUnit(userID, unit.ID)
	if err != nil {
		return err
	}
	if completed < total {
		return nil
	}

	claimed, err := s.MilestoneRepo.ClaimOnce(userID, unit.ID, model.MilestoneUnit)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	bundle := unit.Reward
	if bundle.IsZero() {
		bundle = defaultUnitReward
	}
	result.UnitCompleted = true
	result.UnitRewards, err = s.Rewards.GiveRewards(userID, bundle, "unit")
	if err != nil {
		return err
	}

	return s.evaluateCourse(userID, unit.CourseID, result)
}

// evaluateCourse mirrors unit evaluation at course scope, comparing raw
// lesson counts across the whole course rather than sibling milestones.
func (s *CourseService) evaluateCourse(userID, courseID uint, result *CompletionResult) error {
	course, err := s.CourseRepo.FindByID(courseID)
	if err != nil {
		return err
	}

	total, err := s.CourseRepo.CountLessonsByCourse(courseID)
	if err != nil {
		return err
	}
	if total == 0 {
		return nil
	}

	completed, err := s.CompletionRepo.CountCompletedInCourse(userID, courseID)
	if err != nil {
		return err
	}
	if completed < total {
		return nil
	}

	claimed, err := s.MilestoneRepo.ClaimOnce(userID, courseID, model.MilestoneCourse)
	if err != nil {
		return err
	}
	if !claimed {
		return nil
	}

	bundle := course.Reward
	if bundle.IsZero() {
		bundle = defaultCourseReward
	}
	result.CourseComplete = true
	result.CourseRewards, err = s.Rewards.GiveRewards(userID, bundle, "course")
	return err
}
