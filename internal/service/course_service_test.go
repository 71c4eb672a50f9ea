package service

import (
	"testing"

	"lingoland_backend/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleteLessonIdempotent(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "amy")
	course := e.createCourse(t, 2, 2)
	lesson := course.Units[0].Lessons[0]

	first, err := e.course.CompleteLesson(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.True(t, first.NewlyCompleted)
	require.NotNil(t, first.LessonRewards)
	assert.Equal(t, 10, first.LessonRewards.Gold)
	assert.Equal(t, 10, first.LessonRewards.XP)

	goldAfterFirst := e.stats(t, user.ID).Gold

	second, err := e.course.CompleteLesson(user.ID, lesson.ID)
	require.NoError(t, err)
	assert.False(t, second.NewlyCompleted)
	assert.Nil(t, second.LessonRewards)
	assert.False(t, second.UnitCompleted)

	assert.Equal(t, goldAfterFirst, e.stats(t, user.ID).Gold)
}

func TestUnitRewardPaidExactlyOnce(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "ben")
	course := e.createCourse(t, 2, 2)
	unit := course.Units[0]

	r1, err := e.course.CompleteLesson(user.ID, unit.Lessons[0].ID)
	require.NoError(t, err)
	assert.False(t, r1.UnitCompleted)

	r2, err := e.course.CompleteLesson(user.ID, unit.Lessons[1].ID)
	require.NoError(t, err)
	assert.True(t, r2.UnitCompleted)
	require.NotNil(t, r2.UnitRewards)
	assert.Equal(t, 50, r2.UnitRewards.Gold)

	// only half the course is done
	assert.False(t, r2.CourseComplete)

	// replaying the last lesson must not re-trigger the unit milestone
	r3, err := e.course.CompleteLesson(user.ID, unit.Lessons[1].ID)
	require.NoError(t, err)
	assert.False(t, r3.UnitCompleted)
	assert.Nil(t, r3.UnitRewards)
}

func TestCourseCompletionCascade(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "coco")
	course := e.createCourse(t, 1, 2)
	unit := course.Units[0]

	_, err := e.course.CompleteLesson(user.ID, unit.Lessons[0].ID)
	require.NoError(t, err)

	last, err := e.course.CompleteLesson(user.ID, unit.Lessons[1].ID)
	require.NoError(t, err)

	// the final lesson settles lesson, unit and course in one response
	assert.True(t, last.NewlyCompleted)
	assert.True(t, last.UnitCompleted)
	assert.True(t, last.CourseComplete)
	require.NotNil(t, last.CourseRewards)
	assert.Equal(t, 500, last.CourseRewards.Gold)
	assert.Equal(t, 5, last.CourseRewards.Diamond)
}

func TestCompleteLessonUnknown(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "dan")

	_, err := e.course.CompleteLesson(user.ID, 9999)
	assert.ErrorIs(t, err, util.ErrLessonNotFound)
}

func TestGetCourseOverlay(t *testing.T) {
	e := newTestEnv(t)
	user := e.createUser(t, "eva")
	course := e.createCourse(t, 1, 3)
	lesson := course.Units[0].Lessons[1]

	_, err := e.course.CompleteLesson(user.ID, lesson.ID)
	require.NoError(t, err)

	view, err := e.course.GetCourse(course.ID, user.ID)
	require.NoError(t, err)
	assert.Equal(t, []uint{lesson.ID}, view.CompletedLessonIDs)

	// anonymous view carries an empty overlay
	anon, err := e.course.GetCourse(course.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, anon.CompletedLessonIDs)
}
