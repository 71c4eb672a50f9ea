package util

import "errors"

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrEmailRegistered     = errors.New("email is already registered")
	ErrPermissionDenied    = errors.New("permission denied")
	ErrCourseNotFound      = errors.New("course not found")
	ErrUnitNotFound        = errors.New("unit not found")
	ErrLessonNotFound      = errors.New("lesson not found")
	ErrQuestNotFound       = errors.New("quest not found")
	ErrQuestNotStarted     = errors.New("quest has no progress today")
	ErrQuestNotCompleted   = errors.New("quest target not reached yet")
	ErrQuestAlreadyClaimed = errors.New("quest reward already claimed")
	ErrGameNotFound        = errors.New("practice game not found")
	ErrItemNotFound        = errors.New("item not found")
	ErrItemNotSellable     = errors.New("item is not for sale")
	ErrItemAlreadyOwned    = errors.New("item already owned")
	ErrItemNotOwned        = errors.New("item not owned")
	ErrInsufficientFunds   = errors.New("not enough currency")
	ErrCardNotFound        = errors.New("handbook card not found")
)
