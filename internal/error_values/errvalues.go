package errorvalues

import "errors"

var (
	ErrUserExists       = errors.New("such user already exists")
	ErrUserNotFound     = errors.New("user doesn't exists")
	ErrWrongCredentials = errors.New("wrong name or password")
	ErrInvalidToken     = errors.New("invalid token")

	ErrHabitNotFound = errors.New("habit doesn't exist")
	ErrUserHasHabit  = errors.New("user already has habit with such name")
	ErrOwnerNotFound = errors.New("habit owner doesn't exist")
	ErrWrongOwner    = errors.New("habit belongs to another user")

	ErrCompletionExists   = errors.New("habit already completed on this date")
	ErrProfileNotFound    = errors.New("player profile doesn't exist")

	ErrReflectionNotFound = errors.New("no reflection for this date")
	ErrValidation         = errors.New("validation error")
)
