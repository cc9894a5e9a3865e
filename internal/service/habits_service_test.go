package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/repository/mocks"
	"github.com/limbo/ascend/internal/service"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/limbo/ascend/pkg/progress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Variables for tests
var (
	userID    = uuid.New()
	habitID   = uuid.New()
	today     = time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)
	testHabit = entity.Habit{
		ID:         habitID,
		UserID:     userID,
		Name:       "cold shower",
		Time:       "07:15",
		Difficulty: progress.DifficultyMedium,
	}
)

func habitCopy() *entity.Habit {
	h := testHabit
	return &h
}

func TestCreateHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	hs := service.NewHabitsService(repo)
	valid := service.HabitRequest{Name: "cold shower", Time: "07:15", Difficulty: "medium"}
	testCases := []struct {
		Desc         string
		Error        error
		Req          service.HabitRequest
		MockPrepFunc func()
	}{
		{
			Desc: "created",
			Req:  valid,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), &entity.Habit{
					UserID:     userID,
					Name:       "cold shower",
					Time:       "07:15",
					Difficulty: progress.DifficultyMedium,
				}).Return(habitID, nil)
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
			},
		},
		{
			Desc:         "bad time",
			Error:        errorvalues.ErrValidation,
			Req:          service.HabitRequest{Name: "x", Time: "25:00", Difficulty: "easy"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "bad difficulty",
			Error:        errorvalues.ErrValidation,
			Req:          service.HabitRequest{Name: "x", Time: "07:00", Difficulty: "insane"},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "duplicate name",
			Error: errorvalues.ErrUserHasHabit,
			Req:   valid,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrUserHasHabit)
			},
		},
		{
			Desc:  "owner missing",
			Error: errorvalues.ErrUserNotFound,
			Req:   valid,
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(uuid.Nil, errorvalues.ErrOwnerNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			h, err := hs.CreateHabit(ctx, userID, &tc.Req)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, testHabit, *h)
			}
		})
	}
}

func TestGetUserHabits(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	hs := service.NewHabitsService(repo)
	ctx := context.Background()

	t.Run("passes today as date", func(t *testing.T) {
		repo.EXPECT().GetByUserID(gomock.Any(), userID, today, 10, 0).Return([]*entity.Habit{habitCopy()}, nil)
		habits, err := hs.GetUserHabits(ctx, userID, today.Add(15*time.Hour), service.PaginationOpts{Limit: 10})
		require.NoError(t, err)
		assert.Len(t, habits, 1)
	})
	t.Run("bad pagination", func(t *testing.T) {
		_, err := hs.GetUserHabits(ctx, userID, today, service.PaginationOpts{Limit: 0})
		assert.ErrorIs(t, err, errorvalues.ErrValidation)
	})
}

func TestUpdateHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	hs := service.NewHabitsService(repo)
	req := service.HabitRequest{Name: "ice bath", Time: "06:00", Difficulty: "hard"}
	ctx := context.Background()

	t.Run("updated", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, h *entity.Habit) error {
			assert.Equal(t, "ice bath", h.Name)
			assert.Equal(t, progress.DifficultyHard, h.Difficulty)
			return nil
		})
		h, err := hs.UpdateHabit(ctx, habitID, userID, &req)
		require.NoError(t, err)
		assert.Equal(t, "06:00", h.Time)
	})
	t.Run("wrong owner", func(t *testing.T) {
		repo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
		_, err := hs.UpdateHabit(ctx, habitID, uuid.New(), &req)
		assert.ErrorIs(t, err, errorvalues.ErrWrongOwner)
	})
}

func TestDeleteHabit(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockHabitsRepositoryI(ctrl)
	hs := service.NewHabitsService(repo)
	testCases := []struct {
		Desc         string
		Error        error
		UserID       uuid.UUID
		MockPrepFunc func()
	}{
		{
			Desc:   "deleted",
			UserID: userID,
			MockPrepFunc: func() {
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
				repo.EXPECT().Delete(gomock.Any(), habitID).Return(nil)
			},
		},
		{
			Desc:   "not found",
			Error:  errorvalues.ErrHabitNotFound,
			UserID: userID,
			MockPrepFunc: func() {
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(nil, errorvalues.ErrHabitNotFound)
			},
		},
		{
			Desc:   "wrong owner",
			Error:  errorvalues.ErrWrongOwner,
			UserID: uuid.New(),
			MockPrepFunc: func() {
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
			},
		},
		{
			Desc:   "db error",
			Error:  errors.New("habits repository error: db error"),
			UserID: userID,
			MockPrepFunc: func() {
				repo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
				repo.EXPECT().Delete(gomock.Any(), habitID).Return(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			err := hs.DeleteHabit(ctx, habitID, tc.UserID)
			if tc.Error == nil {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, tc.Error.Error())
		})
	}
}
