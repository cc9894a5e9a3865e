package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/repository"
	"github.com/limbo/ascend/internal/repository/mocks"
	"github.com/limbo/ascend/internal/service"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCompletionService(t *testing.T) (*service.CompletionService, *mocks.MockHabitsRepositoryI, *mocks.MockCompletionsRepositoryI, *mocks.MockProfilesRepositoryI) {
	ctrl := gomock.NewController(t)
	habitsRepo := mocks.NewMockHabitsRepositoryI(ctrl)
	completionsRepo := mocks.NewMockCompletionsRepositoryI(ctrl)
	profilesRepo := mocks.NewMockProfilesRepositoryI(ctrl)
	return service.NewCompletionService(habitsRepo, completionsRepo, profilesRepo), habitsRepo, completionsRepo, profilesRepo
}

// toggleWith runs the repository callback against profile as if the completion existed or not.
func toggleWith(profile entity.PlayerProfile, existed bool) func(context.Context, uuid.UUID, uuid.UUID, time.Time, repository.ToggleFunc) (bool, *entity.PlayerProfile, error) {
	return func(_ context.Context, _, _ uuid.UUID, _ time.Time, fn repository.ToggleFunc) (bool, *entity.PlayerProfile, error) {
		p := fn(profile, existed)
		return !existed, &p, nil
	}
}

func TestToggleHabit(t *testing.T) {
	t.Parallel()
	cs, habitsRepo, completionsRepo, _ := newCompletionService(t)
	yesterday := today.AddDate(0, 0, -1)
	lastWeek := today.AddDate(0, 0, -8)
	testCases := []struct {
		Desc         string
		Error        error
		UserID       uuid.UUID
		Want         *service.ToggleResult
		MockPrepFunc func()
	}{
		{
			Desc:   "completion extends streak and reaches a week",
			UserID: userID,
			Want:   &service.ToggleResult{Done: true, XP: 120, DailyStreak: 7, WeeklyStreak: 1},
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
				completionsRepo.EXPECT().Toggle(gomock.Any(), habitID, userID, today, gomock.Any()).
					DoAndReturn(toggleWith(entity.PlayerProfile{XP: 100, DailyStreak: 6, LastCompletedDate: &yesterday}, false))
			},
		},
		{
			Desc:   "completion after a gap restarts streak",
			UserID: userID,
			Want:   &service.ToggleResult{Done: true, XP: 20, DailyStreak: 1, WeeklyStreak: 2},
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
				completionsRepo.EXPECT().Toggle(gomock.Any(), habitID, userID, today, gomock.Any()).
					DoAndReturn(toggleWith(entity.PlayerProfile{DailyStreak: 14, WeeklyStreak: 2, LastCompletedDate: &lastWeek}, false))
			},
		},
		{
			Desc:   "undo revokes xp floored at zero and keeps streak",
			UserID: userID,
			Want:   &service.ToggleResult{Done: false, XP: 0, DailyStreak: 3},
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
				completionsRepo.EXPECT().Toggle(gomock.Any(), habitID, userID, today, gomock.Any()).
					DoAndReturn(toggleWith(entity.PlayerProfile{XP: 5, DailyStreak: 3, LastCompletedDate: &today}, true))
			},
		},
		{
			Desc:   "wrong owner",
			Error:  errorvalues.ErrWrongOwner,
			UserID: uuid.New(),
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
			},
		},
		{
			Desc:   "repository error",
			Error:  errors.New("completions repository error: db error"),
			UserID: userID,
			MockPrepFunc: func() {
				habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
				completionsRepo.EXPECT().Toggle(gomock.Any(), habitID, userID, today, gomock.Any()).
					Return(false, nil, errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := cs.ToggleHabit(ctx, habitID, tc.UserID, today.Add(9*time.Hour))
			if tc.Error != nil {
				assert.EqualError(t, err, tc.Error.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.Want, res)
		})
	}
}

func TestHabitProgress(t *testing.T) {
	t.Parallel()
	cs, habitsRepo, completionsRepo, profilesRepo := newCompletionService(t)
	ctx := context.Background()

	t.Run("daily", func(t *testing.T) {
		habitsRepo.EXPECT().CountByUserID(gomock.Any(), userID).Return(3, nil)
		completionsRepo.EXPECT().CountByUserAndDateRange(gomock.Any(), userID, today, today).
			Return(map[time.Time]int{today: 2}, nil)
		p, err := cs.DailyProgress(ctx, userID, today)
		require.NoError(t, err)
		assert.Equal(t, 2, p.Done)
		assert.Equal(t, 3, p.Total)
		assert.Equal(t, 66.7, p.Percent)
	})
	t.Run("daily without habits", func(t *testing.T) {
		habitsRepo.EXPECT().CountByUserID(gomock.Any(), userID).Return(0, nil)
		completionsRepo.EXPECT().CountByUserAndDateRange(gomock.Any(), userID, today, today).Return(map[time.Time]int{}, nil)
		p, err := cs.DailyProgress(ctx, userID, today)
		require.NoError(t, err)
		assert.Equal(t, 0.0, p.Percent)
	})
	t.Run("weekly", func(t *testing.T) {
		habitsRepo.EXPECT().CountByUserID(gomock.Any(), userID).Return(4, nil)
		completionsRepo.EXPECT().CountByUserAndDateRange(gomock.Any(), userID, today.AddDate(0, 0, -6), today).
			Return(map[time.Time]int{today: 4, today.AddDate(0, 0, -1): 1}, nil)
		series, err := cs.WeeklyProgress(ctx, userID, today)
		require.NoError(t, err)
		require.Len(t, series, 7)
		// 2025-03-12 is a Wednesday
		byLabel := series.ByLabel()
		assert.Equal(t, 100.0, byLabel["Wed"])
		assert.Equal(t, 25.0, byLabel["Tue"])
		assert.Equal(t, 0.0, byLabel["Mon"])
	})
	t.Run("monthly heatmap", func(t *testing.T) {
		from := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC)
		completionsRepo.EXPECT().CountByUserAndDateRange(gomock.Any(), userID, from, to).
			Return(map[time.Time]int{from: 2}, nil)
		series, err := cs.MonthlyHeatmap(ctx, userID, today)
		require.NoError(t, err)
		require.Len(t, series, 31)
		assert.Equal(t, "2025-03-01", series[0].Label)
		assert.Equal(t, 2.0, series[0].Value)
	})
	t.Run("xp", func(t *testing.T) {
		profilesRepo.EXPECT().GetByUserID(gomock.Any(), userID).Return(&entity.PlayerProfile{UserID: userID, XP: 250}, nil)
		p, err := cs.GetXP(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, 250, p.XP)
	})
}

func TestHabitStats(t *testing.T) {
	t.Parallel()
	cs, habitsRepo, completionsRepo, _ := newCompletionService(t)
	ctx := context.Background()
	dates := []time.Time{
		today.AddDate(0, 0, -10), today.AddDate(0, 0, -9), today.AddDate(0, 0, -8), today.AddDate(0, 0, -7),
		today.AddDate(0, 0, -1), today,
	}
	habitsRepo.EXPECT().GetByID(gomock.Any(), habitID).Return(habitCopy(), nil)
	completionsRepo.EXPECT().GetDatesByHabit(gomock.Any(), habitID).Return(dates, nil)
	stats, err := cs.HabitStats(ctx, habitID, userID, today)
	require.NoError(t, err)
	assert.Equal(t, 6, stats.TotalChecks)
	assert.Equal(t, 2, stats.CurrentStreak)
	assert.Equal(t, 4, stats.MaxStreak)
	assert.Equal(t, today, *stats.LastCompletion)
}
