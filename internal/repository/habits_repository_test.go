package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/repository"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/limbo/ascend/pkg/progress"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	userID = uuid.New()
)

func TestCreateHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitsRepoWithConn(mock)
	habit := entity.Habit{
		UserID:     userID,
		Name:       "read",
		Time:       "07:30",
		Difficulty: progress.DifficultyMedium,
	}
	hid := uuid.New()
	query := regexp.QuoteMeta(`INSERT INTO habits (user_id, name, scheduled_at, difficulty) VALUES ($1, $2, $3, $4) RETURNING id;`)
	testCases := []struct {
		Desc         string
		Error        error
		MockPrepFunc func()
	}{
		{
			Desc:  "created",
			Error: nil,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(habit.UserID, habit.Name, habit.Time, habit.Difficulty).
					WillReturnRows(pgxmock.NewRows([]string{"id"}).AddRow(hid))
			},
		},
		{
			Desc:  "unique violation",
			Error: errorvalues.ErrUserHasHabit,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(habit.UserID, habit.Name, habit.Time, habit.Difficulty).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
		},
		{
			Desc:  "fk violation",
			Error: errorvalues.ErrOwnerNotFound,
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(habit.UserID, habit.Name, habit.Time, habit.Difficulty).
					WillReturnError(&pgconn.PgError{Code: "23503"})
			},
		},
		{
			Desc:  "db error",
			Error: errors.New("creating habit db error: db error"),
			MockPrepFunc: func() {
				mock.ExpectQuery(query).WithArgs(habit.UserID, habit.Name, habit.Time, habit.Difficulty).
					WillReturnError(errors.New("db error"))
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			id, err := repo.Create(ctx, &habit)
			if tc.Error == nil {
				assert.NoError(t, err)
				assert.Equal(t, hid, id)
				return
			}
			assert.EqualError(t, err, tc.Error.Error())
		})
	}
}

func TestGetHabitByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitsRepoWithConn(mock)
	habit := entity.Habit{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "stretch",
		Time:       "21:00",
		Difficulty: progress.DifficultyEasy,
		CreatedAt:  time.Now(),
		UpdatedAt:  time.Now(),
	}
	query := regexp.QuoteMeta(`SELECT user_id, name, scheduled_at, difficulty, created_at, updated_at FROM habits WHERE id = $1;`)
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectQuery(query).
			WithArgs(habit.ID).
			WillReturnRows(pgxmock.NewRows([]string{"user_id", "name", "scheduled_at", "difficulty", "created_at", "updated_at"}).
				AddRow(habit.UserID, habit.Name, habit.Time, habit.Difficulty, habit.CreatedAt, habit.UpdatedAt),
			)
		result, err := repo.GetByID(ctx, habit.ID)
		assert.NoError(t, err)
		assert.Equal(t, habit, *result)
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(habit.ID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByID(ctx, habit.ID)
		assert.ErrorIs(t, err, errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(habit.ID).WillReturnError(errors.New("db error"))
		_, err := repo.GetByID(ctx, habit.ID)
		assert.Error(t, err)
	})
}

func TestGetHabitsByUserID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitsRepoWithConn(mock)
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	now := time.Now()
	habits := []*entity.Habit{
		{ID: uuid.New(), UserID: userID, Name: "run", Time: "06:00", Difficulty: progress.DifficultyHard, Done: true, CreatedAt: now, UpdatedAt: now},
		{ID: uuid.New(), UserID: userID, Name: "read", Time: "08:00", Difficulty: progress.DifficultyEasy, CreatedAt: now, UpdatedAt: now},
	}
	query := regexp.QuoteMeta(`SELECT h.id, h.user_id, h.name, h.scheduled_at, h.difficulty`)
	columns := []string{"id", "user_id", "name", "scheduled_at", "difficulty", "created_at", "updated_at", "done"}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		rows := pgxmock.NewRows(columns)
		for _, h := range habits {
			rows.AddRow(h.ID, h.UserID, h.Name, h.Time, h.Difficulty, h.CreatedAt, h.UpdatedAt, h.Done)
		}
		mock.ExpectQuery(query).WithArgs(userID, day, 10, 0).WillReturnRows(rows)
		result, err := repo.GetByUserID(ctx, userID, day, 10, 0)
		assert.NoError(t, err)
		require.Len(t, result, 2)
		for i := range result {
			assert.Equal(t, *habits[i], *result[i])
		}
	})
	t.Run("empty", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, day, 10, 20).WillReturnRows(pgxmock.NewRows(columns))
		result, err := repo.GetByUserID(ctx, userID, day, 10, 20)
		assert.NoError(t, err)
		assert.Empty(t, result)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectQuery(query).WithArgs(userID, day, 1, 1).WillReturnError(errors.New("db error"))
		_, err := repo.GetByUserID(ctx, userID, day, 1, 1)
		assert.Error(t, err)
	})
}

func TestCountHabits(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`SELECT COUNT(*) FROM habits WHERE user_id = $1;`)
	mock.ExpectQuery(query).WithArgs(userID).WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(4))
	count, err := repo.CountByUserID(context.Background(), userID)
	assert.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestUpdateHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`UPDATE habits SET name = $1, scheduled_at = $2, difficulty = $3, updated_at = NOW() WHERE id = $4;`)
	habit := entity.Habit{
		ID:         uuid.New(),
		UserID:     userID,
		Name:       "meditate",
		Time:       "22:15",
		Difficulty: progress.DifficultyMedium,
	}
	ctx := context.Background()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(habit.Name, habit.Time, habit.Difficulty, habit.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.Update(ctx, &habit))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(habit.Name, habit.Time, habit.Difficulty, habit.ID).
			WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.Update(ctx, &habit), errorvalues.ErrHabitNotFound)
	})
	t.Run("name taken", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(habit.Name, habit.Time, habit.Difficulty, habit.ID).
			WillReturnError(&pgconn.PgError{Code: "23505"})
		assert.ErrorIs(t, repo.Update(ctx, &habit), errorvalues.ErrUserHasHabit)
	})
}

func TestDeleteHabit(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewHabitsRepoWithConn(mock)
	query := regexp.QuoteMeta(`DELETE FROM habits WHERE id = $1;`)
	ctx := context.Background()
	id := uuid.New()
	t.Run("success", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 1))
		assert.NoError(t, repo.Delete(ctx, id))
	})
	t.Run("not found", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnResult(pgxmock.NewResult("DELETE", 0))
		assert.ErrorIs(t, repo.Delete(ctx, id), errorvalues.ErrHabitNotFound)
	})
	t.Run("db error", func(t *testing.T) {
		mock.ExpectExec(query).WithArgs(id).WillReturnError(errors.New("db error"))
		assert.Error(t, repo.Delete(ctx, id))
	})
}
