package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/repository"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReflections(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewReflectionsRepoWithConn(mock)
	day := time.Date(2025, 2, 3, 0, 0, 0, 0, time.UTC)
	r := entity.DailyReflection{UserID: userID, Date: day, Mood: 7, Note: "good sleep"}
	upsert := regexp.QuoteMeta(`INSERT INTO daily_reflections (user_id, day, mood, note) VALUES ($1, $2, $3, $4)`)
	get := regexp.QuoteMeta(`SELECT mood, note FROM daily_reflections WHERE user_id = $1 AND day = $2;`)
	list := regexp.QuoteMeta(`SELECT day, mood, note FROM daily_reflections WHERE user_id = $1`)
	ctx := context.Background()

	t.Run("upsert", func(t *testing.T) {
		mock.ExpectExec(upsert).WithArgs(userID, day, 7, "good sleep").WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Upsert(ctx, &r))
	})
	t.Run("upsert unknown user", func(t *testing.T) {
		mock.ExpectExec(upsert).WithArgs(userID, day, 7, "good sleep").WillReturnError(&pgconn.PgError{Code: "23503"})
		assert.ErrorIs(t, repo.Upsert(ctx, &r), errorvalues.ErrUserNotFound)
	})
	t.Run("get", func(t *testing.T) {
		mock.ExpectQuery(get).WithArgs(userID, day).WillReturnRows(pgxmock.NewRows([]string{"mood", "note"}).AddRow(7, "good sleep"))
		got, err := repo.GetByDate(ctx, userID, day)
		require.NoError(t, err)
		assert.Equal(t, r, *got)
	})
	t.Run("get missing", func(t *testing.T) {
		mock.ExpectQuery(get).WithArgs(userID, day).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByDate(ctx, userID, day)
		assert.ErrorIs(t, err, errorvalues.ErrReflectionNotFound)
	})
	t.Run("list", func(t *testing.T) {
		prev := day.AddDate(0, 0, -1)
		mock.ExpectQuery(list).WithArgs(userID, 2).WillReturnRows(pgxmock.NewRows([]string{"day", "mood", "note"}).
			AddRow(day, 7, "good sleep").
			AddRow(prev, 4, ""))
		got, err := repo.ListByUserID(ctx, userID, 2)
		require.NoError(t, err)
		require.Len(t, got, 2)
		assert.Equal(t, day, got[0].Date)
		assert.Equal(t, 4, got[1].Mood)
	})
	t.Run("list error", func(t *testing.T) {
		mock.ExpectQuery(list).WithArgs(userID, 2).WillReturnError(errors.New("db error"))
		_, err := repo.ListByUserID(ctx, userID, 2)
		assert.Error(t, err)
	})
}
