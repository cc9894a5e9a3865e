package repository_test

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/repository"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfiles(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewProfilesRepoWithConn(mock)
	get := regexp.QuoteMeta(`SELECT xp, daily_streak, weekly_streak, last_completed_date, protein_streak`)
	setStreak := regexp.QuoteMeta(`UPDATE player_profiles SET protein_streak = $1 WHERE user_id = $2;`)
	last := time.Date(2025, 1, 7, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("get", func(t *testing.T) {
		mock.ExpectQuery(get).WithArgs(userID).
			WillReturnRows(pgxmock.NewRows([]string{"xp", "daily_streak", "weekly_streak", "last_completed_date", "protein_streak"}).
				AddRow(120, 7, 1, &last, 3))
		p, err := repo.GetByUserID(ctx, userID)
		require.NoError(t, err)
		assert.Equal(t, userID, p.UserID)
		assert.Equal(t, 120, p.XP)
		assert.Equal(t, 1, p.WeeklyStreak)
		assert.Equal(t, last, *p.LastCompletedDate)
		assert.Equal(t, 3, p.ProteinStreak)
	})
	t.Run("get missing", func(t *testing.T) {
		mock.ExpectQuery(get).WithArgs(userID).WillReturnError(pgx.ErrNoRows)
		_, err := repo.GetByUserID(ctx, userID)
		assert.ErrorIs(t, err, errorvalues.ErrProfileNotFound)
	})
	t.Run("set protein streak", func(t *testing.T) {
		mock.ExpectExec(setStreak).WithArgs(4, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 1))
		assert.NoError(t, repo.SetProteinStreak(ctx, userID, 4))
	})
	t.Run("set protein streak missing", func(t *testing.T) {
		mock.ExpectExec(setStreak).WithArgs(4, userID).WillReturnResult(pgxmock.NewResult("UPDATE", 0))
		assert.ErrorIs(t, repo.SetProteinStreak(ctx, userID, 4), errorvalues.ErrProfileNotFound)
	})
}
