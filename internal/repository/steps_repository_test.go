package repository_test

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/limbo/ascend/internal/repository"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSteps(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	repo := repository.NewStepsRepoWithConn(mock)
	day := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	upsert := regexp.QuoteMeta(`INSERT INTO steps_logs (user_id, day, steps, target) VALUES ($1, $2, $3, $4)`)
	list := regexp.QuoteMeta(`SELECT day, steps, target FROM steps_logs`)
	ctx := context.Background()

	t.Run("upsert", func(t *testing.T) {
		mock.ExpectExec(upsert).WithArgs(userID, day, 9500, 8000).WillReturnResult(pgxmock.NewResult("INSERT", 1))
		assert.NoError(t, repo.Upsert(ctx, &entity.StepsLog{UserID: userID, Date: day, Steps: 9500, Target: 8000}))
	})
	t.Run("upsert error", func(t *testing.T) {
		mock.ExpectExec(upsert).WithArgs(userID, day, 1, 8000).WillReturnError(errors.New("db error"))
		assert.EqualError(t, repo.Upsert(ctx, &entity.StepsLog{UserID: userID, Date: day, Steps: 1, Target: 8000}),
			"saving steps error: db error")
	})
	t.Run("list", func(t *testing.T) {
		from := day.AddDate(0, 0, -6)
		mock.ExpectQuery(list).WithArgs(userID, from, day).
			WillReturnRows(pgxmock.NewRows([]string{"day", "steps", "target"}).AddRow(day, 9500, 8000))
		logs, err := repo.ListInRange(ctx, userID, from, day)
		require.NoError(t, err)
		assert.Equal(t, []entity.StepsLog{{UserID: userID, Date: day, Steps: 9500, Target: 8000}}, logs)
	})
}
