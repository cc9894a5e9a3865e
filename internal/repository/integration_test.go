//go:build integration

package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/repository"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/limbo/ascend/pkg/progress"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

type testPGConfig struct {
	connStr string
}

func (cfg *testPGConfig) ConnString() string {
	return cfg.connStr
}

func TestRepositoriesIntegrational(t *testing.T) {
	pool := repository.Connect(setupTestDB(t))
	users := repository.NewUsersRepoWithConn(pool)
	habits := repository.NewHabitsRepoWithConn(pool)
	completions := repository.NewCompletionsRepoWithConn(pool)
	profiles := repository.NewProfilesRepoWithConn(pool)
	nutrition := repository.NewNutritionRepoWithConn(pool)
	ctx := context.Background()
	today := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	user := entity.User{Name: "integration_user", PasswordHash: "hash"}
	require.NoError(t, users.Create(ctx, &user))
	t.Run("profile created with user", func(t *testing.T) {
		p, err := profiles.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 0, p.XP)
		assert.Nil(t, p.LastCompletedDate)
	})
	t.Run("duplicate user", func(t *testing.T) {
		err := users.Create(ctx, &entity.User{Name: "integration_user", PasswordHash: "hash"})
		assert.ErrorIs(t, err, errorvalues.ErrUserExists)
	})

	habitID, err := habits.Create(ctx, &entity.Habit{
		UserID:     user.ID,
		Name:       "push ups",
		Time:       "07:00",
		Difficulty: progress.DifficultyHard,
	})
	require.NoError(t, err)
	toggle := func(p entity.PlayerProfile, existed bool) entity.PlayerProfile {
		state, _ := progress.ToggleCompletion(p.State(), progress.DifficultyHard, existed, today)
		p.Apply(state)
		return p
	}
	t.Run("toggle on and off", func(t *testing.T) {
		done, p, err := completions.Toggle(ctx, habitID, user.ID, today, toggle)
		require.NoError(t, err)
		assert.True(t, done)
		assert.Equal(t, 30, p.XP)
		assert.Equal(t, 1, p.DailyStreak)

		list, err := habits.GetByUserID(ctx, user.ID, today, 10, 0)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.True(t, list[0].Done)

		done, p, err = completions.Toggle(ctx, habitID, user.ID, today, toggle)
		require.NoError(t, err)
		assert.False(t, done)
		assert.Equal(t, 0, p.XP)
		assert.Equal(t, 1, p.DailyStreak)
	})
	t.Run("nutrition xp paid once", func(t *testing.T) {
		log := entity.FoodLog{UserID: user.ID, Date: today, Intake: progress.Intake{Calories: 2200, Protein: 140}}
		require.NoError(t, nutrition.UpsertFoodLog(ctx, &log))
		assert.False(t, log.XPAwarded)
		awarded, err := nutrition.AwardXP(ctx, user.ID, today, 40)
		require.NoError(t, err)
		assert.True(t, awarded)

		require.NoError(t, nutrition.UpsertFoodLog(ctx, &log))
		assert.True(t, log.XPAwarded)
		awarded, err = nutrition.AwardXP(ctx, user.ID, today, 40)
		require.NoError(t, err)
		assert.False(t, awarded)

		p, err := profiles.GetByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, 40, p.XP)
	})
	t.Run("default targets", func(t *testing.T) {
		target, err := nutrition.GetTarget(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, progress.DefaultTargets, target.Targets)
	})
}

func setupTestDB(t *testing.T) *testPGConfig {
	container, err := postgres.Run(context.Background(), "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("ascend"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(context.Background(), "sslmode=disable")
	if err != nil {
		t.Fatal(err)
	}
	conn, err := sql.Open("postgres", connStr)
	if err != nil {
		t.Fatal(err)
	}
	defer conn.Close()
	if err = goose.Up(conn, "../../migrations"); err != nil {
		t.Fatal(err)
	}
	return &testPGConfig{
		connStr: connStr,
	}
}
