package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/pkg/entity"
)

type CompletionsRepository struct {
	conn PgConnection
}

func NewCompletionsRepoWithConn(conn PgConnection) *CompletionsRepository {
	mustPing(conn, "completionsRepo")
	return &CompletionsRepository{
		conn: conn,
	}
}

func (cr *CompletionsRepository) Toggle(ctx context.Context, habitID, userID uuid.UUID, day time.Time, fn ToggleFunc) (bool, *entity.PlayerProfile, error) {
	tx, err := cr.conn.Begin(ctx)
	if err != nil {
		return false, nil, errors.New("begin tx error: " + err.Error())
	}
	profile, err := lockProfile(ctx, tx, userID)
	if err != nil {
		tx.Rollback(ctx)
		return false, nil, err
	}
	var exists bool
	err = tx.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM habit_completions WHERE habit_id = $1 AND completed_on = $2);`,
		habitID, day,
	).Scan(&exists)
	if err != nil {
		tx.Rollback(ctx)
		return false, nil, errors.New("inspecting if completion exists error: " + err.Error())
	}
	if exists {
		_, err = tx.Exec(ctx, `DELETE FROM habit_completions WHERE habit_id = $1 AND completed_on = $2;`, habitID, day)
	} else {
		_, err = tx.Exec(ctx, `INSERT INTO habit_completions (habit_id, completed_on) VALUES ($1, $2);`, habitID, day)
	}
	if err != nil {
		tx.Rollback(ctx)
		switch pgErrCode(err) {
		case uniqueViolation:
			return false, nil, errorvalues.ErrCompletionExists
		case fkViolation:
			return false, nil, errorvalues.ErrHabitNotFound
		}
		return false, nil, errors.New("toggling completion error: " + err.Error())
	}
	updated := fn(*profile, exists)
	_, err = tx.Exec(ctx,
		`UPDATE player_profiles SET xp = $1, daily_streak = $2, weekly_streak = $3, last_completed_date = $4 WHERE user_id = $5;`,
		updated.XP, updated.DailyStreak, updated.WeeklyStreak, updated.LastCompletedDate, userID,
	)
	if err != nil {
		tx.Rollback(ctx)
		return false, nil, errors.New("updating player profile error: " + err.Error())
	}
	if err = tx.Commit(ctx); err != nil {
		return false, nil, errors.New("commit tx error: " + err.Error())
	}
	return !exists, &updated, nil
}

func lockProfile(ctx context.Context, tx pgx.Tx, uid uuid.UUID) (*entity.PlayerProfile, error) {
	p := entity.PlayerProfile{UserID: uid}
	row := tx.QueryRow(ctx, `SELECT xp, daily_streak, weekly_streak, last_completed_date, protein_streak
		FROM player_profiles WHERE user_id = $1 FOR UPDATE;`, uid)
	if err := row.Scan(&p.XP, &p.DailyStreak, &p.WeeklyStreak, &p.LastCompletedDate, &p.ProteinStreak); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("locking player profile error: " + err.Error())
	}
	return &p, nil
}

func (cr *CompletionsRepository) GetDatesByHabit(ctx context.Context, habitID uuid.UUID) ([]time.Time, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT completed_on FROM habit_completions WHERE habit_id = $1 ORDER BY completed_on;`,
		habitID,
	)
	if err != nil {
		return nil, errors.New("getting completion dates error: " + err.Error())
	}
	defer rows.Close()
	result := make([]time.Time, 0)
	for rows.Next() {
		var day time.Time
		if err = rows.Scan(&day); err != nil {
			return nil, errors.New("completion row parsing error: " + err.Error())
		}
		result = append(result, day)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completion rows error: " + err.Error())
	}
	return result, nil
}

func (cr *CompletionsRepository) CountByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (map[time.Time]int, error) {
	rows, err := cr.conn.Query(
		ctx,
		`SELECT c.completed_on, COUNT(*) FROM habit_completions c JOIN habits h ON h.id = c.habit_id
		WHERE h.user_id = $1 AND c.completed_on >= $2 AND c.completed_on <= $3 GROUP BY c.completed_on;`,
		uid,
		from,
		to,
	)
	if err != nil {
		return nil, errors.New("counting completions for period error: " + err.Error())
	}
	defer rows.Close()
	result := make(map[time.Time]int)
	for rows.Next() {
		var (
			day   time.Time
			count int
		)
		if err = rows.Scan(&day, &count); err != nil {
			return nil, errors.New("completion count row parsing error: " + err.Error())
		}
		result[day] = count
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected completion rows error: " + err.Error())
	}
	return result, nil
}
