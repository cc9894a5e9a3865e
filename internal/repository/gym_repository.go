package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/pkg/entity"
)

type GymRepository struct {
	conn PgConnection
}

func NewGymRepoWithConn(conn PgConnection) *GymRepository {
	mustPing(conn, "gymRepo")
	return &GymRepository{
		conn: conn,
	}
}

func (gr *GymRepository) LogSets(ctx context.Context, log *entity.GymLog) error {
	if log == nil {
		return errors.New("gym log is nil")
	}
	tx, err := gr.conn.Begin(ctx)
	if err != nil {
		return errors.New("begin tx error: " + err.Error())
	}
	// no-op update so RETURNING yields the id of an existing log
	row := tx.QueryRow(ctx, `INSERT INTO gym_logs (user_id, body_part, day) VALUES ($1, $2, $3)
		ON CONFLICT (user_id, body_part, day) DO UPDATE SET day = EXCLUDED.day RETURNING id;`,
		log.UserID, log.BodyPart, log.Date,
	)
	if err = row.Scan(&log.ID); err != nil {
		tx.Rollback(ctx)
		if pgErrCode(err) == fkViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("creating gym log error: " + err.Error())
	}
	for i := range log.Sets {
		s := &log.Sets[i]
		s.GymLogID = log.ID
		row = tx.QueryRow(ctx, `INSERT INTO workout_sets (gym_log_id, sets, reps, weight, duration_minutes, intensity)
			VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;`,
			log.ID, s.Sets, s.Reps, s.Weight, s.DurationMinutes, s.Intensity,
		)
		if err = row.Scan(&s.ID, &s.CreatedAt); err != nil {
			tx.Rollback(ctx)
			return errors.New("creating workout set error: " + err.Error())
		}
	}
	if err = tx.Commit(ctx); err != nil {
		return errors.New("commit tx error: " + err.Error())
	}
	return nil
}

func (gr *GymRepository) ListSetsInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.LoggedSet, error) {
	rows, err := gr.conn.Query(ctx, `SELECT g.day, g.body_part, s.sets, s.reps, s.weight
		FROM workout_sets s JOIN gym_logs g ON g.id = s.gym_log_id
		WHERE g.user_id = $1 AND g.day >= $2 AND g.day <= $3 ORDER BY g.day;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing workout sets error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.LoggedSet, 0)
	for rows.Next() {
		var ls entity.LoggedSet
		if err = rows.Scan(&ls.Date, &ls.BodyPart, &ls.Sets, &ls.Reps, &ls.Weight); err != nil {
			return nil, errors.New("workout set row parsing error: " + err.Error())
		}
		result = append(result, ls)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected workout set rows error: " + err.Error())
	}
	return result, nil
}
