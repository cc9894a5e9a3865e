package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/pkg/entity"
)

type StepsRepository struct {
	conn PgConnection
}

func NewStepsRepoWithConn(conn PgConnection) *StepsRepository {
	mustPing(conn, "stepsRepo")
	return &StepsRepository{
		conn: conn,
	}
}

func (sr *StepsRepository) Upsert(ctx context.Context, log *entity.StepsLog) error {
	_, err := sr.conn.Exec(ctx, `INSERT INTO steps_logs (user_id, day, steps, target) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, day) DO UPDATE SET steps = EXCLUDED.steps, target = EXCLUDED.target;`,
		log.UserID, log.Date, log.Steps, log.Target,
	)
	if err != nil {
		if pgErrCode(err) == fkViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving steps error: " + err.Error())
	}
	return nil
}

func (sr *StepsRepository) ListInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.StepsLog, error) {
	rows, err := sr.conn.Query(ctx, `SELECT day, steps, target FROM steps_logs
		WHERE user_id = $1 AND day >= $2 AND day <= $3 ORDER BY day;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing steps error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.StepsLog, 0, 7)
	for rows.Next() {
		l := entity.StepsLog{UserID: uid}
		if err = rows.Scan(&l.Date, &l.Steps, &l.Target); err != nil {
			return nil, errors.New("steps row parsing error: " + err.Error())
		}
		result = append(result, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected steps rows error: " + err.Error())
	}
	return result, nil
}
