package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/limbo/ascend/pkg/progress"
)

type NutritionRepository struct {
	conn PgConnection
}

func NewNutritionRepoWithConn(conn PgConnection) *NutritionRepository {
	mustPing(conn, "nutritionRepo")
	return &NutritionRepository{
		conn: conn,
	}
}

func (nr *NutritionRepository) UpsertFoodLog(ctx context.Context, log *entity.FoodLog) error {
	row := nr.conn.QueryRow(ctx, `INSERT INTO food_logs (user_id, day, calories, protein, carbs, fat, fiber, sugar, sodium)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (user_id, day) DO UPDATE SET calories = EXCLUDED.calories, protein = EXCLUDED.protein,
		carbs = EXCLUDED.carbs, fat = EXCLUDED.fat, fiber = EXCLUDED.fiber, sugar = EXCLUDED.sugar, sodium = EXCLUDED.sodium
		RETURNING xp_awarded;`,
		log.UserID, log.Date, log.Calories, log.Protein, log.Carbs, log.Fat, log.Fiber, log.Sugar, log.Sodium,
	)
	if err := row.Scan(&log.XPAwarded); err != nil {
		if pgErrCode(err) == fkViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving food log error: " + err.Error())
	}
	return nil
}

func (nr *NutritionRepository) ListFoodLogsInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.FoodLog, error) {
	rows, err := nr.conn.Query(ctx, `SELECT day, calories, protein, carbs, fat, fiber, sugar, sodium, xp_awarded
		FROM food_logs WHERE user_id = $1 AND day >= $2 AND day <= $3 ORDER BY day;`, uid, from, to)
	if err != nil {
		return nil, errors.New("listing food logs error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.FoodLog, 0)
	for rows.Next() {
		l := entity.FoodLog{UserID: uid}
		err = rows.Scan(&l.Date, &l.Calories, &l.Protein, &l.Carbs, &l.Fat, &l.Fiber, &l.Sugar, &l.Sodium, &l.XPAwarded)
		if err != nil {
			return nil, errors.New("food log row parsing error: " + err.Error())
		}
		result = append(result, l)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected food log rows error: " + err.Error())
	}
	return result, nil
}

func (nr *NutritionRepository) AwardXP(ctx context.Context, uid uuid.UUID, day time.Time, xp int) (bool, error) {
	tx, err := nr.conn.Begin(ctx)
	if err != nil {
		return false, errors.New("begin tx error: " + err.Error())
	}
	ct, err := tx.Exec(ctx, `UPDATE food_logs SET xp_awarded = TRUE WHERE user_id = $1 AND day = $2 AND xp_awarded = FALSE;`, uid, day)
	if err != nil {
		tx.Rollback(ctx)
		return false, errors.New("marking food log awarded error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return false, nil
	}
	ct, err = tx.Exec(ctx, `UPDATE player_profiles SET xp = xp + $1 WHERE user_id = $2;`, xp, uid)
	if err != nil {
		tx.Rollback(ctx)
		return false, errors.New("adding xp error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		tx.Rollback(ctx)
		return false, errorvalues.ErrProfileNotFound
	}
	if err = tx.Commit(ctx); err != nil {
		return false, errors.New("commit tx error: " + err.Error())
	}
	return true, nil
}

func (nr *NutritionRepository) GetTarget(ctx context.Context, uid uuid.UUID) (*entity.FoodTarget, error) {
	d := progress.DefaultTargets
	_, err := nr.conn.Exec(ctx, `INSERT INTO food_targets (user_id, calories, protein, carbs, fat) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO NOTHING;`, uid, d.Calories, d.Protein, d.Carbs, d.Fat)
	if err != nil {
		if pgErrCode(err) == fkViolation {
			return nil, errorvalues.ErrUserNotFound
		}
		return nil, errors.New("creating default food target error: " + err.Error())
	}
	t := entity.FoodTarget{UserID: uid}
	row := nr.conn.QueryRow(ctx, `SELECT calories, protein, carbs, fat FROM food_targets WHERE user_id = $1;`, uid)
	if err = row.Scan(&t.Calories, &t.Protein, &t.Carbs, &t.Fat); err != nil {
		return nil, errors.New("getting food target error: " + err.Error())
	}
	return &t, nil
}

func (nr *NutritionRepository) UpsertTarget(ctx context.Context, target *entity.FoodTarget) error {
	_, err := nr.conn.Exec(ctx, `INSERT INTO food_targets (user_id, calories, protein, carbs, fat) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id) DO UPDATE SET calories = EXCLUDED.calories, protein = EXCLUDED.protein,
		carbs = EXCLUDED.carbs, fat = EXCLUDED.fat;`,
		target.UserID, target.Calories, target.Protein, target.Carbs, target.Fat,
	)
	if err != nil {
		if pgErrCode(err) == fkViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving food target error: " + err.Error())
	}
	return nil
}
