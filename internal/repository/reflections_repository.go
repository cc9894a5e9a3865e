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

type ReflectionsRepository struct {
	conn PgConnection
}

func NewReflectionsRepoWithConn(conn PgConnection) *ReflectionsRepository {
	mustPing(conn, "reflectionsRepo")
	return &ReflectionsRepository{
		conn: conn,
	}
}

func (rr *ReflectionsRepository) Upsert(ctx context.Context, r *entity.DailyReflection) error {
	_, err := rr.conn.Exec(ctx, `INSERT INTO daily_reflections (user_id, day, mood, note) VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id, day) DO UPDATE SET mood = EXCLUDED.mood, note = EXCLUDED.note;`,
		r.UserID, r.Date, r.Mood, r.Note,
	)
	if err != nil {
		if pgErrCode(err) == fkViolation {
			return errorvalues.ErrUserNotFound
		}
		return errors.New("saving reflection error: " + err.Error())
	}
	return nil
}

func (rr *ReflectionsRepository) GetByDate(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.DailyReflection, error) {
	r := entity.DailyReflection{UserID: uid, Date: day}
	row := rr.conn.QueryRow(ctx, `SELECT mood, note FROM daily_reflections WHERE user_id = $1 AND day = $2;`, uid, day)
	if err := row.Scan(&r.Mood, &r.Note); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrReflectionNotFound
		}
		return nil, errors.New("getting reflection error: " + err.Error())
	}
	return &r, nil
}

func (rr *ReflectionsRepository) ListByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]entity.DailyReflection, error) {
	rows, err := rr.conn.Query(ctx, `SELECT day, mood, note FROM daily_reflections WHERE user_id = $1
		ORDER BY day DESC LIMIT $2;`, uid, limit)
	if err != nil {
		return nil, errors.New("listing reflections error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.DailyReflection, 0, limit)
	for rows.Next() {
		r := entity.DailyReflection{UserID: uid}
		if err = rows.Scan(&r.Date, &r.Mood, &r.Note); err != nil {
			return nil, errors.New("reflection row parsing error: " + err.Error())
		}
		result = append(result, r)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.New("unexpected reflection rows error: " + err.Error())
	}
	return result, nil
}
