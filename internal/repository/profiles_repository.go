package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/pkg/entity"
)

type ProfilesRepository struct {
	conn PgConnection
}

func NewProfilesRepoWithConn(conn PgConnection) *ProfilesRepository {
	mustPing(conn, "profilesRepo")
	return &ProfilesRepository{
		conn: conn,
	}
}

func (pr *ProfilesRepository) GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.PlayerProfile, error) {
	p := entity.PlayerProfile{UserID: uid}
	row := pr.conn.QueryRow(ctx, `SELECT xp, daily_streak, weekly_streak, last_completed_date, protein_streak
		FROM player_profiles WHERE user_id = $1;`, uid)
	if err := row.Scan(&p.XP, &p.DailyStreak, &p.WeeklyStreak, &p.LastCompletedDate, &p.ProteinStreak); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errorvalues.ErrProfileNotFound
		}
		return nil, errors.New("getting player profile error: " + err.Error())
	}
	return &p, nil
}

func (pr *ProfilesRepository) SetProteinStreak(ctx context.Context, uid uuid.UUID, streak int) error {
	ct, err := pr.conn.Exec(ctx, `UPDATE player_profiles SET protein_streak = $1 WHERE user_id = $2;`, streak, uid)
	if err != nil {
		return errors.New("updating protein streak error: " + err.Error())
	}
	if ct.RowsAffected() == 0 {
		return errorvalues.ErrProfileNotFound
	}
	return nil
}
