package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/ascend/pkg/entity"
)

type UsersRepositoryI interface {
	// Creates new user together with its player profile. Sets user.ID
	Create(ctx context.Context, user *entity.User) error
	// Looks up user by name. Can be used for login
	FindByName(ctx context.Context, name string) (*entity.User, error)
	// Looks up user by uid. Can be used for authorization middleware
	FindByID(ctx context.Context, uid uuid.UUID) (*entity.User, error)
	// Updates user's info
	Update(ctx context.Context, user *entity.User) error
	// Deletes user
	Delete(ctx context.Context, uid uuid.UUID) error
}

type HabitsRepositoryI interface {
	// Creates new habit. Name, Time, Difficulty and UserID are necessary
	Create(ctx context.Context, habit *entity.Habit) (uuid.UUID, error)
	// Searches habit with given id
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Habit, error)
	// Lists habits owned by user ordered by time. Done is filled for the given day
	GetByUserID(ctx context.Context, uid uuid.UUID, day time.Time, limit, offset int) ([]*entity.Habit, error)
	// Counts all habits of user
	CountByUserID(ctx context.Context, uid uuid.UUID) (int, error)
	// Updates habit by ID (ID in habit is necessary)
	Update(ctx context.Context, habit *entity.Habit) error
	// Deletes habit with id
	Delete(ctx context.Context, id uuid.UUID) error
}

// ToggleFunc receives the profile locked for update and whether a completion
// existed before the toggle. It returns the profile to store.
type ToggleFunc func(profile entity.PlayerProfile, existed bool) entity.PlayerProfile

type CompletionsRepositoryI interface {
	// Flips completion of habitID on day and stores the profile produced by fn in one transaction
	Toggle(ctx context.Context, habitID, userID uuid.UUID, day time.Time, fn ToggleFunc) (bool, *entity.PlayerProfile, error)
	// Provides all completion dates of habitID, oldest first
	GetDatesByHabit(ctx context.Context, habitID uuid.UUID) ([]time.Time, error)
	// Counts completions of all user's habits per day for a period
	CountByUserAndDateRange(ctx context.Context, uid uuid.UUID, from, to time.Time) (map[time.Time]int, error)
}

type ProfilesRepositoryI interface {
	GetByUserID(ctx context.Context, uid uuid.UUID) (*entity.PlayerProfile, error)
	SetProteinStreak(ctx context.Context, uid uuid.UUID, streak int) error
}

type ReflectionsRepositoryI interface {
	// Inserts or replaces the reflection of a day
	Upsert(ctx context.Context, r *entity.DailyReflection) error
	GetByDate(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.DailyReflection, error)
	// Most recent first
	ListByUserID(ctx context.Context, uid uuid.UUID, limit int) ([]entity.DailyReflection, error)
}

type GymRepositoryI interface {
	// Finds or creates (user, body part, day) log and appends its sets. Fills ids
	LogSets(ctx context.Context, log *entity.GymLog) error
	// Lists sets logged by user between from and to inclusive
	ListSetsInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.LoggedSet, error)
}

type StepsRepositoryI interface {
	Upsert(ctx context.Context, log *entity.StepsLog) error
	ListInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.StepsLog, error)
}

type NutritionRepositoryI interface {
	// Inserts or replaces day totals. Never clears the award flag, stored flag is written back to log
	UpsertFoodLog(ctx context.Context, log *entity.FoodLog) error
	ListFoodLogsInRange(ctx context.Context, uid uuid.UUID, from, to time.Time) ([]entity.FoodLog, error)
	// Marks the day's log awarded and adds xp to profile. Returns false if it was awarded already
	AwardXP(ctx context.Context, uid uuid.UUID, day time.Time, xp int) (bool, error)
	// Returns user's targets creating defaults on first access
	GetTarget(ctx context.Context, uid uuid.UUID) (*entity.FoodTarget, error)
	UpsertTarget(ctx context.Context, target *entity.FoodTarget) error
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
