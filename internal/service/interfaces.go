package service

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_service.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/limbo/ascend/pkg/progress"
)

type RegisterRequest struct {
	Name     string `validate:"required,alphanum_underscore,min=3,max=100"`
	Password string `validate:"required,min=8,max=72"`
}

type PaginationOpts struct {
	Limit  int `validate:"min=1,max=100"`
	Offset int `validate:"min=0"`
}

type HabitRequest struct {
	Name       string `validate:"required,min=1,max=100"`
	Time       string `validate:"required,clock"`
	Difficulty string `validate:"required,oneof=easy medium hard"`
}

type ReflectionRequest struct {
	Mood int    `validate:"min=1,max=10"`
	Note string `validate:"max=2000"`
}

type SetRequest struct {
	Sets            int      `validate:"min=0"`
	Reps            int      `validate:"min=0"`
	Weight          *float64 `validate:"omitempty,min=0"`
	DurationMinutes int      `validate:"min=0"`
	Intensity       string   `validate:"omitempty,oneof=low medium high"`
}

type GymRequest struct {
	BodyPart string       `validate:"required,body_part"`
	Sets     []SetRequest `validate:"required,min=1,dive"`
}

type StepsRequest struct {
	Steps  int `validate:"min=0"`
	Target int `validate:"min=0"`
}

type TargetRequest struct {
	Calories float64 `validate:"min=0"`
	Protein  float64 `validate:"min=0"`
	Carbs    float64 `validate:"min=0"`
	Fat      float64 `validate:"min=0"`
}

type ToggleResult struct {
	Done         bool `json:"done"`
	XP           int  `json:"xp"`
	DailyStreak  int  `json:"daily_streak"`
	WeeklyStreak int  `json:"weekly_streak"`
}

type FoodLogResult struct {
	Log           entity.FoodLog `json:"log"`
	XPAwarded     int            `json:"xp_awarded"`
	ProteinStreak int            `json:"protein_streak"`
}

type NutritionDay struct {
	Date          time.Time          `json:"date"`
	Intake        progress.Intake    `json:"intake"`
	Targets       progress.Targets   `json:"targets"`
	Deviation     float64            `json:"calorie_deviation"`
	ProteinMet    bool               `json:"protein_met"`
	Compliant     bool               `json:"compliant"`
	Status        progress.DayStatus `json:"status"`
	ProteinStreak int                `json:"protein_streak"`
}

type NutritionSummary struct {
	AverageCalories float64        `json:"average_calories"`
	Trend           progress.Trend `json:"trend"`
	CompliantDays   int            `json:"compliant_days"`
}

type UserServiceI interface {
	// Validates user's credentials, creates new row in database. Returns user's data with ID
	Register(ctx context.Context, req *RegisterRequest) (*entity.User, error)
	// Compares given credentials. If ok, give back user's data with ID.
	Login(ctx context.Context, name, password string) (*entity.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
	GetByName(ctx context.Context, name string) (*entity.User, error)
	DeleteAccount(ctx context.Context, id uuid.UUID, password string) error
}

type HabitsServiceI interface {
	CreateHabit(ctx context.Context, uid uuid.UUID, req *HabitRequest) (*entity.Habit, error)
	// Lists user's habits ordered by time, Done is set for today
	GetUserHabits(ctx context.Context, uid uuid.UUID, today time.Time, pagination PaginationOpts) ([]*entity.Habit, error)
	GetHabit(ctx context.Context, habitID, uid uuid.UUID) (*entity.Habit, error)
	UpdateHabit(ctx context.Context, habitID, uid uuid.UUID, req *HabitRequest) (*entity.Habit, error)
	DeleteHabit(ctx context.Context, habitID, uid uuid.UUID) error
}

type CompletionServiceI interface {
	// Completes habit for today or undoes today's completion
	ToggleHabit(ctx context.Context, habitID, uid uuid.UUID, today time.Time) (*ToggleResult, error)
	GetXP(ctx context.Context, uid uuid.UUID) (*entity.PlayerProfile, error)
	DailyProgress(ctx context.Context, uid uuid.UUID, today time.Time) (progress.DailyProgress, error)
	WeeklyProgress(ctx context.Context, uid uuid.UUID, today time.Time) (progress.Series, error)
	MonthlyHeatmap(ctx context.Context, uid uuid.UUID, today time.Time) (progress.Series, error)
	HabitStats(ctx context.Context, habitID, uid uuid.UUID, today time.Time) (*entity.HabitStats, error)
}

type ReflectionServiceI interface {
	SaveReflection(ctx context.Context, uid uuid.UUID, today time.Time, req *ReflectionRequest) (*entity.DailyReflection, error)
	GetReflection(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.DailyReflection, error)
	History(ctx context.Context, uid uuid.UUID, limit int) ([]entity.DailyReflection, error)
}

type BodyServiceI interface {
	LogGym(ctx context.Context, uid uuid.UUID, today time.Time, req *GymRequest) (*entity.GymLog, error)
	WeeklySymmetry(ctx context.Context, uid uuid.UUID, today time.Time) ([]progress.PartShare, error)
	WeeklyTrend(ctx context.Context, uid uuid.UUID, today time.Time) (progress.Series, error)
	Recovery(ctx context.Context, uid uuid.UUID, today time.Time) (progress.Recovery, error)
	SaveSteps(ctx context.Context, uid uuid.UUID, today time.Time, req *StepsRequest) (*entity.StepsLog, error)
	WeeklySteps(ctx context.Context, uid uuid.UUID, today time.Time) (progress.StepsWeek, error)
}

type NutritionServiceI interface {
	// Stores today's totals, pays nutrition XP at most once per day and refreshes protein streak
	SaveFoodLog(ctx context.Context, uid uuid.UUID, today time.Time, intake progress.Intake) (*FoodLogResult, error)
	GetTarget(ctx context.Context, uid uuid.UUID) (*entity.FoodTarget, error)
	SetTarget(ctx context.Context, uid uuid.UUID, req *TargetRequest) (*entity.FoodTarget, error)
	Today(ctx context.Context, uid uuid.UUID, today time.Time) (*NutritionDay, error)
	WeeklyCompliance(ctx context.Context, uid uuid.UUID, today time.Time) ([]progress.ComplianceDay, error)
	WeeklySummary(ctx context.Context, uid uuid.UUID, today time.Time) (*NutritionSummary, error)
	MonthlyCalendar(ctx context.Context, uid uuid.UUID, today time.Time) ([]progress.CalendarDay, error)
}
