package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/limbo/ascend/pkg/progress"
)

type User struct {
	ID           uuid.UUID
	Name         string
	PasswordHash string
}

type Habit struct {
	ID         uuid.UUID           `json:"id"`
	UserID     uuid.UUID           `json:"uid"`
	Name       string              `json:"name"`
	Time       string              `json:"time"`
	Difficulty progress.Difficulty `json:"difficulty"`
	Done       bool                `json:"done"`
	CreatedAt  time.Time           `json:"created_at"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

type HabitCompletion struct {
	ID          int
	HabitID     uuid.UUID
	CompletedOn time.Time
	CreatedAt   time.Time
}

type HabitStats struct {
	ID             uuid.UUID  `json:"habit_id"`
	TotalChecks    int        `json:"total_checks"`
	CurrentStreak  int        `json:"current_streak"`
	MaxStreak      int        `json:"max_streak"`
	LastCompletion *time.Time `json:"last_check,omitempty"`
}

type PlayerProfile struct {
	UserID            uuid.UUID  `json:"uid"`
	XP                int        `json:"xp"`
	DailyStreak       int        `json:"daily_streak"`
	WeeklyStreak      int        `json:"weekly_streak"`
	LastCompletedDate *time.Time `json:"last_completed_date,omitempty"`
	ProteinStreak     int        `json:"protein_streak"`
}

func (p *PlayerProfile) State() progress.PlayerState {
	return progress.PlayerState{
		XP: p.XP,
		StreakState: progress.StreakState{
			DailyStreak:       p.DailyStreak,
			WeeklyStreak:      p.WeeklyStreak,
			LastCompletedDate: p.LastCompletedDate,
		},
	}
}

func (p *PlayerProfile) Apply(s progress.PlayerState) {
	p.XP = s.XP
	p.DailyStreak = s.DailyStreak
	p.WeeklyStreak = s.WeeklyStreak
	p.LastCompletedDate = s.LastCompletedDate
}

type DailyReflection struct {
	UserID uuid.UUID `json:"uid"`
	Date   time.Time `json:"date"`
	Mood   int       `json:"mood"`
	Note   string    `json:"note"`
}

type GymLog struct {
	ID       int               `json:"id"`
	UserID   uuid.UUID         `json:"uid"`
	BodyPart progress.BodyPart `json:"body_part"`
	Date     time.Time         `json:"date"`
	Sets     []WorkoutSet      `json:"sets"`
}

type WorkoutSet struct {
	ID              int       `json:"id"`
	GymLogID        int       `json:"gym_log_id"`
	Sets            int       `json:"sets"`
	Reps            int       `json:"reps"`
	Weight          *float64  `json:"weight,omitempty"`
	DurationMinutes int       `json:"duration_minutes"`
	Intensity       string    `json:"intensity"`
	CreatedAt       time.Time `json:"created_at"`
}

func (ws *WorkoutSet) TrainingLoad() float64 {
	return progress.SetLoad(ws.Sets, ws.Reps, ws.Weight)
}

// LoggedSet is a workout set joined with its gym log's body part and date.
type LoggedSet struct {
	Date     time.Time
	BodyPart progress.BodyPart
	Sets     int
	Reps     int
	Weight   *float64
}

func (ls LoggedSet) LoadEntry() progress.LoadEntry {
	return progress.LoadEntry{
		Date:     ls.Date,
		BodyPart: ls.BodyPart,
		Load:     progress.SetLoad(ls.Sets, ls.Reps, ls.Weight),
	}
}

type StepsLog struct {
	UserID uuid.UUID `json:"uid"`
	Date   time.Time `json:"date"`
	Steps  int       `json:"steps"`
	Target int       `json:"target"`
}

type FoodLog struct {
	UserID uuid.UUID `json:"uid"`
	Date   time.Time `json:"date"`
	progress.Intake
	XPAwarded bool `json:"xp_awarded"`
}

type FoodTarget struct {
	UserID uuid.UUID `json:"uid"`
	progress.Targets
}
