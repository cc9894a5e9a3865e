package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/repository"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/limbo/ascend/pkg/progress"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var xpAwarded = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "ascend_xp_awarded_total",
	Help: "XP granted to players, by source.",
}, []string{"source"})

type CompletionService struct {
	habitsRepo      repository.HabitsRepositoryI
	completionsRepo repository.CompletionsRepositoryI
	profilesRepo    repository.ProfilesRepositoryI
}

func NewCompletionService(
	habitsRepo repository.HabitsRepositoryI,
	completionsRepo repository.CompletionsRepositoryI,
	profilesRepo repository.ProfilesRepositoryI,
) *CompletionService {
	if habitsRepo == nil || completionsRepo == nil || profilesRepo == nil {
		log.Fatal("on completion service provided nil repos")
	}
	return &CompletionService{
		habitsRepo:      habitsRepo,
		completionsRepo: completionsRepo,
		profilesRepo:    profilesRepo,
	}
}

func (cs *CompletionService) ToggleHabit(ctx context.Context, habitID, uid uuid.UUID, today time.Time) (*ToggleResult, error) {
	habit, err := ownedHabit(ctx, cs.habitsRepo, habitID, uid)
	if err != nil {
		return nil, err
	}
	today = progress.Day(today)
	done, profile, err := cs.completionsRepo.Toggle(ctx, habitID, uid, today,
		func(p entity.PlayerProfile, existed bool) entity.PlayerProfile {
			state, _ := progress.ToggleCompletion(p.State(), habit.Difficulty, existed, today)
			p.Apply(state)
			return p
		},
	)
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrCompletionExists),
			errors.Is(err, errorvalues.ErrHabitNotFound),
			errors.Is(err, errorvalues.ErrProfileNotFound):
			return nil, err
		}
		return nil, errors.New("completions repository error: " + err.Error())
	}
	if done {
		xpAwarded.WithLabelValues("habit").Add(float64(progress.XPForDifficulty(habit.Difficulty)))
	}
	return &ToggleResult{
		Done:         done,
		XP:           profile.XP,
		DailyStreak:  profile.DailyStreak,
		WeeklyStreak: profile.WeeklyStreak,
	}, nil
}

func (cs *CompletionService) GetXP(ctx context.Context, uid uuid.UUID) (*entity.PlayerProfile, error) {
	profile, err := cs.profilesRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return profile, nil
}

func (cs *CompletionService) DailyProgress(ctx context.Context, uid uuid.UUID, today time.Time) (progress.DailyProgress, error) {
	today = progress.Day(today)
	total, err := cs.habitsRepo.CountByUserID(ctx, uid)
	if err != nil {
		return progress.DailyProgress{}, errors.New("habits repository error: " + err.Error())
	}
	counts, err := cs.completionsRepo.CountByUserAndDateRange(ctx, uid, today, today)
	if err != nil {
		return progress.DailyProgress{}, errors.New("completions repository error: " + err.Error())
	}
	return progress.HabitDailyProgress(dayCounts(counts)[today], total), nil
}

func (cs *CompletionService) WeeklyProgress(ctx context.Context, uid uuid.UUID, today time.Time) (progress.Series, error) {
	today = progress.Day(today)
	total, err := cs.habitsRepo.CountByUserID(ctx, uid)
	if err != nil {
		return nil, errors.New("habits repository error: " + err.Error())
	}
	counts, err := cs.completionsRepo.CountByUserAndDateRange(ctx, uid, today.AddDate(0, 0, -6), today)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return progress.WeeklyCompletion(today, total, dayCounts(counts)), nil
}

func (cs *CompletionService) MonthlyHeatmap(ctx context.Context, uid uuid.UUID, today time.Time) (progress.Series, error) {
	days := progress.MonthDays(today)
	counts, err := cs.completionsRepo.CountByUserAndDateRange(ctx, uid, days[0], days[len(days)-1])
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	return progress.MonthlyHeatmap(today, dayCounts(counts)), nil
}

func (cs *CompletionService) HabitStats(ctx context.Context, habitID, uid uuid.UUID, today time.Time) (*entity.HabitStats, error) {
	if _, err := ownedHabit(ctx, cs.habitsRepo, habitID, uid); err != nil {
		return nil, err
	}
	dates, err := cs.completionsRepo.GetDatesByHabit(ctx, habitID)
	if err != nil {
		return nil, errors.New("completions repository error: " + err.Error())
	}
	runs := progress.Runs(dates, today)
	stats := entity.HabitStats{
		ID:            habitID,
		TotalChecks:   len(dates),
		CurrentStreak: runs.Current,
		MaxStreak:     runs.Longest,
	}
	if len(dates) > 0 {
		last := dates[len(dates)-1]
		stats.LastCompletion = &last
	}
	return &stats, nil
}

// dayCounts re-keys counts by progress.Day so lookups by date match.
func dayCounts(counts map[time.Time]int) map[time.Time]int {
	out := make(map[time.Time]int, len(counts))
	for d, n := range counts {
		out[progress.Day(d)] += n
	}
	return out
}
