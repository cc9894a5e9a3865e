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
)

type NutritionService struct {
	nutritionRepo repository.NutritionRepositoryI
	profilesRepo  repository.ProfilesRepositoryI
}

func NewNutritionService(nutritionRepo repository.NutritionRepositoryI, profilesRepo repository.ProfilesRepositoryI) *NutritionService {
	if nutritionRepo == nil || profilesRepo == nil {
		log.Fatal("on nutrition service provided nil repos")
	}
	return &NutritionService{
		nutritionRepo: nutritionRepo,
		profilesRepo:  profilesRepo,
	}
}

func (ns *NutritionService) SaveFoodLog(ctx context.Context, uid uuid.UUID, today time.Time, intake progress.Intake) (*FoodLogResult, error) {
	today = progress.Day(today)
	target, err := ns.GetTarget(ctx, uid)
	if err != nil {
		return nil, err
	}
	foodLog := entity.FoodLog{
		UserID: uid,
		Date:   today,
		Intake: intake,
	}
	if err = ns.nutritionRepo.UpsertFoodLog(ctx, &foodLog); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("nutrition repository error: " + err.Error())
	}
	result := FoodLogResult{Log: foodLog}
	if xp, flagged := progress.ClaimNutritionXP(foodLog.XPAwarded, intake, target.Targets); flagged && xp > 0 {
		awarded, err := ns.nutritionRepo.AwardXP(ctx, uid, today, xp)
		if err != nil {
			if errors.Is(err, errorvalues.ErrProfileNotFound) {
				return nil, err
			}
			return nil, errors.New("nutrition repository error: " + err.Error())
		}
		if awarded {
			result.XPAwarded = xp
			result.Log.XPAwarded = true
			xpAwarded.WithLabelValues("nutrition").Add(float64(xp))
		}
	}
	intakes, err := ns.intakes(ctx, uid, today.AddDate(0, 0, -(progress.ProteinStreakLookback-1)), today)
	if err != nil {
		return nil, err
	}
	result.ProteinStreak = progress.ProteinStreak(today, intakes, target.Targets)
	if err = ns.profilesRepo.SetProteinStreak(ctx, uid, result.ProteinStreak); err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	return &result, nil
}

func (ns *NutritionService) GetTarget(ctx context.Context, uid uuid.UUID) (*entity.FoodTarget, error) {
	target, err := ns.nutritionRepo.GetTarget(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("nutrition repository error: " + err.Error())
	}
	return target, nil
}

func (ns *NutritionService) SetTarget(ctx context.Context, uid uuid.UUID, req *TargetRequest) (*entity.FoodTarget, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	target := entity.FoodTarget{
		UserID: uid,
		Targets: progress.Targets{
			Calories: req.Calories,
			Protein:  req.Protein,
			Carbs:    req.Carbs,
			Fat:      req.Fat,
		},
	}
	if err := ns.nutritionRepo.UpsertTarget(ctx, &target); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("nutrition repository error: " + err.Error())
	}
	return &target, nil
}

func (ns *NutritionService) Today(ctx context.Context, uid uuid.UUID, today time.Time) (*NutritionDay, error) {
	today = progress.Day(today)
	target, err := ns.GetTarget(ctx, uid)
	if err != nil {
		return nil, err
	}
	intakes, err := ns.intakes(ctx, uid, today, today)
	if err != nil {
		return nil, err
	}
	profile, err := ns.profilesRepo.GetByUserID(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			return nil, err
		}
		return nil, errors.New("profiles repository error: " + err.Error())
	}
	intake, logged := intakes[today]
	status := progress.DayNone
	if logged {
		status = progress.ClassifyDay(intake.Calories, target.Calories)
	}
	return &NutritionDay{
		Date:          today,
		Intake:        intake,
		Targets:       target.Targets,
		Deviation:     progress.CalorieDeviation(intake.Calories, target.Calories),
		ProteinMet:    progress.ProteinMet(intake, target.Targets),
		Compliant:     logged && progress.IsCompliant(intake, target.Targets),
		Status:        status,
		ProteinStreak: profile.ProteinStreak,
	}, nil
}

func (ns *NutritionService) WeeklyCompliance(ctx context.Context, uid uuid.UUID, today time.Time) ([]progress.ComplianceDay, error) {
	today = progress.Day(today)
	target, err := ns.GetTarget(ctx, uid)
	if err != nil {
		return nil, err
	}
	intakes, err := ns.intakes(ctx, uid, today.AddDate(0, 0, -6), today)
	if err != nil {
		return nil, err
	}
	return progress.WeeklyCompliance(today, intakes, target.Targets), nil
}

func (ns *NutritionService) WeeklySummary(ctx context.Context, uid uuid.UUID, today time.Time) (*NutritionSummary, error) {
	today = progress.Day(today)
	target, err := ns.GetTarget(ctx, uid)
	if err != nil {
		return nil, err
	}
	intakes, err := ns.intakes(ctx, uid, today.AddDate(0, 0, -6), today)
	if err != nil {
		return nil, err
	}
	summary := NutritionSummary{
		AverageCalories: progress.AverageCalories(today, intakes),
		Trend:           progress.CalorieTrend(intakes[today].Calories, intakes[today.AddDate(0, 0, -1)].Calories),
	}
	for _, d := range progress.WeeklyCompliance(today, intakes, target.Targets) {
		if d.Compliant {
			summary.CompliantDays++
		}
	}
	return &summary, nil
}

func (ns *NutritionService) MonthlyCalendar(ctx context.Context, uid uuid.UUID, today time.Time) ([]progress.CalendarDay, error) {
	target, err := ns.GetTarget(ctx, uid)
	if err != nil {
		return nil, err
	}
	days := progress.MonthDays(today)
	intakes, err := ns.intakes(ctx, uid, days[0], days[len(days)-1])
	if err != nil {
		return nil, err
	}
	return progress.MonthlyCalendar(today, intakes, target.Targets), nil
}

func (ns *NutritionService) intakes(ctx context.Context, uid uuid.UUID, from, to time.Time) (map[time.Time]progress.Intake, error) {
	logs, err := ns.nutritionRepo.ListFoodLogsInRange(ctx, uid, from, to)
	if err != nil {
		return nil, errors.New("nutrition repository error: " + err.Error())
	}
	out := make(map[time.Time]progress.Intake, len(logs))
	for _, l := range logs {
		out[progress.Day(l.Date)] = l.Intake
	}
	return out, nil
}
