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

type BodyService struct {
	gymRepo   repository.GymRepositoryI
	stepsRepo repository.StepsRepositoryI
}

func NewBodyService(gymRepo repository.GymRepositoryI, stepsRepo repository.StepsRepositoryI) *BodyService {
	if gymRepo == nil || stepsRepo == nil {
		log.Fatal("on body service provided nil repos")
	}
	return &BodyService{
		gymRepo:   gymRepo,
		stepsRepo: stepsRepo,
	}
}

func (bs *BodyService) LogGym(ctx context.Context, uid uuid.UUID, today time.Time, req *GymRequest) (*entity.GymLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	gymLog := entity.GymLog{
		UserID:   uid,
		BodyPart: progress.BodyPart(req.BodyPart),
		Date:     progress.Day(today),
		Sets:     make([]entity.WorkoutSet, 0, len(req.Sets)),
	}
	for _, s := range req.Sets {
		intensity := s.Intensity
		if intensity == "" {
			intensity = "medium"
		}
		gymLog.Sets = append(gymLog.Sets, entity.WorkoutSet{
			Sets:            s.Sets,
			Reps:            s.Reps,
			Weight:          s.Weight,
			DurationMinutes: s.DurationMinutes,
			Intensity:       intensity,
		})
	}
	if err := bs.gymRepo.LogSets(ctx, &gymLog); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("gym repository error: " + err.Error())
	}
	return &gymLog, nil
}

// weekLoads returns load entries of the 7 days ending at today.
func (bs *BodyService) weekLoads(ctx context.Context, uid uuid.UUID, today time.Time) ([]progress.LoadEntry, error) {
	today = progress.Day(today)
	sets, err := bs.gymRepo.ListSetsInRange(ctx, uid, today.AddDate(0, 0, -6), today)
	if err != nil {
		return nil, errors.New("gym repository error: " + err.Error())
	}
	entries := make([]progress.LoadEntry, 0, len(sets))
	for _, s := range sets {
		entries = append(entries, s.LoadEntry())
	}
	return progress.InWindow(entries, today), nil
}

func (bs *BodyService) WeeklySymmetry(ctx context.Context, uid uuid.UUID, today time.Time) ([]progress.PartShare, error) {
	entries, err := bs.weekLoads(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	return progress.Symmetry(progress.LoadByBodyPart(entries)), nil
}

func (bs *BodyService) WeeklyTrend(ctx context.Context, uid uuid.UUID, today time.Time) (progress.Series, error) {
	entries, err := bs.weekLoads(ctx, uid, today)
	if err != nil {
		return nil, err
	}
	return progress.WeeklySeries(today, progress.LoadByDay(entries)), nil
}

func (bs *BodyService) Recovery(ctx context.Context, uid uuid.UUID, today time.Time) (progress.Recovery, error) {
	entries, err := bs.weekLoads(ctx, uid, today)
	if err != nil {
		return progress.Recovery{}, err
	}
	return progress.AssessRecovery(progress.TrailingLoads(entries, today)), nil
}

func (bs *BodyService) SaveSteps(ctx context.Context, uid uuid.UUID, today time.Time, req *StepsRequest) (*entity.StepsLog, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	target := req.Target
	if target == 0 {
		target = progress.DefaultStepsTarget
	}
	stepsLog := entity.StepsLog{
		UserID: uid,
		Date:   progress.Day(today),
		Steps:  req.Steps,
		Target: target,
	}
	if err := bs.stepsRepo.Upsert(ctx, &stepsLog); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("steps repository error: " + err.Error())
	}
	return &stepsLog, nil
}

func (bs *BodyService) WeeklySteps(ctx context.Context, uid uuid.UUID, today time.Time) (progress.StepsWeek, error) {
	today = progress.Day(today)
	logs, err := bs.stepsRepo.ListInRange(ctx, uid, today.AddDate(0, 0, -6), today)
	if err != nil {
		return progress.StepsWeek{}, errors.New("steps repository error: " + err.Error())
	}
	byDay := make(map[time.Time]progress.StepsDay, len(logs))
	for _, l := range logs {
		byDay[progress.Day(l.Date)] = progress.StepsDay{Steps: l.Steps, Target: l.Target}
	}
	return progress.WeeklySteps(today, byDay), nil
}
