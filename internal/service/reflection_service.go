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

const maxHistory = 90

type ReflectionService struct {
	repo repository.ReflectionsRepositoryI
}

func NewReflectionService(reflectionsRepo repository.ReflectionsRepositoryI) *ReflectionService {
	if reflectionsRepo == nil {
		log.Fatal("provided nil reflectionsRepo")
	}
	return &ReflectionService{
		repo: reflectionsRepo,
	}
}

func (rs *ReflectionService) SaveReflection(ctx context.Context, uid uuid.UUID, today time.Time, req *ReflectionRequest) (*entity.DailyReflection, error) {
	if err := validateStruct(req); err != nil {
		return nil, err
	}
	r := entity.DailyReflection{
		UserID: uid,
		Date:   progress.Day(today),
		Mood:   req.Mood,
		Note:   req.Note,
	}
	if err := rs.repo.Upsert(ctx, &r); err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.New("reflections repository error: " + err.Error())
	}
	return &r, nil
}

func (rs *ReflectionService) GetReflection(ctx context.Context, uid uuid.UUID, day time.Time) (*entity.DailyReflection, error) {
	r, err := rs.repo.GetByDate(ctx, uid, progress.Day(day))
	if err != nil {
		if errors.Is(err, errorvalues.ErrReflectionNotFound) {
			return nil, err
		}
		return nil, errors.New("reflections repository error: " + err.Error())
	}
	return r, nil
}

func (rs *ReflectionService) History(ctx context.Context, uid uuid.UUID, limit int) ([]entity.DailyReflection, error) {
	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}
	history, err := rs.repo.ListByUserID(ctx, uid, limit)
	if err != nil {
		return nil, errors.New("reflections repository error: " + err.Error())
	}
	return history, nil
}
