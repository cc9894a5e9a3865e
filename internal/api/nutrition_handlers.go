package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/service"
	"github.com/limbo/ascend/pkg/httputil"
	"github.com/limbo/ascend/pkg/progress"
)

type FoodLogRequest struct {
	Calories progress.Number `json:"calories"`
	Protein  progress.Number `json:"protein"`
	Carbs    progress.Number `json:"carbs"`
	Fat      progress.Number `json:"fat"`
	Fiber    progress.Number `json:"fiber"`
	Sugar    progress.Number `json:"sugar"`
	Sodium   progress.Number `json:"sodium"`
}

type TargetRequest struct {
	Calories progress.Number `json:"calories"`
	Protein  progress.Number `json:"protein"`
	Carbs    progress.Number `json:"carbs"`
	Fat      progress.Number `json:"fat"`
}

type WeeklyNutritionResponse struct {
	Days []progress.ComplianceDay `json:"days"`
	service.NutritionSummary
}

func (req *FoodLogRequest) intake() progress.Intake {
	return progress.Intake{
		Calories: req.Calories.Float(),
		Protein:  req.Protein.Float(),
		Carbs:    req.Carbs.Float(),
		Fat:      req.Fat.Float(),
		Fiber:    req.Fiber.Float(),
		Sugar:    req.Sugar.Float(),
		Sodium:   req.Sodium.Float(),
	}
}

// SaveFoodLog godoc
// @Summary Save today's nutrition totals
// @Description Nutrition XP is paid at most once per day.
// @Tags nutrition
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body FoodLogRequest true "day totals"
// @Success 200 {object} service.FoodLogResult
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /nutrition/food [post]
func (s *Server) SaveFoodLog(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save food log error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req FoodLogRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("save food log error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	res, err := s.nutritionService.SaveFoodLog(ctx, uid, today(), req.intake())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("save food log error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("save food log error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving food log", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, res)
	logger.Info("food log saved", slog.Int("xp_awarded", res.XPAwarded))
}

// GetTarget godoc
// @Summary Daily nutrition targets, defaults on first access
// @Tags nutrition
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.FoodTarget
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Router /nutrition/target [get]
func (s *Server) GetTarget(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get target error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	target, err := s.nutritionService.GetTarget(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("get target error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("get target error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting targets", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, target)
	logger.Info("targets provided")
}

// SetTarget godoc
// @Summary Replace daily nutrition targets
// @Tags nutrition
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body TargetRequest true "targets"
// @Success 200 {object} entity.FoodTarget
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /nutrition/target [put]
func (s *Server) SetTarget(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("set target error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req TargetRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("set target error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	target, err := s.nutritionService.SetTarget(ctx, uid, &service.TargetRequest{
		Calories: req.Calories.Float(),
		Protein:  req.Protein.Float(),
		Carbs:    req.Carbs.Float(),
		Fat:      req.Fat.Float(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("set target error: invalid targets")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid targets", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("set target error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("set target error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving targets", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, target)
	logger.Info("targets updated")
}

// NutritionToday godoc
// @Summary Today's totals against targets
// @Tags nutrition
// @Security BearerAuth
// @Produce json
// @Success 200 {object} service.NutritionDay
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Router /nutrition/today [get]
func (s *Server) NutritionToday(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("nutrition today error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	day, err := s.nutritionService.Today(ctx, uid, today())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrUserNotFound), errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("nutrition today error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("nutrition today error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting nutrition", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, day)
	logger.Info("nutrition today provided")
}

// NutritionWeekly godoc
// @Summary Compliance bitmap, average calories and trend of the last 7 days
// @Tags nutrition
// @Security BearerAuth
// @Produce json
// @Success 200 {object} WeeklyNutritionResponse
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Router /nutrition/weekly [get]
func (s *Server) NutritionWeekly(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("nutrition weekly error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	now := today()
	days, err := s.nutritionService.WeeklyCompliance(ctx, uid, now)
	if err == nil {
		var summary *service.NutritionSummary
		summary, err = s.nutritionService.WeeklySummary(ctx, uid, now)
		if err == nil {
			httputil.WriteJSONResponse(w, http.StatusOK, WeeklyNutritionResponse{Days: days, NutritionSummary: *summary})
			logger.Info("nutrition weekly provided")
			return
		}
	}
	if errors.Is(err, errorvalues.ErrUserNotFound) {
		logger.Error("nutrition weekly error: unexist user")
		httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		return
	}
	logger.Error("nutrition weekly error: service error", slog.String("error", err.Error()))
	httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting weekly nutrition", nil)
}

// NutritionMonthly godoc
// @Summary Perfect, ok or bad status of each day of the current month
// @Tags nutrition
// @Security BearerAuth
// @Produce json
// @Success 200 {array} progress.CalendarDay
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Router /nutrition/monthly [get]
func (s *Server) NutritionMonthly(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("nutrition monthly error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	days, err := s.nutritionService.MonthlyCalendar(ctx, uid, today())
	if err != nil {
		if errors.Is(err, errorvalues.ErrUserNotFound) {
			logger.Error("nutrition monthly error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
			return
		}
		logger.Error("nutrition monthly error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting monthly calendar", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, days)
	logger.Info("nutrition monthly provided")
}
