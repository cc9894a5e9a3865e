package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/pkg/httputil"
	"github.com/limbo/ascend/pkg/progress"
)

type ToggleResponse struct {
	Status       string `json:"status"`
	XP           int    `json:"xp"`
	DailyStreak  int    `json:"daily_streak"`
	WeeklyStreak int    `json:"weekly_streak"`
}

type SeriesResponse struct {
	Days    progress.Series    `json:"days"`
	ByLabel map[string]float64 `json:"by_label,omitempty"`
}

// ToggleHabit godoc
// @Summary Complete habit for today or undo today's completion
// @Tags habits
// @Security BearerAuth
// @Produce json
// @Param id path string true "habit id"
// @Success 200 {object} ToggleResponse
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /habits/{id}/toggle [post]
func (s *Server) ToggleHabit(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("toggle error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := habitIDFromPath(r)
	if err != nil {
		logger.Error("toggle error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	res, err := s.completionService.ToggleHabit(ctx, id, uid, today())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("toggle error: unexist or foreign habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		case errors.Is(err, errorvalues.ErrProfileNotFound):
			logger.Error("toggle error: player profile missing")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "player profile doesn't exist", nil)
		default:
			logger.Error("toggle error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while toggling habit", nil)
		}
		return
	}
	status := "undone"
	if res.Done {
		status = "done"
	}
	httputil.WriteJSONResponse(w, http.StatusOK, ToggleResponse{
		Status:       status,
		XP:           res.XP,
		DailyStreak:  res.DailyStreak,
		WeeklyStreak: res.WeeklyStreak,
	})
	logger.Info("habit toggled", slog.String("status", status))
}

// HabitStats godoc
// @Summary Completion totals and streaks of one habit
// @Tags habits
// @Security BearerAuth
// @Produce json
// @Param id path string true "habit id"
// @Success 200 {object} entity.HabitStats
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /habits/{id}/stats [get]
func (s *Server) HabitStats(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("habit stats error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	id, err := habitIDFromPath(r)
	if err != nil {
		logger.Error("habit stats error: invalid id in path value")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid habit id in path value", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stats, err := s.completionService.HabitStats(ctx, id, uid, today())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrHabitNotFound), errors.Is(err, errorvalues.ErrWrongOwner):
			logger.Error("habit stats error: unexist or foreign habit")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "habit doesn't exist", nil)
		default:
			logger.Error("habit stats error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting habit stats", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stats)
	logger.Info("habit stats provided")
}

// GetXP godoc
// @Summary XP and streaks of the player
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} entity.PlayerProfile
// @Failure 401,404,500 {object} httputil.ErrorResponse
// @Router /xp [get]
func (s *Server) GetXP(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get xp error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	profile, err := s.completionService.GetXP(ctx, uid)
	if err != nil {
		if errors.Is(err, errorvalues.ErrProfileNotFound) {
			logger.Error("get xp error: player profile missing")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "player profile doesn't exist", nil)
			return
		}
		logger.Error("get xp error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting xp", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, profile)
	logger.Info("xp provided")
}

// DailyProgress godoc
// @Summary Share of habits completed today
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} progress.DailyProgress
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /habits/progress/daily [get]
func (s *Server) DailyProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("daily progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	dp, err := s.completionService.DailyProgress(ctx, uid, today())
	if err != nil {
		logger.Error("daily progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting daily progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, dp)
	logger.Info("daily progress provided")
}

// WeeklyProgress godoc
// @Summary Completion percent for each of the last 7 days
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SeriesResponse
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /habits/progress/weekly [get]
func (s *Server) WeeklyProgress(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("weekly progress error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	series, err := s.completionService.WeeklyProgress(ctx, uid, today())
	if err != nil {
		logger.Error("weekly progress error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting weekly progress", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SeriesResponse{Days: series, ByLabel: series.ByLabel()})
	logger.Info("weekly progress provided")
}

// MonthlyHeatmap godoc
// @Summary Completion count for each day of the current month
// @Tags progress
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SeriesResponse
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /habits/progress/monthly [get]
func (s *Server) MonthlyHeatmap(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("monthly heatmap error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	series, err := s.completionService.MonthlyHeatmap(ctx, uid, today())
	if err != nil {
		logger.Error("monthly heatmap error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting monthly heatmap", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SeriesResponse{Days: series})
	logger.Info("monthly heatmap provided")
}
