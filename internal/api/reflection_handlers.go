package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/bytedance/sonic"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/service"
	"github.com/limbo/ascend/pkg/httputil"
	"github.com/limbo/ascend/pkg/progress"
)

type ReflectionRequest struct {
	Mood progress.Number `json:"mood"`
	Note string          `json:"note"`
}

// SaveReflection godoc
// @Summary Save today's mood and note, replacing an earlier one
// @Tags reflections
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body ReflectionRequest true "reflection"
// @Success 200 {object} entity.DailyReflection
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /reflections [post]
func (s *Server) SaveReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save reflection error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req ReflectionRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("save reflection error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	reflection, err := s.reflectionService.SaveReflection(ctx, uid, today(), &service.ReflectionRequest{
		Mood: req.Mood.Int(),
		Note: req.Note,
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("save reflection error: invalid reflection")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid reflection", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("save reflection error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("save reflection error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving reflection", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
	logger.Info("reflection saved")
}

// GetReflection godoc
// @Summary Reflection of one day, today by default
// @Tags reflections
// @Security BearerAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD"
// @Success 200 {object} entity.DailyReflection
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /reflections [get]
func (s *Server) GetReflection(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get reflection error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	day := today()
	if raw := r.URL.Query().Get("date"); raw != "" {
		day, err = time.Parse(time.DateOnly, raw)
		if err != nil {
			logger.Error("get reflection error: invalid date")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "date must be YYYY-MM-DD", nil)
			return
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	reflection, err := s.reflectionService.GetReflection(ctx, uid, day)
	if err != nil {
		if errors.Is(err, errorvalues.ErrReflectionNotFound) {
			logger.Error("get reflection error: no reflection for date")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "no reflection for this date", nil)
			return
		}
		logger.Error("get reflection error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting reflection", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, reflection)
	logger.Info("reflection provided")
}

// ReflectionHistory godoc
// @Summary Most recent reflections first
// @Tags reflections
// @Security BearerAuth
// @Produce json
// @Param limit query int false "entries to return"
// @Success 200 {array} entity.DailyReflection
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /reflections/history [get]
func (s *Server) ReflectionHistory(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("reflection history error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	limit, err := strconv.Atoi(r.URL.Query().Get("limit"))
	if err != nil || limit < 1 {
		limit = 30
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	history, err := s.reflectionService.History(ctx, uid, limit)
	if err != nil {
		logger.Error("reflection history error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting reflections", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, history)
	logger.Info("reflection history provided")
}
