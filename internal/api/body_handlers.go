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

type SetRequest struct {
	Sets            progress.Number  `json:"sets"`
	Reps            progress.Number  `json:"reps"`
	Weight          *progress.Number `json:"weight,omitempty"`
	DurationMinutes progress.Number  `json:"duration_minutes"`
	Intensity       string           `json:"intensity"`
}

type GymRequest struct {
	BodyPart string       `json:"body_part"`
	Sets     []SetRequest `json:"sets"`
}

type StepsRequest struct {
	Steps  progress.Number `json:"steps"`
	Target progress.Number `json:"target"`
}

func (req *GymRequest) toService() *service.GymRequest {
	out := &service.GymRequest{
		BodyPart: req.BodyPart,
		Sets:     make([]service.SetRequest, 0, len(req.Sets)),
	}
	for _, s := range req.Sets {
		set := service.SetRequest{
			Sets:            s.Sets.Int(),
			Reps:            s.Reps.Int(),
			DurationMinutes: s.DurationMinutes.Int(),
			Intensity:       s.Intensity,
		}
		if s.Weight != nil {
			weight := s.Weight.Float()
			set.Weight = &weight
		}
		out.Sets = append(out.Sets, set)
	}
	return out
}

// LogGym godoc
// @Summary Append sets to today's log of a body part
// @Tags body
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body GymRequest true "sets"
// @Success 201 {object} entity.GymLog
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /body/gym [post]
func (s *Server) LogGym(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("log gym error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req GymRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("log gym error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	gymLog, err := s.bodyService.LogGym(ctx, uid, today(), req.toService())
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("log gym error: invalid sets")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid workout", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("log gym error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("log gym error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while logging workout", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusCreated, gymLog)
	logger.Info("workout logged", slog.String("body_part", string(gymLog.BodyPart)))
}

// WeeklySymmetry godoc
// @Summary Share of weekly training load per body part
// @Tags body
// @Security BearerAuth
// @Produce json
// @Success 200 {array} progress.PartShare
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /body/symmetry [get]
func (s *Server) WeeklySymmetry(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("symmetry error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	shares, err := s.bodyService.WeeklySymmetry(ctx, uid, today())
	if err != nil {
		logger.Error("symmetry error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while calculating symmetry", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, shares)
	logger.Info("symmetry provided")
}

// WeeklyTrend godoc
// @Summary Training load for each of the last 7 days
// @Tags body
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SeriesResponse
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /body/trend [get]
func (s *Server) WeeklyTrend(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("trend error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	series, err := s.bodyService.WeeklyTrend(ctx, uid, today())
	if err != nil {
		logger.Error("trend error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while calculating trend", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, SeriesResponse{Days: series, ByLabel: series.ByLabel()})
	logger.Info("trend provided")
}

// Recovery godoc
// @Summary Recovery score of today's load against the previous 6 days
// @Tags body
// @Security BearerAuth
// @Produce json
// @Success 200 {object} progress.Recovery
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /body/recovery [get]
func (s *Server) Recovery(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("recovery error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	recovery, err := s.bodyService.Recovery(ctx, uid, today())
	if err != nil {
		logger.Error("recovery error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while calculating recovery", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, recovery)
	logger.Info("recovery provided", slog.Int("score", recovery.Score))
}

// SaveSteps godoc
// @Summary Save today's step count
// @Tags body
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body StepsRequest true "steps"
// @Success 200 {object} entity.StepsLog
// @Failure 400,401,404,500 {object} httputil.ErrorResponse
// @Router /body/steps [post]
func (s *Server) SaveSteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("save steps error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	var req StepsRequest
	defer r.Body.Close()
	if err = sonic.ConfigDefault.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error("save steps error: invalid request body")
		httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid request body", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	stepsLog, err := s.bodyService.SaveSteps(ctx, uid, today(), &service.StepsRequest{
		Steps:  req.Steps.Int(),
		Target: req.Target.Int(),
	})
	if err != nil {
		switch {
		case errors.Is(err, errorvalues.ErrValidation):
			logger.Error("save steps error: invalid steps")
			httputil.WriteErrorResponse(w, http.StatusBadRequest, "invalid steps", err)
		case errors.Is(err, errorvalues.ErrUserNotFound):
			logger.Error("save steps error: unexist user")
			httputil.WriteErrorResponse(w, http.StatusNotFound, "user doesn't exist", nil)
		default:
			logger.Error("save steps error: service error", slog.String("error", err.Error()))
			httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while saving steps", nil)
		}
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, stepsLog)
	logger.Info("steps saved")
}

// GetSteps godoc
// @Summary Today's steps against target
// @Tags body
// @Security BearerAuth
// @Produce json
// @Success 200 {object} progress.StepsBucket
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /body/steps [get]
func (s *Server) GetSteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("get steps error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	week, err := s.bodyService.WeeklySteps(ctx, uid, today())
	if err != nil {
		logger.Error("get steps error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting steps", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, week.Days[len(week.Days)-1])
	logger.Info("steps provided")
}

// WeeklySteps godoc
// @Summary Steps for each of the last 7 days
// @Tags body
// @Security BearerAuth
// @Produce json
// @Success 200 {object} progress.StepsWeek
// @Failure 401,500 {object} httputil.ErrorResponse
// @Router /body/steps/weekly [get]
func (s *Server) WeeklySteps(w http.ResponseWriter, r *http.Request) {
	logger := GetLoggerFromCtx(r.Context())
	uid, err := GetUIDFromContext(r)
	if err != nil {
		logger.Error("weekly steps error: unauthorized")
		httputil.WriteErrorResponse(w, http.StatusUnauthorized, "no authorization", nil)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Second*10)
	defer cancel()
	week, err := s.bodyService.WeeklySteps(ctx, uid, today())
	if err != nil {
		logger.Error("weekly steps error: service error", slog.String("error", err.Error()))
		httputil.WriteErrorResponse(w, http.StatusInternalServerError, "internal error while getting weekly steps", nil)
		return
	}
	httputil.WriteJSONResponse(w, http.StatusOK, week)
	logger.Info("weekly steps provided")
}
