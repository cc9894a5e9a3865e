package api_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/limbo/ascend/internal/api"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/service"
	"github.com/limbo/ascend/internal/service/mocks"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/stretchr/testify/assert"
)

func TestReflectionHandlers(t *testing.T) {
	ctrl := gomock.NewController(t)
	rService := mocks.NewMockReflectionServiceI(ctrl)
	serv := api.New(&api.ServicesList{
		ReflectionService: rService,
	})
	day := time.Date(2025, 3, 12, 0, 0, 0, 0, time.UTC)

	t.Run("mood sent as string", func(t *testing.T) {
		rService.EXPECT().SaveReflection(gomock.Any(), userID, gomock.Any(), &service.ReflectionRequest{Mood: 7, Note: "good day"}).
			Return(&entity.DailyReflection{UserID: userID, Date: day, Mood: 7, Note: "good day"}, nil)
		rr := httptest.NewRecorder()
		body := []byte(`{"mood":"7","note":"good day"}`)
		serv.SaveReflection(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/reflections", bytes.NewReader(body))))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("malformed mood fails validation", func(t *testing.T) {
		rService.EXPECT().SaveReflection(gomock.Any(), userID, gomock.Any(), &service.ReflectionRequest{Mood: 0}).
			Return(nil, errorvalues.ErrValidation)
		rr := httptest.NewRecorder()
		body := []byte(`{"mood":"great"}`)
		serv.SaveReflection(rr, withUser(httptest.NewRequest(http.MethodPost, "/api/v1/reflections", bytes.NewReader(body))))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("by date", func(t *testing.T) {
		rService.EXPECT().GetReflection(gomock.Any(), userID, day).
			Return(&entity.DailyReflection{UserID: userID, Date: day, Mood: 5}, nil)
		rr := httptest.NewRecorder()
		serv.GetReflection(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/reflections?date=2025-03-12", nil)))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
	t.Run("invalid date", func(t *testing.T) {
		rr := httptest.NewRecorder()
		serv.GetReflection(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/reflections?date=12.03.2025", nil)))
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
	t.Run("no reflection", func(t *testing.T) {
		rService.EXPECT().GetReflection(gomock.Any(), userID, gomock.Any()).Return(nil, errorvalues.ErrReflectionNotFound)
		rr := httptest.NewRecorder()
		serv.GetReflection(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/reflections", nil)))
		assert.Equal(t, http.StatusNotFound, rr.Code)
	})
	t.Run("history", func(t *testing.T) {
		rService.EXPECT().History(gomock.Any(), userID, 5).Return([]entity.DailyReflection{{Mood: 5}, {Mood: 6}}, nil)
		rr := httptest.NewRecorder()
		serv.ReflectionHistory(rr, withUser(httptest.NewRequest(http.MethodGet, "/api/v1/reflections/history?limit=5", nil)))
		assert.Equal(t, http.StatusOK, rr.Code)
	})
}
