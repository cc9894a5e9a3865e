package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	errorvalues "github.com/limbo/ascend/internal/error_values"
	"github.com/limbo/ascend/internal/repository/mocks"
	"github.com/limbo/ascend/internal/service"
	"github.com/limbo/ascend/pkg/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestMain(m *testing.M) {
	service.InitValidator()
	m.Run()
}

func TestRegister(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	uid := uuid.New()
	testCases := []struct {
		Desc         string
		Error        error
		Req          service.RegisterRequest
		MockPrepFunc func()
	}{
		{
			Desc: "registered",
			Req:  service.RegisterRequest{Name: "runner_1", Password: "long_password"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, u *entity.User) error {
					u.ID = uid
					return nil
				})
			},
		},
		{
			Desc:         "invalid name",
			Error:        errorvalues.ErrValidation,
			Req:          service.RegisterRequest{Name: "1runner", Password: "long_password"},
			MockPrepFunc: func() {},
		},
		{
			Desc:         "short password",
			Error:        errorvalues.ErrValidation,
			Req:          service.RegisterRequest{Name: "runner", Password: "short"},
			MockPrepFunc: func() {},
		},
		{
			Desc:  "already exists",
			Error: errorvalues.ErrUserExists,
			Req:   service.RegisterRequest{Name: "runner_1", Password: "long_password"},
			MockPrepFunc: func() {
				repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(errorvalues.ErrUserExists)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			user, err := us.Register(ctx, &tc.Req)
			if tc.Error != nil {
				assert.ErrorIs(t, err, tc.Error)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, uid, user.ID)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(tc.Req.Password)))
		})
	}
}

func TestLogin(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	hash, err := service.Hash("long_password")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "runner", PasswordHash: hash}
	testCases := []struct {
		Desc         string
		Error        error
		Password     string
		MockPrepFunc func()
	}{
		{
			Desc:     "success",
			Password: "long_password",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "runner").Return(user, nil)
			},
		},
		{
			Desc:     "wrong password",
			Error:    errorvalues.ErrWrongCredentials,
			Password: "other_password",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "runner").Return(user, nil)
			},
		},
		{
			Desc:     "unknown user",
			Error:    errorvalues.ErrWrongCredentials,
			Password: "long_password",
			MockPrepFunc: func() {
				repo.EXPECT().FindByName(gomock.Any(), "runner").Return(nil, errorvalues.ErrUserNotFound)
			},
		},
	}
	ctx := context.Background()
	for _, tc := range testCases {
		t.Run(tc.Desc, func(t *testing.T) {
			tc.MockPrepFunc()
			res, err := us.Login(ctx, "runner", tc.Password)
			assert.ErrorIs(t, err, tc.Error)
			if tc.Error == nil {
				assert.Equal(t, user, res)
			}
		})
	}
}

func TestDeleteAccount(t *testing.T) {
	t.Parallel()
	ctrl := gomock.NewController(t)
	repo := mocks.NewMockUsersRepositoryI(ctrl)
	us := service.NewUserService(repo)
	hash, err := service.Hash("long_password")
	require.NoError(t, err)
	user := &entity.User{ID: uuid.New(), Name: "runner", PasswordHash: hash}
	ctx := context.Background()

	t.Run("wrong password", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		assert.ErrorIs(t, us.DeleteAccount(ctx, user.ID, "nope"), errorvalues.ErrWrongCredentials)
	})
	t.Run("deleted", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(user, nil)
		repo.EXPECT().Delete(gomock.Any(), user.ID).Return(nil)
		assert.NoError(t, us.DeleteAccount(ctx, user.ID, "long_password"))
	})
	t.Run("repository error", func(t *testing.T) {
		repo.EXPECT().FindByID(gomock.Any(), user.ID).Return(nil, errors.New("db error"))
		err := us.DeleteAccount(ctx, user.ID, "long_password")
		assert.EqualError(t, err, "repository searching error: db error")
	})
}
