package store

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/AkkAshy/kursi-sub000/internal/models"
	"github.com/AkkAshy/kursi-sub000/internal/store/mocks"
)

func newAuthStore(t *testing.T) (*Auth, *mocks.MockAuthAPI, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockAuthAPI(ctrl)
	return NewAuth(api), api, ctrl
}

func TestAuth_Login_CachesUser(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newAuthStore(t)
	defer ctrl.Finish()

	user := &models.User{ID: 7, Email: "teacher@example.uz", Role: models.RoleTeacher}
	api.EXPECT().Login(gomock.Any(), "teacher@example.uz", "secret").Return(user, nil)

	got, err := s.Login(context.Background(), "teacher@example.uz", "secret")
	require.NoError(t, err)
	require.Equal(t, user, got)
	require.Equal(t, user, s.User())
}

func TestAuth_Login_Error(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newAuthStore(t)
	defer ctrl.Finish()

	boom := errors.New("bad credentials")
	api.EXPECT().Login(gomock.Any(), "x@example.uz", "wrong").Return(nil, boom)

	_, err := s.Login(context.Background(), "x@example.uz", "wrong")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Err(), boom)
	require.Nil(t, s.User())
}

func TestAuth_Logout_DropsCachedUser(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newAuthStore(t)
	defer ctrl.Finish()

	user := &models.User{ID: 7}
	api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(user, nil)
	api.EXPECT().Logout(gomock.Any()).Return(nil)

	_, err := s.Login(context.Background(), "a@b.uz", "pw")
	require.NoError(t, err)

	require.NoError(t, s.Logout(context.Background()))
	require.Nil(t, s.User())
}

// Кэш профиля сбрасывается даже при провале выхода на бэкенде.
func TestAuth_Logout_DropsUserOnError(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newAuthStore(t)
	defer ctrl.Finish()

	boom := errors.New("revoke failed")
	api.EXPECT().Login(gomock.Any(), gomock.Any(), gomock.Any()).Return(&models.User{ID: 7}, nil)
	api.EXPECT().Logout(gomock.Any()).Return(boom)

	_, err := s.Login(context.Background(), "a@b.uz", "pw")
	require.NoError(t, err)

	require.ErrorIs(t, s.Logout(context.Background()), boom)
	require.Nil(t, s.User())
}

func TestAuth_Fetch_CachesUser(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newAuthStore(t)
	defer ctrl.Finish()

	user := &models.User{ID: 3, Role: models.RoleAdmin}
	api.EXPECT().Me(gomock.Any()).Return(user, nil)

	got, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Equal(t, user, got)
	require.Equal(t, user, s.User())
}
