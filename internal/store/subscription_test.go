package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/AkkAshy/kursi-sub000/internal/models"
	"github.com/AkkAshy/kursi-sub000/internal/store/mocks"
)

func newSubscriptionStore(t *testing.T) (*Subscription, *mocks.MockSubscriptionAPI, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockSubscriptionAPI(ctrl)
	return NewSubscription(api), api, ctrl
}

func proPlan() models.Plan {
	return models.Plan{ID: 2, Name: "Pro", Slug: "pro", Price: "900000", MaxCourses: 50, MaxStudents: 1000}
}

func TestSubscription_FetchPlans_OK(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newSubscriptionStore(t)
	defer ctrl.Finish()

	plans := []models.Plan{{ID: 1, Name: "Start", Slug: "start"}, proPlan()}
	api.EXPECT().Plans(gomock.Any()).Return(plans, nil)

	got, err := s.FetchPlans(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, got, s.CachedPlans())
}

func TestSubscription_FetchCurrent_OK(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newSubscriptionStore(t)
	defer ctrl.Finish()

	sub := &models.Subscription{
		ID:        10,
		Plan:      proPlan(),
		Status:    models.SubscriptionActive,
		ExpiresAt: time.Now().Add(30 * 24 * time.Hour),
	}
	api.EXPECT().CurrentSubscription(gomock.Any()).Return(sub, nil)

	got, err := s.FetchCurrent(context.Background())
	require.NoError(t, err)
	require.Equal(t, sub, got)
	require.Equal(t, sub, s.Current())
}

func TestSubscription_FetchUsage_OK(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newSubscriptionStore(t)
	defer ctrl.Finish()

	usage := &models.Usage{Courses: 3, Students: 120, StorageUsedMB: 2048}
	api.EXPECT().SubscriptionUsage(gomock.Any()).Return(usage, nil)

	got, err := s.FetchUsage(context.Background())
	require.NoError(t, err)
	require.Equal(t, usage, got)
	require.Equal(t, usage, s.Usage())
}

func TestSubscription_Change_ReplacesCurrent(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newSubscriptionStore(t)
	defer ctrl.Finish()

	old := &models.Subscription{ID: 10, Plan: models.Plan{ID: 1, Slug: "start"}, Status: models.SubscriptionActive}
	next := &models.Subscription{ID: 11, Plan: proPlan(), Status: models.SubscriptionActive}

	api.EXPECT().CurrentSubscription(gomock.Any()).Return(old, nil)
	api.EXPECT().ChangePlan(gomock.Any(), int64(2)).Return(next, nil)

	_, err := s.FetchCurrent(context.Background())
	require.NoError(t, err)

	got, err := s.Change(context.Background(), 2)
	require.NoError(t, err)
	require.Equal(t, "pro", got.Plan.Slug)
	require.Equal(t, next, s.Current())
}

func TestSubscription_Change_ErrorKeepsOldCurrent(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newSubscriptionStore(t)
	defer ctrl.Finish()

	old := &models.Subscription{ID: 10, Status: models.SubscriptionActive}
	boom := errors.New("plan limit")

	api.EXPECT().CurrentSubscription(gomock.Any()).Return(old, nil)
	api.EXPECT().ChangePlan(gomock.Any(), int64(5)).Return(nil, boom)

	_, err := s.FetchCurrent(context.Background())
	require.NoError(t, err)

	_, err = s.Change(context.Background(), 5)
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Err(), boom)
	require.Equal(t, old, s.Current())
}
