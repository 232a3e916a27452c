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

func newLeadsStore(t *testing.T) (*Leads, *mocks.MockLeadsAPI, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockLeadsAPI(ctrl)
	return NewLeads(api), api, ctrl
}

func TestLeads_Fetch_OK(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLeadsStore(t)
	defer ctrl.Finish()

	leads := []models.Lead{
		{ID: 1, Name: "Аноркул", Status: models.LeadNew},
		{ID: 2, Name: "Дильноза", Status: models.LeadContacted},
	}

	api.EXPECT().Leads(gomock.Any(), models.LeadStatus("")).Return(leads, nil)

	got, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, got, s.Items())
}

func TestLeads_FetchByStatus_PassesFilter(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLeadsStore(t)
	defer ctrl.Finish()

	api.EXPECT().Leads(gomock.Any(), models.LeadNew).
		Return([]models.Lead{{ID: 1, Status: models.LeadNew}}, nil)

	got, err := s.FetchByStatus(context.Background(), models.LeadNew)
	require.NoError(t, err)
	require.Len(t, got, 1)
}

func TestLeads_SetStatus_MergesResult(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLeadsStore(t)
	defer ctrl.Finish()

	api.EXPECT().Leads(gomock.Any(), models.LeadStatus("")).
		Return([]models.Lead{{ID: 1, Status: models.LeadNew}}, nil)
	api.EXPECT().UpdateLeadStatus(gomock.Any(), int64(1), models.LeadEnrolled, "оплатил").
		Return(&models.Lead{ID: 1, Status: models.LeadEnrolled, Comment: "оплатил"}, nil)

	_, err := s.Fetch(context.Background())
	require.NoError(t, err)

	got, err := s.SetStatus(context.Background(), 1, models.LeadEnrolled, "оплатил")
	require.NoError(t, err)
	require.Equal(t, models.LeadEnrolled, got.Status)

	items := s.Items()
	require.Equal(t, models.LeadEnrolled, items[0].Status)
	require.Equal(t, "оплатил", items[0].Comment)
}

func TestLeads_SetStatus_ErrorSurfaced(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLeadsStore(t)
	defer ctrl.Finish()

	boom := errors.New("lead gone")
	api.EXPECT().UpdateLeadStatus(gomock.Any(), int64(9), models.LeadRejected, "").
		Return(nil, boom)

	_, err := s.SetStatus(context.Background(), 9, models.LeadRejected, "")
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Err(), boom)
}

func TestLeads_SetStatus_ActionInFlight(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLeadsStore(t)
	defer ctrl.Finish()

	entered := make(chan struct{})
	release := make(chan struct{})

	api.EXPECT().UpdateLeadStatus(gomock.Any(), int64(1), models.LeadContacted, "").
		DoAndReturn(func(context.Context, int64, models.LeadStatus, string) (*models.Lead, error) {
			close(entered)
			<-release
			return &models.Lead{ID: 1, Status: models.LeadContacted}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := s.SetStatus(context.Background(), 1, models.LeadContacted, "")
		done <- err
	}()

	<-entered

	_, err := s.SetStatus(context.Background(), 1, models.LeadEnrolled, "")
	require.ErrorIs(t, err, ErrActionInFlight)

	close(release)
	require.NoError(t, <-done)
}
