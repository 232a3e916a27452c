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

func newCoursesStore(t *testing.T) (*Courses, *mocks.MockCoursesAPI, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockCoursesAPI(ctrl)
	return NewCourses(api), api, ctrl
}

func sampleCourses() []models.Course {
	return []models.Course{
		{ID: 1, Title: "Go с нуля", Price: "500000", IsPublished: true},
		{ID: 2, Title: "SQL для аналитиков", Price: "350000"},
	}
}

func TestCourses_Fetch_OK(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	api.EXPECT().Courses(gomock.Any()).Return(sampleCourses(), nil)

	got, err := s.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Equal(t, got, s.Items())
	require.NoError(t, s.Err())
	require.False(t, s.Loading())
}

func TestCourses_Fetch_ErrorKeptUntilNextSuccess(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	boom := errors.New("backend down")
	api.EXPECT().Courses(gomock.Any()).Return(nil, boom)

	_, err := s.Fetch(context.Background())
	require.ErrorIs(t, err, boom)
	require.ErrorIs(t, s.Err(), boom)

	// Следующий успех сбрасывает ошибку.
	api.EXPECT().Courses(gomock.Any()).Return(sampleCourses(), nil)

	_, err = s.Fetch(context.Background())
	require.NoError(t, err)
	require.NoError(t, s.Err())
}

func TestCourses_ClearErr(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	api.EXPECT().Courses(gomock.Any()).Return(nil, errors.New("boom"))

	_, _ = s.Fetch(context.Background())
	require.Error(t, s.Err())

	s.ClearErr()
	require.NoError(t, s.Err())
}

func TestCourses_Create_AppendsToCache(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	title := "Python"
	created := &models.Course{ID: 3, Title: title}

	api.EXPECT().CreateCourse(gomock.Any(), gomock.Any()).Return(created, nil)

	got, err := s.Create(context.Background(), models.CourseInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, created, got)

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, int64(3), items[0].ID)
}

func TestCourses_SetPublished_MergesResult(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	api.EXPECT().Courses(gomock.Any()).Return(sampleCourses(), nil)
	api.EXPECT().PublishCourse(gomock.Any(), int64(2)).
		Return(&models.Course{ID: 2, Title: "SQL для аналитиков", IsPublished: true}, nil)

	_, err := s.Fetch(context.Background())
	require.NoError(t, err)

	got, err := s.SetPublished(context.Background(), 2, true)
	require.NoError(t, err)
	require.True(t, got.IsPublished)

	items := s.Items()
	require.Len(t, items, 2)
	require.True(t, items[1].IsPublished)
}

func TestCourses_Delete_RemovesFromCache(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	api.EXPECT().Courses(gomock.Any()).Return(sampleCourses(), nil)
	api.EXPECT().DeleteCourse(gomock.Any(), int64(1)).Return(nil)

	_, err := s.Fetch(context.Background())
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), 1))

	items := s.Items()
	require.Len(t, items, 1)
	require.Equal(t, int64(2), items[0].ID)
}

// Второе действие по той же сущности, пока первое в полёте, отклоняется.
func TestCourses_ActionInFlight(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	entered := make(chan struct{})
	release := make(chan struct{})

	api.EXPECT().DeleteCourse(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) error {
			close(entered)
			<-release
			return nil
		})

	done := make(chan error, 1)
	go func() {
		done <- s.Delete(context.Background(), 1)
	}()

	<-entered

	err := s.Delete(context.Background(), 1)
	require.ErrorIs(t, err, ErrActionInFlight)

	close(release)
	require.NoError(t, <-done)

	// Замок снят: повторное действие снова возможно.
	api.EXPECT().DeleteCourse(gomock.Any(), int64(1)).Return(nil)
	require.NoError(t, s.Delete(context.Background(), 1))
}

// Замок пер-сущностный: действие по другому курсу не блокируется.
func TestCourses_ActionInFlight_OtherEntityFree(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	entered := make(chan struct{})
	release := make(chan struct{})

	api.EXPECT().DeleteCourse(gomock.Any(), int64(1)).
		DoAndReturn(func(context.Context, int64) error {
			close(entered)
			<-release
			return nil
		})
	api.EXPECT().DeleteCourse(gomock.Any(), int64(2)).Return(nil)

	done := make(chan error, 1)
	go func() {
		done <- s.Delete(context.Background(), 1)
	}()

	<-entered

	require.NoError(t, s.Delete(context.Background(), 2))

	close(release)
	require.NoError(t, <-done)
}

// Items отдаёт копию: мутация снаружи не портит кэш.
func TestCourses_ItemsSnapshot(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newCoursesStore(t)
	defer ctrl.Finish()

	api.EXPECT().Courses(gomock.Any()).Return(sampleCourses(), nil)

	_, err := s.Fetch(context.Background())
	require.NoError(t, err)

	items := s.Items()
	items[0].Title = "mutated"

	require.Equal(t, "Go с нуля", s.Items()[0].Title)
}
