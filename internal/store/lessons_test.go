package store

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/AkkAshy/kursi-sub000/internal/models"
	"github.com/AkkAshy/kursi-sub000/internal/store/mocks"
)

func newLessonsStore(t *testing.T) (*Lessons, *mocks.MockLessonsAPI, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	api := mocks.NewMockLessonsAPI(ctrl)
	return NewLessons(api), api, ctrl
}

func TestLessons_Fetch_PartitionedByCourse(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLessonsStore(t)
	defer ctrl.Finish()

	api.EXPECT().Lessons(gomock.Any(), int64(1)).
		Return([]models.Lesson{{ID: 10, CourseID: 1, Title: "Введение"}}, nil)
	api.EXPECT().Lessons(gomock.Any(), int64(2)).
		Return([]models.Lesson{{ID: 20, CourseID: 2, Title: "JOIN"}, {ID: 21, CourseID: 2, Title: "Индексы"}}, nil)

	_, err := s.Fetch(context.Background(), 1)
	require.NoError(t, err)
	_, err = s.Fetch(context.Background(), 2)
	require.NoError(t, err)

	require.Len(t, s.Items(1), 1)
	require.Len(t, s.Items(2), 2)
	require.Empty(t, s.Items(3))
}

func TestLessons_Create_AppendsToCourse(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLessonsStore(t)
	defer ctrl.Finish()

	title := "Горутины"
	api.EXPECT().CreateLesson(gomock.Any(), int64(1), gomock.Any()).
		Return(&models.Lesson{ID: 11, CourseID: 1, Title: title}, nil)

	got, err := s.Create(context.Background(), 1, models.LessonInput{Title: &title})
	require.NoError(t, err)
	require.Equal(t, "Горутины", got.Title)
	require.Len(t, s.Items(1), 1)
}

func TestLessons_Delete_RemovesFromCourse(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLessonsStore(t)
	defer ctrl.Finish()

	api.EXPECT().Lessons(gomock.Any(), int64(1)).
		Return([]models.Lesson{{ID: 10, CourseID: 1}, {ID: 11, CourseID: 1}}, nil)
	api.EXPECT().DeleteLesson(gomock.Any(), int64(10)).Return(nil)

	_, err := s.Fetch(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), 10))

	items := s.Items(1)
	require.Len(t, items, 1)
	require.Equal(t, int64(11), items[0].ID)
}

func TestLessons_UploadMaterial_AttachesToLesson(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLessonsStore(t)
	defer ctrl.Finish()

	api.EXPECT().Lessons(gomock.Any(), int64(1)).
		Return([]models.Lesson{{ID: 10, CourseID: 1}}, nil)
	api.EXPECT().UploadMaterial(gomock.Any(), int64(10), "конспект.pdf", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ int64, name string, file io.Reader) (*models.Material, error) {
			raw, err := io.ReadAll(file)
			require.NoError(t, err)
			require.Equal(t, "file-bytes", string(raw))

			return &models.Material{ID: 99, LessonID: 10, Name: name}, nil
		})

	_, err := s.Fetch(context.Background(), 1)
	require.NoError(t, err)

	material, err := s.UploadMaterial(context.Background(), 10, "конспект.pdf", strings.NewReader("file-bytes"))
	require.NoError(t, err)
	require.Equal(t, int64(99), material.ID)

	items := s.Items(1)
	require.Len(t, items[0].Materials, 1)
	require.Equal(t, "конспект.pdf", items[0].Materials[0].Name)
}

func TestLessons_DeleteMaterial_DetachesEverywhere(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLessonsStore(t)
	defer ctrl.Finish()

	api.EXPECT().Lessons(gomock.Any(), int64(1)).
		Return([]models.Lesson{{ID: 10, CourseID: 1, Materials: []models.Material{{ID: 99, LessonID: 10}}}}, nil)
	api.EXPECT().DeleteMaterial(gomock.Any(), int64(99)).Return(nil)

	_, err := s.Fetch(context.Background(), 1)
	require.NoError(t, err)

	require.NoError(t, s.DeleteMaterial(context.Background(), 99))
	require.Empty(t, s.Items(1)[0].Materials)
}

func TestLessons_Update_ActionInFlight(t *testing.T) {
	t.Parallel()

	s, api, ctrl := newLessonsStore(t)
	defer ctrl.Finish()

	entered := make(chan struct{})
	release := make(chan struct{})

	title := "Каналы"
	api.EXPECT().UpdateLesson(gomock.Any(), int64(10), gomock.Any()).
		DoAndReturn(func(context.Context, int64, models.LessonInput) (*models.Lesson, error) {
			close(entered)
			<-release
			return &models.Lesson{ID: 10, CourseID: 1, Title: title}, nil
		})

	done := make(chan error, 1)
	go func() {
		_, err := s.Update(context.Background(), 10, models.LessonInput{Title: &title})
		done <- err
	}()

	<-entered

	_, err := s.Update(context.Background(), 10, models.LessonInput{Title: &title})
	require.ErrorIs(t, err, ErrActionInFlight)

	close(release)
	require.NoError(t, <-done)
}
