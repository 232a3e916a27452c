package store

import (
	"context"
	"io"
	"sync"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// LessonsAPI — срез API-поверхности, нужный стору уроков.
type LessonsAPI interface {
	Lessons(ctx context.Context, courseID int64) ([]models.Lesson, error)
	CreateLesson(ctx context.Context, courseID int64, in models.LessonInput) (*models.Lesson, error)
	UpdateLesson(ctx context.Context, id int64, in models.LessonInput) (*models.Lesson, error)
	DeleteLesson(ctx context.Context, id int64) error
	UploadMaterial(ctx context.Context, lessonID int64, name string, file io.Reader) (*models.Material, error)
	DeleteMaterial(ctx context.Context, materialID int64) error
}

// Lessons — кэш уроков, секционированный по курсу.
type Lessons struct {
	api LessonsAPI

	mu       sync.Mutex
	byCourse map[int64][]models.Lesson
	err      error
	guard    busyGuard
}

// NewLessons создаёт стор уроков.
func NewLessons(api LessonsAPI) *Lessons {
	return &Lessons{
		api:      api,
		byCourse: make(map[int64][]models.Lesson),
	}
}

// Fetch наполняет кэш уроков курса.
func (s *Lessons) Fetch(ctx context.Context, courseID int64) ([]models.Lesson, error) {
	items, err := s.api.Lessons(ctx, courseID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.byCourse[courseID] = items
	s.err = nil

	return s.snapshot(courseID), nil
}

// Items возвращает копию кэшированных уроков курса.
func (s *Lessons) Items(courseID int64) []models.Lesson {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot(courseID)
}

// Create создаёт урок и добавляет его в кэш курса.
func (s *Lessons) Create(ctx context.Context, courseID int64, in models.LessonInput) (*models.Lesson, error) {
	lesson, err := s.api.CreateLesson(ctx, courseID, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.byCourse[courseID] = append(s.byCourse[courseID], *lesson)
	s.err = nil

	return lesson, nil
}

// Update обновляет урок и вливает результат в кэш.
func (s *Lessons) Update(ctx context.Context, id int64, in models.LessonInput) (*models.Lesson, error) {
	s.mu.Lock()
	if !s.guard.begin(id) {
		s.mu.Unlock()
		return nil, ErrActionInFlight
	}
	s.mu.Unlock()

	lesson, err := s.api.UpdateLesson(ctx, id, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.guard.end(id)

	if err != nil {
		s.err = err
		return nil, err
	}

	s.merge(*lesson)
	s.err = nil

	return lesson, nil
}

// Delete удаляет урок отовсюду, где он закэширован.
func (s *Lessons) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	if !s.guard.begin(id) {
		s.mu.Unlock()
		return ErrActionInFlight
	}
	s.mu.Unlock()

	err := s.api.DeleteLesson(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.guard.end(id)

	if err != nil {
		s.err = err
		return err
	}

	for courseID, lessons := range s.byCourse {
		for i := range lessons {
			if lessons[i].ID == id {
				s.byCourse[courseID] = append(lessons[:i], lessons[i+1:]...)
				break
			}
		}
	}
	s.err = nil

	return nil
}

// UploadMaterial загружает вложение и прикрепляет его к уроку в кэше.
func (s *Lessons) UploadMaterial(ctx context.Context, lessonID int64, name string, file io.Reader) (*models.Material, error) {
	material, err := s.api.UploadMaterial(ctx, lessonID, name, file)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	for courseID, lessons := range s.byCourse {
		for i := range lessons {
			if lessons[i].ID == lessonID {
				s.byCourse[courseID][i].Materials = append(s.byCourse[courseID][i].Materials, *material)
			}
		}
	}
	s.err = nil

	return material, nil
}

// DeleteMaterial удаляет вложение из бэкенда и из кэша.
func (s *Lessons) DeleteMaterial(ctx context.Context, materialID int64) error {
	err := s.api.DeleteMaterial(ctx, materialID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return err
	}

	for courseID, lessons := range s.byCourse {
		for i := range lessons {
			mats := lessons[i].Materials
			for j := range mats {
				if mats[j].ID == materialID {
					s.byCourse[courseID][i].Materials = append(mats[:j], mats[j+1:]...)
					break
				}
			}
		}
	}
	s.err = nil

	return nil
}

// Err — последняя ошибка стора.
func (s *Lessons) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// ClearErr сбрасывает сохранённую ошибку.
func (s *Lessons) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = nil
}

func (s *Lessons) snapshot(courseID int64) []models.Lesson {
	items := s.byCourse[courseID]
	out := make([]models.Lesson, len(items))
	copy(out, items)

	return out
}

// merge заменяет урок в кэше его курса по ID.
func (s *Lessons) merge(lesson models.Lesson) {
	lessons, ok := s.byCourse[lesson.CourseID]
	if !ok {
		return
	}

	for i := range lessons {
		if lessons[i].ID == lesson.ID {
			lessons[i] = lesson
			return
		}
	}

	s.byCourse[lesson.CourseID] = append(lessons, lesson)
}
