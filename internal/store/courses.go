package store

import (
	"context"
	"sync"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

// CoursesAPI — срез API-поверхности, нужный стору курсов.
type CoursesAPI interface {
	Courses(ctx context.Context) ([]models.Course, error)
	CreateCourse(ctx context.Context, in models.CourseInput) (*models.Course, error)
	UpdateCourse(ctx context.Context, id int64, in models.CourseInput) (*models.Course, error)
	DeleteCourse(ctx context.Context, id int64) error
	PublishCourse(ctx context.Context, id int64) (*models.Course, error)
	UnpublishCourse(ctx context.Context, id int64) (*models.Course, error)
}

// Courses — кэш курсов школы с флагами загрузки/ошибки для UI.
type Courses struct {
	api CoursesAPI

	mu      sync.Mutex
	items   []models.Course
	loading bool
	err     error
	guard   busyGuard
}

// NewCourses создаёт стор курсов.
func NewCourses(api CoursesAPI) *Courses {
	return &Courses{api: api}
}

// Fetch наполняет кэш с бэкенда и возвращает свежий список.
func (s *Courses) Fetch(ctx context.Context) ([]models.Course, error) {
	s.mu.Lock()
	s.loading = true
	s.mu.Unlock()

	items, err := s.api.Courses(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = false

	if err != nil {
		s.err = err
		return nil, err
	}

	s.items = items
	s.err = nil

	return s.snapshot(), nil
}

// Items возвращает копию кэшированного списка.
func (s *Courses) Items() []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.snapshot()
}

// Create создаёт курс и оптимистично добавляет его в кэш.
func (s *Courses) Create(ctx context.Context, in models.CourseInput) (*models.Course, error) {
	course, err := s.api.CreateCourse(ctx, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.err = err
		return nil, err
	}

	s.items = append(s.items, *course)
	s.err = nil

	return course, nil
}

// Update обновляет курс и вливает результат в кэш.
func (s *Courses) Update(ctx context.Context, id int64, in models.CourseInput) (*models.Course, error) {
	s.mu.Lock()
	if !s.guard.begin(id) {
		s.mu.Unlock()
		return nil, ErrActionInFlight
	}
	s.mu.Unlock()

	course, err := s.api.UpdateCourse(ctx, id, in)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.guard.end(id)

	if err != nil {
		s.err = err
		return nil, err
	}

	s.merge(*course)
	s.err = nil

	return course, nil
}

// Delete удаляет курс и выкидывает его из кэша.
func (s *Courses) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	if !s.guard.begin(id) {
		s.mu.Unlock()
		return ErrActionInFlight
	}
	s.mu.Unlock()

	err := s.api.DeleteCourse(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.guard.end(id)

	if err != nil {
		s.err = err
		return err
	}

	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	s.err = nil

	return nil
}

// SetPublished публикует или снимает курс с публикации.
func (s *Courses) SetPublished(ctx context.Context, id int64, published bool) (*models.Course, error) {
	s.mu.Lock()
	if !s.guard.begin(id) {
		s.mu.Unlock()
		return nil, ErrActionInFlight
	}
	s.mu.Unlock()

	var (
		course *models.Course
		err    error
	)
	if published {
		course, err = s.api.PublishCourse(ctx, id)
	} else {
		course, err = s.api.UnpublishCourse(ctx, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.guard.end(id)

	if err != nil {
		s.err = err
		return nil, err
	}

	s.merge(*course)
	s.err = nil

	return course, nil
}

// Loading — идёт ли сейчас Fetch.
func (s *Courses) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

// Err — последняя ошибка стора (до следующего успеха или ClearErr).
func (s *Courses) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.err
}

// ClearErr сбрасывает сохранённую ошибку.
func (s *Courses) ClearErr() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.err = nil
}

func (s *Courses) snapshot() []models.Course {
	out := make([]models.Course, len(s.items))
	copy(out, s.items)

	return out
}

// merge заменяет курс в кэше по ID; незнакомый курс добавляется в конец.
func (s *Courses) merge(course models.Course) {
	for i := range s.items {
		if s.items[i].ID == course.ID {
			s.items[i] = course
			return
		}
	}

	s.items = append(s.items, course)
}
