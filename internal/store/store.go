// store — пофичевые in-memory кэши поверх API-поверхности.
//
// Сторы живут ровно столько, сколько живёт "страница" (процесс CLI,
// пользовательская сессия при серверном встраивании); перезапуск теряет
// всё, кроме пары токенов в credentials. Кросс-сторной инвалидации нет:
// мутация в одном сторе не обновляет соседний, вызывающий перечитывает
// данные явно.
//
// Каждый стор создаётся явно через конструктор — никаких синглтонов
// уровня пакета. Экземпляры потокобезопасны.
//
// Семантика ошибок: стор запоминает последнюю ошибку (Err — для показа
// в UI до следующего успешного действия или ClearErr) и возвращает её же
// вызывающему, чтобы тот мог отреагировать немедленно.
package store

import (
	"context"
	"errors"

	"golang.org/x/sync/errgroup"

	"github.com/AkkAshy/kursi-sub000/internal/client"
)

var (
	// ErrActionInFlight — по этой сущности уже выполняется действие.
	// Страховка от двойного клика: совещательная, а не строгая
	// сериализация (см. комментарий к busyGuard).
	ErrActionInFlight = errors.New("action already in flight")
)

// busyGuard — совещательный пер-сущностный замок действий.
// Предотвращает второй запуск действия по той же сущности из этого же
// стора; гонку двух независимых клиентов он, разумеется, не закрывает.
type busyGuard struct {
	busy map[int64]struct{}
}

func (g *busyGuard) begin(id int64) bool {
	if g.busy == nil {
		g.busy = make(map[int64]struct{})
	}

	if _, ok := g.busy[id]; ok {
		return false
	}

	g.busy[id] = struct{}{}

	return true
}

func (g *busyGuard) end(id int64) {
	delete(g.busy, id)
}

// Stores агрегирует все сторы поверх одного клиента.
type Stores struct {
	Auth         *Auth
	Courses      *Courses
	Lessons      *Lessons
	Leads        *Leads
	Subscription *Subscription
}

// New собирает сторы поверх API-клиента.
func New(c *client.Client) *Stores {
	return &Stores{
		Auth:         NewAuth(c),
		Courses:      NewCourses(c),
		Lessons:      NewLessons(c),
		Leads:        NewLeads(c),
		Subscription: NewSubscription(c),
	}
}

// RefreshAll параллельно наполняет основные сторы кабинета
// (курсы, лиды, подписка). Возвращает первую ошибку.
func (s *Stores) RefreshAll(ctx context.Context) error {
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := s.Courses.Fetch(gctx)
		return err
	})

	g.Go(func() error {
		_, err := s.Leads.Fetch(gctx)
		return err
	})

	g.Go(func() error {
		_, err := s.Subscription.FetchCurrent(gctx)
		return err
	})

	return g.Wait()
}
