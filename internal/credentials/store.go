// credentials — единственный источник истины для пары access/refresh
// в пределах запуска клиента.
//
// Основные аспекты:
//   - Load при старте читает персист; отсутствие сохранённой пары —
//     нормальное начальное состояние (клиент не аутентифицирован), не ошибка.
//   - Set/Clear заменяют пару целиком одним присваиванием под мьютексом,
//     частичных состояний не бывает.
//   - IsAuthenticated — проверка только наличия access-токена: срок действия
//     и подпись не проверяются; просроченный токен считается "аутентифицирован",
//     пока запрос с ним не провалится.
package credentials

import (
	"context"
	"errors"

	"github.com/AkkAshy/kursi-sub000/internal/models"
)

var (
	// ErrNoCredentials — операция требует сохранённой пары, а её нет
	// (например, SetAccess без предшествующего Set).
	ErrNoCredentials = errors.New("no credentials held")
)

// Store задаёт контракт хранилища учётной пары.
type Store interface {
	// Load читает сохранённую пару из персиста в память.
	// Отсутствие персиста — не ошибка.
	Load(ctx context.Context) error
	// Set заменяет пару в памяти и персисте; вызывается после
	// логина и регистрации.
	Set(ctx context.Context, pair models.TokenPair) error
	// SetAccess заменяет только access-токен (refresh не меняется);
	// вызывается после успешного обновления токена.
	SetAccess(ctx context.Context, access string) error
	// Clear удаляет пару из памяти и персиста; вызывается на логауте
	// и при невосстановимом провале обновления.
	Clear(ctx context.Context) error
	// Pair возвращает текущую пару и признак её наличия.
	Pair() (models.TokenPair, bool)
	// IsAuthenticated — true, если access-токен присутствует.
	IsAuthenticated() bool
}
