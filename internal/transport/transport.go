// transport — HTTP-конвейер клиента маркетплейса.
//
// Исходящий конвейер (чистая декорация, никогда не блокирует запрос):
//   - Authorization: Bearer <access>, если токен есть;
//   - X-Tenant: поддомен-арендатор, если он выводится из хоста витрины;
//   - X-Request-Id: uuid, если вызывающий не проставил свой.
//
// Входной конвейер — прозрачное восстановление после истёкшего access-токена:
//   - на 401 запрос помечается "уже повторён" и выполняется обмен
//     refresh-токена на новый access; успех — однократный повтор исходного
//     запроса, вызывающий получает итоговый ответ как будто сбоя не было;
//   - повторный 401 и любые не-401 ответы уходят вызывающему без изменений
//     (инвариант "не более одного повтора");
//   - провал самого обмена (сеть, не-2xx, refresh не держится) — хранилище
//     полностью очищается и возвращается ErrSessionExpired: вызывающий
//     обязан отправить пользователя на вход.
//
// Одновременные 401 нескольких запросов коалесцируются в один обмен
// (singleflight): все ожидающие получают общий новый access.
package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
	"golang.org/x/time/rate"

	"github.com/AkkAshy/kursi-sub000/internal/credentials"
	"github.com/AkkAshy/kursi-sub000/internal/pkg/log"
	"github.com/AkkAshy/kursi-sub000/internal/tenant"
)

const (
	// HeaderTenant — заголовок скоупа арендатора; отсутствие означает
	// платформенный запрос.
	HeaderTenant = "X-Tenant"
	// HeaderRequestID — сквозной идентификатор запроса.
	HeaderRequestID = "X-Request-Id"

	// refreshPath — фиксированный путь обмена refresh -> access.
	refreshPath = "/auth/token/refresh/"
)

var (
	// ErrSessionExpired — access-токен истёк и обновить его не удалось
	// (или refresh-токена нет). Хранилище уже очищено; пользователя
	// нужно отправить на вход.
	ErrSessionExpired = errors.New("session expired")

	// ErrBodyNotReplayable — запрос получил 401, но его тело нельзя
	// перечитать для повтора (нет GetBody).
	ErrBodyNotReplayable = errors.New("request body is not replayable")
)

// Transport — http.RoundTripper конвейера. Создаётся один на клиент.
type Transport struct {
	inner   http.RoundTripper
	creds   credentials.Store
	baseURL string
	host    string
	limiter *rate.Limiter
	group   singleflight.Group
}

// Option настраивает Transport при создании.
type Option func(*Transport)

// WithInner подменяет нижележащий RoundTripper (по умолчанию
// http.DefaultTransport).
func WithInner(rt http.RoundTripper) Option {
	return func(t *Transport) { t.inner = rt }
}

// WithHost задаёт хост витрины, из которого выводится арендатор.
func WithHost(host string) Option {
	return func(t *Transport) { t.host = host }
}

// WithRateLimit включает клиентский лимитер исходящих запросов.
// rps <= 0 оставляет лимитер выключенным.
func WithRateLimit(rps float64, burst int) Option {
	return func(t *Transport) {
		if rps > 0 {
			if burst < 1 {
				burst = 1
			}
			t.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

// New создаёт конвейер поверх хранилища учётных данных.
// baseURL нужен для обращения к refresh-эндпойнту.
func New(baseURL string, creds credentials.Store, opts ...Option) *Transport {
	t := &Transport{
		inner:   http.DefaultTransport,
		creds:   creds,
		baseURL: trimSlash(baseURL),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// RoundTrip реализует http.RoundTripper.
func (t *Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	const op = "transport.RoundTrip"

	ctx := req.Context()

	if t.limiter != nil {
		if err := t.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
	}

	resp, err := t.send(req)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// 401: не более одного повтора на запрос. Сам обмен refresh -> access
	// коалесцируется между одновременно сбоящими запросами.
	pair, _ := t.creds.Pair()
	if pair.Refresh == "" {
		drain(resp)
		_ = t.creds.Clear(ctx)
		log.WithOp(ctx, op).Warn("no_refresh_token")

		return nil, fmt.Errorf("%s: %w", op, ErrSessionExpired)
	}

	if err := t.refresh(ctx, pair.Refresh); err != nil {
		drain(resp)
		_ = t.creds.Clear(ctx)
		log.WithOp(ctx, op).Warn("refresh_failed", slog.String("err", err.Error()))

		return nil, fmt.Errorf("%s: %w", op, ErrSessionExpired)
	}

	drain(resp)
	log.WithOp(ctx, op).Debug("access_token_refreshed", slog.String("url", req.URL.Path))

	// Повторный 401 (и любой другой статус) уходит вызывающему как есть.
	return t.send(req)
}

// send выполняет одну попытку: клонирует запрос, декорирует и отправляет.
func (t *Transport) send(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	if req.Body != nil && req.Body != http.NoBody {
		if req.GetBody == nil {
			return nil, ErrBodyNotReplayable
		}

		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}

		out.Body = body
	}

	t.decorate(out)

	return t.inner.RoundTrip(out)
}

// decorate навешивает заголовки конвейера. Никогда не завершает запрос ошибкой.
func (t *Transport) decorate(req *http.Request) {
	if pair, ok := t.creds.Pair(); ok && pair.Access != "" {
		req.Header.Set("Authorization", "Bearer "+pair.Access)
	}

	// Арендатор не персистится: заново выводится на каждый запрос.
	if id, ok := tenant.FromHost(t.host); ok {
		req.Header.Set(HeaderTenant, id)
	}

	if req.Header.Get(HeaderRequestID) == "" {
		req.Header.Set(HeaderRequestID, uuid.NewString())
	}
}

// refreshResponse — контракт refresh-эндпойнта: refresh не ротируется,
// в ответе только новый access.
type refreshResponse struct {
	Access string `json:"access"`
}

// refresh обменивает refresh-токен на новый access и сохраняет его.
// Конкурентные вызовы схлопываются в один обмен.
func (t *Transport) refresh(ctx context.Context, refreshToken string) error {
	const op = "transport.refresh"

	_, err, _ := t.group.Do("refresh", func() (any, error) {
		// Обмен переживает отмену инициировавшего запроса: результата
		// ждут и другие сбоящие запросы.
		exCtx := context.WithoutCancel(ctx)

		body, err := json.Marshal(map[string]string{"refresh": refreshToken})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		req, err := http.NewRequestWithContext(exCtx, http.MethodPost, t.baseURL+refreshPath, bytes.NewReader(body))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		req.Header.Set("Content-Type", "application/json")

		resp, err := t.inner.RoundTrip(req)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		defer drain(resp)

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			return nil, fmt.Errorf("%s: refresh endpoint returned %d", op, resp.StatusCode)
		}

		var out refreshResponse
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		if out.Access == "" {
			return nil, fmt.Errorf("%s: empty access token in refresh response", op)
		}

		if err := t.creds.SetAccess(exCtx, out.Access); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return out.Access, nil
	})

	return err
}

// drain дочитывает и закрывает тело ответа, чтобы коннект вернулся в пул.
func drain(resp *http.Response) {
	if resp == nil || resp.Body == nil {
		return
	}

	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
	_ = resp.Body.Close()
}

func trimSlash(s string) string {
	for len(s) > 0 && s[len(s)-1] == '/' {
		s = s[:len(s)-1]
	}

	return s
}
