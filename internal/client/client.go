// client — типизированная API-поверхность REST-бэкенда маркетплейса.
//
// Каждый метод делает ровно три вещи: формирует вход (JSON или multipart,
// nil-поля не отправляются), зовёт HTTP-конвейер и нормализует форму ответа
// (списочные эндпойнты отдают то голый массив, то конверт {"results": [...]};
// вызывающий всегда получает срез). Собственной логики поверх этого нет.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/AkkAshy/kursi-sub000/internal/credentials"
	"github.com/AkkAshy/kursi-sub000/internal/transport"
)

// Client — API-клиент маркетплейса. Безопасен для конкурентного
// использования; создаётся явно (один на процесс или на сессию),
// никакого глобального состояния.
type Client struct {
	baseURL string
	httpc   *http.Client
	creds   credentials.Store
}

type options struct {
	httpc     *http.Client
	host      string
	timeout   time.Duration
	rateRPS   float64
	rateBurst int
}

// Option настраивает клиент при создании.
type Option func(*options)

// WithHTTPClient подменяет весь http.Client (вместе с транспортом).
// Используется в тестах и для нестандартных TLS/прокси-настроек.
func WithHTTPClient(h *http.Client) Option {
	return func(o *options) { o.httpc = h }
}

// WithHost задаёт хост витрины для вывода арендатора.
func WithHost(host string) Option {
	return func(o *options) { o.host = host }
}

// WithTimeout задаёт общий таймаут одного запроса (по умолчанию 30s).
func WithTimeout(d time.Duration) Option {
	return func(o *options) { o.timeout = d }
}

// WithRateLimit включает клиентский лимитер исходящих запросов.
func WithRateLimit(rps float64, burst int) Option {
	return func(o *options) {
		o.rateRPS = rps
		o.rateBurst = burst
	}
}

// New создаёт клиент поверх хранилища учётных данных.
func New(baseURL string, creds credentials.Store, opts ...Option) *Client {
	o := options{timeout: 30 * time.Second}
	for _, opt := range opts {
		opt(&o)
	}

	httpc := o.httpc
	if httpc == nil {
		httpc = &http.Client{
			Timeout: o.timeout,
			Transport: transport.New(baseURL, creds,
				transport.WithHost(o.host),
				transport.WithRateLimit(o.rateRPS, o.rateBurst),
			),
		}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpc:   httpc,
		creds:   creds,
	}
}

// Credentials отдаёт хранилище учётных данных клиента.
func (c *Client) Credentials() credentials.Store { return c.creds }

// do выполняет JSON-запрос. in == nil — без тела; out == nil — тело
// ответа не разбирается.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	const op = "client.do"

	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	return c.roundTrip(req, out)
}

// list выполняет GET списочного эндпойнта и нормализует форму ответа:
// и голый массив, и конверт {"results": [...]} дают одинаковый срез в out.
func (c *Client) list(ctx context.Context, path string, query url.Values, out any) error {
	const op = "client.list"

	if len(query) > 0 {
		path += "?" + query.Encode()
	}

	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, path, nil, &raw); err != nil {
		return err
	}

	data := bytes.TrimSpace(raw)
	if len(data) == 0 {
		data = []byte("[]")
	}

	if data[0] == '[' {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}

		return nil
	}

	var env struct {
		Results json.RawMessage `json:"results"`
	}
	if err := json.Unmarshal(data, &env); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if len(env.Results) == 0 {
		env.Results = []byte("[]")
	}

	if err := json.Unmarshal(env.Results, out); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// upload выполняет multipart-запрос с одним файлом и текстовыми полями.
// Тело собирается в память заранее, чтобы запрос был повторяем после
// обновления токена.
func (c *Client) upload(ctx context.Context, method, path string, fields map[string]string, fileField, fileName string, file io.Reader, out any) error {
	const op = "client.upload"

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	for name, value := range fields {
		if err := mw.WriteField(name, value); err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	part, err := mw.CreateFormFile(fileField, fileName)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := mw.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bytes.NewReader(buf.Bytes()))
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	req.Header.Set("Content-Type", mw.FormDataContentType())
	req.Header.Set("Accept", "application/json")

	return c.roundTrip(req, out)
}

// roundTrip отправляет запрос и разбирает ответ/ошибку в единый формат.
func (c *Client) roundTrip(req *http.Request, out any) error {
	resp, err := c.httpc.Do(req)
	if err != nil {
		if errors.Is(err, transport.ErrSessionExpired) {
			return &Error{
				Kind:    KindSessionExpired,
				Message: "session expired, sign in again",
				cause:   err,
			}
		}

		return &Error{
			Kind:    KindNetwork,
			Message: err.Error(),
			cause:   err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return decodeError(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &Error{
			Kind:       KindServer,
			Message:    "malformed response body",
			HTTPStatus: resp.StatusCode,
			cause:      err,
		}
	}

	return nil
}
