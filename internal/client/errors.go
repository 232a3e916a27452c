// Ошибки API-поверхности приведены к единому дискриминированному типу:
// вызывающие матчатся по Kind вместо угадывания имён полей в теле ответа.
package client

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Kind — короткий стабильный код класса ошибки для машиночитаемой обработки.
type Kind string

const (
	KindValidation     Kind = "validation"
	KindUnauthorized   Kind = "unauthorized"
	KindForbidden      Kind = "forbidden"
	KindNotFound       Kind = "not_found"
	KindConflict       Kind = "conflict"
	KindRateLimited    Kind = "rate_limited"
	KindServer         Kind = "server"
	KindNetwork        Kind = "network"
	KindSessionExpired Kind = "session_expired"
)

// Error — единая ошибка API-поверхности.
//
// Message — человекочитаемое описание от бэкенда (или безопасный дефолт);
// Fields — пополевые ошибки валидации, когда бэкенд их прислал;
// HTTPStatus — исходный статус (0 для сетевых ошибок).
type Error struct {
	Kind       Kind
	Message    string
	Fields     map[string]string
	HTTPStatus int

	cause error
}

func (e *Error) Error() string {
	if len(e.Fields) > 0 {
		parts := make([]string, 0, len(e.Fields))
		for f, msg := range e.Fields {
			parts = append(parts, f+": "+msg)
		}

		return fmt.Sprintf("%s: %s (%s)", e.Kind, e.Message, strings.Join(parts, "; "))
	}

	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap отдаёт причину, чтобы работали errors.Is/As
// (в т.ч. errors.Is(err, transport.ErrSessionExpired)).
func (e *Error) Unwrap() error { return e.cause }

// errorBody — оба написания, которые реально шлёт бэкенд.
type errorBody struct {
	Detail string `json:"detail"`
	Err    string `json:"error"`
}

// decodeError строит *Error из не-2xx ответа.
//
// Порядок проб: {"detail": ...} -> {"error": ...} -> пополевая карта
// валидации {"field": ["msg", ...]} -> дефолт по статусу.
func decodeError(resp *http.Response) *Error {
	apiErr := &Error{
		Kind:       kindFromStatus(resp.StatusCode),
		Message:    http.StatusText(resp.StatusCode),
		HTTPStatus: resp.StatusCode,
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil || len(raw) == 0 {
		return apiErr
	}

	var body errorBody
	if json.Unmarshal(raw, &body) == nil {
		if body.Detail != "" {
			apiErr.Message = body.Detail
			return apiErr
		}

		if body.Err != "" {
			apiErr.Message = body.Err
			return apiErr
		}
	}

	// Пополевые ошибки валидации: {"title": ["обязательное поле"], ...}.
	var fields map[string][]string
	if json.Unmarshal(raw, &fields) == nil && len(fields) > 0 {
		apiErr.Fields = make(map[string]string, len(fields))
		for f, msgs := range fields {
			if len(msgs) > 0 {
				apiErr.Fields[f] = msgs[0]
			}
		}

		if apiErr.Kind == KindValidation || apiErr.Kind == KindConflict {
			apiErr.Message = "validation failed"
		}
	}

	return apiErr
}

// kindFromStatus — базовый маппинг HTTP-статуса в Kind.
func kindFromStatus(status int) Kind {
	switch {
	case status == http.StatusUnauthorized:
		return KindUnauthorized
	case status == http.StatusForbidden:
		return KindForbidden
	case status == http.StatusNotFound:
		return KindNotFound
	case status == http.StatusConflict:
		return KindConflict
	case status == http.StatusTooManyRequests:
		return KindRateLimited
	case status >= 400 && status < 500:
		return KindValidation
	default:
		return KindServer
	}
}
