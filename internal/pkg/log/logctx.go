// log — прокидывание request-scoped slog.Logger через context.
//
// SDK не навязывает глобальный логгер: каждый вызов может нести свой
// логгер (например, с request_id), а пакеты достают его через From.
package log

import (
	"context"
	"log/slog"
)

type ctxKey struct{}

// Into кладёт логгер в контекст.
func Into(ctx context.Context, l *slog.Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// From достаёт логгер из контекста (или возвращает slog.Default()).
func From(ctx context.Context) *slog.Logger {
	if v := ctx.Value(ctxKey{}); v != nil {
		if l, ok := v.(*slog.Logger); ok && l != nil {
			return l
		}
	}

	return slog.Default()
}

// WithOp возвращает логгер из контекста с атрибутом op —
// краткое имя операции в стиле "pkg.file.Fn".
func WithOp(ctx context.Context, op string) *slog.Logger {
	return From(ctx).With(slog.String("op", op))
}
