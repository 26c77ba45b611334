package lambda

import (
	"context"
	"log/slog"
)

// slogExpr wraps an Expr as a slog.LogValuer so expression trees are only
// rendered when a record is actually emitted.
func slogExpr(expr Expr) slog.LogValuer {
	return exprLogValuer{expr}
}

type exprLogValuer struct{ Expr }

func (l exprLogValuer) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("str", ExprString(l.Expr)),
		slog.String("name", l.Describe()),
	)
}

// SlogHandler wraps underlying so any Expr attribute is lazy-printed through
// the printer instead of fmt's default struct rendering.
func SlogHandler(underlying slog.Handler) slog.Handler {
	return &exprLogHandler{underlying: underlying}
}

type exprLogHandler struct {
	underlying slog.Handler
}

func (l *exprLogHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return l.underlying.Enabled(ctx, level)
}

func (l *exprLogHandler) Handle(ctx context.Context, record slog.Record) error {
	newRecord := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
	record.Attrs(func(attr slog.Attr) bool {
		if attr.Value.Kind() == slog.KindAny {
			if expr, ok := attr.Value.Any().(Expr); ok {
				newRecord.Add(attr.Key, slogExpr(expr))
				return true
			}
		}
		newRecord.Add(attr)
		return true
	})
	return l.underlying.Handle(ctx, newRecord)
}

func (l *exprLogHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	for i, attr := range attrs {
		if attr.Value.Kind() == slog.KindAny {
			if expr, ok := attr.Value.Any().(Expr); ok {
				attr.Value = slog.AnyValue(slogExpr(expr))
				attrs[i] = attr
			}
		}
	}
	return SlogHandler(l.underlying.WithAttrs(attrs))
}

func (l *exprLogHandler) WithGroup(name string) slog.Handler {
	return SlogHandler(l.underlying.WithGroup(name))
}
