package middlewarex

import "context"

type ctxKey string

const (
	ctxBypassCache ctxKey = "bypass_cache"
)

func WithBypassCache(ctx context.Context) context.Context {
	return context.WithValue(ctx, ctxBypassCache, true)
}

func BypassCache(ctx context.Context) bool {
	v, _ := ctx.Value(ctxBypassCache).(bool)
	return v
}
