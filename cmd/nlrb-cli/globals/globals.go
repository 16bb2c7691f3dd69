package globals

import (
	"context"
	"nlrbdata/lib/scrapers/nlrb"
)

type key struct{}

type Value struct {
	Client *nlrb.Client
}

func Set(ctx context.Context, value *Value) context.Context {
	return context.WithValue(ctx, key{}, value)
}

func Get(ctx context.Context) *Value {
	return ctx.Value(key{}).(*Value)
}
