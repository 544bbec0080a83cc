package logtrace

import (
	"context"

	"github.com/rs/zerolog"
)

// WithFields attaches a child of the context logger carrying the given
// string fields, so that everything logged further down the call chain is
// tagged with them.
func WithFields(ctx context.Context, kv map[string]string) context.Context {
	l := zerolog.Ctx(ctx).With()
	for k, v := range kv {
		l = l.Str(k, v)
	}
	logger := l.Logger()
	return logger.WithContext(ctx)
}
