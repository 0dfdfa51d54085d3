package expiry

import "context"

func (l *Listener) Handle(ctx context.Context, key string) {
	l.handle(ctx, key)
}
