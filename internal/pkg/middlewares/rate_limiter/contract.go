package rate_limiter

import "swiftrider/pkg/logger"

// Limiter - отдельная корзина токенов на ключ клиента.
type Limiter interface {
	AllowKey(key string) bool
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
