package catalog

import "github.com/m04kA/SMC-StudioBooking/internal/session"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RandomSource источник случайных чисел для UID пользователя
type RandomSource = session.RandomSource
