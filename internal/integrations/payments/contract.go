package payments

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RandomSource источник случайных чисел для имитации сбоев
type RandomSource interface {
	Float64() float64
}
