package i

// Logger is the minimal logging surface services depend on.
type Logger interface {
	Info(msg string)
	Warn(msg string)
	Error(msg string)
}
