package log

import (
	"go.uber.org/zap"
)

type Field = zap.Field

var (
	String   = zap.String
	Int      = zap.Int
	Int64    = zap.Int64
	Float64  = zap.Float64
	Bool     = zap.Bool
	Duration = zap.Duration
	Stringer = zap.Stringer
)

func ErrorField(err error) Field {
	return zap.Error(err)
}

func Debug(msg string, fields ...Field) {
	Logger.Debug(msg, fields...)
}

func Info(msg string, fields ...Field) {
	Logger.Info(msg, fields...)
}

func Warn(msg string, fields ...Field) {
	Logger.Warn(msg, fields...)
}

func Error(msg string, fields ...Field) {
	Logger.Error(msg, fields...)
}

func Fatal(msg string, fields ...Field) {
	Logger.Fatal(msg, fields...)
}
