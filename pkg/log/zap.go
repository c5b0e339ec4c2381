package log

import (
	"go.uber.org/zap"
)

var Logger = zap.NewNop()

func InitProductionLogger() {
	if l, err := zap.NewProduction(); err == nil {
		Logger = l
	}
}

func InitDevelopmentLogger() {
	if l, err := zap.NewDevelopment(); err == nil {
		Logger = l
	}
}

// Sync flushes any buffered log entries
func Sync() {
	_ = Logger.Sync()
}
