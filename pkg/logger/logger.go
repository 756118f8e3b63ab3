package logger

import (
	"go.uber.org/zap"
)

// Log is the process-wide logger. It is a no-op until Initialize is called
// so that packages may log safely during early startup and in tests.
var Log = zap.NewNop()

func Initialize() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return err
	}

	Log = logger

	return nil
}

func Error(err error) zap.Field {
	return zap.Error(err)
}

func String(key, value string) zap.Field {
	return zap.String(key, value)
}

func Int(key string, value int) zap.Field {
	return zap.Int(key, value)
}

func Int64(key string, value int64) zap.Field {
	return zap.Int64(key, value)
}

func Float64(key string, value float64) zap.Field {
	return zap.Float64(key, value)
}
