package logging

import (
	"time"

	"go.uber.org/zap"
	gormlogger "gorm.io/gorm/logger"
)

// Gorm returns a gorm logger that writes through the global zap logger.
// Call it after Init.
func Gorm(level gormlogger.LogLevel) gormlogger.Interface {
	return gormlogger.New(gormWriter{log: zap.S().Named("gorm")}, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
	})
}

type gormWriter struct {
	log *zap.SugaredLogger
}

func (w gormWriter) Printf(format string, args ...any) {
	w.log.Warnf(format, args...)
}
