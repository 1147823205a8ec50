package logger

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const defaultSlowQueryThreshold = 200 * time.Millisecond

// GormLogger 将 gorm 日志桥接到 zap
type GormLogger struct {
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormLogger 创建 gorm 日志适配器；debug 模式记录全部 SQL，其余只记录告警
func NewGormLogger(mode string) *GormLogger {
	level := gormlogger.Warn
	if IsDebug(mode) {
		level = gormlogger.Info
	}
	return &GormLogger{level: level, slowThreshold: defaultSlowQueryThreshold}
}

// LogMode 实现 gorm logger.Interface
func (l *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *l
	clone.level = level
	return &clone
}

// Info 实现 gorm logger.Interface
func (l *GormLogger) Info(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Info {
		S().Infow("gorm", "detail", fmt.Sprintf(msg, args...))
	}
}

// Warn 实现 gorm logger.Interface
func (l *GormLogger) Warn(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Warn {
		S().Warnw("gorm", "detail", fmt.Sprintf(msg, args...))
	}
}

// Error 实现 gorm logger.Interface
func (l *GormLogger) Error(_ context.Context, msg string, args ...interface{}) {
	if l.level >= gormlogger.Error {
		S().Errorw("gorm", "detail", fmt.Sprintf(msg, args...))
	}
}

// Trace 实现 gorm logger.Interface
func (l *GormLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		sql, rows := fc()
		Errorw("gorm_query_failed", "sql", sql, "rows", rows, "elapsed", elapsed, zap.Error(err))
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		sql, rows := fc()
		Warnw("gorm_slow_query", "sql", sql, "rows", rows, "elapsed", elapsed)
	case l.level >= gormlogger.Info:
		sql, rows := fc()
		Debugw("gorm_query", "sql", sql, "rows", rows, "elapsed", elapsed)
	}
}
