package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// RSyncWriter is a concurrent safe file writer used by the zap core.
// It starts a new file once the current one reaches the max size (MB).
type RSyncWriter struct {
	sync.Mutex
	clock  Clocker
	file   *os.File
	folder string
	max    int64
	size   int64
	isProd bool
}

// NewRSyncWriter provides a writer which lazily opens its first file.
func NewRSyncWriter(config *Config, clock Clocker) *RSyncWriter {
	return &RSyncWriter{
		clock:  clock,
		folder: config.LogFolder,
		max:    int64(config.LogMaxSize) * 1024 * 1024,
		isProd: config.IsProduction,
	}
}

// Write implements io.Writer and rotates the file on max size.
func (rw *RSyncWriter) Write(p []byte) (int, error) {
	rw.Lock()
	defer rw.Unlock()
	size := int64(len(p))
	if size > rw.max {
		return 0, fmt.Errorf("logging: log size %d exceeds max file size %d", size, rw.max)
	}
	if rw.file == nil || rw.size+size > rw.max {
		if err := rw.rotate(); err != nil {
			return 0, err
		}
	}
	n, err := rw.file.Write(p)
	rw.size += int64(n)
	return n, err
}

func (rw *RSyncWriter) rotate() error {
	if rw.file != nil {
		if err := rw.file.Close(); err != nil {
			return err
		}
	}
	if err := os.MkdirAll(rw.folder, 0o700); err != nil {
		return err
	}
	file, err := os.OpenFile(CreateLogFilePath(rw.folder, rw.isProd, rw.clock.Now()), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	rw.file = file
	rw.size = 0
	return nil
}

// Sync flushes the current file if any.
func (rw *RSyncWriter) Sync() error {
	rw.Lock()
	defer rw.Unlock()
	if rw.file == nil {
		return nil
	}
	return rw.file.Sync()
}

// Close closes the current log file.
func (rw *RSyncWriter) Close() error {
	rw.Lock()
	defer rw.Unlock()
	if rw.file == nil {
		return nil
	}
	err := rw.file.Close()
	rw.file = nil
	return err
}

// stdoutSyncer avoids the `invalid argument` error zap gets when
// calling Sync on a terminal.
type stdoutSyncer struct {
	out *os.File
}

func (s *stdoutSyncer) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

func (s *stdoutSyncer) Sync() error {
	return nil
}

// SetupLogging initializes the logging module. In production all logs are
// saved to the rotated files only. In development the same logs are printed
// to standard output as well. Stacktraces are kept for fatal logs only.
func SetupLogging(config *Config, w zapcore.WriteSyncer, clock zapcore.Clock) (*zap.Logger, func() error) {
	var encoderConfig zapcore.EncoderConfig
	if config.IsProduction {
		encoderConfig = zap.NewProductionEncoderConfig()
	} else {
		encoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	encoderConfig.TimeKey = "ts"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.LevelKey = "lvl"
	encoderConfig.NameKey = "name"
	encoderConfig.MessageKey = "msg"
	encoderConfig.CallerKey = "caller"
	encoderConfig.StacktraceKey = "skt"

	cores := []zapcore.Core{zapcore.NewCore(zapcore.NewJSONEncoder(encoderConfig), w, config.LogLevel)}
	if !config.IsProduction {
		cores = append(cores, zapcore.NewCore(
			zapcore.NewConsoleEncoder(encoderConfig),
			zapcore.Lock(&stdoutSyncer{os.Stdout}),
			config.LogLevel,
		))
	}

	logger := zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddStacktrace(zapcore.FatalLevel), zap.WithClock(clock))
	logger = logger.With(
		zap.String("app.commit", config.GitCommit),
		zap.String("app.tag", config.GitTag),
		zap.String("app.built", config.BuildTime),
	)

	flusher := func() error {
		if err := logger.Sync(); err != nil {
			return fmt.Errorf("[flush logs]: %w", err)
		}
		return nil
	}
	return logger, flusher
}

// CreateLogFilePath returns the path of a new log file named after its creation time.
func CreateLogFilePath(folder string, isProd bool, t time.Time) string {
	env := "dev"
	if isProd {
		env = "prod"
	}
	name := fmt.Sprintf("%04d%02d%02d.%02d%02d%02d.%s.log", t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), env)
	return filepath.Join(folder, name)
}

var _ gormlogger.Interface = (*GormZapLogger)(nil)

// GormZapLogger forwards gorm logs and sql traces to zap.
type GormZapLogger struct {
	logger        *zap.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

// NewGormZapLogger returns a gorm logger which reports errors and slow queries
// as warnings and every other query at debug level.
func NewGormZapLogger(logger *zap.Logger, slowThreshold time.Duration) *GormZapLogger {
	return &GormZapLogger{
		logger:        logger.Named("gorm").WithOptions(zap.AddCallerSkip(3)),
		level:         gormlogger.Info,
		slowThreshold: slowThreshold,
	}
}

func (l *GormZapLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	nl := *l
	nl.level = level
	return &nl
}

func (l *GormZapLogger) Info(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Info {
		l.logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *GormZapLogger) Warn(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Warn {
		l.logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *GormZapLogger) Error(_ context.Context, msg string, data ...interface{}) {
	if l.level >= gormlogger.Error {
		l.logger.Error(fmt.Sprintf(msg, data...))
	}
}

// Trace logs each executed statement. A missing record is not an error for us.
func (l *GormZapLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= gormlogger.Silent {
		return
	}
	elapsed := time.Since(begin)
	sql, rows := fc()
	fields := []zap.Field{
		zap.String("request.id", GetValueFromContext(ctx, RequestIDContextKey)),
		zap.String("sql.query", sql),
		zap.Int64("sql.rows", rows),
		zap.Duration("sql.duration", elapsed),
	}
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound) && l.level >= gormlogger.Error:
		l.logger.Error("sql query failed", append(fields, zap.Error(err))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= gormlogger.Warn:
		l.logger.Warn("slow sql query", fields...)
	case l.level >= gormlogger.Info:
		l.logger.Debug("sql query", fields...)
	}
}
