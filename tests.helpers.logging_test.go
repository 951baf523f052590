package main

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func TestCreateLogFilePath(t *testing.T) {
	at := NewMockClocker().Now()
	assert.Equal(t, filepath.Join("logs", "20230702.000000.dev.log"), CreateLogFilePath("logs", false, at))
	assert.Equal(t, filepath.Join("logs", "20230702.000000.prod.log"), CreateLogFilePath("logs", true, at))
}

// TestRSyncWriter ensures a new file is started once the max size is reached.
func TestRSyncWriter(t *testing.T) {
	folder := t.TempDir()
	clock := NewMockClocker()
	rw := NewRSyncWriter(&Config{LogFolder: folder, LogMaxSize: 1}, clock)
	defer rw.Close()

	line := []byte(strings.Repeat("a", 600*1024))
	_, err := rw.Write(line)
	require.NoError(t, err)
	require.NoError(t, rw.Sync())

	clock.MockNow = clock.MockNow.Add(time.Second)
	_, err = rw.Write(line)
	require.NoError(t, err)

	entries, err := os.ReadDir(folder)
	require.NoError(t, err)
	assert.Len(t, entries, 2)

	_, err = rw.Write(make([]byte, 2*1024*1024))
	assert.Error(t, err)
}

func TestSetupLogging(t *testing.T) {
	folder := t.TempDir()
	config := &Config{LogFolder: folder, LogMaxSize: 1, IsProduction: true, LogLevel: zapcore.InfoLevel, GitTag: "v1.0.0"}
	rw := NewRSyncWriter(config, NewMockClocker())
	logger, flush := SetupLogging(config, rw, NewClock(true))
	logger.Debug("hidden")
	logger.Info("visible", zap.String("request.id", "r:abc"))
	require.NoError(t, flush())
	require.NoError(t, rw.Close())

	data, err := os.ReadFile(CreateLogFilePath(folder, true, NewMockClocker().Now()))
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, `"msg":"visible"`)
	assert.Contains(t, content, `"app.tag":"v1.0.0"`)
	assert.Contains(t, content, `"lvl":"info"`)
	assert.NotContains(t, content, "hidden")
}

func TestGormZapLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	gl := NewGormZapLogger(zap.New(core), 100*time.Millisecond)
	sql := func() (string, int64) { return "SELECT * FROM books", 2 }

	gl.Trace(context.Background(), time.Now(), sql, nil)
	gl.Trace(context.Background(), time.Now(), sql, gorm.ErrRecordNotFound)
	gl.Trace(context.Background(), time.Now().Add(-time.Second), sql, nil)
	gl.Trace(context.Background(), time.Now(), sql, errors.New("connection reset"))

	entries := logs.AllUntimed()
	require.Len(t, entries, 4)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.DebugLevel, entries[1].Level)
	assert.Equal(t, "slow sql query", entries[2].Message)
	assert.Equal(t, zapcore.WarnLevel, entries[2].Level)
	assert.Equal(t, "sql query failed", entries[3].Message)
	assert.Equal(t, zapcore.ErrorLevel, entries[3].Level)

	silent := gl.LogMode(gormlogger.Silent)
	silent.Trace(context.Background(), time.Now(), sql, errors.New("ignored"))
	assert.Equal(t, 4, logs.Len())
}
