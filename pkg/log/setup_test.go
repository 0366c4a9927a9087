package log

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetGlobalState Setup의 1회 실행 상태와 logrus 전역 설정을 되돌립니다.
func resetGlobalState() {
	setupOnce = sync.Once{}
	globalCloser = nil
	globalSetupErr = nil

	logrus.StandardLogger().ReplaceHooks(make(logrus.LevelHooks))
	logrus.SetOutput(os.Stderr)
	logrus.SetLevel(InfoLevel)
	logrus.SetReportCaller(false)
	logrus.SetFormatter(&logrus.TextFormatter{})
}

// =============================================================================
// Options
// =============================================================================

func TestOptions_Validate(t *testing.T) {
	existingFile := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(existingFile, []byte("x"), 0644))

	tests := []struct {
		name    string
		opts    Options
		wantErr string
	}{
		{name: "이름 누락", opts: Options{}, wantErr: "Name"},
		{name: "디렉토리 위치에 파일 존재", opts: Options{Name: "app", Dir: existingFile}, wantErr: "파일입니다"},
		{name: "음수 MaxAge", opts: Options{Name: "app", MaxAge: -1}, wantErr: "음수"},
		{name: "출력 대상 없음", opts: Options{Name: "app", DisableFileLog: true}, wantErr: "모두 비활성화"},
		{name: "정상", opts: NewProductionOptions("app")},
		{name: "콘솔 전용", opts: NewConsoleOptions("app")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestProfiles(t *testing.T) {
	prod := NewProductionOptions("app")
	dev := NewDevelopmentOptions("app")

	assert.Equal(t, InfoLevel, prod.Level)
	assert.True(t, prod.EnableCriticalLog)
	assert.False(t, prod.EnableConsoleLog)

	assert.Equal(t, TraceLevel, dev.Level)
	assert.True(t, dev.EnableConsoleLog)
}

// =============================================================================
// Setup
// =============================================================================

func TestSetup_CreatesLogFiles(t *testing.T) {
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	dir := t.TempDir()
	opts := NewProductionOptions("dispatcher")
	opts.Dir = dir

	c, err := Setup(opts)
	require.NoError(t, err)

	WithComponent("test").Info("info 로그")
	WithComponent("test").Error("error 로그")
	WithComponent("test").Debug("debug 로그")

	require.NoError(t, c.Close())
	require.NoError(t, c.Close(), "두 번째 Close도 안전해야 함")

	mainLog, err := os.ReadFile(filepath.Join(dir, "dispatcher.log"))
	require.NoError(t, err)
	assert.Contains(t, string(mainLog), "info 로그")
	assert.Contains(t, string(mainLog), "error 로그")
	assert.NotContains(t, string(mainLog), "debug 로그")

	criticalLog, err := os.ReadFile(filepath.Join(dir, "dispatcher.critical.log"))
	require.NoError(t, err)
	assert.Contains(t, string(criticalLog), "error 로그")
	assert.NotContains(t, string(criticalLog), "info 로그")
}

func TestSetup_OnlyOnce(t *testing.T) {
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	first, err := Setup(NewConsoleOptions("app"))
	require.NoError(t, err)

	second, err := Setup(Options{})
	require.NoError(t, err, "두 번째 호출의 옵션은 무시됨")
	assert.Same(t, first, second)

	require.NoError(t, first.Close())
}

func TestSetup_InvalidOptions(t *testing.T) {
	resetGlobalState()
	t.Cleanup(resetGlobalState)

	c, err := Setup(Options{})
	require.Error(t, err)
	assert.Nil(t, c)
}

func TestSetDebugMode(t *testing.T) {
	t.Cleanup(resetGlobalState)

	SetDebugMode(true)
	assert.Equal(t, TraceLevel, logrus.GetLevel())

	SetDebugMode(false)
	assert.Equal(t, InfoLevel, logrus.GetLevel())
}
