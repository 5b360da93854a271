package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeErrorMessage(t *testing.T) {
	fallback := "操作失败"
	testErr := errors.New("internal database error")

	// nil err 返回 fallback
	assert.Equal(t, fallback, SafeErrorMessage(nil, fallback))

	// release 模式返回 fallback，不暴露错误详情
	GlobalConfig = &Config{Server: ServerConfig{Mode: "release"}}
	defer func() { GlobalConfig = nil }()
	assert.Equal(t, fallback, SafeErrorMessage(testErr, fallback))

	// debug 模式返回 err.Error()
	GlobalConfig = &Config{Server: ServerConfig{Mode: "debug"}}
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))

	// GlobalConfig 为 nil 时返回 err.Error()（视为开发环境）
	GlobalConfig = nil
	assert.Equal(t, "internal database error", SafeErrorMessage(testErr, fallback))
}

func TestLoadConfig_Defaults(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Port)
	assert.Equal(t, "dashboard", cfg.Risk.Profile)
	assert.Equal(t, 0.75, cfg.Risk.EscalationThreshold)
	assert.Equal(t, 7, cfg.Risk.HistoryCapacity)
	assert.Equal(t, 10000, cfg.Risk.MaxSessions)
	assert.Equal(t, 7*24*time.Hour, cfg.Risk.SessionIdle)
	assert.Equal(t, 24*time.Hour, cfg.JWT.ExpireTime)
	assert.Equal(t, time.Minute, cfg.RateLimit.Window)
	assert.Same(t, cfg, GetConfig())
}

func TestLoadConfig_ExternalFileOverrides(t *testing.T) {
	defer func() { GlobalConfig = nil }()

	path := filepath.Join(t.TempDir(), "config.yaml")
	content := "risk:\n  profile: agent\n  escalation_threshold: 1.5\n  history_capacity: 3\n  max_sessions: 50\n  session_idle_hours: 2\nrate_limit:\n  window_seconds: 5\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "agent", cfg.Risk.Profile)
	// 越界阈值回落到默认值
	assert.Equal(t, 0.75, cfg.Risk.EscalationThreshold)
	assert.Equal(t, 3, cfg.Risk.HistoryCapacity)
	assert.Equal(t, 50, cfg.Risk.MaxSessions)
	assert.Equal(t, 2*time.Hour, cfg.Risk.SessionIdle)
	assert.Equal(t, 5*time.Second, cfg.RateLimit.Window)
	// 未覆盖的键保留内置值
	assert.Equal(t, "wellness", cfg.Database.DBName)
}

func TestGetConfig_PanicsBeforeLoad(t *testing.T) {
	GlobalConfig = nil
	assert.Panics(t, func() { GetConfig() })
}
