package logger

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/natefinch/lumberjack.v2"
)

func TestNew_Level(t *testing.T) {
	assert.Equal(t, logrus.DebugLevel, New("debug", FileOptions{}).GetLevel())
	assert.Equal(t, logrus.InfoLevel, New("verbose", FileOptions{}).GetLevel())
	assert.Equal(t, os.Stdout, New("info", FileOptions{}).Out)
}

func TestNew_WritesJSONToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field_sync.log")
	log := New("info", FileOptions{Path: path, MaxSizeMB: 1, MaxBackups: 2})
	rotating, ok := log.Out.(*lumberjack.Logger)
	require.True(t, ok)
	t.Cleanup(func() { _ = rotating.Close() })

	log.WithField("component", "engine").Info("Drain finished")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var entry map[string]any
	require.NoError(t, json.Unmarshal(raw, &entry))
	assert.Equal(t, "Drain finished", entry["msg"])
	assert.Equal(t, "engine", entry["component"])
	assert.Equal(t, 2, rotating.MaxBackups)
}
