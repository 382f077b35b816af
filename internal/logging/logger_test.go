package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_WritesFile(t *testing.T) {
	LogDir = t.TempDir()

	logger, err := NewLogger("buildings")
	require.NoError(t, err)

	logger.Debug("зарегистрировано здание %d", 7)
	require.NoError(t, logger.Close())

	files, err := filepath.Glob(filepath.Join(LogDir, "buildings_*.log"))
	require.NoError(t, err)
	require.Len(t, files, 1)

	data, err := os.ReadFile(files[0])
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(data), "[DEBUG] [buildings] зарегистрировано здание 7"))
}

func TestLoggerManager_ConsoleOnlyByDefault(t *testing.T) {
	lm := &LoggerManager{loggers: make(map[string]*Logger), consoleOnly: true, consoleLevel: WARN}

	logger, err := lm.GetLogger("world")
	require.NoError(t, err)
	assert.Nil(t, logger.file, "консольный логгер не открывает файл")

	again, err := lm.GetLogger("world")
	require.NoError(t, err)
	assert.Same(t, logger, again)

	require.NoError(t, lm.SetLogLevel("world", ERROR, ERROR))
	assert.Equal(t, ERROR, logger.minConsoleLevel)
	assert.Error(t, lm.SetLogLevel("missing", INFO, INFO))
	assert.ElementsMatch(t, []string{"world"}, lm.ListComponents())
}

func TestLoggerManager_FileLogging(t *testing.T) {
	LogDir = t.TempDir()
	lm := &LoggerManager{loggers: make(map[string]*Logger), consoleOnly: true, consoleLevel: INFO}
	lm.EnableFileLogging(true, WARN)

	logger := lm.MustGetLogger("events")
	require.NotNil(t, logger.file)
	assert.Equal(t, WARN, logger.minConsoleLevel)

	require.NoError(t, lm.CloseAll())
	assert.Empty(t, lm.ListComponents())
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("debug")
	assert.True(t, ok)
	assert.Equal(t, DEBUG, lvl)

	lvl, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, INFO, lvl)
}
