package logging

import (
	"path/filepath"
	"testing"

	"github.com/leafc-lang/leafc/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestNewWithNoHomeLogsToStderrOnly(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	cfg.Verbosity = config.VerbosityDebug

	logger, closer, err := New(cfg, "")
	require.NoError(t, err)
	require.NotNil(t, closer)
	require.Equal(t, logrus.DebugLevel, logger.Level)
}

func TestNewWithHomeCreatesLogFile(t *testing.T) {
	home := t.TempDir()
	cfg := config.Defaults()

	logger, closer, err := New(cfg, home)
	require.NoError(t, err)
	defer closer.Close()

	logger.Info("hello")

	entries, err := filepath.Glob(filepath.Join(home, "logs", "*.log"))
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestNewRejectsUnrecognizedVerbosity(t *testing.T) {
	t.Parallel()

	cfg := config.Defaults()
	cfg.Verbosity = "bogus"

	_, _, err := New(cfg, "")
	require.Error(t, err)
}

func TestPhaseFieldsIncludesPhaseAndFile(t *testing.T) {
	t.Parallel()

	fields := PhaseFields("parse", "main.lf")
	require.Equal(t, "parse", fields["phase"])
	require.Equal(t, "main.lf", fields["file"])
}
