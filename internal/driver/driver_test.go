package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/leafc-lang/leafc/internal/config"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T, multiThreaded bool) *Session {
	t.Helper()
	cfg := config.Defaults()
	cfg.MultiThreaded = multiThreaded
	logger := logrus.New()
	logger.Out = bytes.NewBuffer(nil)
	return NewSession(cfg, logger, t.TempDir())
}

func writeTempFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestCompileFilesSingleThreaded(t *testing.T) {
	s := newTestSession(t, false)
	p1 := writeTempFile(t, "a.lf", "fn main() { let x = 1; }")
	p2 := writeTempFile(t, "b.lf", "struct Point { x: i32, y: i32 }")

	results, err := CompileFiles(context.Background(), s, []string{p1, p2})
	require.NoError(t, err)
	require.Len(t, results, 2)
	require.False(t, HasErrors(results))
	for _, r := range results {
		require.NotNil(t, r.Tree)
		require.NotZero(t, r.File)
	}
}

func TestCompileFilesMultiThreaded(t *testing.T) {
	s := newTestSession(t, true)
	paths := make([]string, 0, 8)
	for i := 0; i < 8; i++ {
		paths = append(paths, writeTempFile(t, "f.lf", "fn f() { let x = 1; }"))
	}

	results, err := CompileFiles(context.Background(), s, paths)
	require.NoError(t, err)
	require.Len(t, results, 8)
	require.False(t, HasErrors(results))
}

func TestCompileFilesReportsParseErrorsWithoutAborting(t *testing.T) {
	s := newTestSession(t, false)
	p := writeTempFile(t, "bad.lf", "fn f( { }")

	results, err := CompileFiles(context.Background(), s, []string{p})
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NotNil(t, results[0].Tree)
}

func TestCompileFilesAbortsOnMissingFile(t *testing.T) {
	s := newTestSession(t, false)
	_, err := CompileFiles(context.Background(), s, []string{filepath.Join(t.TempDir(), "missing.lf")})
	require.Error(t, err)
}

func TestRenderDiagnosticsWritesEveryDiagnostic(t *testing.T) {
	s := newTestSession(t, false)
	p := writeTempFile(t, "bad.lf", "fn f( { }")
	results, err := CompileFiles(context.Background(), s, []string{p})
	require.NoError(t, err)
	require.True(t, HasErrors(results))

	var buf bytes.Buffer
	RenderDiagnostics(&buf, results)
	require.NotEmpty(t, buf.String())
}

func TestReplHistoryPersistsAcrossLoads(t *testing.T) {
	home := t.TempDir()

	h, err := LoadReplHistory(home)
	require.NoError(t, err)
	require.Empty(t, h.Entries())

	require.NoError(t, h.Append("let x = 1;"))
	require.NoError(t, h.Append("x + 1"))

	reloaded, err := LoadReplHistory(home)
	require.NoError(t, err)
	require.Equal(t, []string{"let x = 1;", "x + 1"}, reloaded.Entries())
}

func TestReplSettingsUpdateRejectsUnknownKey(t *testing.T) {
	s := &ReplSettings{}
	require.NoError(t, s.Update("verbosity", "debug"))
	require.Equal(t, "debug", s.Verbosity)
	require.Error(t, s.Update("bogus", "value"))
}
