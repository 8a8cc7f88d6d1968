package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	t.Setenv("LEAFC_HOME", t.TempDir())
	var outBuf, errBuf bytes.Buffer
	code = run(context.Background(), strings.NewReader(stdin), &outBuf, &errBuf, args)
	return code, outBuf.String(), errBuf.String()
}

func writeSourceFile(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestRunEmitsAstForWellFormedFile(t *testing.T) {
	path := writeSourceFile(t, "ok.lf", "fn main() { let x = 1; }")
	code, stdout, _ := runCLI(t, "", "--emit=ast", path)
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "@[")
}

func TestRunEmitsTokenStream(t *testing.T) {
	path := writeSourceFile(t, "ok.lf", "fn main() {}")
	code, stdout, _ := runCLI(t, "", "--emit=token-stream", path)
	require.Equal(t, exitOK, code)
	require.NotEmpty(t, stdout)
}

func TestRunReportsCompileErrorsWithoutInternalFailure(t *testing.T) {
	path := writeSourceFile(t, "bad.lf", "fn f( { }")
	code, _, stderr := runCLI(t, "", path)
	require.Equal(t, exitCompile, code)
	require.NotEmpty(t, stderr)
}

func TestRunFailsInternallyWithNoPaths(t *testing.T) {
	code, _, stderr := runCLI(t, "")
	require.Equal(t, exitInternal, code)
	require.Contains(t, stderr, "no input files")
}

func TestRunFailsInternallyOnMissingFile(t *testing.T) {
	code, _, _ := runCLI(t, "", filepath.Join(t.TempDir(), "missing.lf"))
	require.Equal(t, exitInternal, code)
}

func TestOptLevelOverrideOnlyAppliesWhenFlagPassed(t *testing.T) {
	home := t.TempDir()
	t.Setenv("LEAFC_HOME", home)
	require.NoError(t, os.WriteFile(filepath.Join(home, "config.yaml"), []byte("opt_level: o2\n"), 0o644))

	path := writeSourceFile(t, "ok.lf", "fn main() {}")

	var outBuf, errBuf bytes.Buffer
	code := run(context.Background(), strings.NewReader(""), &outBuf, &errBuf, []string{"--emit=ast", path})
	require.Equal(t, exitOK, code)

	var outBuf2, errBuf2 bytes.Buffer
	code2 := run(context.Background(), strings.NewReader(""), &outBuf2, &errBuf2, []string{"--emit=ast", "--opt-level=o3", path})
	require.Equal(t, exitOK, code2)
}

func TestRunInteractiveReplEchoesTree(t *testing.T) {
	code, stdout, _ := runCLI(t, "let x = 1;\n", "--interactive")
	require.Equal(t, exitOK, code)
	require.Contains(t, stdout, "leafc>")
}
