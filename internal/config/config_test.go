package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/leafc-lang/leafc/internal/langkind"
	"github.com/stretchr/testify/require"
)

func TestDefaultsAreValid(t *testing.T) {
	t.Parallel()
	require.NoError(t, validate(Defaults()))
}

func TestLoadWithNoHomeAndNoOverridesReturnsDefaults(t *testing.T) {
	t.Setenv("LEAFC_HOME", t.TempDir())
	t.Setenv("LEAFC_LOG", "")
	t.Setenv("LC_ALL", "")
	t.Setenv("LANG", "")

	cfg, err := Load(Overrides{})
	require.NoError(t, err)
	require.Equal(t, OptNone, cfg.OptLevel)
	require.Equal(t, VerbosityInfo, cfg.Verbosity)
	require.True(t, cfg.TargetTriple.Native)
	require.Equal(t, langkind.English, cfg.UILanguage)
}

func TestLoadAppliesFileBeforeEnvBeforeOverrides(t *testing.T) {
	home := t.TempDir()
	err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte(`
opt_level: o2
verbosity: debug
target_triple: x86_64-linux-gnu
`), 0o644)
	require.NoError(t, err)

	t.Setenv("LEAFC_HOME", home)
	t.Setenv("LEAFC_LOG", "warn")

	cfg, err := Load(Overrides{OptLevel: OptO3})
	require.NoError(t, err)

	// File sets o2, but the explicit CLI override wins.
	require.Equal(t, OptO3, cfg.OptLevel)
	// Env wins over the file's verbosity, since it layers on after it.
	require.Equal(t, VerbosityWarn, cfg.Verbosity)
	require.Equal(t, TargetTriple{Arch: "x86_64", OS: "linux", Env: "gnu"}, cfg.TargetTriple)
}

func TestLoadRejectsMalformedFile(t *testing.T) {
	home := t.TempDir()
	err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("opt_level: [this is not a string"), 0o644)
	require.NoError(t, err)
	t.Setenv("LEAFC_HOME", home)

	_, err = Load(Overrides{})
	require.Error(t, err)
}

func TestLoadRejectsInvalidTargetTripleInFile(t *testing.T) {
	home := t.TempDir()
	err := os.WriteFile(filepath.Join(home, "config.yaml"), []byte("target_triple: not-a-triple-format\n"), 0o644)
	require.NoError(t, err)
	t.Setenv("LEAFC_HOME", home)

	_, err = Load(Overrides{})
	require.Error(t, err)
}

func TestParseTargetTriple(t *testing.T) {
	t.Parallel()

	tt, err := ParseTargetTriple("native")
	require.NoError(t, err)
	require.True(t, tt.Native)

	tt, err = ParseTargetTriple("aarch64-darwin-none")
	require.NoError(t, err)
	require.Equal(t, TargetTriple{Arch: "aarch64", OS: "darwin", Env: "none"}, tt)

	_, err = ParseTargetTriple("bogus")
	require.Error(t, err)
}

func TestParseEmitKinds(t *testing.T) {
	t.Parallel()

	kinds, err := ParseEmitKinds("ast, token-stream")
	require.NoError(t, err)
	require.Equal(t, []EmitKind{EmitAst, EmitTokenStream}, kinds)

	_, err = ParseEmitKinds("not-a-kind")
	require.Error(t, err)

	kinds, err = ParseEmitKinds("")
	require.NoError(t, err)
	require.Nil(t, kinds)
}

func TestValidateRejectsUnknownEmitKind(t *testing.T) {
	t.Parallel()
	cfg := Defaults()
	cfg.EmitKinds = []EmitKind{"bogus"}
	require.Error(t, validate(cfg))
}
