// Package config loads the driver's Configuration (spec.md §6) from
// layered sources: built-in defaults, an optional YAML file under
// LEAFC_HOME, environment variables, then explicit CLI overrides — the
// same layering order as the original `leafc_cfg` crate's settings
// resolution.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/leafc-lang/leafc/internal/diagnostics"
	"github.com/leafc-lang/leafc/internal/langkind"
	"gopkg.in/yaml.v3"
)

// OptLevel is the optimization level forwarded to the back-end; the
// front-end itself never branches on it (spec.md §6).
type OptLevel string

const (
	OptNone OptLevel = "none"
	OptO1   OptLevel = "o1"
	OptO2   OptLevel = "o2"
	OptO3   OptLevel = "o3"
)

// EmitKind names one intermediate form the driver can serialize.
type EmitKind string

const (
	EmitTokenStream EmitKind = "token-stream"
	EmitAst         EmitKind = "ast"
	EmitLlvmIr      EmitKind = "llvm-ir"
	EmitBitcode     EmitKind = "bitcode"
	EmitObjectFile  EmitKind = "object-file"
	EmitAsm         EmitKind = "asm"
)

// Verbosity selects the logging level (see internal/logging).
type Verbosity string

const (
	VerbosityTrace Verbosity = "trace"
	VerbosityDebug Verbosity = "debug"
	VerbosityInfo  Verbosity = "info"
	VerbosityWarn  Verbosity = "warn"
	VerbosityError Verbosity = "error"
	VerbosityFatal Verbosity = "fatal"
)

// TargetTriple is either the host's native triple or an explicit one.
type TargetTriple struct {
	Native bool
	Arch   string
	OS     string
	Env    string
}

func (t TargetTriple) String() string {
	if t.Native {
		return "native"
	}
	return fmt.Sprintf("%s-%s-%s", t.Arch, t.OS, t.Env)
}

// Configuration is the full set of options the driver consumes at startup
// (spec.md §6's table).
type Configuration struct {
	OptLevel                  OptLevel            `yaml:"opt_level"`
	EmitKinds                 []EmitKind          `yaml:"emit_kinds"`
	Verbosity                 Verbosity           `yaml:"verbosity"`
	TargetTriple              TargetTriple        `yaml:"-"`
	UILanguage                langkind.LanguageKind `yaml:"-"`
	SupportedSourceLanguages  []langkind.LanguageKind `yaml:"-"`
	MultiThreaded             bool                `yaml:"multi_threaded"`
}

// fileConfiguration is the on-disk YAML shape; target triple and language
// kinds are represented as plain strings there and translated afterward.
type fileConfiguration struct {
	OptLevel      OptLevel   `yaml:"opt_level"`
	EmitKinds     []EmitKind `yaml:"emit_kinds"`
	Verbosity     Verbosity  `yaml:"verbosity"`
	TargetTriple  string     `yaml:"target_triple"`
	UILanguage    string     `yaml:"ui_language"`
	SourceLangs   []string   `yaml:"supported_source_languages"`
	MultiThreaded bool       `yaml:"multi_threaded"`
}

// Defaults returns the built-in configuration spec.md §6 implies when no
// file, environment variable, or CLI flag overrides a field: no
// optimization, nothing emitted, Info-level logging, the native target,
// every supported language accepted as a keyword source, and a UI
// language resolved from the host locale.
func Defaults() Configuration {
	return Configuration{
		OptLevel:                 OptNone,
		EmitKinds:                nil,
		Verbosity:                VerbosityInfo,
		TargetTriple:             TargetTriple{Native: true},
		UILanguage:               langkind.DefaultFromEnv(),
		SupportedSourceLanguages: append([]langkind.LanguageKind(nil), langkind.All...),
		MultiThreaded:            false,
	}
}

// Overrides carries the explicit CLI flags that take final precedence over
// everything else (spec.md §6's layering). A zero-value field means "not
// set on the command line", so it never clobbers a lower layer.
type Overrides struct {
	OptLevel      OptLevel
	EmitKinds     []EmitKind
	Verbosity     Verbosity
	TargetTriple  *TargetTriple
	MultiThreaded *bool
}

// Load resolves a Configuration by layering Defaults, the YAML file at
// $LEAFC_HOME/config.yaml (if present), environment variables, then
// overrides, in that order. A malformed (present but unparseable) config
// file is a non-located ConfigInitialization error that aborts the run
// (spec.md §7); a missing file is not an error, since no file is the
// common case.
func Load(overrides Overrides) (Configuration, error) {
	cfg := Defaults()

	home, err := homeDir()
	if err != nil {
		return Configuration{}, diagnostics.Wrap(diagnostics.ConfigInitialization, err)
	}
	if home != "" {
		if err := applyFile(&cfg, filepath.Join(home, "config.yaml")); err != nil {
			return Configuration{}, diagnostics.Wrap(diagnostics.ConfigInitialization, err)
		}
	}

	applyEnv(&cfg)
	applyOverrides(&cfg, overrides)

	if err := validate(cfg); err != nil {
		return Configuration{}, diagnostics.Wrap(diagnostics.ConfigInitialization, err)
	}
	return cfg, nil
}

func homeDir() (string, error) {
	if v := os.Getenv("LEAFC_HOME"); v != "" {
		return v, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", nil // no config directory available; proceed with defaults only
	}
	return filepath.Join(dir, "leafc"), nil
}

func applyFile(cfg *Configuration, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read %s: %w", path, err)
	}

	var fc fileConfiguration
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	if fc.OptLevel != "" {
		cfg.OptLevel = fc.OptLevel
	}
	if len(fc.EmitKinds) > 0 {
		cfg.EmitKinds = fc.EmitKinds
	}
	if fc.Verbosity != "" {
		cfg.Verbosity = fc.Verbosity
	}
	if fc.TargetTriple != "" {
		t, err := parseTargetTriple(fc.TargetTriple)
		if err != nil {
			return fmt.Errorf("%s: target_triple: %w", path, err)
		}
		cfg.TargetTriple = t
	}
	if fc.UILanguage != "" {
		cfg.UILanguage = langkind.DefaultFromLocale(fc.UILanguage)
	}
	if len(fc.SourceLangs) > 0 {
		langs, err := parseLanguageKinds(fc.SourceLangs)
		if err != nil {
			return fmt.Errorf("%s: supported_source_languages: %w", path, err)
		}
		cfg.SupportedSourceLanguages = langs
	}
	cfg.MultiThreaded = cfg.MultiThreaded || fc.MultiThreaded
	return nil
}

// applyEnv folds in LEAFC_LOG (verbosity override) and LANG/LC_ALL
// (default UI language), per spec.md §6's environment variable list.
func applyEnv(cfg *Configuration) {
	if v := os.Getenv("LEAFC_LOG"); v != "" {
		cfg.Verbosity = Verbosity(strings.ToLower(v))
	}
	if os.Getenv("LC_ALL") != "" || os.Getenv("LANG") != "" {
		cfg.UILanguage = langkind.DefaultFromEnv()
	}
}

func applyOverrides(cfg *Configuration, o Overrides) {
	if o.OptLevel != "" {
		cfg.OptLevel = o.OptLevel
	}
	if len(o.EmitKinds) > 0 {
		cfg.EmitKinds = o.EmitKinds
	}
	if o.Verbosity != "" {
		cfg.Verbosity = o.Verbosity
	}
	if o.TargetTriple != nil {
		cfg.TargetTriple = *o.TargetTriple
	}
	if o.MultiThreaded != nil {
		cfg.MultiThreaded = *o.MultiThreaded
	}
}

func validate(cfg Configuration) error {
	switch cfg.OptLevel {
	case OptNone, OptO1, OptO2, OptO3:
	default:
		return fmt.Errorf("invalid opt_level %q", cfg.OptLevel)
	}
	switch cfg.Verbosity {
	case VerbosityTrace, VerbosityDebug, VerbosityInfo, VerbosityWarn, VerbosityError, VerbosityFatal:
	default:
		return fmt.Errorf("invalid verbosity %q", cfg.Verbosity)
	}
	for _, k := range cfg.EmitKinds {
		switch k {
		case EmitTokenStream, EmitAst, EmitLlvmIr, EmitBitcode, EmitObjectFile, EmitAsm:
		default:
			return fmt.Errorf("invalid emit kind %q", k)
		}
	}
	return nil
}

// ParseTargetTriple parses "native" or "arch-os-env" into a TargetTriple,
// exported for the CLI layer's --target flag.
func ParseTargetTriple(s string) (TargetTriple, error) { return parseTargetTriple(s) }

func parseTargetTriple(s string) (TargetTriple, error) {
	if strings.EqualFold(s, "native") {
		return TargetTriple{Native: true}, nil
	}
	parts := strings.Split(s, "-")
	if len(parts) != 3 {
		return TargetTriple{}, fmt.Errorf("expected \"native\" or \"arch-os-env\", got %q", s)
	}
	return TargetTriple{Arch: parts[0], OS: parts[1], Env: parts[2]}, nil
}

// ParseEmitKinds splits a comma-separated --emit flag value into EmitKinds.
func ParseEmitKinds(s string) ([]EmitKind, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]EmitKind, 0, len(parts))
	for _, p := range parts {
		k := EmitKind(strings.ToLower(strings.TrimSpace(p)))
		switch k {
		case EmitTokenStream, EmitAst, EmitLlvmIr, EmitBitcode, EmitObjectFile, EmitAsm:
			out = append(out, k)
		default:
			return nil, fmt.Errorf("unknown emit kind %q", p)
		}
	}
	return out, nil
}

func parseLanguageKinds(names []string) ([]langkind.LanguageKind, error) {
	byName := make(map[string]langkind.LanguageKind, len(langkind.All))
	for _, k := range langkind.All {
		byName[strings.ToLower(k.String())] = k
	}
	out := make([]langkind.LanguageKind, 0, len(names))
	for _, n := range names {
		k, ok := byName[strings.ToLower(strings.TrimSpace(n))]
		if !ok {
			return nil, fmt.Errorf("unknown language %q", n)
		}
		out = append(out, k)
	}
	return out, nil
}
