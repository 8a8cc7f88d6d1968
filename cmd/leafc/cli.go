package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/leafc-lang/leafc/internal/config"
	"github.com/leafc-lang/leafc/internal/diagnostics"
	"github.com/leafc-lang/leafc/internal/driver"
	"github.com/leafc-lang/leafc/internal/lexer"
	"github.com/leafc-lang/leafc/internal/logging"
	"github.com/leafc-lang/leafc/internal/parser"
	"github.com/spf13/cobra"
)

const (
	exitOK       = 0
	exitCompile  = 1
	exitInternal = 2
)

type cliFlags struct {
	emit          string
	optLevel      string
	verbosity     string
	target        string
	multiThreaded bool
	interactive   bool
}

// run builds and executes the root cobra command against args, returning
// the process exit code. It never calls os.Exit itself, so it can be
// exercised from a test with captured stdin/stdout/stderr.
func run(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, args []string) int {
	var flags cliFlags
	exitCode := exitOK

	root := &cobra.Command{
		Use:           "leafc [flags] path...",
		Short:         "Compile leafc source files",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, paths []string) error {
			code, err := execute(ctx, stdin, stdout, stderr, cmd, flags, paths)
			exitCode = code
			return err
		},
	}
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&flags.emit, "emit", "", "comma-separated intermediate forms to dump: token-stream,ast")
	root.Flags().StringVar(&flags.optLevel, "opt-level", string(config.OptNone), "optimization level: none, o1, o2, o3")
	root.Flags().StringVar(&flags.verbosity, "verbosity", "", "log verbosity: trace, debug, info, warn, error, fatal")
	root.Flags().StringVar(&flags.target, "target", "native", "target triple, or \"native\"")
	root.Flags().BoolVar(&flags.multiThreaded, "multi-threaded", false, "parse input files concurrently")
	root.Flags().BoolVar(&flags.interactive, "interactive", false, "start an interactive REPL instead of compiling files")

	if err := root.Execute(); err != nil {
		writef(stderr, "leafc: %v\n", err)
		if exitCode == exitOK {
			exitCode = exitInternal
		}
	}
	return exitCode
}

// execute resolves configuration, builds a driver.Session, and either
// starts the REPL or compiles the given paths, returning the exit code and
// (for internal errors only) the error to report — located compile errors
// are rendered directly and signaled purely through the returned code, per
// spec.md §7's split between located and non-located failures.
func execute(ctx context.Context, stdin io.Reader, stdout, stderr io.Writer, cmd *cobra.Command, flags cliFlags, paths []string) (int, error) {
	var overrides config.Overrides
	if cmd.Flags().Changed("opt-level") {
		overrides.OptLevel = config.OptLevel(flags.optLevel)
	}
	if cmd.Flags().Changed("verbosity") {
		overrides.Verbosity = config.Verbosity(flags.verbosity)
	}
	if cmd.Flags().Changed("emit") {
		kinds, err := config.ParseEmitKinds(flags.emit)
		if err != nil {
			return exitInternal, err
		}
		overrides.EmitKinds = kinds
	}
	if cmd.Flags().Changed("target") {
		triple, err := config.ParseTargetTriple(flags.target)
		if err != nil {
			return exitInternal, err
		}
		overrides.TargetTriple = &triple
	}
	if cmd.Flags().Changed("multi-threaded") {
		overrides.MultiThreaded = &flags.multiThreaded
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		return exitInternal, err
	}

	home := os.Getenv("LEAFC_HOME")
	logger, closer, err := logging.New(cfg, home)
	if err != nil {
		return exitInternal, err
	}
	defer closer.Close()

	cwd, err := os.Getwd()
	if err != nil {
		return exitInternal, err
	}
	session := driver.NewSession(cfg, logger, cwd)

	if flags.interactive {
		return runREPL(stdin, stdout, stderr, home, session), nil
	}

	if len(paths) == 0 {
		return exitInternal, fmt.Errorf("no input files (use --interactive for a REPL)")
	}

	results, err := driver.CompileFiles(ctx, session, paths)
	if err != nil {
		return exitInternal, err
	}

	for _, kind := range cfg.EmitKinds {
		if err := emit(stdout, session, results, kind); err != nil {
			return exitInternal, err
		}
	}

	if driver.HasErrors(results) {
		driver.RenderDiagnostics(stderr, results)
		return exitCompile, nil
	}
	return exitOK, nil
}

func emit(w io.Writer, session *driver.Session, results []driver.FileResult, kind config.EmitKind) error {
	for _, r := range results {
		f := session.FileSet.File(r.File)
		writef(w, "; %s\n", f.DisplayName)
		switch kind {
		case config.EmitAst:
			driver.DumpTree(w, r.Root())
		case config.EmitTokenStream:
			driver.DumpTokens(w, r.Source, lexer.LosslessLex(r.Source).Tokens)
		default:
			return fmt.Errorf("emit kind %q is not produced by the front end alone", kind)
		}
	}
	return nil
}

func runREPL(stdin io.Reader, stdout, stderr io.Writer, home string, session *driver.Session) int {
	history, err := driver.LoadReplHistory(home)
	if err != nil {
		writef(stderr, "leafc: %v\n", err)
		return exitInternal
	}

	scanner := bufio.NewScanner(stdin)
	writeln(stdout, "leafc REPL — enter an item or expression, Ctrl-D to exit")
	for {
		writeString(stdout, "leafc> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := history.Append(line); err != nil {
			writef(stderr, "leafc: %v\n", err)
		}

		id := session.FileSet.AddFile("<repl>", []byte(line))
		tree, diags := parser.Parse([]byte(line), id)
		diags.Iterate(func(d diagnostics.Diagnostic) {
			writef(stderr, "%s\n", d)
		})
		driver.DumpTree(stdout, driver.FileResult{Tree: tree}.Root())
	}
	return exitOK
}

func writef(w io.Writer, format string, args ...any) {
	_, _ = io.WriteString(w, fmt.Sprintf(format, args...))
}

func writeln(w io.Writer, args ...any) {
	_, _ = fmt.Fprintln(w, args...)
}

func writeString(w io.Writer, s string) {
	_, _ = io.WriteString(w, s)
}
