// Package main provides the CLI entrypoint for strenum.
//
// strenum is a go:generate tool that maps integer enum variants to strings:
//   - String, Len and IsValid methods
//   - Parse<T> for exact matches
//   - Cut<T>Prefix for longest-prefix matches
//   - a <T>MaxLen constant
//
// Enums come either from Go source, where a variant's representation is
// given in a "// strenum:" line comment, or from a YAML manifest.
//
//	//go:generate go run strenum/cmd/strenum -type=Symbol
//	//go:generate go run strenum/cmd/strenum -manifest=enums.yaml
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"strenum/internal/common"
	"strenum/internal/config"
	"strenum/internal/diagnostic"
	"strenum/internal/gen"
	"strenum/internal/plan"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

const (
	cmdGen     = "gen"
	cmdCheck   = "check"
	cmdAnalyze = "analyze"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)

	stop()
	os.Exit(code)
}

// run executes one command and returns the process exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	command := cmdGen

	if len(args) > 0 {
		switch args[0] {
		case cmdGen, cmdCheck, cmdAnalyze:
			command, args = args[0], args[1:]
		}
	}

	fs := config.NewFlagSet("strenum "+command, stderr)
	fs.Usage = func() { usage(fs) }

	cfg, err := config.Load(fs, args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}

	if err != nil {
		fmt.Fprintf(stderr, "strenum: %v\n", err)

		if errors.Is(err, config.ErrUsage) {
			return exitUsage
		}

		return exitFail
	}

	logger := newLogger(stderr, cfg.Verbose)
	defer func() { _ = logger.Sync() }()

	prev := common.Logger()
	common.SetLogger(logger)

	defer common.SetLogger(prev)

	src, err := loadSource(cfg)
	if err != nil {
		logger.Error("loading enums failed", zap.Error(err))
		return exitFail
	}

	resolver := plan.NewResolver(src.Package, src.Requests, plan.ResolutionConfig{
		StrictMode: cfg.Strict,
	})

	p, err := resolver.Resolve(ctx)
	if p != nil {
		logDiagnostics(logger, p.Diagnostics)
	}

	if command == cmdAnalyze && p != nil {
		if werr := writeAnalysis(stdout, src, p); werr != nil {
			logger.Error("writing analysis failed", zap.Error(werr))
			return exitFail
		}
	}

	if err != nil {
		logger.Error("resolution failed", zap.Error(err))
		return exitFail
	}

	if command == cmdAnalyze {
		return exitOK
	}

	generator := gen.NewGenerator(gen.GeneratorConfig{
		Command:        strings.Join(append([]string{"strenum"}, args...), " "),
		Filename:       src.Filename,
		OutputDir:      src.Dir,
		TextMarshaling: cfg.Text,
	})

	file, err := generator.Generate(p)
	if err != nil {
		logger.Error("generation failed", zap.Error(err))
		return exitFail
	}

	files := []gen.GeneratedFile{*file}
	path := filepath.Join(src.Dir, src.Filename)

	if command == cmdCheck {
		if err := gen.Check(files, src.Dir); err != nil {
			logger.Error("check failed", zap.Error(err))
			return exitFail
		}

		logger.Info("up to date", zap.String("file", path))

		return exitOK
	}

	if err := gen.WriteFiles(files, src.Dir); err != nil {
		logger.Error("writing failed", zap.Error(err))
		return exitFail
	}

	logger.Info("generated", zap.String("file", path), zap.Int("enums", len(p.Enums)))

	return exitOK
}

func usage(fs *flag.FlagSet) {
	w := fs.Output()
	fmt.Fprintf(w, "Usage of strenum:\n")
	fmt.Fprintf(w, "\tstrenum [gen|check|analyze] -type T[,T...] [flags] [package]\n")
	fmt.Fprintf(w, "\tstrenum [gen|check|analyze] -manifest enums.yaml [flags]\n")
	fmt.Fprintf(w, "Commands:\n")
	fmt.Fprintf(w, "\tgen      write the generated file (default)\n")
	fmt.Fprintf(w, "\tcheck    fail if the generated file is missing or out of date\n")
	fmt.Fprintf(w, "\tanalyze  print the declarations and match orders as YAML\n")
	fmt.Fprintf(w, "Flags:\n")
	fs.PrintDefaults()
}

// newLogger builds a console logger without timestamps. Verbose enables
// debug output.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""

	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)

	return zap.New(core)
}

func logDiagnostics(logger *zap.Logger, diags diagnostic.Diagnostics) {
	for _, d := range diags.All() {
		fields := []zap.Field{zap.String("code", d.Code)}

		if d.Severity == diagnostic.DiagnosticError {
			logger.Error(d.String(), fields...)
		} else {
			logger.Warn(d.String(), fields...)
		}
	}
}
