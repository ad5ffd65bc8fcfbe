// Command lvds replays a YAML scenario of tree and heap operations and
// prints the resulting report.
//
// Usage:
//
//	lvds -scenario internal/scenario/testdata/sample.yaml
//	lvds -scenario sample.yaml -compact
//
// An optional .env file is loaded first; LOGLEVEL (DEBUG, INFO, WARN, ERROR)
// selects the log level, INFO by default. Logs go to stderr, the report to stdout.
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/lvds/internal/scenario"
)

const envLogLevel = "LOGLEVEL"

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "lvds: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fset := flag.NewFlagSet("lvds", flag.ContinueOnError)
	path := fset.String("scenario", "scenario.yaml", "path to the YAML scenario")
	envFile := fset.String("env", ".env", "optional dotenv file")
	compact := fset.Bool("compact", false, "print tree shapes in {v,L,R} form instead of JSON")
	if err := fset.Parse(args); err != nil {
		return err
	}

	if err := godotenv.Load(*envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("load %s: %w", *envFile, err)
	}

	logger, err := newLogger(os.Getenv(envLogLevel))
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	s, err := scenario.Load(*path)
	if err != nil {
		return err
	}
	logger.Debug("scenario loaded", zap.String("path", *path))

	rep, err := scenario.Run(s, logger)
	if err != nil {
		logger.Error("replay failed", zap.String("path", *path), zap.Error(err))
		return err
	}

	if *compact {
		return printCompact(stdout, rep)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")

	return enc.Encode(rep)
}

// newLogger builds a console logger on stderr at the given level name.
func newLogger(level string) (*zap.Logger, error) {
	lvl := zapcore.InfoLevel
	if level != "" {
		parsed, err := zapcore.ParseLevel(strings.ToLower(level))
		if err != nil {
			return nil, fmt.Errorf("%s: %w", envLogLevel, err)
		}
		lvl = parsed
	}

	config := zap.Config{
		Level:       zap.NewAtomicLevelAt(lvl),
		Development: false,
		Encoding:    "console",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:     "time",
			LevelKey:    "level",
			NameKey:     "logger",
			MessageKey:  "message",
			LineEnding:  zapcore.DefaultLineEnding,
			EncodeLevel: zapcore.CapitalLevelEncoder,
			EncodeTime: func(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
				enc.AppendString(t.Format("2006-01-02 15:04:05"))
			},
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeName:     zapcore.FullNameEncoder,
		},
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
	}

	return config.Build()
}

func printCompact(w io.Writer, rep *scenario.Report) error {
	var b strings.Builder
	fmt.Fprintf(&b, "inserted:   %s\n", rep.Tree.Inserted)
	for _, a := range rep.Tree.Successors {
		next := "nil"
		if a.Next != nil {
			next = fmt.Sprint(*a.Next)
		}
		fmt.Fprintf(&b, "successor:  %d -> %s\n", a.Value, next)
	}
	fmt.Fprintf(&b, "removed:    %s\n", rep.Tree.Removed)
	fmt.Fprintf(&b, "in-order:   %v\n", rep.Tree.InOrder)
	fmt.Fprintf(&b, "levels:     %v\n", rep.Tree.Levels)
	fmt.Fprintf(&b, "heap:       %v\n", rep.Heap.Sequence)

	extracted := make([]string, len(rep.Heap.Extracted))
	for i, v := range rep.Heap.Extracted {
		extracted[i] = "nil"
		if v != nil {
			extracted[i] = fmt.Sprint(*v)
		}
	}
	fmt.Fprintf(&b, "extracted:  [%s]\n", strings.Join(extracted, " "))

	_, err := io.WriteString(w, b.String())

	return err
}
