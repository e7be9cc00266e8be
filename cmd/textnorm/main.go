// Command textnorm normalizes transcript text from the command line.
//
// Input comes from -text, -file or stdin; every input line produces one
// normalized output line on stdout.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	textnormalizer "github.com/baditaflorin/go_text_normalizer"
	"github.com/baditaflorin/go_text_normalizer/internal/config"
	"github.com/baditaflorin/go_text_normalizer/pkg/streaming"
	"github.com/baditaflorin/l"
)

// options holds the parsed command-line flags
type options struct {
	language      string
	text          string
	file          string
	configFile    string
	workers       int
	listLanguages bool
	verbose       bool
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit code
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	cfg := config.Default()
	if opts.configFile != "" {
		if cfg, err = config.Load(opts.configFile); err != nil {
			fmt.Fprintf(stderr, "Error loading configuration: %v\n", err)
			return 1
		}
	}
	if opts.workers > 0 {
		cfg.Stream.Workers = opts.workers
	}

	logger, closeLogger, err := createLogger(cfg.Log, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "Error creating logger: %v\n", err)
		return 1
	}
	defer closeLogger()

	n, err := textnormalizer.New(textnormalizer.WithLogger(logger))
	if err != nil {
		fmt.Fprintf(stderr, "Error creating normalizer: %v\n", err)
		return 1
	}

	if opts.listLanguages {
		for _, code := range n.Languages() {
			fmt.Fprintln(stdout, code)
		}
		return 0
	}

	if !n.Supports(opts.language) {
		logger.Warn("No dedicated processor for language, only trimming whitespace", "language", opts.language)
	}

	input, closeInput, err := openInput(opts, stdin)
	if err != nil {
		fmt.Fprintf(stderr, "Error opening input: %v\n", err)
		return 1
	}
	defer closeInput()

	ln := streaming.New(n,
		streaming.WithWorkers(cfg.Stream.Workers),
		streaming.WithBatchSize(cfg.Stream.BatchSize),
		streaming.WithMaxLineSize(cfg.Stream.MaxLineSize),
		streaming.WithLogger(logger),
	)

	stats, err := ln.NormalizeLines(ctx, input, stdout, opts.language)
	if err != nil {
		fmt.Fprintf(stderr, "Error normalizing input: %v\n", err)
		return 1
	}

	if opts.verbose {
		fmt.Fprintf(stderr, "lines=%d bytes_read=%d bytes_written=%d time=%s\n",
			stats.Lines, stats.BytesRead, stats.BytesWritten, stats.ProcessingTime)
	}
	return 0
}

// parseFlags parses and validates the command-line flags
func parseFlags(args []string, stderr io.Writer) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("textnorm", flag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringVar(&opts.language, "lang", "", "Language code of the input (e.g. en, zh_cmn, vi)")
	fs.StringVar(&opts.text, "text", "", "Text to normalize")
	fs.StringVar(&opts.file, "file", "", "File to normalize line by line (default: stdin)")
	fs.StringVar(&opts.configFile, "config", "", "YAML configuration file")
	fs.IntVar(&opts.workers, "workers", 0, "Number of worker goroutines (0 = configuration or NumCPU)")
	fs.BoolVar(&opts.listLanguages, "languages", false, "List supported language codes and exit")
	fs.BoolVar(&opts.verbose, "verbose", false, "Print statistics to stderr")

	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: textnorm [options]\n")
		fmt.Fprintf(stderr, "\nOptions:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  textnorm -lang=en -text=\"i have twenty three cats\"\n")
		fmt.Fprintf(stderr, "  textnorm -lang=zh_cmn -file=transcripts.txt\n")
		fmt.Fprintf(stderr, "  cat transcripts.txt | textnorm -lang=vi\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if opts.text != "" && opts.file != "" {
		fmt.Fprintln(stderr, "Error: -text and -file are mutually exclusive")
		fs.Usage()
		return nil, errors.New("conflicting inputs")
	}
	if opts.workers < 0 {
		fmt.Fprintln(stderr, "Error: -workers must not be negative")
		fs.Usage()
		return nil, errors.New("invalid workers")
	}

	return opts, nil
}

// openInput returns the reader selected by the flags
func openInput(opts *options, stdin io.Reader) (io.Reader, func(), error) {
	switch {
	case opts.text != "":
		return strings.NewReader(opts.text), func() {}, nil
	case opts.file != "":
		f, err := os.Open(opts.file)
		if err != nil {
			return nil, nil, err
		}
		return f, func() { f.Close() }, nil
	default:
		return stdin, func() {}, nil
	}
}

// createLogger creates a logger writing to the configured file or stderr,
// keeping stdout for normalized output. The returned function closes the
// logger and then its log file, if any.
func createLogger(cfg config.LogConfig, stderr io.Writer) (l.Logger, func() error, error) {
	output, closeOutput, err := openLogOutput(cfg.File, stderr)
	if err != nil {
		return nil, nil, err
	}

	logger, err := l.NewStandardFactory().CreateLogger(l.Config{
		Output:     output,
		JsonFormat: cfg.JSON,
	})
	if err != nil {
		closeOutput()
		return nil, nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return logger, func() error {
		return errors.Join(logger.Close(), closeOutput())
	}, nil
}

// openLogOutput opens path for appending, or returns fallback when path is
// empty. Only an opened file is closed by the returned function.
func openLogOutput(path string, fallback io.Writer) (io.Writer, func() error, error) {
	if path == "" {
		return fallback, func() error { return nil }, nil
	}
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return file, file.Close, nil
}
