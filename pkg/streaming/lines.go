// Package streaming normalizes line-oriented input, one output line per
// input line, using a pool of workers while keeping the input order.
package streaming

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
	"github.com/baditaflorin/l"
)

const (
	// DefaultBatchSize is the number of lines handed to a worker at once
	DefaultBatchSize = 64

	// DefaultMaxLineSize is the longest line accepted, in bytes
	DefaultMaxLineSize = 1024 * 1024

	// initialLineBuffer is the scanner's starting buffer size, in bytes
	initialLineBuffer = 64 * 1024

	// maxJobQueueSize limits the number of pending batches
	maxJobQueueSize = 32
)

// TextNormalizer is satisfied by *textnormalizer.Normalizer.
type TextNormalizer interface {
	Normalize(language, text string) string
}

// Stats describes a completed run.
type Stats struct {
	Lines          int
	BytesRead      int64
	BytesWritten   int64
	ProcessingTime time.Duration
}

// LineNormalizer normalizes every line of a reader into a writer.
type LineNormalizer struct {
	normalizer  TextNormalizer
	workers     int
	batchSize   int
	maxLineSize int
	logger      ports.Logger
}

// Option defines a functional option for configuring LineNormalizer
type Option func(*LineNormalizer)

// WithWorkers sets the number of worker goroutines (0 = runtime.NumCPU()).
func WithWorkers(n int) Option {
	return func(ln *LineNormalizer) {
		ln.workers = n
	}
}

// WithBatchSize sets how many lines a worker handles per job.
func WithBatchSize(n int) Option {
	return func(ln *LineNormalizer) {
		ln.batchSize = n
	}
}

// WithMaxLineSize sets the longest accepted line in bytes.
func WithMaxLineSize(n int) Option {
	return func(ln *LineNormalizer) {
		ln.maxLineSize = n
	}
}

// WithLogger sets a custom logger.
func WithLogger(lg l.Logger) Option {
	return func(ln *LineNormalizer) {
		ln.logger = logger.FromExisting(lg)
	}
}

// New creates a LineNormalizer around n.
func New(n TextNormalizer, opts ...Option) *LineNormalizer {
	ln := &LineNormalizer{
		normalizer:  n,
		batchSize:   DefaultBatchSize,
		maxLineSize: DefaultMaxLineSize,
		logger:      logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(ln)
	}
	if ln.workers <= 0 {
		ln.workers = runtime.NumCPU()
	}
	if ln.batchSize <= 0 {
		ln.batchSize = DefaultBatchSize
	}
	if ln.maxLineSize <= 0 {
		ln.maxLineSize = DefaultMaxLineSize
	}
	return ln
}

type lineJob struct {
	id    int
	lines []string
}

type lineJobResult struct {
	id    int
	lines []string
}

// NormalizeLines reads r line by line, normalizes each line for language and
// writes the results to w in input order, each terminated by '\n'.
// It stops early when ctx is cancelled or writing fails.
func (ln *LineNormalizer) NormalizeLines(ctx context.Context, r io.Reader, w io.Writer, language string) (Stats, error) {
	startTime := time.Now()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	jobs := make(chan lineJob, maxJobQueueSize)
	results := make(chan lineJobResult, ln.workers)

	var wg sync.WaitGroup
	for i := 0; i < ln.workers; i++ {
		wg.Add(1)
		go ln.worker(language, jobs, results, &wg)
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	var stats Stats
	readErr := make(chan error, 1)
	go func() {
		defer close(jobs)
		readErr <- ln.read(ctx, r, jobs, &stats)
	}()

	bw := bufio.NewWriter(w)
	pending := make(map[int][]string)
	next := 0
	var writeErr error

	for res := range results {
		if writeErr != nil {
			continue
		}
		pending[res.id] = res.lines
		for {
			lines, ok := pending[next]
			if !ok {
				break
			}
			delete(pending, next)
			next++
			if err := ln.write(bw, lines, &stats); err != nil {
				writeErr = fmt.Errorf("streaming: write output: %w", err)
				cancel()
				break
			}
		}
	}

	err := <-readErr
	if writeErr == nil {
		if ferr := bw.Flush(); ferr != nil {
			writeErr = fmt.Errorf("streaming: flush output: %w", ferr)
		}
	}
	if writeErr != nil {
		err = writeErr
	}

	stats.ProcessingTime = time.Since(startTime)
	ln.logger.Debug("Normalized line stream",
		"language", language,
		"lines", stats.Lines,
		"bytes_read", stats.BytesRead,
		"bytes_written", stats.BytesWritten,
		"duration", stats.ProcessingTime,
	)
	if err != nil {
		ln.logger.Error("Line stream normalization failed", "error", err)
	}
	return stats, err
}

// read splits r into batches of lines. It is the only writer of the
// read-side counters in stats.
func (ln *LineNormalizer) read(ctx context.Context, r io.Reader, jobs chan<- lineJob, stats *Stats) error {
	scanner := bufio.NewScanner(r)
	// The scanner limit is the larger of max and the initial capacity.
	scanner.Buffer(make([]byte, 0, min(initialLineBuffer, ln.maxLineSize)), ln.maxLineSize)
	scanner.Split(func(data []byte, atEOF bool) (int, []byte, error) {
		advance, token, err := bufio.ScanLines(data, atEOF)
		stats.BytesRead += int64(advance)
		return advance, token, err
	})

	id := 0
	batch := make([]string, 0, ln.batchSize)
	send := func() error {
		select {
		case jobs <- lineJob{id: id, lines: batch}:
			id++
			batch = make([]string, 0, ln.batchSize)
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	for scanner.Scan() {
		stats.Lines++
		batch = append(batch, scanner.Text())
		if len(batch) >= ln.batchSize {
			if err := send(); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("streaming: read input: %w", err)
	}
	if len(batch) > 0 {
		if err := send(); err != nil {
			return err
		}
	}
	return ctx.Err()
}

func (ln *LineNormalizer) worker(language string, jobs <-chan lineJob, results chan<- lineJobResult, wg *sync.WaitGroup) {
	defer wg.Done()
	for job := range jobs {
		out := make([]string, len(job.lines))
		for i, line := range job.lines {
			out[i] = ln.normalizer.Normalize(language, line)
		}
		results <- lineJobResult{id: job.id, lines: out}
	}
}

func (ln *LineNormalizer) write(bw *bufio.Writer, lines []string, stats *Stats) error {
	for _, line := range lines {
		n, err := bw.WriteString(line)
		stats.BytesWritten += int64(n)
		if err != nil {
			return err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
		stats.BytesWritten++
	}
	return nil
}
