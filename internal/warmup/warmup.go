package warmup

import (
	"context"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/baditaflorin/go_text_normalizer/internal/ports"
)

// WarmupConfig defines configuration for warming up the system
type WarmupConfig struct {
	// Number of concurrent warmup routines to run
	Concurrency int
	// Number of iterations per routine
	Iterations int
	// Sample text size for warmup, in words
	SampleWords int
	// Warmup duration (0 means no time limit)
	Duration time.Duration
	// Whether to perform GC after warmup
	ForceGC bool
}

// DefaultWarmupConfig returns the default warmup configuration
func DefaultWarmupConfig() WarmupConfig {
	return WarmupConfig{
		Concurrency: runtime.NumCPU(),
		Iterations:  200,
		SampleWords: 200,
		Duration:    5 * time.Second,
		ForceGC:     true,
	}
}

// Loader is implemented by components with lazily loaded data, such as
// dictionaries, that should be read before the first request.
type Loader interface {
	Load() error
}

// Manager handles system warmup operations
type Manager struct {
	logger     ports.Logger
	processors []ports.Processor
	loaders    []Loader
	config     WarmupConfig
}

// NewManager creates a new warmup manager
func NewManager(logger ports.Logger, config WarmupConfig) *Manager {
	if config.Concurrency <= 0 {
		config.Concurrency = 1
	}
	return &Manager{
		logger: logger,
		config: config,
	}
}

// RegisterProcessor adds a processor to be warmed up
func (wm *Manager) RegisterProcessor(p ports.Processor) {
	wm.processors = append(wm.processors, p)
}

// RegisterLoader adds a lazily loaded component to be loaded during warmup
func (wm *Manager) RegisterLoader(l Loader) {
	wm.loaders = append(wm.loaders, l)
}

// WarmUp loads every registered loader, then runs the processors over sample
// text. Load failures are logged and returned; processors are still warmed.
func (wm *Manager) WarmUp(ctx context.Context) error {
	startTime := time.Now()
	wm.logger.Info("Starting system warmup",
		"processors", len(wm.processors),
		"loaders", len(wm.loaders),
		"concurrency", wm.config.Concurrency,
		"iterations", wm.config.Iterations,
	)

	// Create a context with timeout if duration is specified
	warmupCtx := ctx
	if wm.config.Duration > 0 {
		var cancel context.CancelFunc
		warmupCtx, cancel = context.WithTimeout(ctx, wm.config.Duration)
		defer cancel()
	}

	err := wm.load()
	wm.warmUpProcessors(warmupCtx)

	// Force garbage collection if configured
	if wm.config.ForceGC {
		wm.logger.Debug("Forcing garbage collection after warmup")
		runtime.GC()
	}

	wm.logger.Info("System warmup completed",
		"duration", time.Since(startTime),
	)
	return err
}

func (wm *Manager) load() error {
	var firstErr error
	for _, l := range wm.loaders {
		if err := l.Load(); err != nil {
			wm.logger.Error("Warmup load failed", "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}
	return firstErr
}

// warmUpProcessors runs warmup for all registered processors
func (wm *Manager) warmUpProcessors(ctx context.Context) {
	if len(wm.processors) == 0 {
		return
	}

	wm.logger.Debug("Warming up processors", "count", len(wm.processors))

	sampleText := GenerateSampleText(wm.config.SampleWords)

	var wg sync.WaitGroup
	for i := 0; i < wm.config.Concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := 0; j < wm.config.Iterations; j++ {
				select {
				case <-ctx.Done():
					return
				default:
				}

				for _, p := range wm.processors {
					_ = p.Process(sampleText)
				}
			}
		}()
	}

	wg.Wait()
}

// sampleWords mixes every supported script so each processor has
// something to keep and something to drop.
var sampleWords = []string{
	"the", "quick", "brown", "fox", "twenty", "three", "jumps", "over-the", "lazy", "dog!",
	"niña", "Señor", "selamat", "pagi,", "你好", "漢語", "汉语", "123",
	"สวัสดี", "ครับ", "Xin", "chào", "thế", "giới", "வணக்கம்", "நன்றி",
}

// GenerateSampleText creates a multi-script sample of the given number of words.
func GenerateSampleText(words int) string {
	if words <= 0 {
		return ""
	}

	var sb strings.Builder
	for i := 0; i < words; i++ {
		if i > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString(sampleWords[i%len(sampleWords)])
	}
	return sb.String()
}
