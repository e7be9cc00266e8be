// normalizer.go
// Package textnormalizer normalizes transcribed speech into a canonical form
// for scoring against reference transcripts.
//
// Text is routed by its language code to a script-aware processor:
//
//	en              Latin allow-list, number words to digits, upper case
//	id, ms          Latin allow-list, upper case
//	tl              Latin allow-list plus ñ, upper case
//	zh              CJK ideographs and digits, one per token
//	zh_cmn, zh_yue  as zh, then forced to simplified / traditional
//	th              Thai characters and digits, one per token
//	vi              Vietnamese letters, ASCII punctuation removed, upper case
//	ta              Tamil characters
//
// Any other code, including the empty one, only trims whitespace. The
// language code is matched exactly and case-sensitively.
//
// A Normalizer is immutable after construction and safe for concurrent use.
package textnormalizer

import (
	"context"
	"sync"

	"github.com/baditaflorin/go_text_normalizer/internal/adapters/logger"
	"github.com/baditaflorin/go_text_normalizer/internal/adapters/processor"
	"github.com/baditaflorin/go_text_normalizer/internal/core/router"
	"github.com/baditaflorin/go_text_normalizer/internal/ports"
	"github.com/baditaflorin/go_text_normalizer/internal/warmup"
	"github.com/baditaflorin/l"
)

// NumberConverter rewrites spelled-out numbers as digits for English text.
// See WithNumberConverter.
type NumberConverter = ports.NumberConverter

// WarmupConfig controls the optional warm-up run. See WithWarmUpConfig.
type WarmupConfig = warmup.WarmupConfig

// DefaultWarmupConfig returns the default warm-up configuration.
func DefaultWarmupConfig() WarmupConfig {
	return warmup.DefaultWarmupConfig()
}

// Option defines a functional option for configuring the Normalizer.
type Option func(*config)

type config struct {
	Logger       ports.Logger
	Numbers      ports.NumberConverter
	WarmUp       bool
	WarmUpConfig warmup.WarmupConfig
}

// WithLogger sets a custom logger. The logger receives warnings about
// best-effort steps that failed, such as number-word conversion.
func WithLogger(lg l.Logger) Option {
	return func(cfg *config) {
		cfg.Logger = logger.FromExisting(lg)
	}
}

// WithNumberConverter replaces the built-in English number-word converter.
// When Convert returns an error its result is discarded, the failure is
// logged as a warning and the text keeps its number words.
func WithNumberConverter(c NumberConverter) Option {
	return func(cfg *config) {
		cfg.Numbers = c
	}
}

// WithWarmUp enables warm-up on initialization.
func WithWarmUp(enable bool) Option {
	return func(cfg *config) {
		cfg.WarmUp = enable
	}
}

// WithWarmUpConfig sets a custom warm-up configuration and enables warm-up.
func WithWarmUpConfig(wc WarmupConfig) Option {
	return func(cfg *config) {
		cfg.WarmUpConfig = wc
		cfg.WarmUp = true
	}
}

// Normalizer routes text to the processor for its language code.
type Normalizer struct {
	router    *router.Router
	factory   *processor.Factory
	logger    ports.Logger
	ownLogger bool

	warmOnce sync.Once
	warmErr  error
}

// New creates a Normalizer with the provided functional options.
// If no logger is provided, a default logger is created.
func New(opts ...Option) (*Normalizer, error) {
	cfg := &config{
		WarmUpConfig: warmup.DefaultWarmupConfig(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	n := &Normalizer{logger: cfg.Logger}
	if n.logger == nil {
		n.logger, n.ownLogger = createDefaultLogger()
	}

	var factoryOpts []processor.FactoryOption
	if cfg.Numbers != nil {
		factoryOpts = append(factoryOpts, processor.WithNumberConverter(cfg.Numbers))
	}
	n.factory = processor.NewFactory(n.logger, factoryOpts...)
	n.router = router.New(
		n.factory.ForLanguages(),
		n.factory.CreateProcessor(processor.BaseProcessorType),
		n.logger,
	)

	if cfg.WarmUp {
		if err := n.WarmUp(context.Background(), cfg.WarmUpConfig); err != nil {
			return nil, err
		}
	}

	return n, nil
}

// Normalize returns text normalized for the given language code. It never
// fails; unknown codes only trim whitespace.
func (n *Normalizer) Normalize(language, text string) string {
	return n.router.Normalize(language, text)
}

// NormalizeAll normalizes every text with the same language code.
func (n *Normalizer) NormalizeAll(language string, texts []string) []string {
	p, _ := n.router.Lookup(language)
	out := make([]string, len(texts))
	for i, text := range texts {
		out[i] = p.Process(text)
	}
	return out
}

// Languages returns the language codes with a dedicated processor, sorted.
func (n *Normalizer) Languages() []string {
	return n.router.Languages()
}

// Supports reports whether language has a dedicated processor.
func (n *Normalizer) Supports(language string) bool {
	_, ok := n.router.Lookup(language)
	return ok
}

// WarmUp loads the Chinese dictionaries and exercises every processor once,
// so the first real request does not pay for lazy initialization.
// Only the first call has an effect.
func (n *Normalizer) WarmUp(ctx context.Context, wc WarmupConfig) error {
	n.warmOnce.Do(func() {
		mgr := warmup.NewManager(n.logger, wc)
		for _, ld := range n.factory.Loaders() {
			mgr.RegisterLoader(ld)
		}
		for _, p := range n.router.Processors() {
			mgr.RegisterProcessor(p)
		}
		n.warmErr = mgr.WarmUp(ctx)
	})
	return n.warmErr
}

// Close releases the logger if the Normalizer created it.
func (n *Normalizer) Close() error {
	if n.ownLogger {
		return n.logger.Close()
	}
	return nil
}

var (
	defaultOnce       sync.Once
	defaultNormalizer *Normalizer
)

// Default returns a shared Normalizer built on first use with default options.
func Default() *Normalizer {
	defaultOnce.Do(func() {
		n, err := New()
		if err != nil {
			// New only fails when warm-up is requested, which it is not here.
			panic(err)
		}
		defaultNormalizer = n
	})
	return defaultNormalizer
}

// Normalize normalizes text with the shared default Normalizer.
func Normalize(language, text string) string {
	return Default().Normalize(language, text)
}
