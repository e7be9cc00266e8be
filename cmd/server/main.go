package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	textnormalizer "github.com/baditaflorin/go_text_normalizer"
	"github.com/baditaflorin/go_text_normalizer/internal/config"
	"github.com/baditaflorin/l"
	"github.com/valyala/fasthttp"
)

// NormalizeRequest represents a single normalization request
type NormalizeRequest struct {
	Language string `json:"language"`
	Text     string `json:"text"`
}

// NormalizeResponse represents a single normalization response
type NormalizeResponse struct {
	Language   string `json:"language"`
	Text       string `json:"text"`
	Normalized string `json:"normalized"`
	Supported  bool   `json:"supported"`
}

// BatchRequest normalizes several texts sharing one language code
type BatchRequest struct {
	Language string   `json:"language"`
	Texts    []string `json:"texts"`
}

// BatchResponse represents a batch normalization response
type BatchResponse struct {
	Language       string   `json:"language"`
	Normalized     []string `json:"normalized"`
	Supported      bool     `json:"supported"`
	ProcessingTime string   `json:"processing_time"`
}

// LanguagesResponse lists the language codes with a dedicated processor
type LanguagesResponse struct {
	Languages []string `json:"languages"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error"`
}

// server holds the request handler state
type server struct {
	normalizer   *textnormalizer.Normalizer
	logger       l.Logger
	maxBatchSize int
}

func main() {
	configFile := flag.String("config", "", "YAML configuration file (flags override its values)")
	port := flag.Int("port", 0, "HTTP server port")
	readTimeout := flag.Duration("read-timeout", 0, "HTTP read timeout")
	writeTimeout := flag.Duration("write-timeout", 0, "HTTP write timeout")
	maxRequestSize := flag.Int("max-request-size", 0, "Maximum request size in bytes")
	maxBatchSize := flag.Int("max-batch-size", 0, "Maximum number of texts in a batch request")
	concurrency := flag.Int("concurrency", 0, "Maximum number of concurrent requests (0 = fasthttp default)")
	warmUp := flag.Bool("warm-up", true, "Perform system warm-up on startup")
	logFile := flag.String("log-file", "", "Log file path (empty = stdout)")
	flag.Parse()

	cfg, err := loadConfig(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags given explicitly take precedence over the file
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "port":
			cfg.Server.Port = *port
		case "read-timeout":
			cfg.Server.ReadTimeout = *readTimeout
		case "write-timeout":
			cfg.Server.WriteTimeout = *writeTimeout
		case "max-request-size":
			cfg.Server.MaxRequestSize = *maxRequestSize
		case "max-batch-size":
			cfg.Server.MaxBatchSize = *maxBatchSize
		case "concurrency":
			cfg.Server.Concurrency = *concurrency
		case "warm-up":
			cfg.WarmUp.Enabled = *warmUp
		case "log-file":
			cfg.Log.File = *logFile
		}
	})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	logger, closeLogger, err := createLogger(cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating logger: %v\n", err)
		os.Exit(1)
	}
	defer closeLogger()

	logger.Info("Starting text normalization HTTP server",
		"port", cfg.Server.Port,
		"read_timeout", cfg.Server.ReadTimeout,
		"write_timeout", cfg.Server.WriteTimeout,
		"max_request_size", cfg.Server.MaxRequestSize,
		"max_batch_size", cfg.Server.MaxBatchSize,
		"concurrency", cfg.Server.Concurrency,
	)

	s, err := newServer(logger, cfg)
	if err != nil {
		logger.Error("Failed to initialize normalizer", "error", err)
		os.Exit(1)
	}

	httpServer := &fasthttp.Server{
		Handler:               s.requestHandler,
		Name:                  "TextNormalizer",
		ReadTimeout:           cfg.Server.ReadTimeout,
		WriteTimeout:          cfg.Server.WriteTimeout,
		MaxRequestBodySize:    cfg.Server.MaxRequestSize,
		Concurrency:           cfg.Server.Concurrency,
		TCPKeepalive:          true,
		TCPKeepalivePeriod:    3 * time.Minute,
		MaxIdleWorkerDuration: 10 * time.Second,
	}

	// Set up graceful shutdown
	idleConnsClosed := make(chan struct{})
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		logger.Info("Shutting down server...")
		if err := httpServer.Shutdown(); err != nil {
			logger.Error("Error during server shutdown", "error", err)
		}
		close(idleConnsClosed)
	}()

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	logger.Info("Server listening", "address", addr)
	if err := httpServer.ListenAndServe(addr); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}

	<-idleConnsClosed
	logger.Info("Server stopped")
}

// loadConfig returns the file configuration, or the defaults when path is empty
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// newServer builds the normalizer and runs the warm-up when enabled
func newServer(logger l.Logger, cfg *config.Config) (*server, error) {
	opts := []textnormalizer.Option{
		textnormalizer.WithLogger(logger),
	}
	if cfg.WarmUp.Enabled {
		wc := textnormalizer.DefaultWarmupConfig()
		if cfg.WarmUp.Concurrency > 0 {
			wc.Concurrency = cfg.WarmUp.Concurrency
		}
		if cfg.WarmUp.Iterations > 0 {
			wc.Iterations = cfg.WarmUp.Iterations
		}
		wc.Duration = cfg.WarmUp.Duration
		opts = append(opts, textnormalizer.WithWarmUpConfig(wc))
	}

	n, err := textnormalizer.New(opts...)
	if err != nil {
		return nil, err
	}

	logger.Info("Normalizer initialized successfully",
		"warm_up", cfg.WarmUp.Enabled,
		"languages", n.Languages(),
		"cpus", runtime.NumCPU(),
	)

	return &server{
		normalizer:   n,
		logger:       logger,
		maxBatchSize: cfg.Server.MaxBatchSize,
	}, nil
}

// requestHandler is the main fasthttp request handler
func (s *server) requestHandler(ctx *fasthttp.RequestCtx) {
	startTime := time.Now()

	ctx.Response.Header.Set("Content-Type", "application/json")

	switch string(ctx.Path()) {
	case "/health":
		s.handleHealthCheck(ctx)
	case "/languages":
		s.handleLanguages(ctx)
	case "/normalize":
		s.handleNormalize(ctx)
	case "/normalize/batch":
		s.handleBatch(ctx)
	default:
		ctx.SetStatusCode(fasthttp.StatusNotFound)
		s.writeJSONError(ctx, "Not found")
	}

	s.logger.Info("Request processed",
		"method", string(ctx.Method()),
		"path", string(ctx.Path()),
		"status", ctx.Response.StatusCode(),
		"ip", ctx.RemoteIP().String(),
		"duration", time.Since(startTime),
	)
}

// handleHealthCheck responds to health check requests
func (s *server) handleHealthCheck(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// handleLanguages lists the supported language codes
func (s *server) handleLanguages(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, LanguagesResponse{Languages: s.normalizer.Languages()})
}

// handleNormalize normalizes a single text
func (s *server) handleNormalize(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req NormalizeRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, NormalizeResponse{
		Language:   req.Language,
		Text:       req.Text,
		Normalized: s.normalizer.Normalize(req.Language, req.Text),
		Supported:  s.normalizer.Supports(req.Language),
	})
}

// handleBatch normalizes several texts with one language code
func (s *server) handleBatch(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.SetStatusCode(fasthttp.StatusMethodNotAllowed)
		s.writeJSONError(ctx, "Method not allowed")
		return
	}

	var req BatchRequest
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.SetStatusCode(fasthttp.StatusBadRequest)
		s.writeJSONError(ctx, "Invalid request: "+err.Error())
		return
	}

	if len(req.Texts) > s.maxBatchSize {
		ctx.SetStatusCode(fasthttp.StatusRequestEntityTooLarge)
		s.writeJSONError(ctx, fmt.Sprintf("Batch of %d texts exceeds the limit of %d", len(req.Texts), s.maxBatchSize))
		return
	}

	startTime := time.Now()
	normalized := s.normalizer.NormalizeAll(req.Language, req.Texts)

	ctx.SetStatusCode(fasthttp.StatusOK)
	s.writeJSONResponse(ctx, BatchResponse{
		Language:       req.Language,
		Normalized:     normalized,
		Supported:      s.normalizer.Supports(req.Language),
		ProcessingTime: time.Since(startTime).String(),
	})
}

// Helper functions

// writeJSONResponse writes a JSON response to the context
func (s *server) writeJSONResponse(ctx *fasthttp.RequestCtx, data interface{}) {
	response, err := json.Marshal(data)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON response", "error", err)
		s.writeJSONError(ctx, "Internal server error")
		return
	}

	ctx.SetBody(response)
}

// writeJSONError writes a JSON error response to the context
func (s *server) writeJSONError(ctx *fasthttp.RequestCtx, message string) {
	response, err := json.Marshal(ErrorResponse{Error: message})
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		s.logger.Error("Error marshaling JSON error response", "error", err)
		ctx.SetBodyString(`{"error":"Internal server error"}`)
		return
	}

	ctx.SetBody(response)
}

// createLogger creates and configures a logger. The returned function
// closes the logger and then its log file, if any.
func createLogger(cfg config.LogConfig) (l.Logger, func() error, error) {
	factory := l.NewStandardFactory()

	output, closeOutput, err := openLogOutput(cfg.File, os.Stdout)
	if err != nil {
		return nil, nil, err
	}

	logger, err := factory.CreateLogger(l.Config{
		Output:      output,
		JsonFormat:  cfg.JSON,
		AsyncWrite:  true,
		BufferSize:  1024 * 1024,       // 1MB
		MaxFileSize: 100 * 1024 * 1024, // 100MB
		MaxBackups:  5,
		AddSource:   true,
		Metrics:     true,
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
