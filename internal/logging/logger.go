// Package logging provides categorized file-based logging for diyai.
// Logs are written under the config directory with rotation; when debug
// mode is off the whole package is a silent no-op so interactive chat
// stays clean.
package logging

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

// Category labels a log stream by subsystem.
type Category string

const (
	CategoryBoot         Category = "boot"         // startup, config resolution
	CategoryLexicon      Category = "lexicon"      // WordNet reads, cache hits/misses
	CategoryPerception   Category = "perception"   // tokenization, turn analysis
	CategorySession      Category = "session"      // context merge, reset, snapshots
	CategoryArticulation Category = "articulation" // synthesis, guardrail retries
	CategoryChat         Category = "chat"         // REPL and command dispatch
)

// Options controls logger construction. Zero value is a disabled logger.
type Options struct {
	// Dir is the directory log files are written to.
	Dir string
	// Debug enables logging at all; when false every call is a no-op.
	Debug bool
	// Verbose lowers the level to debug and adds a console core on stderr.
	Verbose bool
	// MaxSizeMB bounds a single log file before rotation (default 10).
	MaxSizeMB int
}

var (
	mu      sync.RWMutex
	root    *zap.Logger
	loggers = make(map[Category]*zap.SugaredLogger)
	enabled bool
)

// Initialize wires the package-level logger. Safe to call once at startup;
// later calls replace the previous sinks.
func Initialize(opts Options) error {
	mu.Lock()
	defer mu.Unlock()

	loggers = make(map[Category]*zap.SugaredLogger)
	if !opts.Debug {
		enabled = false
		root = zap.NewNop()
		return nil
	}
	if opts.Dir == "" {
		return fmt.Errorf("logging: log directory required")
	}
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return fmt.Errorf("logging: create log directory: %w", err)
	}

	maxSize := opts.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 10
	}
	rotator := &lumberjack.Logger{
		Filename:   filepath.Join(opts.Dir, "diyai.log"),
		MaxSize:    maxSize,
		MaxBackups: 5,
		MaxAge:     30,
		Compress:   true,
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.TimeKey = "ts"
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	encCfg.MessageKey = "msg"

	level := zap.InfoLevel
	if opts.Verbose {
		level = zap.DebugLevel
	}
	cores := []zapcore.Core{
		zapcore.NewCore(zapcore.NewJSONEncoder(encCfg), zapcore.AddSync(rotator), level),
	}
	if opts.Verbose {
		consoleEnc := zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
		cores = append(cores, zapcore.NewCore(consoleEnc, zapcore.Lock(os.Stderr), zap.DebugLevel))
	}

	root = zap.New(zapcore.NewTee(cores...))
	enabled = true
	return nil
}

// Get returns the sugared logger for a category, creating it on first use.
func Get(cat Category) *zap.SugaredLogger {
	mu.Lock()
	defer mu.Unlock()
	if l, ok := loggers[cat]; ok {
		return l
	}
	base := root
	if base == nil {
		base = zap.NewNop()
	}
	l := base.With(zap.String("cat", string(cat))).Sugar()
	loggers[cat] = l
	return l
}

// Enabled reports whether logging was initialized in debug mode.
func Enabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled
}

// Sync flushes buffered entries. Called on shutdown.
func Sync() {
	mu.RLock()
	defer mu.RUnlock()
	if root != nil {
		_ = root.Sync()
	}
}

// Convenience helpers, one per hot category. These keep call sites terse
// while staying format-string based like the rest of the codebase.

func Lexicon(format string, args ...interface{})      { Get(CategoryLexicon).Infof(format, args...) }
func LexiconDebug(format string, args ...interface{}) { Get(CategoryLexicon).Debugf(format, args...) }

func Perception(format string, args ...interface{}) { Get(CategoryPerception).Infof(format, args...) }
func PerceptionDebug(format string, args ...interface{}) {
	Get(CategoryPerception).Debugf(format, args...)
}

func Session(format string, args ...interface{}) { Get(CategorySession).Infof(format, args...) }

func Articulation(format string, args ...interface{}) {
	Get(CategoryArticulation).Infof(format, args...)
}
func ArticulationDebug(format string, args ...interface{}) {
	Get(CategoryArticulation).Debugf(format, args...)
}

func Chat(format string, args ...interface{}) { Get(CategoryChat).Infof(format, args...) }
