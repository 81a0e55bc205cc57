package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	// Writer receives log records; defaults to os.Stderr.
	Writer io.Writer
	Debug  bool
}

var (
	mu     sync.RWMutex
	global = discard()
)

// Setup installs the global logger. Without Debug, logs are discarded so the
// console only carries status lines. The returned cleanup restores the
// discard logger.
func Setup(cfg Config) func() {
	if !cfg.Debug {
		setGlobal(discard())
		return func() {}
	}

	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     slog.LevelDebug,
		AddSource: true,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	setGlobal(slog.New(h))
	L().Debug("logger.initialized", "debug", cfg.Debug)

	return func() { setGlobal(discard()) }
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}

func setGlobal(l *slog.Logger) {
	mu.Lock()
	defer mu.Unlock()
	global = l
}

func discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
