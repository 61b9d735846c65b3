package logger

import (
	"io"
	"log/slog"
	"os"
	"sync"
	"time"
)

type Config struct {
	Debug bool

	// Writer overrides the destination (stderr by default); tests use it.
	Writer io.Writer
}

var (
	mu     sync.RWMutex
	global = slog.New(slog.NewJSONHandler(io.Discard, nil))
)

// Setup installs the global logger. The returned cleanup restores the
// discard logger.
func Setup(cfg Config) func() {
	w := cfg.Writer
	if w == nil {
		w = os.Stderr
	}

	level := slog.LevelInfo
	addSource := false
	if cfg.Debug {
		level = slog.LevelDebug
		addSource = true
	}

	h := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     level,
		AddSource: addSource,
		ReplaceAttr: func(_ []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
				t := a.Value.Time().UTC()
				a.Value = slog.StringValue(t.Format(time.RFC3339Nano))
			}
			return a
		},
	})

	mu.Lock()
	global = slog.New(h)
	mu.Unlock()

	return func() {
		mu.Lock()
		defer mu.Unlock()
		global = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}
}

func L() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return global
}
