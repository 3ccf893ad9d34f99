// Package logger provides the process-wide zerolog logger and request-scoped children
package logger

import (
	"context"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
)

// Options configures the root logger
type Options struct {
	Level   string
	Format  string
	Service string
	Writer  io.Writer
}

// Logger is an alias so callers don't import zerolog directly
type Logger = zerolog.Logger

var (
	mu       sync.Mutex
	root     atomic.Pointer[zerolog.Logger]
	explicit bool // set once Init has run
)

// Get returns the root logger. Before Init it returns an info-level console logger
// that the first Init call replaces.
func Get() *Logger {
	if l := root.Load(); l != nil {
		return l
	}
	mu.Lock()
	defer mu.Unlock()
	if l := root.Load(); l != nil {
		return l
	}
	l := build(Options{Level: "info", Format: "console"})
	root.Store(l)
	return l
}

// Init builds the root logger. Only the first call has any effect, even if Get
// already handed out the default logger.
func Init(opt Options) {
	mu.Lock()
	defer mu.Unlock()
	if explicit {
		return
	}
	root.Store(build(opt))
	explicit = true
}

func build(opt Options) *Logger {
	zerolog.TimeFieldFormat = time.RFC3339Nano

	var w io.Writer = os.Stdout
	if opt.Writer != nil {
		w = opt.Writer
	}
	if strings.EqualFold(opt.Format, "console") {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}

	ctx := zerolog.New(w).Level(parseLevel(opt.Level)).With().Timestamp()
	if opt.Service != "" {
		ctx = ctx.Str("service", opt.Service)
	}
	log := ctx.Logger()
	return &log
}

func parseLevel(s string) zerolog.Level {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

type ctxKey struct{ name string }

var keyRequestID = ctxKey{"request_id"}

// WithRequest annotates ctx with a request id
func WithRequest(ctx context.Context, reqID string) context.Context {
	if reqID == "" {
		return ctx
	}
	return context.WithValue(ctx, keyRequestID, reqID)
}

// RequestID returns the request id stored by WithRequest
func RequestID(ctx context.Context) string {
	s, _ := ctx.Value(keyRequestID).(string)
	return s
}

// C returns a child logger carrying the request id from ctx, if any
func C(ctx context.Context) *Logger {
	l := Get()
	id := RequestID(ctx)
	if id == "" {
		return l
	}
	ll := l.With().Str("request_id", id).Logger()
	return &ll
}

// Named returns a child logger with a component field
func Named(component string) *Logger {
	if component == "" {
		return Get()
	}
	ll := Get().With().Str("component", component).Logger()
	return &ll
}
