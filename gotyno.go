// Package gotyno parses and resolves a set of schema-definition source
// buffers.
//
// Call [Compile] with one or more [schema.BufferData] values to tokenize and
// parse each buffer, resolve cross-module imports in dependency order, and
// return the merged, fully-resolved set of modules.
package gotyno

import (
	"log/slog"

	"github.com/GoNZooo/gotyno/internal/resolver"
	"github.com/GoNZooo/gotyno/internal/types"
	"github.com/GoNZooo/gotyno/schema"
)

// LevelTrace is a custom log level more verbose than Debug, used for
// per-token logging by the tokenizer.
// Enable with: &slog.HandlerOptions{Level: slog.Level(-8)}
const LevelTrace = types.LevelTrace

// Option configures Compile.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger sets the logger for debug/trace output. If not set, no logging
// occurs (zero overhead).
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// Compile tokenizes, parses, and resolves buffers, returning the merged set
// of modules keyed by module name (each buffer's filename stem), or the
// first *schema.ParseError encountered.
//
// Example:
//
//	modules, err := gotyno.Compile([]schema.BufferData{
//	    {Filename: "types.gotyno", Buffer: typesSource},
//	    {Filename: "api.gotyno", Buffer: apiSource},
//	}, gotyno.WithLogger(logger))
func Compile(buffers []schema.BufferData, opts ...Option) (map[string]*schema.Module, error) {
	cfg := options{}
	for _, opt := range opts {
		opt(&cfg)
	}
	logger := types.Logger{L: cfg.logger}
	return resolver.Resolve(buffers, logger)
}
