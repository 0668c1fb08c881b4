// Package cmd implements the rpn CLI subcommands.
package cmd

import (
	"context"

	"github.com/alecthomas/kong"
)

// Identifiers for values passed to commands through [kong.Vars].
const (
	// ConfigIdentifier names the configuration file path variable.
	ConfigIdentifier = "config"

	// CacheIdentifier names the cache directory path variable.
	CacheIdentifier = "cache"
)

// contextKey is used to store a [kong.Context] value in [context.Context].
type contextKey struct{}

// WithContext returns a new context.Context containing the given kong.Context.
func WithContext(ctx context.Context, ktx *kong.Context) context.Context {
	return context.WithValue(ctx, contextKey{}, ktx)
}

func kongContextFrom(ctx context.Context) *kong.Context {
	ktx, ok := ctx.Value(contextKey{}).(*kong.Context)
	if !ok || ktx == nil {
		return nil
	}

	return ktx
}
