package engine

import (
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// ============================================================================
// ENGINE OPTIONS — Functional options for Execute()
// ============================================================================

// Option configures executor behavior via functional options pattern.
type Option func(*config)

type config struct {
	Logger   *zap.Logger
	Language language.Tag // number formatting in tables and replies
	Title    string       // overrides the per-query default title
}

// WithLogger routes executor logging to l. A nil logger is ignored.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.Logger = l
		}
	}
}

// WithLanguage sets the locale used to format numbers (e.g. language.German → "1.234").
func WithLanguage(tag language.Tag) Option {
	return func(c *config) {
		c.Language = tag
	}
}

// WithTitle sets the table/result title.
func WithTitle(title string) Option {
	return func(c *config) {
		c.Title = title
	}
}

// applyOptions creates a config from functional options.
func applyOptions(opts []Option) *config {
	cfg := &config{
		Logger:   zap.NewNop(),
		Language: language.English,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
