// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package ggrender

import (
	"log/slog"

	"github.com/gogpu/render/fonts"
)

// Option configures a Context.
type Option func(*Context)

// WithFontSource sets the font service backing Text. Without it the context
// uses a composite over the embedded builtin faces.
func WithFontSource(src *fonts.Composite) Option {
	return func(c *Context) {
		if src != nil {
			c.text.source = src
		}
	}
}

// WithLogger sets the logger for events the contract cannot report through
// error returns, such as draws of foreign image types. The default is the
// process-wide render logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Context) {
		if logger != nil {
			c.logger = logger
			c.text.logger = logger
		}
	}
}
