// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fonts provides font discovery and matching for the render
// adapters.
//
// A Source enumerates font faces and answers selection queries by family
// name, PostScript identifier, or style query. The package ships four
// implementations:
//
//   - MemSource: an in-memory collection fed with raw font bytes.
//   - MultiSource: an ordered chain of sources.
//   - SystemSource: the platform's installed fonts via fontscan.
//   - Composite: a writable in-memory tier layered over external sources,
//     the variant the render adapters use.
//
// Faces are represented by lightweight Handle values that carry either the
// font bytes or a file location plus a collection index. Parsing is
// delegated to github.com/go-text/typesetting.
package fonts
