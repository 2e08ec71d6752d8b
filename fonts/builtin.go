// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"sync"

	"github.com/go-fonts/latin-modern/lmmono10regular"
	"github.com/go-fonts/latin-modern/lmroman10bold"
	"github.com/go-fonts/latin-modern/lmroman10italic"
	"github.com/go-fonts/latin-modern/lmroman10regular"
	"github.com/go-fonts/latin-modern/lmsans10regular"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/render"
)

var (
	builtinOnce    sync.Once
	builtinRecords []faceRecord
)

// Builtin returns a fresh MemSource preloaded with the embedded faces:
// Latin Modern roman (regular, bold, italic), sans, and mono, plus the Go
// fonts (regular, bold, italic, mono). The generic families serif,
// sans-serif, and monospace all resolve against it, so it works without any
// fonts installed on the system.
//
// Each call returns an independent source; additions to one do not leak
// into another. The embedded data itself is parsed once per process.
func Builtin() *MemSource {
	builtinOnce.Do(func() {
		embedded := [][]byte{
			lmroman10regular.TTF,
			lmroman10bold.TTF,
			lmroman10italic.TTF,
			lmsans10regular.TTF,
			lmmono10regular.TTF,
			goregular.TTF,
			gobold.TTF,
			goitalic.TTF,
			gomono.TTF,
		}
		for _, data := range embedded {
			faces, err := parseFaces(data)
			if err != nil {
				render.Logger().Warn("embedded font failed to parse", "error", err)
				continue
			}
			for i, face := range faces {
				desc := face.Describe()
				builtinRecords = append(builtinRecords, faceRecord{
					handle: MemoryHandle(data, i),
					desc:   desc,
					id:     recordID(data, i, desc),
				})
			}
		}
	})
	s := NewMemSource()
	for _, rec := range builtinRecords {
		s.cat.add(rec)
	}
	return s
}
