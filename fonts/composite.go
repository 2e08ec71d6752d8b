// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"sync"

	"github.com/go-text/typesetting/font"
)

// Composite layers a writable in-memory tier over external sources.
//
// Fonts registered through Load live in the in-memory tier. Selection
// queries consult that tier first and fall back to the external sources on
// a miss, so a loaded font shadows a same-named external family from the
// moment Load returns. Enumeration is additive: external answers come
// first, the in-memory tier is appended, and duplicates are not collapsed.
//
// Composite is safe for concurrent use. The mutex guards only the
// in-memory tier; external sources are never called while it is held, so a
// slow system scan cannot block registration.
type Composite struct {
	mu  sync.Mutex
	mem *MemSource

	// ext is nil when the composite was built without providers.
	ext Source
}

// NewComposite returns a composite over the given external sources, tried
// in argument order after the in-memory tier.
func NewComposite(providers ...Source) *Composite {
	c := &Composite{mem: NewMemSource()}
	switch len(providers) {
	case 0:
	case 1:
		c.ext = providers[0]
	default:
		c.ext = NewMultiSource(providers...)
	}
	return c
}

// Load registers the first face of the font data in the in-memory tier and
// returns its family. Once Load succeeds, SelectFamilyByName and SelectByID
// resolve the registered names without consulting the external sources.
func (c *Composite) Load(data []byte) (Family, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mem.Add(data)
}

// LoadCollection registers every face of a font collection in the
// in-memory tier and returns the families they belong to.
func (c *Composite) LoadCollection(data []byte) ([]Family, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.mem.AddCollection(data)
}

// AllFonts implements Source.
func (c *Composite) AllFonts() ([]Handle, error) {
	var external []Handle
	if c.ext != nil {
		hs, err := c.ext.AllFonts()
		if err != nil {
			return nil, err
		}
		external = hs
	}
	c.mu.Lock()
	local, _ := c.mem.AllFonts()
	c.mu.Unlock()

	out := make([]Handle, 0, len(external)+len(local))
	out = append(out, external...)
	out = append(out, local...)
	return out, nil
}

// AllFamilies implements Source.
func (c *Composite) AllFamilies() ([]string, error) {
	var external []string
	if c.ext != nil {
		ns, err := c.ext.AllFamilies()
		if err != nil {
			return nil, err
		}
		external = ns
	}
	c.mu.Lock()
	local, _ := c.mem.AllFamilies()
	c.mu.Unlock()

	out := make([]string, 0, len(external)+len(local))
	out = append(out, external...)
	out = append(out, local...)
	return out, nil
}

// SelectFamilyByName implements Source.
func (c *Composite) SelectFamilyByName(name string) (Family, error) {
	c.mu.Lock()
	fam, err := c.mem.SelectFamilyByName(name)
	c.mu.Unlock()
	if err == nil {
		return fam, nil
	}
	if c.ext != nil {
		return c.ext.SelectFamilyByName(name)
	}
	return Family{}, err
}

// SelectByID implements Source.
func (c *Composite) SelectByID(id string) (Handle, error) {
	c.mu.Lock()
	h, err := c.mem.SelectByID(id)
	c.mu.Unlock()
	if err == nil {
		return h, nil
	}
	if c.ext != nil {
		return c.ext.SelectByID(id)
	}
	return Handle{}, err
}

// SelectBestMatch implements Source.
func (c *Composite) SelectBestMatch(query Query) (Handle, error) {
	c.mu.Lock()
	h, err := c.mem.SelectBestMatch(query)
	c.mu.Unlock()
	if err == nil {
		return h, nil
	}
	if c.ext != nil {
		return c.ext.SelectBestMatch(query)
	}
	return Handle{}, err
}

// DescriptionsInFamily implements Source.
func (c *Composite) DescriptionsInFamily(family Family) ([]font.Description, error) {
	c.mu.Lock()
	descs, err := c.mem.DescriptionsInFamily(family)
	c.mu.Unlock()
	if err == nil {
		return descs, nil
	}
	if c.ext != nil {
		return c.ext.DescriptionsInFamily(family)
	}
	return nil, err
}
