// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package fonts

import (
	"github.com/go-text/typesetting/font"
)

// faceRecord is one indexed face: its handle plus the metadata selection
// works on.
type faceRecord struct {
	handle Handle
	desc   font.Description
	id     string
}

// catalog indexes face records by family. It is the storage shared by
// MemSource and SystemSource and carries no locking of its own.
type catalog struct {
	records []faceRecord

	// families maps a normalized family name to record indices, in
	// registration order. names keeps the display names in first-seen
	// order for enumeration.
	families map[string][]int
	names    []string
}

func (c *catalog) add(rec faceRecord) {
	if c.families == nil {
		c.families = make(map[string][]int)
	}
	key := normalizeFamily(rec.desc.Family)
	if _, seen := c.families[key]; !seen {
		c.names = append(c.names, rec.desc.Family)
	}
	c.families[key] = append(c.families[key], len(c.records))
	c.records = append(c.records, rec)
}

func (c *catalog) allFonts() []Handle {
	handles := make([]Handle, len(c.records))
	for i, rec := range c.records {
		handles[i] = rec.handle
	}
	return handles
}

func (c *catalog) allFamilies() []string {
	names := make([]string, len(c.names))
	copy(names, c.names)
	return names
}

// family returns the faces registered under name, resolving generic names
// through the candidate table.
func (c *catalog) family(name string) (Family, bool) {
	for _, candidate := range expandFamily(name) {
		indices, ok := c.families[normalizeFamily(candidate)]
		if !ok || len(indices) == 0 {
			continue
		}
		fam := Family{
			Name:    c.records[indices[0]].desc.Family,
			Handles: make([]Handle, len(indices)),
		}
		for i, idx := range indices {
			fam.Handles[i] = c.records[idx].handle
		}
		return fam, true
	}
	return Family{}, false
}

func (c *catalog) byID(id string) (Handle, bool) {
	for _, rec := range c.records {
		if rec.id == id {
			return rec.handle, true
		}
	}
	return Handle{}, false
}

// bestMatch tries the query's families in order and picks the face whose
// aspect is closest to the requested one.
func (c *catalog) bestMatch(q Query) (Handle, bool) {
	for _, name := range q.Families {
		for _, candidate := range expandFamily(name) {
			indices, ok := c.families[normalizeFamily(candidate)]
			if !ok || len(indices) == 0 {
				continue
			}
			best := indices[0]
			bestDist := aspectDistance(q.Aspect, c.records[best].desc.Aspect)
			for _, idx := range indices[1:] {
				if d := aspectDistance(q.Aspect, c.records[idx].desc.Aspect); d < bestDist {
					best, bestDist = idx, d
				}
			}
			return c.records[best].handle, true
		}
	}
	return Handle{}, false
}

func (c *catalog) descriptions(name string) ([]font.Description, bool) {
	indices, ok := c.families[normalizeFamily(name)]
	if !ok || len(indices) == 0 {
		return nil, false
	}
	descs := make([]font.Description, len(indices))
	for i, idx := range indices {
		descs[i] = c.records[idx].desc
	}
	return descs, true
}
