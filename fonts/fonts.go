// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package fonts provides the font faces used for the sundae status text.
//
// A Set starts out with the Go fonts embedded for every sundae.FontWeight
// and can have individual weights replaced by font files from disk. Faces
// are cached per (weight, size).
//
//	set := fonts.NewSet()
//	surface := sundae.NewContextSurface(dc, set)
package fonts

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/gogpu/gg/text"
	"github.com/gogpu/sundae"
	"github.com/mitchellh/go-homedir"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/goregular"
)

// ErrNoFont is returned when a weight has no usable font.
var ErrNoFont = errors.New("fonts: no font for weight")

var embedded = map[sundae.FontWeight][]byte{
	sundae.WeightRegular: goregular.TTF,
	sundae.WeightMedium:  gomedium.TTF,
	sundae.WeightBold:    gobold.TTF,
}

type entry struct {
	source *text.FontSource
	glyphs *font.Font // for coverage checks; read-only, safe to share
}

type faceKey struct {
	weight sundae.FontWeight
	size   float64
}

// Set maps weights to font sources. It is safe for concurrent use.
type Set struct {
	mu      sync.Mutex
	entries map[sundae.FontWeight]*entry
	faces   map[faceKey]text.Face
}

var _ sundae.FaceSource = (*Set)(nil)

// NewSet returns a Set backed by the embedded Go fonts.
func NewSet() *Set {
	return &Set{
		entries: make(map[sundae.FontWeight]*entry, len(embedded)),
		faces:   make(map[faceKey]text.Face),
	}
}

// Face returns a face for weight at size points, or nil if the weight has no
// font. Unknown weights fall back to regular.
func (s *Set) Face(weight sundae.FontWeight, size float64) text.Face {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := faceKey{weight: weight, size: size}
	if f, ok := s.faces[key]; ok {
		return f
	}
	e, err := s.entryLocked(weight)
	if err != nil {
		sundae.Logger().Warn("fonts: face unavailable", "weight", weight.String(), "err", err)
		return nil
	}
	f := e.source.Face(size)
	s.faces[key] = f
	return f
}

// Name returns the family name of the font used for weight.
func (s *Set) Name(weight sundae.FontWeight) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.entryLocked(weight)
	if err != nil {
		return "", err
	}
	return e.source.Name(), nil
}

// Coverage returns the runes of str that the font for weight cannot draw,
// in order of first appearance.
func (s *Set) Coverage(weight sundae.FontWeight, str string) ([]rune, error) {
	s.mu.Lock()
	e, err := s.entryLocked(weight)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	face := font.NewFace(e.glyphs)
	var missing []rune
	seen := make(map[rune]bool)
	for _, r := range str {
		if seen[r] {
			continue
		}
		seen[r] = true
		if _, ok := face.NominalGlyph(r); !ok {
			missing = append(missing, r)
		}
	}
	return missing, nil
}

// Load replaces the font for weight with the TTF or OTF file at path.
// Cached faces of that weight are dropped.
func (s *Set) Load(weight sundae.FontWeight, path string) error {
	expanded, err := homedir.Expand(path)
	if err != nil {
		return fmt.Errorf("fonts: expand %q: %w", path, err)
	}
	// #nosec G304 -- font path comes from the user's configuration
	data, err := os.ReadFile(expanded)
	if err != nil {
		return fmt.Errorf("fonts: read %q: %w", path, err)
	}
	e, err := newEntry(data)
	if err != nil {
		return fmt.Errorf("fonts: parse %q: %w", path, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[weight] = e
	for k := range s.faces {
		if k.weight == weight {
			delete(s.faces, k)
		}
	}
	sundae.Logger().Info("fonts: loaded font", "weight", weight.String(), "name", e.source.Name(), "path", path)
	return nil
}

func (s *Set) entryLocked(weight sundae.FontWeight) (*entry, error) {
	if e, ok := s.entries[weight]; ok {
		return e, nil
	}
	data, ok := embedded[weight]
	if !ok {
		data = embedded[sundae.WeightRegular]
	}
	e, err := newEntry(data)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrNoFont, weight, err)
	}
	s.entries[weight] = e
	return e, nil
}

func newEntry(data []byte) (*entry, error) {
	src, err := text.NewFontSource(data)
	if err != nil {
		return nil, err
	}
	parsed, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	return &entry{source: src, glyphs: parsed.Font}, nil
}

// UseHarfBuzz switches gg's text shaping to the go-text HarfBuzz shaper.
// It affects every face process-wide.
func UseHarfBuzz() {
	text.SetShaper(text.NewGoTextShaper())
}

// UseBuiltinShaper restores gg's default shaper.
func UseBuiltinShaper() {
	text.SetShaper(nil)
}
