// Package sundae composes a layered image (background, bowl, scoop, syrup)
// with a status line drawn on top.
//
// # Overview
//
// A View owns an ordered layer stack. Every layer image, plus the background,
// is resolved exactly once when the view is built; afterwards Render only
// reads that state, so it can be called any number of times from the host's
// paint callback.
//
// # Quick Start
//
//	import (
//	    "github.com/gogpu/gg"
//	    "github.com/gogpu/sundae"
//	    "github.com/gogpu/sundae/fonts"
//	)
//
//	v, err := sundae.New(sundae.Background2,
//	    sundae.WithLoader(sundae.FileLoader{Root: "assets"}))
//	if err != nil {
//	    return err // only for an unknown background or a bad stack
//	}
//
//	dc := gg.NewContext(280, 340)
//	v.Render(sundae.NewContextSurface(dc, fonts.NewSet()))
//	dc.SavePNG("sundae.png")
//
// The second argument to NewContextSurface supplies the status text faces;
// with nil faces the text is not drawn.
//
// # Failure Model
//
// A layer whose image cannot be resolved is left out of every render. The
// failure is logged through the package logger (silent by default, see
// SetLogger) and kept in View.Failures; it is never returned from New.
//
// # Layers
//
// Layers are plain data. DefaultStack returns the bowl, scoop and syrup
// layers; the bowl is only shown over Background2. Draw order equals stack
// order and never changes.
package sundae
