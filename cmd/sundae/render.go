package main

import (
	"fmt"
	"os"

	"github.com/gogpu/gg"
	"github.com/gogpu/sundae"
	"github.com/gogpu/sundae/fonts"
	"github.com/gogpu/sundae/recording"
)

// paint draws v onto dc. With trace set, the draw calls are recorded first,
// printed, and then replayed onto dc.
func paint(dc *gg.Context, v *sundae.View, faces *fonts.Set, trace bool) {
	dc.ClearWithColor(v.Profile().Background)
	target := sundae.NewContextSurface(dc, faces)
	if !trace {
		v.Render(target)
		return
	}
	rec := recording.NewRecorder(target.Bounds())
	v.Render(rec)
	r := rec.FinishRecording()
	fmt.Fprint(os.Stderr, r)
	r.Playback(target)
}

func renderPNG(v *sundae.View, faces *fonts.Set, path string, trace bool) error {
	p := v.Profile()
	dc := gg.NewContext(p.Width, p.Height)
	defer func() { _ = dc.Close() }()

	paint(dc, v, faces, trace)
	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	sundae.Logger().Info("sundae: saved", "path", path, "width", p.Width, "height", p.Height)
	return nil
}
