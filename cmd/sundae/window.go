package main

import (
	"github.com/gogpu/gg"
	_ "github.com/gogpu/gg/gpu" // Register GPU accelerator
	"github.com/gogpu/gg/integration/ggcanvas"
	"github.com/gogpu/gogpu"
	"github.com/gogpu/gpucontext"
	"github.com/gogpu/sundae"
	"github.com/gogpu/sundae/fonts"
)

// runWindow shows v in a fixed-size window until it is closed or Escape is
// pressed. Rendering is event-driven; nothing animates.
func runWindow(v *sundae.View, faces *fonts.Set, trace bool) error {
	p := v.Profile()
	logger := sundae.Logger()

	app := gogpu.NewApp(gogpu.DefaultConfig().
		WithTitle(p.Title).
		WithSize(p.Width, p.Height).
		WithContinuousRender(false))

	var canvas *ggcanvas.Canvas
	var drawErr error

	app.OnDraw(func(dc *gogpu.Context) {
		w, h := dc.Width(), dc.Height()
		if w <= 0 || h <= 0 {
			return
		}

		if canvas == nil {
			provider := app.GPUContextProvider()
			if provider == nil {
				return
			}
			canvas, drawErr = ggcanvas.New(provider, w, h)
			if drawErr != nil {
				logger.Error("sundae: create canvas", "err", drawErr)
				app.Quit()
				return
			}
			logger.Debug("sundae: canvas created", "width", w, "height", h)
		}

		if cw, ch := canvas.Size(); cw != w || ch != h {
			if err := canvas.Resize(w, h); err != nil {
				logger.Warn("sundae: resize canvas", "err", err)
			}
		}

		if err := canvas.Draw(func(cc *gg.Context) {
			paint(cc, v, faces, trace)
		}); err != nil {
			logger.Warn("sundae: draw", "err", err)
		}
		if err := canvas.RenderTo(dc.AsTextureDrawer()); err != nil {
			logger.Warn("sundae: present", "err", err)
		}
	})

	app.EventSource().OnKeyPress(func(key gpucontext.Key, _ gpucontext.Modifiers) {
		if key == gpucontext.KeyEscape {
			app.Quit()
		}
	})

	app.OnClose(func() {
		gg.CloseAccelerator()
	})

	if err := app.Run(); err != nil {
		return err
	}
	return drawErr
}
