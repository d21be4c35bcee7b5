package sundae_test

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"
	"testing/fstest"

	"github.com/gogpu/sundae"
)

// Solid colors of the test assets, one per resource.
var (
	colorBackground = color.NRGBA{R: 200, G: 40, B: 40, A: 255}
	colorBowl       = color.NRGBA{R: 160, G: 110, B: 40, A: 255}
	colorScoop      = color.NRGBA{R: 250, G: 245, B: 220, A: 255}
	colorSyrup      = color.NRGBA{R: 90, G: 50, B: 20, A: 255}
)

func solidPNG(t testing.TB, c color.Color, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

// assetFS returns every image the default stack needs, minus the names in
// skip.
func assetFS(t testing.TB, skip ...string) fstest.MapFS {
	t.Helper()
	fsys := fstest.MapFS{
		"background1.png": {Data: solidPNG(t, colorBackground, 16, 16)},
		"background2.png": {Data: solidPNG(t, colorBackground, 16, 16)},
		"waffle.png":      {Data: solidPNG(t, colorBowl, 8, 8)},
		"vanilla.png":     {Data: solidPNG(t, colorScoop, 8, 8)},
		"chocolate.png":   {Data: solidPNG(t, colorSyrup, 8, 8)},
	}
	for _, name := range skip {
		delete(fsys, name)
	}
	return fsys
}

func newView(t testing.TB, bg sundae.Background, loader sundae.ImageLoader, opts ...sundae.Option) *sundae.View {
	t.Helper()
	v, err := sundae.New(bg, append([]sundae.Option{sundae.WithLoader(loader)}, opts...)...)
	if err != nil {
		t.Fatalf("New(%v) error = %v", bg, err)
	}
	return v
}
