package sundae

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
)

// Surface is the drawable target of Render.
type Surface interface {
	// DrawImage draws img scaled into the rectangle (x, y, w, h).
	DrawImage(img *gg.ImageBuf, x, y, w, h float64)

	// DrawText draws s with its baseline starting at (x, y).
	DrawText(s string, x, y float64, style TextStyle)

	// Bounds returns the surface size in pixels.
	Bounds() (width, height int)
}

// FaceSource supplies font faces for ContextSurface. fonts.Set implements it.
type FaceSource interface {
	Face(weight FontWeight, size float64) text.Face
}

// ContextSurface draws onto a gg.Context.
//
// Text is skipped when no FaceSource is configured; images are always drawn.
type ContextSurface struct {
	dc    *gg.Context
	faces FaceSource
}

// NewContextSurface wraps dc. faces may be nil.
func NewContextSurface(dc *gg.Context, faces FaceSource) *ContextSurface {
	return &ContextSurface{dc: dc, faces: faces}
}

// Context returns the wrapped drawing context.
func (s *ContextSurface) Context() *gg.Context { return s.dc }

// Bounds implements Surface.
func (s *ContextSurface) Bounds() (width, height int) {
	return s.dc.Width(), s.dc.Height()
}

// DrawImage implements Surface. An empty rectangle draws nothing; gg would
// otherwise fall back to the source size.
func (s *ContextSurface) DrawImage(img *gg.ImageBuf, x, y, w, h float64) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	s.dc.DrawImageEx(img, gg.DrawImageOptions{
		X:             x,
		Y:             y,
		DstWidth:      w,
		DstHeight:     h,
		Interpolation: gg.InterpBilinear,
		Opacity:       1.0,
		BlendMode:     gg.BlendNormal,
	})
}

// DrawText implements Surface.
func (s *ContextSurface) DrawText(str string, x, y float64, style TextStyle) {
	if s.faces == nil {
		return
	}
	face := s.faces.Face(style.Weight, style.Size)
	if face == nil {
		return
	}
	s.dc.Push()
	defer s.dc.Pop()
	s.dc.SetFont(face)
	s.dc.SetColor(style.Color.Color())
	s.dc.DrawString(str, x, y)
}
