package sundae

import (
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// State is the lifecycle state of a View.
type State uint8

const (
	// StateConstructing means images are still being resolved.
	StateConstructing State = iota

	// StateReady means Render may be called.
	StateReady
)

func (s State) String() string {
	switch s {
	case StateConstructing:
		return "Constructing"
	case StateReady:
		return "Ready"
	default:
		return "State(" + strconv.Itoa(int(s)) + ")"
	}
}

// View is a layered image view: a background, an ordered layer stack and a
// status line. All images are resolved in New; a View is read-only after
// that and may be rendered any number of times.
//
// A View is not safe for concurrent Render calls on the same Surface, but
// its own state is never written after New returns.
type View struct {
	background Background
	profile    Profile
	stack      Stack
	status     string
	logger     *slog.Logger

	backgroundImage *gg.ImageBuf
	images          []*gg.ImageBuf // parallel to stack; nil when unresolved
	failures        []*ImageResolutionError
	state           State
}

// New builds a view over background bg and resolves every image once.
//
// New fails only with a *ConfigurationError: for a background outside the
// enumerated set, a nil loader, or a malformed stack. Images that cannot be
// resolved are logged, recorded in Failures and left out of every render.
func New(bg Background, opts ...Option) (*View, error) {
	o := defaultViewOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if !bg.Valid() {
		return nil, &ConfigurationError{Field: "background", Value: bg.String(), Err: ErrUnknownBackground}
	}
	if o.loader == nil {
		return nil, &ConfigurationError{Field: "loader", Err: errors.New("nil image loader")}
	}
	if o.stack == nil {
		o.stack = DefaultStack(o.profile)
	}
	if err := o.stack.validate(); err != nil {
		return nil, &ConfigurationError{Field: "stack", Err: err}
	}
	if o.logger == nil {
		o.logger = Logger()
	}

	v := &View{
		background: bg,
		profile:    o.profile,
		stack:      o.stack,
		logger:     o.logger.With("background", bg.String()),
		images:     make([]*gg.ImageBuf, len(o.stack)),
		state:      StateConstructing,
	}
	v.status = v.buildStatus(o.statusDescription)
	v.resolve(o.loader)
	v.state = StateReady

	v.logger.Info("sundae: view ready",
		"layers", v.stack.Description(),
		"top", v.DescribeTopLayer(),
		"failures", len(v.failures))
	return v, nil
}

// resolve loads the background and then each layer in stack order. A failure
// only affects its own element.
func (v *View) resolve(loader ImageLoader) {
	v.backgroundImage = v.load(loader, "", v.background.Path())
	for i, l := range v.stack {
		v.images[i] = v.load(loader, l.Name, l.Path)
	}
}

func (v *View) load(loader ImageLoader, layer, path string) (img *gg.ImageBuf) {
	defer func() {
		// A panicking loader is treated like a failing one.
		if r := recover(); r != nil {
			img = nil
			v.fail(layer, path, fmt.Errorf("loader panic: %v", r))
		}
	}()

	img, err := loader.LoadImage(path)
	if err == nil && img == nil {
		err = errors.New("loader returned no image")
	}
	if err != nil {
		v.fail(layer, path, err)
		return nil
	}
	v.logger.Debug("sundae: resolved image", "layer", layer, "path", path,
		"width", img.Width(), "height", img.Height())
	return img
}

func (v *View) fail(layer, path string, err error) {
	rerr := &ImageResolutionError{Layer: layer, Path: path, Err: err}
	v.failures = append(v.failures, rerr)
	v.logger.Warn("sundae: image unavailable, layer dropped",
		"layer", layer, "path", path, "err", err)
}

func (v *View) buildStatus(withLayers bool) string {
	var b strings.Builder
	b.WriteString("Background changed to: ")
	b.WriteString(v.background.Path())
	if withLayers {
		for _, l := range v.stack {
			b.WriteString(" | Added ")
			b.WriteString(l.Name)
		}
	}
	return b.String()
}

// Render paints the background stretched to the surface, then the status
// text, then every visible and resolved layer in stack order. Missing images
// are skipped. Render performs no I/O and does not modify v.
func (v *View) Render(s Surface) {
	if v.state != StateReady || s == nil {
		return
	}
	if v.backgroundImage != nil {
		w, h := s.Bounds()
		s.DrawImage(v.backgroundImage, 0, 0, float64(w), float64(h))
	}

	s.DrawText(v.status, v.profile.TextX, v.profile.TextY, v.profile.Text)

	for i, l := range v.stack {
		img := v.images[i]
		if img == nil || !l.VisibleOn(v.background) {
			continue
		}
		s.DrawImage(img, l.Rect.X, l.Rect.Y, l.Rect.W, l.Rect.H)
	}
}

// DescribeTopLayer returns the label of the outermost layer, e.g.
// "Ice Cream with Syrup".
func (v *View) DescribeTopLayer() string {
	top, ok := v.stack.Top()
	if !ok {
		return ""
	}
	return top.Label
}

// Description returns the composite description, e.g. "Bowl | Scoop | Syrup".
func (v *View) Description() string { return v.stack.Description() }

// StatusText returns the string drawn on top of the composite.
func (v *View) StatusText() string { return v.status }

// Background returns the background the view was built with.
func (v *View) Background() Background { return v.background }

// Profile returns the cosmetic profile of the view.
func (v *View) Profile() Profile { return v.profile }

// State returns the lifecycle state.
func (v *View) State() State { return v.state }

// Layers returns a copy of the layer stack.
func (v *View) Layers() Stack { return v.stack.clone() }

// Failures returns the resolution errors in the order they happened.
func (v *View) Failures() []*ImageResolutionError {
	out := make([]*ImageResolutionError, len(v.failures))
	copy(out, v.failures)
	return out
}

// BackgroundResolved reports whether the background image is available.
func (v *View) BackgroundResolved() bool { return v.backgroundImage != nil }

// Resolved reports whether the named layer's image is available.
func (v *View) Resolved(name string) bool {
	i := v.index(name)
	return i >= 0 && v.images[i] != nil
}

// LayerVisible reports whether the named layer's predicate holds for the
// view's background, regardless of whether its image resolved.
func (v *View) LayerVisible(name string) bool {
	i := v.index(name)
	return i >= 0 && v.stack[i].VisibleOn(v.background)
}

func (v *View) index(name string) int {
	for i, l := range v.stack {
		if l.Name == name {
			return i
		}
	}
	return -1
}
