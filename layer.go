package sundae

import (
	"errors"
	"strings"
)

// Rect is a draw position and size in surface pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Layer is one visual element of the composite.
type Layer struct {
	// Name is the short name used in the composite description, e.g. "Bowl".
	Name string

	// Label describes the composite once this layer is the outermost one,
	// e.g. "Ice Cream with Syrup".
	Label string

	// Path is the image resource handed to the ImageLoader.
	Path string

	// Rect is where the image is drawn.
	Rect Rect

	// Visible decides whether the layer is drawn over a background.
	// A nil predicate means always visible.
	Visible func(Background) bool
}

// VisibleOn reports whether l is drawn over background b.
func (l Layer) VisibleOn(b Background) bool {
	if l.Visible == nil {
		return true
	}
	return l.Visible(b)
}

// Stack is an ordered list of layers. Index 0 is drawn first.
type Stack []Layer

// Layer names of the default stack.
const (
	LayerBowl  = "Bowl"
	LayerScoop = "Scoop"
	LayerSyrup = "Syrup"
)

// OnlyOn returns a visibility predicate that holds for b alone.
func OnlyOn(b Background) func(Background) bool {
	return func(got Background) bool { return got == b }
}

// DefaultStack returns bowl, scoop and syrup positioned per p.
func DefaultStack(p Profile) Stack {
	return Stack{
		{
			Name:    LayerBowl,
			Label:   "Ice Cream Bowl",
			Path:    "waffle.png",
			Rect:    p.Bowl,
			Visible: OnlyOn(Background2),
		},
		{
			Name:  LayerScoop,
			Label: "Ice Cream Scoop",
			Path:  "vanilla.png",
			Rect:  p.Scoop,
		},
		{
			Name:  LayerSyrup,
			Label: "Ice Cream with Syrup",
			Path:  "chocolate.png",
			Rect:  p.Syrup,
		},
	}
}

// Description joins the short names in stack order: "Bowl | Scoop | Syrup".
func (s Stack) Description() string {
	names := make([]string, len(s))
	for i, l := range s {
		names[i] = l.Name
	}
	return strings.Join(names, " | ")
}

// Top returns the outermost layer and false if the stack is empty.
func (s Stack) Top() (Layer, bool) {
	if len(s) == 0 {
		return Layer{}, false
	}
	return s[len(s)-1], true
}

// validate checks the structural rules New relies on.
func (s Stack) validate() error {
	if len(s) == 0 {
		return errors.New("empty layer stack")
	}
	seen := make(map[string]bool, len(s))
	for _, l := range s {
		switch {
		case l.Name == "":
			return errors.New("layer without a name")
		case seen[l.Name]:
			return errors.New("duplicate layer " + l.Name)
		case l.Path == "":
			return errors.New("layer " + l.Name + " has no image path")
		case l.Rect.W < 0 || l.Rect.H < 0:
			return errors.New("layer " + l.Name + " has a negative size")
		}
		seen[l.Name] = true
	}
	return nil
}

func (s Stack) clone() Stack {
	out := make(Stack, len(s))
	copy(out, s)
	return out
}
