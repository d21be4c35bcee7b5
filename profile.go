package sundae

import "github.com/gogpu/gg"

// FontWeight selects the face used for the status text.
type FontWeight uint8

// Font weights.
const (
	WeightRegular FontWeight = iota
	WeightMedium
	WeightBold
)

var weightNames = [...]string{
	WeightRegular: "regular",
	WeightMedium:  "medium",
	WeightBold:    "bold",
}

func (w FontWeight) String() string {
	if int(w) < len(weightNames) {
		return weightNames[w]
	}
	return "unknown"
}

// TextStyle is the fixed style of the status text.
type TextStyle struct {
	Color  gg.RGBA
	Weight FontWeight
	Size   float64 // points
}

// Profile holds the cosmetic constants of one build. None of it changes
// behaviour; it only moves and colours things.
type Profile struct {
	Title         string
	Width, Height int

	Text       TextStyle
	TextX      float64
	TextY      float64 // baseline
	Bowl       Rect
	Scoop      Rect
	Syrup      Rect
	Background gg.RGBA // cleared behind the background image
}

// DefaultProfile returns the values of the reference build.
func DefaultProfile() Profile {
	return Profile{
		Title:  "Ice Cream Display",
		Width:  280,
		Height: 340,
		Text: TextStyle{
			Color:  gg.Black,
			Weight: WeightBold,
			Size:   18,
		},
		TextX:      10,
		TextY:      30,
		Bowl:       Rect{X: 10, Y: 80, W: 220, H: 220},
		Scoop:      Rect{X: 10, Y: 100, W: 220, H: 220},
		Syrup:      Rect{X: 10, Y: 100, W: 220, H: 220},
		Background: gg.White,
	}
}
