package sundae

import (
	"path"
	"strconv"
	"strings"
)

// Background identifies the backdrop image of a view. The set is closed;
// values outside it are rejected by New.
type Background uint8

const (
	// Background1 draws background1.png. The bowl layer is hidden.
	Background1 Background = iota + 1

	// Background2 draws background2.png. The bowl layer is shown.
	Background2
)

var backgroundPaths = [...]string{
	Background1: "background1.png",
	Background2: "background2.png",
}

// Backgrounds returns the enumerated backgrounds in declaration order.
func Backgrounds() []Background {
	return []Background{Background1, Background2}
}

// Valid reports whether b belongs to the enumerated set.
func (b Background) Valid() bool {
	return b >= Background1 && int(b) < len(backgroundPaths)
}

// Path returns the image file name of the background, or "" if b is not valid.
func (b Background) Path() string {
	if !b.Valid() {
		return ""
	}
	return backgroundPaths[b]
}

// String returns the identifier without extension, e.g. "background1".
func (b Background) String() string {
	if !b.Valid() {
		return "Background(" + strconv.Itoa(int(b)) + ")"
	}
	return strings.TrimSuffix(backgroundPaths[b], path.Ext(backgroundPaths[b]))
}

// ParseBackground accepts "background1", "background1.png" or the bare
// index "1", case-insensitively.
func ParseBackground(s string) (Background, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	for _, b := range Backgrounds() {
		if key == b.String() || key == b.Path() || key == strconv.Itoa(int(b)) {
			return b, nil
		}
	}
	return 0, &ConfigurationError{Field: "background", Value: s, Err: ErrUnknownBackground}
}
