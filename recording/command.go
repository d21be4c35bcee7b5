// Package recording captures the draw calls of a sundae.View as typed
// commands instead of rasterizing them.
//
// A Recorder implements sundae.Surface. The Recording it produces can be
// compared with another recording, printed as a trace, or replayed onto any
// other Surface.
//
// # Example
//
//	rec := recording.NewRecorder(280, 340)
//	view.Render(rec)
//	r := rec.FinishRecording()
//	fmt.Print(r)
//	r.Playback(sundae.NewContextSurface(dc, faces))
package recording

import (
	"fmt"

	"github.com/gogpu/sundae"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	CmdDrawImage CommandType = iota // Draw an image into a rectangle
	CmdDrawText                     // Draw text at a baseline
)

var commandTypeNames = [...]string{
	CmdDrawImage: "DrawImage",
	CmdDrawText:  "DrawText",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	Type() CommandType
	String() string
}

// ImageRef is a reference to an image in the ImagePool. The same
// *gg.ImageBuf always maps to the same reference within one recording.
type ImageRef uint32

// DrawImageCommand draws an image scaled into Dst.
type DrawImageCommand struct {
	Image ImageRef
	Dst   sundae.Rect
}

// Type implements Command.
func (DrawImageCommand) Type() CommandType { return CmdDrawImage }

func (c DrawImageCommand) String() string {
	return fmt.Sprintf("DrawImage #%d at (%g,%g) size %gx%g",
		c.Image, c.Dst.X, c.Dst.Y, c.Dst.W, c.Dst.H)
}

// DrawTextCommand draws text with its baseline at (X, Y).
type DrawTextCommand struct {
	Text  string
	X, Y  float64
	Style sundae.TextStyle
}

// Type implements Command.
func (DrawTextCommand) Type() CommandType { return CmdDrawText }

func (c DrawTextCommand) String() string {
	return fmt.Sprintf("DrawText %q at (%g,%g) %s %gpt",
		c.Text, c.X, c.Y, c.Style.Weight, c.Style.Size)
}
