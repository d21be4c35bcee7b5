package recording

import (
	"strings"

	"github.com/gogpu/gg"
	"github.com/gogpu/sundae"
)

// Recorder captures draw calls as commands. It implements sundae.Surface.
//
// The Recorder is not safe for concurrent use.
type Recorder struct {
	width, height int
	commands      []Command
	images        *ImagePool
}

var _ sundae.Surface = (*Recorder)(nil)

// NewRecorder creates a Recorder reporting the given bounds.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{
		width:    width,
		height:   height,
		commands: make([]Command, 0, 8),
		images:   NewImagePool(),
	}
}

// Bounds implements sundae.Surface.
func (r *Recorder) Bounds() (width, height int) {
	return r.width, r.height
}

// DrawImage implements sundae.Surface. Nil images are ignored.
func (r *Recorder) DrawImage(img *gg.ImageBuf, x, y, w, h float64) {
	if img == nil {
		return
	}
	r.commands = append(r.commands, DrawImageCommand{
		Image: r.images.Add(img),
		Dst:   sundae.Rect{X: x, Y: y, W: w, H: h},
	})
}

// DrawText implements sundae.Surface.
func (r *Recorder) DrawText(s string, x, y float64, style sundae.TextStyle) {
	r.commands = append(r.commands, DrawTextCommand{Text: s, X: x, Y: y, Style: style})
}

// Len returns the number of commands recorded so far.
func (r *Recorder) Len() int {
	return len(r.commands)
}

// Reset drops recorded commands but keeps image references stable, so two
// renders of the same view recorded around a Reset compare equal.
func (r *Recorder) Reset() {
	r.commands = r.commands[:0]
}

// FinishRecording returns an immutable Recording of the commands so far.
// The Recorder may keep recording afterwards; later commands do not affect
// the returned Recording.
func (r *Recorder) FinishRecording() *Recording {
	cmds := make([]Command, len(r.commands))
	copy(cmds, r.commands)
	return &Recording{
		width:    r.width,
		height:   r.height,
		commands: cmds,
		images:   r.images,
	}
}

// Recording is an immutable list of recorded draw calls.
type Recording struct {
	width, height int
	commands      []Command
	images        *ImagePool
}

// Bounds returns the size the recording was made at.
func (r *Recording) Bounds() (width, height int) {
	return r.width, r.height
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Images returns the image pool.
func (r *Recording) Images() *ImagePool {
	return r.images
}

// Count returns how many commands of type t were recorded.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Equal reports whether r and other hold the same command sequence.
// Image references are compared by pool identity.
func (r *Recording) Equal(other *Recording) bool {
	if other == nil || len(r.commands) != len(other.commands) {
		return false
	}
	for i, c := range r.commands {
		switch a := c.(type) {
		case DrawImageCommand:
			b, ok := other.commands[i].(DrawImageCommand)
			if !ok || a.Dst != b.Dst ||
				r.images.Get(a.Image) != other.images.Get(b.Image) {
				return false
			}
		case DrawTextCommand:
			b, ok := other.commands[i].(DrawTextCommand)
			if !ok || a != b {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// String renders the recording as one command per line.
func (r *Recording) String() string {
	var b strings.Builder
	for _, c := range r.commands {
		b.WriteString(c.String())
		b.WriteByte('\n')
	}
	return b.String()
}

// Playback replays the recording onto s in order.
func (r *Recording) Playback(s sundae.Surface) {
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case DrawImageCommand:
			s.DrawImage(r.images.Get(c.Image), c.Dst.X, c.Dst.Y, c.Dst.W, c.Dst.H)
		case DrawTextCommand:
			s.DrawText(c.Text, c.X, c.Y, c.Style)
		}
	}
}
