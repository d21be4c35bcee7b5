package sundae_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/gogpu/gg"
	"github.com/gogpu/sundae"
	"github.com/gogpu/sundae/recording"
)

func record(v *sundae.View) *recording.Recording {
	p := v.Profile()
	rec := recording.NewRecorder(p.Width, p.Height)
	v.Render(rec)
	return rec.FinishRecording()
}

func imageDraws(r *recording.Recording) []recording.DrawImageCommand {
	var out []recording.DrawImageCommand
	for _, c := range r.Commands() {
		if d, ok := c.(recording.DrawImageCommand); ok {
			out = append(out, d)
		}
	}
	return out
}

func fullBounds(r *recording.Recording) sundae.Rect {
	w, h := r.Bounds()
	return sundae.Rect{W: float64(w), H: float64(h)}
}

func TestDescribeTopLayer(t *testing.T) {
	full := sundae.DefaultStack(sundae.DefaultProfile())
	tests := []struct {
		depth int
		want  string
	}{
		{1, "Ice Cream Bowl"},
		{2, "Ice Cream Scoop"},
		{3, "Ice Cream with Syrup"},
	}
	for _, bg := range sundae.Backgrounds() {
		for _, tt := range tests {
			t.Run(fmt.Sprintf("%v/%d", bg, tt.depth), func(t *testing.T) {
				v := newView(t, bg, sundae.FSLoader{FS: assetFS(t)}, sundae.WithStack(full[:tt.depth]))
				if got := v.DescribeTopLayer(); got != tt.want {
					t.Errorf("DescribeTopLayer() = %q, want %q", got, tt.want)
				}
			})
		}
	}
}

func TestDescription(t *testing.T) {
	v := newView(t, sundae.Background1, sundae.FSLoader{FS: assetFS(t)})
	if got, want := v.Description(), "Bowl | Scoop | Syrup"; got != want {
		t.Errorf("Description() = %q, want %q", got, want)
	}
}

func TestStatusText(t *testing.T) {
	tests := []struct {
		name       string
		bg         sundae.Background
		withLayers bool
		want       string
	}{
		{"bg1 layers", sundae.Background1, true, "Background changed to: background1.png | Added Bowl | Added Scoop | Added Syrup"},
		{"bg2 layers", sundae.Background2, true, "Background changed to: background2.png | Added Bowl | Added Scoop | Added Syrup"},
		{"bg1 bare", sundae.Background1, false, "Background changed to: background1.png"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newView(t, tt.bg, sundae.FSLoader{FS: assetFS(t)}, sundae.WithStatusDescription(tt.withLayers))
			if got := v.StatusText(); got != tt.want {
				t.Errorf("StatusText() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBowlVisibility(t *testing.T) {
	tests := []struct {
		bg   sundae.Background
		want bool
	}{
		{sundae.Background1, false},
		{sundae.Background2, true},
	}
	for _, tt := range tests {
		t.Run(tt.bg.String(), func(t *testing.T) {
			v := newView(t, tt.bg, sundae.FSLoader{FS: assetFS(t)})
			if got := v.LayerVisible(sundae.LayerBowl); got != tt.want {
				t.Errorf("LayerVisible(Bowl) = %v, want %v", got, tt.want)
			}
			for _, name := range []string{sundae.LayerScoop, sundae.LayerSyrup} {
				if !v.LayerVisible(name) {
					t.Errorf("LayerVisible(%s) = false, want true", name)
				}
			}

			// 1 background + optional bowl + scoop + syrup
			want := 3
			if tt.want {
				want = 4
			}
			if got := record(v).Count(recording.CmdDrawImage); got != want {
				t.Errorf("DrawImage count = %d, want %d", got, want)
			}
		})
	}
}

func TestRenderOrder(t *testing.T) {
	v := newView(t, sundae.Background2, sundae.FSLoader{FS: assetFS(t)})
	r := record(v)
	p := v.Profile()

	cmds := r.Commands()
	if len(cmds) != 5 {
		t.Fatalf("len(Commands()) = %d, want 5\n%s", len(cmds), r)
	}
	wantTypes := []recording.CommandType{
		recording.CmdDrawImage, // background
		recording.CmdDrawText,  // status
		recording.CmdDrawImage, // bowl
		recording.CmdDrawImage, // scoop
		recording.CmdDrawImage, // syrup
	}
	for i, c := range cmds {
		if c.Type() != wantTypes[i] {
			t.Errorf("command %d = %v, want %v", i, c.Type(), wantTypes[i])
		}
	}

	if got := cmds[0].(recording.DrawImageCommand).Dst; got != fullBounds(r) {
		t.Errorf("background Dst = %+v, want %+v", got, fullBounds(r))
	}
	text := cmds[1].(recording.DrawTextCommand)
	if text.X != p.TextX || text.Y != p.TextY || text.Style != p.Text || text.Text != v.StatusText() {
		t.Errorf("status = %+v", text)
	}
	wantRects := []sundae.Rect{p.Bowl, p.Scoop, p.Syrup}
	for i, want := range wantRects {
		if got := cmds[2+i].(recording.DrawImageCommand).Dst; got != want {
			t.Errorf("layer %d Dst = %+v, want %+v", i, got, want)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	for _, bg := range sundae.Backgrounds() {
		t.Run(bg.String(), func(t *testing.T) {
			v := newView(t, bg, sundae.FSLoader{FS: assetFS(t, "vanilla.png")})
			rec := recording.NewRecorder(280, 340)

			v.Render(rec)
			first := rec.FinishRecording()
			rec.Reset()
			v.Render(rec)
			second := rec.FinishRecording()

			if !first.Equal(second) {
				t.Errorf("renders differ:\nfirst:\n%s\nsecond:\n%s", first, second)
			}
		})
	}
}

func TestRenderMissingBackground(t *testing.T) {
	v := newView(t, sundae.Background2, sundae.FSLoader{FS: assetFS(t, "background2.png")})
	if v.BackgroundResolved() {
		t.Fatal("BackgroundResolved() = true, want false")
	}
	r := record(v)

	for _, d := range imageDraws(r) {
		if d.Dst == fullBounds(r) {
			t.Errorf("unexpected background fill %+v", d)
		}
	}
	if got := r.Count(recording.CmdDrawImage); got != 3 {
		t.Errorf("DrawImage count = %d, want 3", got)
	}
	if got := r.Count(recording.CmdDrawText); got != 1 {
		t.Errorf("DrawText count = %d, want 1", got)
	}
}

func TestRenderMissingScoop(t *testing.T) {
	v := newView(t, sundae.Background2, sundae.FSLoader{FS: assetFS(t, "vanilla.png")})
	p := v.Profile()

	if v.Resolved(sundae.LayerScoop) {
		t.Error("Resolved(Scoop) = true, want false")
	}
	draws := imageDraws(record(v))
	if len(draws) != 3 {
		t.Fatalf("DrawImage count = %d, want 3", len(draws))
	}
	// background, bowl, syrup; scoop and syrup share a rect, so check
	// by position in the sequence.
	if draws[1].Dst != p.Bowl {
		t.Errorf("bowl Dst = %+v, want %+v", draws[1].Dst, p.Bowl)
	}
	if draws[2].Dst != p.Syrup {
		t.Errorf("syrup Dst = %+v, want %+v", draws[2].Dst, p.Syrup)
	}
	if draws[1].Image == draws[2].Image {
		t.Error("bowl and syrup reference the same image")
	}
}

func TestNewNeverFailsOnImages(t *testing.T) {
	names := []string{"background1.png", "waffle.png", "vanilla.png", "chocolate.png"}
	// every subset of missing resources, from none to all
	for mask := 0; mask < 1<<len(names); mask++ {
		var skip []string
		for i, n := range names {
			if mask&(1<<i) != 0 {
				skip = append(skip, n)
			}
		}
		t.Run(strings.Join(skip, ","), func(t *testing.T) {
			v, err := sundae.New(sundae.Background1, sundae.WithLoader(sundae.FSLoader{FS: assetFS(t, skip...)}))
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}
			if v.State() != sundae.StateReady {
				t.Errorf("State() = %v, want Ready", v.State())
			}
			if got := len(v.Failures()); got != len(skip) {
				t.Errorf("len(Failures()) = %d, want %d", got, len(skip))
			}
			// status text is always drawn
			if got := record(v).Count(recording.CmdDrawText); got != 1 {
				t.Errorf("DrawText count = %d, want 1", got)
			}
		})
	}
}

func TestNewSurvivesPanickingLoader(t *testing.T) {
	loader := sundae.LoaderFunc(func(path string) (*gg.ImageBuf, error) {
		panic("boom " + path)
	})
	v, err := sundae.New(sundae.Background2, sundae.WithLoader(loader))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if got := len(v.Failures()); got != 4 {
		t.Errorf("len(Failures()) = %d, want 4", got)
	}
	if got := record(v).Count(recording.CmdDrawImage); got != 0 {
		t.Errorf("DrawImage count = %d, want 0", got)
	}
}

func TestNewNilImage(t *testing.T) {
	loader := sundae.LoaderFunc(func(string) (*gg.ImageBuf, error) { return nil, nil })
	v := newView(t, sundae.Background1, loader)
	if got := len(v.Failures()); got != 4 {
		t.Errorf("len(Failures()) = %d, want 4", got)
	}
}

func TestFailuresDetail(t *testing.T) {
	v := newView(t, sundae.Background1, sundae.FSLoader{FS: assetFS(t, "background1.png", "chocolate.png")})
	failures := v.Failures()
	if len(failures) != 2 {
		t.Fatalf("len(Failures()) = %d, want 2", len(failures))
	}
	if failures[0].Layer != "" || failures[0].Path != "background1.png" {
		t.Errorf("failures[0] = %+v, want background", failures[0])
	}
	if failures[1].Layer != sundae.LayerSyrup || failures[1].Path != "chocolate.png" {
		t.Errorf("failures[1] = %+v, want syrup", failures[1])
	}
	if !strings.Contains(failures[0].Error(), "background") {
		t.Errorf("Error() = %q, want mention of background", failures[0].Error())
	}

	// Failures returns a copy.
	failures[0] = nil
	if v.Failures()[0] == nil {
		t.Error("Failures() exposes internal slice")
	}
}

func TestResolveOnce(t *testing.T) {
	fsys := assetFS(t)
	calls := make(map[string]int)
	loader := sundae.LoaderFunc(func(path string) (*gg.ImageBuf, error) {
		calls[path]++
		return sundae.FSLoader{FS: fsys}.LoadImage(path)
	})
	v := newView(t, sundae.Background2, loader)
	for range 5 {
		record(v)
	}
	want := []string{"background2.png", "waffle.png", "vanilla.png", "chocolate.png"}
	if len(calls) != len(want) {
		t.Errorf("loaded %d resources, want %d: %v", len(calls), len(want), calls)
	}
	for _, p := range want {
		if calls[p] != 1 {
			t.Errorf("LoadImage(%q) called %d times, want 1", p, calls[p])
		}
	}
}

func TestNewConfigurationErrors(t *testing.T) {
	tests := []struct {
		name  string
		bg    sundae.Background
		opts  []sundae.Option
		field string
	}{
		{"zero background", 0, nil, "background"},
		{"out of set", sundae.Background(9), nil, "background"},
		{"nil loader", sundae.Background1, []sundae.Option{sundae.WithLoader(nil)}, "loader"},
		{"empty stack", sundae.Background1, []sundae.Option{sundae.WithStack(sundae.Stack{})}, "stack"},
		{"unnamed layer", sundae.Background1, []sundae.Option{sundae.WithStack(sundae.Stack{{Path: "x.png"}})}, "stack"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := sundae.New(tt.bg, tt.opts...)
			if err == nil {
				t.Fatalf("New() = %v, want error", v)
			}
			var cerr *sundae.ConfigurationError
			if !errors.As(err, &cerr) {
				t.Fatalf("New() error = %T, want *ConfigurationError", err)
			}
			if cerr.Field != tt.field {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.field)
			}
		})
	}

	_, err := sundae.New(sundae.Background(7))
	if !errors.Is(err, sundae.ErrUnknownBackground) {
		t.Errorf("New(7) error = %v, want ErrUnknownBackground", err)
	}
}

func TestViewLogsFailures(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	newView(t, sundae.Background1, sundae.FSLoader{FS: assetFS(t, "waffle.png")}, sundae.WithLogger(logger))

	out := buf.String()
	for _, want := range []string{"layer dropped", "layer=Bowl", "path=waffle.png", "view ready", "background=background1"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestLayersReturnsCopy(t *testing.T) {
	v := newView(t, sundae.Background1, sundae.FSLoader{FS: assetFS(t)})
	layers := v.Layers()
	layers[0].Label = "changed"
	if v.Layers()[0].Label == "changed" {
		t.Error("Layers() exposes internal stack")
	}
}

func TestRenderNilSurface(t *testing.T) {
	v := newView(t, sundae.Background1, sundae.FSLoader{FS: assetFS(t)})
	v.Render(nil) // must not panic
}
