package sundae_test

import (
	"bytes"
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/gogpu/sundae"
	"golang.org/x/image/bmp"
)

func TestFileLoader(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "vanilla.png"), solidPNG(t, colorScoop, 4, 3), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.png"), []byte("not really a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	l := sundae.FileLoader{Root: dir}

	img, err := l.LoadImage("vanilla.png")
	if err != nil {
		t.Fatalf("LoadImage(vanilla.png) error = %v", err)
	}
	if img.Width() != 4 || img.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", img.Width(), img.Height())
	}

	if _, err := l.LoadImage("notes.png"); !errors.Is(err, sundae.ErrNotImage) {
		t.Errorf("LoadImage(notes.png) error = %v, want ErrNotImage", err)
	}
	if _, err := l.LoadImage("missing.png"); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("LoadImage(missing.png) error = %v, want fs.ErrNotExist", err)
	}

	// Absolute paths ignore Root.
	abs := filepath.Join(dir, "vanilla.png")
	if _, err := (sundae.FileLoader{Root: "/nonexistent"}).LoadImage(abs); err != nil {
		t.Errorf("LoadImage(%q) error = %v", abs, err)
	}
}

func TestFSLoaderBMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 5, 5))
	for i := range src.Pix {
		src.Pix[i] = 0xff
	}
	var buf bytes.Buffer
	if err := bmp.Encode(&buf, src); err != nil {
		t.Fatalf("bmp.Encode: %v", err)
	}

	l := sundae.FSLoader{FS: fstest.MapFS{"bowl.bmp": {Data: buf.Bytes()}}}
	img, err := l.LoadImage("bowl.bmp")
	if err != nil {
		t.Fatalf("LoadImage(bowl.bmp) error = %v", err)
	}
	if img.Width() != 5 || img.Height() != 5 {
		t.Errorf("size = %dx%d, want 5x5", img.Width(), img.Height())
	}
}

func TestFSLoaderErrors(t *testing.T) {
	l := sundae.FSLoader{FS: fstest.MapFS{
		"empty.png": {Data: nil},
		// PNG signature followed by garbage
		"broken.png": {Data: append([]byte("\x89PNG\r\n\x1a\n"), bytes.Repeat([]byte{0}, 32)...)},
	}}
	tests := []struct {
		path string
		is   error
	}{
		{"empty.png", sundae.ErrNotImage},
		{"missing.png", fs.ErrNotExist},
	}
	for _, tt := range tests {
		if _, err := l.LoadImage(tt.path); !errors.Is(err, tt.is) {
			t.Errorf("LoadImage(%q) error = %v, want %v", tt.path, err, tt.is)
		}
	}
	if _, err := l.LoadImage("broken.png"); err == nil {
		t.Error("LoadImage(broken.png) error = nil, want decode error")
	}
}

func TestImageResolutionErrorUnwrap(t *testing.T) {
	v := newView(t, sundae.Background1, sundae.FSLoader{FS: fstest.MapFS{}})
	for _, f := range v.Failures() {
		if !errors.Is(f, fs.ErrNotExist) {
			t.Errorf("failure %v does not unwrap to fs.ErrNotExist", f)
		}
	}
}
