package sundae

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io/fs"
	"os"
	"path/filepath"

	"github.com/gogpu/gg"
	"github.com/h2non/filetype"
	"github.com/mitchellh/go-homedir"
	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
	_ "golang.org/x/image/webp" // register WebP decoder
)

// ImageLoader resolves an image resource by name. Implementations may block;
// View calls them only while it is being built.
type ImageLoader interface {
	LoadImage(path string) (*gg.ImageBuf, error)
}

// LoaderFunc adapts a function to ImageLoader.
type LoaderFunc func(path string) (*gg.ImageBuf, error)

// LoadImage calls f(path).
func (f LoaderFunc) LoadImage(path string) (*gg.ImageBuf, error) { return f(path) }

// FileLoader reads images from the file system. Relative paths are resolved
// against Root, which may start with "~".
type FileLoader struct {
	Root string
}

// LoadImage reads and decodes the file at path.
func (l FileLoader) LoadImage(path string) (*gg.ImageBuf, error) {
	full, err := l.resolve(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full)
	if err != nil {
		return nil, err
	}
	return decodeImage(data)
}

func (l FileLoader) resolve(path string) (string, error) {
	path, err := homedir.Expand(path)
	if err != nil {
		return "", err
	}
	if filepath.IsAbs(path) || l.Root == "" {
		return filepath.Clean(path), nil
	}
	root, err := homedir.Expand(l.Root)
	if err != nil {
		return "", err
	}
	return filepath.Join(root, path), nil
}

// FSLoader reads images from an fs.FS, such as an embed.FS.
type FSLoader struct {
	FS fs.FS
}

// LoadImage reads and decodes path from l.FS.
func (l FSLoader) LoadImage(path string) (*gg.ImageBuf, error) {
	data, err := fs.ReadFile(l.FS, path)
	if err != nil {
		return nil, err
	}
	return decodeImage(data)
}

// decodeImage sniffs data before decoding so that a text file named
// "x.png" fails with ErrNotImage instead of a decoder-specific message.
func decodeImage(data []byte) (*gg.ImageBuf, error) {
	if !filetype.IsImage(data) {
		return nil, ErrNotImage
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		kind, _ := filetype.Match(data)
		return nil, fmt.Errorf("decode %s: %w", kind.Extension, err)
	}
	return gg.ImageBufFromImage(img), nil
}
