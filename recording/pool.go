package recording

import "github.com/gogpu/gg"

// ImagePool stores the images referenced by DrawImageCommands.
// Images are deduplicated by identity; they are not copied, since a View
// never mutates its images after construction.
//
// ImagePool is not safe for concurrent use.
type ImagePool struct {
	images []*gg.ImageBuf
	index  map[*gg.ImageBuf]ImageRef
}

// NewImagePool creates an empty pool.
func NewImagePool() *ImagePool {
	return &ImagePool{
		images: make([]*gg.ImageBuf, 0, 8),
		index:  make(map[*gg.ImageBuf]ImageRef, 8),
	}
}

// Add returns the reference for img, adding it on first sight.
func (p *ImagePool) Add(img *gg.ImageBuf) ImageRef {
	if ref, ok := p.index[img]; ok {
		return ref
	}
	p.images = append(p.images, img)
	// #nosec G115 -- pool size is bounded by the layer count
	ref := ImageRef(uint32(len(p.images) - 1))
	p.index[img] = ref
	return ref
}

// Get returns the image for ref, or nil if ref is out of range.
func (p *ImagePool) Get(ref ImageRef) *gg.ImageBuf {
	if int(ref) >= len(p.images) {
		return nil
	}
	return p.images[ref]
}

// Len returns the number of distinct images in the pool.
func (p *ImagePool) Len() int {
	return len(p.images)
}
