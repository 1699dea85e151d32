package images

import (
	lru "github.com/hashicorp/golang-lru/v2"
)

// Renderer turns scenes into PNG bytes at a fixed size, keeping recently
// encoded scenes so that returning to an earlier frame skips the encode.
type Renderer struct {
	palette Palette
	w, h    int
	cache   *lru.Cache[Scene, []byte]
}

// NewRenderer returns a renderer holding up to size encoded scenes.
func NewRenderer(p Palette, w, h, size int) *Renderer {
	if size < 1 {
		size = 1
	}
	c, _ := lru.New[Scene, []byte](size)
	return &Renderer{palette: p, w: w, h: h, cache: c}
}

// PNG returns the encoded scene.
func (r *Renderer) PNG(s Scene) []byte {
	if b, ok := r.cache.Get(s); ok {
		return b
	}
	b := EncodePNG(Render(s, r.palette, r.w, r.h))
	r.cache.Add(s, b)
	return b
}

// SetPalette switches colors and drops every cached scene.
func (r *Renderer) SetPalette(p Palette) {
	r.palette = p
	r.cache.Purge()
}

// Cached reports how many scenes are held.
func (r *Renderer) Cached() int { return r.cache.Len() }
